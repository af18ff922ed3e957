package views

import "strings"

type BadgeVariant string

const (
	BadgeVariantSecondary BadgeVariant = "secondary"
	BadgeVariantSuccess   BadgeVariant = "success"
	BadgeVariantError     BadgeVariant = "error"
)

type BadgeProps struct {
	Variant BadgeVariant
	Class   string
}

func badgeClasses(props BadgeProps) string {
	classes := []string{"demo-badge"}

	switch props.Variant {
	case BadgeVariantSuccess:
		classes = append(classes, "demo-badge--success")
	case BadgeVariantError:
		classes = append(classes, "demo-badge--error")
	default:
		classes = append(classes, "demo-badge--secondary")
	}

	if props.Class != "" {
		classes = append(classes, props.Class)
	}

	return strings.Join(classes, " ")
}
