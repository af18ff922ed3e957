// Package button implements the Button component.
//
// A button is described by Props and resolved by Render into a View, which renders as a templ
// component. Resolving is a pure function of the props and the Env (theme, dark mode and the icon
// and loader providers):
//
//	v := button.Render(button.Props{
//		Variant:     button.Outlined,
//		LeadingIcon: "plus",
//		Children:    button.Label("Add"),
//		OnClick:     add,
//	}, button.Env{})
//
// Inside templ pages use Button, which takes the Env from the context. The shared CSS consumed by
// rendered buttons is written by Stylesheet.
package button

import (
	"context"
	"errors"

	"github.com/a-h/templ"

	"github.com/networkteam/uikit/icon"
	"github.com/networkteam/uikit/loader"
)

// ErrDisabled is returned when a disabled or loading button is activated.
var ErrDisabled = errors.New("button is disabled")

type Size string

const (
	Large  Size = "large"
	Medium Size = "medium"
	Small  Size = "small"
)

type Variant string

const (
	Contained Variant = "contained"
	Elevated  Variant = "elevated"
	Outlined  Variant = "outlined"
	Text      Variant = "text"
)

// Role is the semantic role attribute of the rendered element.
type Role string

const (
	RoleButton Role = "button"
	RoleLink   Role = "link"
)

// Type is the type attribute of the rendered button element.
type Type string

const (
	TypeButton Type = "button"
	TypeSubmit Type = "submit"
	TypeReset  Type = "reset"
)

// Stable data-testid values of the button slots.
const (
	TestIDLeadingIcon  = "button/leading-icon"
	TestIDTrailingIcon = "button/trailing-icon"
	TestIDContent      = "button/content"
)

// ClickHandler is called when an enabled button is activated.
type ClickHandler func(ctx context.Context) error

// Props configures a button. The zero value is a medium contained button.
type Props struct {
	// Size defaults to Medium.
	Size Size
	// Variant defaults to Contained.
	Variant Variant
	// Role defaults to RoleButton.
	Role Role
	// Type defaults to TypeButton, which does not submit forms.
	Type Type

	// LeadingIcon and TrailingIcon are icon names; empty means no icon slot.
	LeadingIcon  string
	TrailingIcon string

	// Loading shows a spinner over the content and disables the button.
	Loading  bool
	Disabled bool

	OnClick ClickHandler

	// Form is the id of the form the button belongs to.
	Form string
	ID   string
	// Tags are written to the data-tags attribute.
	Tags []string
	// Attrs are passed through to the button element. Attributes computed from other props win.
	Attrs templ.Attributes

	// Children is the label content.
	Children templ.Component

	// Ref receives the resolved view.
	Ref *Ref
}

// Ref gives access to a resolved button, for example to activate it.
type Ref struct {
	View *View
}

// IconSize returns the icon size token for a button size.
func IconSize(size Size) icon.Size {
	switch size {
	case Small:
		return icon.SizeXS
	case Large:
		return icon.SizeM
	default:
		return icon.SizeS
	}
}

// LoaderVariant returns the spinner style for a button variant.
func LoaderVariant(variant Variant) loader.StyleVariant {
	switch variant {
	case Contained:
		return loader.Secondary
	case Elevated:
		return loader.Primary
	default:
		return loader.Responsive
	}
}

func (p Props) withDefaults() Props {
	if p.Size == "" {
		p.Size = Medium
	}
	if p.Variant == "" {
		p.Variant = Contained
	}
	if p.Role == "" {
		p.Role = RoleButton
	}
	if p.Type == "" {
		p.Type = TypeButton
	}
	return p
}

// EffectiveDisabled reports whether the button rejects activation.
func (p Props) EffectiveDisabled() bool {
	return p.Disabled || p.Loading
}
