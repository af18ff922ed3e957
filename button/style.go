package button

import (
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/networkteam/uikit/theme"
)

// StyleInput is everything style resolution depends on.
type StyleInput struct {
	Size            Size
	Variant         Variant
	Loading         bool
	Disabled        bool
	HasLeadingIcon  bool
	HasTrailingIcon bool
	DarkMode        bool
}

// Colors is a background and foreground pair.
type Colors struct {
	Background theme.Color
	Foreground theme.Color
}

// Style is the resolved visual description of a button.
// Fields left empty fall back to the unstyled base look of the stylesheet.
type Style struct {
	Typography   theme.Typography
	Height       string
	PaddingLeft  string
	PaddingRight string
	IconGap      string

	Border theme.Color
	Shadow string

	Rest   Colors
	Hover  Colors
	Focus  Colors
	Active Colors
	// Disabled is nil when no disabled treatment applies, either because the button is
	// enabled or because it is only disabled while loading.
	Disabled *theme.DisabledLook

	PointerEvents string
}

// ResolveStyle maps the style input to a Style using the theme.
// Unknown sizes or variants contribute nothing.
func ResolveStyle(in StyleInput, t *theme.Theme) Style {
	if t == nil {
		t = theme.Default()
	}

	var s Style
	resolveSize(&s, in, t)
	resolveVariant(&s, in, t)

	if in.Loading {
		s.PointerEvents = "none"
		s.Disabled = nil
	}
	return s
}

func resolveSize(s *Style, in StyleInput, t *theme.Theme) {
	var base, nextToIcon string

	switch in.Size {
	case Large:
		s.Typography = t.Typography.LabelLarge
		s.Height = "4.8rem"
		base, nextToIcon = "2.8rem", t.Spacing.M
		s.IconGap = t.Spacing.XXS
	case Medium:
		s.Typography = t.Typography.LabelMedium
		s.Height = "4rem"
		base, nextToIcon = t.Spacing.L, t.Spacing.S
		s.IconGap = t.Spacing.XXS
	case Small:
		s.Typography = t.Typography.LabelSmall
		s.Height = "3.2rem"
		base, nextToIcon = t.Spacing.S, t.Spacing.XS
		s.IconGap = t.Spacing.XXXS
	default:
		return
	}

	s.PaddingLeft, s.PaddingRight = base, base
	if in.HasLeadingIcon {
		s.PaddingLeft = nextToIcon
	}
	if in.HasTrailingIcon {
		s.PaddingRight = nextToIcon
	}
}

func resolveVariant(s *Style, in StyleInput, t *theme.Theme) {
	c := t.Colors
	var stateBase theme.Color

	switch in.Variant {
	case Contained:
		stateBase = c.Primary[400]
		s.Rest = Colors{Background: c.Primary[400], Foreground: c.White}
		s.Border = theme.Transparent
		if in.Disabled {
			look := t.Disabled(stateBase)
			s.Disabled = &look
		}
	case Elevated:
		stateBase = c.White
		s.Shadow = t.ElevationLevel(1)
		s.Rest = Colors{Background: theme.Transparent, Foreground: c.Primary[500]}
		if in.DarkMode {
			s.Rest.Background = c.White
		}
		s.Border = theme.Transparent
		if in.Disabled {
			look := t.Disabled(stateBase)
			if in.DarkMode {
				look = t.Faded()
			}
			s.Disabled = &look
		}
	case Outlined:
		stateBase = c.White
		s.Rest = Colors{Background: theme.Transparent, Foreground: c.Primary[500]}
		s.Border = c.Grey[400]
		if in.Disabled {
			look := t.Disabled(stateBase, c.States.Disabled.Overlay.Dark)
			s.Disabled = &look
		}
	case Text:
		stateBase = c.White
		s.Rest = Colors{Background: theme.Transparent, Foreground: c.Primary[500]}
		s.Border = theme.Transparent
		if in.Disabled {
			look := t.Disabled(stateBase)
			s.Disabled = &look
		}
	default:
		return
	}

	fg := s.Rest.Foreground
	s.Hover = Colors{Background: t.Hovered(stateBase), Foreground: fg}
	s.Focus = Colors{Background: t.Focused(stateBase), Foreground: fg}
	s.Active = Colors{Background: t.Pressed(stateBase), Foreground: fg}
}

// Custom properties written by Declarations and consumed by the stylesheet.
const (
	varFontSize        = "--uikit-button-font-size"
	varLineHeight      = "--uikit-button-line-height"
	varLetterSpacing   = "--uikit-button-letter-spacing"
	varFontWeight      = "--uikit-button-font-weight"
	varHeight          = "--uikit-button-height"
	varPaddingLeft     = "--uikit-button-padding-left"
	varPaddingRight    = "--uikit-button-padding-right"
	varIconGap         = "--uikit-button-icon-gap"
	varBorder          = "--uikit-button-border"
	varShadow          = "--uikit-button-shadow"
	varBg              = "--uikit-button-bg"
	varFg              = "--uikit-button-fg"
	varHoverBg         = "--uikit-button-hover-bg"
	varHoverFg         = "--uikit-button-hover-fg"
	varFocusBg         = "--uikit-button-focus-bg"
	varFocusFg         = "--uikit-button-focus-fg"
	varActiveBg        = "--uikit-button-active-bg"
	varActiveFg        = "--uikit-button-active-fg"
	varDisabledBg      = "--uikit-button-disabled-bg"
	varDisabledFg      = "--uikit-button-disabled-fg"
	varDisabledOpacity = "--uikit-button-disabled-opacity"
)

// Declarations returns the style as custom properties for the stylesheet, plus pointer-events
// when set. Empty values are left out.
func (s Style) Declarations() []templ.KeyValue[string, string] {
	var decls []templ.KeyValue[string, string]
	add := func(property, value string) {
		if value != "" {
			decls = append(decls, templ.KV(property, value))
		}
	}

	add(varFontSize, s.Typography.FontSize)
	add(varLineHeight, s.Typography.LineHeight)
	add(varLetterSpacing, s.Typography.LetterSpacing)
	if s.Typography.FontWeight != 0 {
		add(varFontWeight, strconv.Itoa(s.Typography.FontWeight))
	}
	add(varHeight, s.Height)
	add(varPaddingLeft, s.PaddingLeft)
	add(varPaddingRight, s.PaddingRight)
	add(varIconGap, s.IconGap)

	add(varBorder, string(s.Border))
	add(varShadow, s.Shadow)
	add(varBg, string(s.Rest.Background))
	add(varFg, string(s.Rest.Foreground))
	add(varHoverBg, string(s.Hover.Background))
	add(varHoverFg, string(s.Hover.Foreground))
	add(varFocusBg, string(s.Focus.Background))
	add(varFocusFg, string(s.Focus.Foreground))
	add(varActiveBg, string(s.Active.Background))
	add(varActiveFg, string(s.Active.Foreground))

	if s.Disabled != nil {
		add(varDisabledBg, string(s.Disabled.Background))
		add(varDisabledFg, string(s.Disabled.Foreground))
		add(varDisabledOpacity, strconv.FormatFloat(s.Disabled.Opacity, 'f', -1, 64))
	}

	add("pointer-events", s.PointerEvents)
	return decls
}

// Inline returns the declarations as the value of a style attribute.
func (s Style) Inline() templ.SafeCSS {
	var sb strings.Builder
	for _, d := range s.Declarations() {
		sb.WriteString(d.Key)
		sb.WriteString(":")
		sb.WriteString(d.Value)
		sb.WriteString(";")
	}
	return templ.SafeCSS(sb.String())
}
