package theme

import (
	"github.com/lucasb-eyer/go-colorful"
)

// State layer strengths. Each interaction state blends stronger than the previous one so that
// rest, hover, focus and pressed never collapse into the same colour.
const (
	HoverLayer    = 0.08
	FocusLayer    = 0.12
	PressedLayer  = 0.16
	DisabledLayer = 0.88

	// DisabledOpacity is used where a surface is only faded instead of recoloured.
	DisabledOpacity = 0.5
)

// DisabledLook is the visual treatment of a disabled surface.
// Empty colours mean "keep the rest colour".
type DisabledLook struct {
	Background Color
	Foreground Color
	Opacity    float64
}

// Hovered returns the background of a surface with the given base colour while hovered.
func (t *Theme) Hovered(base Color) Color {
	return t.stateLayer(base, HoverLayer)
}

// Focused returns the background of a surface with the given base colour while focused.
func (t *Theme) Focused(base Color) Color {
	return t.stateLayer(base, FocusLayer)
}

// Pressed returns the background of a surface with the given base colour while pressed.
func (t *Theme) Pressed(base Color) Color {
	return t.stateLayer(base, PressedLayer)
}

// Disabled returns the disabled treatment for a surface with the given base colour.
// The optional overlay replaces the light disabled overlay of the palette.
func (t *Theme) Disabled(base Color, overlay ...Color) DisabledLook {
	o := t.Colors.States.Disabled.Overlay.Light
	if len(overlay) > 0 && overlay[0] != "" {
		o = overlay[0]
	}
	return DisabledLook{
		Background: Blend(base, o, DisabledLayer),
		Foreground: t.Colors.States.Disabled.Foreground,
		Opacity:    1,
	}
}

// Faded returns a disabled treatment that only lowers the opacity of the surface.
func (t *Theme) Faded() DisabledLook {
	return DisabledLook{Opacity: DisabledOpacity}
}

func (t *Theme) stateLayer(base Color, amount float64) Color {
	overlay := t.Colors.States.Overlay
	if IsDark(base) {
		overlay = t.Colors.White
	}
	return Blend(base, overlay, amount)
}

// Blend mixes amount of overlay into base in RGB space.
// If either colour cannot be parsed base is returned unchanged.
func Blend(base, overlay Color, amount float64) Color {
	b, err := colorful.Hex(string(base))
	if err != nil {
		return base
	}
	o, err := colorful.Hex(string(overlay))
	if err != nil {
		return base
	}
	return Color(b.BlendRgb(o, amount).Clamped().Hex())
}

// IsDark reports whether the colour has a perceptual lightness below one half.
// Unparseable colours (like transparent) count as light.
func IsDark(c Color) bool {
	parsed, err := colorful.Hex(string(c))
	if err != nil {
		return false
	}
	l, _, _ := parsed.Lab()
	return l < 0.5
}
