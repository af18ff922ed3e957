package button_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/networkteam/uikit/button"
	"github.com/networkteam/uikit/theme"
)

func TestResolveStyle_Sizes(t *testing.T) {
	th := theme.Default()

	tests := []struct {
		size       button.Size
		typography theme.Typography
		height     string
		base       string
		nextToIcon string
		iconGap    string
	}{
		{button.Large, th.Typography.LabelLarge, "4.8rem", "2.8rem", th.Spacing.M, th.Spacing.XXS},
		{button.Medium, th.Typography.LabelMedium, "4rem", th.Spacing.L, th.Spacing.S, th.Spacing.XXS},
		{button.Small, th.Typography.LabelSmall, "3.2rem", th.Spacing.S, th.Spacing.XS, th.Spacing.XXXS},
	}
	for _, tt := range tests {
		t.Run(string(tt.size), func(t *testing.T) {
			plain := button.ResolveStyle(button.StyleInput{Size: tt.size, Variant: button.Contained}, th)
			assert.Equal(t, tt.typography, plain.Typography)
			assert.Equal(t, tt.height, plain.Height)
			assert.Equal(t, tt.base, plain.PaddingLeft)
			assert.Equal(t, tt.base, plain.PaddingRight)
			assert.Equal(t, tt.iconGap, plain.IconGap)

			leading := button.ResolveStyle(button.StyleInput{Size: tt.size, HasLeadingIcon: true}, th)
			assert.Equal(t, tt.nextToIcon, leading.PaddingLeft)
			assert.Equal(t, tt.base, leading.PaddingRight)
			assert.Equal(t, plain.Height, leading.Height)
			assert.Equal(t, plain.Typography, leading.Typography)

			trailing := button.ResolveStyle(button.StyleInput{Size: tt.size, HasTrailingIcon: true}, th)
			assert.Equal(t, tt.base, trailing.PaddingLeft)
			assert.Equal(t, tt.nextToIcon, trailing.PaddingRight)

			both := button.ResolveStyle(button.StyleInput{Size: tt.size, HasLeadingIcon: true, HasTrailingIcon: true}, th)
			assert.Equal(t, tt.nextToIcon, both.PaddingLeft)
			assert.Equal(t, tt.nextToIcon, both.PaddingRight)
		})
	}
}

func TestResolveStyle_Variants(t *testing.T) {
	th := theme.Default()
	c := th.Colors

	tests := []struct {
		variant   button.Variant
		darkMode  bool
		rest      button.Colors
		stateBase theme.Color
		border    theme.Color
		shadow    string
	}{
		{button.Contained, false, button.Colors{Background: c.Primary[400], Foreground: c.White}, c.Primary[400], theme.Transparent, ""},
		{button.Elevated, false, button.Colors{Background: theme.Transparent, Foreground: c.Primary[500]}, c.White, theme.Transparent, th.ElevationLevel(1)},
		{button.Elevated, true, button.Colors{Background: c.White, Foreground: c.Primary[500]}, c.White, theme.Transparent, th.ElevationLevel(1)},
		{button.Outlined, false, button.Colors{Background: theme.Transparent, Foreground: c.Primary[500]}, c.White, c.Grey[400], ""},
		{button.Text, false, button.Colors{Background: theme.Transparent, Foreground: c.Primary[500]}, c.White, theme.Transparent, ""},
	}
	for _, tt := range tests {
		name := string(tt.variant)
		if tt.darkMode {
			name += "-dark"
		}
		t.Run(name, func(t *testing.T) {
			s := button.ResolveStyle(button.StyleInput{Size: button.Medium, Variant: tt.variant, DarkMode: tt.darkMode}, th)

			assert.Equal(t, tt.rest, s.Rest)
			assert.Equal(t, tt.border, s.Border)
			assert.Equal(t, tt.shadow, s.Shadow)
			assert.Equal(t, th.Hovered(tt.stateBase), s.Hover.Background)
			assert.Equal(t, th.Focused(tt.stateBase), s.Focus.Background)
			assert.Equal(t, th.Pressed(tt.stateBase), s.Active.Background)
			assert.Nil(t, s.Disabled)

			states := []theme.Color{s.Hover.Background, s.Focus.Background, s.Active.Background}
			assert.NotEqual(t, states[0], states[1])
			assert.NotEqual(t, states[1], states[2])
			assert.NotEqual(t, states[0], states[2])
			for _, st := range states {
				assert.NotEqual(t, s.Rest.Background, st)
			}
		})
	}
}

func TestResolveStyle_DisabledTreatment(t *testing.T) {
	th := theme.Default()
	c := th.Colors

	tests := []struct {
		variant  button.Variant
		darkMode bool
		want     theme.DisabledLook
	}{
		{button.Contained, false, th.Disabled(c.Primary[400])},
		{button.Elevated, false, th.Disabled(c.White)},
		{button.Elevated, true, th.Faded()},
		{button.Outlined, false, th.Disabled(c.White, c.States.Disabled.Overlay.Dark)},
		{button.Text, false, th.Disabled(c.White)},
	}
	for _, tt := range tests {
		t.Run(string(tt.variant), func(t *testing.T) {
			s := button.ResolveStyle(button.StyleInput{Variant: tt.variant, Disabled: true, DarkMode: tt.darkMode}, th)
			require.NotNil(t, s.Disabled)
			assert.Equal(t, tt.want, *s.Disabled)

			loading := button.ResolveStyle(button.StyleInput{Variant: tt.variant, Disabled: true, Loading: true, DarkMode: tt.darkMode}, th)
			assert.Nil(t, loading.Disabled)
			assert.Equal(t, "none", loading.PointerEvents)
			assert.Equal(t, s.Rest, loading.Rest)
		})
	}
}

func TestResolveStyle_UnknownValuesFallBack(t *testing.T) {
	s := button.ResolveStyle(button.StyleInput{Size: "giant", Variant: "neon", Disabled: true}, nil)

	assert.Equal(t, button.Style{}, s)
}

func TestStyle_Declarations(t *testing.T) {
	tests := []struct {
		name    string
		style   button.Style
		want    []string
		without []string
	}{
		{
			name:    "empty",
			style:   button.Style{},
			without: []string{"--uikit-button-bg", "pointer-events"},
		},
		{
			name:    "rest only",
			style:   button.Style{Height: "4rem", Rest: button.Colors{Background: "#ffffff"}},
			want:    []string{"--uikit-button-height", "--uikit-button-bg"},
			without: []string{"--uikit-button-fg", "--uikit-button-disabled-bg"},
		},
		{
			name:  "disabled and loading",
			style: button.Style{Disabled: &theme.DisabledLook{Background: "#eeeeee", Foreground: "#999999", Opacity: 0.5}, PointerEvents: "none"},
			want:  []string{"--uikit-button-disabled-bg", "--uikit-button-disabled-fg", "--uikit-button-disabled-opacity", "pointer-events"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var keys []string
			for _, d := range tt.style.Declarations() {
				assert.NotEmpty(t, d.Value, d.Key)
				keys = append(keys, d.Key)
			}
			assert.Equal(t, tt.want, keys)
			for _, k := range tt.without {
				assert.NotContains(t, keys, k)
			}
		})
	}
}

func TestStyle_Inline(t *testing.T) {
	s := button.Style{Height: "3.2rem", PointerEvents: "none"}

	assert.Equal(t, "--uikit-button-height:3.2rem;pointer-events:none;", string(s.Inline()))
}
