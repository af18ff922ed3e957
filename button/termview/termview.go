// Package termview renders buttons for terminals.
//
// The terminal rendition uses the same resolved style as the HTML one: rest colours, padding
// (one cell per 0.8rem), the disabled treatment as faint text and a centred spinner frame while
// loading. It is used by the preview command of the demo CLI.
package termview

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/networkteam/uikit/button"
	"github.com/networkteam/uikit/loader"
	"github.com/networkteam/uikit/theme"
)

// Glyphs maps icon names to single-cell glyphs.
var Glyphs = map[string]string{
	"plus":        "+",
	"minus":       "-",
	"arrow-left":  "←",
	"arrow-right": "→",
	"check":       "✓",
	"close":       "×",
	"refresh":     "↻",
	"cart":        "⊞",
}

const remPerCell = 0.8

// Props is the terminal subset of button props.
type Props struct {
	Size         button.Size
	Variant      button.Variant
	LeadingIcon  string
	TrailingIcon string
	Loading      bool
	Disabled     bool
	Label        string
	// Spinner is the spinner frame shown while loading, usually the View of a loader.Ticker.
	// Empty shows the first frame.
	Spinner string
}

// Render returns the button as a styled string.
func Render(props Props, t *theme.Theme, darkMode bool) string {
	if t == nil {
		t = theme.Default()
	}
	size := props.Size
	if size == "" {
		size = button.Medium
	}
	variant := props.Variant
	if variant == "" {
		variant = button.Contained
	}

	s := button.ResolveStyle(button.StyleInput{
		Size:            size,
		Variant:         variant,
		Loading:         props.Loading,
		Disabled:        props.Disabled || props.Loading,
		HasLeadingIcon:  props.LeadingIcon != "",
		HasTrailingIcon: props.TrailingIcon != "",
		DarkMode:        darkMode,
	}, t)

	var parts []string
	if props.LeadingIcon != "" {
		parts = append(parts, glyph(props.LeadingIcon))
	}
	parts = append(parts, props.Label)
	if props.TrailingIcon != "" {
		parts = append(parts, glyph(props.TrailingIcon))
	}
	content := strings.Join(parts, " ")

	if props.Loading {
		frame := props.Spinner
		if frame == "" {
			frame = loader.NewTicker().View()
		}
		content = overlaySpinner(lipgloss.Width(content), frame)
	}

	style := lipgloss.NewStyle().
		PaddingLeft(cells(s.PaddingLeft)).
		PaddingRight(cells(s.PaddingRight))
	if s.Typography.FontWeight >= 600 {
		style = style.Bold(true)
	}
	if bg, ok := terminalColor(s.Rest.Background); ok {
		style = style.Background(bg)
	}
	if fg, ok := terminalColor(s.Rest.Foreground); ok {
		style = style.Foreground(fg)
	}
	if s.Border != "" && s.Border != theme.Transparent {
		style = style.Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(s.Border))
	}
	if s.Disabled != nil {
		style = style.Faint(true)
		if fg, ok := terminalColor(s.Disabled.Foreground); ok {
			style = style.Foreground(fg)
		}
	}

	return style.Render(content)
}

// overlaySpinner blanks the content but keeps its width, with the frame in the middle.
func overlaySpinner(width int, frame string) string {
	if width < 1 {
		return frame
	}
	left := (width - 1) / 2
	right := width - 1 - left
	return strings.Repeat(" ", left) + frame + strings.Repeat(" ", right)
}

func glyph(name string) string {
	if g, ok := Glyphs[name]; ok {
		return g
	}
	return "□"
}

func terminalColor(c theme.Color) (lipgloss.Color, bool) {
	if c == "" || c == theme.Transparent {
		return "", false
	}
	return lipgloss.Color(c), true
}

// cells converts a rem length to terminal cells, rounding and keeping at least one cell.
func cells(length string) int {
	value, err := strconv.ParseFloat(strings.TrimSuffix(length, "rem"), 64)
	if err != nil || value <= 0 {
		return 0
	}
	n := int(value/remPerCell + 0.5)
	return max(n, 1)
}
