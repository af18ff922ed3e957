// Package loader provides spinner style variants and spinner providers.
package loader

import (
	"github.com/a-h/templ"
	"github.com/charmbracelet/bubbles/spinner"

	"github.com/networkteam/uikit/icon"
	"github.com/networkteam/uikit/theme"
)

// StyleVariant selects the colour treatment of a spinner.
type StyleVariant string

const (
	// Primary draws the spinner in the primary colour, for light surfaces.
	Primary StyleVariant = "primary"
	// Secondary draws the spinner in white, for primary coloured surfaces.
	Secondary StyleVariant = "secondary"
	// Responsive follows the current text colour.
	Responsive StyleVariant = "responsive"
)

// Provider renders a spinner.
type Provider interface {
	Loader(variant StyleVariant, size icon.Size) templ.Component
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(variant StyleVariant, size icon.Size) templ.Component

func (f ProviderFunc) Loader(variant StyleVariant, size icon.Size) templ.Component {
	return f(variant, size)
}

type svgProvider struct {
	theme *theme.Theme
}

// New returns a provider rendering an animated SVG spinner coloured from the theme.
func New(t *theme.Theme) Provider {
	if t == nil {
		t = theme.Default()
	}
	return svgProvider{theme: t}
}

// Default returns a spinner provider using the default theme.
func Default() Provider {
	return New(nil)
}

func (p svgProvider) Loader(variant StyleVariant, size icon.Size) templ.Component {
	return Spinner(p.theme, variant, size)
}

// Color returns the stroke colour of a spinner variant.
func Color(t *theme.Theme, variant StyleVariant) string {
	if t == nil {
		t = theme.Default()
	}
	switch variant {
	case Primary:
		return string(t.Colors.Primary[500])
	case Secondary:
		return string(t.Colors.White)
	default:
		return "currentColor"
	}
}

// Spinner renders the spinner of a variant at a size.
func Spinner(t *theme.Theme, variant StyleVariant, size icon.Size) templ.Component {
	return svgSpinner(Color(t, variant), variant, size)
}

func box(size icon.Size) templ.SafeCSS {
	dim := size.Dimension()
	return templ.SafeCSS("width:" + dim + ";height:" + dim + ";")
}

// TerminalSpinner is the frame set used for text renditions of a loader.
var TerminalSpinner = spinner.MiniDot

// Ticker steps through the frames of the terminal spinner.
type Ticker struct {
	model spinner.Model
}

// NewTicker returns a ticker showing the first frame.
func NewTicker() *Ticker {
	return &Ticker{model: spinner.New(spinner.WithSpinner(TerminalSpinner))}
}

// View returns the current frame.
func (t *Ticker) View() string {
	return t.model.View()
}

// Tick advances to the next frame, wrapping around, and returns it.
func (t *Ticker) Tick() string {
	t.model, _ = t.model.Update(spinner.TickMsg{})
	return t.model.View()
}

// Frame returns the i-th frame of the terminal spinner. Indexes wrap around in both directions.
func Frame(i int) string {
	n := len(TerminalSpinner.Frames)
	t := NewTicker()
	for range ((i % n) + n) % n {
		t.Tick()
	}
	return t.View()
}
