// Package icon provides icon size tokens and glyph providers.
package icon

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/a-h/templ"
	"github.com/samber/lo"
)

// Size is an abstract icon size token.
type Size string

const (
	SizeXS Size = "xs"
	SizeS  Size = "s"
	SizeM  Size = "m"
	SizeL  Size = "l"
)

// Dimension returns the edge length of the token as a CSS length.
// Unknown tokens use the small size.
func (s Size) Dimension() string {
	switch s {
	case SizeXS:
		return "1.6rem"
	case SizeM:
		return "2.4rem"
	case SizeL:
		return "3.2rem"
	default:
		return "2rem"
	}
}

// Provider renders a glyph for an icon name.
type Provider interface {
	Icon(name string, size Size) templ.Component
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(name string, size Size) templ.Component

func (f ProviderFunc) Icon(name string, size Size) templ.Component {
	return f(name, size)
}

//go:embed icons.json
var iconsJSON []byte

// paths maps icon names to SVG path data (24x24 viewbox, stroked).
var paths map[string]string

func init() {
	if err := json.Unmarshal(iconsJSON, &paths); err != nil {
		panic(fmt.Sprintf("icon: failed to parse embedded icons: %v", err))
	}
}

// Names returns the names of the built-in icons in sorted order.
func Names() []string {
	names := lo.Keys(paths)
	slices.Sort(names)
	return names
}

// Has reports whether a built-in icon with the name exists.
func Has(name string) bool {
	_, ok := paths[name]
	return ok
}

type svgProvider struct{}

// Default returns the provider for the built-in SVG icons.
func Default() Provider {
	return svgProvider{}
}

func (svgProvider) Icon(name string, size Size) templ.Component {
	return SVG(name, size)
}

// box is the inline size of a glyph.
func (s Size) box() templ.SafeCSS {
	dim := s.Dimension()
	return templ.SafeCSS("width:" + dim + ";height:" + dim + ";")
}
