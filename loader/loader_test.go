package loader_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/networkteam/uikit/icon"
	"github.com/networkteam/uikit/internal/htmltest"
	"github.com/networkteam/uikit/loader"
	"github.com/networkteam/uikit/theme"
)

func TestColor(t *testing.T) {
	th := theme.Default()

	assert.Equal(t, string(th.Colors.Primary[500]), loader.Color(th, loader.Primary))
	assert.Equal(t, string(th.Colors.White), loader.Color(th, loader.Secondary))
	assert.Equal(t, "currentColor", loader.Color(th, loader.Responsive))
	assert.Equal(t, "currentColor", loader.Color(th, loader.StyleVariant("other")))
	assert.Equal(t, string(th.Colors.White), loader.Color(nil, loader.Secondary))
}

func TestDefault_Spinner(t *testing.T) {
	doc := htmltest.Render(t, loader.Default().Loader(loader.Secondary, icon.SizeXS))

	svg := htmltest.ByTag(doc, "svg")
	require.NotNil(t, svg)
	assert.True(t, htmltest.HasClass(svg, "uikit-loader"))
	assert.True(t, htmltest.HasClass(svg, "uikit-loader--secondary"))
	width, _ := htmltest.Style(svg, "width")
	assert.Equal(t, "1.6rem", width)
	role, _ := htmltest.Attr(svg, "role")
	assert.Equal(t, "progressbar", role)

	for _, el := range htmltest.Elements(svg) {
		stroke, _ := htmltest.Attr(el, "stroke")
		assert.Equal(t, "#ffffff", stroke, el.Data)
	}
}

func TestFrame(t *testing.T) {
	frames := loader.TerminalSpinner.Frames
	require.NotEmpty(t, frames)

	assert.Equal(t, frames[0], loader.Frame(0))
	assert.Equal(t, frames[1], loader.Frame(1))
	assert.Equal(t, frames[0], loader.Frame(len(frames)))
	assert.Equal(t, frames[len(frames)-1], loader.Frame(-1))
}

func TestFrame_ExtremeIndexes(t *testing.T) {
	frames := loader.TerminalSpinner.Frames

	assert.NotPanics(t, func() {
		assert.Contains(t, frames, loader.Frame(math.MinInt))
		assert.Contains(t, frames, loader.Frame(math.MaxInt))
	})
}

func TestTicker(t *testing.T) {
	frames := loader.TerminalSpinner.Frames
	ticker := loader.NewTicker()

	assert.Equal(t, frames[0], ticker.View())
	for i := 1; i <= len(frames); i++ {
		assert.Equal(t, frames[i%len(frames)], ticker.Tick())
	}
	assert.Equal(t, frames[0], ticker.View())
}
