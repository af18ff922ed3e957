package termview

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/networkteam/uikit/button"
	"github.com/networkteam/uikit/loader"
)

func TestCells(t *testing.T) {
	assert.Equal(t, 3, cells("2.4rem"))
	assert.Equal(t, 2, cells("1.2rem"))
	assert.Equal(t, 1, cells("0.2rem"))
	assert.Equal(t, 0, cells(""))
	assert.Equal(t, 0, cells("auto"))
}

func TestOverlaySpinner(t *testing.T) {
	assert.Equal(t, "  x  ", overlaySpinner(5, "x"))
	assert.Equal(t, " x  ", overlaySpinner(4, "x"))
	assert.Equal(t, "x", overlaySpinner(0, "x"))
}

func TestRender_Label(t *testing.T) {
	out := Render(Props{Size: button.Small, Label: "Save", LeadingIcon: "check"}, nil, false)

	assert.Contains(t, out, "✓ Save")
	// small: one cell next to the icon, two cells on the other side
	assert.Equal(t, lipgloss.Width("✓ Save")+1+2, lipgloss.Width(out))
}

func TestRender_LoadingKeepsWidth(t *testing.T) {
	idle := Render(Props{Label: "Increment"}, nil, false)
	loading := Render(Props{Label: "Increment", Loading: true}, nil, false)

	assert.Equal(t, lipgloss.Width(idle), lipgloss.Width(loading))
	assert.NotContains(t, loading, "Increment")
	assert.Contains(t, loading, loader.Frame(0))
}

func TestRender_LoadingShowsTickerFrame(t *testing.T) {
	ticker := loader.NewTicker()
	ticker.Tick()
	frame := ticker.Tick()

	out := Render(Props{Label: "Save", Loading: true, Spinner: frame}, nil, false)

	assert.Contains(t, out, frame)
	assert.Equal(t, loader.Frame(2), frame)
}

func TestRender_OutlinedHasBorder(t *testing.T) {
	out := Render(Props{Variant: button.Outlined, Label: "Go"}, nil, false)

	assert.Len(t, strings.Split(out, "\n"), 3)
}

func TestRender_UnknownIcon(t *testing.T) {
	out := Render(Props{Label: "Go", TrailingIcon: "unicorn"}, nil, false)
	assert.Contains(t, out, "Go □")
}
