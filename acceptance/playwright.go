//go:build acceptance
// +build acceptance

package acceptance

import (
	"os"
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/require"
)

// PlaywrightFixture drives the Chromium browser that clicks through the button demo.
type PlaywrightFixture struct {
	PW      *playwright.Playwright
	Browser playwright.Browser
}

// NewPlaywrightFixture launches Chromium and closes it when the test ends.
// Set HEADLESS=false to watch the buttons while debugging.
func NewPlaywrightFixture(t *testing.T) *PlaywrightFixture {
	t.Helper()

	pw, err := playwright.Run()
	require.NoError(t, err, "failed to start playwright")

	headless := os.Getenv("HEADLESS") != "false"
	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(headless),
	})
	require.NoError(t, err, "failed to launch browser")

	pf := &PlaywrightFixture{PW: pw, Browser: browser}
	t.Cleanup(pf.Close)
	return pf
}

// NewSession opens a browser context with its own cookie jar. The demo keys counters by session
// cookie, so every context starts at count 0. Reduced motion stops the loader spin while tests
// inspect loading buttons.
func (pf *PlaywrightFixture) NewSession(t *testing.T) playwright.BrowserContext {
	t.Helper()
	ctx, err := pf.Browser.NewContext(playwright.BrowserNewContextOptions{
		ReducedMotion: playwright.ReducedMotionReduce,
	})
	require.NoError(t, err, "failed to create browser context")
	t.Cleanup(func() { ctx.Close() })
	return ctx
}

// Close stops the browser and the Playwright driver.
func (pf *PlaywrightFixture) Close() {
	pf.Browser.Close()
	pf.PW.Stop()
}
