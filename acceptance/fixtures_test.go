//go:build acceptance
// +build acceptance

package acceptance

import (
	"testing"

	"github.com/playwright-community/playwright-go"
)

// TestFixtures bundles all commonly needed test fixtures.
type TestFixtures struct {
	App  *TestApp
	PW   *PlaywrightFixture
	Ctx  playwright.BrowserContext
	Demo *DemoPage
}

// WithTestFixtures creates all fixtures, registers cleanup with t.Cleanup(), and calls the test function.
// setup runs after the app started and before the page is opened.
func WithTestFixtures(t *testing.T, setup func(app *TestApp), fn func(t *testing.T, f *TestFixtures)) {
	t.Helper()

	app := NewTestApp(t)
	t.Cleanup(func() { app.Close() })

	if setup != nil {
		setup(app)
	}

	pw := NewPlaywrightFixture(t)
	ctx := pw.NewSession(t)

	fn(t, &TestFixtures{
		App:  app,
		PW:   pw,
		Ctx:  ctx,
		Demo: NewDemoPage(t, ctx, app.AppURL),
	})
}
