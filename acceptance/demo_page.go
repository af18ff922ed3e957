//go:build acceptance
// +build acceptance

package acceptance

import (
	"strconv"
	"strings"
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/require"
)

// DemoPage provides helper methods for interacting with the demo page.
type DemoPage struct {
	Page playwright.Page
	URL  string
	t    *testing.T
}

// NewDemoPage opens the demo page.
func NewDemoPage(t *testing.T, ctx playwright.BrowserContext, url string) *DemoPage {
	t.Helper()

	page, err := ctx.NewPage()
	require.NoError(t, err)

	_, err = page.Goto(url)
	require.NoError(t, err)

	return &DemoPage{Page: page, URL: url, t: t}
}

// Button returns the locator of a control button by name.
func (dp *DemoPage) Button(name string) playwright.Locator {
	return dp.Page.Locator("#button-" + name)
}

// Click clicks a control button.
func (dp *DemoPage) Click(name string) {
	dp.t.Helper()
	require.NoError(dp.t, dp.Button(name).Click(), "failed to click %s", name)
}

// Count returns the displayed count.
func (dp *DemoPage) Count() int {
	dp.t.Helper()
	text, err := dp.Page.GetByTestId("count").TextContent()
	require.NoError(dp.t, err)
	n, err := strconv.Atoi(strings.TrimSpace(text))
	require.NoError(dp.t, err)
	return n
}

// WaitForCount waits until the count shows n.
func (dp *DemoPage) WaitForCount(n int) {
	dp.t.Helper()
	err := dp.Page.Locator("[data-testid='count']:text-is('" + strconv.Itoa(n) + "')").WaitFor(playwright.LocatorWaitForOptions{
		Timeout: playwright.Float(5000),
	})
	require.NoError(dp.t, err, "count did not become %d", n)
}

// WaitForProductsStatus waits until the product section has the given query status.
func (dp *DemoPage) WaitForProductsStatus(status string) {
	dp.t.Helper()
	err := dp.Page.Locator("#products[data-status='" + status + "']").WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateAttached,
		Timeout: playwright.Float(5000),
	})
	require.NoError(dp.t, err, "products did not become %s", status)
}

// ProductItems returns the texts of the listed products.
func (dp *DemoPage) ProductItems() []string {
	dp.t.Helper()
	texts, err := dp.Page.GetByTestId("product-item").AllTextContents()
	require.NoError(dp.t, err)
	return texts
}
