package views

import (
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/networkteam/uikit/button"
	"github.com/networkteam/uikit/query"
)

// Element ids of the fragments that are replaced by server-sent events.
const (
	CounterID  = "counter"
	ProductsID = "products"
)

// CounterProps configures the counter fragment.
type CounterProps struct {
	Count     int
	Increment button.Props
	Decrement button.Props
}

// ProductsProps configures the products fragment.
type ProductsProps struct {
	// Count is the number of products to list.
	Count   int
	Result  query.Result[query.Products]
	Refresh button.Props
	Fetches []query.Fetch
	// Now is the reference time of relative timestamps; zero means the current time.
	Now time.Time
}

func (p ProductsProps) now() time.Time {
	if p.Now.IsZero() {
		return time.Now()
	}
	return p.Now
}

func productsStatusText(props ProductsProps, now time.Time) string {
	r := props.Result
	switch r.Status {
	case query.StatusUninitialized:
		return "Not loaded yet"
	case query.StatusPending:
		return "Loading products…"
	case query.StatusFulfilled:
		return fmt.Sprintf("Showing %d of %d products, fetched %s",
			len(r.Data.First(props.Count)), len(r.Data.Products), formatDurationSince(r.FetchedAt, now))
	case query.StatusRejected:
		return fmt.Sprintf("Failed to load products: %v", r.Err)
	}
	return ""
}

func productsStatusClasses(status query.Status) string {
	return "demo-status demo-status--" + string(status)
}

func productLabel(p query.Product) string {
	return fmt.Sprintf("%s - %s $", p.Title, formatPrice(p.Price))
}

// newestFirst returns the fetches in reverse order without modifying the slice.
func newestFirst(fetches []query.Fetch) []query.Fetch {
	fetches = slices.Clone(fetches)
	slices.Reverse(fetches)
	return fetches
}

func fetchStatusLabel(f query.Fetch) string {
	if f.Err != nil {
		return "error"
	}
	return strconv.Itoa(f.StatusCode)
}

func fetchBadge(f query.Fetch) BadgeProps {
	if f.Failed() {
		return BadgeProps{Variant: BadgeVariantError}
	}
	return BadgeProps{Variant: BadgeVariantSuccess}
}
