package demo

import (
	"context"
	"fmt"

	"github.com/networkteam/uikit/button"
	"github.com/networkteam/uikit/demo/views"
	"github.com/networkteam/uikit/query"
	"github.com/networkteam/uikit/store"
)

// Names of the page controls, used in action URLs.
const (
	ControlIncrement = "increment"
	ControlDecrement = "decrement"
	ControlRefresh   = "refresh"
)

var controlNames = []string{ControlIncrement, ControlDecrement, ControlRefresh}

// controls builds the button props of every control for the current state of a session.
// Actions are resolved against these props, so a control that renders disabled cannot be activated.
func (h *Handler) controls(sess *Session, products query.Result[query.Products]) map[string]button.Props {
	dispatch := func(action store.Action) button.ClickHandler {
		return func(ctx context.Context) error {
			if _, err := sess.Counter.Dispatch(action); err != nil {
				return fmt.Errorf("dispatching %s: %w", action.Type, err)
			}
			return nil
		}
	}

	return map[string]button.Props{
		ControlIncrement: {
			ID:          "button-" + ControlIncrement,
			Form:        views.ActionFormID(ControlIncrement),
			Type:        button.TypeSubmit,
			Variant:     button.Contained,
			LeadingIcon: "plus",
			Tags:        []string{"counter"},
			OnClick:     dispatch(store.Increment()),
			Children:    button.Label("Increment"),
		},
		ControlDecrement: {
			ID:          "button-" + ControlDecrement,
			Form:        views.ActionFormID(ControlDecrement),
			Type:        button.TypeSubmit,
			Variant:     button.Outlined,
			LeadingIcon: "minus",
			Tags:        []string{"counter"},
			OnClick:     dispatch(store.Decrement()),
			Children:    button.Label("Decrement"),
		},
		ControlRefresh: {
			ID:           "button-" + ControlRefresh,
			Form:         views.ActionFormID(ControlRefresh),
			Type:         button.TypeSubmit,
			Size:         button.Small,
			Variant:      button.Text,
			TrailingIcon: "refresh",
			Loading:      products.Status == query.StatusPending,
			Tags:         []string{"products"},
			OnClick: func(ctx context.Context) error {
				h.products.RefetchAsync()
				return nil
			},
			Children: button.Label("Refresh"),
		},
	}
}
