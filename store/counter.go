package store

// Counter action types.
const (
	ActionIncrement = "counter/increment"
	ActionDecrement = "counter/decrement"
)

// CounterState is the state of the counter slice.
type CounterState struct {
	Value int
}

// Increment returns the increment action.
func Increment() Action { return Action{Type: ActionIncrement} }

// Decrement returns the decrement action.
func Decrement() Action { return Action{Type: ActionDecrement} }

// CounterReducer handles the counter actions and ignores all others.
// The value is not bounded; it may go negative.
func CounterReducer(prev CounterState, action Action) CounterState {
	switch action.Type {
	case ActionIncrement:
		return CounterState{Value: prev.Value + 1}
	case ActionDecrement:
		return CounterState{Value: prev.Value - 1}
	default:
		return prev
	}
}

// NewCounter creates a store for the counter slice starting at zero.
func NewCounter(opts Options) *Store[CounterState] {
	return New(CounterState{}, CounterReducer, opts)
}
