package common

// StateApplier applies one event to state. Each applier type-asserts the
// event it was registered for.
type StateApplier[S any] func(state *S, event Event)

// StateBuilder folds events onto state with appliers registered by event type.
//
// Example:
//
//	builder := common.NewStateBuilder(NewCartState).
//	    On("ItemAdded", applyItemAdded).
//	    On("ItemRemoved", applyItemRemoved)
//
//	func RebuildState(book *common.EventBook) CartState {
//	    return builder.Rebuild(book)
//	}
type StateBuilder[S any] struct {
	newState func() S
	appliers map[string]StateApplier[S]
}

// NewStateBuilder creates a StateBuilder for state type S.
func NewStateBuilder[S any](newState func() S) *StateBuilder[S] {
	return &StateBuilder[S]{
		newState: newState,
		appliers: make(map[string]StateApplier[S]),
	}
}

// On registers an applier for an event type.
func (sb *StateBuilder[S]) On(eventType string, apply StateApplier[S]) *StateBuilder[S] {
	sb.appliers[eventType] = apply
	return sb
}

// Apply applies a single event to state. Unknown event types are ignored.
func (sb *StateBuilder[S]) Apply(state *S, event Event) {
	if event == nil {
		return
	}
	if apply, ok := sb.appliers[event.EventType()]; ok {
		apply(state, event)
	}
}

// Rebuild reconstructs state from an EventBook.
func (sb *StateBuilder[S]) Rebuild(book *EventBook) S {
	state := sb.newState()
	if book == nil {
		return state
	}
	for _, page := range book.Pages {
		sb.Apply(&state, page.Event)
	}
	return state
}
