package common

import "testing"

type counterState struct {
	Names []string
	Total int
}

type addedEvent struct{ Name string }

func (addedEvent) EventType() string { return "Added" }

type resetEvent struct{}

func (resetEvent) EventType() string { return "Reset" }

func newCounterBuilder() *StateBuilder[counterState] {
	return NewStateBuilder(func() counterState { return counterState{} }).
		On("Added", func(s *counterState, e Event) {
			added := e.(addedEvent)
			s.Names = append(s.Names, added.Name)
			s.Total++
		}).
		On("Reset", func(s *counterState, _ Event) {
			*s = counterState{}
		})
}

func TestStateBuilder_Rebuild_appliesEventsInOrder(t *testing.T) {
	book := &EventBook{}
	for _, e := range []Event{addedEvent{"a"}, addedEvent{"b"}, resetEvent{}, addedEvent{"c"}} {
		book.Append(e)
	}

	state := newCounterBuilder().Rebuild(book)
	if state.Total != 1 {
		t.Errorf("expected total 1, got %d", state.Total)
	}
	if len(state.Names) != 1 || state.Names[0] != "c" {
		t.Errorf("expected [c], got %v", state.Names)
	}
}

func TestStateBuilder_Rebuild_nilBookReturnsNewState(t *testing.T) {
	state := newCounterBuilder().Rebuild(nil)
	if state.Total != 0 || state.Names != nil {
		t.Errorf("expected zero state, got %+v", state)
	}
}

func TestStateBuilder_Apply_ignoresUnknownEvents(t *testing.T) {
	state := counterState{}
	newCounterBuilder().Apply(&state, testEvent{Name: "ignored"})
	newCounterBuilder().Apply(&state, nil)
	if state.Total != 0 {
		t.Errorf("expected unknown events to be ignored, got total %d", state.Total)
	}
}
