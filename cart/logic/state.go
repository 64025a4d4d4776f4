package logic

import (
	"slices"

	"github.com/Ramakant55/Trendora-Boutique/common"
)

// stateBuilder is the single source of truth for event -> state transitions.
var stateBuilder = common.NewStateBuilder(NewCartState).
	On(EventItemAdded, applyItemAdded).
	On(EventQuantityIncremented, applyQuantityIncremented).
	On(EventQuantityUpdated, applyQuantityUpdated).
	On(EventItemRemoved, applyItemRemoved).
	On(EventCartCleared, applyCartCleared)

// RebuildState reconstructs cart state from its journal.
func RebuildState(book *common.EventBook) CartState {
	return stateBuilder.Rebuild(book)
}

func applyEvent(state *CartState, event common.Event) {
	stateBuilder.Apply(state, event)
}

func applyItemAdded(state *CartState, e common.Event) {
	event := e.(ItemAdded)
	state.Lines = append(state.Lines, CartLine{
		ProductID: event.ProductID,
		Name:      event.Name,
		Image:     event.Image,
		UnitPrice: event.UnitPrice,
		Quantity:  event.Quantity,
	})
}

func applyQuantityIncremented(state *CartState, e common.Event) {
	event := e.(QuantityIncremented)
	if i := state.Find(event.ProductID); i >= 0 {
		state.Lines[i].Quantity = event.NewQuantity
	}
}

func applyQuantityUpdated(state *CartState, e common.Event) {
	event := e.(QuantityUpdated)
	if i := state.Find(event.ProductID); i >= 0 {
		state.Lines[i].Quantity = event.NewQuantity
	}
}

func applyItemRemoved(state *CartState, e common.Event) {
	event := e.(ItemRemoved)
	if i := state.Find(event.ProductID); i >= 0 {
		state.Lines = slices.Delete(state.Lines, i, i+1)
	}
}

func applyCartCleared(state *CartState, _ common.Event) {
	state.Lines = make([]CartLine, 0)
}
