package logic

import "github.com/Ramakant55/Trendora-Boutique/common"

// HandleClearCart drops every line. An already empty cart produces no event.
func HandleClearCart(state *CartState, reason string) common.Event {
	if len(state.Lines) == 0 {
		return nil
	}
	return CartCleared{Lines: len(state.Lines), Reason: reason}
}
