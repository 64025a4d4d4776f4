package logic

import "github.com/Ramakant55/Trendora-Boutique/common"

// HandleRemoveFromCart removes the line for productID. A product that is
// not in the cart produces no event.
func HandleRemoveFromCart(state *CartState, productID int) common.Event {
	i := state.Find(productID)
	if i < 0 {
		return nil
	}
	return ItemRemoved{
		ProductID: productID,
		Quantity:  state.Lines[i].Quantity,
	}
}
