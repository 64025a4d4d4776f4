package logic

import (
	"strconv"
	"strings"

	"github.com/Ramakant55/Trendora-Boutique/common"
)

// HandleUpdateQuantity sets a line's quantity.
//
// A missing line or an unchanged quantity produces no event. Zero removes
// the line. Negative quantities and quantities above MaxQuantity are
// rejected.
func HandleUpdateQuantity(state *CartState, productID, quantity int) (common.Event, error) {
	if err := common.RequireNonNegative(quantity, ErrMsgQuantityNegative); err != nil {
		return nil, err
	}
	if err := common.RequireInRange(quantity, 0, MaxQuantity, ErrMsgQuantityTooLarge); err != nil {
		return nil, err
	}

	i := state.Find(productID)
	if i < 0 {
		return nil, nil
	}
	line := state.Lines[i]

	if quantity == 0 {
		return ItemRemoved{ProductID: productID, Quantity: line.Quantity}, nil
	}
	if quantity == line.Quantity {
		return nil, nil
	}
	return QuantityUpdated{
		ProductID:   productID,
		OldQuantity: line.Quantity,
		NewQuantity: quantity,
	}, nil
}

// ParseQuantity reads the leading integer of raw, ignoring surrounding
// whitespace: "3" and " 3 items" give 3, "2.7" gives 2. ok is false when
// raw does not start with a number.
func ParseQuantity(raw string) (quantity int, ok bool) {
	s := strings.TrimSpace(raw)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
