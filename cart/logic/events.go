package logic

import "github.com/Ramakant55/Trendora-Boutique/common"

// Event type names.
const (
	EventItemAdded           = "ItemAdded"
	EventQuantityIncremented = "QuantityIncremented"
	EventQuantityUpdated     = "QuantityUpdated"
	EventItemRemoved         = "ItemRemoved"
	EventCartCleared         = "CartCleared"
)

// ItemAdded appends a new line with quantity 1.
type ItemAdded struct {
	ProductID int          `json:"product_id"`
	Name      string       `json:"name"`
	Image     string       `json:"image"`
	UnitPrice common.Money `json:"unit_price"`
	Quantity  int          `json:"quantity"`
}

func (ItemAdded) EventType() string { return EventItemAdded }

// QuantityIncremented records a repeat add of a product already in the cart.
type QuantityIncremented struct {
	ProductID   int `json:"product_id"`
	OldQuantity int `json:"old_quantity"`
	NewQuantity int `json:"new_quantity"`
}

func (QuantityIncremented) EventType() string { return EventQuantityIncremented }

// QuantityUpdated sets a line's quantity to a new positive value.
type QuantityUpdated struct {
	ProductID   int `json:"product_id"`
	OldQuantity int `json:"old_quantity"`
	NewQuantity int `json:"new_quantity"`
}

func (QuantityUpdated) EventType() string { return EventQuantityUpdated }

// ItemRemoved deletes a line.
type ItemRemoved struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

func (ItemRemoved) EventType() string { return EventItemRemoved }

// CartCleared drops every line.
type CartCleared struct {
	Lines  int    `json:"lines"`
	Reason string `json:"reason"`
}

func (CartCleared) EventType() string { return EventCartCleared }
