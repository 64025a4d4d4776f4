package rpc

import (
	cart "github.com/Ramakant55/Trendora-Boutique/cart/logic"
	catalog "github.com/Ramakant55/Trendora-Boutique/catalog/logic"
	"github.com/Ramakant55/Trendora-Boutique/common"
)

// Empty is the request of parameterless calls.
type Empty struct{}

type ProductList struct {
	Products []catalog.Product `json:"products"`
}

type CollectionList struct {
	Collections []catalog.Collection `json:"collections"`
}

type TestimonialList struct {
	Testimonials []catalog.Testimonial `json:"testimonials"`
}

type FilterRequest struct {
	Collection string `json:"collection"`
}

// FilterResponse carries the matching products. Empty is set when nothing
// matched so clients can show a "no products" state.
type FilterResponse struct {
	Collection *catalog.Collection `json:"collection,omitempty"`
	Products   []catalog.Product   `json:"products"`
	Empty      bool                `json:"empty"`
}

type SessionRequest struct {
	SessionID string `json:"session_id"`
}

type AddToCartRequest struct {
	SessionID string `json:"session_id"`
	ProductID int    `json:"product_id"`
}

type RemoveFromCartRequest struct {
	SessionID string `json:"session_id"`
	ProductID int    `json:"product_id"`
}

// UpdateQuantityRequest carries the quantity as typed by the shopper.
// Values that do not parse as an integer leave the cart unchanged.
type UpdateQuantityRequest struct {
	SessionID string `json:"session_id"`
	ProductID int    `json:"product_id"`
	Quantity  string `json:"quantity"`
}

type CartReply struct {
	SessionID string          `json:"session_id"`
	Lines     []cart.CartLine `json:"lines"`
	Count     int             `json:"count"`
	Total     common.Money    `json:"total"`
	Mode      string          `json:"mode"`
}

type EndSessionReply struct {
	Ended bool `json:"ended"`
}

func newCartReply(sessionID string, snap cart.Snapshot) *CartReply {
	return &CartReply{
		SessionID: sessionID,
		Lines:     snap.Lines,
		Count:     snap.Count,
		Total:     snap.Total,
		Mode:      snap.Mode.String(),
	}
}
