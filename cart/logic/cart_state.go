package logic

import "github.com/Ramakant55/Trendora-Boutique/common"

// MaxQuantity is the most units of one product a line may hold.
const MaxQuantity = 99

// CartLine is one product in the cart with a snapshot of its catalog data.
type CartLine struct {
	ProductID int          `json:"product_id"`
	Name      string       `json:"name"`
	Image     string       `json:"image"`
	UnitPrice common.Money `json:"unit_price"`
	Quantity  int          `json:"quantity"`
}

// LineTotal is quantity times unit price.
func (l CartLine) LineTotal() common.Money {
	return l.UnitPrice.Times(l.Quantity)
}

// CartState is the ordered set of lines, at most one per product.
type CartState struct {
	Lines []CartLine
}

func NewCartState() CartState {
	return CartState{Lines: make([]CartLine, 0)}
}

// Find returns the index of the line for productID, or -1.
func (s *CartState) Find(productID int) int {
	for i := range s.Lines {
		if s.Lines[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// Count is the sum of line quantities.
func (s *CartState) Count() int {
	n := 0
	for _, line := range s.Lines {
		n += line.Quantity
	}
	return n
}

// Total is computed from the lines on every call.
func (s *CartState) Total() common.Money {
	var total common.Money
	for _, line := range s.Lines {
		total += line.LineTotal()
	}
	return total
}

// Mode is the cart's display mode.
type Mode int

const (
	ModeEmpty Mode = iota
	ModeNonEmpty
)

func (m Mode) String() string {
	if m == ModeNonEmpty {
		return "non_empty"
	}
	return "empty"
}

// MarshalText encodes the mode by name.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Mode reports whether the cart has any lines.
func (s *CartState) Mode() Mode {
	if len(s.Lines) == 0 {
		return ModeEmpty
	}
	return ModeNonEmpty
}
