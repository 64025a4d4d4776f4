package web

import (
	cart "github.com/Ramakant55/Trendora-Boutique/cart/logic"
	catalog "github.com/Ramakant55/Trendora-Boutique/catalog/logic"
	"github.com/Ramakant55/Trendora-Boutique/common"
)

// Storefront copy.
const (
	MsgNoProducts = "No products found"
	MsgEmptyCart  = "Your cart is currently empty"
	ShippingFree  = "Free"
	ContinueURL   = "/products"
	maxQtyOption  = 10
)

type ProductView struct {
	ID           int           `json:"id"`
	Name         string        `json:"name"`
	Category     string        `json:"category"`
	Price        common.Money  `json:"price"`
	PriceDisplay string        `json:"price_display"`
	Image        string        `json:"image"`
	Rating       float64       `json:"rating"`
	Stars        catalog.Stars `json:"stars"`
}

func newProductView(p catalog.Product) ProductView {
	return ProductView{
		ID:           p.ID,
		Name:         p.Name,
		Category:     p.Category,
		Price:        p.Price,
		PriceDisplay: p.Price.String(),
		Image:        p.Image,
		Rating:       p.Rating,
		Stars:        catalog.RatingStars(p.Rating),
	}
}

func newProductViews(products []catalog.Product) []ProductView {
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, newProductView(p))
	}
	return views
}

type TestimonialView struct {
	catalog.Testimonial
	Stars catalog.Stars `json:"stars"`
}

func newTestimonialViews(testimonials []catalog.Testimonial) []TestimonialView {
	views := make([]TestimonialView, 0, len(testimonials))
	for _, t := range testimonials {
		views = append(views, TestimonialView{Testimonial: t, Stars: catalog.RatingStars(float64(t.Rating))})
	}
	return views
}

// BadgeView drives the navbar cart badge, which is hidden at zero.
type BadgeView struct {
	Count     int  `json:"count"`
	ShowBadge bool `json:"show_badge"`
}

func newBadgeView(count int) BadgeView {
	return BadgeView{Count: count, ShowBadge: count > 0}
}

type LineView struct {
	ProductID        int          `json:"product_id"`
	Name             string       `json:"name"`
	Image            string       `json:"image"`
	UnitPrice        common.Money `json:"unit_price"`
	UnitPriceDisplay string       `json:"unit_price_display"`
	Quantity         int          `json:"quantity"`
	QuantityOptions  []int        `json:"quantity_options"`
	LineTotal        string       `json:"line_total"`
}

// CartView is the cart page. Empty carts carry the empty-state message and
// a link back to the products page instead of lines and totals.
type CartView struct {
	Mode         string     `json:"mode"`
	Count        int        `json:"count"`
	Lines        []LineView `json:"lines,omitempty"`
	Subtotal     string     `json:"subtotal,omitempty"`
	Shipping     string     `json:"shipping,omitempty"`
	Total        string     `json:"total,omitempty"`
	TotalCents   int64      `json:"total_cents"`
	Message      string     `json:"message,omitempty"`
	ContinueLink string     `json:"continue_link,omitempty"`
}

func newCartView(snap cart.Snapshot) CartView {
	view := CartView{
		Mode:       snap.Mode.String(),
		Count:      snap.Count,
		TotalCents: snap.Total.Cents(),
	}
	if snap.Mode == cart.ModeEmpty {
		view.Message = MsgEmptyCart
		view.ContinueLink = ContinueURL
		return view
	}

	view.Lines = make([]LineView, 0, len(snap.Lines))
	for _, line := range snap.Lines {
		view.Lines = append(view.Lines, LineView{
			ProductID:        line.ProductID,
			Name:             line.Name,
			Image:            line.Image,
			UnitPrice:        line.UnitPrice,
			UnitPriceDisplay: line.UnitPrice.String(),
			Quantity:         line.Quantity,
			QuantityOptions:  quantityOptions(line.Quantity),
			LineTotal:        line.LineTotal().String(),
		})
	}
	// There is no shipping charge, so subtotal and total are the same amount.
	view.Subtotal = snap.Total.String()
	view.Shipping = ShippingFree
	view.Total = snap.Total.String()
	return view
}

// quantityOptions is the 1..10 selector, widened when the line already
// holds more than ten.
func quantityOptions(current int) []int {
	n := maxQtyOption
	if current > n {
		n = current
	}
	opts := make([]int, n)
	for i := range opts {
		opts[i] = i + 1
	}
	return opts
}
