package logic

import "github.com/Ramakant55/Trendora-Boutique/common"

// MaxRating is the top of the rating scale.
const MaxRating = 5

// Product is one sellable item.
type Product struct {
	ID       int          `json:"id"`
	Name     string       `json:"name"`
	Category string       `json:"category"`
	Price    common.Money `json:"price"`
	Image    string       `json:"image"`
	Rating   float64      `json:"rating"`
}

// Collection groups the products whose category equals Category.
type Collection struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Category    string `json:"category"`
}

// Testimonial is a customer quote shown on the home page.
type Testimonial struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Content string `json:"content"`
	Image   string `json:"image"`
	Rating  int    `json:"rating"`
}

// Store is the immutable catalog. It is safe for concurrent use.
type Store struct {
	products     []Product
	collections  []Collection
	testimonials []Testimonial
	productIndex map[int]int
}
