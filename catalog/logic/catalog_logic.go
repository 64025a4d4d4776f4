package logic

import (
	"fmt"
	"net/url"
	"slices"
	"sort"
	"strings"
	"unicode/utf8"
)

// ListProducts returns every product in load order.
func (s *Store) ListProducts() []Product {
	return slices.Clone(s.products)
}

// ListCollections returns every collection in load order.
func (s *Store) ListCollections() []Collection {
	return slices.Clone(s.collections)
}

// ListTestimonials returns every testimonial in load order.
func (s *Store) ListTestimonials() []Testimonial {
	return slices.Clone(s.testimonials)
}

// ProductByID looks up a product. Missing ids wrap ErrProductNotFound.
func (s *Store) ProductByID(id int) (Product, error) {
	idx, ok := s.productIndex[id]
	if !ok {
		return Product{}, fmt.Errorf("product %d: %w", id, ErrProductNotFound)
	}
	return s.products[idx], nil
}

// CollectionByName finds a collection by case-insensitive name.
func (s *Store) CollectionByName(name string) (Collection, bool) {
	for _, c := range s.collections {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return Collection{}, false
}

// FilterByCollection returns the products whose category matches the
// collection's label, ignoring case. A name that is not a known collection
// is used as the label directly, so a collection name takes precedence over
// an identical category label. The result is never nil.
func (s *Store) FilterByCollection(name string) []Product {
	label := name
	if c, ok := s.CollectionByName(name); ok {
		label = c.Category
	}

	matched := make([]Product, 0)
	for _, p := range s.products {
		if strings.EqualFold(p.Category, label) {
			matched = append(matched, p)
		}
	}
	return matched
}

// NewArrivals returns up to limit products, newest (highest id) first.
// A non-positive limit returns all products.
func (s *Store) NewArrivals(limit int) []Product {
	products := slices.Clone(s.products)
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].ID > products[j].ID
	})
	if limit > 0 && limit < len(products) {
		products = products[:limit]
	}
	return products
}

// DecodeCollectionName percent-decodes a collection route parameter.
// Malformed escapes and invalid UTF-8 are errors.
func DecodeCollectionName(raw string) (string, error) {
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return "", fmt.Errorf("decode collection name: %w", err)
	}
	if !utf8.ValidString(decoded) {
		return "", fmt.Errorf("decode collection name: invalid UTF-8 in %q", raw)
	}
	return decoded, nil
}
