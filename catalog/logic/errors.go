package logic

import "errors"

// ErrProductNotFound is returned when a product id is not in the catalog.
var ErrProductNotFound = errors.New("product not found")

// Error message constants for catalog validation.
const (
	ErrMsgNameRequired     = "name is required"
	ErrMsgCategoryRequired = "category is required"
	ErrMsgPriceNegative    = "price must not be negative"
	ErrMsgRatingRange      = "rating must be between 0 and 5"
	ErrMsgIDPositive       = "id must be positive"
)
