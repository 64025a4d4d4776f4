package logic

// Error message constants for cart domain.
const (
	ErrMsgProductIDPositive = "Product ID must be positive"
	ErrMsgProductName       = "Product name is required"
	ErrMsgPriceNegative     = "Price must not be negative"
	ErrMsgQuantityNegative  = "Quantity must not be negative"
	ErrMsgQuantityTooLarge  = "Quantity must not exceed 99"
	ErrMsgQuantityLimit     = "Product %d is already at the maximum quantity of %d"
)

// Reasons recorded on CartCleared.
const (
	ReasonCleared        = "cleared"
	ReasonSessionEnded   = "session_ended"
	ReasonSessionExpired = "session_expired"
)
