package common

// Number is the set of numeric kinds the guards accept.
type Number interface {
	~int | ~int32 | ~int64 | ~float64
}

// RequireNotEmpty checks that a string field is non-empty.
func RequireNotEmpty(field, errMsg string) *CommandError {
	if field == "" {
		return NewInvalidArgument(errMsg)
	}
	return nil
}

// RequirePositive checks that a value is greater than zero.
func RequirePositive[T Number](value T, errMsg string) *CommandError {
	if value <= 0 {
		return NewInvalidArgument(errMsg)
	}
	return nil
}

// RequireNonNegative checks that a value is zero or greater.
func RequireNonNegative[T Number](value T, errMsg string) *CommandError {
	if value < 0 {
		return NewInvalidArgument(errMsg)
	}
	return nil
}

// RequireInRange checks that lo <= value <= hi.
func RequireInRange[T Number](value, lo, hi T, errMsg string) *CommandError {
	if value < lo || value > hi {
		return NewInvalidArgument(errMsg)
	}
	return nil
}
