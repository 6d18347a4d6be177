package logic

import "math"

type number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// RequireNotEmptyString checks that a string is not empty.
func RequireNotEmptyString(value, errMsg string) error {
	if value == "" {
		return NewInvalidArgument(errMsg)
	}
	return nil
}

// RequirePositive checks that a value is greater than zero.
func RequirePositive[T number](value T, errMsg string) error {
	if value <= 0 {
		return NewInvalidArgument(errMsg)
	}
	return nil
}

// RequireNonNegative checks that a value is zero or greater.
func RequireNonNegative[T number](value T, errMsg string) error {
	if value < 0 {
		return NewInvalidArgument(errMsg)
	}
	return nil
}

// RequireInRange checks that lo <= value <= hi. NaN is never in range.
func RequireInRange(value, lo, hi float64, errMsg string) error {
	if math.IsNaN(value) || value < lo || value > hi {
		return NewInvalidArgument(errMsg)
	}
	return nil
}

// RequireFinite rejects NaN and infinities.
func RequireFinite(value float64, errMsg string) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return NewInvalidArgument(errMsg)
	}
	return nil
}
