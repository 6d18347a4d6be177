package logic

import "github.com/go-faster/errors"

type StatusCode int

const (
	StatusInvalidArgument StatusCode = iota
)

// Error message constants for the cart domain.
const (
	ErrMsgProductNameRequired = "Product name cannot be null or empty"
	ErrMsgPriceNegative       = "Product price cannot be negative"
	ErrMsgPriceNotFinite      = "Product price must be a finite number"
	ErrMsgProductRequired     = "Product cannot be null"
	ErrMsgInvalidProduct      = "Invalid product"
	ErrMsgQuantityPositive    = "Quantity must be positive"
	ErrMsgQuantityNegative    = "Quantity cannot be negative"
	ErrMsgQuantityTooLarge    = "Quantity exceeds the cart capacity"
	ErrMsgPromotionNegative   = "Discount amount cannot be negative"
	ErrMsgPromotionNotFinite  = "Discount amount must be a finite number"
	ErrMsgDiscountOutOfRange  = "Discount percentage must be between 0 and 100"
)

func (s StatusCode) String() string {
	switch s {
	case StatusInvalidArgument:
		return "INVALID_ARGUMENT"
	default:
		return "UNKNOWN"
	}
}

// CommandError is returned when an operation rejects its arguments.
// The cart is never modified when a CommandError is returned.
type CommandError struct {
	Code    StatusCode
	Message string
}

func (e *CommandError) Error() string {
	return e.Message
}

func NewInvalidArgument(message string) *CommandError {
	return &CommandError{Code: StatusInvalidArgument, Message: message}
}

// IsInvalidArgument reports whether err carries an INVALID_ARGUMENT CommandError
// anywhere in its chain.
func IsInvalidArgument(err error) bool {
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		return false
	}
	return cmdErr.Code == StatusInvalidArgument
}
