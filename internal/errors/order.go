package errors

var (
	ErrEmptyCart = &DomainError{
		Code:    "EMPTY_CART",
		Message: "no products in order",
	}
	ErrOrderNotFound = &DomainError{
		Code:    "ORDER_NOT_FOUND",
		Message: "order not found",
	}
	ErrNotOrderOwner = &DomainError{
		Code:    "NOT_ORDER_OWNER",
		Message: "not authorized to access this order",
	}
	ErrInvalidPaymentMethod = &DomainError{
		Code:    "INVALID_PAYMENT_METHOD",
		Message: "invalid payment method",
	}
)
