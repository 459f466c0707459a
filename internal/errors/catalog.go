package errors

var (
	ErrUserNotFound = &DomainError{
		Code:    "USER_NOT_FOUND",
		Message: "user not found",
	}
	ErrProductNotFound = &DomainError{
		Code:    "PRODUCT_NOT_FOUND",
		Message: "product not found",
	}
	ErrInvalidCategory = &DomainError{
		Code:    "INVALID_CATEGORY",
		Message: "invalid category, must be A, B, or C",
	}
)
