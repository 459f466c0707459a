// Package errors defines the domain error taxonomy shared across services
// and handlers.
package errors

// DomainError is a sentinel error carrying a stable machine-readable code.
// Handlers match these values with errors.Is and map the code to an HTTP
// status.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}
