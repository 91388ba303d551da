// Package errors defines the domain error types shared across services.
// Every caller-visible failure carries a stable code that handlers
// translate to an HTTP status.
package errors

// DomainError is a typed failure with a stable machine-readable code.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Is matches two domain errors by code so that sender/recipient variants
// of the same condition compare equal under errors.Is.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}
