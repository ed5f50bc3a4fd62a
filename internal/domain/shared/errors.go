package shared

import "errors"

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	cause   error
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any
func (e *DomainError) Unwrap() error {
	return e.cause
}

// Is matches domain errors by code
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WrapDomainError creates a domain error that keeps cause reachable through errors.Is/As.
// If cause is already a domain error with a client-facing code it is returned unchanged.
func WrapDomainError(code, message string, cause error) *DomainError {
	var de *DomainError
	if errors.As(cause, &de) && code == CodeInternal && de.Code != CodeInternal {
		return de
	}
	return &DomainError{
		Code:    code,
		Message: message,
		cause:   cause,
	}
}

// Error codes shared across bounded contexts
const (
	CodeNotFound          = "NOT_FOUND"
	CodeInvalidInput      = "INVALID_INPUT"
	CodeInvalidState      = "INVALID_STATE"
	CodeInvalidTransition = "INVALID_TRANSITION"
	CodeAlreadyExists     = "ALREADY_EXISTS"
	CodeInternal          = "INTERNAL_ERROR"
	CodeAIRequestFailed   = "AI_REQUEST_FAILED"
)

// Common domain errors
var (
	ErrNotFound            = NewDomainError(CodeNotFound, "Resource not found")
	ErrAlreadyExists       = NewDomainError(CodeAlreadyExists, "Resource already exists")
	ErrInvalidInput        = NewDomainError(CodeInvalidInput, "Invalid input provided")
	ErrInvalidState        = NewDomainError(CodeInvalidState, "Operation not allowed in current state")
	ErrInsufficientBalance = NewDomainError("INSUFFICIENT_BALANCE", "Insufficient balance available")
	ErrCapacityExceeded    = NewDomainError("CAPACITY_EXCEEDED", "Capacity exceeded")
)

// Internal wraps an unexpected failure with a "Failed to <verb>" message
func Internal(verb string, cause error) error {
	return WrapDomainError(CodeInternal, "Failed to "+verb, cause)
}

// AIFailure wraps an AI collaborator failure with a "Failed to <verb>" message
func AIFailure(verb string, cause error) error {
	return WrapDomainError(CodeAIRequestFailed, "Failed to "+verb, cause)
}

// InvalidTransition reports a rejected status change
func InvalidTransition(entity, from, to string) *DomainError {
	return NewDomainError(CodeInvalidTransition, "Cannot change "+entity+" status from "+from+" to "+to)
}

// IsDomainErrorCode reports whether err is a domain error with the given code
func IsDomainErrorCode(err error, code string) bool {
	var de *DomainError
	return errors.As(err, &de) && de.Code == code
}
