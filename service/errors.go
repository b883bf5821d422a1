package service

import (
	"errors"
	"fmt"
)

const (
	// ErrInternalServerError means that an internal server error has occurred.
	ErrInternalServerError = "internal_server_error"
	// ErrEntityNotFound means that no record is registered for the requested key.
	ErrEntityNotFound = "entity_not_found"
	// ErrBadParameter means that provided parameter does not match declared.
	ErrBadParameter = "bad_parameter"
	// ErrTransport means that the registry or a resolved endpoint could not be reached.
	ErrTransport = "transport_error"
	// ErrDependencyUnresolved means that a dependency contract could not be bound to an address.
	ErrDependencyUnresolved = "dependency_unresolved"
)

// DiscoveryError represents an error within the context of the discovery fabric.
type DiscoveryError struct {
	// Code is a machine-readable code.
	Code string `json:"code,omitempty"`
	// Message is a human-readable message.
	Message string `json:"message"`
	// Inner is a wrapped error that is never shown to API consumers.
	Inner error `json:"-"`
}

// NewDiscoveryError creates a new DiscoveryError.
func NewDiscoveryError(code string, message string, inner error) *DiscoveryError {
	return &DiscoveryError{
		Code:    code,
		Message: message,
		Inner:   inner,
	}
}

func NewInternalServerError(message string, inner error) *DiscoveryError {
	return newOrInner(ErrInternalServerError, message, inner)
}

func NewEntityNotFoundError(message string, inner error) *DiscoveryError {
	return newOrInner(ErrEntityNotFound, message, inner)
}

func NewBadParameterError(message string, inner error) *DiscoveryError {
	return newOrInner(ErrBadParameter, message, inner)
}

func NewTransportError(message string, inner error) *DiscoveryError {
	return newOrInner(ErrTransport, message, inner)
}

func NewDependencyUnresolvedError(message string, inner error) *DiscoveryError {
	return newOrInner(ErrDependencyUnresolved, message, inner)
}

// newOrInner keeps an already classified inner error instead of reclassifying it.
func newOrInner(code string, message string, inner error) *DiscoveryError {
	if de := ToDiscoveryError(inner); de != nil {
		return de
	}

	return NewDiscoveryError(code, message, inner)
}

func (e DiscoveryError) Error() string {
	if e.Inner != nil {
		return fmt.Sprintf("%s %s: %v", e.Code, e.Message, e.Inner)
	}

	return fmt.Sprintf("%s %s", e.Code, e.Message)
}

// Unwrap the error returning the error's reason.
func (e DiscoveryError) Unwrap() error {
	return e.Inner
}

// ToDiscoveryError returns a pointer to a discovery error, or nil if it is not one.
func ToDiscoveryError(err error) *DiscoveryError {
	var e *DiscoveryError
	if errors.As(err, &e) {
		return e
	}

	return nil
}

// ToErrorCode returns the code of the error, if available.
func ToErrorCode(err error) string {
	de := ToDiscoveryError(err)
	if de != nil {
		return de.Code
	}
	return ""
}

func IsDiscoveryError(err error, code string) bool {
	de := ToDiscoveryError(err)
	if de != nil {
		return de.Code == code
	}
	return false
}

func IsInternalServerError(err error) bool {
	return IsDiscoveryError(err, ErrInternalServerError)
}

func IsEntityNotFoundError(err error) bool {
	return IsDiscoveryError(err, ErrEntityNotFound)
}

func IsBadParameterError(err error) bool {
	return IsDiscoveryError(err, ErrBadParameter)
}

func IsTransportError(err error) bool {
	return IsDiscoveryError(err, ErrTransport)
}

func IsDependencyUnresolvedError(err error) bool {
	return IsDiscoveryError(err, ErrDependencyUnresolved)
}
