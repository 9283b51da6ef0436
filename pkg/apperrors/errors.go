package apperrors

import (
	"errors"
	"fmt"
)

// Machine-readable error codes surfaced in API responses
const (
	CodeNotFound   = "NOT_FOUND"
	CodeValidation = "VALIDATION_ERROR"
	CodeConflict   = "CONFLICT"
)

// DomainError categorizes a failure for uniform transport mapping
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewNotFound reports a missing entity by resource name and id
func NewNotFound(resource, id string) *DomainError {
	return &DomainError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s with id %s not found", resource, id),
	}
}

// NewValidation reports a violated field invariant
func NewValidation(format string, args ...interface{}) *DomainError {
	return &DomainError{
		Code:    CodeValidation,
		Message: fmt.Sprintf(format, args...),
	}
}

// NewConflict reports a state conflict, e.g. a duplicate article slug
func NewConflict(format string, args ...interface{}) *DomainError {
	return &DomainError{
		Code:    CodeConflict,
		Message: fmt.Sprintf(format, args...),
	}
}

func codeOf(err error) string {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return ""
}

func IsNotFound(err error) bool {
	return codeOf(err) == CodeNotFound
}

func IsValidation(err error) bool {
	return codeOf(err) == CodeValidation
}

func IsConflict(err error) bool {
	return codeOf(err) == CodeConflict
}
