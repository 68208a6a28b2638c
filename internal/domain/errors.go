package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	ErrInternal     ErrorCode = "INTERNAL_ERROR"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Store boundary errors
	ErrTransport         ErrorCode = "TRANSPORT_ERROR"
	ErrStoreUnavailable  ErrorCode = "STORE_UNAVAILABLE"
	ErrDuplicateName     ErrorCode = "DUPLICATE_NAME"
	ErrNotFound          ErrorCode = "NOT_FOUND"
	ErrMalformedDocument ErrorCode = "MALFORMED_DOCUMENT"
	ErrVersionConflict   ErrorCode = "VERSION_CONFLICT"
	ErrMissingContent    ErrorCode = "MISSING_CONTENT"

	// Attempt/grading errors
	ErrInvalidQuestionIndex ErrorCode = "INVALID_QUESTION_INDEX"
	ErrAlreadyAnswered      ErrorCode = "ALREADY_ANSWERED"
	ErrEmptyQuizSubmission  ErrorCode = "EMPTY_QUIZ_SUBMISSION"
	ErrAttemptNotFound      ErrorCode = "ATTEMPT_NOT_FOUND"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Helper constructors for the store boundary

func NewTransportError(err error) *DomainError {
	return NewError(ErrTransport, "Document store is unreachable", err)
}

func NewStoreUnavailableError(status int) *DomainError {
	return NewError(ErrStoreUnavailable, fmt.Sprintf("Document store returned status %d", status), nil)
}

func NewDuplicateNameError(name string) *DomainError {
	return NewError(ErrDuplicateName, fmt.Sprintf("A quiz named %q already exists; use a unique quiz name", name), nil)
}

func NewNotFoundError(documentID string) *DomainError {
	return NewError(ErrNotFound, fmt.Sprintf("Document not found: %s", documentID), nil)
}

func NewMalformedDocumentError(documentID string, err error) *DomainError {
	return NewError(ErrMalformedDocument, fmt.Sprintf("Document %s does not contain a quiz", documentID), err)
}

func NewVersionConflictError(documentID string) *DomainError {
	return NewError(ErrVersionConflict, fmt.Sprintf("Document %s was updated by another writer", documentID), nil)
}

func NewMissingContentError(documentID string) *DomainError {
	return NewError(ErrMissingContent, fmt.Sprintf("Document %s has no body to update", documentID), nil)
}

// Helper constructors for attempts and grading

func NewInvalidQuestionIndexError(index int) *DomainError {
	return NewError(ErrInvalidQuestionIndex, fmt.Sprintf("Invalid question index: %d", index), nil)
}

func NewAlreadyAnsweredError(index int) *DomainError {
	return NewError(ErrAlreadyAnswered, fmt.Sprintf("Question %d has already been answered in this attempt", index), nil)
}

func NewEmptyQuizSubmissionError() *DomainError {
	return NewError(ErrEmptyQuizSubmission, "A quiz must contain at least one question", nil)
}

func NewAttemptNotFoundError(attemptID string) *DomainError {
	return NewError(ErrAttemptNotFound, fmt.Sprintf("Attempt not found: %s", attemptID), nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(ErrInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(ErrInternal, message, err)
}
