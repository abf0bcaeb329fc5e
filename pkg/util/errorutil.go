package util

import (
	"errors"
	"fmt"
	"net/http"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
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

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

func NewValidationError(message string, details map[string]any) error {
	return NewDomainError("VALIDATION_FAILED", message, http.StatusBadRequest, details)
}

func NewNotFound(resource string, details map[string]any) error {
	return NewDomainError("NOT_FOUND", fmt.Sprintf("%s not found", resource), http.StatusNotFound, details)
}

// NewDuplicateEmail signals the soft-unique email business rule.
func NewDuplicateEmail(email string) error {
	return NewDomainError("DUPLICATE_EMAIL", "a contact with this email already exists",
		http.StatusConflict, map[string]any{"email": email})
}

// NewSenderNotFound signals a message sender id that resolves to no contact.
func NewSenderNotFound(senderID string) error {
	return NewDomainError("SENDER_NOT_FOUND", "message sender does not resolve to a contact",
		http.StatusNotFound, map[string]any{"sender_id": senderID})
}

// NewThreadNotFound signals an append against a thread that does not exist.
func NewThreadNotFound(ticketOrRequestID string) error {
	return NewDomainError("THREAD_NOT_FOUND", "no comms thread for this ticket",
		http.StatusNotFound, map[string]any{"ticket_or_request_id": ticketOrRequestID})
}

// NewPartialFailure reports a multi-step workflow whose later step failed
// after an earlier step committed and could not be rolled back. The details
// carry the orphaned record id so reconciliation can find it.
func NewPartialFailure(ticketID string, err error) error {
	return &DomainError{
		Code:       "PARTIAL_FAILURE",
		Message:    "ticket committed but follow-up records are missing",
		HTTPStatus: http.StatusInternalServerError,
		Details:    map[string]any{"ticket_id": ticketID},
		Err:        err,
	}
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}
