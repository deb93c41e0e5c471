package models

import (
	"errors"
	"fmt"
)

// Error-type tags surfaced in the details.type field of error responses.
const (
	ErrTypeValidation = "ValidationError"
	ErrTypeNotFound   = "NotFoundError"
	ErrTypeAI         = "AIServiceError"
	ErrTypeSchema     = "SchemaValidationError"
	ErrTypeStorage    = "StorageError"
	ErrTypeDatabase   = "DatabaseError"
	ErrTypeInternal   = "InternalError"
)

type AppError struct {
	Type    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewValidationError(message string) *AppError {
	return &AppError{Type: ErrTypeValidation, Message: message}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Type: ErrTypeNotFound, Message: message}
}

func NewAIError(message string, err error) *AppError {
	return &AppError{Type: ErrTypeAI, Message: message, Err: err}
}

func NewSchemaError(message string, err error) *AppError {
	return &AppError{Type: ErrTypeSchema, Message: message, Err: err}
}

func NewStorageError(message string, err error) *AppError {
	return &AppError{Type: ErrTypeStorage, Message: message, Err: err}
}

// ErrorType returns the tag for an error, falling back to InternalError for
// anything that is not an AppError.
func ErrorType(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrTypeInternal
}
