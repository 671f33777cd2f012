package errors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials = errors.New("incorrect credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUnauthorized       = errors.New("authentication token not provided")

	ErrAccountNotFound  = errors.New("account not found")
	ErrEmailNotVerified = errors.New("please verify your email before logging in")

	ErrEmailTaken          = errors.New("email address is already registered")
	ErrUsernameTaken       = errors.New("username is already in use")
	ErrIdentificationTaken = errors.New("identification number is already registered")

	ErrAlreadyVerified = errors.New("this account has already been verified")
	ErrWeakPassword    = errors.New("password must be at least 8 characters long")
)

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries the ordered list of field errors produced by the
// validation gate. Handlers map it to HTTP 400 with an errors array.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
}

func NewValidationError(fieldErrors []FieldError) *ValidationError {
	return &ValidationError{Errors: fieldErrors}
}

type AppError struct {
	Code    string
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

func NewAppError(code, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
