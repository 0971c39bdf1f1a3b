package types

import (
	"encoding/json"
	"errors"
)

// Error Instead of exposing the gateway's HTTP status codes or raw transport failures, rich
// errors are returned using this object. Both the code and message fields can be individually
// used to correctly identify an error.
type Error struct {
	// Code is a library-wide error code. Codes are unique per sentinel.
	Code int32 `json:"code"`
	// Message is the stable message for the code. Contextual information goes into Details.
	Message string `json:"message"`
	// An error is retriable if the same request may succeed if submitted again.
	Retriable bool `json:"retriable"`
	// Context specific to the request that caused the error (status code, event name...).
	Details map[string]any `json:"details,omitempty"`
}

func (e *Error) Error() string {
	bytes, _ := json.MarshalIndent(e, "", "  ")
	return string(bytes)
}

// Is matches any *Error carrying the same code, so wrapped copies still match their sentinel.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}
	return other.Code == e.Code
}

var (
	ErrInvalidAddress = &Error{
		Code:    12, //nolint
		Message: "Invalid address",
	}
	ErrValidatorNotFound = &Error{
		Code:    20, //nolint
		Message: "Validator not found",
	}
	ErrNoEvents = &Error{
		Code:    30, //nolint
		Message: "No events found in transaction receipt",
	}
	ErrEventNotFound = &Error{
		Code:    31, //nolint
		Message: "Event not found in transaction receipt",
	}
	ErrDivisionByZero = &Error{
		Code:    40, //nolint
		Message: "Division by zero",
	}
	ErrGateway = &Error{
		Code:    50, //nolint
		Message: "Gateway request failed",
	}
)

// WrapErr adds details to the types.Error provided. We use a function
// to do this so that we don't accidentially overrwrite the standard
// errors.
func WrapErr(rErr *Error, err error) *Error {
	newErr := &Error{
		Code:      rErr.Code,
		Message:   rErr.Message,
		Retriable: rErr.Retriable,
	}
	if err != nil {
		newErr.Details = map[string]interface{}{
			"context": err.Error(),
		}
	}

	return newErr
}

// WithDetails returns a copy of rErr carrying the given details.
func WithDetails(rErr *Error, details map[string]any) *Error {
	newErr := WrapErr(rErr, nil)
	newErr.Details = details
	return newErr
}
