package apperror

import "net/http"

// AppError carries an HTTP status code and the message the client is allowed
// to see. Err holds the underlying cause for logging and is never serialized.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Validation is a 400 for a payload that failed field presence checks.
func Validation(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

// Delivery is a 500 for a mail send that was attempted and failed. The cause
// stays server-side.
func Delivery(message string, err error) *AppError {
	return New(http.StatusInternalServerError, message, err)
}
