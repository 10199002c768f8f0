package errors

import "fmt"

// HTTPError is an error that carries the status code it should be answered with.
type HTTPError struct {
	Code       int    `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
}

// NewHTTPError creates an HTTPError whose HTTP status is derived from code.
// Codes outside the HTTP range are answered with 400.
func NewHTTPError(code int, message string) *HTTPError {
	status := code
	if status < 100 || status > 599 {
		status = 400
	}
	return &HTTPError{
		Code:       code,
		Message:    message,
		StatusCode: status,
	}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}
