package errors

import "fmt"

var (
	// Tokens
	ErrInvalidSigningMethod = fmt.Errorf("invalid token signing method")
	ErrInvalidToken         = fmt.Errorf("invalid token")
	ErrTokenExpired         = fmt.Errorf("token has expired")
	ErrTokenNotYetValid     = fmt.Errorf("token is not valid yet")

	// Authorization
	ErrEmptyAuthHeader    = fmt.Errorf("authorization header is missing")
	ErrInvalidAuthHeader  = fmt.Errorf("malformed authorization header")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")

	// Storage
	ErrNotFound           = fmt.Errorf("record not found")
	ErrDuplicateKey       = fmt.Errorf("duplicate key")
	ErrStorageUnavailable = fmt.Errorf("storage unavailable")
	ErrUnknownTable       = fmt.Errorf("unknown destination table")

	// General
	ErrBadRequest = fmt.Errorf("bad request")
)

// HttpError carries an HTTP status alongside the underlying cause so the
// transport layer can answer without re-classifying errors.
type HttpError struct {
	Code    int
	Message string
	Err     error
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err}
}
