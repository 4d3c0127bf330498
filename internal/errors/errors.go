// internal/errors/errors.go
package errors

import "fmt"

// ErrInvalidUsername is returned when a GitHub username cannot be used to build the repos endpoint.
type ErrInvalidUsername struct {
	Username string
}

func (e *ErrInvalidUsername) Error() string {
	return fmt.Sprintf("invalid GitHub username: %q", e.Username)
}

// FetchErrorKind classifies why fetching the repository list failed.
type FetchErrorKind int

const (
	KindNetwork FetchErrorKind = iota
	KindHTTPStatus
	KindDecode
)

func (k FetchErrorKind) String() string {
	switch k {
	case KindHTTPStatus:
		return "http_status"
	case KindDecode:
		return "decode"
	default:
		return "network"
	}
}

// FetchError is the single error type returned by the project fetcher.
// StatusCode is only set for KindHTTPStatus.
type FetchError struct {
	Kind       FetchErrorKind
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case KindHTTPStatus:
		return fmt.Sprintf("github responded with status %d: %v", e.StatusCode, e.Err)
	case KindDecode:
		return fmt.Sprintf("failed to decode repository list: %v", e.Err)
	default:
		return fmt.Sprintf("failed to reach github: %v", e.Err)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func NewNetworkError(err error) *FetchError {
	return &FetchError{Kind: KindNetwork, Err: err}
}

func NewHTTPStatusError(code int, err error) *FetchError {
	return &FetchError{Kind: KindHTTPStatus, StatusCode: code, Err: err}
}

func NewDecodeError(err error) *FetchError {
	return &FetchError{Kind: KindDecode, Err: err}
}
