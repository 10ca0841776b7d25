package opentdb

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedResponse = errors.New("malformed response body")
	ErrNoResults         = errors.New("not enough questions for the query")
	ErrInvalidParameter  = errors.New("invalid query parameter")
	ErrTokenNotFound     = errors.New("session token not found")
	ErrTokenEmpty        = errors.New("session token exhausted")
	ErrRateLimited       = errors.New("rate limited")
)

// Response codes documented by opentdb.com.
const (
	CodeSuccess          = 0
	CodeNoResults        = 1
	CodeInvalidParameter = 2
	CodeTokenNotFound    = 3
	CodeTokenEmpty       = 4
	CodeRateLimit        = 5
)

// FetchError reports why a question fetch produced no usable questions.
// StatusCode is zero when the request never got a response.
type FetchError struct {
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	switch {
	case e.Err == nil:
		return fmt.Sprintf("opentdb returned status %d", e.StatusCode)
	case e.StatusCode == 0:
		return "opentdb request failed: " + e.Err.Error()
	default:
		return fmt.Sprintf("opentdb status %d: %v", e.StatusCode, e.Err)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func responseCodeError(code int) error {
	switch code {
	case CodeSuccess:
		return nil
	case CodeNoResults:
		return ErrNoResults
	case CodeInvalidParameter:
		return ErrInvalidParameter
	case CodeTokenNotFound:
		return ErrTokenNotFound
	case CodeTokenEmpty:
		return ErrTokenEmpty
	case CodeRateLimit:
		return ErrRateLimited
	default:
		return fmt.Errorf("opentdb response_code=%d", code)
	}
}
