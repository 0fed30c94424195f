package popcat

import (
	"errors"
	"fmt"
)

// ValidationError reports a caller mistake caught before any request is
// built. Calls that fail validation never reach the network.
type ValidationError struct {
	Param  string // logical parameter name, empty for call-level problems
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Param == "" {
		return fmt.Sprintf("invalid call: %s", e.Reason)
	}
	return fmt.Sprintf("invalid parameter %q: %s", e.Param, e.Reason)
}

// TransportError wraps a network-level failure (connection refused, DNS,
// timeout). No response was received; the caller may retry.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// RemoteError reports a non-2xx response from the API. Message is extracted
// from the response body when it carries a recognizable error field,
// otherwise the raw body trimmed to a bounded length.
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("API error (status %d)", e.Status)
	}
	return fmt.Sprintf("API error (status %d): %s", e.Status, e.Message)
}

// DecodeError reports a 2xx response whose body did not match the shape the
// endpoint declares. Not retryable without a client update.
type DecodeError struct {
	Endpoint string
	Reason   string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("unexpected %s response: %s", e.Endpoint, e.Reason)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsRemote reports whether err is a RemoteError, returning it when so.
func IsRemote(err error) (*RemoteError, bool) {
	var re *RemoteError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}

// IgnoreStatus returns nil when err is a RemoteError with one of the given
// status codes, otherwise err unchanged.
func IgnoreStatus(err error, codes ...int) error {
	re, ok := IsRemote(err)
	if !ok {
		return err
	}
	for _, code := range codes {
		if re.Status == code {
			return nil
		}
	}
	return err
}
