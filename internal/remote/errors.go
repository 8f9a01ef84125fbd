package remote

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidURL indicates the configured endpoint is not an http(s) URL.
	ErrInvalidURL = errors.New("invalid endpoint url")

	// ErrNetwork indicates a transport-level failure: the request never got
	// an HTTP response.
	ErrNetwork = errors.New("network failure")
)

// RemoteError reports a pull the endpoint answered but did not satisfy:
// a non-2xx status, an explicit error payload or an undecodable body.
type RemoteError struct {
	StatusCode int
	Status     string
	Detail     string
}

func (e *RemoteError) Error() string {
	switch {
	case e.Detail != "" && e.StatusCode != 0:
		return fmt.Sprintf("remote error %d: %s", e.StatusCode, e.Detail)
	case e.Detail != "":
		return "remote error: " + e.Detail
	default:
		return fmt.Sprintf("remote error %d: %s", e.StatusCode, e.Status)
	}
}
