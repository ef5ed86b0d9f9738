package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrRemoteCallFailed is matched by every error returned from
	// [Transport.Request].
	ErrRemoteCallFailed = errors.New("remote call failed")
	// ErrEmptyHost is returned by [NewHTTPTransport] when no host is configured.
	ErrEmptyHost = errors.New("empty api host")
)

// RemoteCallError describes a failed call. StatusCode is zero when the
// request never produced a response or the response could not be decoded;
// Err then carries the cause.
type RemoteCallError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
	Err        error
}

func (e *RemoteCallError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s: %s %s: %v", ErrRemoteCallFailed, e.Method, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s %s: http %d: %s", ErrRemoteCallFailed, e.Method, e.Path, e.StatusCode, e.Body)
}

// Is makes every *RemoteCallError match [ErrRemoteCallFailed].
func (e *RemoteCallError) Is(target error) bool {
	return target == ErrRemoteCallFailed
}

func (e *RemoteCallError) Unwrap() error {
	return e.Err
}
