package chatbot

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"

	"github.com/openai/openai-go"
)

// Error kinds. Match them with errors.Is.
var (
	ErrInput          = errors.New("input error")
	ErrAuthentication = errors.New("authentication error")
	ErrNetwork        = errors.New("network error")
	ErrService        = errors.New("service error")
)

// Error carries a failure kind together with the underlying cause.
type Error struct {
	Kind error
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.Error()
	}
	return e.Kind.Error() + ": " + e.Err.Error()
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func newError(kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

// classify maps an SDK call failure onto an error kind. A failure that is
// neither a status error nor a transport error is an undecodable response.
func classify(err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return newError(ErrAuthentication, err)
		default:
			return newError(ErrService, err)
		}
	}
	if isTransportError(err) {
		return newError(ErrNetwork, err)
	}
	return newError(ErrService, err)
}

func isTransportError(err error) bool {
	var urlErr *url.Error
	var netErr net.Error
	return errors.As(err, &urlErr) ||
		errors.As(err, &netErr) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, io.ErrUnexpectedEOF)
}
