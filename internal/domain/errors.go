package domain

import (
	"errors"
	"fmt"
)

var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrSecretNotFound    = errors.New("secret not found")
	ErrContactNotFound   = errors.New("contact not found")
	ErrProtocol          = errors.New("unrecognized remote protocol response")
	ErrNetwork           = errors.New("network error or malformed response")
	ErrDenied            = errors.New("request denied by remote service")
	ErrUnknownCategory   = errors.New("unknown contact category")
	ErrMissingCookie     = errors.New("expected cookie not set by remote service")
	ErrMalformedEnvelope = errors.New("malformed response envelope")
)

// RequestError reports a smart request that exhausted its retry budget.
type RequestError struct {
	URL           string
	NetworkErrors int
	DeniedErrors  int
	Err           error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request %s failed after %d network and %d denied errors: %v",
		e.URL, e.NetworkErrors, e.DeniedErrors, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// IsFatal reports whether err must terminate the login or the message loop.
func IsFatal(err error) bool {
	var requestErr *RequestError
	return errors.As(err, &requestErr) || errors.Is(err, ErrProtocol)
}
