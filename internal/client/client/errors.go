package client

import "errors"

var (
	ErrMissingToken       = errors.New("missing access token")
	ErrUnavailable        = errors.New("server unavailable")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMalformedResponse  = errors.New("malformed response")
	ErrNoData             = errors.New("no data")
)
