// Package common contains shared constants and small helpers used across
// calcms components.
package common

const (
	// AuthorizationHeaderName carries the bearer token on outbound requests.
	AuthorizationHeaderName = "Authorization"

	// RequestIDHeaderName correlates a client request with server-side logs.
	RequestIDHeaderName = "X-Request-ID"

	// FormContentType is sent on every request; the backend expects it even on GETs.
	FormContentType = "application/x-www-form-urlencoded"

	// AccessTokenKey is the slot name of the bearer token in the local secure store.
	AccessTokenKey = "access_token"
)
