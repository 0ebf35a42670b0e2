// Package client contains the client-side building blocks of calcms.
//
// # Overview
//
// The package provides:
//  1. The API contract (see the Client interface) of the calibration
//     service: token exchange, equipment summary, overdue and due-schedule
//     lists, equipment lists and detail, location and custodian options.
//  2. A concrete REST implementation (see HTTPClient) that reads the bearer
//     token from a TokenSource before every call, tags requests with an
//     X-Request-ID and maps HTTP failures to sentinel errors.
//  3. Local persistence bootstrap utilities (InitDatabase, RunMigrations),
//     wiring an SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Every call returns (T, error). Failures are one of the sentinel errors,
// possibly wrapped, and are matched with errors.Is: ErrMissingToken,
// ErrUnavailable, ErrUnauthorized, ErrInvalidCredentials,
// ErrMalformedResponse, ErrNoData.
//
// A call made without a stored token fails with ErrMissingToken and does not
// touch the network.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation as well as the configured
// per-request timeout.
package client
