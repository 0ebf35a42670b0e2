// Package cli provides the interactive calcms command-line client.
//
// It wires configuration, the session service and the equipment service
// into a REPL. Until the user signs in only help, login and exit are
// available; afterwards the equipment screens (summary, overdue, due
// schedule, equipment list and detail) can be opened, narrowed with
// search/type/location/custodian filters and exported to Excel.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits
// or ctx is cancelled. See App, Router and runREPL for details.
package cli
