package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Summary(ctx context.Context) error
	Overdue(ctx context.Context) error
	Schedule(ctx context.Context, args []string) error
	List(ctx context.Context) error
	Show(ctx context.Context, args []string) error
	Search(ctx context.Context, args []string) error
	Type(ctx context.Context, args []string) error
	Location(ctx context.Context, args []string) error
	Custodian(ctx context.Context, args []string) error
	Clear(ctx context.Context) error
	Rows(ctx context.Context) error
	Locations(ctx context.Context) error
	Custodians(ctx context.Context) error
	Export(ctx context.Context, args []string) error
	Reset(ctx context.Context) error
}

const (
	helpSignedOut = "Available commands: login, reset, help, exit"
	helpSignedIn  = `Available commands:
  summary                         equipment summary
  overdue                         overdue equipment
  schedule [week|month|year]      equipment due for calibration
  list                            all equipment
  show <id>                       equipment detail
  search [text]                   filter by code (no text clears)
  type <internal|external|master> toggle a calibration type filter
  location [id]                   list equipment of a location (no id: all)
  custodian [id]                  filter by custodian (no id clears)
  clear                           drop all filters
  rows                            show the current screen again
  locations, custodians           list the filter options
  export [file.xlsx]              save the visible rows to Excel
  reset                           erase data stored on this device
  logout, help, exit`
	msgLoginFirst = "Please login first."
)

// runREPL starts a simple read–eval–print loop for the calcms CLI.
//
// It reads a line from reader, parses the first token as the
// command, and dispatches to methods on 'a'. While signed out only help,
// login, reset and exit are served; everything else asks the user to login first.
// Command handlers prompt on the same reader, so the REPL never reads
// ahead of the current line. The loop exits on EOF, on ctx cancellation or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers
// report their own errors. This keeps the REPL loop resilient and focused
// on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("calcms (%s) > ", statusFn()))
		line, err := reader.ReadString('\n')
		if line == "" && err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpSignedIn)
			} else {
				printlnFn(helpSignedOut)
			}
			continue

		case "login":
			_ = a.Login(ctx)
			continue

		case "reset":
			_ = a.Reset(ctx)
			continue

		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		if !a.isLoggedIn() {
			printlnFn(msgLoginFirst)
			continue
		}

		switch cmd {
		case "logout":
			_ = a.Logout(ctx)
		case "summary":
			_ = a.Summary(ctx)
		case "overdue":
			_ = a.Overdue(ctx)
		case "schedule":
			_ = a.Schedule(ctx, args)
		case "l", "list":
			_ = a.List(ctx)
		case "show":
			_ = a.Show(ctx, args)
		case "search":
			_ = a.Search(ctx, args)
		case "type":
			_ = a.Type(ctx, args)
		case "location":
			_ = a.Location(ctx, args)
		case "custodian":
			_ = a.Custodian(ctx, args)
		case "clear":
			_ = a.Clear(ctx)
		case "rows":
			_ = a.Rows(ctx)
		case "locations":
			_ = a.Locations(ctx)
		case "custodians":
			_ = a.Custodians(ctx)
		case "export":
			_ = a.Export(ctx, args)
		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
