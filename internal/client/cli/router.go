package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Area is the part of the app the user is in.
type Area string

const (
	AreaSignIn Area = "signed-out"
	AreaHome   Area = "home"
)

// Router tracks the current area and prints notices. It implements
// services.Navigator and services.Notifier.
type Router struct {
	mu   sync.Mutex
	area Area
	out  io.Writer
}

func NewRouter(out io.Writer) *Router {
	return &Router{area: AreaSignIn, out: out}
}

func (r *Router) Area() Area {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.area
}

func (r *Router) ShowAuthenticated(context.Context) {
	r.switchTo(AreaHome, "Signed in. Type 'help' to see the equipment screens.")
}

func (r *Router) ShowUnauthenticated(context.Context) {
	r.switchTo(AreaSignIn, "Please 'login' to continue.")
}

func (r *Router) switchTo(area Area, hint string) {
	r.mu.Lock()
	r.area = area
	r.mu.Unlock()
	fmt.Fprintln(r.out, hint)
}

func (r *Router) Notify(_ context.Context, msg string) {
	fmt.Fprintf(r.out, "!! %s\n", msg)
}

// promptConfirmer asks on the terminal. It implements services.Confirmer.
type promptConfirmer struct {
	reader *bufio.Reader
	out    io.Writer
}

// Confirm accepts the option number, the option label or y/yes for proceed.
// Anything else, including EOF, is cancel.
func (p promptConfirmer) Confirm(_ context.Context, question, proceed, cancel string) bool {
	answer, err := getSimpleText(p.reader, fmt.Sprintf("%s\n  1) %s\n  2) %s", question, proceed, cancel), p.out)
	if err != nil {
		return false
	}
	switch strings.ToLower(answer) {
	case "1", "y", "yes", strings.ToLower(proceed):
		return true
	default:
		return false
	}
}
