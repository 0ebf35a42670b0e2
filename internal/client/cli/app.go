package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/calcms/internal/client/config"
	"github.com/dmitrijs2005/calcms/internal/client/services"
	"github.com/dmitrijs2005/calcms/internal/logging"
)

type App struct {
	config           *config.Config
	authService      services.AuthService
	equipmentService services.EquipmentService
	localData        services.LocalDataService
	router           *Router
	log              logging.Logger
	reader           *bufio.Reader
	out              io.Writer
	now              func() time.Time

	userName string
	view     *services.View
	options  *services.Options
}

// NewApp builds the CLI. router must be the Navigator and Notifier the
// auth service was created with.
func NewApp(c *config.Config, as services.AuthService, es services.EquipmentService, ld services.LocalDataService, router *Router, log logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		config:           c,
		authService:      as,
		equipmentService: es,
		localData:        ld,
		router:           router,
		log:              log,
		reader:           bufio.NewReader(in),
		out:              out,
		now:              time.Now,
	}
}

// Run restores a stored session when configured, then serves the REPL
// until the input ends, the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to calcms CLI (type 'help' for commands)")

	if !a.authService.Restore(ctx) {
		a.router.ShowUnauthenticated(ctx)
	}

	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.authService.IsAuthenticated()
}

func (a *App) status() string {
	s := string(a.router.Area())
	if a.isLoggedIn() && a.userName != "" {
		s = a.userName + "@" + s
	}
	if a.view != nil && a.isLoggedIn() {
		s += "/" + string(a.view.Screen)
	}
	return s
}

// resetScreens forgets everything loaded while signed in.
func (a *App) resetScreens() {
	a.view = nil
	a.options = nil
}
