package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/calcms/internal/client/client"
)

// Login prompts for credentials and signs in. A failed attempt has already
// been reported to the user by the session's notifier.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Already signed in. Use 'logout' first.")
		return nil
	}

	userName, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	if userName == "" {
		fmt.Fprintln(a.out, "Username is required.")
		return errors.New("empty username")
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		a.log.Error(ctx, "error reading password", "error", err)
		return err
	}

	// SignIn wipes password
	if err := a.authService.SignIn(ctx, userName, password); err != nil {
		if errors.Is(err, client.ErrUnavailable) {
			a.log.Warn(ctx, "calibration service unreachable", "base_url", a.config.BaseURL)
		}
		return err
	}

	a.userName = userName
	a.resetScreens()
	return nil
}

// Logout asks for confirmation and signs out.
func (a *App) Logout(ctx context.Context) error {
	if !a.authService.SignOut(ctx, promptConfirmer{reader: a.reader, out: a.out}) {
		fmt.Fprintln(a.out, "Logout cancelled.")
		return nil
	}
	a.userName = ""
	a.resetScreens()
	return nil
}
