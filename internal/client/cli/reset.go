package cli

import (
	"context"
	"fmt"
)

// proceedConfirmer answers yes without asking; the user already confirmed.
type proceedConfirmer struct{}

func (proceedConfirmer) Confirm(context.Context, string, string, string) bool { return true }

// Reset erases everything stored on this device, the saved token included,
// and signs out.
func (a *App) Reset(ctx context.Context) error {
	confirm := promptConfirmer{reader: a.reader, out: a.out}
	if !confirm.Confirm(ctx, "Erase all data stored on this device?", "Erase", "Cancel") {
		fmt.Fprintln(a.out, "Reset cancelled.")
		return nil
	}

	n, err := a.localData.Reset(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not erase local data.")
		return err
	}

	if a.isLoggedIn() {
		a.authService.SignOut(ctx, proceedConfirmer{})
		a.userName = ""
		a.resetScreens()
	}

	fmt.Fprintf(a.out, "Erased %d local entries.\n", n)
	return nil
}
