package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/calcms/internal/client/export"
)

// Export saves the visible rows of the open screen to an .xlsx file.
func (a *App) Export(ctx context.Context, args []string) error {
	if !a.requireView() {
		return errNotAvailable
	}

	path := fmt.Sprintf("calcms-%s-%s.xlsx", a.view.Screen, a.now().Format("20060102-150405"))
	if len(args) > 0 {
		path = args[0]
	}

	rows := a.view.Rows()
	if err := export.SaveXLSX(path, rows, a.names()); err != nil {
		a.log.Error(ctx, "error exporting rows", "path", path, "error", err)
		fmt.Fprintln(a.out, "Export failed:", err)
		return err
	}

	fmt.Fprintf(a.out, "Exported %d rows to %s\n", len(rows), path)
	return nil
}
