package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/calcms/internal/client/models"
	"github.com/dmitrijs2005/calcms/internal/client/services"
)

var errNotAvailable = errors.New("not available on this screen")

// Search sets the code filter of the open screen; no args clears it.
func (a *App) Search(ctx context.Context, args []string) error {
	if !a.requireView() {
		return errNotAvailable
	}
	a.view.Criteria.SearchText = strings.Join(args, " ")
	return a.Rows(ctx)
}

// Type toggles calibration-type checkboxes.
func (a *App) Type(ctx context.Context, args []string) error {
	if !a.requireView(services.ScreenOverdue, services.ScreenList) {
		return errNotAvailable
	}
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: type <internal|external|master> ...")
		return errors.New("missing calibration type")
	}

	for _, arg := range args {
		t := models.ParseCalibrationType(arg)
		if t == models.CalibrationOther {
			fmt.Fprintf(a.out, "Unknown calibration type %q.\n", arg)
			return fmt.Errorf("unknown calibration type %q", arg)
		}
	}
	for _, arg := range args {
		a.view.Criteria.ToggleCalibrationType(models.ParseCalibrationType(arg))
	}
	return a.Rows(ctx)
}

// Location refetches the equipment list for a location given by id or
// name; no args goes back to all locations.
func (a *App) Location(ctx context.Context, args []string) error {
	if !a.requireView(services.ScreenList) {
		return errNotAvailable
	}

	var id models.ID
	if len(args) > 0 {
		a.loadOptions(ctx)
		id = a.resolveLocation(strings.Join(args, " "))
	}

	if err := a.equipmentService.SetLocation(ctx, a.view, id); err != nil {
		return a.noData(ctx, "location", err)
	}
	return a.Rows(ctx)
}

// Custodian filters the list by custodian id or name; no args clears it.
func (a *App) Custodian(ctx context.Context, args []string) error {
	if !a.requireView(services.ScreenList) {
		return errNotAvailable
	}

	var id models.ID
	if len(args) > 0 {
		a.loadOptions(ctx)
		id = a.resolveCustodian(strings.Join(args, " "))
	}
	a.view.Criteria.CustodianID = id
	return a.Rows(ctx)
}

// Clear drops every filter of the open screen. A location selection is
// undone by refetching the full list.
func (a *App) Clear(ctx context.Context) error {
	if !a.requireView() {
		return errNotAvailable
	}
	if a.view.Criteria.LocationID != "" {
		if err := a.equipmentService.SetLocation(ctx, a.view, ""); err != nil {
			return a.noData(ctx, "location", err)
		}
	}
	a.view.Criteria = models.FilterCriteria{}
	return a.Rows(ctx)
}

// Rows renders the open screen again.
func (a *App) Rows(context.Context) error {
	if !a.requireView() {
		return errNotAvailable
	}
	renderView(a.out, a.view, a.names())
	return nil
}

func (a *App) resolveLocation(arg string) models.ID {
	if a.options != nil {
		for _, l := range a.options.Locations {
			if l.ID.String() == arg {
				return l.ID
			}
		}
		for _, l := range a.options.Locations {
			if strings.EqualFold(l.Name, arg) {
				return l.ID
			}
		}
	}
	return models.ID(arg)
}

func (a *App) resolveCustodian(arg string) models.ID {
	if a.options != nil {
		for _, c := range a.options.Custodians {
			if c.ID.String() == arg {
				return c.ID
			}
		}
		for _, c := range a.options.Custodians {
			if strings.EqualFold(c.Name, arg) {
				return c.ID
			}
		}
	}
	return models.ID(arg)
}
