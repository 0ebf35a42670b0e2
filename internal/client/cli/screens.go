package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/calcms/internal/client/client"
	"github.com/dmitrijs2005/calcms/internal/client/export"
	"github.com/dmitrijs2005/calcms/internal/client/models"
	"github.com/dmitrijs2005/calcms/internal/client/services"
)

func (a *App) Summary(ctx context.Context) error {
	s, err := a.equipmentService.Summary(ctx)
	if err != nil {
		return a.noData(ctx, "summary", err)
	}
	fmt.Fprintln(a.out, "Equipment summary")
	renderSummary(a.out, s)
	return nil
}

func (a *App) Overdue(ctx context.Context) error {
	v, err := a.equipmentService.Overdue(ctx)
	if err != nil {
		return a.noData(ctx, "overdue", err)
	}
	a.view = v
	renderView(a.out, v, a.names())
	return nil
}

// Schedule opens the due list of the given period, a week by default.
func (a *App) Schedule(ctx context.Context, args []string) error {
	period := client.PeriodWeek
	if len(args) > 0 {
		period = client.Period(strings.ToLower(args[0]))
	}
	switch period {
	case client.PeriodWeek, client.PeriodMonth, client.PeriodYear:
	default:
		fmt.Fprintln(a.out, "Usage: schedule [week|month|year]")
		return fmt.Errorf("unknown period %q", args[0])
	}

	v, err := a.equipmentService.Schedule(ctx, period)
	if err != nil {
		return a.noData(ctx, "schedule", err)
	}
	a.view = v
	renderView(a.out, v, a.names())
	return nil
}

// List opens the full equipment list and loads the filter options.
func (a *App) List(ctx context.Context) error {
	v, err := a.equipmentService.List(ctx)
	if err != nil {
		return a.noData(ctx, "list", err)
	}
	a.view = v
	a.loadOptions(ctx)
	renderView(a.out, v, a.names())
	return nil
}

func (a *App) Show(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: show <id>")
		return errors.New("missing equipment id")
	}
	d, err := a.equipmentService.Detail(ctx, models.ID(args[0]))
	if err != nil {
		return a.noData(ctx, "detail", err)
	}
	renderDetail(a.out, d, a.now())
	return nil
}

func (a *App) Locations(ctx context.Context) error {
	a.loadOptions(ctx)
	renderLocations(a.out, a.options.Locations)
	return nil
}

func (a *App) Custodians(ctx context.Context) error {
	a.loadOptions(ctx)
	renderCustodians(a.out, a.options.Custodians)
	return nil
}

// loadOptions fetches the dropdown options once per session. A failed half
// is logged by the service and retried on the next call.
func (a *App) loadOptions(ctx context.Context) {
	if a.options != nil && len(a.options.Locations) > 0 && len(a.options.Custodians) > 0 {
		return
	}
	opts, err := a.equipmentService.Options(ctx)
	if err != nil {
		a.log.Warn(ctx, "filter options incomplete", "error", err)
	}
	if a.options != nil {
		if len(opts.Locations) == 0 {
			opts.Locations = a.options.Locations
		}
		if len(opts.Custodians) == 0 {
			opts.Custodians = a.options.Custodians
		}
	}
	a.options = &opts
}

func (a *App) names() export.Names {
	if a.options == nil {
		return export.Names{}
	}
	return export.NamesFrom(a.options.Locations, a.options.Custodians)
}

// requireView reports whether a list screen is open, telling the user
// otherwise. With screens given, the open one must be among them.
func (a *App) requireView(screens ...services.Screen) bool {
	if a.view == nil {
		fmt.Fprintln(a.out, "Open a list first: overdue, schedule or list.")
		return false
	}
	if len(screens) == 0 {
		return true
	}
	for _, s := range screens {
		if a.view.Screen == s {
			return true
		}
	}
	fmt.Fprintf(a.out, "Not available on the %s screen.\n", a.view.Screen)
	return false
}
