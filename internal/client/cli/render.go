package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/dmitrijs2005/calcms/internal/client/export"
	"github.com/dmitrijs2005/calcms/internal/client/filter"
	"github.com/dmitrijs2005/calcms/internal/client/models"
	"github.com/dmitrijs2005/calcms/internal/client/services"
)

const msgNoData = "No data available"

// noData reports a failed load the way every screen does.
func (a *App) noData(ctx context.Context, what string, err error) error {
	a.log.Debug(ctx, "screen load failed", "screen", what, "error", err)
	fmt.Fprintln(a.out, msgNoData)
	return err
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func renderView(w io.Writer, v *services.View, names export.Names) {
	rows := v.Rows()

	fmt.Fprintf(w, "%s: %d of %d\n", v.Title, len(rows), len(v.Base))
	if f := describeCriteria(v.Criteria, names); f != "" {
		fmt.Fprintf(w, "filters: %s\n", f)
	}
	if len(rows) == 0 {
		fmt.Fprintln(w, "No matching equipment.")
		return
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "DATE\tT\tID\tCODE\tDESCRIPTION\tLOCATION\tCUSTODIAN")
	for _, e := range rows {
		day, month := filter.CalendarDay(e.LastCalibrationDate)
		fmt.Fprintf(tw, "%2s %s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			day, month,
			filter.CalibrationLetter(e.LastCalibrationType),
			e.ID, e.Code, e.Description,
			names.Location(e.LocationID), names.Custodian(e.CustodianID))
	}
	tw.Flush()
}

func describeCriteria(c models.FilterCriteria, names export.Names) string {
	var parts []string
	if strings.TrimSpace(c.SearchText) != "" {
		parts = append(parts, fmt.Sprintf("search=%q", c.SearchText))
	}
	if active := c.ActiveCalibrationTypes(); len(active) > 0 {
		types := make([]string, 0, len(active))
		for _, t := range active {
			types = append(types, string(t))
		}
		parts = append(parts, "type="+strings.Join(types, ","))
	}
	if c.LocationID != "" {
		parts = append(parts, "location="+names.Location(c.LocationID))
	}
	if c.CustodianID != "" {
		parts = append(parts, "custodian="+names.Custodian(c.CustodianID))
	}
	return strings.Join(parts, " ")
}

func renderSummary(w io.Writer, s models.Summary) {
	if len(s.Fields) == 0 {
		fmt.Fprintln(w, msgNoData)
		return
	}
	tw := newTable(w)
	for _, f := range s.Fields {
		fmt.Fprintf(tw, "%s\t%s\n", f.Name, formatCount(f.Value))
	}
	tw.Flush()
}

func formatCount(v string) string {
	if n, err := strconv.ParseInt(v, 10, 64); err == nil {
		return humanize.Comma(n)
	}
	return v
}

func renderDetail(w io.Writer, d models.EquipmentDetail, now time.Time) {
	tw := newTable(w)
	row := func(k, v string) {
		if v == "" {
			v = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\n", k, v)
	}

	row("ID", d.ID.String())
	row("Code", d.Code)
	row("Description", d.Description)
	row("Make", d.EquipmentMake)
	row("Status", d.CalibrationStatus)
	row("Last calibration", formatDate(d.LastCalibrationDate, now))
	row("Calibration type", fmt.Sprintf("%s (%s)", d.LastCalibrationType, filter.CalibrationLetter(d.LastCalibrationType)))
	row("Calibrated at", d.LastCalibrationLocation)
	row("Next schedule", formatDate(d.NextSchedule, now))
	row("Usage location", d.UsageLocation)
	row("Custodian", d.Custodian)
	row("Purchased", formatDate(d.PurchaseDate, now))
	tw.Flush()
}

// formatDate renders a backend date with its distance from now, e.g.
// "15 Mar 2024 (7 months ago)". Unparseable values are shown verbatim.
func formatDate(s string, now time.Time) string {
	t, ok := models.ParseDate(s)
	if !ok {
		return s
	}
	return fmt.Sprintf("%s (%s)", t.Format("02 Jan 2006"), humanize.RelTime(t, now, "ago", "from now"))
}

func renderLocations(w io.Writer, locations []models.Location) {
	if len(locations) == 0 {
		fmt.Fprintln(w, msgNoData)
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tLOCATION")
	for _, l := range locations {
		fmt.Fprintf(tw, "%s\t%s\n", l.ID, l.Name)
	}
	tw.Flush()
}

func renderCustodians(w io.Writer, custodians []models.Custodian) {
	if len(custodians) == 0 {
		fmt.Fprintln(w, msgNoData)
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tCUSTODIAN")
	for _, c := range custodians {
		fmt.Fprintf(tw, "%s\t%s\n", c.ID, c.Name)
	}
	tw.Flush()
}
