// Package filter derives the visible rows of an equipment list from the
// fetched records and the user's FilterCriteria. Every function returns a
// new slice; the input is never modified.
package filter

import (
	"sort"
	"strings"

	"github.com/dmitrijs2005/calcms/internal/client/models"
)

// Stage narrows the output of the previous stage.
type Stage func(records []models.Equipment, c models.FilterCriteria) []models.Equipment

var (
	// ListStages is the full pipeline of the equipment list screen. Location
	// is not a stage there: the list is refetched per location instead.
	ListStages = []Stage{BySearchText, ByCalibrationTypes, ByCustodian}

	// OverdueStages is used by the overdue screen, which has no dropdowns.
	OverdueStages = []Stage{BySearchText, ByCalibrationTypes}

	// ScheduleStages is used by the due-schedule screen (search only).
	ScheduleStages = []Stage{BySearchText}
)

// Run applies stages in order.
func Run(records []models.Equipment, c models.FilterCriteria, stages ...Stage) []models.Equipment {
	out := append([]models.Equipment(nil), records...)
	for _, stage := range stages {
		out = stage(out, c)
	}
	return out
}

// Apply runs ListStages.
func Apply(records []models.Equipment, c models.FilterCriteria) []models.Equipment {
	return Run(records, c, ListStages...)
}

// BySearchText keeps records whose code contains the search text, ignoring
// case. Blank search text keeps everything.
func BySearchText(records []models.Equipment, c models.FilterCriteria) []models.Equipment {
	if strings.TrimSpace(c.SearchText) == "" {
		return keep(records, func(models.Equipment) bool { return true })
	}
	needle := strings.ToLower(c.SearchText)
	return keep(records, func(e models.Equipment) bool {
		return strings.Contains(strings.ToLower(e.Code), needle)
	})
}

// ByCalibrationTypes keeps records of a ticked type. Nothing ticked keeps everything.
func ByCalibrationTypes(records []models.Equipment, c models.FilterCriteria) []models.Equipment {
	active := c.ActiveCalibrationTypes()
	if len(active) == 0 {
		return keep(records, func(models.Equipment) bool { return true })
	}
	return keep(records, func(e models.Equipment) bool {
		t := models.CalibrationType(strings.ToLower(e.LastCalibrationType))
		for _, a := range active {
			if t == a {
				return true
			}
		}
		return false
	})
}

// ByCustodian keeps records of the chosen custodian.
func ByCustodian(records []models.Equipment, c models.FilterCriteria) []models.Equipment {
	if c.CustodianID == "" {
		return keep(records, func(models.Equipment) bool { return true })
	}
	return keep(records, func(e models.Equipment) bool { return e.CustodianID == c.CustodianID })
}

func keep(records []models.Equipment, pred func(models.Equipment) bool) []models.Equipment {
	out := make([]models.Equipment, 0, len(records))
	for _, r := range records {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

// CalibrationLetter abbreviates a calibration type for compact display:
// I, E, M, or ? for anything else. Only case is ignored, matching
// ByCalibrationTypes.
func CalibrationLetter(calibrationType string) string {
	switch models.CalibrationType(strings.ToLower(calibrationType)) {
	case models.CalibrationInternal:
		return "I"
	case models.CalibrationExternal:
		return "E"
	case models.CalibrationMaster:
		return "M"
	default:
		return "?"
	}
}

// SortByCalibrationLetter orders records by CalibrationLetter. Records with
// the same letter keep their fetch order.
func SortByCalibrationLetter(records []models.Equipment) []models.Equipment {
	out := append([]models.Equipment(nil), records...)
	sort.SliceStable(out, func(i, j int) bool {
		return CalibrationLetter(out[i].LastCalibrationType) < CalibrationLetter(out[j].LastCalibrationType)
	})
	return out
}
