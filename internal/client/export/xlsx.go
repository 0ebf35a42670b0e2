// Package export writes the visible rows of an equipment screen to an
// Excel workbook.
package export

import (
	"fmt"
	"io"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/dmitrijs2005/calcms/internal/client/filter"
	"github.com/dmitrijs2005/calcms/internal/client/models"
	"github.com/dmitrijs2005/calcms/internal/filex"
)

const sheetName = "Equipment"

var header = []any{"Code", "Description", "Last calibration", "Type", "Location", "Custodian"}

// Names resolves option ids to display names. Unknown ids are written as is.
type Names struct {
	Locations  map[models.ID]string
	Custodians map[models.ID]string
}

// NamesFrom indexes dropdown options by id.
func NamesFrom(locations []models.Location, custodians []models.Custodian) Names {
	n := Names{
		Locations:  make(map[models.ID]string, len(locations)),
		Custodians: make(map[models.ID]string, len(custodians)),
	}
	for _, l := range locations {
		n.Locations[l.ID] = l.Name
	}
	for _, c := range custodians {
		n.Custodians[c.ID] = c.Name
	}
	return n
}

// Location returns the name of location id, or id itself when unknown.
func (n Names) Location(id models.ID) string { return lookup(n.Locations, id) }

// Custodian returns the name of custodian id, or id itself when unknown.
func (n Names) Custodian(id models.ID) string { return lookup(n.Custodians, id) }

func lookup(m map[models.ID]string, id models.ID) string {
	if name, ok := m[id]; ok {
		return name
	}
	return id.String()
}

// WriteXLSX writes rows, in order, as a single-sheet workbook to w.
func WriteXLSX(w io.Writer, rows []models.Equipment, names Names) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("delete default sheet: %w", err)
	}

	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, e := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []any{
			e.Code,
			e.Description,
			e.LastCalibrationDate,
			filter.CalibrationLetter(e.LastCalibrationType),
			names.Location(e.LocationID),
			names.Custodian(e.CustodianID),
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	for col, width := range map[string]float64{"A": 14, "B": 36, "C": 22, "D": 6, "E": 20, "F": 20} {
		if err := f.SetColWidth(sheetName, col, col, width); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// SaveXLSX writes the workbook to path, creating parent directories.
func SaveXLSX(path string, rows []models.Equipment, names Names) (err error) {
	if _, err := filex.EnsureParentDir(path, 0o755); err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return WriteXLSX(out, rows, names)
}
