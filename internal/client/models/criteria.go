package models

// FilterCriteria is what a user has chosen to narrow a list.
// The zero value selects everything.
type FilterCriteria struct {
	SearchText       string
	CalibrationTypes map[CalibrationType]bool
	LocationID       ID
	CustodianID      ID
}

// ToggleCalibrationType flips one checkbox.
func (c *FilterCriteria) ToggleCalibrationType(t CalibrationType) {
	if c.CalibrationTypes == nil {
		c.CalibrationTypes = make(map[CalibrationType]bool)
	}
	c.CalibrationTypes[t] = !c.CalibrationTypes[t]
}

// ActiveCalibrationTypes returns the ticked checkboxes in display order.
func (c FilterCriteria) ActiveCalibrationTypes() []CalibrationType {
	var active []CalibrationType
	for _, t := range FilterableCalibrationTypes {
		if c.CalibrationTypes[t] {
			active = append(active, t)
		}
	}
	return active
}

// Clone returns a copy that shares no state with c.
func (c FilterCriteria) Clone() FilterCriteria {
	out := c
	if c.CalibrationTypes != nil {
		out.CalibrationTypes = make(map[CalibrationType]bool, len(c.CalibrationTypes))
		for k, v := range c.CalibrationTypes {
			out.CalibrationTypes[k] = v
		}
	}
	return out
}
