// Package models defines the records returned by the calibration service
// and the criteria screens use to narrow them.
package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// CalibrationType classifies the last calibration event of a piece of equipment.
type CalibrationType string

const (
	CalibrationInternal CalibrationType = "internal"
	CalibrationExternal CalibrationType = "external"
	CalibrationMaster   CalibrationType = "master"
	CalibrationOther    CalibrationType = "other"
)

// FilterableCalibrationTypes are the types a user can tick in a filter.
var FilterableCalibrationTypes = []CalibrationType{CalibrationInternal, CalibrationExternal, CalibrationMaster}

// ParseCalibrationType maps free text (any case) onto a CalibrationType.
// Anything unrecognised is CalibrationOther.
func ParseCalibrationType(s string) CalibrationType {
	switch t := CalibrationType(strings.ToLower(strings.TrimSpace(s))); t {
	case CalibrationInternal, CalibrationExternal, CalibrationMaster:
		return t
	default:
		return CalibrationOther
	}
}

// ID is an identifier the backend sends either as a JSON string or number.
// It is normalised to its decimal/string form so comparisons are exact.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*id = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*id = ID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	if i, err := n.Int64(); err == nil {
		*id = ID(strconv.FormatInt(i, 10))
		return nil
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string { return string(id) }

// Equipment is one row of any equipment list endpoint.
type Equipment struct {
	ID                  ID     `json:"EquipmentID"`
	Code                string `json:"EquipmentCode"`
	Description         string `json:"EquipmentDesc"`
	LastCalibrationDate string `json:"LastCalibrationDate"`
	LastCalibrationType string `json:"LastCalibrationType"`
	LocationID          ID     `json:"LocationId"`
	CustodianID         ID     `json:"CustodianId"`
}

// EquipmentDetail is the payload of the equipment-by-id endpoint.
type EquipmentDetail struct {
	Equipment
	CalibrationStatus       string `json:"CalibrationStatus"`
	LastCalibrationLocation string `json:"LastCalibrationLocation"`
	NextSchedule            string `json:"NextSchedule"`
	EquipmentMake           string `json:"EquipmentMake"`
	UsageLocation           string `json:"UsageLocation"`
	Custodian               string `json:"Custodian"`
	PurchaseDate            string `json:"PurchaseDate"`
}
