package models

import "encoding/json"

// Location is an option of the location dropdown.
type Location struct {
	ID   ID
	Name string
}

func (l *Location) UnmarshalJSON(b []byte) error {
	var raw struct {
		ID   ID     `json:"LocationID"`
		Name string `json:"Location"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	l.ID, l.Name = raw.ID, raw.Name
	return nil
}

// Custodian is an option of the custodian dropdown. The backend has used
// both CustodianID/CustodianName and id/name.
type Custodian struct {
	ID   ID
	Name string
}

func (c *Custodian) UnmarshalJSON(b []byte) error {
	var raw struct {
		CustodianID   ID     `json:"CustodianID"`
		CustodianName string `json:"CustodianName"`
		ID            ID     `json:"id"`
		Name          string `json:"name"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	c.ID, c.Name = raw.CustodianID, raw.CustodianName
	if c.ID == "" {
		c.ID = raw.ID
	}
	if c.Name == "" {
		c.Name = raw.Name
	}
	return nil
}

// CompactLocations drops options without an id or a name.
func CompactLocations(in []Location) []Location {
	out := make([]Location, 0, len(in))
	for _, l := range in {
		if l.ID != "" && l.Name != "" {
			out = append(out, l)
		}
	}
	return out
}

// CompactCustodians drops options without an id or a name.
func CompactCustodians(in []Custodian) []Custodian {
	out := make([]Custodian, 0, len(in))
	for _, c := range in {
		if c.ID != "" && c.Name != "" {
			out = append(out, c)
		}
	}
	return out
}
