package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// SummaryField is one counter of the equipment summary.
type SummaryField struct {
	Name  string
	Value string
}

// Summary is the equipment summary object. Field order follows the response.
type Summary struct {
	Fields []SummaryField
}

func (s *Summary) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errors.New("summary: expected JSON object")
	}

	s.Fields = s.Fields[:0]
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("summary: unexpected key %v", tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		s.Fields = append(s.Fields, SummaryField{Name: name, Value: rawToText(raw)})
	}
	_, err = dec.Token()
	return err
}

// rawToText renders strings unquoted, null as "" and anything else verbatim.
func rawToText(raw json.RawMessage) string {
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return str
	}
	return string(bytes.TrimSpace(raw))
}
