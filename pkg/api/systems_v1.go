// pkg/api/systems_v1.go
package api

import (
	"encoding/json"
	"fmt"
)

// SystemV1 is the stable JSON schema for one planetary system row.
// It encodes positionally, as ["Sol",1,2,"G2"], mirroring the CSV columns.
type SystemV1 struct {
	Name string
	Num1 json.Number
	Num2 json.Number
	Tag  string
}

// MarshalJSON encodes the row as a four-element array. Number columns must
// be valid JSON numbers; an empty column is an error rather than 0.
func (s SystemV1) MarshalJSON() ([]byte, error) {
	if s.Num1 == "" || s.Num2 == "" {
		return nil, fmt.Errorf("system %q: empty number column", s.Name)
	}
	return json.Marshal([]any{s.Name, s.Num1, s.Num2, s.Tag})
}

// UnmarshalJSON decodes the positional array form.
func (s *SystemV1) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if len(raw) != 4 {
		return fmt.Errorf("system row: want 4 elements, got %d", len(raw))
	}
	if err := json.Unmarshal(raw[0], &s.Name); err != nil {
		return err
	}
	if err := json.Unmarshal(raw[1], &s.Num1); err != nil {
		return err
	}
	if err := json.Unmarshal(raw[2], &s.Num2); err != nil {
		return err
	}
	return json.Unmarshal(raw[3], &s.Tag)
}
