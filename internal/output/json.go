// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"systemsgen/internal/jsonutil"
	"systemsgen/internal/record"
	"systemsgen/pkg/api"
)

// ToAPISystem converts a record to the stable wire schema (v1).
func ToAPISystem(r record.Record) api.SystemV1 {
	return api.SystemV1{
		Name: r.Name(),
		Num1: json.Number(r.Field(record.FieldNum1)),
		Num2: json.Number(r.Field(record.FieldNum2)),
		Tag:  r.Tag(),
	}
}

// WriteJSON writes a JSON array with one compact row per line. Unlike the
// Ruby form it fails on non-numeric number columns.
func WriteJSON(w io.Writer, list []record.Record) error {
	rows := make([]any, 0, len(list))
	for _, r := range list {
		rows = append(rows, ToAPISystem(r))
	}
	return jsonutil.EncodeRows(w, rows)
}
