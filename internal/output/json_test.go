// internal/output/json_test.go
package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"systemsgen/pkg/api"
)

func TestWriteJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	list := recs([]string{"Sol", "1", "2", "G2"}, []string{"Alpha", "3", "4", "K1"})
	if err := WriteJSON(buf, list); err != nil {
		t.Fatalf("json write: %v", err)
	}
	var got []api.SystemV1
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil || len(got) != 2 || got[1].Name != "Alpha" {
		t.Fatalf("json round-trip failed: %v %v", err, got)
	}
	if got[0].Num1 != "1" || got[0].Tag != "G2" {
		t.Fatalf("unexpected first row: %+v", got[0])
	}
}

func TestWriteJSONRejectsNonNumeric(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := WriteJSON(buf, recs([]string{"name", "x", "y", "class"})); err == nil {
		t.Fatalf("expected error for header-like row")
	}
}
