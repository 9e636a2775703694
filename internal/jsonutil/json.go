// internal/jsonutil/json.go
package jsonutil

import (
	"bufio"
	"encoding/json"
	"io"
)

// EncodeRows writes rows as a JSON array, one compact element per line:
//
//	[
//	  ["Sol",1,2,"G2"],
//	  ["Alpha",3,4,"K1"]
//	]
//
// An empty slice is written as "[]". Output ends with a newline.
func EncodeRows(w io.Writer, rows []any) error {
	bw := bufio.NewWriter(w)
	if len(rows) == 0 {
		if _, err := bw.WriteString("[]\n"); err != nil {
			return err
		}
		return bw.Flush()
	}
	if _, err := bw.WriteString("[\n"); err != nil {
		return err
	}
	for i, row := range rows {
		b, err := json.Marshal(row)
		if err != nil {
			return err
		}
		bw.WriteString("  ")
		bw.Write(b)
		if i < len(rows)-1 {
			bw.WriteByte(',')
		}
		bw.WriteByte('\n')
	}
	if _, err := bw.WriteString("]\n"); err != nil {
		return err
	}
	return bw.Flush()
}
