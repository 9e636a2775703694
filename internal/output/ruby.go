// internal/output/ruby.go
package output

import (
	"bufio"
	"fmt"
	"io"

	"systemsgen/internal/record"
)

// WriteRuby renders list as a Ruby array assignment:
//
//	systems =[   [ "Sol", 1, 2, "G2"],
//	  [ "Alpha", 3, 4, "K1"],
//	]
//
// Every record line ends in ",\n" and nothing follows the closing bracket.
// Fields are interpolated verbatim.
func WriteRuby(w io.Writer, list []record.Record) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(RubyPrefix); err != nil {
		return err
	}
	for _, r := range list {
		if _, err := fmt.Fprintf(bw, "  [ \"%s\", %s, %s, \"%s\"],\n",
			r.Name(), r.Field(record.FieldNum1), r.Field(record.FieldNum2), r.Tag()); err != nil {
			return err
		}
	}
	if _, err := bw.WriteString(RubySuffix); err != nil {
		return err
	}
	return bw.Flush()
}
