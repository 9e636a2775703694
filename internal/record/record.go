// Package record holds the parsed rows of a systems CSV file.
package record

// Positional field indexes. The input carries no header, so columns are
// known only by position.
const (
	FieldName = iota
	FieldNum1
	FieldNum2
	FieldTag

	NumFields
)

// Record is one input line split on commas. Fields are kept verbatim.
type Record struct {
	Line   int // 1-based line number in the source
	Fields []string
}

// Field returns field i, or "" when the row is shorter than i+1.
func (r Record) Field(i int) string {
	if i < 0 || i >= len(r.Fields) {
		return ""
	}
	return r.Fields[i]
}

func (r Record) Name() string { return r.Field(FieldName) }
func (r Record) Tag() string  { return r.Field(FieldTag) }
