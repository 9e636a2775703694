// Package literal parses the array assignments written by the ruby renderer,
// so generated files can be checked for silent corruption.
package literal

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Assignment is `name = [ row, row, ... ]`.
type Assignment struct {
	Name string `parser:"@Ident \"=\""`
	Rows []*Row `parser:"\"[\" ( @@ \",\"? )* \"]\""`
}

// Row is `[ value, value, ... ]`. Trailing commas are allowed.
type Row struct {
	Values []*Value `parser:"\"[\" ( @@ \",\"? )* \"]\""`
}

// Value is a double-quoted string without escapes or interpolation, or a
// bare number. A '#' directly before '{', '@' or '$' would be evaluated by
// Ruby, so such strings do not lex.
type Value struct {
	Str *string `parser:"  @String"`
	Num *string `parser:"| @Number"`
}

// Text returns the string contents or the number exactly as written.
func (v *Value) Text() string {
	switch {
	case v.Str != nil:
		return *v.Str
	case v.Num != nil:
		return *v.Num
	}
	return ""
}

var (
	lex = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
		{Name: "String", Pattern: `"(?:[^"\\\n#]|#+[^"\\\n#{@$])*#*"`},
		{Name: "Number", Pattern: `[-+]?(\d+(\.\d*)?|\.\d+)([eE][-+]?\d+)?`},
		{Name: "Punct", Pattern: `[=\[\],]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	parser = participle.MustBuild[Assignment](
		participle.Lexer(lex),
		participle.Elide("Whitespace"),
		participle.Unquote("String"),
	)
)

// Parse parses a generated assignment.
func Parse(src []byte) (*Assignment, error) {
	return parser.ParseBytes("", src)
}

// Table flattens the assignment into per-row value text.
func (a *Assignment) Table() [][]string {
	out := make([][]string, 0, len(a.Rows))
	for _, r := range a.Rows {
		vals := make([]string, 0, len(r.Values))
		for _, v := range r.Values {
			vals = append(vals, v.Text())
		}
		out = append(out, vals)
	}
	return out
}
