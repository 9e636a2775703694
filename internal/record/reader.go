// internal/record/reader.go
package record

import (
	"bufio"
	"io"
	"strings"

	"systemsgen/internal/common"
)

// ParseOptions tweaks Parse. The zero value keeps every line.
type ParseOptions struct {
	// SkipHeader drops the first line of the input.
	SkipHeader bool
}

// Parse splits r into records, one per line, in input order.
//
// Fields are separated by ',' with no quoting or escaping. Nothing is
// validated: short rows, non-numeric columns and blank lines all come
// through as-is. Lines have no length limit. A trailing "\r" is dropped,
// and a final newline does not produce an extra record.
func Parse(r io.Reader, opts ParseOptions) ([]Record, error) {
	br := bufio.NewReader(r)

	var list []Record
	ln := 0
	for {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		if line == "" && err == io.EOF {
			break
		}
		ln++
		if !(ln == 1 && opts.SkipHeader) {
			line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
			list = append(list, Record{Line: ln, Fields: strings.Split(line, ",")})
		}
		if err == io.EOF {
			break
		}
	}
	return list, nil
}

// ReadFile opens path ("-" for stdin) and parses it. The file is closed
// before ReadFile returns. Open and read failures are FileAccessErrors.
func ReadFile(path string, opts ParseOptions) ([]Record, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, common.ReadError(path, err)
	}
	defer rc.Close()

	list, err := Parse(rc, opts)
	if err != nil {
		return nil, common.ReadError(path, err)
	}
	return list, nil
}
