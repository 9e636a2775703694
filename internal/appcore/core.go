// internal/appcore/core.go
package appcore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"systemsgen/internal/literal"
	"systemsgen/internal/output"
	"systemsgen/internal/record"
	"systemsgen/internal/writers"
)

var (
	// ErrStale means --check found the output differs from what would be generated.
	ErrStale = errors.New("output is out of date")
	// ErrVerify means the generated literal does not parse back to the input rows.
	ErrVerify = errors.New("generated literal does not round-trip")
)

type Options struct {
	Input      string
	Output     string
	Format     string
	SkipHeader bool

	Verify bool // parse the generated ruby back and compare with the input
	Check  bool // compare with the existing output; never write

	Stdout io.Writer // used when Output is "-"
}

type Result struct {
	Output  string
	Records int
	Bytes   int
	Changed bool // output differed from (or did not exist as) the previous file
}

// Run reads Input, renders it and writes Output. The input is read and closed
// before anything is written; when reading fails the output is untouched.
func Run(ctx context.Context, log *zap.Logger, o Options) (Result, error) {
	res := Result{Output: o.Output}
	if err := ctx.Err(); err != nil {
		return res, err
	}

	list, err := record.ReadFile(o.Input, record.ParseOptions{SkipHeader: o.SkipHeader})
	if err != nil {
		return res, err
	}
	res.Records = len(list)
	log.Debug("read input", zap.String("input", o.Input), zap.Int("records", len(list)))

	data, err := writers.Render(o.Format, list)
	if err != nil {
		return res, err
	}
	res.Bytes = len(data)

	if o.Verify {
		if err := verify(o.Format, data, list); err != nil {
			return res, err
		}
		log.Debug("verified literal", zap.Int("records", len(list)))
	}

	prev, ok := writers.ReadCurrent(o.Output)
	res.Changed = !ok || !bytes.Equal(prev, data)

	if o.Check {
		if res.Changed {
			return res, fmt.Errorf("%s: %w", o.Output, ErrStale)
		}
		log.Debug("output up to date", zap.String("output", o.Output))
		return res, nil
	}

	if err := writers.WriteFile(o.Output, data, o.Stdout); err != nil {
		return res, err
	}
	log.Info("generated",
		zap.String("input", o.Input),
		zap.String("output", o.Output),
		zap.Int("records", res.Records),
		zap.Int("bytes", res.Bytes),
		zap.Bool("changed", res.Changed),
	)
	return res, nil
}

// verify parses the rendered ruby and compares it row by row with list.
// Number fields are compared without surrounding spaces, which Ruby ignores.
func verify(format string, data []byte, list []record.Record) error {
	if format != output.FormatRuby {
		return fmt.Errorf("%w: verify supports only %s output, got %s", ErrVerify, output.FormatRuby, format)
	}
	a, err := literal.Parse(data)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrVerify, err)
	}
	rows := a.Table()
	if len(rows) != len(list) {
		return fmt.Errorf("%w: %d rows parsed, %d records read", ErrVerify, len(rows), len(list))
	}
	for i, r := range list {
		got := rows[i]
		if len(got) != record.NumFields {
			return fmt.Errorf("%w: line %d: %d values, want %d", ErrVerify, r.Line, len(got), record.NumFields)
		}
		for j := 0; j < record.NumFields; j++ {
			want := r.Field(j)
			if j == record.FieldNum1 || j == record.FieldNum2 {
				want = strings.TrimSpace(want)
			}
			if got[j] != want {
				return fmt.Errorf("%w: line %d field %d: read %q, parsed %q", ErrVerify, r.Line, j, r.Field(j), got[j])
			}
		}
	}
	return nil
}
