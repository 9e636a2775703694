// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"systemsgen/internal/config"
	"systemsgen/internal/output"
)

// Defaults used when neither a flag nor the config file says otherwise.
var (
	DefaultInput  = "systems.csv"
	DefaultOutput = filepath.Join("app", "systems.rb")
	DefaultFormat = output.FormatRuby
)

// Options holds all CLI flags.
type Options struct {
	// Files
	Input  string
	Output string
	Config string

	// Generation
	Format     string
	SkipHeader bool
	Verify     bool

	// Modes
	Check bool
	Watch bool

	Verbose bool
}

// Register binds every flag on fs to o.
func Register(fs *pflag.FlagSet, o *Options) {
	fs.StringVarP(&o.Input, "input", "i", DefaultInput, "CSV file to read ('-' for stdin)")
	fs.StringVarP(&o.Output, "output", "o", DefaultOutput, "file to generate ('-' for stdout)")
	fs.StringVarP(&o.Config, "config", "c", "", "YAML config file, e.g. "+config.DefaultFile+" (never read unless given)")

	fs.StringVarP(&o.Format, "format", "f", DefaultFormat, "output format: ruby | json")
	fs.BoolVar(&o.SkipHeader, "skip-header", false, "drop the first input line")
	fs.BoolVar(&o.Verify, "verify", false, "parse the generated literal back and compare with the input")

	fs.BoolVar(&o.Check, "check", false, "exit 1 if the output is out of date; never write")
	fs.BoolVar(&o.Watch, "watch", false, "regenerate whenever the input changes")

	fs.BoolVarP(&o.Verbose, "verbose", "v", false, "debug logging")
}

// ApplyConfig copies config values onto o for every flag the user did not set.
func ApplyConfig(fs *pflag.FlagSet, o *Options, cfg config.Config) {
	if cfg.Input != "" && !fs.Changed("input") {
		o.Input = cfg.Input
	}
	if cfg.Output != "" && !fs.Changed("output") {
		o.Output = cfg.Output
	}
	if cfg.Format != "" && !fs.Changed("format") {
		o.Format = cfg.Format
	}
	if cfg.SkipHeader != nil && !fs.Changed("skip-header") {
		o.SkipHeader = *cfg.SkipHeader
	}
	if cfg.Verify != nil && !fs.Changed("verify") {
		o.Verify = *cfg.Verify
	}
}

// Validate checks flag combinations. formats lists the registered renderers.
func Validate(o Options, formats []string) error {
	known := false
	for _, f := range formats {
		if f == o.Format {
			known = true
			break
		}
	}
	switch {
	case !known:
		return fmt.Errorf("invalid --format %q (want %s)", o.Format, strings.Join(formats, " | "))
	case o.Input == "":
		return errors.New("--input must not be empty")
	case o.Output == "":
		return errors.New("--output must not be empty")
	case o.Input != "-" && filepath.Clean(o.Input) == filepath.Clean(o.Output):
		return errors.New("--input and --output name the same file")
	case o.Verify && o.Format != output.FormatRuby:
		return fmt.Errorf("--verify requires --format %s", output.FormatRuby)
	case o.Check && o.Watch:
		return errors.New("--check conflicts with --watch")
	case o.Check && o.Output == "-":
		return errors.New("--check needs an output file, not stdout")
	case o.Watch && o.Input == "-":
		return errors.New("--watch needs an input file, not stdin")
	}
	return nil
}
