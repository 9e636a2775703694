// internal/app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"systemsgen/internal/appcore"
	"systemsgen/internal/cli"
	"systemsgen/internal/config"
	"systemsgen/internal/logging"
	"systemsgen/internal/version"
	"systemsgen/internal/watch"
	"systemsgen/internal/writers"
)

// usageError marks failures in flags or config, reported with exit code 2.
type usageError struct{ error }

func (e usageError) Unwrap() error { return e.error }

// NewCommand builds the root command. stdout receives generated output when
// --output is "-"; logs and errors go to stderr.
func NewCommand(stdout, stderr io.Writer) *cobra.Command {
	var opts cli.Options
	cmd := &cobra.Command{
		Use:   "systemsgen",
		Short: "Generate app/systems.rb from systems.csv",
		Long: `systemsgen reads a headerless CSV of planetary systems (name, two numbers,
a tag) and writes it out as a Ruby array literal:

  systems =[   [ "Sol", 1, 2, "G2"],
    [ "Alpha", 3, 4, "K1"],
  ]

Run without arguments to read ./systems.csv and overwrite ./app/systems.rb.
The app/ directory must already exist.`,
		Example: `  systemsgen
  systemsgen --check
  systemsgen -i data/systems.csv -o - --format json
  systemsgen --watch --verify`,
		Version:       version.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, &opts, stdout, stderr)
		},
	}
	cmd.SetVersionTemplate("systemsgen version {{.Version}}\n")
	cli.Register(cmd.Flags(), &opts)
	return cmd
}

func run(cmd *cobra.Command, opts *cli.Options, stdout, stderr io.Writer) error {
	cfg, cfgPath, err := config.Discover(opts.Config)
	if err != nil {
		return usageError{err}
	}
	cli.ApplyConfig(cmd.Flags(), opts, cfg)
	if err := cli.Validate(*opts, writers.Formats()); err != nil {
		return usageError{err}
	}

	log := logging.New(stderr, logging.Level(opts.Verbose, opts.Watch))
	defer func() { _ = log.Sync() }()
	if cfgPath != "" {
		log.Debug("loaded config", zap.String("path", cfgPath))
	}

	core := appcore.Options{
		Input:      opts.Input,
		Output:     opts.Output,
		Format:     opts.Format,
		SkipHeader: opts.SkipHeader,
		Verify:     opts.Verify,
		Check:      opts.Check,
		Stdout:     stdout,
	}
	ctx := cmd.Context()
	if !opts.Watch {
		_, err := appcore.Run(ctx, log, core)
		return err
	}

	regen := func(ctx context.Context) error {
		_, err := appcore.Run(ctx, log, core)
		return err
	}
	w := watch.New(opts.Input, watch.DefaultDebounce, log, regen)
	w.OnReady(func(ctx context.Context) {
		if err := regen(ctx); err != nil && ctx.Err() == nil {
			log.Warn("initial generation failed", zap.Error(err))
		}
	})
	if err := w.Run(ctx); err != nil {
		return fmt.Errorf("watch %s: %w", opts.Input, err)
	}
	return ctx.Err()
}

// RunContext executes the CLI and returns the process exit code.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	cmd := NewCommand(stdout, stderr)
	cmd.SetArgs(argv)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	ran := false
	inner := cmd.RunE
	cmd.RunE = func(c *cobra.Command, args []string) error {
		ran = true
		return inner(c, args)
	}

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return appcore.ExitOK
	}
	if errors.Is(err, context.Canceled) {
		return appcore.ExitCancelled
	}
	_, _ = fmt.Fprintf(stderr, "error: %v\n", err)

	var ue usageError
	if !ran || errors.As(err, &ue) {
		if !ran {
			_, _ = fmt.Fprintln(stderr, cmd.UsageString())
		}
		return appcore.ExitUsage
	}
	return appcore.ExitCode(err)
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
