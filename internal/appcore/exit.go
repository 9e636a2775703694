package appcore

import (
	"context"
	"errors"

	"systemsgen/internal/common"
)

// Exit codes.
const (
	ExitOK        = 0
	ExitStale     = 1
	ExitUsage     = 2
	ExitIO        = 3
	ExitCancelled = 130
)

// ExitCode maps a Run error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitCancelled
	case errors.Is(err, ErrStale):
		return ExitStale
	case common.IsFileAccess(err):
		return ExitIO
	}
	return ExitUsage
}
