package app

import (
	"context"
	"errors"

	"github.com/you-humble/assembly-seeder/internal/model"
)

const (
	ExitOK             = 0
	ExitUnknown        = 1
	ExitConfig         = 2
	ExitCredential     = 3
	ExitConnection     = 4
	ExitWrite          = 5
	ExitInvalidCatalog = 6
	ExitCanceled       = 130
)

// ExitCode maps a run error to the process exit status. Cancellation wins over
// whatever the interrupted step reported.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitCanceled
	case errors.Is(err, model.ErrConfig):
		return ExitConfig
	case errors.Is(err, model.ErrCredential):
		return ExitCredential
	case errors.Is(err, model.ErrConnection):
		return ExitConnection
	case errors.Is(err, model.ErrInvalidCatalog):
		return ExitInvalidCatalog
	case errors.Is(err, model.ErrWrite):
		return ExitWrite
	default:
		return ExitUnknown
	}
}
