package cli

import (
	"errors"

	"github.com/forgo/gamesdb/internal/database"
)

// Exit codes for CLI commands.
const (
	ExitSuccess       = 0
	ExitFailure       = 1 // store operation failed or other error
	ExitNotFound      = 2 // requested record does not exist
	ExitConfiguration = 3 // bad settings or store unreachable
	ExitDuplicates    = 4 // check found duplicate keys
)

// ExitCode maps an error returned by a command to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	case errors.Is(err, ErrDuplicatesFound):
		return ExitDuplicates
	case database.IsConfigurationError(err),
		errors.Is(err, database.ErrUnsupportedDriver),
		errors.Is(err, errInvalidConfig):
		return ExitConfiguration
	}
	return ExitFailure
}
