package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// ConfigurationError Tests
// ============================================================================

func TestConfigurationError_Error_IncludesOpDetailAndCause(t *testing.T) {
	t.Parallel()

	err := &ConfigurationError{
		Op:     "open",
		Detail: "cannot connect to db.local:27017",
		Err:    errors.New("connection refused"),
	}

	msg := err.Error()
	assert.Contains(t, msg, "configuration error")
	assert.Contains(t, msg, "open")
	assert.Contains(t, msg, "db.local:27017")
	assert.Contains(t, msg, "connection refused")
}

func TestNotConnected_UnwrapsToSentinel(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("read bgg game: %w", NotConnected("find"))

	assert.ErrorIs(t, err, ErrNotConnected)
	assert.True(t, IsConfigurationError(err))
	assert.False(t, IsOperationError(err))
}

// ============================================================================
// OperationError Tests
// ============================================================================

func TestOperationError_Error_NamesCollection(t *testing.T) {
	t.Parallel()

	err := &OperationError{Op: "find", Collection: "bgg_game", Err: ErrQuery}

	assert.Equal(t, "database operation find on bgg_game failed: query error", err.Error())
	assert.ErrorIs(t, err, ErrQuery)
}

func TestOperationError_Error_WithoutCollection(t *testing.T) {
	t.Parallel()

	err := &OperationError{Op: "ping", Err: errors.New("timeout")}

	assert.Equal(t, "database operation ping failed: timeout", err.Error())
}

func TestInvalidArgument_WrapsSentinel(t *testing.T) {
	t.Parallel()

	err := InvalidArgument("read", "game", "negative key %d", -5)

	require.True(t, IsOperationError(err))
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, err.Error(), "negative key -5")
	assert.Equal(t, "game", err.Collection)
}
