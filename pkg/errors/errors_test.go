// Test Type: Unit Test
// Description: Tests for the errors package - structured error codes and wrapping

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NexushasTaken/mdot/pkg/errors"
)

func TestNew(t *testing.T) {
	err := errors.New(errors.ErrCyclicDependency, "dependency cycle")
	assert.Equal(t, "[CYCLIC_DEPENDENCY] dependency cycle", err.Error())
	assert.Equal(t, errors.ErrCyclicDependency, err.Code)
	assert.NotNil(t, err.Details)
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrDuplicateEntry, "duplicate entry %q", "git")
	assert.Equal(t, `[DUPLICATE_ENTRY] duplicate entry "git"`, err.Error())
}

func TestWrap(t *testing.T) {
	t.Run("wraps_and_unwraps", func(t *testing.T) {
		cause := fmt.Errorf("read failed")
		err := errors.Wrap(cause, errors.ErrConfigLoad, "cannot load config")
		assert.Equal(t, "[CONFIG_LOAD] cannot load config: read failed", err.Error())
		assert.Equal(t, cause, stderrors.Unwrap(err))
	})

	t.Run("nil_error_returns_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrConfigLoad, "unused"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrConfigLoad, "unused %d", 1))
	})
}

func TestIs(t *testing.T) {
	err := errors.New(errors.ErrUnresolvedDependency, "missing")
	assert.True(t, stderrors.Is(err, errors.New(errors.ErrUnresolvedDependency, "other message")))
	assert.False(t, stderrors.Is(err, errors.New(errors.ErrCyclicDependency, "missing")))
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrUnresolvedDependency, "missing").
		WithDetail("name", "ghost").
		WithDetail("dependent", "A")

	details := errors.GetErrorDetails(err)
	require.NotNil(t, details)
	assert.Equal(t, "ghost", details["name"])
	assert.Equal(t, "A", details["dependent"])
}

func TestIsErrorCode(t *testing.T) {
	err := errors.New(errors.ErrMalformedEntry, "bad field")
	wrapped := fmt.Errorf("loading: %w", err)

	assert.True(t, errors.IsErrorCode(err, errors.ErrMalformedEntry))
	assert.True(t, errors.IsErrorCode(wrapped, errors.ErrMalformedEntry))
	assert.False(t, errors.IsErrorCode(wrapped, errors.ErrConfigLoad))
	assert.False(t, errors.IsErrorCode(fmt.Errorf("plain"), errors.ErrMalformedEntry))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, errors.ErrDuplicateEntry,
		errors.GetErrorCode(errors.New(errors.ErrDuplicateEntry, "dup")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(fmt.Errorf("plain")))
}
