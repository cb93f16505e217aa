package diag

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewfCarriesKind(t *testing.T) {
	err := Newf(Invariant, "node %d has no parent", 7)
	kind, ok := KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, Invariant, kind)
	assert.Equal(t, 1, ExitCode(err))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("disk is full")
	err := Wrap(IOFailure, cause, "writing output")
	assert.ErrorIs(t, err, cause)

	kind, ok := KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, IOFailure, kind)
}

func TestWrapOfNilIsNil(t *testing.T) {
	assert.NoError(t, Wrap(IOFailure, nil, "no-op"))
}

func TestExitCodeOfNilIsZero(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
}
