package eventuals

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuntimeError_messageSurfacesAsError(t *testing.T) {
	t.Parallel()

	err := NewRuntimeError("bad input")
	assert.EqualError(t, err, "bad input")
}

func TestWrapError_preservesCauseForErrorsIs(t *testing.T) {
	t.Parallel()

	wrapped := WrapError("reading config", ErrStopped)
	assert.True(t, IsStopped(wrapped))
	assert.Contains(t, wrapped.Error(), "reading config")
}

func TestIsStopped_falseForUnrelatedError(t *testing.T) {
	t.Parallel()

	assert.False(t, IsStopped(NewRuntimeError("unrelated")))
}
