package eventuals

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDoAll2_joinsBothValues(t *testing.T) {
	t.Parallel()

	v, err := Dereference("doall2", DoAll2(Just(1), Just("two")))
	assert.NoError(t, err)
	assert.Equal(t, Pair[int, string]{First: 1, Second: "two"}, v)
}

func TestDoAll2_failPropagates(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("b failed")
	_, err := Dereference("doall2-fail", DoAll2(Just(1), failingValue[string](wantErr)))
	assert.ErrorIs(t, err, wantErr)
}

func TestDoAll2_stopDominatesFail(t *testing.T) {
	t.Parallel()

	_, err := Dereference("doall2-stop", DoAll2(
		failingValue[int](errors.New("a failed")),
		stoppingValue[string](),
	))
	assert.ErrorIs(t, err, ErrStopped)
}
