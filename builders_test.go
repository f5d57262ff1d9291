package eventuals

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJust_startsWithValue(t *testing.T) {
	t.Parallel()

	v, err := Dereference("just", Just(42))
	assert.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestLazy_deferEvaluationUntilStart(t *testing.T) {
	t.Parallel()

	called := false
	e := Lazy(func() int {
		called = true
		return 5
	})
	assert.False(t, called)

	v, err := Dereference("lazy", e)
	assert.NoError(t, err)
	assert.Equal(t, 5, v)
	assert.True(t, called)
}

func TestClosure_freshStatePerBuild(t *testing.T) {
	t.Parallel()

	e := Closure(func() Eventual[Unit, []int] {
		v := []int{}
		return Then(
			Foreach([]int{0, 1, 2, 3, 4}, func(i int) { v = append(v, i) }),
			Lazy(func() []int { return v }),
		)
	})

	v, err := Dereference("closure", e)
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, v)

	// A second run rebuilds the child, so the accumulator starts empty again.
	v, err = Dereference("closure-again", e)
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, v)
}

func TestForeach_overRange(t *testing.T) {
	t.Parallel()

	var collected []int
	v, err := Dereference("foreach", Then(
		Foreach([]int{0, 1, 2, 3, 4}, func(i int) { collected = append(collected, i) }),
		Lazy(func() int { return len(collected) }),
	))
	assert.NoError(t, err)
	assert.Equal(t, 5, v)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, collected)
}

func TestIterateAndCollect_leaveSourceUnchanged(t *testing.T) {
	t.Parallel()

	source := []string{"Hello", "World"}

	v, err := Dereference("iterate", Iterate(source))
	assert.NoError(t, err)
	assert.Equal(t, source, v)

	v[0] = "mutated"
	assert.Equal(t, "Hello", source[0])

	c, err := Dereference("collect", Collect(source))
	assert.NoError(t, err)
	assert.Equal(t, source, c)
}

func TestUnpack2_destructuresPair(t *testing.T) {
	t.Parallel()

	v, err := Dereference("unpack2", Then(
		Just(Pair[int, string]{First: 4, Second: "2"}),
		Unpack2(func(i int, s string) string { return strconv.Itoa(i) + s }),
	))
	assert.NoError(t, err)
	assert.Equal(t, "42", v)
}

func TestLet_bindsUpstreamValueForward(t *testing.T) {
	t.Parallel()

	v, err := Dereference("let", Then(
		Just(10),
		Let(func(n int) Eventual[int, int] {
			return Eventual[int, int](func(k Continuation[int]) Continuation[int] {
				return &addContinuation{k: k, n: n}
			})
		}),
	))
	assert.NoError(t, err)
	assert.Equal(t, 20, v)
}

func TestHead_isIdentity(t *testing.T) {
	t.Parallel()

	v, err := Dereference("head", Then(Just(3), Head[int]()))
	assert.NoError(t, err)
	assert.Equal(t, 3, v)
}
