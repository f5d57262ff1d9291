package eventuals

// Continuation is the runtime object produced by an Eventual's K method.
// It is the generalized form of kont's func(A) R: instead of a plain
// function returning a single result, a Continuation exposes the four
// signal entrypoints every composable stage must drive downstream.
//
// At most one of Start, Fail, or Stop ever fires on a given instance
// ("terminal signal uniqueness"). Register, if called at all, must be
// called before the first signal.
type Continuation[V any] interface {
	// Start delivers the upstream value.
	Start(v V)
	// Fail delivers a typed error.
	Fail(err error)
	// Stop delivers cancellation.
	Stop()
	// Register attaches an interrupt for cooperative cancellation.
	// Only meaningful before the first Start/Fail/Stop.
	Register(i *Interrupt)
}

// Expects describes whether a stage consumes a single upstream value or
// none (the unit case, V = struct{}).
type Expects int

const (
	// ExpectsValue means the stage's K expects an upstream Start(v).
	ExpectsValue Expects = iota
	// ExpectsNone means the stage's K expects an upstream Start() with no
	// payload (modeled in Go as V = struct{}).
	ExpectsNone
)

// Unit is the zero-information value used where the C++ original used
// void, e.g. for leaf eventuals with no upstream argument.
type Unit = struct{}
