package eventuals

// Then composes two Eventuals left-to-right: the result of e becomes the
// upstream argument of next. Composition is exactly L.K(R.K(final)) — the
// same shape as kont.Bind's func(k){ return m(func(a){
// return f(a)(k) }) }, specialized to a non-dependent right-hand side
// (next does not need e's runtime value to be *built*, only to *run*).
//
// Type unification is enforced by the Go compiler: next must be an
// Eventual[V, W] where V is exactly e's output type, so a pipeline that
// cannot compose fails to compile rather than failing at runtime (the Go
// realization of "fails to build if the downstream cannot accept what
// upstream produces").
func Then[Arg, V, W any](e Eventual[Arg, V], next Eventual[V, W]) Eventual[Arg, W] {
	return func(k Continuation[W]) Continuation[Arg] {
		return e.K(next.K(k))
	}
}

// Then3 composes three Eventuals left-to-right. Provided because Go's type
// inference cannot chain a variadic heterogeneous pipeline the way a
// left-fold over an infix operator can in languages with operator
// overloading (the original's `operator|`); composing by pairs of Then
// calls is the idiomatic Go substitute.
func Then3[Arg, V, W, X any](e Eventual[Arg, V], f Eventual[V, W], g Eventual[W, X]) Eventual[Arg, X] {
	return Then(Then(e, f), g)
}

// Then4 composes four Eventuals left-to-right.
func Then4[Arg, V, W, X, Y any](e Eventual[Arg, V], f Eventual[V, W], g Eventual[W, X], h Eventual[X, Y]) Eventual[Arg, Y] {
	return Then(Then3(e, f, g), h)
}
