package eventuals

// Reschedule returns a transparent stage that forwards every signal it
// receives through ctx.ContinueWith, so the downstream continuation always
// resumes with ctx current — the Go shape of the original's Reschedule(),
// used to hop a pipeline back onto a particular Context after a boundary.
// It is transparent: values, errors, and stops all pass through unchanged,
// only the execution context changes.
func Reschedule[V any](ctx *Context) Eventual[V, V] {
	return func(k Continuation[V]) Continuation[V] {
		return &rescheduleContinuation[V]{ctx: ctx, k: k}
	}
}

type rescheduleContinuation[V any] struct {
	ctx *Context
	k   Continuation[V]
}

func (r *rescheduleContinuation[V]) Start(v V) {
	r.ctx.ContinueWith(r.ctx.Name()+":start", func() { r.k.Start(v) })
}

func (r *rescheduleContinuation[V]) Fail(err error) {
	r.ctx.ContinueWith(r.ctx.Name()+":fail", func() { r.k.Fail(err) })
}

func (r *rescheduleContinuation[V]) Stop() {
	r.ctx.ContinueWith(r.ctx.Name()+":stop", func() { r.k.Stop() })
}

func (r *rescheduleContinuation[V]) Register(in *Interrupt) {
	r.k.Register(in)
}
