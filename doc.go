// Package eventuals provides continuation-passing style asynchronous
// pipelines.
//
// An Eventual is a cold, lazily-started computation that, once driven,
// eventually produces exactly one of {value, error, stopped}. Eventuals
// compose left-to-right into pipelines; adapters add scheduling (Reschedule,
// Preempt), fan-out/fan-in (ForkJoin), and resource-safe finalization
// (Finally).
//
// # Core types
//
//   - [Eventual]: a deferred pipeline stage. K consumes a downstream
//     [Continuation] and produces this stage's own continuation.
//   - [Continuation]: the runtime object a built stage drives. Exposes
//     Start, Fail, Stop, and Register.
//   - [Terminal]/[Promisify]/[Dereference]: convert a pipeline's terminal
//     signal into an externally observable [Future], or block for it
//     directly.
//
// # Composition
//
//   - [Then]: sequence two eventuals left-to-right.
//   - [Just], [Closure], [Iterate], [Foreach], [Lazy], [Let], [Collect],
//     [Unpack2]: leaf and transform builders.
//   - [Finally]: map a reified [Result] ({value, error, stopped}) to a
//     single downstream value.
//
// # Scheduling
//
//   - [Context]/[Scheduler]: pin work to an execution resource.
//   - [Reschedule]: re-enter a target Context before forwarding a signal.
//   - [Preempt]: run an eventual under its own dedicated Context so it can
//     be interrupted as a unit.
//   - [StaticThreadPool]: fixed worker-per-CPU pool with CPU pinning.
//
// # Fan-out / fan-in
//
//   - [ForkJoin]: run N sub-eventuals concurrently over a shared upstream
//     value; stop dominates error, lowest-index error otherwise wins.
//   - [DoAll2]: join two heterogeneously-typed branches into a [Pair],
//     same precedence rule as ForkJoin.
//
// # Cancellation and synchronization
//
//   - [Interrupt]: one-shot cooperative cancellation token.
//   - [Notification]: one-shot multi-waiter latch.
//
// Signal uniqueness: at most one of {Start, Fail, Stop} ever fires per
// Continuation instance. Register must be called, if at all, before the
// first signal. Both are programming errors; a second terminal signal
// reaching a [Terminal] panics, while a Register call made after the first
// signal is not detected.
package eventuals
