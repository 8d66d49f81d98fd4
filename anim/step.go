// Package anim is a property animation engine. It animates the
// position, size, opacity and colour of externally-owned targets over
// time, shaped by easing curves, and composes individual animations
// into larger choreographies with Parallel and Sequence.
//
// Every animation is a Step: a resumable unit of work advanced by
// delta-time increments. Steps can be driven manually, one Advance per
// frame, or handed to a Driver that loops until completion. All
// execution is single-threaded and cooperative; "parallel" means
// interleaved progress across ticks, not concurrent execution.
package anim

// A Step is a resumable unit of animation work. Advance moves the
// animation forward by dt seconds and reports whether it has completed.
// Advancing a completed step is a no-op that keeps reporting true, so
// composites can poll children without extra bookkeeping.
type Step interface {
	Advance(dt float64) bool
}
