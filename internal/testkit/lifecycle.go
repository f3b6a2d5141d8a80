// Package testkit provides instrumented value types for lifecycle tests.
package testkit

// Tracker counts lifecycle events of the Res values it issues. Tests assert
// exact teardown and clone counts against it.
type Tracker struct {
	drops  int
	clones int
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Drops returns the number of Drop invocations observed so far.
func (t *Tracker) Drops() int { return t.drops }

// Clones returns the number of Clone invocations observed so far.
func (t *Tracker) Clones() int { return t.clones }

// Res is an instrumented value. Every Drop and Clone is recorded on the
// issuing tracker.
type Res struct {
	N int

	tr *Tracker
}

// New issues a fresh Res carrying n.
func (t *Tracker) New(n int) Res {
	return Res{N: n, tr: t}
}

// Clone records the event and returns an independent copy.
func (r Res) Clone() Res {
	r.tr.clones++
	return Res{N: r.N, tr: r.tr}
}

// Drop records one teardown of this value.
func (r Res) Drop() {
	r.tr.drops++
}
