package session

import "go.uber.org/atomic"

// Gate is a single-assignment outcome. The zero value is unresolved.
type Gate struct {
	done    atomic.Bool
	success atomic.Bool
}

// Resolve stores success if the gate is still open and reports whether it
// did. Later calls never change the stored value.
func (g *Gate) Resolve(success bool) bool {
	if !g.done.CompareAndSwap(false, true) {
		return false
	}
	g.success.Store(success)
	return true
}

// Value returns the stored outcome and whether one was stored.
func (g *Gate) Value() (success, ok bool) {
	if !g.done.Load() {
		return false, false
	}
	return g.success.Load(), true
}
