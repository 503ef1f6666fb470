package freeze

import "github.com/go-drift/drift/pkg/core"

// Host is the part of a state a Gate drives. [core.StateBase] satisfies it.
type Host interface {
	SetState(fn func())
	OnDispose(cleanup func()) func()
}

// Gate withholds rebuilds of a single state while it sits in a frozen
// subtree. Gate is not thread-safe; use it from the UI thread only, like
// SetState.
type Gate struct {
	host     Host
	frozen   bool
	pending  bool
	disposed bool
	last     core.Widget

	renders  int
	skipped  int
	deferred int
}

// NewGate creates a gate for host. Prefer [UseGate] inside InitState.
func NewGate(host Host) *Gate {
	return &Gate{host: host}
}

// UseGate creates a gate that is disposed together with the state.
func UseGate(host Host) *Gate {
	g := NewGate(host)
	host.OnDispose(g.Dispose)
	return g
}

// SetState applies fn and requests a rebuild. While frozen fn still runs but
// the rebuild is recorded as pending; the pending rebuild happens when the
// enclosing Freeze is released. After disposal SetState does nothing.
func (g *Gate) SetState(fn func()) {
	if g.disposed {
		return
	}
	if !g.frozen {
		g.host.SetState(fn)
		return
	}
	if fn != nil {
		fn()
	}
	g.pending = true
	g.deferred++
}

// Build renders through the gate. When the subtree is frozen and a previous
// result exists, that result is returned unchanged and build is not called.
// The first build always runs so a subtree mounted while frozen still has
// something to show.
func (g *Gate) Build(ctx core.BuildContext, build func(ctx core.BuildContext) core.Widget) core.Widget {
	g.frozen = IsFrozen(ctx)
	if g.frozen && g.last != nil {
		g.skipped++
		return g.last
	}
	g.pending = false
	g.renders++
	g.last = build(ctx)
	return g.last
}

// Frozen reports whether the gate was frozen at its last build.
func (g *Gate) Frozen() bool {
	return g.frozen
}

// Pending reports whether state changed while frozen and has not been
// rendered yet.
func (g *Gate) Pending() bool {
	return g.pending
}

// Renders returns how many times the build function has run.
func (g *Gate) Renders() int {
	return g.renders
}

// Skipped returns how many builds were answered from the frozen output.
func (g *Gate) Skipped() int {
	return g.skipped
}

// Deferred returns how many SetState calls were withheld while frozen.
func (g *Gate) Deferred() int {
	return g.deferred
}

// Dispose releases the cached output. Later SetState calls are ignored.
func (g *Gate) Dispose() {
	g.disposed = true
	g.pending = false
	g.last = nil
}
