// Package freeze pins the output of gated states in a widget subtree while
// keeping the subtree mounted.
//
// Freezing is opt-in per state. A state that renders through a [Gate]
// returns the widget tree it built last while frozen, and state changes made
// through the gate are applied but not shown until the subtree is unfrozen.
// On unfreeze every gated state rebuilds once with all accumulated changes.
// States that call SetState directly, without a gate, keep rebuilding as
// usual inside a frozen subtree. Elements, states and running controllers
// (timers, subscriptions) stay alive either way.
//
// Wrap the subtree with [Freeze]:
//
//	freeze.Freeze{
//	    Frozen:      s.frozen.Value(),
//	    ChildWidget: ExpensiveComponent{},
//	}
//
// and render the stateful descendants through a gate:
//
//	func (s *expensiveState) InitState() {
//	    s.gate = freeze.UseGate(s)
//	}
//
//	func (s *expensiveState) tick() {
//	    s.gate.SetState(func() { s.counter++ })
//	}
//
//	func (s *expensiveState) Build(ctx core.BuildContext) core.Widget {
//	    return s.gate.Build(ctx, s.build)
//	}
//
// Freezes nest: a subtree is frozen when its nearest Freeze or any Freeze
// above it is frozen.
package freeze

import (
	"reflect"

	"github.com/go-drift/drift/pkg/core"
)

// Freeze publishes a frozen flag to its subtree.
type Freeze struct {
	// Frozen suspends rebuilds of gated descendants when true.
	Frozen bool
	// ChildWidget is the subtree to freeze.
	ChildWidget core.Widget
}

func (f Freeze) CreateElement() core.Element {
	return core.NewStatelessElement(f, nil)
}

func (f Freeze) Key() any {
	return nil
}

// Build combines this widget's flag with any enclosing freeze.
func (f Freeze) Build(ctx core.BuildContext) core.Widget {
	return scope{
		frozen:      f.Frozen || IsFrozen(ctx),
		childWidget: f.ChildWidget,
	}
}

// scope carries the effective frozen flag to dependents.
type scope struct {
	frozen      bool
	childWidget core.Widget
}

func (s scope) CreateElement() core.Element {
	return core.NewInheritedElement(s, nil)
}

func (s scope) Key() any {
	return nil
}

func (s scope) ChildWidget() core.Widget {
	return s.childWidget
}

func (s scope) UpdateShouldNotify(oldWidget core.InheritedWidget) bool {
	old, ok := oldWidget.(scope)
	if !ok {
		return true
	}
	return old.frozen != s.frozen
}

func (s scope) UpdateShouldNotifyDependent(oldWidget core.InheritedWidget, aspects map[any]struct{}) bool {
	return s.UpdateShouldNotify(oldWidget)
}

var scopeType = reflect.TypeOf(scope{})

// IsFrozen reports whether ctx is inside a frozen subtree. The caller is
// registered as a dependent and rebuilds when the flag changes.
func IsFrozen(ctx core.BuildContext) bool {
	inherited := ctx.DependOnInherited(scopeType, nil)
	if inherited == nil {
		return false
	}
	if s, ok := inherited.(scope); ok {
		return s.frozen
	}
	return false
}
