package screens

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/drift/pkg/layout"
	"github.com/go-drift/drift/pkg/theme"
	"github.com/go-drift/drift/pkg/widgets"

	"github.com/go-drift/freezedemo/internal/config"
	"github.com/go-drift/freezedemo/internal/interval"
	"github.com/go-drift/freezedemo/internal/workload"
	"github.com/go-drift/freezedemo/pkg/freeze"
)

// ExpensiveComponent counts up once per Interval and runs the synthetic
// workload on every render. It renders through a freeze gate, so an
// enclosing [freeze.Freeze] pins its output while the counter keeps running.
type ExpensiveComponent struct {
	// Interval is the counter period. Defaults to one second.
	Interval time.Duration
	// Iterations is the workload size per render. Zero means
	// workload.DefaultIterations; negative means no work.
	Iterations int

	// Test hooks, set from within the package.
	source     *rand.Rand
	onRender   func(counter int)
	onInterval func(*interval.Interval)
}

func (e ExpensiveComponent) CreateElement() core.Element {
	return core.NewStatefulElement(e, nil)
}

func (e ExpensiveComponent) Key() any {
	return nil
}

func (e ExpensiveComponent) CreateState() core.State {
	return &expensiveState{}
}

func (e ExpensiveComponent) period() time.Duration {
	if e.Interval <= 0 {
		return config.DefaultInterval
	}
	return e.Interval
}

func (e ExpensiveComponent) iterations() int {
	if e.Iterations == 0 {
		return workload.DefaultIterations
	}
	return e.Iterations
}

type expensiveState struct {
	core.StateBase
	gate     *freeze.Gate
	interval *interval.Interval
	counter  int
}

func (s *expensiveState) InitState() {
	w := s.Element().Widget().(ExpensiveComponent)
	s.gate = freeze.UseGate(s)
	// Disposers run in reverse order: the interval stops before the gate closes.
	s.interval = core.UseController(s, func() *interval.Interval {
		return interval.New(w.period(), s.tick)
	})
	s.interval.Start()
	if w.onInterval != nil {
		w.onInterval(s.interval)
	}
}

func (s *expensiveState) DidUpdateWidget(oldWidget core.StatefulWidget) {
	old, ok := oldWidget.(ExpensiveComponent)
	w := s.Element().Widget().(ExpensiveComponent)
	if ok && old.period() == w.period() {
		return
	}
	s.interval.Stop()
	s.interval.Period = w.period()
	s.interval.Start()
}

func (s *expensiveState) tick() {
	s.gate.SetState(func() {
		s.counter++
	})
}

func (s *expensiveState) Build(ctx core.BuildContext) core.Widget {
	return s.gate.Build(ctx, s.build)
}

func (s *expensiveState) build(ctx core.BuildContext) core.Widget {
	w := s.Element().Widget().(ExpensiveComponent)
	_, colors, _ := theme.UseTheme(ctx)

	value := workload.Sum(w.iterations(), w.source)
	if w.onRender != nil {
		w.onRender(s.counter)
	}

	return widgets.DecoratedBox{
		Color:        colors.SurfaceVariant,
		BorderRadius: 8,
		ChildWidget: widgets.Padding{
			Padding: layout.EdgeInsetsAll(15),
			ChildWidget: widgets.ColumnOf(
				widgets.MainAxisAlignmentStart,
				widgets.CrossAxisAlignmentStart,
				widgets.MainAxisSizeMin,
				widgets.Text{
					Content: CounterText(s.counter),
					Style: graphics.TextStyle{
						Color:    colors.OnSurface,
						FontSize: 18,
					},
				},
				widgets.VSpace(10),
				widgets.Text{
					Content: CalculationText(value),
					Style: graphics.TextStyle{
						Color:    colors.OnSurfaceVariant,
						FontSize: 14,
					},
				},
			),
		},
	}
}

// CounterText is the counter line shown by ExpensiveComponent.
func CounterText(counter int) string {
	return fmt.Sprintf("Counter: %d", counter)
}

// CalculationText is the workload line shown by ExpensiveComponent.
func CalculationText(value float64) string {
	return "Expensive calculation: " + workload.Format(value)
}
