// Package screens holds the freeze demo screen.
//
// [FreezeTest] owns two flags, frozen and visible, and renders the controls
// that flip them. When visible it mounts an [ExpensiveComponent] inside a
// [freeze.Freeze]; hiding unmounts the component and discards its counter,
// freezing keeps it mounted and only pins its output.
package screens

import (
	"log"
	"math/rand/v2"
	"time"

	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/errors"
	"github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/drift/pkg/layout"
	"github.com/go-drift/drift/pkg/theme"
	"github.com/go-drift/drift/pkg/widgets"

	"github.com/go-drift/freezedemo/internal/interval"
	"github.com/go-drift/freezedemo/pkg/freeze"
)

const (
	// StatusFrozen is the status label while the component is frozen.
	StatusFrozen = "FROZEN"
	// StatusActive is the status label while the component renders normally.
	StatusActive = "ACTIVE"

	// Explanation is the static text at the bottom of the screen.
	Explanation = "When frozen, the component's render tree is preserved but not re-rendered. " +
		"This can significantly improve performance for offscreen or inactive components."
)

// StatusLabel maps the frozen flag to its status label.
func StatusLabel(frozen bool) string {
	if frozen {
		return StatusFrozen
	}
	return StatusActive
}

// StatusText is the full status line shown above the component.
func StatusText(frozen bool) string {
	return "Component status: " + StatusLabel(frozen)
}

// FreezeButtonLabel is the label of the freeze toggle.
func FreezeButtonLabel(frozen bool) string {
	if frozen {
		return "Unfreeze Component"
	}
	return "Freeze Component"
}

// VisibilityButtonLabel is the label of the hide/show toggle.
func VisibilityButtonLabel(visible bool) string {
	if visible {
		return "Hide Component"
	}
	return "Show Component"
}

// FreezeTest is the demo screen.
type FreezeTest struct {
	// Title is shown above the controls.
	Title string
	// Interval and Iterations configure the expensive component.
	Interval   time.Duration
	Iterations int

	// Forwarded to the expensive component.
	source     *rand.Rand
	onRender   func(counter int)
	onInterval func(*interval.Interval)
}

func (f FreezeTest) CreateElement() core.Element {
	return core.NewStatefulElement(f, nil)
}

func (f FreezeTest) Key() any {
	return nil
}

func (f FreezeTest) CreateState() core.State {
	return &freezeTestState{}
}

type freezeTestState struct {
	core.StateBase
	frozen  *core.Managed[bool]
	visible *core.Managed[bool]
}

func (s *freezeTestState) InitState() {
	s.frozen = core.NewManaged(s, false)
	s.visible = core.NewManaged(s, true)
}

// toggleFrozen flips the frozen flag. While hidden this only records the
// flag; the component is mounted frozen on the next show.
func (s *freezeTestState) toggleFrozen() {
	s.frozen.Update(func(v bool) bool { return !v })
	log.Printf("freeze test: status=%s visible=%t", StatusLabel(s.frozen.Value()), s.visible.Value())
}

func (s *freezeTestState) toggleVisible() {
	s.visible.Update(func(v bool) bool { return !v })
	log.Printf("freeze test: visible=%t status=%s", s.visible.Value(), StatusLabel(s.frozen.Value()))
}

func (s *freezeTestState) Build(ctx core.BuildContext) core.Widget {
	w := ctx.Widget().(FreezeTest)
	_, colors, _ := theme.UseTheme(ctx)
	frozen, visible := s.frozen.Value(), s.visible.Value()

	card := []core.Widget{
		widgets.Text{
			Content: StatusText(frozen),
			Style: graphics.TextStyle{
				Color:      colors.OnSurface,
				FontSize:   16,
				FontWeight: graphics.FontWeightBold,
			},
		},
	}
	if visible {
		card = append(card,
			widgets.VSpace(10),
			widgets.ErrorBoundary{
				OnError: func(err *errors.BuildError) {
					log.Printf("freeze test: component build failed: %v", err)
				},
				FallbackBuilder: func(err *errors.BuildError) core.Widget {
					return widgets.Text{
						Content: "Component failed to render",
						Style:   graphics.TextStyle{Color: colors.Error, FontSize: 14},
					}
				},
				ChildWidget: freeze.Freeze{
					Frozen: frozen,
					ChildWidget: ExpensiveComponent{
						Interval:   w.Interval,
						Iterations: w.Iterations,
						source:     w.source,
						onRender:   w.onRender,
						onInterval: w.onInterval,
					},
				},
			},
		)
	}

	return widgets.Container{
		Color:   colors.Background,
		Padding: layout.EdgeInsetsAll(20),
		ChildWidget: widgets.ColumnOf(
			widgets.MainAxisAlignmentStart,
			widgets.CrossAxisAlignmentStretch,
			widgets.MainAxisSizeMax,
			widgets.Text{
				Content: w.Title,
				Style: graphics.TextStyle{
					Color:      colors.OnBackground,
					FontSize:   24,
					FontWeight: graphics.FontWeightBold,
				},
			},
			widgets.VSpace(20),
			widgets.RowOf(
				widgets.MainAxisAlignmentSpaceAround,
				widgets.CrossAxisAlignmentCenter,
				widgets.MainAxisSizeMax,
				theme.ButtonOf(ctx, FreezeButtonLabel(frozen), s.toggleFrozen),
				theme.ButtonOf(ctx, VisibilityButtonLabel(visible), s.toggleVisible),
			),
			widgets.VSpace(20),
			widgets.DecoratedBox{
				Color:        colors.Surface,
				BorderRadius: 10,
				ChildWidget: widgets.Padding{
					Padding: layout.EdgeInsetsAll(15),
					ChildWidget: widgets.ColumnOf(
						widgets.MainAxisAlignmentStart,
						widgets.CrossAxisAlignmentStretch,
						widgets.MainAxisSizeMin,
						card...,
					),
				},
			},
			widgets.VSpace(20),
			widgets.Text{
				Content: Explanation,
				Wrap:    true,
				Style: graphics.TextStyle{
					Color:     colors.OnSurfaceVariant,
					FontSize:  14,
					FontStyle: graphics.FontStyleItalic,
				},
			},
		),
	}
}
