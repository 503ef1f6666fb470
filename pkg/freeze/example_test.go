package freeze_test

import (
	"github.com/go-drift/drift/pkg/widgets"

	"github.com/go-drift/freezedemo/pkg/freeze"
)

// This example shows how to pin the output of a subtree while keeping it mounted.
func ExampleFreeze() {
	frozen := true
	widget := freeze.Freeze{
		Frozen:      frozen,
		ChildWidget: widgets.Text{Content: "pinned while frozen"},
	}
	_ = widget
}
