package cogent

import (
	"cogentcore.org/core/core"

	"github.com/hamidzr/editfield"
)

// RunExample launches a minimal Cogent Core window around an editfield
// controller, as a sketch of hosting the same state machine in a second
// toolkit. The fyne adapter in the render package is the supported one.
func RunExample() {
	committed := editfield.NewController("Hello", nil)

	body := core.NewBody("editfield")
	body.SetTitle("editfield")

	root := core.NewFrame(body)
	core.NewText(root).SetText("Last committed: " + committed.Text())
	// tf := core.NewTextField(root)
	// tf.SetText(committed.Text())
	// wire tf's focus events into committed.FocusChanged once the cogent
	// adapter grows beyond a sketch

	body.RunMainWindow()
}
