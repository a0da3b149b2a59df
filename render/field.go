package render

import (
	"fyne.io/fyne/v2"

	"github.com/hamidzr/editfield"
)

// Field ties an editfield.Controller to fyne widgets: a label column, a
// FieldEntry, and the glue that turns widget events into controller events.
type Field struct {
	Controller *editfield.Controller
	Entry      *FieldEntry
	Container  *fyne.Container
}

// NewField builds a labeled commit-on-blur field. onCommit receives the draft
// once per edit session, on focus loss.
func NewField(label Label, initial string, onCommit editfield.CommitFunc) *Field {
	f := &Field{Entry: NewFieldEntry()}
	f.Controller = editfield.NewController(initial, onCommit).
		WithScheduler(driverScheduler{}).
		WithHost(f)

	f.Entry.OnChanged = func(text string) { f.Controller.DraftChanged(text) }
	f.Entry.OnFocusGained = func() { f.Controller.FocusChanged(true) }
	f.Entry.OnFocusLost = func() { f.Controller.FocusChanged(false) }
	f.Entry.OnKeyDown = func(key *fyne.KeyEvent) {
		if key.Name == fyne.KeyEscape {
			// an unconsumed cancel falls through to the entry's own handling
			f.Controller.Cancel()
		}
	}

	labelObject := label.canvasObject()
	tap := newTapArea(func() { f.SetFocused(true) })
	f.Container = NewFieldRow(stackWithTap(labelObject, tap), f.Entry)
	return f
}

// NewTextField is NewField with a plain-text label.
func NewTextField(labelText, initial string, onCommit editfield.CommitFunc) *Field {
	return NewField(LabelText(labelText), initial, onCommit)
}

// DiscardOnCancel forwards to the controller and returns the field for
// chaining.
func (f *Field) DiscardOnCancel(discard bool) *Field {
	f.Controller.DiscardOnCancel(discard)
	return f
}

// ClearFocusKeyOnDiscard forwards to the controller.
func (f *Field) ClearFocusKeyOnDiscard(clear bool) *Field {
	f.Controller.ClearFocusKeyOnDiscard(clear)
	return f
}

// LabelWidth overrides the label column width for this row.
func (f *Field) LabelWidth(width float32) *Field {
	if width > 0 {
		f.Container.Layout = NewRowLayout(width)
		f.Container.Refresh()
	}
	return f
}

// BindFocus attaches the field to a focus group binding. Group-driven focus
// changes move real keyboard focus to or away from the entry, so a parent can
// assign focus among sibling fields programmatically.
func (f *Field) BindFocus(binding *editfield.FocusBinding) *Field {
	binding.Observe(func(focused bool) {
		f.syncCanvasFocus(focused)
	})
	f.Controller.BindFocus(binding)
	return f
}

// SetText updates the authoritative value shown while idle.
func (f *Field) SetText(text string) {
	f.Controller.SetText(text)
}

// Text returns the authoritative value.
func (f *Field) Text() string {
	return f.Controller.Text()
}

// SetFocused drives keyboard focus to or away from the entry.
func (f *Field) SetFocused(focused bool) {
	f.syncCanvasFocus(focused)
	// headless hosts have no canvas; keep the controller in step regardless
	f.Controller.FocusChanged(focused)
}

// DisplayText implements editfield.Host.
func (f *Field) DisplayText(text string) {
	if f.Entry.Text != text {
		f.Entry.SetText(text)
	}
}

// DropFocus implements editfield.Host.
func (f *Field) DropFocus() {
	if canvas := f.canvas(); canvas != nil {
		if canvas.Focused() == f.Entry {
			canvas.Unfocus()
		}
	}
}

func (f *Field) syncCanvasFocus(focused bool) {
	canvas := f.canvas()
	if canvas == nil {
		return
	}
	if focused {
		canvas.Focus(f.Entry)
	} else if canvas.Focused() == f.Entry {
		canvas.Unfocus()
	}
}

func (f *Field) canvas() fyne.Canvas {
	app := fyne.CurrentApp()
	if app == nil || app.Driver() == nil {
		return nil
	}
	return app.Driver().CanvasForObject(f.Entry)
}

// driverScheduler defers work onto the fyne main loop when the driver exposes
// one, turning the controller's post-commit step into a next-tick task.
type driverScheduler struct{}

func (driverScheduler) Defer(fn func()) {
	app := fyne.CurrentApp()
	if app == nil {
		fn()
		return
	}
	if runner, ok := app.Driver().(interface{ RunOnMain(func()) }); ok {
		go runner.RunOnMain(fn)
		return
	}
	fn()
}
