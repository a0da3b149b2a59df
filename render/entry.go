package render

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// FieldEntry is a widget.Entry that reports focus transitions and lets a
// caller observe key events before the entry's own handling.
type FieldEntry struct {
	widget.Entry
	OnKeyDown     func(key *fyne.KeyEvent)
	OnFocusGained func()
	OnFocusLost   func()
	// PropagationBlacklist lists keys that OnKeyDown consumes entirely.
	PropagationBlacklist map[fyne.KeyName]bool
}

// NewFieldEntry returns a single-line field entry.
func NewFieldEntry() *FieldEntry {
	e := &FieldEntry{}
	e.ExtendBaseWidget(e)
	return e
}

// FocusGained implements fyne.Focusable.
func (e *FieldEntry) FocusGained() {
	e.Entry.FocusGained()
	if e.OnFocusGained != nil {
		e.OnFocusGained()
	}
}

// FocusLost implements fyne.Focusable.
func (e *FieldEntry) FocusLost() {
	e.Entry.FocusLost()
	if e.OnFocusLost != nil {
		e.OnFocusLost()
	}
}

// AcceptsTab implements fyne.Tabbable. Tab moves focus to the next field
// instead of inserting a tab character.
func (e *FieldEntry) AcceptsTab() bool {
	return false
}

// TypedKey routes key events through OnKeyDown before the entry sees them.
func (e *FieldEntry) TypedKey(key *fyne.KeyEvent) {
	if e.OnKeyDown != nil {
		e.OnKeyDown(key)
	}
	if e.PropagationBlacklist != nil && e.PropagationBlacklist[key.Name] {
		return
	}
	e.Entry.TypedKey(key)
}
