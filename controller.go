// Package editfield implements a commit-on-blur text field controller.
//
// The controller owns a transient draft buffer that shadows a caller-owned
// authoritative value for the duration of an edit session. The session starts
// when the field gains focus, and ends either with a single commit callback on
// focus loss or with a silent discard on a cancel gesture. The package is host
// toolkit agnostic; the render package adapts it to fyne widgets.
package editfield

import (
	"github.com/sirupsen/logrus"
)

// State identifies where a controller is in its edit lifecycle.
type State int

const (
	// StateIdle shows the authoritative text; no draft exists.
	StateIdle State = iota
	// StateEditing shows the draft buffer.
	StateEditing
	// StateCommitting is the one-tick window after the commit callback fired
	// and before the display falls back to the authoritative text.
	StateCommitting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateEditing:
		return "editing"
	case StateCommitting:
		return "committing"
	default:
		return "unknown"
	}
}

// CommitFunc receives the draft value captured at the end of an edit session.
type CommitFunc func(value string)

// Host is the minimal surface the controller needs from whatever widget
// renders it.
type Host interface {
	// DisplayText replaces what the input widget shows.
	DisplayText(text string)
	// DropFocus forces keyboard focus away from the input widget.
	DropFocus()
}

type nopHost struct{}

func (nopHost) DisplayText(string) {}
func (nopHost) DropFocus()         {}

// Controller drives a single commit-on-blur field. It must only be used from
// the host UI loop; none of its state is guarded by locks.
type Controller struct {
	text  string
	draft string
	state State

	focused bool
	binding *FocusBinding

	discardOnCancel   bool
	clearKeyOnDiscard bool

	onCommit CommitFunc
	host     Host
	sched    Scheduler

	// session invalidates deferred follow-ups from superseded edit sessions.
	session uint64
}

// NewController returns a controller for the given authoritative value.
// onCommit may be nil for display-only usage.
func NewController(initial string, onCommit CommitFunc) *Controller {
	return &Controller{
		text:              initial,
		state:             StateIdle,
		discardOnCancel:   true,
		clearKeyOnDiscard: true,
		onCommit:          onCommit,
		host:              nopHost{},
		sched:             immediate{},
	}
}

// DiscardOnCancel governs whether the cancel gesture abandons the draft.
// Defaults to true.
func (c *Controller) DiscardOnCancel(discard bool) *Controller {
	c.discardOnCancel = discard
	return c
}

// ClearFocusKeyOnDiscard governs whether a discard also clears the attached
// focus group's current key. Defaults to true.
func (c *Controller) ClearFocusKeyOnDiscard(clear bool) *Controller {
	c.clearKeyOnDiscard = clear
	return c
}

// WithScheduler installs the deferred-task scheduler of the host loop.
func (c *Controller) WithScheduler(sched Scheduler) *Controller {
	if sched != nil {
		c.sched = sched
	}
	return c
}

// WithHost attaches the rendering host and pushes the current display to it.
func (c *Controller) WithHost(host Host) *Controller {
	if host != nil {
		c.host = host
		c.host.DisplayText(c.DisplayedText())
	}
	return c
}

// BindFocus attaches an external focus binding. The internal focus flag is
// initialized from the binding and tracks it from then on.
func (c *Controller) BindFocus(binding *FocusBinding) *Controller {
	c.binding = binding
	binding.Observe(func(focused bool) {
		c.applyFocus(focused)
	})
	c.applyFocus(binding.IsCurrent())
	return c
}

// FocusChanged reports a host-driven focus transition. Redundant reports are
// edge-filtered, so delivering the same value twice is harmless.
func (c *Controller) FocusChanged(focused bool) {
	c.applyFocus(focused)
}

func (c *Controller) applyFocus(focused bool) {
	if focused == c.focused {
		return
	}
	c.focused = focused
	if c.binding != nil {
		if focused {
			c.binding.Claim()
		} else {
			c.binding.Release()
		}
	}
	if focused {
		c.beginEdit()
	} else if c.state == StateEditing {
		c.commit()
	}
}

// beginEdit opens a fresh session. Re-focusing during the committing window
// supersedes the pending follow-up.
func (c *Controller) beginEdit() {
	c.session++
	c.draft = c.text
	c.state = StateEditing
	c.host.DisplayText(c.draft)
	logrus.Debug("editfield: session started, draft: ", c.draft)
}

func (c *Controller) commit() {
	value := c.draft
	c.state = StateCommitting
	c.session++
	seq := c.session
	logrus.Debug("editfield: committing draft: ", value)
	if c.onCommit != nil {
		c.onCommit(value)
	}
	// Keep showing the draft for one more tick so the caller's update has a
	// chance to land in text before the display falls back to it.
	c.sched.Defer(func() {
		if c.session != seq || c.state != StateCommitting {
			return
		}
		c.state = StateIdle
		c.draft = ""
		c.host.DisplayText(c.text)
	})
}

// DraftChanged mirrors the host input's current content into the draft buffer.
// Reports outside an active session are ignored.
func (c *Controller) DraftChanged(text string) {
	if c.state != StateEditing {
		return
	}
	c.draft = text
}

// Cancel handles the host's cancel gesture. It reports whether the gesture was
// consumed; false leaves the host's default key handling in charge.
func (c *Controller) Cancel() bool {
	if !c.discardOnCancel || c.state != StateEditing {
		return false
	}
	logrus.Debug("editfield: discarding draft: ", c.draft)
	c.session++
	c.state = StateIdle
	c.draft = ""
	if c.focused {
		c.focused = false
		if c.binding != nil && c.clearKeyOnDiscard {
			c.binding.Release()
		}
	}
	c.host.DisplayText(c.text)
	c.host.DropFocus()
	return true
}

// SetText updates the authoritative value. While a session is active the draft
// keeps the display; idle fields re-render immediately.
func (c *Controller) SetText(text string) {
	c.text = text
	if c.state == StateIdle {
		c.host.DisplayText(text)
	}
}

// Text returns the authoritative value.
func (c *Controller) Text() string { return c.text }

// Draft returns the in-progress edit. Only meaningful while IsEditing.
func (c *Controller) Draft() string { return c.draft }

// State returns the current lifecycle state.
func (c *Controller) State() State { return c.state }

// IsEditing reports whether the draft is authoritative for display. It stays
// true through the committing window and clears one tick after the commit.
func (c *Controller) IsEditing() bool { return c.state != StateIdle }

// Focused reports the internal focus flag.
func (c *Controller) Focused() bool { return c.focused }

// DisplayedText returns what the host should currently show.
func (c *Controller) DisplayedText() string {
	if c.state == StateIdle {
		return c.text
	}
	return c.draft
}
