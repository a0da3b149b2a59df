package editfield

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingHost captures everything the controller asks of its widget.
type recordingHost struct {
	displayed []string
	dropped   int
}

func (h *recordingHost) DisplayText(text string) { h.displayed = append(h.displayed, text) }
func (h *recordingHost) DropFocus()              { h.dropped++ }

func (h *recordingHost) lastDisplayed() string {
	if len(h.displayed) == 0 {
		return ""
	}
	return h.displayed[len(h.displayed)-1]
}

func TestCommitDeliversEditedDraftOnce(t *testing.T) {
	var commits []string
	host := &recordingHost{}
	c := NewController("Hello", func(v string) { commits = append(commits, v) }).
		WithHost(host)

	c.FocusChanged(true)
	require.Equal(t, StateEditing, c.State())
	assert.Equal(t, "Hello", c.Draft(), "draft mirrors the authoritative value at session start")

	c.DraftChanged("Hello, world")
	c.FocusChanged(false)

	require.Equal(t, []string{"Hello, world"}, commits)
	assert.Equal(t, "Hello", c.Text(), "commit must not touch the caller-owned value")
}

func TestFocusLossWithoutEditingDoesNotCommit(t *testing.T) {
	commits := 0
	c := NewController("x", func(string) { commits++ })

	// redundant focus-loss reports while already idle
	c.FocusChanged(false)
	c.FocusChanged(false)
	assert.Zero(t, commits)
}

func TestRedundantFocusReportsAreEdgeFiltered(t *testing.T) {
	commits := 0
	c := NewController("x", func(string) { commits++ })

	c.FocusChanged(true)
	c.FocusChanged(true)
	c.DraftChanged("y")
	c.FocusChanged(false)
	c.FocusChanged(false)

	assert.Equal(t, 1, commits)
}

func TestRapidTogglesCommitTheDraftCapturedAtEachEdge(t *testing.T) {
	var commits []string
	sched := &Queue{}
	c := NewController("a", func(v string) { commits = append(commits, v) }).
		WithScheduler(sched)

	c.FocusChanged(true)
	c.DraftChanged("first")
	c.FocusChanged(false)

	// refocus before the committing window was drained
	c.FocusChanged(true)
	c.DraftChanged("second")
	c.FocusChanged(false)
	sched.Drain()

	assert.Equal(t, []string{"first", "second"}, commits)
	assert.Equal(t, StateIdle, c.State())
}

func TestDraftChangedAfterCommitEdgeIsIgnored(t *testing.T) {
	var committed string
	sched := &Queue{}
	c := NewController("a", func(v string) { committed = v }).WithScheduler(sched)

	c.FocusChanged(true)
	c.DraftChanged("edited")
	c.FocusChanged(false)
	c.DraftChanged("late")
	sched.Drain()

	assert.Equal(t, "edited", committed)
}

func TestCommittingWindowKeepsDraftForOneTick(t *testing.T) {
	host := &recordingHost{}
	sched := &Queue{}
	c := NewController("old", nil).WithScheduler(sched).WithHost(host)

	c.FocusChanged(true)
	c.DraftChanged("new")
	c.FocusChanged(false)

	// the stale authoritative value must not flash before the caller's
	// update has had a tick to propagate
	assert.Equal(t, StateCommitting, c.State())
	assert.True(t, c.IsEditing())
	assert.Equal(t, "new", c.DisplayedText())

	c.SetText("new")
	sched.Drain()

	assert.Equal(t, StateIdle, c.State())
	assert.Equal(t, "new", c.DisplayedText())
	assert.Equal(t, "new", host.lastDisplayed())
}

func TestIdleDisplayReflectsWhateverCallerSetsAfterCommit(t *testing.T) {
	host := &recordingHost{}
	sched := &Queue{}
	var c *Controller
	c = NewController("Hello", func(v string) {
		// caller echoes the committed value back down, as a parent would
		c.SetText(v)
	}).WithScheduler(sched).WithHost(host)

	c.FocusChanged(true)
	c.DraftChanged("Hello, world")
	c.FocusChanged(false)
	sched.Drain()

	assert.Equal(t, "Hello, world", c.Text())
	assert.Equal(t, "Hello, world", host.lastDisplayed())
}

func TestRefocusDuringCommittingWindowStartsFreshSession(t *testing.T) {
	sched := &Queue{}
	c := NewController("base", nil).WithScheduler(sched)

	c.FocusChanged(true)
	c.DraftChanged("one")
	c.FocusChanged(false)
	c.FocusChanged(true)
	require.Equal(t, StateEditing, c.State())
	assert.Equal(t, "base", c.Draft())

	// the stale deferred step from the first session must not end the second
	sched.Drain()
	assert.Equal(t, StateEditing, c.State())
}

func TestCancelDiscardsDraftWithoutCallback(t *testing.T) {
	commits := 0
	host := &recordingHost{}
	c := NewController("original", func(string) { commits++ }).WithHost(host)

	c.FocusChanged(true)
	c.DraftChanged("X")
	require.True(t, c.Cancel())

	assert.Zero(t, commits)
	assert.False(t, c.Focused())
	assert.False(t, c.IsEditing())
	assert.Equal(t, "original", c.DisplayedText())
	assert.Equal(t, 1, host.dropped, "cancel must force host focus away")

	// the host blur event that follows the forced drop must stay a no-op
	c.FocusChanged(false)
	assert.Zero(t, commits)
}

func TestCancelPassesThroughWhenDiscardDisabled(t *testing.T) {
	commits := 0
	host := &recordingHost{}
	c := NewController("original", func(string) { commits++ }).
		WithHost(host).
		DiscardOnCancel(false)

	c.FocusChanged(true)
	c.DraftChanged("X")
	assert.False(t, c.Cancel())

	assert.True(t, c.Focused())
	assert.True(t, c.IsEditing())
	assert.Zero(t, host.dropped)

	// normal focus-loss handling still commits afterwards
	c.FocusChanged(false)
	assert.Equal(t, 1, commits)
}

func TestCancelWhileIdleIsNotConsumed(t *testing.T) {
	c := NewController("x", nil)
	assert.False(t, c.Cancel())
}

func TestSetTextWhileEditingDoesNotClobberDraft(t *testing.T) {
	host := &recordingHost{}
	c := NewController("a", nil).WithHost(host)

	c.FocusChanged(true)
	c.DraftChanged("typing")
	c.SetText("b")

	assert.Equal(t, "typing", c.DisplayedText())
	assert.Equal(t, "b", c.Text())

	// once idle again the display follows the authoritative value
	require.True(t, c.Cancel())
	assert.Equal(t, "b", c.DisplayedText())
}

func TestStateStrings(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "editing", StateEditing.String())
	assert.Equal(t, "committing", StateCommitting.String())
	assert.Equal(t, "unknown", State(42).String())
}
