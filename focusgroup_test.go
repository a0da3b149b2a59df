package editfield

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindingClaimSetsGroupCurrent(t *testing.T) {
	group := NewFocusGroup[string]()
	binding := group.Bind("row-1")

	binding.Claim()
	current, ok := group.Current()
	require.True(t, ok)
	assert.Equal(t, "row-1", current)
	assert.True(t, binding.IsCurrent())
}

func TestReleaseClearsUnconditionally(t *testing.T) {
	group := NewFocusGroup[string]()
	a := group.Bind("a")
	b := group.Bind("b")

	a.Claim()
	b.Claim()
	// a releasing late still clears the group; the host focus system is what
	// keeps this from happening mid-interaction
	a.Release()

	_, ok := group.Current()
	assert.False(t, ok)
	assert.False(t, b.IsCurrent())
}

func TestExternalAssignmentRecomputesSiblingFlags(t *testing.T) {
	group := NewFocusGroup[int]()
	a := NewController("a", nil).BindFocus(group.Bind(1))
	b := NewController("b", nil).BindFocus(group.Bind(2))

	group.Focus(1)
	assert.True(t, a.Focused())
	assert.False(t, b.Focused())

	group.Focus(2)
	assert.False(t, a.Focused())
	assert.True(t, b.Focused())

	group.Clear()
	assert.False(t, a.Focused())
	assert.False(t, b.Focused())
}

// exactly one sibling may hold focus at every observed point of a sequential
// reassignment sequence.
func TestExclusivityAcrossSequentialReassignment(t *testing.T) {
	group := NewFocusGroup[string]()
	one := NewController("one", nil).BindFocus(group.Bind("one"))
	two := NewController("two", nil).BindFocus(group.Bind("two"))

	atMostOneFocused := func() bool {
		return !(one.Focused() && two.Focused())
	}

	steps := []func(){
		func() { group.Focus("one") },
		func() { group.Focus("two") },
		func() { group.Focus("one") },
		func() { two.FocusChanged(true) },
		func() { one.FocusChanged(true) },
		func() { one.FocusChanged(false) },
	}
	for i, step := range steps {
		step()
		require.True(t, atMostOneFocused(), "exclusivity violated after step %d", i)
	}
}

func TestInternalFocusLossClearsGroupKey(t *testing.T) {
	group := NewFocusGroup[string]()
	c := NewController("v", nil).BindFocus(group.Bind("k"))

	c.FocusChanged(true)
	_, ok := group.Current()
	require.True(t, ok)

	c.FocusChanged(false)
	_, ok = group.Current()
	assert.False(t, ok, "internal focus loss clears the key to none, not to a sibling")
}

func TestAttachInitializesFromCurrentKey(t *testing.T) {
	group := NewFocusGroup[string]()
	group.Bind("other")
	group.Focus("other")

	preFocused := group.Bind("pre")
	group.Focus("pre")

	c := NewController("v", nil).BindFocus(preFocused)
	assert.True(t, c.Focused())
	assert.Equal(t, StateEditing, c.State(), "attach with the current key starts a session")

	detached := NewController("w", nil).BindFocus(group.Bind("elsewhere"))
	assert.False(t, detached.Focused())
}

func TestGroupDrivenBlurCommitsTheActiveDraft(t *testing.T) {
	var commits []string
	group := NewFocusGroup[string]()
	a := NewController("alpha", func(v string) { commits = append(commits, v) }).
		BindFocus(group.Bind("a"))
	NewController("beta", nil).BindFocus(group.Bind("b"))

	a.FocusChanged(true)
	a.DraftChanged("alpha edited")

	// a parent programmatically moving focus to the sibling ends a's session
	group.Focus("b")

	assert.Equal(t, []string{"alpha edited"}, commits)
	assert.False(t, a.Focused())
	current, ok := group.Current()
	require.True(t, ok)
	assert.Equal(t, "b", current, "a's commit must not clear the sibling's claim")
}

func TestDiscardClearsGroupKeyByDefault(t *testing.T) {
	group := NewFocusGroup[string]()
	c := NewController("v", nil).BindFocus(group.Bind("k"))

	c.FocusChanged(true)
	c.DraftChanged("draft")
	require.True(t, c.Cancel())

	_, ok := group.Current()
	assert.False(t, ok)
}

// The alternative convention: a discard drops focus locally but leaves the
// group key in place. Exclusivity still holds because the discarding sibling
// no longer reports focus.
func TestDiscardKeepsGroupKeyWhenConfigured(t *testing.T) {
	group := NewFocusGroup[string]()
	a := NewController("v", nil).
		ClearFocusKeyOnDiscard(false).
		BindFocus(group.Bind("a"))
	b := NewController("w", nil).BindFocus(group.Bind("b"))

	a.FocusChanged(true)
	a.DraftChanged("draft")
	require.True(t, a.Cancel())

	current, ok := group.Current()
	require.True(t, ok)
	assert.Equal(t, "a", current)
	assert.False(t, a.Focused())

	// a later assignment converges the group and both siblings again
	group.Focus("b")
	assert.True(t, b.Focused())
	assert.False(t, a.Focused())
}

func TestFocusSameKeyTwiceNotifiesOnce(t *testing.T) {
	group := NewFocusGroup[string]()
	notifications := 0
	binding := group.Bind("k")
	binding.Observe(func(bool) { notifications++ })

	group.Focus("k")
	group.Focus("k")
	assert.Equal(t, 1, notifications)
}
