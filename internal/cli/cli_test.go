package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamidzr/editfield"
	"github.com/hamidzr/editfield/model"
)

func TestMatchLabelsEmptyQueryKeepsOrder(t *testing.T) {
	labels := []string{"Name", "Email", "Company"}
	assert.Equal(t, []int{0, 1, 2}, matchLabels("", labels))
}

func TestMatchLabelsFiltersAndRanks(t *testing.T) {
	labels := []string{"Name", "Email", "Company", "Notes"}

	got := matchLabels("mail", labels)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0])

	got = matchLabels("n", labels)
	assert.NotEmpty(t, got)
	for _, i := range got {
		assert.Contains(t, []int{0, 2, 3}, i)
	}
}

func TestMatchLabelsNoMatches(t *testing.T) {
	assert.Empty(t, matchLabels("zzz", []string{"Name", "Email"}))
}

func TestDefaultSpecKeysAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, spec := range defaultSpecs() {
		require.False(t, seen[spec.Key], "duplicate key %s", spec.Key)
		seen[spec.Key] = true
	}
}

func TestTerminalFieldCommitRoundTrip(t *testing.T) {
	f := &terminalField{spec: model.FieldSpec{Key: "name", Label: "Name", Value: "alpha"}}
	queue := &editfield.Queue{}
	var committed []string
	f.ctrl = editfield.NewController("alpha", func(v string) {
		committed = append(committed, v)
		f.ctrl.SetText(v)
	}).WithScheduler(queue).WithHost(f)

	f.ctrl.FocusChanged(true)
	assert.Equal(t, "alpha", string(f.buf))

	f.buf = []rune("beta")
	f.ctrl.DraftChanged(string(f.buf))
	f.ctrl.FocusChanged(false)
	require.Equal(t, []string{"beta"}, committed)

	queue.Drain()
	assert.Equal(t, "beta", string(f.buf))
	assert.False(t, f.ctrl.IsEditing())
}
