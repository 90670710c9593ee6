package statesync

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type trackList struct {
	Title  string
	Tracks []string
}

func TestSharedCloneIsIdentityEqual(t *testing.T) {
	w := NewShared(trackList{Title: "BBC Radio 4", Tracks: []string{"a", "b"}})

	assert.True(t, w.Clone().Equal(w), "a clone must compare equal to its origin")

	// Plain value copies are handles too.
	copied := w
	assert.True(t, copied.Equal(w))
}

func TestSharedEqualValuesDistinctIdentity(t *testing.T) {
	v := trackList{Title: "same", Tracks: []string{"x"}}
	a := NewShared(v)
	b := NewShared(v)

	// Equal contents, independently constructed: never identity-equal.
	assert.Equal(t, *a.Get(), *b.Get())
	assert.False(t, a.Equal(b))
}

func TestSharedZeroHandle(t *testing.T) {
	var w Shared[trackList]
	require.NotNil(t, w.Get())
	assert.Equal(t, trackList{}, *w.Get())
}

func TestSharedApplyDiffReplacesIdentity(t *testing.T) {
	w := NewShared(trackList{Title: "before"})
	before := w

	w.ApplyDiff(Some(trackList{Title: "after"}))

	assert.Equal(t, "after", w.Get().Title)
	assert.False(t, w.Equal(before), "replacement must change identity")

	// Replacing with content equal to the current value still changes
	// identity; that is the deliberate trade for O(1) change detection.
	before = w
	w.ApplyDiff(Some(trackList{Title: "after"}))
	assert.Equal(t, *before.Get(), *w.Get())
	assert.False(t, w.Equal(before))
}

func TestSharedApplyDiffAbsentPreservesIdentity(t *testing.T) {
	w := NewShared(trackList{Title: "stay"})
	before := w

	w.ApplyDiff(None[trackList]())

	assert.True(t, w.Equal(before), "absent diff must not touch the handle")
}
