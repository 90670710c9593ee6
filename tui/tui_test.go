package tui

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rradio/console/protocol"
	"github.com/rradio/console/session"
	"github.com/rradio/console/statesync"
)

func discardLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}

func testModel(t *testing.T) *Model {
	t.Helper()
	return New(Options{Logger: discardLogger()})
}

func playingSnapshot() session.Snapshot {
	state := protocol.NewPlayerState()
	index := "ab"
	title := "Test FM"
	state.CurrentStation = statesync.NewShared(protocol.CurrentStation{
		Kind:       protocol.PlayingStation,
		Index:      &index,
		SourceType: "UrlList",
		Title:      &title,
		Tracks: []protocol.Track{
			{URL: "http://stream.example/one"},
			{URL: "http://stream.example/two"},
		},
	})
	state.PipelineState = protocol.PipelinePlaying
	state.Volume = 80
	return session.Snapshot{
		State:      state,
		Connection: session.ConnectionState{Status: session.StatusConnected},
	}
}

func TestViewFromName(t *testing.T) {
	assert.Equal(t, ViewPlayer, ViewFromName("player"))
	assert.Equal(t, ViewPodcasts, ViewFromName("podcasts"))
	assert.Equal(t, ViewDebug, ViewFromName("debug"))
	assert.Equal(t, ViewPlayer, ViewFromName("bogus"))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "00:00", formatDuration(0))
	assert.Equal(t, "01:05", formatDuration(65*time.Second))
	assert.Equal(t, "61:00", formatDuration(61*time.Minute))
}

func TestFormatPosition(t *testing.T) {
	position := 30 * time.Second
	duration := 2 * time.Minute
	assert.Equal(t, "00:30 - 02:00", formatPosition(&position, &duration))
	assert.Equal(t, "Infinite Stream", formatPosition(nil, nil))
	assert.Equal(t, "Infinite Stream", formatPosition(&position, nil))
}

func TestStationRenderGatedOnIdentity(t *testing.T) {
	m := testModel(t)
	m.Update(StateMsg(playingSnapshot()))

	m.View()
	require.Equal(t, 1, m.stationView.renders)

	// Repeated renders of the same snapshot reuse the cached subtree.
	m.View()
	assert.Equal(t, 1, m.stationView.renders)

	// A diff that leaves the station alone keeps its identity, so the
	// cached rendering survives even though other fields changed.
	snapshot := m.snapshot
	snapshot.State.Apply(protocol.PlayerStateDiff{Volume: statesync.Some(55)})
	m.Update(StateMsg(snapshot))
	m.View()
	assert.Equal(t, 1, m.stationView.renders)

	// Replacing the station gives it a fresh identity and forces a
	// re-render, even when the contents are equal.
	replacement := *snapshot.State.CurrentStation.Get()
	snapshot.State.Apply(protocol.PlayerStateDiff{
		CurrentStation: statesync.Some(replacement),
	})
	m.Update(StateMsg(snapshot))
	m.View()
	assert.Equal(t, 2, m.stationView.renders)
}

func TestStationRenderTracksCursor(t *testing.T) {
	m := testModel(t)
	m.Update(StateMsg(playingSnapshot()))
	m.View()
	require.Equal(t, 1, m.stationView.renders)

	// Moving the cursor changes the render key without touching identity.
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.View()
	assert.Equal(t, 2, m.stationView.renders)
	assert.Equal(t, 1, m.trackCursor)
}

func TestInvalidVolumeInputIsDiscarded(t *testing.T) {
	m := testModel(t)
	m.Update(StateMsg(playingSnapshot()))

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'v'}})
	require.True(t, m.volumeInputOpen)

	m.volumeInput.SetValue("999")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, m.volumeInputOpen)
	assert.Contains(t, m.inputWarning, "999")
	assert.Contains(t, m.View(), "Invalid volume")
}

func TestBannerShownWhileNotConnected(t *testing.T) {
	m := testModel(t)

	snapshot := playingSnapshot()
	snapshot.Connection = session.ConnectionState{Status: session.StatusConnecting}
	m.Update(StateMsg(snapshot))
	assert.Contains(t, m.View(), "Connecting...")

	snapshot.Connection = session.ConnectionState{Status: session.StatusConnected}
	m.Update(StateMsg(snapshot))
	assert.NotContains(t, m.View(), "Connecting...")

	snapshot.Connection = session.ConnectionState{Status: session.StatusDisconnected}
	m.Update(StateMsg(snapshot))
	assert.Contains(t, m.View(), "RRadio has terminated")
}

func TestTabCyclesViews(t *testing.T) {
	m := testModel(t)
	require.Equal(t, ViewPlayer, m.view)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, ViewPodcasts, m.view)
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, ViewDebug, m.view)
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, ViewPlayer, m.view)
}

func TestDebugViewShowsConnection(t *testing.T) {
	m := New(Options{Logger: discardLogger(), InitialView: ViewDebug})

	snapshot := playingSnapshot()
	snapshot.Connection = session.ConnectionState{
		Status: session.StatusErrored,
		Err:    "connection reset",
	}
	local := 12 * time.Millisecond
	snapshot.State.PingTimes.LocalRoundTrip = &local
	m.Update(StateMsg(snapshot))

	view := m.View()
	assert.Contains(t, view, "errored")
	assert.Contains(t, view, "connection reset")
	assert.Contains(t, view, "12ms")
}

func TestTrackCursorClampedOnShrink(t *testing.T) {
	m := testModel(t)
	m.Update(StateMsg(playingSnapshot()))
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, 1, m.trackCursor)

	snapshot := m.snapshot
	snapshot.State.Apply(protocol.PlayerStateDiff{
		CurrentStation: statesync.Some(protocol.CurrentStation{Kind: protocol.NoStation}),
	})
	m.Update(StateMsg(snapshot))
	assert.Equal(t, 0, m.trackCursor)

	view := m.View()
	assert.True(t, strings.Contains(view, "No Station"))
}
