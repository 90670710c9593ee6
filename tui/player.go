package tui

import (
	"fmt"
	"strings"

	"github.com/rradio/console/protocol"
)

func (m *Model) renderPlayer() string {
	state := &m.snapshot.State
	var b strings.Builder

	b.WriteString(m.theme.Label.Render("Pipeline State: "))
	b.WriteString(m.theme.Value.Render(string(state.PipelineState)))
	b.WriteString("\n\n")

	b.WriteString(m.stationView.get(state.CurrentStation, m.stationKey(), m.renderStation))
	b.WriteString("\n")
	b.WriteString(m.tagsView.get(state.CurrentTrackTags, 0, m.renderTrackTags))
	b.WriteString("\n")

	volume := fmt.Sprintf("%d", state.Volume)
	if state.IsMuted {
		volume += " (muted)"
	}
	b.WriteString(m.theme.Label.Render("Volume: "))
	b.WriteString(m.theme.Value.Render(volume))
	b.WriteString("\n")

	b.WriteString(m.theme.Label.Render("Position: "))
	b.WriteString(m.theme.Value.Render(formatPosition(state.TrackPosition, state.TrackDuration)))
	b.WriteString("\n")

	b.WriteString(m.theme.Label.Render("Buffering: "))
	b.WriteString(m.theme.Value.Render(fmt.Sprintf("%d%%", state.Buffering)))
	b.WriteString("\n")

	if m.volumeInputOpen {
		b.WriteString("\n")
		b.WriteString(m.volumeInput.View())
		b.WriteString("\n")
	}
	if m.inputWarning != "" {
		b.WriteString("\n")
		b.WriteString(m.theme.ErrorText.Render(m.inputWarning))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Muted.Render("space play/pause · n/p next/prev · +/- volume · v set volume · m mute · b/f seek · tab view · q quit"))
	return b.String()
}

// stationKey folds the render inputs that change without the station subtree
// being replaced into the memoization key.
func (m *Model) stationKey() int {
	return m.snapshot.State.CurrentTrackIndex<<16 | m.trackCursor
}

func (m *Model) renderStation(station *protocol.CurrentStation) string {
	var b strings.Builder

	switch station.Kind {
	case protocol.NoStation:
		b.WriteString(m.theme.Muted.Render("No Station"))
		b.WriteString("\n")

	case protocol.FailedToPlay:
		b.WriteString(m.theme.ErrorText.Render("Failed to play station: " + station.Error))
		b.WriteString("\n")

	case protocol.PlayingStation:
		b.WriteString(m.theme.Label.Render("Current Station: "))
		b.WriteString(m.theme.Value.Render(station.Description()))
		b.WriteString("\n")

		for i, track := range station.Tracks {
			line := fmt.Sprintf("%2d. %s", i+1, describeTrack(track))
			marker := "  "
			if i == m.snapshot.State.CurrentTrackIndex {
				marker = "▶ "
			}
			style := m.theme.Value
			if i == m.trackCursor {
				style = m.theme.Selected
			}
			b.WriteString(marker)
			b.WriteString(style.Render(line))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func describeTrack(track protocol.Track) string {
	if track.IsNotification {
		return "<Notification>"
	}
	if track.Title != nil {
		return *track.Title + ": " + track.URL
	}
	return track.URL
}

func (m *Model) renderTrackTags(tags **protocol.TrackTags) string {
	if tags == nil || *tags == nil {
		return m.theme.Muted.Render("No Track") + "\n"
	}

	var b strings.Builder
	b.WriteString(m.theme.Label.Render("Track Tags:"))
	b.WriteString("\n")
	writeTag := func(name string, value *string) {
		if value == nil {
			return
		}
		b.WriteString("  ")
		b.WriteString(m.theme.Label.Render(name + ": "))
		b.WriteString(m.theme.Value.Render(*value))
		b.WriteString("\n")
	}

	t := *tags
	writeTag("Title", t.Title)
	writeTag("Organisation", t.Organisation)
	writeTag("Artist", t.Artist)
	writeTag("Album", t.Album)
	writeTag("Genre", t.Genre)
	writeTag("Image", t.Image)
	writeTag("Comment", t.Comment)
	return b.String()
}
