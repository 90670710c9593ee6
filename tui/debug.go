package tui

import (
	"fmt"
	"strings"
	"time"
)

func (m *Model) renderDebug() string {
	state := &m.snapshot.State
	var b strings.Builder

	row := func(name, value string) {
		b.WriteString("  ")
		b.WriteString(m.theme.Label.Render(fmt.Sprintf("%-22s", name)))
		b.WriteString(m.theme.Value.Render(value))
		b.WriteString("\n")
	}

	b.WriteString(m.theme.Label.Render("Connection"))
	b.WriteString("\n")
	row("Status", m.snapshot.Connection.Status.String())
	if m.snapshot.Connection.Err != "" {
		row("Error", m.snapshot.Connection.Err)
	}
	row("Local Round Trip", roundTrip(state.PingTimes.LocalRoundTrip))
	row("Remote Round Trip", roundTrip(state.PingTimes.RemoteRoundTrip))
	b.WriteString("\n")

	b.WriteString(m.theme.Label.Render("Player State"))
	b.WriteString("\n")
	row("Pipeline State", string(state.PipelineState))
	row("Station", state.CurrentStation.Get().Description())
	row("Track Index", fmt.Sprintf("%d", state.CurrentTrackIndex))
	row("Volume", fmt.Sprintf("%d", state.Volume))
	row("Muted", fmt.Sprintf("%t", state.IsMuted))
	row("Buffering", fmt.Sprintf("%d%%", state.Buffering))
	row("Track Position", optionalDuration(state.TrackPosition))
	row("Track Duration", optionalDuration(state.TrackDuration))
	row("Pause Before Playing", optionalDuration(state.PauseBeforePlaying))
	if state.LatestError != nil {
		b.WriteString("\n")
		b.WriteString(m.theme.ErrorText.Render("Latest Error: " + *state.LatestError))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Muted.Render("tab view · q quit"))
	return b.String()
}

func roundTrip(d *time.Duration) string {
	if d == nil {
		return "-"
	}
	return d.Round(time.Millisecond).String()
}

func optionalDuration(d *time.Duration) string {
	if d == nil {
		return "-"
	}
	return d.String()
}
