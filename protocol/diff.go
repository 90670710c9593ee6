package protocol

import (
	"time"

	"github.com/rradio/console/statesync"
)

// PlayerStateDiff is the partial-update payload paired with PlayerState:
// every field is either absent (leave the state field untouched) or carries a
// replacement value. Fields whose state type sits behind a Shared handle
// carry a full replacement, never a nested diff; PingTimes is the one
// composite with its own sub-diff, which the merge recurses into.
type PlayerStateDiff struct {
	PipelineState      statesync.Optional[PipelineState]  `json:"pipeline_state,omitzero"`
	CurrentStation     statesync.Optional[CurrentStation] `json:"current_station,omitzero"`
	PauseBeforePlaying statesync.Optional[*time.Duration] `json:"pause_before_playing,omitzero"`
	CurrentTrackIndex  statesync.Optional[int]            `json:"current_track_index,omitzero"`
	CurrentTrackTags   statesync.Optional[*TrackTags]     `json:"current_track_tags,omitzero"`
	IsMuted            statesync.Optional[bool]           `json:"is_muted,omitzero"`
	Volume             statesync.Optional[int]            `json:"volume,omitzero"`
	Buffering          statesync.Optional[int]            `json:"buffering,omitzero"`
	TrackDuration      statesync.Optional[*time.Duration] `json:"track_duration,omitzero"`
	TrackPosition      statesync.Optional[*time.Duration] `json:"track_position,omitzero"`
	PingTimes          PingTimesDiff                      `json:"ping_times,omitzero"`
	LatestError        statesync.Optional[*string]        `json:"latest_error,omitzero"`
}

// PingTimesDiff is the sub-diff for the PingTimes composite.
type PingTimesDiff struct {
	LocalRoundTrip  statesync.Optional[*time.Duration] `json:"local_round_trip,omitzero"`
	RemoteRoundTrip statesync.Optional[*time.Duration] `json:"remote_round_trip,omitzero"`
}

// IsZero reports an empty sub-diff, for omitzero.
func (d PingTimesDiff) IsZero() bool {
	return d.LocalRoundTrip.IsZero() && d.RemoteRoundTrip.IsZero()
}

// Apply merges the sub-diff into the ping times in place.
func (p *PingTimes) Apply(diff PingTimesDiff) {
	statesync.Update(&p.LocalRoundTrip, diff.LocalRoundTrip)
	statesync.Update(&p.RemoteRoundTrip, diff.RemoteRoundTrip)
}

// Apply merges the diff into the state in place. Application is total: a diff
// that decoded successfully always applies, field by field, leaving absent
// fields untouched in both value and identity. An all-absent diff is a no-op.
func (s *PlayerState) Apply(diff PlayerStateDiff) {
	statesync.Update(&s.PipelineState, diff.PipelineState)
	s.CurrentStation.ApplyDiff(diff.CurrentStation)
	statesync.Update(&s.PauseBeforePlaying, diff.PauseBeforePlaying)
	statesync.Update(&s.CurrentTrackIndex, diff.CurrentTrackIndex)
	s.CurrentTrackTags.ApplyDiff(diff.CurrentTrackTags)
	statesync.Update(&s.IsMuted, diff.IsMuted)
	statesync.Update(&s.Volume, diff.Volume)
	statesync.Update(&s.Buffering, diff.Buffering)
	statesync.Update(&s.TrackDuration, diff.TrackDuration)
	statesync.Update(&s.TrackPosition, diff.TrackPosition)
	s.PingTimes.Apply(diff.PingTimes)
	statesync.Update(&s.LatestError, diff.LatestError)
}
