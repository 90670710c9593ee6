package protocol

import (
	"time"

	"github.com/rradio/console/statesync"
)

// PipelineState mirrors the playback pipeline phase reported by the player.
type PipelineState string

const (
	PipelineNull      PipelineState = "Null"
	PipelineReady     PipelineState = "Ready"
	PipelineBuffering PipelineState = "Buffering"
	PipelinePaused    PipelineState = "Paused"
	PipelinePlaying   PipelineState = "Playing"
)

// Volume bounds accepted by the player. VolumeZeroDB is the unamplified
// reference level.
const (
	VolumeMin    = 0
	VolumeMax    = 120
	VolumeZeroDB = 100
)

// PingTimes holds the most recent round-trip latency samples: console to
// player, and player to the upstream stream source. Unlike the station and
// tag subtrees it is a composite with its own diff type, so the merge engine
// recurses into it instead of replacing it wholesale.
type PingTimes struct {
	LocalRoundTrip  *time.Duration `json:"local_round_trip"`
	RemoteRoundTrip *time.Duration `json:"remote_round_trip"`
}

// PlayerState is the full aggregate view of the remote player. It is owned by
// the session layer, read-only to the render layer, and mutated only by diff
// application.
//
// CurrentStation and CurrentTrackTags sit behind identity handles: the render
// layer skips re-rendering those subtrees whenever the handle identity is
// unchanged.
type PlayerState struct {
	PipelineState      PipelineState
	CurrentStation     statesync.Shared[CurrentStation]
	PauseBeforePlaying *time.Duration
	CurrentTrackIndex  int
	CurrentTrackTags   statesync.Shared[*TrackTags]
	IsMuted            bool
	Volume             int
	Buffering          int
	TrackDuration      *time.Duration
	TrackPosition      *time.Duration
	PingTimes          PingTimes
	LatestError        *string
}

// NewPlayerState returns the session-start default: no station, no tags, no
// error, everything else zero.
func NewPlayerState() PlayerState {
	return PlayerState{
		PipelineState:    PipelineNull,
		CurrentStation:   statesync.NewShared(CurrentStation{Kind: NoStation}),
		CurrentTrackTags: statesync.NewShared[*TrackTags](nil),
	}
}

// CurrentTrack returns the playing station's current track, or nil when there
// is no station or the index is out of range.
func (s *PlayerState) CurrentTrack() *Track {
	station := s.CurrentStation.Get()
	if station.Kind != PlayingStation {
		return nil
	}
	if s.CurrentTrackIndex < 0 || s.CurrentTrackIndex >= len(station.Tracks) {
		return nil
	}
	return &station.Tracks[s.CurrentTrackIndex]
}
