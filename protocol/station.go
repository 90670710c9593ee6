// Package protocol defines the rradio wire messages: the player state
// aggregate, its structurally-parallel diff, inbound events and outbound
// commands. Messages travel as JSON over a message-framed transport; the
// framing itself lives in the session package.
package protocol

// The rradio API version negotiated as the websocket subprotocol. The server
// rejects clients speaking a different version.
const APIVersion = "rradio-0.2"

// Track is one entry of a station's playlist.
type Track struct {
	Title          *string `json:"title"`
	Album          *string `json:"album"`
	Artist         *string `json:"artist"`
	URL            string  `json:"url"`
	IsNotification bool    `json:"is_notification"`
}

// TrackTags carries the metadata of the currently playing track, as reported
// by the playback pipeline.
type TrackTags struct {
	Title        *string `json:"title"`
	Organisation *string `json:"organisation"`
	Artist       *string `json:"artist"`
	Album        *string `json:"album"`
	Genre        *string `json:"genre"`
	Image        *string `json:"image"`
	Comment      *string `json:"comment"`
}

// StationKind discriminates the current-station variants.
type StationKind string

const (
	// NoStation means nothing is selected.
	NoStation StationKind = "no_station"
	// FailedToPlay means a station was selected but could not be played;
	// Error describes why.
	FailedToPlay StationKind = "failed_to_play"
	// PlayingStation means a station is selected and its track list is
	// populated.
	PlayingStation StationKind = "playing"
)

// CurrentStation is the station variant: no station, failed to play with an
// error, or playing with a track list. The synchronization protocol treats it
// as opaque: a diff always carries a full replacement, never a sub-diff.
type CurrentStation struct {
	Kind       StationKind `json:"kind"`
	Error      string      `json:"error,omitempty"`
	Index      *string     `json:"index,omitempty"`
	SourceType string      `json:"source_type,omitempty"`
	Title      *string     `json:"title,omitempty"`
	Tracks     []Track     `json:"tracks,omitempty"`
}

// Description renders the station for display, preferring "index - title"
// when both are known.
func (s CurrentStation) Description() string {
	switch {
	case s.Index != nil && s.Title != nil:
		return *s.Index + " - " + *s.Title
	case s.Index != nil:
		return *s.Index
	case s.Title != nil:
		return *s.Title
	default:
		return "Unknown"
	}
}
