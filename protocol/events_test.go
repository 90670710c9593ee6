package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEventStateDiff(t *testing.T) {
	frame := []byte(`{
		"player_state_changed": {
			"volume": 42,
			"current_station": {"kind": "playing", "title": "FIP", "tracks": [{"url": "http://icecast.example/fip"}]}
		}
	}`)

	event, err := DecodeEvent(frame)
	require.NoError(t, err)
	require.NotNil(t, event.PlayerStateChanged)
	assert.Nil(t, event.LogMessage)

	state := NewPlayerState()
	state.Apply(*event.PlayerStateChanged)
	assert.Equal(t, 42, state.Volume)
	assert.Equal(t, PlayingStation, state.CurrentStation.Get().Kind)
	assert.Equal(t, "FIP", *state.CurrentStation.Get().Title)
}

func TestDecodeEventLogMessage(t *testing.T) {
	event, err := DecodeEvent([]byte(`{"log_message": {"error": "gstreamer: decode error"}}`))
	require.NoError(t, err)
	require.NotNil(t, event.LogMessage)
	assert.Equal(t, "gstreamer: decode error", event.LogMessage.Error)
}

func TestDecodeEventRejectsGarbage(t *testing.T) {
	_, err := DecodeEvent([]byte(`not json`))
	assert.Error(t, err)

	// Valid JSON that names no event is still an error.
	_, err = DecodeEvent([]byte(`{"unexpected": true}`))
	assert.Error(t, err)
}

func TestCommandEncoding(t *testing.T) {
	data, err := SetVolume(85).Encode()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"set_volume","volume":85}`, string(data))

	data, err = PlayPause().Encode()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"play_pause"}`, string(data))

	data, err = SetPlaylist("Some Podcast", []PlaylistTrack{{Title: "Episode 1", URL: "http://feed.example/1.mp3"}}).Encode()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"set_playlist","title":"Some Podcast","tracks":[{"title":"Episode 1","url":"http://feed.example/1.mp3"}]}`, string(data))

	data, err = NthItem(3).Encode()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"nth_item","index":3}`, string(data))
}

func TestStationDescription(t *testing.T) {
	assert.Equal(t, "Unknown", CurrentStation{}.Description())
	assert.Equal(t, "07", CurrentStation{Index: str("07")}.Description())
	assert.Equal(t, "FIP", CurrentStation{Title: str("FIP")}.Description())
	assert.Equal(t, "07 - FIP", CurrentStation{Index: str("07"), Title: str("FIP")}.Description())
}
