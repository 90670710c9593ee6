package protocol

import (
	"encoding/json"
	"time"
)

// CommandType names an outbound command.
type CommandType string

const (
	CmdSetChannel    CommandType = "set_channel"
	CmdPlayPause     CommandType = "play_pause"
	CmdPreviousItem  CommandType = "previous_item"
	CmdNextItem      CommandType = "next_item"
	CmdNthItem       CommandType = "nth_item"
	CmdSeekTo        CommandType = "seek_to"
	CmdSeekBackwards CommandType = "seek_backwards"
	CmdSeekForwards  CommandType = "seek_forwards"
	CmdVolumeUp      CommandType = "volume_up"
	CmdVolumeDown    CommandType = "volume_down"
	CmdSetVolume     CommandType = "set_volume"
	CmdToggleMute    CommandType = "toggle_mute"
	CmdPlayURL       CommandType = "play_url"
	CmdSetPlaylist   CommandType = "set_playlist"
	CmdEject         CommandType = "eject"
	CmdDebugPipeline CommandType = "debug_pipeline"
)

// PlaylistTrack is one entry of a SetPlaylist command.
type PlaylistTrack struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Command is an outbound user action. Commands are fire-and-forget: the
// session sends them immediately while connected and drops them otherwise.
type Command struct {
	Type     CommandType     `json:"type"`
	Channel  string          `json:"channel,omitempty"`
	Index    *int            `json:"index,omitempty"`
	Volume   *int            `json:"volume,omitempty"`
	Position *time.Duration  `json:"position,omitempty"`
	Offset   *time.Duration  `json:"offset,omitempty"`
	URL      string          `json:"url,omitempty"`
	Title    string          `json:"title,omitempty"`
	Tracks   []PlaylistTrack `json:"tracks,omitempty"`
}

// Encode serializes the command for the wire.
func (c Command) Encode() ([]byte, error) {
	return json.Marshal(c)
}

func SetChannel(channel string) Command {
	return Command{Type: CmdSetChannel, Channel: channel}
}

func PlayPause() Command {
	return Command{Type: CmdPlayPause}
}

func PreviousItem() Command {
	return Command{Type: CmdPreviousItem}
}

func NextItem() Command {
	return Command{Type: CmdNextItem}
}

// NthItem selects a track of the current station by index.
func NthItem(index int) Command {
	return Command{Type: CmdNthItem, Index: &index}
}

func SeekTo(position time.Duration) Command {
	return Command{Type: CmdSeekTo, Position: &position}
}

func SeekBackwards(offset time.Duration) Command {
	return Command{Type: CmdSeekBackwards, Offset: &offset}
}

func SeekForwards(offset time.Duration) Command {
	return Command{Type: CmdSeekForwards, Offset: &offset}
}

func VolumeUp() Command {
	return Command{Type: CmdVolumeUp}
}

func VolumeDown() Command {
	return Command{Type: CmdVolumeDown}
}

func SetVolume(volume int) Command {
	return Command{Type: CmdSetVolume, Volume: &volume}
}

func ToggleMute() Command {
	return Command{Type: CmdToggleMute}
}

func PlayURL(url string) Command {
	return Command{Type: CmdPlayURL, URL: url}
}

// SetPlaylist replaces the player's playlist with the given tracks.
func SetPlaylist(title string, tracks []PlaylistTrack) Command {
	return Command{Type: CmdSetPlaylist, Title: title, Tracks: tracks}
}

func Eject() Command {
	return Command{Type: CmdEject}
}

func DebugPipeline() Command {
	return Command{Type: CmdDebugPipeline}
}
