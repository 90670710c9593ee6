package podcasts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rradio/console/protocol"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>The Example Hour</title>
    <item>
      <title>Episode 2: Compression</title>
      <description>All about audio compression.</description>
      <enclosure url="http://cdn.example/ep2.mp3" length="123" type="audio/mpeg"/>
    </item>
    <item>
      <title>Episode 1: Microphones</title>
      <description>No audio attached to this one.</description>
    </item>
  </channel>
</rss>`

func TestParseFeed(t *testing.T) {
	channel, err := Parse(sampleFeed)
	require.NoError(t, err)

	assert.Equal(t, "The Example Hour", channel.Title)
	require.Len(t, channel.Episodes, 2)

	assert.True(t, channel.Episodes[0].Playable())
	assert.Equal(t, "http://cdn.example/ep2.mp3", channel.Episodes[0].URL)
	assert.False(t, channel.Episodes[1].Playable())
}

func TestParseFeedRejectsGarbage(t *testing.T) {
	_, err := Parse("this is not xml")
	assert.Error(t, err)
}

func TestEpisodePlayCommand(t *testing.T) {
	episode := Episode{Title: "Episode 2: Compression", URL: "http://cdn.example/ep2.mp3"}
	cmd := episode.PlayCommand("The Example Hour")

	assert.Equal(t, protocol.CmdSetPlaylist, cmd.Type)
	assert.Equal(t, "The Example Hour", cmd.Title)
	require.Len(t, cmd.Tracks, 1)
	assert.Equal(t, "Episode 2: Compression", cmd.Tracks[0].Title)
	assert.Equal(t, "http://cdn.example/ep2.mp3", cmd.Tracks[0].URL)

	// An untitled episode inherits the channel title.
	cmd = Episode{URL: "http://cdn.example/x.mp3"}.PlayCommand("The Example Hour")
	assert.Equal(t, "The Example Hour", cmd.Tracks[0].Title)
}
