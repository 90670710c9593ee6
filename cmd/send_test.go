package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rradio/console/errors"
	"github.com/rradio/console/protocol"
)

func TestParseCommand(t *testing.T) {
	cmd, err := parseCommand([]string{"play-pause"})
	require.NoError(t, err)
	assert.Equal(t, protocol.CmdPlayPause, cmd.Type)

	cmd, err = parseCommand([]string{"set-volume", "80"})
	require.NoError(t, err)
	assert.Equal(t, protocol.CmdSetVolume, cmd.Type)

	cmd, err = parseCommand([]string{"set-channel", "07"})
	require.NoError(t, err)
	assert.Equal(t, protocol.CmdSetChannel, cmd.Type)

	cmd, err = parseCommand([]string{"seek-forwards", "1m30s"})
	require.NoError(t, err)
	assert.Equal(t, protocol.CmdSeekForwards, cmd.Type)
	require.NotNil(t, cmd.Offset)
	assert.Equal(t, 90*time.Second, *cmd.Offset)
}

func TestParseCommandRejectsBadInput(t *testing.T) {
	cases := [][]string{
		{"warp-speed"},
		{"set-volume", "loud"},
		{"set-volume", "121"},
		{"set-volume"},
		{"nth-item", "-1"},
		{"seek-to", "eleven"},
		{"play-pause", "extra"},
	}
	for _, args := range cases {
		_, err := parseCommand(args)
		assert.Error(t, err, "args %v", args)
		assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput), "args %v", args)
	}
}
