package session_test

import (
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rradio/console/protocol"
	"github.com/rradio/console/session"
	"github.com/rradio/console/statesync"
	"github.com/rradio/console/testutil"
)

func quietLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger.WithField("component", "session-test")
}

// End-to-end over a real websocket: the scripted player sends one diff, waits
// for a command, then closes normally.
func TestSessionOverWebsocket(t *testing.T) {
	received := make(chan protocol.Command, 1)

	url := testutil.StartPlayerServer(t, protocol.APIVersion, func(t *testing.T, conn *websocket.Conn) {
		diff := protocol.PlayerStateDiff{
			Volume:         statesync.Some(64),
			PipelineState:  statesync.Some(protocol.PipelinePlaying),
			CurrentStation: statesync.Some(protocol.CurrentStation{Kind: protocol.NoStation}),
		}
		data, err := protocol.Event{PlayerStateChanged: &diff}.Encode()
		require.NoError(t, err)
		testutil.SendEvent(t, conn, data)

		var cmd protocol.Command
		require.NoError(t, json.Unmarshal(testutil.ReadFrame(t, conn), &cmd))
		received <- cmd
	})

	snapshots := make(chan session.Snapshot, 64)
	s := session.New(session.Options{
		URL:            url,
		ReconnectDelay: 10 * time.Millisecond,
		OnChange:       func(snapshot session.Snapshot) { snapshots <- snapshot },
		Logger:         quietLogger(),
	})

	done := make(chan error, 1)
	go func() { done <- s.Run(context.Background()) }()

	waitFor := func(pred func(session.Snapshot) bool) session.Snapshot {
		t.Helper()
		deadline := time.After(3 * time.Second)
		for {
			select {
			case snapshot := <-snapshots:
				if pred(snapshot) {
					return snapshot
				}
			case <-deadline:
				t.Fatal("timed out waiting for snapshot")
			}
		}
	}

	snapshot := waitFor(func(snapshot session.Snapshot) bool { return snapshot.State.Volume == 64 })
	assert.Equal(t, protocol.PipelinePlaying, snapshot.State.PipelineState)

	s.Send(protocol.SetVolume(80))
	cmd := <-received
	assert.Equal(t, protocol.CmdSetVolume, cmd.Type)
	require.NotNil(t, cmd.Volume)
	assert.Equal(t, 80, *cmd.Volume)

	require.NoError(t, <-done, "a normal closure must end the session without error")
	assert.Equal(t, session.StatusDisconnected, s.Snapshot().Connection.Status)
}
