// Package testutil provides helpers shared by the test suites, most notably
// an in-process websocket player endpoint for exercising the real transport.
package testutil

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

// PlayerScript drives one accepted connection. Returning closes the
// connection with a normal closure handshake.
type PlayerScript func(t *testing.T, conn *websocket.Conn)

// StartPlayerServer starts a websocket endpoint that runs script for every
// accepted connection and returns its ws:// URL. The server shuts down with
// the test.
func StartPlayerServer(t *testing.T, subprotocol string, script PlayerScript) string {
	t.Helper()

	upgrader := websocket.Upgrader{}
	if subprotocol != "" {
		upgrader.Subprotocols = []string{subprotocol}
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		script(t, conn)

		deadline := time.Now().Add(time.Second)
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
		// Drain until the peer acknowledges the close.
		conn.SetReadDeadline(deadline)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	t.Cleanup(server.Close)

	return "ws" + strings.TrimPrefix(server.URL, "http") + "/api"
}

// SendEvent writes one event frame as the player would.
func SendEvent(t *testing.T, conn *websocket.Conn, data []byte) {
	t.Helper()
	require.NoError(t, conn.WriteMessage(websocket.BinaryMessage, data))
}

// ReadFrame reads one frame from the peer, failing the test on timeout.
func ReadFrame(t *testing.T, conn *websocket.Conn) []byte {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	return data
}
