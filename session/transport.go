package session

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/gorilla/websocket"
)

// Conn is one message-framed, ordered, reliable connection to the player.
// Read returns the next message and whether it arrived as a text frame; the
// session ignores text frames with a warning. A clean peer shutdown surfaces
// as io.EOF.
type Conn interface {
	Read() (data []byte, text bool, err error)
	Write(data []byte) error
	Close() error
}

// Dialer opens connections. The production implementation speaks websocket;
// tests substitute a scripted fake.
type Dialer interface {
	DialContext(ctx context.Context, url string) (Conn, error)
}

const handshakeTimeout = 10 * time.Second

// WebsocketDialer dials the player's websocket API, negotiating the protocol
// version as the websocket subprotocol.
type WebsocketDialer struct {
	Subprotocol string
}

func (d WebsocketDialer) DialContext(ctx context.Context, url string) (Conn, error) {
	dialer := websocket.Dialer{
		HandshakeTimeout: handshakeTimeout,
	}
	if d.Subprotocol != "" {
		dialer.Subprotocols = []string{d.Subprotocol}
	}

	conn, resp, err := dialer.DialContext(ctx, url, nil)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	if err != nil {
		return nil, err
	}
	return &wsConn{conn: conn}, nil
}

type wsConn struct {
	conn *websocket.Conn
}

func (w *wsConn) Read() ([]byte, bool, error) {
	messageType, data, err := w.conn.ReadMessage()
	if err != nil {
		if isOrderlyClose(err) {
			return nil, false, io.EOF
		}
		return nil, false, err
	}
	return data, messageType == websocket.TextMessage, nil
}

func (w *wsConn) Write(data []byte) error {
	return w.conn.WriteMessage(websocket.BinaryMessage, data)
}

func (w *wsConn) Close() error {
	return w.conn.Close()
}

// isOrderlyClose reports whether the peer performed a normal websocket
// closing handshake, as opposed to the connection failing.
func isOrderlyClose(err error) bool {
	var closeErr *websocket.CloseError
	if errors.As(err, &closeErr) {
		return closeErr.Code == websocket.CloseNormalClosure ||
			closeErr.Code == websocket.CloseGoingAway
	}
	return false
}
