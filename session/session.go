// Package session owns the long-lived connection to the rradio player: it
// establishes the channel, applies incoming state diffs to the shared player
// state, forwards outbound commands, and drives the reconnection state
// machine.
//
// Exactly one goroutine, the one running Run, mutates the state. The render
// layer observes after-the-fact snapshots delivered through OnChange and
// never mutates anything. Commands are handed off from UI callbacks into the
// same goroutine's send path, so they reach the wire in submission order;
// their interleaving with inbound diffs is unordered and a command's effect
// is only observed once the corresponding diff arrives back.
package session

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	consoleerrors "github.com/rradio/console/errors"
	"github.com/rradio/console/logging"
	"github.com/rradio/console/protocol"
)

// DefaultReconnectDelay is the fixed backoff between reconnection attempts
// after a connection that had been established fails.
const DefaultReconnectDelay = 3 * time.Second

// Snapshot is what the render layer sees: the state as of the last applied
// diff plus the connection status. The PlayerState inside shares its wrapped
// subtrees with the session's copy; consumers must treat it as read-only.
type Snapshot struct {
	State      protocol.PlayerState
	Connection ConnectionState
}

// Options configures a session.
type Options struct {
	// URL of the player's websocket API.
	URL string
	// Dialer opens the transport; defaults to a websocket dialer speaking
	// protocol.APIVersion.
	Dialer Dialer
	// ReconnectDelay overrides DefaultReconnectDelay.
	ReconnectDelay time.Duration
	// OnChange is invoked after every state mutation and every connection
	// status change, from the session goroutine.
	OnChange func(Snapshot)
	// Logger defaults to the "session" component logger.
	Logger *logrus.Entry
}

// Session is one lifetime of a connection attempt sequence. Create with New,
// drive with Run.
type Session struct {
	url            string
	dialer         Dialer
	reconnectDelay time.Duration
	onChange       func(Snapshot)
	logger         *logrus.Entry

	mu         sync.RWMutex
	state      protocol.PlayerState
	connection ConnectionState

	commands chan protocol.Command
}

// New creates a session. Run must be called before any state flows.
func New(opts Options) *Session {
	dialer := opts.Dialer
	if dialer == nil {
		dialer = WebsocketDialer{Subprotocol: protocol.APIVersion}
	}
	delay := opts.ReconnectDelay
	if delay <= 0 {
		delay = DefaultReconnectDelay
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewLogger("session")
	}

	return &Session{
		url:            opts.URL,
		dialer:         dialer,
		reconnectDelay: delay,
		onChange:       opts.OnChange,
		logger:         logger,
		state:          protocol.NewPlayerState(),
		connection:     ConnectionState{Status: StatusConnecting},
		commands:       make(chan protocol.Command, 16),
	}
}

// Snapshot returns the current state and connection status.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{State: s.state, Connection: s.connection}
}

// Send submits a command for transmission. Commands are at-most-once: while
// connected they go out in submission order, otherwise they are silently
// dropped. Send never blocks the caller.
func (s *Session) Send(cmd protocol.Command) {
	s.mu.RLock()
	connected := s.connection.Status == StatusConnected
	s.mu.RUnlock()

	if !connected {
		s.logger.WithField("command", cmd.Type).Debug("dropping command: no live connection")
		return
	}

	select {
	case s.commands <- cmd:
	default:
		s.logger.WithField("command", cmd.Type).Warn("dropping command: send queue full")
	}
}

// Run connects and processes messages until the player closes the channel or
// a terminal failure occurs. A failure on the very first connection attempt
// is treated as a configuration error and returned immediately without
// retrying; failures after at least one successful connection put the session
// into StatusErrored, wait the fixed reconnect delay, and try again,
// indefinitely. Run returns nil on orderly shutdown, ctx.Err() on
// cancellation.
//
// Run resets the state to its session-start default, so a Session may be
// deliberately restarted by calling Run again after it returns.
func (s *Session) Run(ctx context.Context) error {
	s.reset()

	firstAttempt := true
	for {
		err := s.runConnection(ctx, &firstAttempt)
		if err == nil {
			s.setConnection(ConnectionState{Status: StatusDisconnected})
			return nil
		}
		if ctx.Err() != nil {
			s.setConnection(ConnectionState{Status: StatusDisconnected})
			return ctx.Err()
		}

		s.setConnection(ConnectionState{Status: StatusErrored, Err: err.Error()})
		if firstAttempt {
			return err
		}

		s.logger.WithError(err).Warn("connection lost, reconnecting")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.reconnectDelay):
		}
		s.setConnection(ConnectionState{Status: StatusConnecting})
	}
}

type inbound struct {
	data []byte
	text bool
	err  error
}

// runConnection drives one connection: nil return means orderly close.
func (s *Session) runConnection(ctx context.Context, firstAttempt *bool) error {
	conn, err := s.dialer.DialContext(ctx, s.url)
	if err != nil {
		return consoleerrors.ConnectionFailed(s.url, err)
	}
	defer conn.Close()

	*firstAttempt = false
	s.setConnection(ConnectionState{Status: StatusConnected})

	reads := make(chan inbound)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			data, text, err := conn.Read()
			select {
			case reads <- inbound{data: data, text: text, err: err}:
			case <-done:
				return
			}
			if err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case cmd := <-s.commands:
			data, err := cmd.Encode()
			if err != nil {
				s.logger.WithError(err).WithField("command", cmd.Type).Warn("failed to encode command")
				continue
			}
			if err := conn.Write(data); err != nil {
				return consoleerrors.ConnectionLost(err)
			}

		case in := <-reads:
			if in.err != nil {
				if errors.Is(in.err, io.EOF) {
					return nil
				}
				return consoleerrors.ConnectionLost(in.err)
			}
			if in.text {
				s.logger.WithField("message", string(in.data)).Warn("ignoring text message")
				continue
			}
			event, err := protocol.DecodeEvent(in.data)
			if err != nil {
				// The diff stream is inconsistent once a frame is
				// lost, so force a reconnect.
				return consoleerrors.DecodeFailed(err)
			}
			s.handleEvent(event)
		}
	}
}

func (s *Session) handleEvent(event protocol.Event) {
	switch {
	case event.PlayerStateChanged != nil:
		s.mu.Lock()
		s.state.Apply(*event.PlayerStateChanged)
		snapshot := Snapshot{State: s.state, Connection: s.connection}
		s.mu.Unlock()
		s.notify(snapshot)

	case event.LogMessage != nil:
		s.logger.WithField("player_error", event.LogMessage.Error).Error("player reported an error")
	}
}

func (s *Session) setConnection(connection ConnectionState) {
	s.mu.Lock()
	s.connection = connection
	snapshot := Snapshot{State: s.state, Connection: s.connection}
	s.mu.Unlock()
	s.notify(snapshot)
}

func (s *Session) reset() {
	s.mu.Lock()
	s.state = protocol.NewPlayerState()
	s.connection = ConnectionState{Status: StatusConnecting}
	snapshot := Snapshot{State: s.state, Connection: s.connection}
	s.mu.Unlock()
	s.notify(snapshot)
}

func (s *Session) notify(snapshot Snapshot) {
	if s.onChange != nil {
		s.onChange(snapshot)
	}
}
