package session

// Status is the connection phase of a session.
type Status int

const (
	// StatusConnecting covers both the initial attempt and reconnection
	// attempts after a transient failure.
	StatusConnecting Status = iota
	// StatusConnected means the channel is established and diffs are
	// flowing.
	StatusConnected
	// StatusDisconnected is terminal: the player closed the channel in an
	// orderly fashion and no reconnection is attempted.
	StatusDisconnected
	// StatusErrored means the channel failed after at least one successful
	// connection. The session retries after a fixed delay.
	StatusErrored
)

func (s Status) String() string {
	switch s {
	case StatusConnecting:
		return "connecting"
	case StatusConnected:
		return "connected"
	case StatusDisconnected:
		return "disconnected"
	case StatusErrored:
		return "errored"
	default:
		return "unknown"
	}
}

// ConnectionState is the user-visible connection status plus the most recent
// transport error message, populated only while StatusErrored.
type ConnectionState struct {
	Status Status
	Err    string
}

// Banner renders the status for the persistent banner. An empty string means
// the banner is hidden (the usual case while connected).
func (c ConnectionState) Banner() string {
	switch c.Status {
	case StatusConnecting:
		return "Connecting..."
	case StatusConnected:
		return ""
	case StatusDisconnected:
		return "RRadio has terminated"
	case StatusErrored:
		return c.Err
	default:
		return ""
	}
}
