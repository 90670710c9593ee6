package errors

import (
	"fmt"
)

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *ConsoleError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *ConsoleError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}

// ConnectionFailed creates a connection establishment error
func ConnectionFailed(url string, err error) *ConsoleError {
	return Wrap(err, ErrCodeConnectionFailed, fmt.Sprintf("failed to open websocket to %s", url)).
		WithDetail("url", url)
}

// ConnectionLost creates an error for a connection dropped mid-session
func ConnectionLost(err error) *ConsoleError {
	return Wrap(err, ErrCodeConnectionLost, "connection to player lost")
}

// DecodeFailed creates an error for an undecodable inbound frame
func DecodeFailed(err error) *ConsoleError {
	return Wrap(err, ErrCodeDecodeFailed, "failed to decode player event")
}

// FeedFetchFailed creates a podcast feed fetch error
func FeedFetchFailed(url string, err error) *ConsoleError {
	return Wrap(err, ErrCodeFeedFetchFailed, fmt.Sprintf("failed to fetch podcast feed %s", url)).
		WithDetail("url", url)
}

// InvalidInput creates an error for malformed user input
func InvalidInput(field, value string) *ConsoleError {
	return New(ErrCodeInvalidInput, fmt.Sprintf("invalid %s: %q", field, value)).
		WithDetail("field", field).
		WithDetail("value", value)
}
