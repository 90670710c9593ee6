package cli

import (
	"fmt"
	"os"

	"github.com/rradio/console/errors"
)

// ErrorHandler provides user-friendly error messages.
type ErrorHandler struct {
	Verbose bool
}

// NewErrorHandler creates a new error handler.
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
	}
}

// Handle provides user-friendly error messages based on the error code.
func (h *ErrorHandler) Handle(err error) error {
	switch errors.GetCode(err) {
	case errors.ErrCodeConnectionFailed:
		fmt.Fprintf(os.Stderr, "❌ Could not reach the player: %v\n", err)
		fmt.Fprintf(os.Stderr, "Check that rradio is running and the server address is correct.\n")
		fmt.Fprintf(os.Stderr, "The address comes from config.toml or the RRADIO_SERVER environment variable.\n")

	case errors.ErrCodeConfigInvalid:
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		fmt.Fprintf(os.Stderr, "Fix the configuration file and try again.\n")

	case errors.ErrCodeFeedFetchFailed, errors.ErrCodeFeedInvalid:
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		fmt.Fprintf(os.Stderr, "Check the feed URL; it must point to a podcast RSS feed.\n")

	case errors.ErrCodeInvalidInput:
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)

	default:
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)
	}

	if h.Verbose {
		if consoleErr, ok := err.(*errors.ConsoleError); ok {
			fmt.Fprintf(os.Stderr, "\nError details:\n%s\n", consoleErr.ToJSON())
		}
	}
	return err
}
