package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rradio/console/cli"
	consoleerrors "github.com/rradio/console/errors"
	"github.com/rradio/console/protocol"
	"github.com/rradio/console/session"
)

// statusOutput is the flattened state view printed by the status command.
type statusOutput struct {
	PipelineState string  `json:"pipeline_state"`
	Station       string  `json:"station"`
	TrackIndex    int     `json:"track_index"`
	TrackURL      string  `json:"track_url,omitempty"`
	Volume        int     `json:"volume"`
	Muted         bool    `json:"muted"`
	Buffering     int     `json:"buffering"`
	Position      string  `json:"position,omitempty"`
	Duration      string  `json:"duration,omitempty"`
	LatestError   *string `json:"latest_error,omitempty"`
}

// NewStatusCmd creates the `status` command: connect once, wait for the
// initial full-state diff, print it, disconnect.
func NewStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Print the player's current state and exit",
		RunE:  runStatus,
	}
	cmd.Flags().String("server", "", "Player address as host:port (overrides config)")
	cmd.Flags().Duration("timeout", 10*time.Second, "How long to wait for the player")
	return cmd
}

func runStatus(cmd *cobra.Command, args []string) error {
	opts := cli.GetOptions(cmd)
	handler := cli.NewErrorHandler(opts.Verbose)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return handler.Handle(err)
	}
	timeout, _ := cmd.Flags().GetDuration("timeout")

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	state, err := fetchState(ctx, cfg.WebsocketURL())
	if err != nil {
		return handler.Handle(err)
	}

	output := flattenState(state)
	if opts.JSONOutput {
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Pipeline State: %s\n", output.PipelineState)
	fmt.Printf("Station:        %s\n", output.Station)
	if output.TrackURL != "" {
		fmt.Printf("Track:          %d (%s)\n", output.TrackIndex, output.TrackURL)
	}
	fmt.Printf("Volume:         %d", output.Volume)
	if output.Muted {
		fmt.Printf(" (muted)")
	}
	fmt.Println()
	fmt.Printf("Buffering:      %d%%\n", output.Buffering)
	if output.Position != "" {
		fmt.Printf("Position:       %s / %s\n", output.Position, output.Duration)
	}
	if output.LatestError != nil {
		fmt.Printf("Latest Error:   %s\n", *output.LatestError)
	}
	return nil
}

// fetchState dials the player and applies events until the first state diff
// has arrived. The player sends the complete state as its first diff, so one
// PlayerStateChanged event is enough.
func fetchState(ctx context.Context, url string) (protocol.PlayerState, error) {
	dialer := session.WebsocketDialer{Subprotocol: protocol.APIVersion}
	conn, err := dialer.DialContext(ctx, url)
	if err != nil {
		return protocol.PlayerState{}, consoleerrors.ConnectionFailed(url, err)
	}
	defer conn.Close()

	type result struct {
		state protocol.PlayerState
		err   error
	}
	results := make(chan result, 1)
	go func() {
		state := protocol.NewPlayerState()
		for {
			data, text, err := conn.Read()
			if err != nil {
				results <- result{err: consoleerrors.ConnectionLost(err)}
				return
			}
			if text {
				continue
			}
			event, err := protocol.DecodeEvent(data)
			if err != nil {
				results <- result{err: consoleerrors.DecodeFailed(err)}
				return
			}
			if event.PlayerStateChanged != nil {
				state.Apply(*event.PlayerStateChanged)
				results <- result{state: state}
				return
			}
		}
	}()

	select {
	case <-ctx.Done():
		// Closing the connection unblocks the reader.
		conn.Close()
		return protocol.PlayerState{}, consoleerrors.ConnectionLost(ctx.Err())
	case r := <-results:
		return r.state, r.err
	}
}

func flattenState(state protocol.PlayerState) statusOutput {
	output := statusOutput{
		PipelineState: string(state.PipelineState),
		Station:       state.CurrentStation.Get().Description(),
		TrackIndex:    state.CurrentTrackIndex,
		Volume:        state.Volume,
		Muted:         state.IsMuted,
		Buffering:     state.Buffering,
		LatestError:   state.LatestError,
	}
	if track := state.CurrentTrack(); track != nil {
		output.TrackURL = track.URL
	}
	if state.TrackPosition != nil && state.TrackDuration != nil {
		output.Position = state.TrackPosition.String()
		output.Duration = state.TrackDuration.String()
	}
	return output
}
