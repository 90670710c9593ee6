package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rradio/console/cli"
	consoleerrors "github.com/rradio/console/errors"
	"github.com/rradio/console/protocol"
	"github.com/rradio/console/session"
)

// NewSendCmd creates the `send` command: fire a single command at the player
// and exit. Delivery is at-most-once; the player's reaction is only visible
// through the state stream, so this command does not wait for one.
func NewSendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send <command> [args]",
		Short: "Send a single command to the player",
		Long: `Send a single command to the player and exit.

Commands:
  play-pause                 Toggle playback
  previous                   Previous track
  next                       Next track
  nth-item <index>           Jump to a track by zero-based index
  set-channel <number>       Play the station with the given channel number
  play-url <url>             Play a stream URL directly
  set-volume <0-120>         Set the volume
  volume-up                  Step the volume up
  volume-down                Step the volume down
  mute                       Toggle mute
  seek-to <duration>         Seek to a position, e.g. 1m30s
  seek-forwards <duration>   Seek forwards by a duration
  seek-backwards <duration>  Seek backwards by a duration
  eject                      Stop and clear the current station
  debug-pipeline             Ask the player to dump pipeline debug info`,
		Args: cobra.MinimumNArgs(1),
		RunE: runSend,
	}
	cmd.Flags().String("server", "", "Player address as host:port (overrides config)")
	cmd.Flags().Duration("timeout", 10*time.Second, "How long to wait for the player")
	return cmd
}

func runSend(cmd *cobra.Command, args []string) error {
	opts := cli.GetOptions(cmd)
	handler := cli.NewErrorHandler(opts.Verbose)

	command, err := parseCommand(args)
	if err != nil {
		return handler.Handle(err)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return handler.Handle(err)
	}
	timeout, _ := cmd.Flags().GetDuration("timeout")

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	if err := deliver(ctx, cfg.WebsocketURL(), command); err != nil {
		return handler.Handle(err)
	}
	fmt.Printf("sent %s\n", command.Type)
	return nil
}

func parseCommand(args []string) (protocol.Command, error) {
	name, rest := args[0], args[1:]

	arity := func(n int) error {
		if len(rest) != n {
			return consoleerrors.InvalidInput("arguments", strings.Join(args, " "))
		}
		return nil
	}

	switch name {
	case "play-pause":
		return protocol.PlayPause(), arity(0)
	case "previous":
		return protocol.PreviousItem(), arity(0)
	case "next":
		return protocol.NextItem(), arity(0)
	case "volume-up":
		return protocol.VolumeUp(), arity(0)
	case "volume-down":
		return protocol.VolumeDown(), arity(0)
	case "mute":
		return protocol.ToggleMute(), arity(0)
	case "eject":
		return protocol.Eject(), arity(0)
	case "debug-pipeline":
		return protocol.DebugPipeline(), arity(0)

	case "nth-item":
		if err := arity(1); err != nil {
			return protocol.Command{}, err
		}
		index, err := strconv.Atoi(rest[0])
		if err != nil || index < 0 {
			return protocol.Command{}, consoleerrors.InvalidInput("index", rest[0])
		}
		return protocol.NthItem(index), nil

	case "set-channel":
		if err := arity(1); err != nil {
			return protocol.Command{}, err
		}
		return protocol.SetChannel(rest[0]), nil

	case "play-url":
		if err := arity(1); err != nil {
			return protocol.Command{}, err
		}
		return protocol.PlayURL(rest[0]), nil

	case "set-volume":
		if err := arity(1); err != nil {
			return protocol.Command{}, err
		}
		volume, err := strconv.Atoi(rest[0])
		if err != nil || volume < protocol.VolumeMin || volume > protocol.VolumeMax {
			return protocol.Command{}, consoleerrors.InvalidInput("volume", rest[0])
		}
		return protocol.SetVolume(volume), nil

	case "seek-to", "seek-forwards", "seek-backwards":
		if err := arity(1); err != nil {
			return protocol.Command{}, err
		}
		duration, err := time.ParseDuration(rest[0])
		if err != nil || duration < 0 {
			return protocol.Command{}, consoleerrors.InvalidInput("duration", rest[0])
		}
		switch name {
		case "seek-to":
			return protocol.SeekTo(duration), nil
		case "seek-forwards":
			return protocol.SeekForwards(duration), nil
		default:
			return protocol.SeekBackwards(duration), nil
		}

	default:
		return protocol.Command{}, consoleerrors.InvalidInput("command", name)
	}
}

func deliver(ctx context.Context, url string, command protocol.Command) error {
	dialer := session.WebsocketDialer{Subprotocol: protocol.APIVersion}
	conn, err := dialer.DialContext(ctx, url)
	if err != nil {
		return consoleerrors.ConnectionFailed(url, err)
	}
	defer conn.Close()

	data, err := command.Encode()
	if err != nil {
		return err
	}
	if err := conn.Write(data); err != nil {
		return consoleerrors.ConnectionLost(err)
	}
	return nil
}
