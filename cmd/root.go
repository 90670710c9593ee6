package cmd

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rradio/console/cli"
	"github.com/rradio/console/config"
	"github.com/rradio/console/logging"
	"github.com/rradio/console/podcasts"
	"github.com/rradio/console/session"
	"github.com/rradio/console/tui"
)

// NewRootCmd builds the root command. Running it with no subcommand launches
// the full-screen console.
func NewRootCmd() *cobra.Command {
	cmd := cli.NewStandardCommand(
		"rradio-console",
		"Terminal remote control for the rradio network media player",
	)
	cmd.Long = `rradio-console connects to a running rradio player over its websocket API
and mirrors the player state live: incoming diffs are merged into a local
copy of the state, and every keypress becomes a command sent back to the
player. Run it with no arguments for the interactive console, or use the
subcommands for scripting.`

	cmd.Flags().String("server", "", "Player address as host:port (overrides config)")
	cmd.Flags().String("view", "", "Startup view: player, podcasts or debug")

	cmd.RunE = runConsole

	cmd.AddCommand(NewVersionCmd())
	cmd.AddCommand(NewStatusCmd())
	cmd.AddCommand(NewSendCmd())
	cmd.AddCommand(NewPodcastsCmd())

	return cmd
}

func runConsole(cmd *cobra.Command, args []string) error {
	opts := cli.GetOptions(cmd)
	handler := cli.NewErrorHandler(opts.Verbose)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return handler.Handle(err)
	}

	logger := cli.GetLogger(cmd)
	if cfg.UI.LogLevel != "" {
		if level, err := logrus.ParseLevel(cfg.UI.LogLevel); err == nil {
			logging.SetLevel(level)
		}
	}

	store, err := podcasts.DefaultStore()
	if err != nil {
		logger.WithError(err).Warn("podcast storage unavailable")
		store = nil
	}

	// The program variable is assigned before the session goroutine starts,
	// so the OnChange hook always sees a live program.
	var program *tea.Program
	sess := session.New(session.Options{
		URL:            cfg.WebsocketURL(),
		ReconnectDelay: cfg.Server.ReconnectDelay,
		OnChange: func(snapshot session.Snapshot) {
			program.Send(tui.StateMsg(snapshot))
		},
	})

	if view, _ := cmd.Flags().GetString("view"); view != "" {
		cfg.UI.DefaultView = view
	}
	model := tui.New(tui.Options{
		Session:     sess,
		Store:       store,
		Logger:      logging.NewLogger("tui"),
		InitialView: tui.ViewFromName(cfg.UI.DefaultView),
	})

	program = tea.NewProgram(model, tea.WithAltScreen())

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sessionErr := make(chan error, 1)
	go func() {
		err := sess.Run(ctx)
		sessionErr <- err
		// A first-attempt dial failure is terminal; tear the console down
		// and report it. Orderly shutdown keeps the console open so the
		// banner stays visible.
		if err != nil && !errors.Is(err, context.Canceled) {
			program.Quit()
		}
	}()

	if _, err := program.Run(); err != nil {
		cancel()
		return handler.Handle(err)
	}
	cancel()

	if err := <-sessionErr; err != nil && !errors.Is(err, context.Canceled) {
		return handler.Handle(err)
	}
	return nil
}

// loadConfig loads the config honouring the --config and --server flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	opts := cli.GetOptions(cmd)
	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		return config.Config{}, err
	}
	if server, _ := cmd.Flags().GetString("server"); server != "" {
		cfg.Server.Host = server
	}
	return cfg, nil
}
