package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rradio/console/cli"
	"github.com/rradio/console/podcasts"
)

// NewPodcastsCmd creates the `podcasts` command group for managing the saved
// podcast list outside the TUI.
func NewPodcastsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "podcasts",
		Short: "Manage the saved podcast feeds",
	}
	cmd.AddCommand(newPodcastsListCmd())
	cmd.AddCommand(newPodcastsAddCmd())
	cmd.AddCommand(newPodcastsRemoveCmd())
	return cmd
}

func newPodcastsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the saved podcast feeds",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := podcasts.DefaultStore()
			if err != nil {
				return err
			}
			feeds, err := store.Load()
			if err != nil {
				return err
			}

			if cli.GetOptions(cmd).JSONOutput {
				data, err := json.MarshalIndent(feeds, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(data))
				return nil
			}

			if len(feeds) == 0 {
				fmt.Println("No podcasts saved.")
				return nil
			}
			for _, feed := range feeds {
				fmt.Printf("%s\n    %s\n", feed.Title, feed.URL)
			}
			return nil
		},
	}
}

func newPodcastsAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <url>",
		Short: "Fetch a feed and add it to the saved list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := cli.GetOptions(cmd)
			handler := cli.NewErrorHandler(opts.Verbose)
			url := args[0]

			timeout, _ := cmd.Flags().GetDuration("timeout")
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			channel, err := podcasts.Fetch(ctx, url)
			if err != nil {
				return handler.Handle(err)
			}

			store, err := podcasts.DefaultStore()
			if err != nil {
				return err
			}
			if _, err := store.Add(podcasts.Podcast{Title: channel.Title, URL: url}); err != nil {
				return err
			}
			fmt.Printf("added %s (%d episodes)\n", channel.Title, len(channel.Episodes))
			return nil
		},
	}
	cmd.Flags().Duration("timeout", 15*time.Second, "How long to wait for the feed")
	return cmd
}

func newPodcastsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <url>",
		Short: "Remove a feed from the saved list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := podcasts.DefaultStore()
			if err != nil {
				return err
			}
			if _, err := store.Remove(args[0]); err != nil {
				return err
			}
			fmt.Printf("removed %s\n", args[0])
			return nil
		},
	}
}
