package podcasts

import (
	"context"

	"github.com/mmcdole/gofeed"

	consoleerrors "github.com/rradio/console/errors"
	"github.com/rradio/console/protocol"
)

// Episode is one playable item of a fetched feed. Items without an enclosure
// are kept for display but cannot be streamed.
type Episode struct {
	Title       string
	Description string
	URL         string
}

// Playable reports whether the episode has something to stream.
func (e Episode) Playable() bool {
	return e.URL != ""
}

// PlayCommand builds the command that replaces the player's playlist with
// this single episode, titled after the channel.
func (e Episode) PlayCommand(channelTitle string) protocol.Command {
	title := e.Title
	if title == "" {
		title = channelTitle
	}
	return protocol.SetPlaylist(channelTitle, []protocol.PlaylistTrack{
		{Title: title, URL: e.URL},
	})
}

// Channel is a fetched podcast feed.
type Channel struct {
	Title    string
	Episodes []Episode
}

// Fetch retrieves and parses an RSS/Atom feed.
func Fetch(ctx context.Context, url string) (*Channel, error) {
	parser := gofeed.NewParser()
	feed, err := parser.ParseURLWithContext(url, ctx)
	if err != nil {
		return nil, consoleerrors.FeedFetchFailed(url, err)
	}
	return channelFromFeed(feed), nil
}

// Parse parses feed XML that has already been fetched.
func Parse(data string) (*Channel, error) {
	feed, err := gofeed.NewParser().ParseString(data)
	if err != nil {
		return nil, consoleerrors.Wrap(err, consoleerrors.ErrCodeFeedInvalid, "failed to parse feed")
	}
	return channelFromFeed(feed), nil
}

func channelFromFeed(feed *gofeed.Feed) *Channel {
	channel := &Channel{Title: feed.Title}
	for _, item := range feed.Items {
		episode := Episode{
			Title:       item.Title,
			Description: item.Description,
		}
		for _, enclosure := range item.Enclosures {
			if enclosure.URL != "" {
				episode.URL = enclosure.URL
				break
			}
		}
		channel.Episodes = append(channel.Episodes, episode)
	}
	return channel
}
