// Package tui is the render layer: a bubbletea program showing the player,
// podcasts and debug views. It consumes session snapshots and emits commands;
// it never mutates the player state. Re-rendering of the station and
// track-tag subtrees is gated on wrapper identity, not content comparison.
package tui

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/rradio/console/podcasts"
	"github.com/rradio/console/protocol"
	"github.com/rradio/console/session"
)

// View selects which screen is shown.
type View int

const (
	ViewPlayer View = iota
	ViewPodcasts
	ViewDebug
)

func (v View) String() string {
	switch v {
	case ViewPlayer:
		return "Player"
	case ViewPodcasts:
		return "Podcasts"
	case ViewDebug:
		return "Debug"
	default:
		return "Unknown"
	}
}

// ViewFromName maps a config value to a view, defaulting to the player.
func ViewFromName(name string) View {
	switch name {
	case "podcasts":
		return ViewPodcasts
	case "debug":
		return ViewDebug
	default:
		return ViewPlayer
	}
}

// StateMsg delivers a session snapshot into the bubbletea loop. The session's
// OnChange hook forwards snapshots with Program.Send.
type StateMsg session.Snapshot

type feedFetchedMsg struct {
	url     string
	channel *podcasts.Channel
	err     error
}

const seekStep = 10 * time.Second
const feedFetchTimeout = 15 * time.Second

// Options configures the TUI model.
type Options struct {
	Session     *session.Session
	Store       *podcasts.Store
	Logger      *logrus.Entry
	InitialView View
}

// Model is the root bubbletea model.
type Model struct {
	session *session.Session
	store   *podcasts.Store
	logger  *logrus.Entry
	theme   Theme
	keys    keyMap

	view   View
	width  int
	height int

	snapshot session.Snapshot

	// Player view.
	trackCursor     int
	stationView     subtreeCache[protocol.CurrentStation]
	tagsView        subtreeCache[*protocol.TrackTags]
	volumeInput     textinput.Model
	volumeInputOpen bool
	inputWarning    string

	// Podcasts view.
	feeds         []podcasts.Podcast
	feedCursor    int
	feedsFocused  bool
	channel       *podcasts.Channel
	channelURL    string
	episodeCursor int
	urlInput      textinput.Model
	urlInputOpen  bool
	feedStatus    string
}

// New builds the model. The session must already be constructed; its OnChange
// hook should forward snapshots as StateMsg via Program.Send.
func New(opts Options) *Model {
	volumeInput := textinput.New()
	volumeInput.Prompt = "Volume: "
	volumeInput.CharLimit = 3
	volumeInput.Width = 6

	urlInput := textinput.New()
	urlInput.Prompt = "Podcast URL: "
	urlInput.Width = 60

	m := &Model{
		session:      opts.Session,
		store:        opts.Store,
		logger:       opts.Logger,
		theme:        DefaultTheme(),
		keys:         defaultKeyMap(),
		view:         opts.InitialView,
		feedsFocused: true,
		volumeInput:  volumeInput,
		urlInput:     urlInput,
	}
	if m.session != nil {
		m.snapshot = m.session.Snapshot()
	}

	if m.store != nil {
		feeds, err := m.store.Load()
		if err != nil {
			m.logger.WithError(err).Error("failed to load podcast list")
			m.feedStatus = err.Error()
		}
		m.feeds = feeds
	}

	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case StateMsg:
		m.snapshot = session.Snapshot(msg)
		m.clampTrackCursor()
		return m, nil

	case feedFetchedMsg:
		return m.handleFeedFetched(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.volumeInputOpen {
		return m.handleVolumeInput(msg)
	}
	if m.urlInputOpen {
		return m.handleURLInput(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextView):
		m.view = (m.view + 1) % 3
		m.inputWarning = ""
		return m, nil
	}

	switch m.view {
	case ViewPlayer:
		return m.handlePlayerKey(msg)
	case ViewPodcasts:
		return m.handlePodcastsKey(msg)
	case ViewDebug:
		return m, nil
	}
	return m, nil
}

func (m *Model) handlePlayerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys
	switch {
	case key.Matches(msg, keys.PlayPause):
		m.send(protocol.PlayPause())
	case key.Matches(msg, keys.Previous):
		m.send(protocol.PreviousItem())
	case key.Matches(msg, keys.Next):
		m.send(protocol.NextItem())
	case key.Matches(msg, keys.VolumeUp):
		m.send(protocol.VolumeUp())
	case key.Matches(msg, keys.VolumeDown):
		m.send(protocol.VolumeDown())
	case key.Matches(msg, keys.Mute):
		m.send(protocol.ToggleMute())
	case key.Matches(msg, keys.SeekBack):
		m.send(protocol.SeekBackwards(seekStep))
	case key.Matches(msg, keys.SeekFwd):
		m.send(protocol.SeekForwards(seekStep))
	case key.Matches(msg, keys.SetVolume):
		m.volumeInputOpen = true
		m.inputWarning = ""
		m.volumeInput.SetValue("")
		return m, m.volumeInput.Focus()
	case key.Matches(msg, keys.Up):
		if m.trackCursor > 0 {
			m.trackCursor--
		}
	case key.Matches(msg, keys.Down):
		if m.trackCursor < m.trackCount()-1 {
			m.trackCursor++
		}
	case key.Matches(msg, keys.Select):
		if m.trackCount() > 0 {
			m.send(protocol.NthItem(m.trackCursor))
		}
	}
	return m, nil
}

// handleVolumeInput implements the malformed-input taxonomy: a value that
// does not parse is logged and discarded locally, never sent.
func (m *Model) handleVolumeInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		value := strings.TrimSpace(m.volumeInput.Value())
		m.volumeInputOpen = false
		m.volumeInput.Blur()

		volume, err := strconv.Atoi(value)
		if err != nil || volume < protocol.VolumeMin || volume > protocol.VolumeMax {
			m.logger.WithField("value", value).Warn("ignoring invalid volume input")
			m.inputWarning = "Invalid volume: " + value
			return m, nil
		}
		m.inputWarning = ""
		m.send(protocol.SetVolume(volume))
		return m, nil

	case "esc":
		m.volumeInputOpen = false
		m.volumeInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.volumeInput, cmd = m.volumeInput.Update(msg)
	return m, cmd
}

func (m *Model) handlePodcastsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys
	switch {
	case key.Matches(msg, keys.Add):
		m.urlInputOpen = true
		m.urlInput.SetValue("")
		return m, m.urlInput.Focus()

	case key.Matches(msg, keys.Back):
		m.feedsFocused = true

	case key.Matches(msg, keys.Up):
		if m.feedsFocused {
			if m.feedCursor > 0 {
				m.feedCursor--
			}
		} else if m.episodeCursor > 0 {
			m.episodeCursor--
		}

	case key.Matches(msg, keys.Down):
		if m.feedsFocused {
			if m.feedCursor < len(m.feeds)-1 {
				m.feedCursor++
			}
		} else if m.channel != nil && m.episodeCursor < len(m.channel.Episodes)-1 {
			m.episodeCursor++
		}

	case key.Matches(msg, keys.Delete):
		if m.feedsFocused && m.feedCursor < len(m.feeds) {
			return m.removeFeed(m.feeds[m.feedCursor].URL)
		}

	case key.Matches(msg, keys.Select):
		if m.feedsFocused {
			if m.feedCursor < len(m.feeds) {
				feed := m.feeds[m.feedCursor]
				m.feedStatus = "Fetching " + feed.URL + "..."
				return m, fetchFeedCmd(feed.URL)
			}
		} else if m.channel != nil && m.episodeCursor < len(m.channel.Episodes) {
			episode := m.channel.Episodes[m.episodeCursor]
			if episode.Playable() {
				m.send(episode.PlayCommand(m.channel.Title))
			}
		}
	}
	return m, nil
}

func (m *Model) handleURLInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		url := strings.TrimSpace(m.urlInput.Value())
		m.urlInputOpen = false
		m.urlInput.Blur()
		if url == "" {
			return m, nil
		}
		m.feedStatus = "Fetching " + url + "..."
		return m, fetchFeedCmd(url)

	case "esc":
		m.urlInputOpen = false
		m.urlInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.urlInput, cmd = m.urlInput.Update(msg)
	return m, cmd
}

func (m *Model) handleFeedFetched(msg feedFetchedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.logger.WithError(msg.err).WithField("url", msg.url).Error("failed to fetch podcast feed")
		m.feedStatus = msg.err.Error()
		return m, nil
	}

	m.channel = msg.channel
	m.channelURL = msg.url
	m.episodeCursor = 0
	m.feedsFocused = false
	m.feedStatus = ""

	// A successfully fetched feed joins the saved list; known URLs are
	// left alone.
	if m.store != nil {
		feeds, err := m.store.Add(podcasts.Podcast{Title: msg.channel.Title, URL: msg.url})
		if err != nil {
			m.logger.WithError(err).Error("failed to save podcast list")
			m.feedStatus = err.Error()
			return m, nil
		}
		m.feeds = feeds
	}
	return m, nil
}

func (m *Model) removeFeed(url string) (tea.Model, tea.Cmd) {
	feeds, err := m.store.Remove(url)
	if err != nil {
		m.logger.WithError(err).Error("failed to save podcast list")
		m.feedStatus = err.Error()
		return m, nil
	}
	m.feeds = feeds
	if m.feedCursor >= len(m.feeds) && m.feedCursor > 0 {
		m.feedCursor--
	}
	if m.channelURL == url {
		m.channel = nil
		m.feedsFocused = true
	}
	return m, nil
}

func fetchFeedCmd(url string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), feedFetchTimeout)
		defer cancel()
		channel, err := podcasts.Fetch(ctx, url)
		return feedFetchedMsg{url: url, channel: channel, err: err}
	}
}

func (m *Model) send(cmd protocol.Command) {
	if m.session != nil {
		m.session.Send(cmd)
	}
}

func (m *Model) trackCount() int {
	station := m.snapshot.State.CurrentStation.Get()
	if station.Kind != protocol.PlayingStation {
		return 0
	}
	return len(station.Tracks)
}

func (m *Model) clampTrackCursor() {
	if count := m.trackCount(); m.trackCursor >= count {
		if count > 0 {
			m.trackCursor = count - 1
		} else {
			m.trackCursor = 0
		}
	}
}

func (m *Model) View() string {
	var b strings.Builder

	if banner := m.snapshot.Connection.Banner(); banner != "" {
		style := m.theme.Banner
		if m.snapshot.Connection.Status == session.StatusErrored {
			style = m.theme.BannerError
		}
		b.WriteString(style.Render(banner))
		b.WriteString("\n")
	}

	b.WriteString(m.renderNav())
	b.WriteString("\n\n")

	switch m.view {
	case ViewPlayer:
		b.WriteString(m.renderPlayer())
	case ViewPodcasts:
		b.WriteString(m.renderPodcasts())
	case ViewDebug:
		b.WriteString(m.renderDebug())
	}

	return b.String()
}

func (m *Model) renderNav() string {
	var parts []string
	for _, view := range []View{ViewPlayer, ViewPodcasts, ViewDebug} {
		style := m.theme.Nav
		if view == m.view {
			style = m.theme.NavActive
		}
		parts = append(parts, style.Render(view.String()))
	}
	return strings.Join(parts, " ")
}
