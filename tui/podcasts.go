package tui

import (
	"fmt"
	"strings"
)

func (m *Model) renderPodcasts() string {
	var b strings.Builder

	if m.feedsFocused || m.channel == nil {
		b.WriteString(m.renderFeedList())
	} else {
		b.WriteString(m.renderEpisodeList())
	}

	if m.urlInputOpen {
		b.WriteString("\n")
		b.WriteString(m.urlInput.View())
		b.WriteString("\n")
	}
	if m.feedStatus != "" {
		b.WriteString("\n")
		b.WriteString(m.theme.Muted.Render(m.feedStatus))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.feedsFocused {
		b.WriteString(m.theme.Muted.Render("enter open · a add · d delete · tab view · q quit"))
	} else {
		b.WriteString(m.theme.Muted.Render("enter play · esc back · tab view · q quit"))
	}
	return b.String()
}

func (m *Model) renderFeedList() string {
	var b strings.Builder
	b.WriteString(m.theme.Label.Render("Podcasts"))
	b.WriteString("\n\n")

	if len(m.feeds) == 0 {
		b.WriteString(m.theme.Muted.Render("No podcasts saved. Press 'a' to add a feed URL."))
		b.WriteString("\n")
		return b.String()
	}

	for i, feed := range m.feeds {
		title := feed.Title
		if title == "" {
			title = feed.URL
		}
		style := m.theme.Value
		if i == m.feedCursor {
			style = m.theme.Selected
		}
		b.WriteString("  ")
		b.WriteString(style.Render(title))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderEpisodeList() string {
	var b strings.Builder
	b.WriteString(m.theme.Label.Render(m.channel.Title))
	b.WriteString("\n\n")

	if len(m.channel.Episodes) == 0 {
		b.WriteString(m.theme.Muted.Render("Feed has no episodes."))
		b.WriteString("\n")
		return b.String()
	}

	for i, episode := range m.channel.Episodes {
		line := fmt.Sprintf("%3d. %s", i+1, episode.Title)
		style := m.theme.Value
		if !episode.Playable() {
			style = m.theme.Muted
		}
		if i == m.episodeCursor {
			style = m.theme.Selected
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
