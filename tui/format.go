package tui

import (
	"fmt"
	"time"
)

// formatDuration renders mm:ss for track positions and durations.
func formatDuration(d time.Duration) string {
	secs := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// formatPosition renders "position - duration", or a placeholder for
// infinite streams where neither is known.
func formatPosition(position, duration *time.Duration) string {
	if position == nil || duration == nil {
		return "Infinite Stream"
	}
	return formatDuration(*position) + " - " + formatDuration(*duration)
}
