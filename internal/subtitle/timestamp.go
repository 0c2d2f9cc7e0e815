// Package subtitle accumulates timed word and sentence boundaries from a
// synthesis stream and renders them as SRT-style cue blocks.
package subtitle

import (
	"fmt"
	"math"
	"strings"
)

// FormatTimestamp renders an offset in 100-nanosecond ticks as a subtitle
// timecode, HH:MM:SS.mmm.
func FormatTimestamp(ticks uint64) string {
	hours := ticks / 10_000_000 / 3600
	minutes := (ticks / 10_000_000 / 60) % 60
	seconds := math.Mod(float64(ticks)/10_000_000, 60)
	return fmt.Sprintf("%02d:%02d:%06.3f", hours, minutes, seconds)
}

// formatCue renders one cue block: index line, timecode range line, text,
// and the trailing blank line that separates blocks.
func formatCue(index int, start, end uint64, text string) string {
	return fmt.Sprintf("%d\n%s --> %s\n%s\n\n",
		index, FormatTimestamp(start), FormatTimestamp(end), strings.TrimSpace(text))
}
