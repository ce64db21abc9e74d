package screen

import (
	"NaviCode/stream"
	"fmt"
	"strings"
)

const (
	EmptyFileMarker = "[EMPTY FILE]"
	FillerMarker    = "~"
)

func EndOfFileBanner(totalLines int) string {
	return fmt.Sprintf("[END OF FILE - %d lines total]", totalLines)
}

// Render lays out a window of lines with aligned line numbers. When the
// window reaches end of file, filler rows pad the screen up to pageSize and
// the end-of-file banner closes it, so a short final page is distinguishable
// from a window that is simply not full.
func Render(lines []stream.Line, totalLines int, pageSize int) string {
	if len(lines) == 0 {
		return EmptyFileMarker
	}

	last := lines[len(lines)-1].Number
	width := max(digitWidth(totalLines), digitWidth(last))

	var builder strings.Builder
	for _, line := range lines {
		fmt.Fprintf(&builder, "%-*d | %s\n", width, line.Number, line.Content)
	}
	if last >= totalLines {
		for row := len(lines); row < pageSize; row++ {
			builder.WriteString(FillerMarker + "\n")
		}
		builder.WriteString(EndOfFileBanner(totalLines))
		return builder.String()
	}
	return strings.TrimSuffix(builder.String(), "\n")
}

func digitWidth(value int) int {
	return len(fmt.Sprintf("%d", value))
}
