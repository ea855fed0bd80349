package youtube

import (
	"fmt"
	"strings"
)

// FormatSRT serializes captions to SubRip format: a 1-based index line, a
// timing line, the caption text, and a blank separator. Original caption
// ordering and timing are preserved.
func FormatSRT(captions []Caption) string {
	var sb strings.Builder

	for i, caption := range captions {
		end := caption.Start + caption.Duration
		sb.WriteString(fmt.Sprintf("%d\n", i+1))
		sb.WriteString(fmt.Sprintf("%s --> %s\n", srtTimestamp(caption.Start), srtTimestamp(end)))
		sb.WriteString(caption.Text)
		sb.WriteString("\n\n")
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

// srtTimestamp renders seconds as HH:MM:SS,mmm.
func srtTimestamp(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}

	millis := int64(seconds*1000 + 0.5)
	hours := millis / 3600000
	millis -= hours * 3600000
	minutes := millis / 60000
	millis -= minutes * 60000
	secs := millis / 1000
	millis -= secs * 1000

	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, secs, millis)
}
