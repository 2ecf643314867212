package format

import (
	"fmt"
	"strings"

	"github.com/editkit/cutscribe/internal/timecode"
	"github.com/editkit/cutscribe/internal/transcript"
)

// SRT generates a SubRip caption document from the segments in input
// order. Caption indexes run contiguously from 1 over valid segments
// only. With includeSource set, each caption is prefixed with its
// segment's [source file] so provenance survives multi-file merges.
func SRT(segments []transcript.Segment, includeSource bool) string {
	var b strings.Builder

	number := 1
	for _, seg := range segments {
		if !seg.Valid() {
			continue
		}

		text := strings.TrimSpace(seg.Text)
		if includeSource && seg.SourceFile != "" {
			text = fmt.Sprintf("[%s] %s", seg.SourceFile, text)
		}

		fmt.Fprintf(&b, "%d\n%s --> %s\n%s\n\n",
			number, timecode.SRT(seg.Start), timecode.SRT(seg.End), text)
		number++
	}

	return b.String()
}
