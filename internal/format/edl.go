// Package format serializes validated transcription segments into the
// three downstream editorial formats: CMX-style edit decision lists,
// SubRip captions, and MLT project XML. All emitters skip invalid
// segments silently; one malformed segment never aborts a document.
package format

import (
	"fmt"
	"strings"

	"github.com/editkit/cutscribe/internal/timecode"
	"github.com/editkit/cutscribe/internal/transcript"
)

const edlHeader = "TITLE: %s\nFCM: NON-DROP FRAME\n\n"

// DefaultEDLTitle is used when the caller provides no title.
const DefaultEDLTitle = "Audio Transcription"

// EDL generates an edit decision list from the segments in input order.
// Entry numbers run contiguously from 001 over valid segments only, so
// dropped segments never leave gaps in the numbering. Callers wanting a
// time-ordered list must sort before calling.
func EDL(segments []transcript.Segment, title string) string {
	if title == "" {
		title = DefaultEDLTitle
	}

	var b strings.Builder
	fmt.Fprintf(&b, edlHeader, title)

	number := 1
	for _, seg := range segments {
		if !seg.Valid() {
			continue
		}

		label := seg.SourceFile
		if label == "" {
			label = strings.TrimSpace(seg.Text)
		}

		fmt.Fprintf(&b, "%03d  AX       AA/V  C        %s %s\n",
			number, timecode.EDL(seg.Start), timecode.EDL(seg.End))
		fmt.Fprintf(&b, "* FROM CLIP NAME: %s\n\n", label)
		number++
	}

	return b.String()
}
