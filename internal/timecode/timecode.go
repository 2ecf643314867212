// Package timecode converts floating-point seconds into the two
// fixed-width text timecodes used by the generated artifacts. Both
// encodings truncate sub-unit precision rather than round, so repeated
// generation over the same input is byte-identical.
package timecode

import (
	"fmt"
	"math"
)

// FrameRate is the fixed frame rate assumed by the EDL timecode.
const FrameRate = 24

// EDL renders seconds as an editing timecode HH:MM:SS:FF at 24 fps.
// The frame field is truncated and clamped to 23 so rounding can never
// produce an illegal frame count.
func EDL(seconds float64) string {
	hours := int(seconds / 3600)
	minutes := int(math.Mod(seconds, 3600) / 60)
	secs := int(math.Mod(seconds, 60))
	frames := int(math.Mod(seconds, 1) * FrameRate)
	if frames > FrameRate-1 {
		frames = FrameRate - 1
	}
	return fmt.Sprintf("%02d:%02d:%02d:%02d", hours, minutes, secs, frames)
}

// SRT renders seconds as a subtitle timestamp HH:MM:SS,mmm. The comma
// separator follows the SubRip convention; milliseconds are truncated.
func SRT(seconds float64) string {
	hours := int(seconds / 3600)
	minutes := int(math.Mod(seconds, 3600) / 60)
	secs := int(math.Mod(seconds, 60))
	millis := int(math.Mod(seconds, 1) * 1000)
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, secs, millis)
}
