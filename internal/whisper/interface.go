package whisper

import (
	"context"

	"github.com/editkit/cutscribe/internal/transcript"
)

// Result is the raw outcome of transcribing one media file. Segments
// are returned exactly as recognized; validity filtering is the
// consumer's job.
type Result struct {
	Segments []transcript.Segment
	Text     string
}

// Gateway defines the transcription boundary. Implementations must be
// safe for concurrent calls up to the batch worker pool size.
type Gateway interface {
	Transcribe(ctx context.Context, videoPath string) (*Result, error)

	// SharedAccelerator reports whether concurrent calls contend for
	// a single GPU. The batch runner throttles its pool when true.
	SharedAccelerator() bool
}
