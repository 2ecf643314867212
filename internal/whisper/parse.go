package whisper

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/editkit/cutscribe/internal/transcript"
)

// whisperOutput mirrors the JSON document whisper.cpp writes with -oj.
// Offsets are milliseconds from the start of the audio.
type whisperOutput struct {
	Transcription []struct {
		Offsets struct {
			From int64 `json:"from"`
			To   int64 `json:"to"`
		} `json:"offsets"`
		Text string `json:"text"`
	} `json:"transcription"`
}

// parseOutput converts whisper.cpp JSON into raw segments. Segments
// are passed through as-is, including any the model emitted with
// empty text or inverted timing.
func parseOutput(data []byte) (*Result, error) {
	var out whisperOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("unmarshal transcription: %w", err)
	}

	segments := make([]transcript.Segment, 0, len(out.Transcription))
	var text []string
	for _, entry := range out.Transcription {
		segments = append(segments, transcript.Segment{
			Start: float64(entry.Offsets.From) / 1000,
			End:   float64(entry.Offsets.To) / 1000,
			Text:  entry.Text,
		})
		if trimmed := strings.TrimSpace(entry.Text); trimmed != "" {
			text = append(text, trimmed)
		}
	}

	return &Result{
		Segments: segments,
		Text:     strings.Join(text, " "),
	}, nil
}
