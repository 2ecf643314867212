package format

import (
	"strings"
	"testing"

	"github.com/editkit/cutscribe/internal/transcript"
)

func TestEDLEmpty(t *testing.T) {
	got := EDL(nil, "My Cut")
	want := "TITLE: My Cut\nFCM: NON-DROP FRAME\n\n"
	if got != want {
		t.Errorf("EDL(nil) = %q, want header only %q", got, want)
	}
}

func TestEDLDefaultTitle(t *testing.T) {
	got := EDL(nil, "")
	if !strings.HasPrefix(got, "TITLE: Audio Transcription\n") {
		t.Errorf("EDL default title missing: %q", got)
	}
}

func TestEDLEntry(t *testing.T) {
	segments := []transcript.Segment{
		{Start: 1.5, End: 3.25, Text: "hello", SourceFile: "clip.mp4"},
	}

	got := EDL(segments, "Audio Transcription")
	want := "TITLE: Audio Transcription\nFCM: NON-DROP FRAME\n\n" +
		"001  AX       AA/V  C        00:00:01:12 00:00:03:06\n" +
		"* FROM CLIP NAME: clip.mp4\n\n"
	if got != want {
		t.Errorf("EDL() = %q, want %q", got, want)
	}
}

func TestEDLTextLabelFallback(t *testing.T) {
	segments := []transcript.Segment{
		{Start: 0, End: 1, Text: "  first words  "},
	}

	got := EDL(segments, "")
	if !strings.Contains(got, "* FROM CLIP NAME: first words\n") {
		t.Errorf("EDL without source file should label with text: %q", got)
	}
}

func TestEDLSkipsInvalidAndRenumbers(t *testing.T) {
	segments := []transcript.Segment{
		{Start: 0, End: 1, Text: "one"},
		{Start: 5, End: 5, Text: "broken"},
		{Start: 2, End: 3, Text: "two"},
	}

	got := EDL(segments, "")
	if strings.Contains(got, "broken") {
		t.Errorf("invalid segment leaked into output: %q", got)
	}
	if !strings.Contains(got, "001  AX") || !strings.Contains(got, "002  AX") {
		t.Errorf("entries not renumbered contiguously: %q", got)
	}
	if strings.Contains(got, "003  AX") {
		t.Errorf("sparse numbering detected: %q", got)
	}
}
