package transcript

import "testing"

func TestSegmentValid(t *testing.T) {
	tests := []struct {
		name    string
		segment Segment
		want    bool
	}{
		{"valid", Segment{Start: 1.5, End: 3.25, Text: "hello"}, true},
		{"end equals start", Segment{Start: 2, End: 2, Text: "hello"}, false},
		{"end before start", Segment{Start: 3, End: 1, Text: "hello"}, false},
		{"empty text", Segment{Start: 1, End: 2, Text: ""}, false},
		{"whitespace text", Segment{Start: 1, End: 2, Text: "  \t\n"}, false},
		{"zero start", Segment{Start: 0, End: 0.5, Text: "x"}, true},
		{"text with padding", Segment{Start: 1, End: 2, Text: "  ok  "}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.segment.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWithSource(t *testing.T) {
	seg := Segment{Start: 1, End: 2, Text: "hi"}
	tagged := seg.WithSource("clip.mp4")

	if tagged.SourceFile != "clip.mp4" {
		t.Errorf("SourceFile = %q, want clip.mp4", tagged.SourceFile)
	}
	if seg.SourceFile != "" {
		t.Error("WithSource mutated the original segment")
	}
}

func TestCountValid(t *testing.T) {
	segments := []Segment{
		{Start: 1, End: 2, Text: "a"},
		{Start: 2, End: 2, Text: "b"},
		{Start: 3, End: 4, Text: "c"},
	}
	if got := CountValid(segments); got != 2 {
		t.Errorf("CountValid() = %d, want 2", got)
	}
}

func TestBatchOrder(t *testing.T) {
	b := NewBatch()
	b.Add("/videos/b.mp4", []Segment{{Start: 0, End: 1, Text: "one"}})
	b.Add("/videos/a.mp4", []Segment{{Start: 0, End: 1, Text: "two"}})
	b.Add("/videos/b.mp4", []Segment{{Start: 1, End: 2, Text: "three"}})

	files := b.Files()
	if len(files) != 2 || files[0] != "/videos/b.mp4" || files[1] != "/videos/a.mp4" {
		t.Errorf("Files() = %v, want first-seen order [b, a]", files)
	}
	if b.Len() != 2 {
		t.Errorf("Len() = %d, want 2", b.Len())
	}
	if got := len(b.Segments("/videos/b.mp4")); got != 2 {
		t.Errorf("Segments(b) has %d entries, want 2", got)
	}

	flat := b.Flatten()
	want := []string{"one", "three", "two"}
	if len(flat) != len(want) {
		t.Fatalf("Flatten() has %d segments, want %d", len(flat), len(want))
	}
	for i, text := range want {
		if flat[i].Text != text {
			t.Errorf("Flatten()[%d].Text = %q, want %q", i, flat[i].Text, text)
		}
	}
}
