package whisper

import "testing"

func TestParseOutput(t *testing.T) {
	data := []byte(`{
		"transcription": [
			{"offsets": {"from": 0, "to": 1500}, "text": " hello"},
			{"offsets": {"from": 1500, "to": 1500}, "text": ""},
			{"offsets": {"from": 3250, "to": 5000}, "text": " world"}
		]
	}`)

	result, err := parseOutput(data)
	if err != nil {
		t.Fatalf("parseOutput() error = %v", err)
	}

	// Raw segments pass through unfiltered, invalid ones included.
	if len(result.Segments) != 3 {
		t.Fatalf("got %d segments, want 3", len(result.Segments))
	}
	if result.Segments[0].Start != 0 || result.Segments[0].End != 1.5 {
		t.Errorf("segment 0 timing = [%v, %v], want [0, 1.5]",
			result.Segments[0].Start, result.Segments[0].End)
	}
	if result.Segments[2].Start != 3.25 || result.Segments[2].End != 5 {
		t.Errorf("segment 2 timing = [%v, %v], want [3.25, 5]",
			result.Segments[2].Start, result.Segments[2].End)
	}
	if result.Segments[0].Text != " hello" {
		t.Errorf("segment text = %q, want raw %q", result.Segments[0].Text, " hello")
	}
	if result.Text != "hello world" {
		t.Errorf("full text = %q, want %q", result.Text, "hello world")
	}
}

func TestParseOutputInvalidJSON(t *testing.T) {
	if _, err := parseOutput([]byte("not json")); err == nil {
		t.Error("parseOutput() should fail on malformed JSON")
	}
}

func TestParseOutputEmpty(t *testing.T) {
	result, err := parseOutput([]byte(`{"transcription": []}`))
	if err != nil {
		t.Fatalf("parseOutput() error = %v", err)
	}
	if len(result.Segments) != 0 || result.Text != "" {
		t.Errorf("empty transcription should yield no segments, got %+v", result)
	}
}
