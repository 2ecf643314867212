package transcript

import "strings"

// Segment is one recognized utterance with timing in seconds.
type Segment struct {
	Start      float64
	End        float64
	Text       string
	SourceFile string
}

// Valid reports whether a segment is usable for output generation.
// A segment is valid when its end lies after its start and the trimmed
// text is non-empty. Every emitter and the merge step rely on this
// single predicate; raw gateway output is never assumed pre-filtered.
func (s Segment) Valid() bool {
	return s.End > s.Start && strings.TrimSpace(s.Text) != ""
}

// WithSource returns a copy of the segment tagged with a source label.
func (s Segment) WithSource(name string) Segment {
	s.SourceFile = name
	return s
}

// CountValid returns the number of valid segments in the slice.
func CountValid(segments []Segment) int {
	n := 0
	for _, seg := range segments {
		if seg.Valid() {
			n++
		}
	}
	return n
}
