package transcript

// Batch accumulates segments per source file while preserving the order
// in which files were first added. Iteration order matters: the MLT
// emitter assigns producer ids in first-seen order, and the combined
// EDL/SRT artifacts list files in the same order.
type Batch struct {
	order  []string
	byFile map[string][]Segment
}

// NewBatch creates an empty segment accumulator.
func NewBatch() *Batch {
	return &Batch{byFile: make(map[string][]Segment)}
}

// Add appends segments under the given file path, registering the path
// on first use.
func (b *Batch) Add(path string, segments []Segment) {
	if _, ok := b.byFile[path]; !ok {
		b.order = append(b.order, path)
	}
	b.byFile[path] = append(b.byFile[path], segments...)
}

// Files returns the file paths in first-seen order.
func (b *Batch) Files() []string {
	return b.order
}

// Segments returns the segments recorded for one file.
func (b *Batch) Segments(path string) []Segment {
	return b.byFile[path]
}

// Len returns the number of distinct files in the batch.
func (b *Batch) Len() int {
	return len(b.order)
}

// Flatten returns all segments in file order. Within a file the
// gateway's segment order is kept.
func (b *Batch) Flatten() []Segment {
	var out []Segment
	for _, path := range b.order {
		for _, seg := range b.byFile[path] {
			out = append(out, seg)
		}
	}
	return out
}
