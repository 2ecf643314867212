package transcript

// OutputOptions selects which artifacts a batch run generates.
type OutputOptions struct {
	GenerateEDL       bool
	GenerateSRT       bool
	GenerateMLT       bool
	ForceRetranscribe bool
}

// WantsAny reports whether at least one output format is requested.
func (o OutputOptions) WantsAny() bool {
	return o.GenerateEDL || o.GenerateSRT || o.GenerateMLT
}

// FileOutcome is the immutable result of processing one input file.
type FileOutcome struct {
	Path     string
	Success  bool
	Segments []Segment
	Err      error
}
