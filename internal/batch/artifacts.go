package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/editkit/cutscribe/internal/format"
	"github.com/editkit/cutscribe/internal/transcript"
)

// Combined artifact names written into the batch root.
const (
	combinedEDLName = "combined.edl"
	combinedSRTName = "combined.srt"
	combinedMLTName = "combined.mlt"
)

// writeFileArtifacts writes the per-file EDL/SRT beside the source
// video using its base name. A per-file MLT is never generated; MLT
// exists only as the combined multi-file artifact. Write failures are
// recorded as warnings, not file failures: the transcription itself
// succeeded and its segments still feed the combined outputs.
func (r *Runner) writeFileArtifacts(videoPath string, segments []transcript.Segment, opts transcript.OutputOptions, st *batchState) {
	base := strings.TrimSuffix(videoPath, filepath.Ext(videoPath))

	if opts.GenerateEDL {
		r.writeArtifact(base+".edl", format.EDL(segments, r.edlTitle), st)
	}
	if opts.GenerateSRT {
		r.writeArtifact(base+".srt", format.SRT(segments, false), st)
	}
}

// writeCombined writes the cross-file artifacts into the batch root.
func (r *Runner) writeCombined(root string, accum *transcript.Batch, opts transcript.OutputOptions, st *batchState) {
	merged := accum.Flatten()

	if opts.GenerateEDL {
		r.writeArtifact(filepath.Join(root, combinedEDLName), format.EDL(merged, r.edlTitle), st)
	}
	if opts.GenerateSRT {
		r.writeArtifact(filepath.Join(root, combinedSRTName), format.SRT(merged, true), st)
	}
	if opts.GenerateMLT {
		r.writeArtifact(filepath.Join(root, combinedMLTName), format.MLT(accum), st)
	}
}

func (r *Runner) writeArtifact(path, content string, st *batchState) {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		st.warnings = append(st.warnings, fmt.Sprintf("write %s: %v", path, err))
		return
	}
	st.artifacts = append(st.artifacts, path)
}
