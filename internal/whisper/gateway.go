package whisper

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Transcribe extracts the audio track from a video file, runs
// whisper.cpp over it, and returns the recognized segments.
func (g *implGateway) Transcribe(ctx context.Context, videoPath string) (*Result, error) {
	if _, err := os.Stat(videoPath); err != nil {
		return nil, fmt.Errorf("access input media: %w", err)
	}

	tempDir, err := os.MkdirTemp("", "cutscribe-*")
	if err != nil {
		return nil, fmt.Errorf("create temp workspace: %w", err)
	}
	defer g.cleanupTempDir(ctx, tempDir)

	audioPath, err := g.extractAudio(ctx, videoPath, tempDir)
	if err != nil {
		return nil, fmt.Errorf("extract audio: %w", err)
	}

	outputPrefix := filepath.Join(tempDir, "transcript")

	g.logger.Info(ctx, "Starting transcription with %d threads: %s", g.cfg.Threads, videoPath)

	// Whisper arguments
	// -m: Model path
	// -f: Input audio file
	// -oj: Output full JSON (per-segment millisecond offsets)
	// -l: Language, or "auto" for detection
	// -t: Number of threads
	// --output-file: Output file prefix
	args := []string{
		"-m", g.cfg.ModelPath,
		"-f", audioPath,
		"-oj",
		"-l", g.cfg.Language,
		"-t", strconv.Itoa(g.cfg.Threads),
		"--output-file", outputPrefix,
	}
	if g.cfg.Prompt != "" {
		args = append(args, "--prompt", g.cfg.Prompt)
	}
	if g.cfg.UseGPU {
		g.logger.Debug(ctx, "GPU acceleration enabled")
	}

	if _, err := g.executor.Execute(ctx, g.cfg.BinaryPath, args...); err != nil {
		return nil, fmt.Errorf("whisper transcribe: %w", err)
	}

	data, err := os.ReadFile(outputPrefix + ".json")
	if err != nil {
		return nil, fmt.Errorf("read whisper output: %w", err)
	}

	result, err := parseOutput(data)
	if err != nil {
		return nil, fmt.Errorf("parse whisper output: %w", err)
	}

	g.logger.Info(ctx, "Transcription completed: %s (%d segments)", videoPath, len(result.Segments))
	return result, nil
}

// cleanupTempDir removes the per-call workspace, logs warning if fails
func (g *implGateway) cleanupTempDir(ctx context.Context, dir string) {
	if err := os.RemoveAll(dir); err != nil {
		g.logger.Warn(ctx, "Failed to cleanup temp dir %s: %v", dir, err)
	} else {
		g.logger.Debug(ctx, "Cleaned up temp dir: %s", dir)
	}
}
