package whisper

import (
	"context"
	"fmt"
	"path/filepath"
)

// extractAudio extracts audio from a video file and converts it to
// 16kHz mono WAV, the format whisper.cpp expects.
func (g *implGateway) extractAudio(ctx context.Context, videoPath, tempDir string) (string, error) {
	audioPath := filepath.Join(tempDir, "audio-16k-mono.wav")

	g.logger.Info(ctx, "Extracting audio: %s", videoPath)

	// FFmpeg arguments for audio extraction
	// -vn: No video (audio only)
	// -ar 16000: Sample rate 16kHz (optimal for Whisper)
	// -ac 1: Mono channel
	// -c:a pcm_s16le: PCM 16-bit little-endian format
	args := []string{
		"-hide_banner",
		"-nostdin",
		"-y",
		"-i", videoPath,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-threads", "0",
		audioPath,
	}

	if _, err := g.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return "", fmt.Errorf("ffmpeg extract audio: %w", err)
	}

	g.logger.Debug(ctx, "Audio extracted: %s", audioPath)
	return audioPath, nil
}
