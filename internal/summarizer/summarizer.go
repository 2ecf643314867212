package summarizer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"google.golang.org/genai"
)

const summaryPrompt = `You are an assistant editor reviewing a transcribed video. Based on the
captions below, write a DETAILED content summary.

Requirements:
- Open with a one-sentence title describing the video's subject
- List ALL main topics and steps in order of appearance
- Explain each step, including caveats and anything worth flagging for the edit
- Use markdown: headings, bullet points, bold for key terms
- End with a "Notes for the editor" section when something needs attention

Captions:
---
%s
---`

// SummarizeAll reads all SRT files from srtDir and writes, per file, a
// clean transcript DOCX plus a Gemini Markdown summary (and its DOCX
// rendition) into destDir. Caption files stay where they are so the
// batch skip-if-transcribed policy keeps seeing them. Files whose
// summary already exists are skipped.
func (s *implSummarizer) SummarizeAll(ctx context.Context, srtDir, destDir string) error {
	srtFiles, err := s.discoverSRTFiles(srtDir)
	if err != nil {
		return fmt.Errorf("discover SRT files: %w", err)
	}

	if len(srtFiles) == 0 {
		s.logger.Info(ctx, "No SRT files found in %s", srtDir)
		return nil
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return fmt.Errorf("create dest dir: %w", err)
	}

	s.logger.Info(ctx, "Found %d SRT files to process", len(srtFiles))

	successCount := 0
	failCount := 0

	for i, srtPath := range srtFiles {
		videoName := strings.TrimSuffix(filepath.Base(srtPath), ".srt")
		mdPath := filepath.Join(destDir, videoName+".md")
		if _, err := os.Stat(mdPath); err == nil {
			s.logger.Debug(ctx, "Skipping %s: summary already exists", videoName)
			continue
		}

		s.logger.Info(ctx, "[%d/%d] Processing: %s", i+1, len(srtFiles), videoName)

		content, err := os.ReadFile(srtPath)
		if err != nil {
			s.logger.Error(ctx, "Failed to read %s: %v", srtPath, err)
			failCount++
			continue
		}

		transcriptPath := filepath.Join(destDir, videoName+"_transcript.docx")
		if err := srtToDocx(videoName, string(content), transcriptPath); err != nil {
			s.logger.Error(ctx, "Failed to write transcript %s: %v", transcriptPath, err)
			failCount++
			continue
		}

		if len(s.apiKeys) == 0 {
			s.logger.Debug(ctx, "No API keys configured, skipping summary for %s", videoName)
			successCount++
			continue
		}

		summary, err := s.callGemini(ctx, string(content))
		if err != nil {
			s.logger.Error(ctx, "Failed to summarize %s: %v", videoName, err)
			failCount++
			continue
		}

		md := fmt.Sprintf("# %s\n\n_%s_\n\n%s\n",
			videoName,
			time.Now().Format("2006-01-02 15:04"),
			strings.TrimSpace(summary),
		)

		if err := os.WriteFile(mdPath, []byte(md), 0644); err != nil {
			s.logger.Error(ctx, "Failed to write %s: %v", mdPath, err)
			failCount++
			continue
		}

		docxPath := filepath.Join(destDir, videoName+".docx")
		if err := markdownToDocx(videoName, summary, docxPath); err != nil {
			s.logger.Warn(ctx, "Failed to write %s: %v", docxPath, err)
		}

		s.logger.Info(ctx, "[DONE] %s -> %s", videoName, mdPath)
		successCount++
	}

	s.logger.Info(ctx, "Summary complete: %d success, %d failed", successCount, failCount)
	return nil
}

// callGemini sends the captions to Gemini and returns the summary text.
// Rotates API keys on 429 / quota errors.
func (s *implSummarizer) callGemini(ctx context.Context, captions string) (string, error) {
	prompt := fmt.Sprintf(summaryPrompt, captions)

	attempts := len(s.apiKeys)
	var lastErr error

	for range attempts {
		key := s.apiKeys[s.currentKey]

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			s.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				s.logger.Warn(ctx, "Key %d rate limited, rotating...", s.currentKey+1)
				s.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			return text, nil
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (s *implSummarizer) rotateKey() {
	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
}

func (s *implSummarizer) discoverSRTFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if strings.ToLower(filepath.Ext(e.Name())) == ".srt" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}

	sort.Strings(files)
	return files, nil
}
