package summarizer

import "context"

// Summarizer turns the captions a batch produced into editorial
// review documents: a clean transcript DOCX per caption file and,
// when Gemini API keys are configured, a Markdown summary with a
// DOCX rendition.
type Summarizer interface {
	SummarizeAll(ctx context.Context, srtDir, destDir string) error
}
