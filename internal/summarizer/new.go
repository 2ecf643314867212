package summarizer

import (
	"github.com/editkit/cutscribe/internal/config"
	"github.com/editkit/cutscribe/internal/logger"
)

type implSummarizer struct {
	apiKeys    []string
	currentKey int
	logger     logger.Logger
	model      string
}

// New creates a Summarizer that rotates through the supplied Gemini
// API keys. With no keys it still produces transcript documents and
// skips the summary step.
func New(cfg config.SummaryConfig, log logger.Logger) Summarizer {
	return &implSummarizer{
		apiKeys: cfg.APIKeys,
		logger:  log,
		model:   cfg.Model,
	}
}
