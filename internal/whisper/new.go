package whisper

import (
	"github.com/editkit/cutscribe/internal/config"
	"github.com/editkit/cutscribe/internal/logger"
	"github.com/editkit/cutscribe/pkg/executor"
)

type implGateway struct {
	cfg      config.WhisperConfig
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Gateway backed by the ffmpeg and whisper.cpp binaries.
func New(cfg config.WhisperConfig, exec executor.Executor, log logger.Logger) Gateway {
	return &implGateway{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}

func (g *implGateway) SharedAccelerator() bool {
	return g.cfg.UseGPU
}
