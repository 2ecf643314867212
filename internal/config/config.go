package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Whisper WhisperConfig `yaml:"whisper"`
	Batch   BatchConfig   `yaml:"batch"`
	Logging LoggingConfig `yaml:"logging"`
	Summary SummaryConfig `yaml:"summary"`
}

type WhisperConfig struct {
	BinaryPath string `yaml:"binary_path"`
	ModelPath  string `yaml:"model_path"`
	Language   string `yaml:"language"`
	Prompt     string `yaml:"prompt"`
	Threads    int    `yaml:"threads"`
	UseGPU     bool   `yaml:"use_gpu"`
}

type BatchConfig struct {
	// MaxWorkers caps the transcription worker pool. Zero means
	// auto-size from the CPU count; the runner applies its own hard
	// caps on top of this value.
	MaxWorkers int    `yaml:"max_workers"`
	EDLTitle   string `yaml:"edl_title"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type SummaryConfig struct {
	APIKeys []string `yaml:"api_keys"`
	Model   string   `yaml:"model"`
	Dir     string   `yaml:"dir"`
}

// Load reads and validates a YAML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Whisper.BinaryPath == "" {
		return fmt.Errorf("whisper.binary_path is required")
	}
	if c.Whisper.ModelPath == "" {
		return fmt.Errorf("whisper.model_path is required")
	}
	if c.Batch.MaxWorkers < 0 {
		return fmt.Errorf("batch.max_workers must not be negative")
	}

	if c.Whisper.Language == "" {
		c.Whisper.Language = "auto"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 8
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Summary.Model == "" {
		c.Summary.Model = "gemini-2.5-flash"
	}
	if c.Summary.Dir == "" {
		c.Summary.Dir = "summaries"
	}

	return nil
}
