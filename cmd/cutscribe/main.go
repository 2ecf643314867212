package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/editkit/cutscribe/internal/batch"
	"github.com/editkit/cutscribe/internal/config"
	"github.com/editkit/cutscribe/internal/logger"
	"github.com/editkit/cutscribe/internal/summarizer"
	"github.com/editkit/cutscribe/internal/transcript"
	"github.com/editkit/cutscribe/internal/watcher"
	"github.com/editkit/cutscribe/internal/whisper"
	"github.com/editkit/cutscribe/pkg/executor"
)

func main() {
	var (
		configPath = flag.String("config", "config.yaml", "path to configuration file")
		genEDL     = flag.Bool("edl", true, "generate edit decision lists")
		genSRT     = flag.Bool("srt", true, "generate SubRip captions")
		genMLT     = flag.Bool("mlt", true, "generate a combined MLT project")
		force      = flag.Bool("force", false, "retranscribe files whose captions already exist")
		watch      = flag.Bool("watch", false, "keep watching the directory for new videos")
		summarize  = flag.Bool("summarize", false, "summarize generated captions after the batch")
	)
	flag.Parse()

	root := flag.Arg(0)
	if root == "" {
		fmt.Fprintln(os.Stderr, "usage: cutscribe [flags] <video file or directory>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "cutscribe starting on %s/%s (%d CPUs)", runtime.GOOS, runtime.GOARCH, runtime.NumCPU())

	gateway := whisper.New(cfg.Whisper, executor.New(), log)
	opts := transcript.OutputOptions{
		GenerateEDL:       *genEDL,
		GenerateSRT:       *genSRT,
		GenerateMLT:       *genMLT,
		ForceRetranscribe: *force,
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if *watch {
		runWatch(ctx, cancel, cfg, gateway, opts, root, log)
		return
	}

	runner := batch.NewRunner(cfg.Batch, gateway, log)

	// First signal cancels cooperatively: in-flight files finish and
	// the run finalizes. A second signal aborts outright.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Warn(ctx, "Cancellation requested, letting in-flight files finish...")
		if err := runner.Cancel(); err != nil {
			cancel()
			return
		}
		<-sigChan
		log.Warn(ctx, "Second signal received, aborting")
		cancel()
	}()

	report, err := runner.Run(ctx, root, opts)
	if err != nil {
		log.Error(ctx, "Batch failed: %v", err)
		os.Exit(1)
	}

	if *summarize && report.Succeeded > 0 {
		srtDir := report.Root
		if info, err := os.Stat(report.Root); err == nil && !info.IsDir() {
			srtDir = filepath.Dir(report.Root)
		}
		sum := summarizer.New(cfg.Summary, log)
		if err := sum.SummarizeAll(ctx, srtDir, filepath.Join(srtDir, cfg.Summary.Dir)); err != nil {
			log.Error(ctx, "Summarization failed: %v", err)
		}
	}

	// Partial failure is a normal terminal state; only a run that
	// produced nothing at all exits non-zero.
	if report.Succeeded == 0 && report.Total > 0 {
		os.Exit(1)
	}
}

// runWatch transcribes new videos as they land in root, each as its
// own single-file run through the regular batch path.
func runWatch(ctx context.Context, cancel context.CancelFunc, cfg *config.Config, gateway whisper.Gateway, opts transcript.OutputOptions, root string, log logger.Logger) {
	handler := func(ctx context.Context, filePath string) error {
		runner := batch.NewRunner(cfg.Batch, gateway, log)
		report, err := runner.Run(ctx, filePath, opts)
		if err != nil {
			return err
		}
		if len(report.Failures) > 0 {
			return fmt.Errorf("transcription failed: %s", report.Failures[0].Reason)
		}
		return nil
	}

	maxConcurrent := batch.PoolSize(cfg.Batch.MaxWorkers, gateway.SharedAccelerator())
	w, err := watcher.New(root, handler, log, maxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "Monitoring %s (max %d concurrent). Press Ctrl+C to stop", root, maxConcurrent)

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	cancel()
	log.Info(ctx, "cutscribe stopped")
}
