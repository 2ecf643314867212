// Package batch drives bounded-concurrency transcription over a file
// or a directory of videos, collecting per-file outcomes and merging
// segments into combined EDL/SRT/MLT artifacts. One coordinating
// goroutine owns all mutable run state; a fixed pool of workers calls
// the transcription gateway and reports back over channels.
package batch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/google/uuid"

	"github.com/editkit/cutscribe/internal/config"
	"github.com/editkit/cutscribe/internal/logger"
	"github.com/editkit/cutscribe/internal/transcript"
	"github.com/editkit/cutscribe/internal/whisper"
)

// ErrBatchRunning is returned when starting a second active batch.
var ErrBatchRunning = errors.New("batch already running")

// ErrNoActiveBatch is returned when cancel is requested while idle.
var ErrNoActiveBatch = errors.New("no active batch")

// maxPoolSize caps the worker pool regardless of available CPUs.
const maxPoolSize = 4

// gpuPoolSize is the lower cap applied when transcription jobs contend
// for one shared accelerator. This is a deliberate throttle, not a
// performance default.
const gpuPoolSize = 2

// Runner executes batch transcription runs. A Runner tracks at most
// one active run; independent runs need independent Runner instances.
type Runner struct {
	gateway    whisper.Gateway
	logger     logger.Logger
	maxWorkers int
	edlTitle   string

	mu        sync.Mutex
	state     State
	cancelled bool
	cancelCh  chan struct{}
}

// NewRunner creates an idle Runner.
func NewRunner(cfg config.BatchConfig, gateway whisper.Gateway, log logger.Logger) *Runner {
	return &Runner{
		gateway:    gateway,
		logger:     log,
		maxWorkers: cfg.MaxWorkers,
		edlTitle:   cfg.EDLTitle,
		state:      StateIdle,
	}
}

// State returns the runner's current lifecycle state.
func (r *Runner) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Cancel requests cooperative cancellation of the active run. No new
// jobs are dispatched after the request; jobs already in flight settle
// on their own.
func (r *Runner) Cancel() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != StateRunning {
		return ErrNoActiveBatch
	}
	if !r.cancelled {
		r.cancelled = true
		close(r.cancelCh)
	}
	return nil
}

// Start begins a batch run over root and returns its event stream.
// The stream ends with an EventDone carrying the final report, after
// which the channel is closed. Discovery failures surface immediately
// and leave the runner in StateFailed.
func (r *Runner) Start(ctx context.Context, root string, opts transcript.OutputOptions) (<-chan Event, error) {
	r.mu.Lock()
	if r.state == StateRunning {
		r.mu.Unlock()
		return nil, ErrBatchRunning
	}
	r.state = StateRunning
	r.cancelled = false
	r.cancelCh = make(chan struct{})
	r.mu.Unlock()

	files, isDir, err := discover(root, opts.ForceRetranscribe)
	if err != nil {
		r.setState(StateFailed)
		return nil, err
	}

	// Sized so the coordinator can emit every event for the whole
	// run without ever blocking on a slow consumer.
	events := make(chan Event, 4*len(files)+16)
	go r.run(ctx, root, isDir, files, opts, events)
	return events, nil
}

// Run executes a batch to completion, logging events as they arrive,
// and returns the final report.
func (r *Runner) Run(ctx context.Context, root string, opts transcript.OutputOptions) (*Report, error) {
	events, err := r.Start(ctx, root, opts)
	if err != nil {
		return nil, err
	}

	var report *Report
	for ev := range events {
		switch ev.Type {
		case EventProgress:
			r.logger.Debug(ctx, "Progress: %.1f%% (%d/%d)", ev.Progress, ev.Completed, ev.Total)
		case EventDone:
			report = ev.Report
		}
	}
	if report == nil {
		return nil, fmt.Errorf("batch ended without a final report")
	}
	return report, nil
}

func (r *Runner) setState(s State) {
	r.mu.Lock()
	r.state = s
	r.mu.Unlock()
}

func (r *Runner) isCancelled(ctx context.Context) bool {
	if ctx.Err() != nil {
		return true
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cancelled
}

// run is the batch coordinator. It dispatches jobs to the worker
// pool, is the only writer of the run's state, and finalizes the run
// even when no job ever completes.
func (r *Runner) run(ctx context.Context, root string, isDir bool, files []string, opts transcript.OutputOptions, events chan Event) {
	runID := uuid.New().String()
	st := &batchState{total: len(files)}
	accum := transcript.NewBatch()

	r.logger.Info(ctx, "Batch %s started: %d file(s) in %s", runID, st.total, root)
	publish(events, Event{Type: EventLog, Message: fmt.Sprintf("batch started: %d file(s)", st.total), Total: st.total})

	// Finalization is unconditional: combined artifacts when at least
	// one file succeeded, then the terminal report and channel close.
	defer func() {
		terminal := StateCompleted
		if r.isCancelled(ctx) {
			terminal = StateCancelled
		}

		if isDir && opts.WantsAny() && st.succeeded > 0 {
			r.writeCombined(root, accum, opts, st)
		}

		r.setState(terminal)
		publish(events, Event{Type: EventProgress, Progress: 0, Completed: st.completed, Total: st.total})

		report := &Report{
			RunID:     runID,
			Root:      root,
			State:     terminal,
			Total:     st.total,
			Succeeded: st.succeeded,
			Failures:  st.failures,
			Artifacts: st.artifacts,
			Warnings:  st.warnings,
		}
		r.logSummary(ctx, report)
		publish(events, Event{Type: EventDone, Report: report, Completed: st.completed, Total: st.total})
		close(events)
	}()

	if st.total == 0 {
		r.logger.Info(ctx, "Batch %s: nothing to do", runID)
		return
	}

	workers := PoolSize(r.maxWorkers, r.gateway.SharedAccelerator())
	r.logger.Info(ctx, "Worker pool size: %d", workers)

	jobs := make(chan string)
	results := make(chan transcript.FileOutcome)

	r.mu.Lock()
	cancelCh := r.cancelCh
	r.mu.Unlock()

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				// A job already handed over when cancellation landed
				// is abandoned, not run.
				if r.isCancelled(ctx) {
					continue
				}
				results <- r.transcribeOne(ctx, path)
			}
		}()
	}

	// Dispatcher: stops feeding the pool as soon as cancellation is
	// requested, abandoning not-yet-started jobs.
	go func() {
		defer close(jobs)
		for _, path := range files {
			select {
			case jobs <- path:
			case <-cancelCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	for outcome := range results {
		st.completed++
		name := filepath.Base(outcome.Path)

		if outcome.Success {
			st.succeeded++
			r.writeFileArtifacts(outcome.Path, outcome.Segments, opts, st)

			tagged := make([]transcript.Segment, len(outcome.Segments))
			for i, seg := range outcome.Segments {
				tagged[i] = seg.WithSource(name)
			}
			accum.Add(outcome.Path, tagged)

			r.logger.Info(ctx, "Completed (%d/%d): %s", st.completed, st.total, name)
			publish(events, Event{Type: EventFileDone, File: outcome.Path, Completed: st.completed, Total: st.total})
		} else {
			st.failures = append(st.failures, Failure{File: name, Reason: outcome.Err.Error()})
			r.logger.Error(ctx, "Failed (%d/%d): %s: %v", st.completed, st.total, name, outcome.Err)
			publish(events, Event{Type: EventFileDone, File: outcome.Path, Err: outcome.Err.Error(), Completed: st.completed, Total: st.total})
		}

		progress := float64(st.completed) / float64(st.total) * 100
		publish(events, Event{Type: EventProgress, Progress: progress, Completed: st.completed, Total: st.total})
	}
}

// transcribeOne runs a single job against the gateway. Gateway errors
// are contained in the outcome; one file's failure never aborts the
// batch.
func (r *Runner) transcribeOne(ctx context.Context, path string) transcript.FileOutcome {
	result, err := r.gateway.Transcribe(ctx, path)
	if err != nil {
		return transcript.FileOutcome{Path: path, Err: err}
	}
	return transcript.FileOutcome{Path: path, Success: true, Segments: result.Segments}
}

func (r *Runner) logSummary(ctx context.Context, report *Report) {
	r.logger.Info(ctx, "Batch %s %s: %d/%d succeeded", report.RunID, report.State, report.Succeeded, report.Total)
	for _, f := range report.Failures {
		r.logger.Warn(ctx, "  failed: %s: %s", f.File, f.Reason)
	}
	for _, w := range report.Warnings {
		r.logger.Warn(ctx, "  warning: %s", w)
	}
	for _, a := range report.Artifacts {
		r.logger.Info(ctx, "  artifact: %s", a)
	}
}

// PoolSize bounds the worker pool: the configured cap or the CPU
// count, never more than maxPoolSize, and halved to gpuPoolSize when
// workers contend for one shared accelerator.
func PoolSize(configured int, sharedAccelerator bool) int {
	n := configured
	if n <= 0 {
		n = runtime.NumCPU()
	}
	if n > maxPoolSize {
		n = maxPoolSize
	}
	if sharedAccelerator && n > gpuPoolSize {
		n = gpuPoolSize
	}
	if n < 1 {
		n = 1
	}
	return n
}
