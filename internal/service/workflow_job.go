package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-polip/internal/document"
	"github.com/MKhiriev/go-polip/internal/logger"
	"github.com/MKhiriev/go-polip/models"
)

// DefaultTickInterval is used when Start is given a non-positive interval.
const DefaultTickInterval = 250 * time.Millisecond

// WorkflowJob drives a WorkflowEngine from a ticker goroutine. Ticks and
// host mutations run under one mutex, so the engine only ever sees a single
// caller.
type WorkflowJob struct {
	engine    WorkflowEngine
	observers []TickObserver
	doc       *document.Document
	snapshots chan models.WorkflowSnapshot
	logger    *logger.Logger

	engineMu sync.Mutex

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewWorkflowJob creates a job for engine. The job is idle until Start is
// called. observers run after every tick.
func NewWorkflowJob(engine WorkflowEngine, logger *logger.Logger, observers ...TickObserver) *WorkflowJob {
	return &WorkflowJob{
		engine:    engine,
		observers: observers,
		doc:       document.New(),
		snapshots: make(chan models.WorkflowSnapshot, 1),
		logger:    logger,
	}
}

// Start stops any previously running job, then launches a goroutine that
// ticks the engine every interval until ctx is cancelled or Stop is called.
func (j *WorkflowJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultTickInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case now := <-t.C:
				j.Tick(jobCtx, now)
			}
		}
	}()
}

// Stop cancels the goroutine and blocks until it has exited. It is a no-op
// when the job is not running.
func (j *WorkflowJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// Tick runs a single scheduler step at now and publishes the result.
func (j *WorkflowJob) Tick(ctx context.Context, now time.Time) {
	j.engineMu.Lock()
	defer j.engineMu.Unlock()

	if err := j.engine.PeriodicUpdate(ctx, j.doc, now); err != nil {
		j.logger.Debug().
			Str("func", "WorkflowJob.Tick").
			Err(err).
			Msg("tick finished with errors")
	}

	snap := j.engine.Snapshot(now)
	for _, o := range j.observers {
		o.AfterTick(ctx, snap)
	}
	j.publish(snap)
}

// Do runs fn with exclusive access to the engine.
func (j *WorkflowJob) Do(fn func(WorkflowEngine)) {
	j.engineMu.Lock()
	defer j.engineMu.Unlock()
	fn(j.engine)
}

// Snapshots delivers the latest snapshot after every tick. Snapshots are
// dropped when the reader falls behind; only the newest one is kept.
func (j *WorkflowJob) Snapshots() <-chan models.WorkflowSnapshot {
	return j.snapshots
}

func (j *WorkflowJob) publish(snap models.WorkflowSnapshot) {
	for {
		select {
		case j.snapshots <- snap:
			return
		default:
		}
		select {
		case <-j.snapshots:
		default:
		}
	}
}
