package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-polip/internal/logger"
	"github.com/MKhiriev/go-polip/internal/service"
)

// WorkflowWorker ticks the device scheduler through a WorkflowJob.
type WorkflowWorker struct {
	job      *service.WorkflowJob
	interval time.Duration

	logger *logger.Logger
}

func NewWorkflowWorker(job *service.WorkflowJob, interval time.Duration, logger *logger.Logger) *WorkflowWorker {
	return &WorkflowWorker{job: job, interval: interval, logger: logger}
}

func (w *WorkflowWorker) Run(ctx context.Context) {
	w.logger.Info().
		Str("func", "WorkflowWorker.Run").
		Dur("interval", w.interval).
		Msg("starting workflow job")
	w.job.Start(ctx, w.interval)
}

func (w *WorkflowWorker) Stop() {
	w.job.Stop()
	w.logger.Info().Str("func", "WorkflowWorker.Stop").Msg("workflow job stopped")
}
