package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/hr-platform/internal/events"
	"github.com/spec-kit/hr-platform/internal/outbox"
)

// Sideline drains the side-effect outbox and republishes each job as a
// beneficiary-changed event for the subscribed handlers. It runs beside the
// request path; nothing it does reaches back into a committed dossier write.
type Sideline struct {
	queue      outbox.Queue
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewSideline constructs the worker.
func NewSideline(queue outbox.Queue, dispatcher events.Dispatcher, logger *zap.Logger) *Sideline {
	return &Sideline{queue: queue, dispatcher: dispatcher, logger: logger}
}

// Run consumes jobs until the context is cancelled.
func (w *Sideline) Run(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}

		job, err := w.queue.Dequeue(ctx, 2*time.Second)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			w.logger.Warn("outbox dequeue failed", zap.Error(err))
			time.Sleep(time.Second)
			continue
		}
		if job == nil {
			continue
		}

		w.Process(ctx, *job)
	}
}

// Process publishes one job as an event. Exposed for tests.
func (w *Sideline) Process(ctx context.Context, job outbox.Job) {
	w.logger.Info("processing side-effect job",
		zap.String("job_id", job.ID),
		zap.Int64("dossier_id", job.DossierID))

	_ = w.dispatcher.Publish(ctx, events.Event{
		ID:        job.ID,
		Type:      events.EventBeneficiaryChanged,
		Timestamp: time.Now(),
		Payload: events.BeneficiaryChangedPayload{
			DossierID: job.DossierID,
			Email:     job.Email,
		},
	})
}
