package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sh1vam31/food-inventory-console/internal/domain"
	"github.com/sh1vam31/food-inventory-console/internal/queue"
	"go.uber.org/zap"
)

type SubmissionRecorder interface {
	RecordSubmission(ctx context.Context, event domain.SubmissionEvent) error
}

// SubmissionAuditWorker persists every published submission attempt.
type SubmissionAuditWorker struct {
	recorder SubmissionRecorder
	broker   queue.Broker
	logger   *zap.SugaredLogger
	ctx      context.Context
	cancel   context.CancelFunc
}

func NewSubmissionAuditWorker(
	recorder SubmissionRecorder,
	broker queue.Broker,
	logger *zap.SugaredLogger,
) *SubmissionAuditWorker {
	ctx, cancel := context.WithCancel(context.Background())

	return &SubmissionAuditWorker{
		recorder: recorder,
		broker:   broker,
		logger:   logger,
		ctx:      ctx,
		cancel:   cancel,
	}
}

func (w *SubmissionAuditWorker) Start() error {
	w.logger.Info("starting submission audit worker")

	return w.broker.Subscribe(w.ctx, queue.QueueOrderSubmissions, w.handleMessage)
}

func (w *SubmissionAuditWorker) Stop() {
	w.logger.Info("stopping submission audit worker")
	w.cancel()
}

func (w *SubmissionAuditWorker) handleMessage(ctx context.Context, message []byte) error {
	var event domain.SubmissionEvent
	if err := json.Unmarshal(message, &event); err != nil {
		w.logger.Errorw("failed to unmarshal event", "error", err)
		return fmt.Errorf("failed to unmarshal event: %w", err)
	}

	if event.CartID == "" {
		return fmt.Errorf("submission event without cart_id")
	}

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	w.logger.Infow("processing submission event", "cart_id", event.CartID, "event_type", event.EventType)

	if err := w.recorder.RecordSubmission(ctx, event); err != nil {
		w.logger.Errorw("failed to record submission", "cart_id", event.CartID, "error", err)
		return err
	}

	return nil
}
