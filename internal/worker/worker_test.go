package worker

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sh1vam31/food-inventory-console/internal/domain"
	"github.com/sh1vam31/food-inventory-console/internal/queue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memoryBroker struct {
	mu       sync.Mutex
	handlers map[string]queue.MessageHandler
}

func newMemoryBroker() *memoryBroker {
	return &memoryBroker{handlers: make(map[string]queue.MessageHandler)}
}

func (b *memoryBroker) Publish(ctx context.Context, queueName string, message []byte) error {
	b.mu.Lock()
	h, ok := b.handlers[queueName]
	b.mu.Unlock()
	if !ok {
		return errors.New("no consumer")
	}
	return h(ctx, message)
}

func (b *memoryBroker) Subscribe(_ context.Context, queueName string, handler queue.MessageHandler) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[queueName] = handler
	return nil
}

func (b *memoryBroker) Close() error { return nil }

type recorder struct {
	events []domain.SubmissionEvent
	err    error
}

func (r *recorder) RecordSubmission(_ context.Context, event domain.SubmissionEvent) error {
	if r.err != nil {
		return r.err
	}
	r.events = append(r.events, event)
	return nil
}

func TestSubmissionAuditWorker_RecordsEvents(t *testing.T) {
	broker := newMemoryBroker()
	rec := &recorder{}
	w := NewSubmissionAuditWorker(rec, broker, zap.NewNop().Sugar())
	require.NoError(t, w.Start())
	defer w.Stop()

	body, err := json.Marshal(domain.SubmissionEvent{
		EventType:  domain.EventOrderPlaced,
		CartID:     "cart-1",
		UserID:     "u1",
		OrderID:    9,
		TotalPrice: 12.99,
		Items:      []domain.CompositionLine{{MenuItemID: 1, Quantity: 1}},
	})
	require.NoError(t, err)

	require.NoError(t, broker.Publish(context.Background(), queue.QueueOrderSubmissions, body))
	require.Len(t, rec.events, 1)
	assert.Equal(t, int64(9), rec.events[0].OrderID)
	assert.False(t, rec.events[0].Timestamp.IsZero())
}

func TestSubmissionAuditWorker_Failures(t *testing.T) {
	broker := newMemoryBroker()
	rec := &recorder{err: errors.New("mongo down")}
	w := NewSubmissionAuditWorker(rec, broker, zap.NewNop().Sugar())
	require.NoError(t, w.Start())
	defer w.Stop()

	assert.Error(t, broker.Publish(context.Background(), queue.QueueOrderSubmissions, []byte("{")))
	assert.Error(t, broker.Publish(context.Background(), queue.QueueOrderSubmissions, []byte(`{"event_type":"order.placed"}`)))
	assert.Error(t, broker.Publish(context.Background(), queue.QueueOrderSubmissions, []byte(`{"cart_id":"c"}`)), "recorder errors are returned for retry")
}

type countingSweeper struct {
	calls atomic.Int32
}

func (s *countingSweeper) SweepIdle() int {
	s.calls.Add(1)
	return 1
}

func TestCartJanitor_SweepsUntilStopped(t *testing.T) {
	sweeper := &countingSweeper{}
	j := NewCartJanitor(sweeper, 5*time.Millisecond, zap.NewNop().Sugar())
	require.NoError(t, j.Start())

	require.Eventually(t, func() bool { return sweeper.calls.Load() >= 2 }, time.Second, time.Millisecond)

	j.Stop()
	after := sweeper.calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, sweeper.calls.Load())
}
