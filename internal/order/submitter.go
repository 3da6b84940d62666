package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sh1vam31/food-inventory-console/internal/cart"
	"github.com/sh1vam31/food-inventory-console/internal/domain"
	"github.com/sh1vam31/food-inventory-console/internal/feasibility"
	"go.uber.org/zap"
)

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrCheckPending       = errors.New("feasibility check in progress")
	ErrCheckFailed        = errors.New("feasibility check failed")
	ErrInfeasible         = errors.New("order cannot be fulfilled with current stock")
	ErrStaleVerdict       = errors.New("feasibility verdict does not match the cart")
	ErrSubmissionInFlight = errors.New("order submission already in progress")
)

type Reason string

const (
	ReasonNone         Reason = ""
	ReasonEmptyCart    Reason = "empty_cart"
	ReasonChecking     Reason = "checking"
	ReasonCheckFailed  Reason = "check_failed"
	ReasonInfeasible   Reason = "infeasible"
	ReasonStaleVerdict Reason = "stale_verdict"
	ReasonSubmitting   Reason = "submitting"
)

var reasonErrors = map[Reason]error{
	ReasonEmptyCart:    ErrEmptyCart,
	ReasonChecking:     ErrCheckPending,
	ReasonCheckFailed:  ErrCheckFailed,
	ReasonInfeasible:   ErrInfeasible,
	ReasonStaleVerdict: ErrStaleVerdict,
	ReasonSubmitting:   ErrSubmissionInFlight,
}

type Gate struct {
	Enabled bool   `json:"enabled"`
	Reason  Reason `json:"reason,omitempty"`
}

func (g Gate) Err() error {
	if g.Enabled {
		return nil
	}
	return reasonErrors[g.Reason]
}

// ReasonOf maps a gate error back to its reason.
func ReasonOf(err error) (Reason, bool) {
	for reason, target := range reasonErrors {
		if errors.Is(err, target) {
			return reason, true
		}
	}
	return ReasonNone, false
}

type Creator interface {
	CreateOrder(ctx context.Context, lines []domain.CompositionLine) (*domain.Order, error)
}

type Publisher interface {
	Publish(ctx context.Context, queueName string, message []byte) error
}

// RejectedError is returned when the inventory service refuses an order.
// The cart is left untouched and a fresh check has been requested.
type RejectedError struct {
	Err error
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("order rejected: %v", e.Err)
}

func (e *RejectedError) Unwrap() error {
	return e.Err
}

type Config struct {
	CartID  string
	Timeout time.Duration
	Queue   string
}

// Submitter places the order once the latest verdict allows it. The verdict
// is advisory: only the inventory service's answer to CreateOrder decides.
type Submitter struct {
	store     *cart.Store
	checker   *feasibility.Checker
	orders    Creator
	publisher Publisher
	config    Config
	logger    *zap.SugaredLogger

	mu         sync.Mutex
	submitting bool
}

func NewSubmitter(
	store *cart.Store,
	checker *feasibility.Checker,
	orders Creator,
	publisher Publisher,
	cfg Config,
	logger *zap.SugaredLogger,
) *Submitter {
	return &Submitter{
		store:     store,
		checker:   checker,
		orders:    orders,
		publisher: publisher,
		config:    cfg,
		logger:    logger,
	}
}

func (s *Submitter) Gate() Gate {
	return s.GateFor(s.store.Snapshot(), s.checker.State())
}

// GateFor evaluates the gate against a snapshot and check state the caller
// already holds, so a single view never mixes two cart versions.
func (s *Submitter) GateFor(snap cart.Snapshot, state feasibility.State) Gate {
	s.mu.Lock()
	submitting := s.submitting
	s.mu.Unlock()

	return evaluate(snap, state, submitting)
}

// Edit runs fn unless a submission is in flight and reports whether it ran.
// Submit cannot start while fn runs, so an accepted edit is never lost to
// the clear that follows a successful submission.
func (s *Submitter) Edit(fn func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.submitting {
		return false
	}

	fn()
	return true
}

func (s *Submitter) Submitting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.submitting
}

func evaluate(snap cart.Snapshot, state feasibility.State, submitting bool) Gate {
	switch {
	case submitting:
		return Gate{Reason: ReasonSubmitting}
	case snap.Cart.IsEmpty():
		return Gate{Reason: ReasonEmptyCart}
	case state.Status == feasibility.StatusChecking:
		return Gate{Reason: ReasonChecking}
	case state.Status == feasibility.StatusFailed:
		return Gate{Reason: ReasonCheckFailed}
	case !state.Current(snap.Version):
		return Gate{Reason: ReasonStaleVerdict}
	case !state.Verdict.CanFulfill:
		return Gate{Reason: ReasonInfeasible}
	}
	return Gate{Enabled: true}
}

// Submit sends the composition of the last verified check to order creation.
// Once issued the call is detached from ctx and only bounded by the
// configured timeout.
func (s *Submitter) Submit(ctx context.Context, userID string) (*domain.Order, error) {
	s.mu.Lock()
	snap := s.store.Snapshot()
	state := s.checker.State()
	if gate := evaluate(snap, state, s.submitting); !gate.Enabled {
		s.mu.Unlock()
		return nil, gate.Err()
	}
	s.submitting = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.submitting = false
		s.mu.Unlock()
	}()

	lines := state.Composition

	callCtx := context.WithoutCancel(ctx)
	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(callCtx, s.config.Timeout)
		defer cancel()
	}

	order, err := s.orders.CreateOrder(callCtx, lines)
	if err != nil {
		s.logger.Warnw("order submission rejected", "cart_id", s.config.CartID, "user_id", userID, "error", err)
		s.publish(ctx, domain.SubmissionEvent{
			EventType:  domain.EventOrderRejected,
			CartID:     s.config.CartID,
			UserID:     userID,
			TotalPrice: snap.Cart.TotalPrice(),
			Items:      lines,
			Reason:     err.Error(),
		})

		s.checker.Recheck(s.store.Snapshot())

		return nil, &RejectedError{Err: err}
	}

	s.store.Clear()

	s.logger.Infow("order placed", "cart_id", s.config.CartID, "user_id", userID, "order_id", order.ID, "total_price", order.TotalPrice)
	s.publish(ctx, domain.SubmissionEvent{
		EventType:  domain.EventOrderPlaced,
		CartID:     s.config.CartID,
		UserID:     userID,
		OrderID:    order.ID,
		TotalPrice: order.TotalPrice,
		Items:      lines,
	})

	return order, nil
}

func (s *Submitter) publish(ctx context.Context, event domain.SubmissionEvent) {
	if s.publisher == nil || s.config.Queue == "" {
		return
	}

	event.Timestamp = time.Now()

	eventBytes, err := json.Marshal(event)
	if err != nil {
		s.logger.Errorw("failed to marshal submission event", "cart_id", event.CartID, "error", err)
		return
	}

	if err := s.publisher.Publish(context.WithoutCancel(ctx), s.config.Queue, eventBytes); err != nil {
		s.logger.Errorw("failed to publish submission event", "cart_id", event.CartID, "event_type", event.EventType, "error", err)
	}
}
