package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sh1vam31/food-inventory-console/internal/cart"
	"github.com/sh1vam31/food-inventory-console/internal/domain"
	"github.com/sh1vam31/food-inventory-console/internal/feasibility"
	"github.com/sh1vam31/food-inventory-console/internal/order"
	"go.uber.org/zap"
)

var (
	ErrCartNotFound     = errors.New("cart not found")
	ErrMenuItemNotFound = errors.New("menu item not found or unavailable")
	ErrCartLocked       = errors.New("cart is locked while an order is being submitted")
)

type Inventory interface {
	feasibility.Inventory
	order.Creator
	ListMenuItems(ctx context.Context, availableOnly bool) ([]domain.MenuItem, error)
}

type CartConfig struct {
	CheckTimeout    time.Duration
	CheckDebounce   time.Duration
	SubmitTimeout   time.Duration
	CatalogTTL      time.Duration
	IdleTTL         time.Duration
	SubmissionQueue string
}

type LineView struct {
	domain.CartLine
	Subtotal  float64 `json:"subtotal"`
	Orderable bool    `json:"orderable"`
}

type CheckView struct {
	Status      feasibility.Status `json:"status"`
	CartVersion uint64             `json:"cart_version"`
	Verdict     *domain.Verdict    `json:"verdict,omitempty"`
	Error       string             `json:"error,omitempty"`
	CheckedAt   *time.Time         `json:"checked_at,omitempty"`
}

type CartView struct {
	ID         string     `json:"id"`
	Version    uint64     `json:"version"`
	Lines      []LineView `json:"lines"`
	TotalPrice float64    `json:"total_price"`
	Check      CheckView  `json:"check"`
	Submission order.Gate `json:"submission"`
}

type session struct {
	id        string
	owner     string
	store     *cart.Store
	checker   *feasibility.Checker
	submitter *order.Submitter

	mu        sync.Mutex
	catalog   map[int64]domain.MenuItem
	catalogAt time.Time
	lastSeen  time.Time
}

// CartService owns the open order composition sessions. Sessions live only in
// memory and disappear on close, idle timeout or a successful submission.
type CartService struct {
	inventory Inventory
	publisher order.Publisher
	config    CartConfig
	logger    *zap.SugaredLogger
	now       func() time.Time

	mu       sync.Mutex
	sessions map[string]*session
}

func NewCartService(
	inventory Inventory,
	publisher order.Publisher,
	cfg CartConfig,
	logger *zap.SugaredLogger,
) *CartService {
	return &CartService{
		inventory: inventory,
		publisher: publisher,
		config:    cfg,
		logger:    logger,
		now:       time.Now,
		sessions:  make(map[string]*session),
	}
}

func (s *CartService) Open(ctx context.Context, owner string) (*CartView, error) {
	id := uuid.NewString()
	store := cart.NewStore()

	checker := feasibility.New(s.inventory, feasibility.Config{
		Timeout:  s.config.CheckTimeout,
		Debounce: s.config.CheckDebounce,
	}, s.logger.With("cart_id", id))
	checker.Attach(store)

	submitter := order.NewSubmitter(store, checker, s.inventory, s.publisher, order.Config{
		CartID:  id,
		Timeout: s.config.SubmitTimeout,
		Queue:   s.config.SubmissionQueue,
	}, s.logger)

	sess := &session{
		id:        id,
		owner:     owner,
		store:     store,
		checker:   checker,
		submitter: submitter,
		lastSeen:  s.now(),
	}

	if err := s.refreshCatalog(ctx, sess, true); err != nil {
		s.logger.Warnw("failed to load catalog for new cart", "cart_id", id, "error", err)
	}

	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()

	s.logger.Infow("cart opened", "cart_id", id, "user_id", owner)

	return s.view(sess), nil
}

func (s *CartService) View(ctx context.Context, id, owner string) (*CartView, error) {
	sess, err := s.session(id, owner)
	if err != nil {
		return nil, err
	}

	if err := s.refreshCatalog(ctx, sess, false); err != nil {
		s.logger.Warnw("failed to refresh catalog", "cart_id", id, "error", err)
	}

	return s.view(sess), nil
}

func (s *CartService) AddItem(ctx context.Context, id, owner string, menuItemID int64) (*CartView, error) {
	sess, err := s.session(id, owner)
	if err != nil {
		return nil, err
	}
	if sess.submitter.Submitting() {
		return nil, ErrCartLocked
	}

	item, ok := sess.catalogItem(menuItemID)
	if !ok {
		if err := s.refreshCatalog(ctx, sess, true); err != nil {
			return nil, fmt.Errorf("failed to load catalog: %w", err)
		}
		if item, ok = sess.catalogItem(menuItemID); !ok {
			return nil, ErrMenuItemNotFound
		}
	}

	var snap cart.Snapshot
	if !sess.submitter.Edit(func() { snap = sess.store.AddItem(item) }) {
		return nil, ErrCartLocked
	}
	s.logger.Debugw("cart item added", "cart_id", id, "menu_item_id", menuItemID, "version", snap.Version)

	return s.view(sess), nil
}

// SetQuantity overwrites a line's quantity; zero or less removes it. Unknown
// lines are left alone.
func (s *CartService) SetQuantity(_ context.Context, id, owner string, menuItemID int64, quantity int) (*CartView, error) {
	sess, err := s.session(id, owner)
	if err != nil {
		return nil, err
	}

	if !sess.submitter.Edit(func() { sess.store.SetQuantity(menuItemID, quantity) }) {
		return nil, ErrCartLocked
	}

	return s.view(sess), nil
}

func (s *CartService) RemoveItem(_ context.Context, id, owner string, menuItemID int64) (*CartView, error) {
	sess, err := s.session(id, owner)
	if err != nil {
		return nil, err
	}

	if !sess.submitter.Edit(func() { sess.store.RemoveItem(menuItemID) }) {
		return nil, ErrCartLocked
	}

	return s.view(sess), nil
}

func (s *CartService) Recheck(_ context.Context, id, owner string) (*CartView, error) {
	sess, err := s.session(id, owner)
	if err != nil {
		return nil, err
	}

	sess.checker.Recheck(sess.store.Snapshot())

	return s.view(sess), nil
}

// Submit places the order. On success the session is discarded; on failure
// the cart is kept and a fresh check is already under way.
func (s *CartService) Submit(ctx context.Context, id, owner string) (*domain.Order, error) {
	sess, err := s.session(id, owner)
	if err != nil {
		return nil, err
	}

	placed, err := sess.submitter.Submit(ctx, owner)
	if err != nil {
		return nil, err
	}

	s.discard(sess)

	return placed, nil
}

func (s *CartService) Close(id, owner string) error {
	sess, err := s.session(id, owner)
	if err != nil {
		return err
	}

	s.discard(sess)
	s.logger.Infow("cart closed", "cart_id", id, "user_id", owner)

	return nil
}

func (s *CartService) Catalog(ctx context.Context, availableOnly bool) ([]domain.MenuItem, error) {
	items, err := s.inventory.ListMenuItems(ctx, availableOnly)
	if err != nil {
		return nil, err
	}

	return items, nil
}

// SweepIdle discards sessions untouched for longer than the idle TTL and
// returns how many were removed. Sessions with a submission in flight stay.
func (s *CartService) SweepIdle() int {
	if s.config.IdleTTL <= 0 {
		return 0
	}

	cutoff := s.now().Add(-s.config.IdleTTL)

	s.mu.Lock()
	var idle []*session
	for _, sess := range s.sessions {
		sess.mu.Lock()
		expired := sess.lastSeen.Before(cutoff)
		sess.mu.Unlock()

		if expired && !sess.submitter.Submitting() {
			idle = append(idle, sess)
		}
	}
	s.mu.Unlock()

	for _, sess := range idle {
		s.discard(sess)
		s.logger.Infow("idle cart discarded", "cart_id", sess.id, "user_id", sess.owner)
	}

	return len(idle)
}

func (s *CartService) OpenCarts() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.sessions)
}

func (s *CartService) session(id, owner string) (*session, error) {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	s.mu.Unlock()

	if !ok || sess.owner != owner {
		return nil, ErrCartNotFound
	}

	sess.mu.Lock()
	sess.lastSeen = s.now()
	sess.mu.Unlock()

	return sess, nil
}

func (s *CartService) discard(sess *session) {
	s.mu.Lock()
	delete(s.sessions, sess.id)
	s.mu.Unlock()

	sess.checker.Close()
	sess.store.Clear()
}

func (s *CartService) refreshCatalog(ctx context.Context, sess *session, force bool) error {
	sess.mu.Lock()
	fresh := !sess.catalogAt.IsZero() && s.now().Sub(sess.catalogAt) < s.config.CatalogTTL
	sess.mu.Unlock()

	if fresh && !force {
		return nil
	}

	items, err := s.inventory.ListMenuItems(ctx, true)
	if err != nil {
		return err
	}

	catalog := make(map[int64]domain.MenuItem, len(items))
	for _, item := range items {
		catalog[item.ID] = item
	}

	sess.mu.Lock()
	sess.catalog = catalog
	sess.catalogAt = s.now()
	sess.mu.Unlock()

	return nil
}

func (s *CartService) view(sess *session) *CartView {
	snap := sess.store.Snapshot()
	state := sess.checker.State()

	sess.mu.Lock()
	catalog := sess.catalog
	sess.mu.Unlock()

	lines := snap.Cart.Lines()
	out := &CartView{
		ID:         sess.id,
		Version:    snap.Version,
		Lines:      make([]LineView, 0, len(lines)),
		TotalPrice: snap.Cart.TotalPrice(),
		Check: CheckView{
			Status:      state.Status,
			CartVersion: state.CartVersion,
			Verdict:     state.Verdict,
		},
		Submission: sess.submitter.GateFor(snap, state),
	}

	if state.Err != nil {
		out.Check.Error = state.Err.Error()
	}
	if !state.CheckedAt.IsZero() {
		checkedAt := state.CheckedAt
		out.Check.CheckedAt = &checkedAt
	}

	for _, l := range lines {
		orderable := true
		if catalog != nil {
			_, orderable = catalog[l.MenuItemID]
		}
		out.Lines = append(out.Lines, LineView{
			CartLine:  l,
			Subtotal:  l.Subtotal(),
			Orderable: orderable,
		})
	}

	return out
}

func (sess *session) catalogItem(id int64) (domain.MenuItem, bool) {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	item, ok := sess.catalog[id]
	return item, ok
}
