package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sh1vam31/food-inventory-console/internal/domain"
	"github.com/sh1vam31/food-inventory-console/internal/feasibility"
	"github.com/sh1vam31/food-inventory-console/internal/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	margherita = domain.MenuItem{ID: 1, Name: "Pizza Margherita", Price: 12.99, IsAvailable: true}
	carbonara  = domain.MenuItem{ID: 2, Name: "Carbonara", Price: 9.50, IsAvailable: true}
)

type fakeInventory struct {
	mu          sync.Mutex
	catalog     []domain.MenuItem
	catalogErr  error
	canFulfill  bool
	createErr   error
	createBlock chan struct{}
	created     [][]domain.CompositionLine
}

func (f *fakeInventory) ListMenuItems(_ context.Context, _ bool) ([]domain.MenuItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.catalogErr != nil {
		return nil, f.catalogErr
	}
	return append([]domain.MenuItem(nil), f.catalog...), nil
}

func (f *fakeInventory) CheckFeasibility(_ context.Context, lines []domain.CompositionLine) (*domain.Verdict, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &domain.Verdict{CanFulfill: f.canFulfill}, nil
}

func (f *fakeInventory) CreateOrder(_ context.Context, lines []domain.CompositionLine) (*domain.Order, error) {
	if f.createBlock != nil {
		<-f.createBlock
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, lines)
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &domain.Order{ID: 7, Status: domain.OrderStatusPlaced}, nil
}

func (f *fakeInventory) set(fn func(f *fakeInventory)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn(f)
}

func newCartService(inv *fakeInventory) *CartService {
	return NewCartService(inv, nil, CartConfig{
		CheckTimeout:  time.Second,
		SubmitTimeout: time.Second,
		IdleTTL:       time.Minute,
	}, zap.NewNop().Sugar())
}

func waitSettled(t *testing.T, svc *CartService, id, owner string) *CartView {
	t.Helper()
	var view *CartView
	require.Eventually(t, func() bool {
		v, err := svc.View(context.Background(), id, owner)
		if err != nil {
			return false
		}
		view = v
		return v.Check.Status != feasibility.StatusChecking
	}, time.Second, 5*time.Millisecond)
	return view
}

func TestCartService_OpenAddAndView(t *testing.T) {
	inv := &fakeInventory{catalog: []domain.MenuItem{margherita, carbonara}, canFulfill: true}
	svc := newCartService(inv)
	ctx := context.Background()

	opened, err := svc.Open(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, opened.Lines)
	assert.Equal(t, feasibility.StatusIdle, opened.Check.Status)
	assert.Equal(t, order.ReasonEmptyCart, opened.Submission.Reason)

	_, err = svc.AddItem(ctx, opened.ID, "u1", margherita.ID)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, opened.ID, "u1", margherita.ID)
	require.NoError(t, err)

	view := waitSettled(t, svc, opened.ID, "u1")
	require.Len(t, view.Lines, 1)
	assert.Equal(t, 2, view.Lines[0].Quantity)
	assert.True(t, view.Lines[0].Orderable)
	assert.InDelta(t, 25.98, view.Lines[0].Subtotal, 1e-9)
	assert.InDelta(t, 25.98, view.TotalPrice, 1e-9)
	assert.Equal(t, feasibility.StatusVerified, view.Check.Status)
	assert.True(t, view.Submission.Enabled)
}

func TestCartService_AddUnknownItem(t *testing.T) {
	inv := &fakeInventory{catalog: []domain.MenuItem{margherita}}
	svc := newCartService(inv)
	ctx := context.Background()

	opened, err := svc.Open(ctx, "u1")
	require.NoError(t, err)

	_, err = svc.AddItem(ctx, opened.ID, "u1", 99)
	assert.ErrorIs(t, err, ErrMenuItemNotFound)
}

func TestCartService_AddItemCatalogUnavailable(t *testing.T) {
	inv := &fakeInventory{catalogErr: errors.New("connection refused")}
	svc := newCartService(inv)
	ctx := context.Background()

	opened, err := svc.Open(ctx, "u1")
	require.NoError(t, err)

	_, err = svc.AddItem(ctx, opened.ID, "u1", margherita.ID)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMenuItemNotFound)
}

func TestCartService_OtherOwnerCannotSeeCart(t *testing.T) {
	svc := newCartService(&fakeInventory{catalog: []domain.MenuItem{margherita}})
	ctx := context.Background()

	opened, err := svc.Open(ctx, "u1")
	require.NoError(t, err)

	_, err = svc.View(ctx, opened.ID, "u2")
	assert.ErrorIs(t, err, ErrCartNotFound)
	_, err = svc.AddItem(ctx, opened.ID, "u2", margherita.ID)
	assert.ErrorIs(t, err, ErrCartNotFound)
	assert.ErrorIs(t, svc.Close(opened.ID, "u2"), ErrCartNotFound)
}

func TestCartService_FlagsLinesMissingFromCatalog(t *testing.T) {
	inv := &fakeInventory{catalog: []domain.MenuItem{margherita, carbonara}, canFulfill: true}
	svc := newCartService(inv)
	ctx := context.Background()

	opened, err := svc.Open(ctx, "u1")
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, opened.ID, "u1", margherita.ID)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, opened.ID, "u1", carbonara.ID)
	require.NoError(t, err)

	// carbonara is made unavailable server-side
	inv.set(func(f *fakeInventory) { f.catalog = []domain.MenuItem{margherita} })

	view, err := svc.View(ctx, opened.ID, "u1")
	require.NoError(t, err)
	require.Len(t, view.Lines, 2)
	assert.True(t, view.Lines[0].Orderable)
	assert.False(t, view.Lines[1].Orderable)
	assert.Equal(t, "Carbonara", view.Lines[1].MenuItem.Name)
}

func TestCartService_SetQuantityAndRemove(t *testing.T) {
	inv := &fakeInventory{catalog: []domain.MenuItem{margherita, carbonara}, canFulfill: true}
	svc := newCartService(inv)
	ctx := context.Background()

	opened, err := svc.Open(ctx, "u1")
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, opened.ID, "u1", margherita.ID)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, opened.ID, "u1", carbonara.ID)
	require.NoError(t, err)

	view, err := svc.SetQuantity(ctx, opened.ID, "u1", margherita.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, view.Lines[0].Quantity)

	unchanged, err := svc.SetQuantity(ctx, opened.ID, "u1", 99, 3)
	require.NoError(t, err)
	assert.Equal(t, view.Version, unchanged.Version)

	view, err = svc.SetQuantity(ctx, opened.ID, "u1", margherita.ID, 0)
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)

	view, err = svc.RemoveItem(ctx, opened.ID, "u1", carbonara.ID)
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
	assert.Zero(t, view.TotalPrice)
	assert.Equal(t, feasibility.StatusIdle, view.Check.Status)
}

func TestCartService_SubmitSuccessDiscardsCart(t *testing.T) {
	inv := &fakeInventory{catalog: []domain.MenuItem{margherita}, canFulfill: true}
	svc := newCartService(inv)
	ctx := context.Background()

	opened, err := svc.Open(ctx, "u1")
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, opened.ID, "u1", margherita.ID)
	require.NoError(t, err)
	waitSettled(t, svc, opened.ID, "u1")

	placed, err := svc.Submit(ctx, opened.ID, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(7), placed.ID)

	_, err = svc.View(ctx, opened.ID, "u1")
	assert.ErrorIs(t, err, ErrCartNotFound)
	assert.Zero(t, svc.OpenCarts())
}

func TestCartService_SubmitRejectedKeepsCart(t *testing.T) {
	inv := &fakeInventory{catalog: []domain.MenuItem{margherita}, canFulfill: true}
	svc := newCartService(inv)
	ctx := context.Background()

	opened, err := svc.Open(ctx, "u1")
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, opened.ID, "u1", margherita.ID)
	require.NoError(t, err)
	waitSettled(t, svc, opened.ID, "u1")

	inv.set(func(f *fakeInventory) {
		f.createErr = errors.New("Insufficient inventory")
		f.canFulfill = false
	})

	_, err = svc.Submit(ctx, opened.ID, "u1")
	var rejected *order.RejectedError
	require.ErrorAs(t, err, &rejected)

	view := waitSettled(t, svc, opened.ID, "u1")
	require.Len(t, view.Lines, 1)
	assert.False(t, view.Check.Verdict.CanFulfill)
	assert.Equal(t, order.ReasonInfeasible, view.Submission.Reason)
}

func TestCartService_SubmitGateClosed(t *testing.T) {
	inv := &fakeInventory{catalog: []domain.MenuItem{margherita}, canFulfill: false}
	svc := newCartService(inv)
	ctx := context.Background()

	opened, err := svc.Open(ctx, "u1")
	require.NoError(t, err)
	_, err = svc.Submit(ctx, opened.ID, "u1")
	assert.ErrorIs(t, err, order.ErrEmptyCart)

	_, err = svc.AddItem(ctx, opened.ID, "u1", margherita.ID)
	require.NoError(t, err)
	waitSettled(t, svc, opened.ID, "u1")

	_, err = svc.Submit(ctx, opened.ID, "u1")
	assert.ErrorIs(t, err, order.ErrInfeasible)
	assert.Empty(t, inv.created)
}

func TestCartService_EditsLockedDuringSubmission(t *testing.T) {
	inv := &fakeInventory{catalog: []domain.MenuItem{margherita}, canFulfill: true, createBlock: make(chan struct{})}
	svc := newCartService(inv)
	ctx := context.Background()

	opened, err := svc.Open(ctx, "u1")
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, opened.ID, "u1", margherita.ID)
	require.NoError(t, err)
	waitSettled(t, svc, opened.ID, "u1")

	done := make(chan error, 1)
	go func() {
		_, err := svc.Submit(ctx, opened.ID, "u1")
		done <- err
	}()

	require.Eventually(t, func() bool {
		v, err := svc.View(ctx, opened.ID, "u1")
		return err == nil && v.Submission.Reason == order.ReasonSubmitting
	}, time.Second, 5*time.Millisecond)

	_, err = svc.AddItem(ctx, opened.ID, "u1", margherita.ID)
	assert.ErrorIs(t, err, ErrCartLocked)
	_, err = svc.SetQuantity(ctx, opened.ID, "u1", margherita.ID, 5)
	assert.ErrorIs(t, err, ErrCartLocked)
	_, err = svc.RemoveItem(ctx, opened.ID, "u1", margherita.ID)
	assert.ErrorIs(t, err, ErrCartLocked)
	_, err = svc.Submit(ctx, opened.ID, "u1")
	assert.ErrorIs(t, err, order.ErrSubmissionInFlight)

	close(inv.createBlock)
	require.NoError(t, <-done)

	inv.mu.Lock()
	defer inv.mu.Unlock()
	require.Len(t, inv.created, 1)
	assert.Equal(t, 1, inv.created[0][0].Quantity)
}

func TestCartService_SweepIdle(t *testing.T) {
	svc := newCartService(&fakeInventory{catalog: []domain.MenuItem{margherita}})
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	ctx := context.Background()

	stale, err := svc.Open(ctx, "u1")
	require.NoError(t, err)

	now = now.Add(45 * time.Second)
	active, err := svc.Open(ctx, "u2")
	require.NoError(t, err)

	now = now.Add(30 * time.Second)
	assert.Equal(t, 1, svc.SweepIdle())

	_, err = svc.View(ctx, stale.ID, "u1")
	assert.ErrorIs(t, err, ErrCartNotFound)
	_, err = svc.View(ctx, active.ID, "u2")
	assert.NoError(t, err)
}
