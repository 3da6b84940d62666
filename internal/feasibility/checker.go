package feasibility

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sh1vam31/food-inventory-console/internal/cart"
	"github.com/sh1vam31/food-inventory-console/internal/domain"
	"go.uber.org/zap"
)

var errEmptyVerdict = errors.New("inventory service returned an empty verdict")

type Status string

const (
	StatusIdle     Status = "idle"
	StatusChecking Status = "checking"
	StatusVerified Status = "verified"
	StatusFailed   Status = "check_failed"
)

type Inventory interface {
	CheckFeasibility(ctx context.Context, lines []domain.CompositionLine) (*domain.Verdict, error)
}

type Config struct {
	// Timeout bounds a single check. Zero means no timeout.
	Timeout time.Duration
	// Debounce delays issuing a check so bursts of edits cost one request.
	// Zero issues a check per mutation.
	Debounce time.Duration
}

// State is what the checker knows about the cart at CartVersion.
//
// Verdict is the last successful verdict and may belong to an older version
// while Status is checking or check_failed; only StatusVerified makes it
// current. Composition is the payload Verdict was computed for.
type State struct {
	Status      Status
	CartVersion uint64
	Seq         uint64
	Verdict     *domain.Verdict
	Composition []domain.CompositionLine
	Err         error
	CheckedAt   time.Time
}

// Current reports whether the state is a verdict for exactly this version.
func (s State) Current(version uint64) bool {
	return s.Status == StatusVerified && s.CartVersion == version && s.Verdict != nil
}

// Checker keeps a verdict aligned with the cart. Every observed snapshot
// supersedes the previous request: the superseded context is cancelled and
// any response carrying an old sequence number is dropped, so the latest
// request wins no matter the order responses arrive in.
type Checker struct {
	inventory Inventory
	config    Config
	logger    *zap.SugaredLogger

	mu     sync.Mutex
	state  State
	seq    uint64
	cancel context.CancelFunc
	timer  *time.Timer
	closed bool
}

func New(inventory Inventory, cfg Config, logger *zap.SugaredLogger) *Checker {
	return &Checker{
		inventory: inventory,
		config:    cfg,
		logger:    logger,
		state:     State{Status: StatusIdle},
	}
}

// Attach subscribes the checker to store mutations.
func (c *Checker) Attach(store *cart.Store) {
	store.Subscribe(c.Observe)
}

// Observe reacts to a cart snapshot. Snapshots older than the last one seen
// are ignored; a snapshot with the same version forces a fresh check.
func (c *Checker) Observe(snap cart.Snapshot) {
	c.mu.Lock()
	if c.closed || snap.Version < c.state.CartVersion {
		c.mu.Unlock()
		return
	}

	c.supersede()
	c.seq++

	if snap.Cart.IsEmpty() {
		c.state = State{Status: StatusIdle, CartVersion: snap.Version, Seq: c.seq}
		c.mu.Unlock()
		return
	}

	seq := c.seq
	lines := snap.Cart.Composition()

	c.state.Status = StatusChecking
	c.state.CartVersion = snap.Version
	c.state.Seq = seq
	c.state.Err = nil

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel

	if c.config.Debounce > 0 {
		c.timer = time.AfterFunc(c.config.Debounce, func() {
			c.run(ctx, cancel, seq, snap.Version, lines)
		})
	} else {
		go c.run(ctx, cancel, seq, snap.Version, lines)
	}

	c.mu.Unlock()
}

// Recheck issues a fresh check for snap even if its version was already checked.
func (c *Checker) Recheck(snap cart.Snapshot) {
	c.Observe(snap)
}

func (c *Checker) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// Close cancels any pending or in-flight check. Later snapshots are ignored.
func (c *Checker) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	c.supersede()
}

func (c *Checker) supersede() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

func (c *Checker) run(ctx context.Context, cancel context.CancelFunc, seq, version uint64, lines []domain.CompositionLine) {
	defer cancel()

	if c.config.Timeout > 0 {
		var timeoutCancel context.CancelFunc
		ctx, timeoutCancel = context.WithTimeout(ctx, c.config.Timeout)
		defer timeoutCancel()
	}

	verdict, err := c.inventory.CheckFeasibility(ctx, lines)
	if err == nil && verdict == nil {
		err = errEmptyVerdict
	}

	c.mu.Lock()
	if seq != c.seq || c.closed {
		latest := c.seq
		c.mu.Unlock()
		c.logger.Debugw("discarding superseded feasibility response", "seq", seq, "latest_seq", latest)
		return
	}

	c.cancel = nil
	c.timer = nil
	c.state.CheckedAt = time.Now()

	if err != nil {
		c.state.Status = StatusFailed
		c.state.Err = err
		c.logger.Warnw("feasibility check failed", "seq", seq, "cart_version", version, "error", err)
	} else {
		c.state.Status = StatusVerified
		c.state.Verdict = verdict
		c.state.Composition = lines
		c.state.Err = nil
		c.logger.Debugw("feasibility check completed", "seq", seq, "cart_version", version, "can_fulfill", verdict.CanFulfill)
	}

	c.mu.Unlock()
}
