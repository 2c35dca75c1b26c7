package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/slicelab/storefront/internal/domain/cart"
	apperrors "github.com/slicelab/storefront/internal/errors"
	"github.com/slicelab/storefront/internal/ports"
)

// CartControllerOptions groups dependencies for CartController.
type CartControllerOptions struct {
	Backend ports.CartBackend
	Logger  *slog.Logger
}

// CartController maintains a per-identity cart view consistent with the
// remote cart store. Every structural mutation is a small, independently
// retriable backend operation; the remote store is the source of truth and
// Refresh is the reconciliation point. The cart mapping is owned here
// exclusively; consumers only ever see snapshot copies.
type CartController struct {
	backend ports.CartBackend
	logger  *slog.Logger

	mu    sync.Mutex
	lines cart.Cart
	draft *cart.RemovalDraft
}

// NewCartController constructs a CartController with an empty local view.
func NewCartController(opts CartControllerOptions) *CartController {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &CartController{
		backend: opts.Backend,
		logger:  logger,
		lines:   cart.Cart{},
	}
}

// Refresh fetches the identity's full cart and replaces the local mapping
// wholesale. Called whenever the cart view regains visibility: local state
// is never assumed stale-safe across navigation boundaries. A Refresh that
// lands after an optimistic removal overwrites it with the server's view,
// which is the designed reconciliation, not a bug. No-op without an
// identity. On failure the local view is left untouched.
func (c *CartController) Refresh(ctx context.Context, email string) error {
	if email == "" {
		return nil
	}

	fetched, err := c.backend.FetchCart(ctx, email)
	if err != nil {
		return fmt.Errorf("refresh cart: %w", err)
	}

	c.mu.Lock()
	c.lines = cart.FromLines(fetched)
	c.mu.Unlock()
	return nil
}

// AddItem submits an add-to-cart request and returns the quantity added for
// the caller's confirmation notice. Local state is not speculatively merged;
// the next Refresh reconciles. UnitPrice must already be a parsed,
// non-negative amount (currency symbols are the caller's problem, see
// util.ParsePrice).
func (c *CartController) AddItem(ctx context.Context, in ports.AddItemInput) (int, error) {
	if in.Email == "" {
		return 0, apperrors.Validation("sign in before adding to the cart")
	}
	if in.Quantity < 1 {
		return 0, apperrors.Validation("quantity must be at least 1")
	}
	if in.UnitPrice < 0 {
		return 0, apperrors.Validation("unit price cannot be negative")
	}

	if err := c.backend.AddItem(ctx, in); err != nil {
		return 0, err
	}
	return in.Quantity, nil
}

// RemoveQuantity submits a removal and, on success, applies an optimistic
// local update: the target line's quantity drops by amount, and the line is
// deleted outright when that reaches zero or below. This is the one local
// mutation without a round-trip refresh; it is safe because amount was drawn
// from the line's known quantity, so overshoot cannot occur under normal
// operation. On failure the local mapping is unchanged.
func (c *CartController) RemoveQuantity(ctx context.Context, lineID int, email string, amount int) error {
	if amount < 1 {
		return apperrors.Validation("removal amount must be at least 1")
	}

	err := c.backend.RemoveQuantity(ctx, ports.RemoveInput{LineID: lineID, Email: email, Amount: amount})
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	line, ok := c.lines[lineID]
	if !ok {
		return nil
	}
	remaining := line.Quantity - amount
	if remaining > 0 {
		line.Quantity = remaining
		c.lines[lineID] = line
	} else {
		delete(c.lines, lineID)
	}
	return nil
}

// Lines returns a snapshot copy of the cart mapping.
func (c *CartController) Lines() cart.Cart {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lines.Clone()
}

// Line returns a snapshot of one line.
func (c *CartController) Line(id int) (cart.Line, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	l, ok := c.lines[id]
	return l, ok
}

// TotalPrice recomputes the display total from the current mapping. Never
// cached.
func (c *CartController) TotalPrice() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lines.TotalPrice()
}

// Clear drops the local cart view, used on sign-out. The remote cart is not
// touched.
func (c *CartController) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = cart.Cart{}
	c.draft = nil
}

// OpenRemovalDraft opens a removal draft for the given line, seeding the
// requested amount to the line's current quantity. The bound is a snapshot
// taken now: a concurrent mutation of the line does not move it. Any prior
// draft is replaced.
func (c *CartController) OpenRemovalDraft(lineID int) (cart.RemovalDraft, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	line, ok := c.lines[lineID]
	if !ok {
		return cart.RemovalDraft{}, apperrors.Validationf("no cart line with id %d", lineID)
	}
	d := cart.NewRemovalDraft(line)
	c.draft = &d
	return d, nil
}

// AdjustDraft moves the open draft's requested amount by delta, clamped to
// [0, BoundsMax], and returns the updated draft.
func (c *CartController) AdjustDraft(delta int) (cart.RemovalDraft, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.draft == nil {
		return cart.RemovalDraft{}, cart.ErrNoDraft
	}
	c.draft.Adjust(delta)
	return *c.draft, nil
}

// CommitDraft submits the drafted removal and discards the draft whether or
// not the backend accepted it; the cart view either shows the optimistic
// update or, on failure, the untouched previous state.
func (c *CartController) CommitDraft(ctx context.Context, email string) error {
	c.mu.Lock()
	if c.draft == nil {
		c.mu.Unlock()
		return cart.ErrNoDraft
	}
	draft := *c.draft
	c.draft = nil
	c.mu.Unlock()

	return c.RemoveQuantity(ctx, draft.LineID, email, draft.Amount())
}

// CancelDraft discards the open draft without contacting the backend.
// Canceling with no draft open is a no-op.
func (c *CartController) CancelDraft() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft = nil
}

// Draft returns a snapshot of the open draft, if any.
func (c *CartController) Draft() (cart.RemovalDraft, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.draft == nil {
		return cart.RemovalDraft{}, false
	}
	return *c.draft, true
}
