// Package cart contains the cart domain model: lines keyed by remote id, the
// total-price computation, and the removal-draft state machine.
package cart

import (
	"errors"
	"math"
	"sort"
)

// Line is one item-and-quantity entry within a user's remote cart. IDs are
// assigned by the backend and unique per owning identity. A line never
// persists with Quantity below 1; reaching 0 removes it from the cart.
type Line struct {
	ID        int     `json:"id"`
	ItemName  string  `json:"pizzaName"`
	UnitPrice float64 `json:"pizzaPrice"`
	Quantity  int     `json:"quantity"`
}

// Subtotal returns UnitPrice times Quantity, unrounded.
func (l Line) Subtotal() float64 {
	return l.UnitPrice * float64(l.Quantity)
}

// Cart is the local view of one identity's remote cart, keyed by line id.
type Cart map[int]Line

// FromLines builds a Cart from a backend line listing. Later duplicates of
// an id win, matching a wholesale replace.
func FromLines(lines []Line) Cart {
	c := make(Cart, len(lines))
	for _, l := range lines {
		c[l.ID] = l
	}
	return c
}

// Clone returns an independent copy of the cart.
func (c Cart) Clone() Cart {
	out := make(Cart, len(c))
	for id, l := range c {
		out[id] = l
	}
	return out
}

// Sorted returns the lines ordered by id, for stable display.
func (c Cart) Sorted() []Line {
	out := make([]Line, 0, len(c))
	for _, l := range c {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// TotalPrice sums UnitPrice times Quantity over all lines, rounded to two
// decimal places for display. Pure; recomputed on every call.
func (c Cart) TotalPrice() float64 {
	var total float64
	for _, l := range c {
		total += l.Subtotal()
	}
	return math.Round(total*100) / 100
}

// ErrNoDraft is returned when a draft operation runs without an open draft.
var ErrNoDraft = errors.New("no removal draft open")

// RemovalDraft is an in-progress, uncommitted removal-quantity selection.
// BoundsMax is snapshotted from the line's quantity at draft-open time, so a
// concurrent mutation of the same line cannot invalidate a draft in flight.
type RemovalDraft struct {
	LineID    int
	Requested int
	BoundsMax int
}

// NewRemovalDraft opens a draft for the given line, seeding the requested
// amount to the line's full quantity.
func NewRemovalDraft(line Line) RemovalDraft {
	return RemovalDraft{
		LineID:    line.ID,
		Requested: line.Quantity,
		BoundsMax: line.Quantity,
	}
}

// Adjust moves the requested amount by delta, clamped to [0, BoundsMax].
// Zero is a legal draft value even though a line never persists at quantity
// zero: committing a zero draft is treated as committing BoundsMax and
// removes the line outright.
func (d *RemovalDraft) Adjust(delta int) {
	next := d.Requested + delta
	if next < 0 {
		next = 0
	}
	if next > d.BoundsMax {
		next = d.BoundsMax
	}
	d.Requested = next
}

// Amount resolves the quantity a commit should remove: the requested amount,
// or the full BoundsMax when the draft was adjusted down to zero.
func (d RemovalDraft) Amount() int {
	if d.Requested == 0 {
		return d.BoundsMax
	}
	return d.Requested
}
