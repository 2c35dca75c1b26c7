package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/slicelab/storefront/internal/domain/cart"
	apperrors "github.com/slicelab/storefront/internal/errors"
	"github.com/slicelab/storefront/internal/mocks"
	"github.com/slicelab/storefront/internal/ports"
)

const testEmail = "ana@x.com"

func newTestCartController(t *testing.T) (*CartController, *mocks.MockCartBackend) {
	t.Helper()

	ctrl := gomock.NewController(t)
	backend := mocks.NewMockCartBackend(ctrl)
	c := NewCartController(CartControllerOptions{Backend: backend})
	return c, backend
}

// seedCart refreshes the controller from a stubbed fetch so tests start from
// a known local view.
func seedCart(t *testing.T, c *CartController, backend *mocks.MockCartBackend, lines []cart.Line) {
	t.Helper()

	backend.EXPECT().FetchCart(gomock.Any(), testEmail).Return(lines, nil)
	require.NoError(t, c.Refresh(context.Background(), testEmail))
}

func TestCartController_Refresh_ReplacesWholesale(t *testing.T) {
	c, backend := newTestCartController(t)
	seedCart(t, c, backend, []cart.Line{
		{ID: 1, ItemName: "Pepperoni", UnitPrice: 11.50, Quantity: 1},
	})

	backend.EXPECT().FetchCart(gomock.Any(), testEmail).Return([]cart.Line{
		{ID: 7, ItemName: "Margherita", UnitPrice: 9.00, Quantity: 3},
	}, nil)
	require.NoError(t, c.Refresh(context.Background(), testEmail))

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "Margherita", lines[7].ItemName)

	_, ok := c.Line(1)
	assert.False(t, ok)
}

func TestCartController_Refresh_NoIdentityIsNoop(t *testing.T) {
	c, _ := newTestCartController(t)

	require.NoError(t, c.Refresh(context.Background(), ""))
	assert.Empty(t, c.Lines())
}

func TestCartController_Refresh_FailureLeavesViewUntouched(t *testing.T) {
	c, backend := newTestCartController(t)
	seedCart(t, c, backend, []cart.Line{
		{ID: 7, ItemName: "Margherita", UnitPrice: 9.00, Quantity: 3},
	})

	backend.EXPECT().FetchCart(gomock.Any(), testEmail).
		Return(nil, apperrors.Transport("backend unreachable"))

	err := c.Refresh(context.Background(), testEmail)

	require.Error(t, err)
	require.Len(t, c.Lines(), 1)
	assert.Equal(t, 3, c.Lines()[7].Quantity)
}

func TestCartController_Refresh_Idempotent(t *testing.T) {
	c, backend := newTestCartController(t)
	lines := []cart.Line{
		{ID: 7, ItemName: "Margherita", UnitPrice: 9.00, Quantity: 3},
		{ID: 9, ItemName: "Quattro Formaggi", UnitPrice: 12.25, Quantity: 2},
	}

	backend.EXPECT().FetchCart(gomock.Any(), testEmail).Return(lines, nil).Times(2)

	require.NoError(t, c.Refresh(context.Background(), testEmail))
	first := c.Lines()
	require.NoError(t, c.Refresh(context.Background(), testEmail))

	assert.Equal(t, first, c.Lines())
}

func TestCartController_AddItem_Success(t *testing.T) {
	c, backend := newTestCartController(t)

	in := ports.AddItemInput{Email: testEmail, ItemName: "Margherita", UnitPrice: 9.00, Quantity: 2}
	backend.EXPECT().AddItem(gomock.Any(), in).Return(nil)

	added, err := c.AddItem(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, 2, added)

	// No speculative local merge; the next Refresh reconciles.
	assert.Empty(t, c.Lines())
}

func TestCartController_AddItem_Validation(t *testing.T) {
	c, _ := newTestCartController(t)

	tests := []struct {
		name string
		in   ports.AddItemInput
	}{
		{
			name: "missing email",
			in:   ports.AddItemInput{ItemName: "Margherita", UnitPrice: 9.00, Quantity: 1},
		},
		{
			name: "zero quantity",
			in:   ports.AddItemInput{Email: testEmail, ItemName: "Margherita", UnitPrice: 9.00},
		},
		{
			name: "negative price",
			in:   ports.AddItemInput{Email: testEmail, ItemName: "Margherita", UnitPrice: -1, Quantity: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.AddItem(context.Background(), tt.in)
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))
		})
	}
}

func TestCartController_AddItem_BackendError(t *testing.T) {
	c, backend := newTestCartController(t)

	in := ports.AddItemInput{Email: testEmail, ItemName: "Margherita", UnitPrice: 9.00, Quantity: 1}
	backend.EXPECT().AddItem(gomock.Any(), in).
		Return(apperrors.Rejected("pizza is off the menu"))

	_, err := c.AddItem(context.Background(), in)

	require.Error(t, err)
	assert.True(t, apperrors.IsRejected(err))
}

func TestCartController_RemoveQuantity_Partial(t *testing.T) {
	c, backend := newTestCartController(t)
	seedCart(t, c, backend, []cart.Line{
		{ID: 7, ItemName: "Margherita", UnitPrice: 9.00, Quantity: 3},
	})

	backend.EXPECT().
		RemoveQuantity(gomock.Any(), ports.RemoveInput{LineID: 7, Email: testEmail, Amount: 2}).
		Return(nil)

	require.NoError(t, c.RemoveQuantity(context.Background(), 7, testEmail, 2))

	line, ok := c.Line(7)
	require.True(t, ok)
	assert.Equal(t, 1, line.Quantity)
	assert.InDelta(t, 9.00, c.TotalPrice(), 1e-9)
}

func TestCartController_RemoveQuantity_FullRemovesLine(t *testing.T) {
	c, backend := newTestCartController(t)
	seedCart(t, c, backend, []cart.Line{
		{ID: 7, ItemName: "Margherita", UnitPrice: 9.00, Quantity: 3},
		{ID: 9, ItemName: "Quattro Formaggi", UnitPrice: 12.25, Quantity: 1},
	})

	backend.EXPECT().
		RemoveQuantity(gomock.Any(), ports.RemoveInput{LineID: 7, Email: testEmail, Amount: 3}).
		Return(nil)

	require.NoError(t, c.RemoveQuantity(context.Background(), 7, testEmail, 3))

	_, ok := c.Line(7)
	assert.False(t, ok)
	assert.Len(t, c.Lines(), 1)
	assert.InDelta(t, 12.25, c.TotalPrice(), 1e-9)
}

func TestCartController_RemoveQuantity_BackendFailureLeavesViewUntouched(t *testing.T) {
	c, backend := newTestCartController(t)
	seedCart(t, c, backend, []cart.Line{
		{ID: 7, ItemName: "Margherita", UnitPrice: 9.00, Quantity: 3},
	})

	backend.EXPECT().
		RemoveQuantity(gomock.Any(), gomock.Any()).
		Return(apperrors.Transport("backend unreachable"))

	err := c.RemoveQuantity(context.Background(), 7, testEmail, 2)

	require.Error(t, err)
	line, ok := c.Line(7)
	require.True(t, ok)
	assert.Equal(t, 3, line.Quantity)
}

func TestCartController_RemoveQuantity_AmountValidation(t *testing.T) {
	c, _ := newTestCartController(t)

	err := c.RemoveQuantity(context.Background(), 7, testEmail, 0)

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestCartController_RemoveQuantity_UnknownLineStillSubmits(t *testing.T) {
	c, backend := newTestCartController(t)

	// The remote store is authoritative even when the local view lags.
	backend.EXPECT().
		RemoveQuantity(gomock.Any(), ports.RemoveInput{LineID: 42, Email: testEmail, Amount: 1}).
		Return(nil)

	require.NoError(t, c.RemoveQuantity(context.Background(), 42, testEmail, 1))
	assert.Empty(t, c.Lines())
}

func TestCartController_TotalPrice(t *testing.T) {
	c, backend := newTestCartController(t)
	seedCart(t, c, backend, []cart.Line{
		{ID: 7, ItemName: "Margherita", UnitPrice: 9.00, Quantity: 3},
		{ID: 9, ItemName: "Quattro Formaggi", UnitPrice: 12.25, Quantity: 2},
	})

	assert.InDelta(t, 51.50, c.TotalPrice(), 1e-9)
}

func TestCartController_Clear(t *testing.T) {
	c, backend := newTestCartController(t)
	seedCart(t, c, backend, []cart.Line{
		{ID: 7, ItemName: "Margherita", UnitPrice: 9.00, Quantity: 3},
	})
	_, err := c.OpenRemovalDraft(7)
	require.NoError(t, err)

	c.Clear()

	assert.Empty(t, c.Lines())
	assert.Zero(t, c.TotalPrice())
	_, open := c.Draft()
	assert.False(t, open)
}

func TestCartController_Lines_SnapshotIsolation(t *testing.T) {
	c, backend := newTestCartController(t)
	seedCart(t, c, backend, []cart.Line{
		{ID: 7, ItemName: "Margherita", UnitPrice: 9.00, Quantity: 3},
	})

	snap := c.Lines()
	line := snap[7]
	line.Quantity = 99
	snap[7] = line

	got, ok := c.Line(7)
	require.True(t, ok)
	assert.Equal(t, 3, got.Quantity)
}

func TestCartController_OpenRemovalDraft(t *testing.T) {
	c, backend := newTestCartController(t)
	seedCart(t, c, backend, []cart.Line{
		{ID: 7, ItemName: "Margherita", UnitPrice: 9.00, Quantity: 3},
	})

	d, err := c.OpenRemovalDraft(7)

	require.NoError(t, err)
	assert.Equal(t, 7, d.LineID)
	assert.Equal(t, 3, d.Requested)
	assert.Equal(t, 3, d.BoundsMax)
}

func TestCartController_OpenRemovalDraft_UnknownLine(t *testing.T) {
	c, _ := newTestCartController(t)

	_, err := c.OpenRemovalDraft(7)

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestCartController_AdjustDraft_Clamps(t *testing.T) {
	c, backend := newTestCartController(t)
	seedCart(t, c, backend, []cart.Line{
		{ID: 7, ItemName: "Margherita", UnitPrice: 9.00, Quantity: 3},
	})
	_, err := c.OpenRemovalDraft(7)
	require.NoError(t, err)

	d, err := c.AdjustDraft(+5)
	require.NoError(t, err)
	assert.Equal(t, 3, d.Requested)

	d, err = c.AdjustDraft(-10)
	require.NoError(t, err)
	assert.Equal(t, 0, d.Requested)
}

func TestCartController_AdjustDraft_NoDraft(t *testing.T) {
	c, _ := newTestCartController(t)

	_, err := c.AdjustDraft(1)

	assert.ErrorIs(t, err, cart.ErrNoDraft)
}

func TestCartController_CommitDraft_SubmitsRequestedAmount(t *testing.T) {
	c, backend := newTestCartController(t)
	seedCart(t, c, backend, []cart.Line{
		{ID: 7, ItemName: "Margherita", UnitPrice: 9.00, Quantity: 3},
	})
	_, err := c.OpenRemovalDraft(7)
	require.NoError(t, err)
	_, err = c.AdjustDraft(-1)
	require.NoError(t, err)

	backend.EXPECT().
		RemoveQuantity(gomock.Any(), ports.RemoveInput{LineID: 7, Email: testEmail, Amount: 2}).
		Return(nil)

	require.NoError(t, c.CommitDraft(context.Background(), testEmail))

	line, ok := c.Line(7)
	require.True(t, ok)
	assert.Equal(t, 1, line.Quantity)

	_, open := c.Draft()
	assert.False(t, open)
}

func TestCartController_CommitDraft_ZeroMeansFullRemoval(t *testing.T) {
	c, backend := newTestCartController(t)
	seedCart(t, c, backend, []cart.Line{
		{ID: 7, ItemName: "Margherita", UnitPrice: 9.00, Quantity: 3},
	})
	_, err := c.OpenRemovalDraft(7)
	require.NoError(t, err)
	_, err = c.AdjustDraft(-3)
	require.NoError(t, err)

	backend.EXPECT().
		RemoveQuantity(gomock.Any(), ports.RemoveInput{LineID: 7, Email: testEmail, Amount: 3}).
		Return(nil)

	require.NoError(t, c.CommitDraft(context.Background(), testEmail))

	_, ok := c.Line(7)
	assert.False(t, ok)
}

func TestCartController_CommitDraft_FailureDiscardsDraft(t *testing.T) {
	c, backend := newTestCartController(t)
	seedCart(t, c, backend, []cart.Line{
		{ID: 7, ItemName: "Margherita", UnitPrice: 9.00, Quantity: 3},
	})
	_, err := c.OpenRemovalDraft(7)
	require.NoError(t, err)

	backend.EXPECT().
		RemoveQuantity(gomock.Any(), gomock.Any()).
		Return(apperrors.Transport("backend unreachable"))

	err = c.CommitDraft(context.Background(), testEmail)

	require.Error(t, err)
	_, open := c.Draft()
	assert.False(t, open)

	line, ok := c.Line(7)
	require.True(t, ok)
	assert.Equal(t, 3, line.Quantity)
}

func TestCartController_CommitDraft_NoDraft(t *testing.T) {
	c, _ := newTestCartController(t)

	err := c.CommitDraft(context.Background(), testEmail)

	assert.ErrorIs(t, err, cart.ErrNoDraft)
}

func TestCartController_CancelDraft(t *testing.T) {
	c, backend := newTestCartController(t)
	seedCart(t, c, backend, []cart.Line{
		{ID: 7, ItemName: "Margherita", UnitPrice: 9.00, Quantity: 3},
	})
	_, err := c.OpenRemovalDraft(7)
	require.NoError(t, err)

	c.CancelDraft()

	_, open := c.Draft()
	assert.False(t, open)

	line, ok := c.Line(7)
	require.True(t, ok)
	assert.Equal(t, 3, line.Quantity)

	// Cancel with nothing open is a no-op.
	c.CancelDraft()
}

func TestCartController_OpenRemovalDraft_ReplacesPrior(t *testing.T) {
	c, backend := newTestCartController(t)
	seedCart(t, c, backend, []cart.Line{
		{ID: 7, ItemName: "Margherita", UnitPrice: 9.00, Quantity: 3},
		{ID: 9, ItemName: "Quattro Formaggi", UnitPrice: 12.25, Quantity: 2},
	})

	_, err := c.OpenRemovalDraft(7)
	require.NoError(t, err)
	_, err = c.OpenRemovalDraft(9)
	require.NoError(t, err)

	d, open := c.Draft()
	require.True(t, open)
	assert.Equal(t, 9, d.LineID)
	assert.Equal(t, 2, d.BoundsMax)
}
