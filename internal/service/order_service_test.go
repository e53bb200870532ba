package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"golden-thread/internal/apperror"
	"golden-thread/internal/domain"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestOrderService() (OrderService, *mockOrderRepository, *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 3, 14, 9, 26, 53, 589_000_000, time.UTC)}
	repo := newMockOrderRepository()
	return NewOrderService(repo, clock.Now), repo, clock
}

func floatPtr(f float64) *float64 { return &f }

func validCheckout() PlaceOrderInput {
	return PlaceOrderInput{
		Items: []domain.LineItem{
			{Key: "1:M", ProductID: 1, Name: "Goldline Bomber Jacket", Price: 189, Size: "M", Qty: 2},
			{Key: "3:4Y", ProductID: 3, Name: "Mini Explorer Hoodie", Price: 79, Size: "4Y", Qty: 1},
		},
		Address:  &domain.Address{Name: "Ayesha", Phone: "555-0100", Line: "1 Gold St", City: "Lahore"},
		Subtotal: floatPtr(457),
		Shipping: floatPtr(15),
		Total:    floatPtr(472),
	}
}

func TestPlaceOrder_StoresClientTotalsVerbatim(t *testing.T) {
	svc, repo, clock := newTestOrderService()

	input := validCheckout()
	// Deliberately inconsistent totals are accepted as sent
	input.Total = floatPtr(1)

	order, err := svc.PlaceOrder(context.Background(), 7, input)
	require.NoError(t, err)

	assert.Regexp(t, domain.OrderIDPattern, order.ID)
	assert.Equal(t, domain.StatusPlaced, order.Status)
	assert.Equal(t, clock.now, order.CreatedAt)
	assert.Equal(t, domain.Totals{Subtotal: 457, Shipping: 15, Total: 1}, order.Totals)
	assert.Equal(t, input.Items, repo.orders[order.ID].Items)
	assert.Equal(t, int64(7), repo.orders[order.ID].UserID)
}

func TestPlaceOrder_ValidationOrder(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*PlaceOrderInput)
		message string
	}{
		{"empty cart wins over everything", func(in *PlaceOrderInput) {
			in.Items = nil
			in.Address = nil
			in.Subtotal = nil
		}, "Cart is empty"},
		{"missing address before missing totals", func(in *PlaceOrderInput) {
			in.Address = &domain.Address{Name: "Ayesha", Phone: "555", Line: "1 Gold St"}
			in.Subtotal = nil
		}, "Missing address"},
		{"nil address", func(in *PlaceOrderInput) { in.Address = nil }, "Missing address"},
		{"missing subtotal", func(in *PlaceOrderInput) { in.Subtotal = nil }, "Missing totals"},
		{"missing total", func(in *PlaceOrderInput) { in.Total = nil }, "Missing totals"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newTestOrderService()
			input := validCheckout()
			tt.mutate(&input)

			_, err := svc.PlaceOrder(context.Background(), 1, input)
			require.Error(t, err)
			assert.True(t, apperror.Is(err, apperror.KindValidation))
			assert.Equal(t, tt.message, err.Error())
			assert.Empty(t, repo.orders)
		})
	}
}

func TestPlaceOrder_ZeroSubtotalIsPresent(t *testing.T) {
	svc, _, _ := newTestOrderService()
	input := validCheckout()
	input.Subtotal = floatPtr(0)

	_, err := svc.PlaceOrder(context.Background(), 1, input)
	assert.NoError(t, err)
}

func TestTrack_DerivedStatusTimeline(t *testing.T) {
	svc, _, clock := newTestOrderService()
	ctx := context.Background()

	order, err := svc.PlaceOrder(ctx, 1, validCheckout())
	require.NoError(t, err)

	// The stored status plays no part in what tracking shows
	_, _, err = svc.UpdateStatus(ctx, order.ID, "Delivered")
	require.NoError(t, err)

	steps := []struct {
		advance time.Duration
		want    domain.OrderStatus
	}{
		{0, domain.StatusPlaced},
		{2 * time.Minute, domain.StatusPacked},
		{2 * time.Minute, domain.StatusShipped},
		{3 * time.Minute, domain.StatusDelivered},
	}

	for _, step := range steps {
		clock.Advance(step.advance)
		tracked, err := svc.Track(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, step.want, tracked.DerivedStatus)
		assert.Equal(t, domain.StatusDelivered, tracked.Status)
	}
}

func TestTrack_CaseInsensitiveID(t *testing.T) {
	svc, _, _ := newTestOrderService()
	ctx := context.Background()

	order, err := svc.PlaceOrder(ctx, 1, validCheckout())
	require.NoError(t, err)

	tracked, err := svc.Track(ctx, strings.ToLower(order.ID))
	require.NoError(t, err)
	assert.Equal(t, order.ID, tracked.ID)

	_, err = svc.Track(ctx, "GT-0000-0000-0000")
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
	assert.Equal(t, "Not found", err.Error())
}

func TestUpdateStatus(t *testing.T) {
	svc, repo, _ := newTestOrderService()
	ctx := context.Background()

	order, err := svc.PlaceOrder(ctx, 1, validCheckout())
	require.NoError(t, err)

	t.Run("invalid status is rejected before lookup", func(t *testing.T) {
		_, _, err := svc.UpdateStatus(ctx, "GT-DOES-NOTE-XIST", "Cancelled")
		require.Error(t, err)
		assert.True(t, apperror.Is(err, apperror.KindValidation))
		assert.Equal(t, "Invalid status", err.Error())
	})

	t.Run("status literals are case sensitive", func(t *testing.T) {
		_, _, err := svc.UpdateStatus(ctx, order.ID, "shipped")
		assert.True(t, apperror.Is(err, apperror.KindValidation))
	})

	t.Run("unknown order", func(t *testing.T) {
		_, _, err := svc.UpdateStatus(ctx, "GT-0000-0000-0000", "Packed")
		assert.True(t, apperror.Is(err, apperror.KindNotFound))
	})

	t.Run("any transition is allowed", func(t *testing.T) {
		for _, status := range []string{"Delivered", "Placed", "Shipped"} {
			id, got, err := svc.UpdateStatus(ctx, strings.ToLower(order.ID), status)
			require.NoError(t, err)
			assert.Equal(t, order.ID, id)
			assert.Equal(t, domain.OrderStatus(status), got)
			assert.Equal(t, domain.OrderStatus(status), repo.orders[order.ID].Status)
		}
	})
}

func TestMyOrders_OnlyCallersOrders(t *testing.T) {
	svc, _, clock := newTestOrderService()
	ctx := context.Background()

	first, err := svc.PlaceOrder(ctx, 1, validCheckout())
	require.NoError(t, err)
	clock.Advance(time.Second)
	second, err := svc.PlaceOrder(ctx, 1, validCheckout())
	require.NoError(t, err)
	_, err = svc.PlaceOrder(ctx, 2, validCheckout())
	require.NoError(t, err)

	mine, err := svc.MyOrders(ctx, 1)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, second.ID, mine[0].ID)
	assert.Equal(t, first.ID, mine[1].ID)

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestListAll_RepositoryFailureIsInternal(t *testing.T) {
	svc, repo, _ := newTestOrderService()
	repo.err = errDatabaseDown

	_, err := svc.ListAll(context.Background())
	require.Error(t, err)
	assert.Equal(t, apperror.KindInternal, apperror.KindOf(err))
	assert.ErrorIs(t, err, errDatabaseDown)
}

func TestProperty_DerivedStatusIgnoresStoredStatus(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("derived status depends only on elapsed time", prop.ForAll(
		func(elapsedSeconds int, stored domain.OrderStatus) bool {
			svc, repo, clock := newTestOrderService()
			ctx := context.Background()

			order, err := svc.PlaceOrder(ctx, 1, validCheckout())
			if err != nil {
				return false
			}
			repo.orders[order.ID].Status = stored
			clock.Advance(time.Duration(elapsedSeconds) * time.Second)

			tracked, err := svc.Track(ctx, order.ID)
			if err != nil {
				return false
			}
			return tracked.DerivedStatus == domain.DeriveStatus(order.CreatedAt, clock.now)
		},
		gen.IntRange(0, 60*60),
		gen.OneConstOf(domain.StatusPlaced, domain.StatusPacked, domain.StatusShipped, domain.StatusDelivered),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
