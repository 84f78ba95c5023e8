package ordering

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T) *Order {
	t.Helper()
	item1, err := NewOrderItem(uuid.New(), "Mouse", 2, decimal.NewFromInt(20))
	require.NoError(t, err)
	item2, err := NewOrderItem(uuid.New(), "Keyboard", 1, decimal.NewFromInt(50))
	require.NoError(t, err)

	order, err := NewOrder(uuid.New(), []*OrderItem{item1, item2}, "usd", "12 Main St")
	require.NoError(t, err)
	order.ClearDomainEvents()
	return order
}

func TestNewOrder(t *testing.T) {
	t.Run("computes total from line subtotals", func(t *testing.T) {
		order := newTestOrder(t)

		assert.Equal(t, OrderStatusPending, order.Status)
		assert.Equal(t, "USD", order.Currency)
		assert.True(t, order.Total.Equal(decimal.NewFromInt(90)))
		assert.Equal(t, 3, order.TotalQuantity())
		for _, item := range order.Items {
			assert.Equal(t, order.ID, item.OrderID)
		}
	})

	t.Run("rejects empty item list", func(t *testing.T) {
		_, err := NewOrder(uuid.New(), nil, "USD", "")
		assert.Error(t, err)
	})

	t.Run("rejects missing user", func(t *testing.T) {
		item, _ := NewOrderItem(uuid.New(), "Mouse", 1, decimal.NewFromInt(1))
		_, err := NewOrder(uuid.Nil, []*OrderItem{item}, "USD", "")
		assert.Error(t, err)
	})

	t.Run("defaults currency to USD", func(t *testing.T) {
		item, _ := NewOrderItem(uuid.New(), "Mouse", 1, decimal.NewFromInt(1))
		order, err := NewOrder(uuid.New(), []*OrderItem{item}, "", "")
		require.NoError(t, err)
		assert.Equal(t, "USD", order.Currency)
	})
}

func TestNewOrderItem(t *testing.T) {
	t.Run("snapshots price and computes subtotal", func(t *testing.T) {
		item, err := NewOrderItem(uuid.New(), "Mouse", 3, decimal.NewFromFloat(9.5))
		require.NoError(t, err)
		assert.True(t, item.Subtotal.Equal(decimal.NewFromFloat(28.5)))
	})

	t.Run("rejects zero quantity", func(t *testing.T) {
		_, err := NewOrderItem(uuid.New(), "Mouse", 0, decimal.NewFromInt(1))
		assert.Error(t, err)
	})
}

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to OrderStatus
		want     bool
	}{
		{OrderStatusPending, OrderStatusProcessing, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusPending, OrderStatusDelivered, false},
		{OrderStatusProcessing, OrderStatusShipped, true},
		{OrderStatusProcessing, OrderStatusCancelled, true},
		{OrderStatusShipped, OrderStatusDelivered, true},
		{OrderStatusShipped, OrderStatusCancelled, true},
		{OrderStatusDelivered, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusPending, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestOrder_SetStatus(t *testing.T) {
	t.Run("writes any known status regardless of progression", func(t *testing.T) {
		order := newTestOrder(t)

		// pending -> delivered skips two steps but is still written
		require.NoError(t, order.SetStatus(OrderStatusDelivered))
		assert.Equal(t, OrderStatusDelivered, order.Status)

		events := order.GetDomainEvents()
		require.Len(t, events, 1)
		sc := events[0].(*OrderStatusChangedEvent)
		assert.Equal(t, OrderStatusPending, sc.OldStatus)
		assert.Equal(t, OrderStatusDelivered, sc.NewStatus)
	})

	t.Run("rejects unknown status value", func(t *testing.T) {
		order := newTestOrder(t)
		err := order.SetStatus(OrderStatus("refunded"))
		assert.Error(t, err)
		assert.Equal(t, OrderStatusPending, order.Status)
	})

	t.Run("cancellation reachable from any non-terminal state", func(t *testing.T) {
		for _, from := range []OrderStatus{OrderStatusPending, OrderStatusProcessing, OrderStatusShipped} {
			order := newTestOrder(t)
			require.NoError(t, order.SetStatus(from))
			assert.True(t, order.Status.CanTransitionTo(OrderStatusCancelled))
		}
	})
}

func TestOrder_BelongsTo(t *testing.T) {
	order := newTestOrder(t)
	assert.True(t, order.BelongsTo(order.UserID))
	assert.False(t, order.BelongsTo(uuid.New()))
}
