package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Daninc24/myshop/internal/domain/catalog"
	"github.com/Daninc24/myshop/internal/domain/shared"
	"github.com/shopspring/decimal"
)

type recordingNotifier struct {
	alerts []StockAlert
}

func (n *recordingNotifier) SendAlert(_ context.Context, alert StockAlert) error {
	n.alerts = append(n.alerts, alert)
	return nil
}

func stockChanged(t *testing.T, stock, delta int) shared.DomainEvent {
	t.Helper()
	p, err := catalog.NewProduct("Espresso Beans", "", decimal.RequireFromString("12.50"), stock, "")
	require.NoError(t, err)
	return catalog.NewProductStockChangedEvent(p, delta)
}

func TestLowStockHandler(t *testing.T) {
	tests := []struct {
		name      string
		stock     int
		delta     int
		wantAlert string
	}{
		{"above threshold", 12, -2, ""},
		{"at threshold", 5, -1, "low_stock"},
		{"below threshold", 2, -3, "low_stock"},
		{"drained", 0, -2, "out_of_stock"},
		{"restock below threshold stays quiet", 3, 2, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifier := &recordingNotifier{}
			h := NewLowStockHandler(notifier, zap.NewNop())

			err := h.Handle(context.Background(), stockChanged(t, tt.stock, tt.delta))
			require.NoError(t, err)

			if tt.wantAlert == "" {
				assert.Empty(t, notifier.alerts)
				return
			}
			require.Len(t, notifier.alerts, 1)
			assert.Equal(t, tt.wantAlert, notifier.alerts[0].AlertType)
			assert.Equal(t, tt.stock, notifier.alerts[0].Stock)
		})
	}
}

func TestLowStockHandlerWithThreshold(t *testing.T) {
	notifier := &recordingNotifier{}
	h := NewLowStockHandler(notifier, zap.NewNop()).WithThreshold(20)

	require.NoError(t, h.Handle(context.Background(), stockChanged(t, 15, -5)))

	require.Len(t, notifier.alerts, 1)
	assert.Equal(t, 20, notifier.alerts[0].Threshold)
}

func TestLowStockHandlerRejectsForeignEvents(t *testing.T) {
	h := NewLowStockHandler(nil, zap.NewNop())

	p, err := catalog.NewProduct("Espresso Beans", "", decimal.RequireFromString("12.50"), 1, "")
	require.NoError(t, err)

	err = h.Handle(context.Background(), catalog.NewProductCreatedEvent(p))
	assert.Error(t, err)
}
