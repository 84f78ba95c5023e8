package inventory

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Daninc24/myshop/internal/domain/catalog"
	"github.com/Daninc24/myshop/internal/domain/shared"
)

// DefaultLowStockThreshold triggers an alert when stock falls to or below it.
const DefaultLowStockThreshold = 5

// StockAlert describes a product whose stock crossed the alert threshold.
type StockAlert struct {
	ProductID string `json:"product_id"`
	Stock     int    `json:"stock"`
	Threshold int    `json:"threshold"`
	AlertType string `json:"alert_type"` // low_stock or out_of_stock
}

// StockAlertNotifier delivers stock alerts. Implementations decide the
// channel (log, in-app message, email).
type StockAlertNotifier interface {
	SendAlert(ctx context.Context, alert StockAlert) error
}

// LowStockHandler watches stock-changed events and raises an alert when a
// product drops to or below the threshold after a downward movement.
type LowStockHandler struct {
	threshold int
	notifier  StockAlertNotifier
	logger    *zap.Logger
}

// NewLowStockHandler creates a handler with the default threshold.
func NewLowStockHandler(notifier StockAlertNotifier, logger *zap.Logger) *LowStockHandler {
	return &LowStockHandler{
		threshold: DefaultLowStockThreshold,
		notifier:  notifier,
		logger:    logger,
	}
}

// WithThreshold overrides the alert threshold.
func (h *LowStockHandler) WithThreshold(threshold int) *LowStockHandler {
	h.threshold = threshold
	return h
}

// EventTypes returns the event types this handler subscribes to.
func (h *LowStockHandler) EventTypes() []string {
	return []string{catalog.EventTypeProductStockChanged}
}

// Handle processes a ProductStockChangedEvent.
func (h *LowStockHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	stockEvent, ok := event.(*catalog.ProductStockChangedEvent)
	if !ok {
		return fmt.Errorf("unexpected event type: expected %s, got %s",
			catalog.EventTypeProductStockChanged, event.EventType())
	}

	// Restocks never alert, even when the level is still below threshold
	if stockEvent.Delta >= 0 || stockEvent.NewStock > h.threshold {
		return nil
	}

	alert := StockAlert{
		ProductID: stockEvent.AggregateID().String(),
		Stock:     stockEvent.NewStock,
		Threshold: h.threshold,
		AlertType: "low_stock",
	}
	if stockEvent.NewStock == 0 {
		alert.AlertType = "out_of_stock"
	}

	h.logger.Warn("Stock below threshold",
		zap.String("product_id", alert.ProductID),
		zap.Int("stock", alert.Stock),
		zap.Int("threshold", alert.Threshold),
		zap.String("alert_type", alert.AlertType),
	)

	if h.notifier != nil {
		if err := h.notifier.SendAlert(ctx, alert); err != nil {
			// Notification failure must not fail the stock mutation
			h.logger.Error("Failed to send stock alert",
				zap.String("product_id", alert.ProductID),
				zap.Error(err),
			)
		}
	}

	return nil
}

var _ shared.EventHandler = (*LowStockHandler)(nil)

// LoggingStockAlertNotifier writes alerts to the log. Default channel
// until an in-app or email notifier is configured.
type LoggingStockAlertNotifier struct {
	logger *zap.Logger
}

// NewLoggingStockAlertNotifier creates a logging notifier.
func NewLoggingStockAlertNotifier(logger *zap.Logger) *LoggingStockAlertNotifier {
	return &LoggingStockAlertNotifier{logger: logger}
}

// SendAlert logs the alert.
func (n *LoggingStockAlertNotifier) SendAlert(_ context.Context, alert StockAlert) error {
	n.logger.Warn("STOCK ALERT",
		zap.String("alert_type", alert.AlertType),
		zap.String("product_id", alert.ProductID),
		zap.Int("stock", alert.Stock),
		zap.Int("threshold", alert.Threshold),
	)
	return nil
}

var _ StockAlertNotifier = (*LoggingStockAlertNotifier)(nil)
