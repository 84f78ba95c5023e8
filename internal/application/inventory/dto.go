package inventory

import (
	"time"

	"github.com/google/uuid"

	"github.com/Daninc24/myshop/internal/domain/inventory"
)

// LogResponse represents an inventory log entry in API responses
type LogResponse struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	UserID    uuid.UUID `json:"user_id"`
	Delta     int       `json:"delta"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

// LogListFilter represents filter options for inventory log lists
type LogListFilter struct {
	Reason   string     `form:"reason"`
	UserID   *uuid.UUID `form:"user_id"`
	From     *time.Time `form:"from" time_format:"2006-01-02"`
	To       *time.Time `form:"to" time_format:"2006-01-02"`
	Page     int        `form:"page" binding:"omitempty,min=1"`
	PageSize int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string     `form:"order_by"`
	OrderDir string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ReconciliationResponse reports the log-to-stock reconciliation for a product
type ReconciliationResponse struct {
	ProductID    uuid.UUID `json:"product_id"`
	CurrentStock int       `json:"current_stock"`
	LoggedDelta  int64     `json:"logged_delta"`
	InitialStock int64     `json:"initial_stock"`
}

// ToLogResponse converts a domain Log to LogResponse
func ToLogResponse(l *inventory.Log) LogResponse {
	return LogResponse{
		ID:        l.ID,
		ProductID: l.ProductID,
		UserID:    l.UserID,
		Delta:     l.Delta,
		Reason:    l.Reason,
		CreatedAt: l.CreatedAt,
	}
}

// ToLogResponses converts a slice of domain Logs
func ToLogResponses(logs []inventory.Log) []LogResponse {
	responses := make([]LogResponse, len(logs))
	for i := range logs {
		responses[i] = ToLogResponse(&logs[i])
	}
	return responses
}
