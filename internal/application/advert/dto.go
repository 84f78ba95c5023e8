package advert

import (
	"time"

	"github.com/google/uuid"

	"github.com/Daninc24/myshop/internal/domain/advert"
)

// CreateAdvertRequest represents a request to create an advert
type CreateAdvertRequest struct {
	Title     string     `json:"title" binding:"required,min=1,max=200"`
	Message   string     `json:"message" binding:"max=2000"`
	ImageURL  string     `json:"image_url" binding:"omitempty,max=500"`
	ProductID *uuid.UUID `json:"product_id"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	Template  string     `json:"template" binding:"max=50"`
}

// UpdateAdvertRequest represents a request to update an advert
type UpdateAdvertRequest struct {
	Title     *string    `json:"title" binding:"omitempty,min=1,max=200"`
	Message   *string    `json:"message" binding:"omitempty,max=2000"`
	ImageURL  *string    `json:"image_url" binding:"omitempty,max=500"`
	ProductID *uuid.UUID `json:"product_id"`
	Active    *bool      `json:"active"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	Template  *string    `json:"template" binding:"omitempty,max=50"`
}

// AdvertResponse represents an advert in API responses
type AdvertResponse struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	ImageURL  string     `json:"image_url"`
	ProductID *uuid.UUID `json:"product_id,omitempty"`
	Active    bool       `json:"active"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Template  string     `json:"template"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// AdvertListFilter represents filter options for advert lists
type AdvertListFilter struct {
	Active    *bool      `form:"active"`
	ProductID *uuid.UUID `form:"product_id"`
	Template  string     `form:"template"`
	Page      int        `form:"page" binding:"omitempty,min=1"`
	PageSize  int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy   string     `form:"order_by"`
	OrderDir  string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToAdvertResponse converts a domain Advert to AdvertResponse
func ToAdvertResponse(a *advert.Advert) AdvertResponse {
	return AdvertResponse{
		ID:        a.ID,
		Title:     a.Title,
		Message:   a.Message,
		ImageURL:  a.ImageURL,
		ProductID: a.ProductID,
		Active:    a.Active,
		StartDate: a.StartDate,
		EndDate:   a.EndDate,
		Template:  a.Template,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// ToAdvertResponses converts a slice of domain Adverts
func ToAdvertResponses(adverts []advert.Advert) []AdvertResponse {
	responses := make([]AdvertResponse, len(adverts))
	for i := range adverts {
		responses[i] = ToAdvertResponse(&adverts[i])
	}
	return responses
}
