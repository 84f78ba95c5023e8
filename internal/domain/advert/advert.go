package advert

import (
	"strings"
	"time"

	"github.com/Daninc24/myshop/internal/domain/shared"
	"github.com/google/uuid"
)

// Advert represents a promotional content block shown on the storefront
type Advert struct {
	shared.BaseAggregateRoot
	Title     string     `gorm:"type:varchar(200);not null"`
	Message   string     `gorm:"type:text"`
	ImageURL  string     `gorm:"type:varchar(500)"`
	ProductID *uuid.UUID `gorm:"type:uuid;index"`
	Active    bool       `gorm:"not null;default:true;index"`
	StartDate *time.Time `gorm:"index"`
	EndDate   *time.Time `gorm:"index"`
	Template  string     `gorm:"type:varchar(50)"`
}

// TableName returns the table name for GORM
func (Advert) TableName() string {
	return "adverts"
}

// NewAdvert creates a new advert
func NewAdvert(title, message string) (*Advert, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Title cannot be empty")
	}
	if len(title) > 200 {
		return nil, shared.NewDomainError("INVALID_TITLE", "Title cannot exceed 200 characters")
	}
	if len(message) > 2000 {
		return nil, shared.NewDomainError("INVALID_MESSAGE", "Message cannot exceed 2000 characters")
	}

	return &Advert{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Title:             title,
		Message:           message,
		Active:            true,
	}, nil
}

// SetTitle updates the headline
func (a *Advert) SetTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Title cannot be empty")
	}
	if len(title) > 200 {
		return shared.NewDomainError("INVALID_TITLE", "Title cannot exceed 200 characters")
	}
	a.Title = title
	a.touch()
	return nil
}

// SetMessage updates the body copy
func (a *Advert) SetMessage(message string) error {
	if len(message) > 2000 {
		return shared.NewDomainError("INVALID_MESSAGE", "Message cannot exceed 2000 characters")
	}
	a.Message = message
	a.touch()
	return nil
}

// SetWindow sets the optional display window. Either bound may be nil.
func (a *Advert) SetWindow(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return shared.NewDomainError("INVALID_WINDOW", "End date cannot precede start date")
	}
	a.StartDate = start
	a.EndDate = end
	a.touch()
	return nil
}

// SetImage sets the image URL
func (a *Advert) SetImage(url string) error {
	if len(url) > 500 {
		return shared.NewDomainError("INVALID_IMAGE_URL", "Image URL cannot exceed 500 characters")
	}
	a.ImageURL = url
	a.touch()
	return nil
}

// LinkProduct associates the advert with a product
func (a *Advert) LinkProduct(productID *uuid.UUID) {
	a.ProductID = productID
	a.touch()
}

// SetTemplate sets the presentation template tag
func (a *Advert) SetTemplate(template string) error {
	if len(template) > 50 {
		return shared.NewDomainError("INVALID_TEMPLATE", "Template tag cannot exceed 50 characters")
	}
	a.Template = strings.TrimSpace(template)
	a.touch()
	return nil
}

// Activate enables the advert
func (a *Advert) Activate() {
	a.Active = true
	a.touch()
}

// Deactivate disables the advert
func (a *Advert) Deactivate() {
	a.Active = false
	a.touch()
}

// IsCurrentlyActive reports whether the advert should be shown at the given time:
// active, and the time falls within [StartDate, EndDate] where either bound is optional.
func (a *Advert) IsCurrentlyActive(now time.Time) bool {
	if !a.Active {
		return false
	}
	if a.StartDate != nil && now.Before(*a.StartDate) {
		return false
	}
	if a.EndDate != nil && now.After(*a.EndDate) {
		return false
	}
	return true
}

func (a *Advert) touch() {
	a.UpdatedAt = time.Now()
	a.IncrementVersion()
}
