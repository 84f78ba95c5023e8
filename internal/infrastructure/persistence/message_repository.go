package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Daninc24/myshop/internal/domain/messaging"
	"github.com/Daninc24/myshop/internal/domain/shared"
)

// GormMessageRepository implements MessageRepository using GORM
type GormMessageRepository struct {
	db *gorm.DB
}

// NewGormMessageRepository creates a new GormMessageRepository
func NewGormMessageRepository(db *gorm.DB) *GormMessageRepository {
	return &GormMessageRepository{db: db}
}

// FindByID finds a message by its ID
func (r *GormMessageRepository) FindByID(ctx context.Context, id uuid.UUID) (*messaging.Message, error) {
	var message messaging.Message
	if err := r.db.WithContext(ctx).First(&message, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &message, nil
}

// FindConversation returns the two-way message history between two users, oldest first
func (r *GormMessageRepository) FindConversation(ctx context.Context, userA, userB uuid.UUID, limit int) ([]messaging.Message, error) {
	query := r.db.WithContext(ctx).
		Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
			userA, userB, userB, userA).
		Order("created_at ASC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	var messages []messaging.Message
	if err := query.Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// FindPartners returns the distinct user IDs the given user has exchanged messages with
func (r *GormMessageRepository) FindPartners(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var partners []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&messaging.Message{}).
		Select("DISTINCT CASE WHEN sender_id = ? THEN recipient_id ELSE sender_id END", userID).
		Where("sender_id = ? OR recipient_id = ?", userID, userID).
		Scan(&partners).Error; err != nil {
		return nil, err
	}
	return partners, nil
}

// Save creates or updates a message
func (r *GormMessageRepository) Save(ctx context.Context, message *messaging.Message) error {
	return r.db.WithContext(ctx).Save(message).Error
}

// CountUnread counts messages the recipient has not read yet
func (r *GormMessageRepository) CountUnread(ctx context.Context, recipientID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&messaging.Message{}).
		Where("recipient_id = ? AND read_at IS NULL", recipientID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormMessageRepository implements MessageRepository
var _ messaging.MessageRepository = (*GormMessageRepository)(nil)
