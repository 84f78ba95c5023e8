package messaging

import (
	"context"

	"github.com/google/uuid"
)

// MessageRepository defines persistence operations for messages
type MessageRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Message, error)
	// FindConversation returns the two-way message history between two users,
	// oldest first.
	FindConversation(ctx context.Context, userA, userB uuid.UUID, limit int) ([]Message, error)
	// FindPartners returns the distinct user IDs the given user has exchanged
	// messages with.
	FindPartners(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	Save(ctx context.Context, message *Message) error
	CountUnread(ctx context.Context, recipientID uuid.UUID) (int64, error)
}
