package messaging

import (
	"time"

	"github.com/google/uuid"

	"github.com/Daninc24/myshop/internal/domain/messaging"
)

// SendMessageRequest represents a direct message send
type SendMessageRequest struct {
	RecipientID uuid.UUID `json:"recipient_id" binding:"required"`
	Body        string    `json:"body" binding:"required,min=1,max=5000"`
}

// ConversationQuery selects the other party and an optional history limit
type ConversationQuery struct {
	With  uuid.UUID `form:"with" binding:"required"`
	Limit int       `form:"limit" binding:"omitempty,min=1,max=500"`
}

// MessageResponse represents a message in API responses
type MessageResponse struct {
	ID          uuid.UUID  `json:"id"`
	SenderID    uuid.UUID  `json:"sender_id"`
	RecipientID uuid.UUID  `json:"recipient_id"`
	Body        string     `json:"body"`
	ReadAt      *time.Time `json:"read_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// UnreadCountResponse reports how many received messages are unread
type UnreadCountResponse struct {
	Unread int64 `json:"unread"`
}

// ToMessageResponse converts a domain Message to MessageResponse
func ToMessageResponse(m *messaging.Message) MessageResponse {
	return MessageResponse{
		ID:          m.ID,
		SenderID:    m.SenderID,
		RecipientID: m.RecipientID,
		Body:        m.Body,
		ReadAt:      m.ReadAt,
		CreatedAt:   m.CreatedAt,
	}
}

// ToMessageResponses converts a slice of domain Messages
func ToMessageResponses(messages []messaging.Message) []MessageResponse {
	responses := make([]MessageResponse, len(messages))
	for i := range messages {
		responses[i] = ToMessageResponse(&messages[i])
	}
	return responses
}
