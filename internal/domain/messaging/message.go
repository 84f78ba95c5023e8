package messaging

import (
	"strings"
	"time"

	"github.com/Daninc24/myshop/internal/domain/shared"
	"github.com/google/uuid"
)

// Message represents a direct message between two users
type Message struct {
	shared.BaseEntity
	SenderID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	RecipientID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Body        string     `gorm:"type:text;not null"`
	ReadAt      *time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (Message) TableName() string {
	return "messages"
}

// NewMessage creates a message from sender to recipient
func NewMessage(senderID, recipientID uuid.UUID, body string) (*Message, error) {
	if senderID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SENDER", "Sender ID cannot be empty")
	}
	if recipientID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_RECIPIENT", "Recipient ID cannot be empty")
	}
	if senderID == recipientID {
		return nil, shared.NewDomainError("INVALID_RECIPIENT", "Cannot message yourself")
	}

	body = strings.TrimSpace(body)
	if body == "" {
		return nil, shared.NewDomainError("EMPTY_MESSAGE", "Message body cannot be empty")
	}
	if len(body) > 5000 {
		return nil, shared.NewDomainError("INVALID_MESSAGE", "Message body cannot exceed 5000 characters")
	}

	return &Message{
		BaseEntity:  shared.NewBaseEntity(),
		SenderID:    senderID,
		RecipientID: recipientID,
		Body:        body,
	}, nil
}

// MarkRead records when the recipient read the message. Only the recipient may mark it.
func (m *Message) MarkRead(readerID uuid.UUID) error {
	if readerID != m.RecipientID {
		return shared.ErrForbidden
	}
	if m.ReadAt != nil {
		return nil
	}

	now := time.Now()
	m.ReadAt = &now
	m.UpdatedAt = now
	return nil
}

// IsRead returns true if the recipient has read the message
func (m *Message) IsRead() bool {
	return m.ReadAt != nil
}
