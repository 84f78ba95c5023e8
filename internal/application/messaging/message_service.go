package messaging

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Daninc24/myshop/internal/domain/identity"
	"github.com/Daninc24/myshop/internal/domain/messaging"
)

const defaultConversationLimit = 100

// MessageService handles direct messages between users
type MessageService struct {
	messageRepo messaging.MessageRepository
	userRepo    identity.UserRepository
	logger      *zap.Logger
}

// NewMessageService creates a new MessageService
func NewMessageService(messageRepo messaging.MessageRepository, userRepo identity.UserRepository, logger *zap.Logger) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// Send delivers a message from the sender to an existing recipient
func (s *MessageService) Send(ctx context.Context, senderID uuid.UUID, req SendMessageRequest) (*MessageResponse, error) {
	if _, err := s.userRepo.FindByID(ctx, req.RecipientID); err != nil {
		return nil, err
	}

	message, err := messaging.NewMessage(senderID, req.RecipientID, req.Body)
	if err != nil {
		return nil, err
	}

	if err := s.messageRepo.Save(ctx, message); err != nil {
		return nil, err
	}

	s.logger.Info("message sent",
		zap.String("message_id", message.ID.String()),
		zap.String("sender_id", senderID.String()),
		zap.String("recipient_id", req.RecipientID.String()),
	)

	response := ToMessageResponse(message)
	return &response, nil
}

// Conversation returns the two-way history between the caller and another user,
// oldest first
func (s *MessageService) Conversation(ctx context.Context, userID uuid.UUID, query ConversationQuery) ([]MessageResponse, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = defaultConversationLimit
	}

	messages, err := s.messageRepo.FindConversation(ctx, userID, query.With, limit)
	if err != nil {
		return nil, err
	}
	return ToMessageResponses(messages), nil
}

// Partners returns the users the caller has exchanged messages with
func (s *MessageService) Partners(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return s.messageRepo.FindPartners(ctx, userID)
}

// MarkRead records that the caller read a message. Only the recipient may do so.
func (s *MessageService) MarkRead(ctx context.Context, messageID, readerID uuid.UUID) (*MessageResponse, error) {
	message, err := s.messageRepo.FindByID(ctx, messageID)
	if err != nil {
		return nil, err
	}

	if err := message.MarkRead(readerID); err != nil {
		return nil, err
	}

	if err := s.messageRepo.Save(ctx, message); err != nil {
		return nil, err
	}

	response := ToMessageResponse(message)
	return &response, nil
}

// UnreadCount returns how many received messages the caller has not read
func (s *MessageService) UnreadCount(ctx context.Context, userID uuid.UUID) (*UnreadCountResponse, error) {
	count, err := s.messageRepo.CountUnread(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &UnreadCountResponse{Unread: count}, nil
}
