package handler

import (
	"github.com/gin-gonic/gin"

	appmessaging "github.com/Daninc24/myshop/internal/application/messaging"
)

// MessageHandler handles direct messaging HTTP requests
type MessageHandler struct {
	BaseHandler
	messageService *appmessaging.MessageService
	authMW         gin.HandlerFunc
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(messageService *appmessaging.MessageService, authMW gin.HandlerFunc) *MessageHandler {
	return &MessageHandler{
		messageService: messageService,
		authMW:         authMW,
	}
}

// Send delivers a message to another user
func (h *MessageHandler) Send(c *gin.Context) {
	senderID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req appmessaging.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	message, err := h.messageService.Send(c.Request.Context(), senderID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, message)
}

// Conversation returns the two-way exchange with another user, oldest first
func (h *MessageHandler) Conversation(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var query appmessaging.ConversationQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.ValidationError(c, err)
		return
	}

	messages, err := h.messageService.Conversation(c.Request.Context(), userID, query)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, messages)
}

// Partners returns the distinct users the caller has exchanged messages with
func (h *MessageHandler) Partners(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	partners, err := h.messageService.Partners(c.Request.Context(), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, partners)
}

// UnreadCount returns the caller's number of unread messages
func (h *MessageHandler) UnreadCount(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	count, err := h.messageService.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, count)
}

// MarkRead marks a message as read. Only the recipient may do this.
func (h *MessageHandler) MarkRead(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid message ID")
		return
	}

	readerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	message, err := h.messageService.MarkRead(c.Request.Context(), id, readerID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, message)
}

// RegisterRoutes registers all messaging routes
func (h *MessageHandler) RegisterRoutes(rg *gin.RouterGroup) {
	messages := rg.Group("/messages", h.authMW)
	{
		messages.POST("", h.Send)
		messages.GET("", h.Conversation)
		messages.GET("/partners", h.Partners)
		messages.GET("/unread-count", h.UnreadCount)
		messages.PUT("/:id/read", h.MarkRead)
	}
}
