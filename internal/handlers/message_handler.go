package handlers

import (
	"net/http"

	"sponsorly_backend/internal/services"
	"sponsorly_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	*BaseHandler
	messageService services.MessageService
}

func NewMessageHandler(base *BaseHandler, messageService services.MessageService) *MessageHandler {
	return &MessageHandler{
		BaseHandler:    base,
		messageService: messageService,
	}
}

// RegisterRoutes регистрирует /messages; отправитель всегда берется из токена
func (h *MessageHandler) RegisterRoutes(rg *gin.RouterGroup) {
	messages := rg.Group("/messages")
	{
		messages.POST("/send", h.SendMessage)
		messages.POST("/conversation", h.GetConversation)
		messages.GET("/conversations", h.GetConversations)
		messages.GET("/unread-count", h.GetUnreadCount)
	}
}

// SendMessage godoc
// @Summary Отправить сообщение
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SendMessageRequest true "Получатель и текст"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/messages/send [post]
func (h *MessageHandler) SendMessage(c *gin.Context) {
	email, ok := h.GetAuthorizedEmail(c)
	if !ok {
		return
	}

	var req dto.SendMessageRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	msg, err := h.messageService.SendMessage(c.Request.Context(), email, req.ReceiverEmail, req.Content)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, msg)
}

// GetConversation godoc
// @Summary Переписка с пользователем
// @Description Входящие сообщения собеседника помечаются прочитанными.
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ConversationRequest true "Собеседник"
// @Success 200 {object} dto.MessagesResponse
// @Router /api/messages/conversation [post]
func (h *MessageHandler) GetConversation(c *gin.Context) {
	email, ok := h.GetAuthorizedEmail(c)
	if !ok {
		return
	}

	var req dto.ConversationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	messages, err := h.messageService.GetMessages(c.Request.Context(), email, req.OtherUserEmail)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessagesResponse{Messages: messages})
}

// GetConversations godoc
// @Summary Список диалогов
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ConversationsResponse
// @Router /api/messages/conversations [get]
func (h *MessageHandler) GetConversations(c *gin.Context) {
	email, ok := h.GetAuthorizedEmail(c)
	if !ok {
		return
	}

	conversations, err := h.messageService.GetConversations(c.Request.Context(), email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ConversationsResponse{Conversations: conversations})
}

// GetUnreadCount godoc
// @Summary Число непрочитанных сообщений
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UnreadCountResponse
// @Router /api/messages/unread-count [get]
func (h *MessageHandler) GetUnreadCount(c *gin.Context) {
	email, ok := h.GetAuthorizedEmail(c)
	if !ok {
		return
	}

	count, err := h.messageService.GetUnreadCount(c.Request.Context(), email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UnreadCountResponse{Count: count})
}
