package handlers

import (
	"net/http"

	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/middleware"
	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/models"
	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/services"
	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/services/dto"
	"github.com/riadov001/My-Jantes-Mobile-Vlast/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// ChatHandler serves the internal staff messenger. Access is limited to
// staff roles; which middleware resolves the caller depends on the
// deployment mode (local sessions or the remote auth proxy).
type ChatHandler struct {
	*BaseHandler
	chatService services.ChatService
	authMW      gin.HandlerFunc
}

func NewChatHandler(base *BaseHandler, chatService services.ChatService, authMW gin.HandlerFunc) *ChatHandler {
	return &ChatHandler{
		BaseHandler: base,
		chatService: chatService,
		authMW:      authMW,
	}
}

func (h *ChatHandler) RegisterRoutes(rg *gin.RouterGroup) {
	chat := rg.Group("/local")
	chat.Use(h.authMW)
	chat.Use(middleware.RequireRoles(models.UserRoleEmployee, models.UserRoleAdmin, models.UserRoleSuperadmin))
	{
		chat.GET("/conversations", h.GetConversations)
		chat.POST("/conversations", h.CreateConversation)
		chat.GET("/conversations/:id/messages", h.GetMessages)
		chat.POST("/conversations/:id/messages", h.SendMessage)
	}
}

func (h *ChatHandler) GetConversations(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	conversations, err := h.chatService.GetUserConversations(user.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, conversations)
}

func (h *ChatHandler) CreateConversation(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	var req dto.CreateConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ParticipantID == "" {
		h.HandleServiceError(c, apperrors.ErrParticipantRequired)
		return
	}

	conversation, err := h.chatService.GetOrCreateConversation(user.ID, req.ParticipantID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, conversation)
}

func (h *ChatHandler) GetMessages(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	messages, err := h.chatService.GetMessages(c.Param("id"), user.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}

func (h *ChatHandler) SendMessage(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleServiceError(c, apperrors.ErrContentRequired)
		return
	}

	message, err := h.chatService.SendMessage(c.Param("id"), user.ID, req.Content)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, message)
}
