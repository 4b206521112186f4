package handlers

import (
	"net/http"

	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/middleware"
	"github.com/riadov001/My-Jantes-Mobile-Vlast/internal/services"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	*BaseHandler
	notificationService services.NotificationService
	authService         services.AuthService
}

func NewNotificationHandler(base *BaseHandler, notificationService services.NotificationService, authService services.AuthService) *NotificationHandler {
	return &NotificationHandler{
		BaseHandler:         base,
		notificationService: notificationService,
		authService:         authService,
	}
}

func (h *NotificationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	notifications := rg.Group("/notifications")
	notifications.Use(middleware.AuthMiddleware(h.authService))
	{
		notifications.GET("", h.GetUserNotifications)
		notifications.GET("/unread-count", h.GetUnreadCount)
		notifications.PUT("/:id/read", h.MarkAsRead)
	}
}

func (h *NotificationHandler) GetUserNotifications(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	notifications, err := h.notificationService.GetUserNotifications(user.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, notifications)
}

func (h *NotificationHandler) GetUnreadCount(c *gin.Context) {
	user, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	count, err := h.notificationService.GetUnreadCount(user.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	if _, ok := h.CurrentUser(c); !ok {
		return
	}

	notification, err := h.notificationService.MarkAsRead(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, notification)
}
