package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hrdesk/backend/internal/storage"
)

// ListNotifications returns a user's notifications, newest first. An
// unknown user simply has an empty feed.
func (h *Handler) ListNotifications(c *gin.Context) {
	notifications, err := h.Store.ListNotificationsForUser(c.Param("userId"))
	if err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// MarkNotificationRead flags a single notification as read.
func (h *Handler) MarkNotificationRead(c *gin.Context) {
	notification, err := h.Store.MarkNotificationRead(c.Param("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			notFound(c, "Notification not found")
			return
		}
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, notification)
}
