package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hrdesk/backend/internal/storage"
)

// GetUser returns a single user by id.
func (h *Handler) GetUser(c *gin.Context) {
	user, err := h.Store.GetUserByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			notFound(c, "User not found")
			return
		}
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, user)
}

// CreateUser creates a user directly, without the duplicate checks the
// register endpoint applies.
func (h *Handler) CreateUser(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid user data")
		return
	}
	user, err := h.newUser(req)
	if err != nil {
		internalError(c)
		return
	}
	if err := h.Store.CreateUser(user); err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// ListUserComplaints returns the complaints a user submitted, newest first.
func (h *Handler) ListUserComplaints(c *gin.Context) {
	complaints, err := h.Store.ListComplaintsBySubmitter(c.Param("id"))
	if err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, complaints)
}

// ListUserMeetings returns meetings the user organizes or attends, soonest
// first.
func (h *Handler) ListUserMeetings(c *gin.Context) {
	meetings, err := h.Store.ListMeetingsForUser(c.Param("id"))
	if err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, meetings)
}
