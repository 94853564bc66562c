// Package handler exposes the REST surface over gin. Handlers validate the
// payload, call the store, and shape the response; annotation calls are
// best-effort and never change a request's outcome.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hrdesk/backend/internal/ai"
	"hrdesk/backend/internal/storage"
)

// Handler carries the store, the annotation client and the token secret.
type Handler struct {
	Store     storage.Storage
	AI        ai.Annotator
	JWTSecret []byte
}

func NewHandler(store storage.Storage, annotator ai.Annotator, jwtSecret []byte) *Handler {
	return &Handler{Store: store, AI: annotator, JWTSecret: jwtSecret}
}

// RegisterRoutes wires every endpoint onto the engine.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)

	r.POST("/auth/login", h.Login)
	r.POST("/auth/register", h.Register)
	r.POST("/auth/logout", h.Logout)
	r.GET("/auth/me", h.CurrentUser)

	r.GET("/users/:id", h.GetUser)
	r.POST("/users", h.CreateUser)
	r.GET("/users/:id/complaints", h.ListUserComplaints)
	r.GET("/users/:id/meetings", h.ListUserMeetings)

	r.GET("/complaints", h.ListComplaints)
	r.GET("/complaints/:id", h.GetComplaint)
	r.POST("/complaints", h.CreateComplaint)
	r.PATCH("/complaints/:id", h.UpdateComplaint)

	r.GET("/meetings", h.ListMeetings)
	r.GET("/meetings/:id", h.GetMeeting)
	r.POST("/meetings", h.CreateMeeting)
	r.PATCH("/meetings/:id", h.UpdateMeeting)

	r.GET("/scenarios", h.ListScenarios)
	r.GET("/scenarios/:id", h.GetScenario)
	r.POST("/scenarios", h.CreateScenario)
	r.PATCH("/scenarios/:id", h.UpdateScenario)

	r.POST("/ai/chat", h.Chat)

	r.GET("/admin/stats", h.AdminStats)
	r.GET("/admin/activity", h.AdminActivity)
	r.GET("/analytics/stats", h.AnalyticsStats)

	r.GET("/notifications/:userId", h.ListNotifications)
	r.PATCH("/notifications/:id/read", h.MarkNotificationRead)
}

// Health is the liveness probe.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Response helpers shared by all handlers. Error bodies carry a single
// generic message, no structured codes.

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": message})
}

func notFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"message": message})
}

func internalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
}
