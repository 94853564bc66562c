package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hrdesk/backend/internal/models"
	"hrdesk/backend/internal/storage"
)

// ListMeetings returns all meetings, soonest scheduled first.
func (h *Handler) ListMeetings(c *gin.Context) {
	meetings, err := h.Store.ListMeetings()
	if err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, meetings)
}

// GetMeeting returns a single meeting by id.
func (h *Handler) GetMeeting(c *gin.Context) {
	meeting, err := h.Store.GetMeetingByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			notFound(c, "Meeting not found")
			return
		}
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, meeting)
}

type createMeetingRequest struct {
	Title              string    `json:"title" binding:"required"`
	Description        string    `json:"description"`
	OrganizerID        string    `json:"organizerId" binding:"required"`
	AttendeeIDs        []string  `json:"attendeeIds"`
	ScheduledDate      time.Time `json:"scheduledDate" binding:"required"`
	Duration           int       `json:"duration"`
	MeetingLink        *string   `json:"meetingLink"`
	RelatedComplaintID *string   `json:"relatedComplaintId"`
}

// CreateMeeting persists a meeting; the store fills status and the default
// 30-minute duration.
func (h *Handler) CreateMeeting(c *gin.Context) {
	var req createMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid meeting data")
		return
	}
	meeting := &models.Meeting{
		Title:              req.Title,
		Description:        req.Description,
		OrganizerID:        req.OrganizerID,
		AttendeeIDs:        req.AttendeeIDs,
		ScheduledDate:      req.ScheduledDate,
		Duration:           req.Duration,
		MeetingLink:        req.MeetingLink,
		RelatedComplaintID: req.RelatedComplaintID,
	}
	if err := h.Store.CreateMeeting(meeting); err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusCreated, meeting)
}

// UpdateMeeting applies a partial update; attendeeIds is replaced
// wholesale when present.
func (h *Handler) UpdateMeeting(c *gin.Context) {
	var patch models.MeetingPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, "Invalid meeting data")
		return
	}
	meeting, err := h.Store.UpdateMeeting(c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			notFound(c, "Meeting not found")
			return
		}
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, meeting)
}
