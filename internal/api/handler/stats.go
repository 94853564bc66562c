package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hrdesk/backend/internal/models"
)

// AdminStats counts complaints, meetings and users by status. Full scans
// over the store, derived on demand.
func (h *Handler) AdminStats(c *gin.Context) {
	stats, err := h.collectStats()
	if err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// AnalyticsStats extends the admin counts with calendar-derived figures:
// complaints resolved this month and meetings still ahead of us.
func (h *Handler) AnalyticsStats(c *gin.Context) {
	stats, err := h.collectStats()
	if err != nil {
		internalError(c)
		return
	}

	complaints, err := h.Store.ListComplaints()
	if err != nil {
		internalError(c)
		return
	}
	meetings, err := h.Store.ListMeetings()
	if err != nil {
		internalError(c)
		return
	}

	now := time.Now()
	resolvedThisMonth := 0
	for _, complaint := range complaints {
		if complaint.Status == models.ComplaintStatusResolved &&
			complaint.CreatedAt.Month() == now.Month() &&
			complaint.CreatedAt.Year() == now.Year() {
			resolvedThisMonth++
		}
	}

	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	upcomingMeetings := 0
	for _, meeting := range meetings {
		if meeting.Status == models.MeetingStatusScheduled &&
			!meeting.ScheduledDate.Before(startOfToday) {
			upcomingMeetings++
		}
	}

	stats["resolvedThisMonth"] = resolvedThisMonth
	stats["upcomingMeetings"] = upcomingMeetings
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) collectStats() (gin.H, error) {
	complaints, err := h.Store.ListComplaints()
	if err != nil {
		return nil, err
	}
	meetings, err := h.Store.ListMeetings()
	if err != nil {
		return nil, err
	}
	users, err := h.Store.ListUsers()
	if err != nil {
		return nil, err
	}

	open, inProgress, resolved := 0, 0, 0
	for _, complaint := range complaints {
		switch complaint.Status {
		case models.ComplaintStatusOpen:
			open++
		case models.ComplaintStatusInProgress:
			inProgress++
		case models.ComplaintStatusResolved:
			resolved++
		}
	}

	scheduled, completed, cancelled := 0, 0, 0
	for _, meeting := range meetings {
		switch meeting.Status {
		case models.MeetingStatusScheduled:
			scheduled++
		case models.MeetingStatusCompleted:
			completed++
		case models.MeetingStatusCancelled:
			cancelled++
		}
	}

	return gin.H{
		"totalComplaints":      len(complaints),
		"openComplaints":       open,
		"inProgressComplaints": inProgress,
		"resolvedComplaints":   resolved,
		"totalMeetings":        len(meetings),
		"scheduledMeetings":    scheduled,
		"completedMeetings":    completed,
		"cancelledMeetings":    cancelled,
		"totalUsers":           len(users),
	}, nil
}

// AdminActivity is a static placeholder feed, not derived from store state.
func (h *Handler) AdminActivity(c *gin.Context) {
	c.JSON(http.StatusOK, []gin.H{
		{"id": "1", "type": "complaint", "message": "New complaint submitted", "time": "2 hours ago"},
		{"id": "2", "type": "meeting", "message": "Meeting scheduled with HR", "time": "4 hours ago"},
		{"id": "3", "type": "user", "message": "New employee registered", "time": "1 day ago"},
	})
}
