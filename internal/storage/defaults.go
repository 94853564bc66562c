package storage

import (
	"github.com/lib/pq"

	"hrdesk/backend/internal/models"
)

// Default filling shared by both backends. The store, not the caller, owns
// defaults for omitted optional fields.

func fillUserDefaults(u *models.User) {
	if u.Role == "" {
		u.Role = models.RoleEmployee
	}
}

func fillComplaintDefaults(c *models.Complaint) {
	if c.Status == "" {
		c.Status = models.ComplaintStatusOpen
	}
	if c.Priority == "" {
		c.Priority = models.PriorityMedium
	}
}

func fillMeetingDefaults(m *models.Meeting) {
	if m.Status == "" {
		m.Status = models.MeetingStatusScheduled
	}
	if m.Duration == 0 {
		m.Duration = models.DefaultMeetingDuration
	}
	if m.AttendeeIDs == nil {
		m.AttendeeIDs = pq.StringArray{}
	}
}
