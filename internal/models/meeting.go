package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Meeting statuses.
const (
	MeetingStatusScheduled = "scheduled"
	MeetingStatusCompleted = "completed"
	MeetingStatusCancelled = "cancelled"

	// DefaultMeetingDuration is applied when a meeting is created without
	// an explicit duration, in minutes.
	DefaultMeetingDuration = 30
)

// Meeting is an HR session between an organizer and a set of attendees,
// optionally linked to the complaint it was scheduled for.
type Meeting struct {
	ID                 string         `gorm:"primaryKey" json:"id"`
	Title              string         `json:"title"`
	Description        string         `json:"description"`
	OrganizerID        string         `gorm:"index" json:"organizerId"`
	AttendeeIDs        pq.StringArray `gorm:"type:text[]" json:"attendeeIds"`
	ScheduledDate      time.Time      `json:"scheduledDate"`
	Duration           int            `json:"duration"`
	Status             string         `json:"status"`
	MeetingLink        *string        `json:"meetingLink"`
	RelatedComplaintID *string        `json:"relatedComplaintId"`
	CreatedAt          time.Time      `json:"createdAt"`
}

// BeforeCreate generates a UUID for the meeting if the ID is not set yet.
func (m *Meeting) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return
}

// MeetingPatch carries the fields a partial meeting update may overwrite.
// AttendeeIDs is replaced wholesale when present.
type MeetingPatch struct {
	Title              *string    `json:"title"`
	Description        *string    `json:"description"`
	AttendeeIDs        *[]string  `json:"attendeeIds"`
	ScheduledDate      *time.Time `json:"scheduledDate"`
	Duration           *int       `json:"duration"`
	Status             *string    `json:"status"`
	MeetingLink        *string    `json:"meetingLink"`
	RelatedComplaintID *string    `json:"relatedComplaintId"`
}
