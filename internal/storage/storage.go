package storage

import (
	"errors"

	"hrdesk/backend/internal/models"
)

// ErrNotFound is returned by Get*/Update* when no entity has the given id.
// Handlers translate it to a 404; anything else becomes a 500.
var ErrNotFound = errors.New("entity not found")

// Storage is the record store behind the REST handlers. Two implementations
// exist: Service (PostgreSQL via GORM, optional Redis fan-out) and Memory
// (map-backed, the default when no database is configured).
//
// Create* always succeeds on a reachable backend: missing optional fields
// are filled with defaults and the id/timestamps are assigned by the store.
// Update* applies a shallow merge of the non-nil patch fields; list-valued
// fields are replaced wholesale. List* returns an empty slice, never nil.
type Storage interface {
	CreateUser(user *models.User) error
	GetUserByID(id string) (*models.User, error)
	GetUserByPhone(phone string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	UpdateUser(id string, patch models.UserPatch) (*models.User, error)
	ListUsers() ([]models.User, error)

	CreateComplaint(complaint *models.Complaint) error
	GetComplaintByID(id string) (*models.Complaint, error)
	UpdateComplaint(id string, patch models.ComplaintPatch) (*models.Complaint, error)
	ListComplaints() ([]models.Complaint, error)
	ListComplaintsBySubmitter(submitterID string) ([]models.Complaint, error)

	CreateMeeting(meeting *models.Meeting) error
	GetMeetingByID(id string) (*models.Meeting, error)
	UpdateMeeting(id string, patch models.MeetingPatch) (*models.Meeting, error)
	ListMeetings() ([]models.Meeting, error)
	ListMeetingsForUser(userID string) ([]models.Meeting, error)

	CreateScenario(scenario *models.Scenario) error
	GetScenarioByID(id string) (*models.Scenario, error)
	UpdateScenario(id string, patch models.ScenarioPatch) (*models.Scenario, error)
	ListScenarios() ([]models.Scenario, error)

	CreateNotification(notification *models.Notification) error
	ListNotificationsForUser(userID string) ([]models.Notification, error)
	MarkNotificationRead(id string) (*models.Notification, error)
}
