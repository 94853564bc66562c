package storage

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"hrdesk/backend/internal/models"
)

// Service is the PostgreSQL-backed Storage. Redis is optional; when present,
// newly created notifications are published to a per-user channel so an
// external consumer can fan them out. Publish failures never fail the write.
type Service struct {
	DB    *gorm.DB
	Redis *redis.Client
	Ctx   context.Context
}

// NewStorageService Constructor
func NewStorageService(db *gorm.DB, rdb *redis.Client) *Service {
	return &Service{
		DB:    db,
		Redis: rdb,
		Ctx:   context.Background(),
	}
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// --- Users ---

func (s *Service) CreateUser(user *models.User) error {
	fillUserDefaults(user)
	if err := s.DB.Create(user).Error; err != nil {
		log.Printf("ERROR: Failed to create user %s: %v", user.Phone, err)
		return err
	}
	return nil
}

func (s *Service) GetUserByID(id string) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *Service) GetUserByPhone(phone string) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, "phone = ?", phone).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *Service) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, "email = ?", email).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *Service) UpdateUser(id string, patch models.UserPatch) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	applyUserPatch(&user, patch)
	if err := s.DB.Save(&user).Error; err != nil {
		log.Printf("ERROR: Failed to update user %s: %v", id, err)
		return nil, err
	}
	return &user, nil
}

func (s *Service) ListUsers() ([]models.User, error) {
	users := []models.User{}
	if err := s.DB.Order("created_at desc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// --- Complaints ---

func (s *Service) CreateComplaint(complaint *models.Complaint) error {
	fillComplaintDefaults(complaint)
	if err := s.DB.Create(complaint).Error; err != nil {
		log.Printf("ERROR: Failed to create complaint %q: %v", complaint.Title, err)
		return err
	}
	return nil
}

func (s *Service) GetComplaintByID(id string) (*models.Complaint, error) {
	var complaint models.Complaint
	if err := s.DB.First(&complaint, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &complaint, nil
}

func (s *Service) UpdateComplaint(id string, patch models.ComplaintPatch) (*models.Complaint, error) {
	var complaint models.Complaint
	if err := s.DB.First(&complaint, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	applyComplaintPatch(&complaint, patch)
	// Save bumps updated_at even when the patch is a no-op.
	if err := s.DB.Save(&complaint).Error; err != nil {
		log.Printf("ERROR: Failed to update complaint %s: %v", id, err)
		return nil, err
	}
	return &complaint, nil
}

func (s *Service) ListComplaints() ([]models.Complaint, error) {
	complaints := []models.Complaint{}
	if err := s.DB.Order("created_at desc").Find(&complaints).Error; err != nil {
		return nil, err
	}
	return complaints, nil
}

func (s *Service) ListComplaintsBySubmitter(submitterID string) ([]models.Complaint, error) {
	complaints := []models.Complaint{}
	if err := s.DB.Where("submitter_id = ?", submitterID).
		Order("created_at desc").Find(&complaints).Error; err != nil {
		return nil, err
	}
	return complaints, nil
}

// --- Meetings ---

func (s *Service) CreateMeeting(meeting *models.Meeting) error {
	fillMeetingDefaults(meeting)
	if err := s.DB.Create(meeting).Error; err != nil {
		log.Printf("ERROR: Failed to create meeting %q: %v", meeting.Title, err)
		return err
	}
	return nil
}

func (s *Service) GetMeetingByID(id string) (*models.Meeting, error) {
	var meeting models.Meeting
	if err := s.DB.First(&meeting, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &meeting, nil
}

func (s *Service) UpdateMeeting(id string, patch models.MeetingPatch) (*models.Meeting, error) {
	var meeting models.Meeting
	if err := s.DB.First(&meeting, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	applyMeetingPatch(&meeting, patch)
	if err := s.DB.Save(&meeting).Error; err != nil {
		log.Printf("ERROR: Failed to update meeting %s: %v", id, err)
		return nil, err
	}
	return &meeting, nil
}

func (s *Service) ListMeetings() ([]models.Meeting, error) {
	meetings := []models.Meeting{}
	if err := s.DB.Order("scheduled_date asc").Find(&meetings).Error; err != nil {
		return nil, err
	}
	return meetings, nil
}

func (s *Service) ListMeetingsForUser(userID string) ([]models.Meeting, error) {
	meetings := []models.Meeting{}
	if err := s.DB.Where("organizer_id = ? OR ? = ANY(attendee_ids)", userID, userID).
		Order("scheduled_date asc").Find(&meetings).Error; err != nil {
		return nil, err
	}
	return meetings, nil
}

// --- Scenarios ---

func (s *Service) CreateScenario(scenario *models.Scenario) error {
	if err := s.DB.Create(scenario).Error; err != nil {
		log.Printf("ERROR: Failed to create scenario: %v", err)
		return err
	}
	return nil
}

func (s *Service) GetScenarioByID(id string) (*models.Scenario, error) {
	var scenario models.Scenario
	if err := s.DB.First(&scenario, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &scenario, nil
}

func (s *Service) UpdateScenario(id string, patch models.ScenarioPatch) (*models.Scenario, error) {
	var scenario models.Scenario
	if err := s.DB.First(&scenario, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	applyScenarioPatch(&scenario, patch)
	if err := s.DB.Save(&scenario).Error; err != nil {
		log.Printf("ERROR: Failed to update scenario %s: %v", id, err)
		return nil, err
	}
	return &scenario, nil
}

func (s *Service) ListScenarios() ([]models.Scenario, error) {
	scenarios := []models.Scenario{}
	if err := s.DB.Order("created_at desc").Find(&scenarios).Error; err != nil {
		return nil, err
	}
	return scenarios, nil
}

// --- Notifications ---

func (s *Service) CreateNotification(notification *models.Notification) error {
	if err := s.DB.Create(notification).Error; err != nil {
		log.Printf("ERROR: Failed to create notification for user %s: %v", notification.UserID, err)
		return err
	}
	s.publishNotification(notification)
	return nil
}

// publishNotification pushes the notification to Redis Pub/Sub so external
// consumers can pick it up. Best effort: the record is already persisted.
func (s *Service) publishNotification(notification *models.Notification) {
	if s.Redis == nil {
		return
	}
	payload, err := json.Marshal(notification)
	if err != nil {
		log.Printf("ERROR: Failed to marshal notification %s: %v", notification.ID, err)
		return
	}
	channel := "notifications:" + notification.UserID
	if err := s.Redis.Publish(s.Ctx, channel, payload).Err(); err != nil {
		log.Printf("ERROR: Failed to publish notification %s to %s: %v", notification.ID, channel, err)
	}
}

func (s *Service) ListNotificationsForUser(userID string) ([]models.Notification, error) {
	notifications := []models.Notification{}
	if err := s.DB.Where("user_id = ?", userID).
		Order("created_at desc").Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

func (s *Service) MarkNotificationRead(id string) (*models.Notification, error) {
	var notification models.Notification
	if err := s.DB.First(&notification, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	notification.IsRead = true
	if err := s.DB.Save(&notification).Error; err != nil {
		log.Printf("ERROR: Failed to mark notification %s read: %v", id, err)
		return nil, err
	}
	return &notification, nil
}
