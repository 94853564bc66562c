package storage

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"hrdesk/backend/internal/models"
)

// Memory is the map-backed Storage used when no database is configured and
// as the backend for tests. Unlike the single-threaded reference runtime,
// Go serves requests concurrently, so access is guarded by an RWMutex.
// Values are copied in and out; callers never share memory with the store.
type Memory struct {
	mu            sync.RWMutex
	users         map[string]models.User
	complaints    map[string]models.Complaint
	meetings      map[string]models.Meeting
	scenarios     map[string]models.Scenario
	notifications map[string]models.Notification
	lastTS        time.Time
}

// NewMemory Constructor
func NewMemory() *Memory {
	return &Memory{
		users:         make(map[string]models.User),
		complaints:    make(map[string]models.Complaint),
		meetings:      make(map[string]models.Meeting),
		scenarios:     make(map[string]models.Scenario),
		notifications: make(map[string]models.Notification),
	}
}

// now returns a strictly increasing timestamp so list ordering and the
// "updatedAt strictly increases" property hold even within one clock tick.
// Callers must hold mu.
func (m *Memory) now() time.Time {
	t := time.Now()
	if !t.After(m.lastTS) {
		t = m.lastTS.Add(time.Nanosecond)
	}
	m.lastTS = t
	return t
}

// --- Users ---

func (m *Memory) CreateUser(user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	fillUserDefaults(user)
	user.CreatedAt = m.now()
	m.users[user.ID] = *user
	return nil
}

func (m *Memory) GetUserByID(id string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	user, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (m *Memory) GetUserByPhone(phone string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	// Full scan, acceptable at this scale.
	for _, user := range m.users {
		if user.Phone == phone {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) GetUserByEmail(email string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, user := range m.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) UpdateUser(id string, patch models.UserPatch) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	applyUserPatch(&user, patch)
	m.users[id] = user
	return &user, nil
}

func (m *Memory) ListUsers() ([]models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	users := make([]models.User, 0, len(m.users))
	for _, user := range m.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.After(users[j].CreatedAt)
	})
	return users, nil
}

// --- Complaints ---

func (m *Memory) CreateComplaint(complaint *models.Complaint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if complaint.ID == "" {
		complaint.ID = uuid.New().String()
	}
	fillComplaintDefaults(complaint)
	complaint.CreatedAt = m.now()
	complaint.UpdatedAt = complaint.CreatedAt
	m.complaints[complaint.ID] = *complaint
	return nil
}

func (m *Memory) GetComplaintByID(id string) (*models.Complaint, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	complaint, ok := m.complaints[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &complaint, nil
}

func (m *Memory) UpdateComplaint(id string, patch models.ComplaintPatch) (*models.Complaint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	complaint, ok := m.complaints[id]
	if !ok {
		return nil, ErrNotFound
	}
	applyComplaintPatch(&complaint, patch)
	complaint.UpdatedAt = m.now()
	m.complaints[id] = complaint
	return &complaint, nil
}

func (m *Memory) ListComplaints() ([]models.Complaint, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.complaintsLocked(func(models.Complaint) bool { return true }), nil
}

func (m *Memory) ListComplaintsBySubmitter(submitterID string) ([]models.Complaint, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.complaintsLocked(func(c models.Complaint) bool {
		return c.SubmitterID == submitterID
	}), nil
}

// complaintsLocked collects matching complaints newest-created-first.
// Callers must hold mu.
func (m *Memory) complaintsLocked(match func(models.Complaint) bool) []models.Complaint {
	complaints := []models.Complaint{}
	for _, complaint := range m.complaints {
		if match(complaint) {
			complaints = append(complaints, complaint)
		}
	}
	sort.Slice(complaints, func(i, j int) bool {
		return complaints[i].CreatedAt.After(complaints[j].CreatedAt)
	})
	return complaints
}

// --- Meetings ---

func (m *Memory) CreateMeeting(meeting *models.Meeting) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if meeting.ID == "" {
		meeting.ID = uuid.New().String()
	}
	fillMeetingDefaults(meeting)
	meeting.CreatedAt = m.now()
	m.meetings[meeting.ID] = *meeting
	return nil
}

func (m *Memory) GetMeetingByID(id string) (*models.Meeting, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	meeting, ok := m.meetings[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &meeting, nil
}

func (m *Memory) UpdateMeeting(id string, patch models.MeetingPatch) (*models.Meeting, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	meeting, ok := m.meetings[id]
	if !ok {
		return nil, ErrNotFound
	}
	applyMeetingPatch(&meeting, patch)
	m.meetings[id] = meeting
	return &meeting, nil
}

func (m *Memory) ListMeetings() ([]models.Meeting, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.meetingsLocked(func(models.Meeting) bool { return true }), nil
}

func (m *Memory) ListMeetingsForUser(userID string) ([]models.Meeting, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.meetingsLocked(func(meeting models.Meeting) bool {
		if meeting.OrganizerID == userID {
			return true
		}
		for _, attendee := range meeting.AttendeeIDs {
			if attendee == userID {
				return true
			}
		}
		return false
	}), nil
}

// meetingsLocked collects matching meetings soonest-scheduled-first.
// Callers must hold mu.
func (m *Memory) meetingsLocked(match func(models.Meeting) bool) []models.Meeting {
	meetings := []models.Meeting{}
	for _, meeting := range m.meetings {
		if match(meeting) {
			meetings = append(meetings, meeting)
		}
	}
	sort.Slice(meetings, func(i, j int) bool {
		return meetings[i].ScheduledDate.Before(meetings[j].ScheduledDate)
	})
	return meetings
}

// --- Scenarios ---

func (m *Memory) CreateScenario(scenario *models.Scenario) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if scenario.ID == "" {
		scenario.ID = uuid.New().String()
	}
	scenario.CreatedAt = m.now()
	m.scenarios[scenario.ID] = *scenario
	return nil
}

func (m *Memory) GetScenarioByID(id string) (*models.Scenario, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	scenario, ok := m.scenarios[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &scenario, nil
}

func (m *Memory) UpdateScenario(id string, patch models.ScenarioPatch) (*models.Scenario, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	scenario, ok := m.scenarios[id]
	if !ok {
		return nil, ErrNotFound
	}
	applyScenarioPatch(&scenario, patch)
	m.scenarios[id] = scenario
	return &scenario, nil
}

func (m *Memory) ListScenarios() ([]models.Scenario, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	scenarios := make([]models.Scenario, 0, len(m.scenarios))
	for _, scenario := range m.scenarios {
		scenarios = append(scenarios, scenario)
	}
	sort.Slice(scenarios, func(i, j int) bool {
		return scenarios[i].CreatedAt.After(scenarios[j].CreatedAt)
	})
	return scenarios, nil
}

// --- Notifications ---

func (m *Memory) CreateNotification(notification *models.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if notification.ID == "" {
		notification.ID = uuid.New().String()
	}
	notification.CreatedAt = m.now()
	m.notifications[notification.ID] = *notification
	return nil
}

func (m *Memory) ListNotificationsForUser(userID string) ([]models.Notification, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	notifications := []models.Notification{}
	for _, notification := range m.notifications {
		if notification.UserID == userID {
			notifications = append(notifications, notification)
		}
	}
	sort.Slice(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})
	return notifications, nil
}

func (m *Memory) MarkNotificationRead(id string) (*models.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	notification, ok := m.notifications[id]
	if !ok {
		return nil, ErrNotFound
	}
	notification.IsRead = true
	m.notifications[id] = notification
	return &notification, nil
}
