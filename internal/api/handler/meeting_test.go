package handler_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hrdesk/backend/internal/ai"
	"hrdesk/backend/internal/models"
)

// TestCreateMeetingDefaults verifies the store-side defaults surface in
// the 201 body.
func TestCreateMeetingDefaults(t *testing.T) {
	r, _ := newTestRouter(ai.Disabled{})

	w := doJSON(t, r, http.MethodPost, "/meetings", map[string]any{
		"title":         "Follow-up",
		"organizerId":   "hr1",
		"scheduledDate": time.Now().Add(24 * time.Hour).Format(time.RFC3339),
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var meeting models.Meeting
	decode(t, w, &meeting)
	assert.Equal(t, models.MeetingStatusScheduled, meeting.Status)
	assert.Equal(t, models.DefaultMeetingDuration, meeting.Duration)
	assert.Nil(t, meeting.RelatedComplaintID)
}

// TestCreateMeetingValidation verifies missing organizer or date is a 400.
func TestCreateMeetingValidation(t *testing.T) {
	r, _ := newTestRouter(ai.Disabled{})

	w := doJSON(t, r, http.MethodPost, "/meetings", map[string]any{"title": "no organizer"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// TestListMeetingsOrderedSoonestFirst verifies list order through the API.
func TestListMeetingsOrderedSoonestFirst(t *testing.T) {
	r, _ := newTestRouter(ai.Disabled{})
	base := time.Now()

	doJSON(t, r, http.MethodPost, "/meetings", map[string]any{
		"title": "later", "organizerId": "hr1",
		"scheduledDate": base.Add(72 * time.Hour).Format(time.RFC3339),
	})
	doJSON(t, r, http.MethodPost, "/meetings", map[string]any{
		"title": "sooner", "organizerId": "hr1",
		"scheduledDate": base.Add(1 * time.Hour).Format(time.RFC3339),
	})

	w := doJSON(t, r, http.MethodGet, "/meetings", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var meetings []models.Meeting
	decode(t, w, &meetings)
	assert.Len(t, meetings, 2)
	assert.Equal(t, "sooner", meetings[0].Title)
}

// TestPatchMeetingReplacesAttendees verifies the attendee list replaces
// wholesale on partial update, and an unknown id is a 404.
func TestPatchMeetingReplacesAttendees(t *testing.T) {
	r, _ := newTestRouter(ai.Disabled{})

	w := doJSON(t, r, http.MethodPost, "/meetings", map[string]any{
		"title": "sync", "organizerId": "hr1",
		"attendeeIds":   []string{"u1", "u2"},
		"scheduledDate": time.Now().Format(time.RFC3339),
	})
	var created models.Meeting
	decode(t, w, &created)

	w = doJSON(t, r, http.MethodPatch, "/meetings/"+created.ID, map[string]any{
		"attendeeIds": []string{"u3"},
		"status":      models.MeetingStatusCancelled,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var updated models.Meeting
	decode(t, w, &updated)
	assert.Equal(t, []string{"u3"}, []string(updated.AttendeeIDs))
	assert.Equal(t, models.MeetingStatusCancelled, updated.Status)
	assert.Equal(t, "sync", updated.Title)

	w = doJSON(t, r, http.MethodPatch, "/meetings/unknown", map[string]any{"status": "completed"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]string
	decode(t, w, &body)
	assert.Equal(t, "Meeting not found", body["message"])
}

// TestListUserMeetings verifies the organizer-or-attendee endpoint.
func TestListUserMeetings(t *testing.T) {
	r, _ := newTestRouter(ai.Disabled{})
	date := time.Now().Format(time.RFC3339)

	doJSON(t, r, http.MethodPost, "/meetings", map[string]any{
		"title": "organized", "organizerId": "u1", "scheduledDate": date,
	})
	doJSON(t, r, http.MethodPost, "/meetings", map[string]any{
		"title": "attending", "organizerId": "hr1", "attendeeIds": []string{"u1"}, "scheduledDate": date,
	})
	doJSON(t, r, http.MethodPost, "/meetings", map[string]any{
		"title": "unrelated", "organizerId": "hr1", "scheduledDate": date,
	})

	w := doJSON(t, r, http.MethodGet, "/users/u1/meetings", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var meetings []models.Meeting
	decode(t, w, &meetings)
	assert.Len(t, meetings, 2)
}
