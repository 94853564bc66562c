package handler_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"hrdesk/backend/internal/ai"
	"hrdesk/backend/internal/models"
)

// TestCreateComplaintDefaults verifies a bare create gets the open/medium
// defaults and null AI fields when annotation is unavailable.
func TestCreateComplaintDefaults(t *testing.T) {
	r, _ := newTestRouter(ai.Disabled{})

	w := doJSON(t, r, http.MethodPost, "/complaints", map[string]any{
		"title":       "Harassment",
		"description": "Repeated incidents in the break room",
		"submitterId": "u1",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var complaint models.Complaint
	decode(t, w, &complaint)
	assert.NotEmpty(t, complaint.ID)
	assert.Equal(t, models.ComplaintStatusOpen, complaint.Status)
	assert.Equal(t, models.PriorityMedium, complaint.Priority)
	assert.Nil(t, complaint.Category)
	assert.Nil(t, complaint.AIAnalysis)
	assert.Nil(t, complaint.SentimentScore)
}

// TestCreateComplaintAnnotated verifies a successful analysis call fills
// the AI fields before the 201 response.
func TestCreateComplaintAnnotated(t *testing.T) {
	annotator := new(MockAnnotator)
	annotator.On("AnalyzeComplaint", mock.Anything, "Harassment", mock.Anything).
		Return(&ai.ComplaintAnalysis{
			Category:        "harassment",
			Priority:        models.PriorityHigh,
			Summary:         "Serious harassment report",
			Recommendations: []string{"Escalate to HR manager", "Schedule a meeting"},
			Sentiment:       -0.8,
			Confidence:      0.92,
		}, nil).Once()
	r, _ := newTestRouter(annotator)

	w := doJSON(t, r, http.MethodPost, "/complaints", map[string]any{
		"title":       "Harassment",
		"description": "Repeated incidents",
		"submitterId": "u1",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var complaint models.Complaint
	decode(t, w, &complaint)
	assert.NotNil(t, complaint.Category)
	assert.Equal(t, "harassment", *complaint.Category)
	assert.Equal(t, models.PriorityHigh, complaint.Priority)
	assert.NotNil(t, complaint.AIAnalysis)
	assert.Equal(t, "Serious harassment report", *complaint.AIAnalysis)
	assert.Len(t, complaint.AIRecommendations, 2)
	assert.NotNil(t, complaint.SentimentScore)
	assert.InDelta(t, -0.8, *complaint.SentimentScore, 1e-9)
	annotator.AssertExpectations(t)
}

// TestCreateComplaintSurvivesAIFailure verifies an adapter error is
// swallowed: still 201, AI fields stay null.
func TestCreateComplaintSurvivesAIFailure(t *testing.T) {
	annotator := new(MockAnnotator)
	annotator.On("AnalyzeComplaint", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("model endpoint timed out")).Once()
	r, store := newTestRouter(annotator)

	w := doJSON(t, r, http.MethodPost, "/complaints", map[string]any{
		"title":       "Overtime dispute",
		"description": "Unpaid hours",
		"submitterId": "u1",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var complaint models.Complaint
	decode(t, w, &complaint)
	assert.Nil(t, complaint.AIAnalysis)

	// The un-annotated complaint is persisted for good.
	stored, err := store.GetComplaintByID(complaint.ID)
	assert.NoError(t, err)
	assert.Nil(t, stored.AIAnalysis)
	annotator.AssertExpectations(t)
}

// TestCreateComplaintValidation verifies missing required fields yield 400
// and never reach the store.
func TestCreateComplaintValidation(t *testing.T) {
	r, store := newTestRouter(ai.Disabled{})

	w := doJSON(t, r, http.MethodPost, "/complaints", map[string]any{
		"description": "no title or submitter",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	complaints, err := store.ListComplaints()
	assert.NoError(t, err)
	assert.Empty(t, complaints)
}

// TestCreateComplaintNotifiesAssignee verifies a create with assignedTo
// records a notification for that user.
func TestCreateComplaintNotifiesAssignee(t *testing.T) {
	r, store := newTestRouter(ai.Disabled{})

	w := doJSON(t, r, http.MethodPost, "/complaints", map[string]any{
		"title":       "Equipment issue",
		"description": "Laptop broken",
		"submitterId": "u1",
		"assignedTo":  "hr1",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	feed, err := store.ListNotificationsForUser("hr1")
	assert.NoError(t, err)
	assert.Len(t, feed, 1)
	assert.Contains(t, feed[0].Message, "Equipment issue")
	assert.NotNil(t, feed[0].RelatedEntityType)
	assert.Equal(t, "complaint", *feed[0].RelatedEntityType)
}

// TestGetComplaintNotFound verifies the 404 body for an unknown id.
func TestGetComplaintNotFound(t *testing.T) {
	r, _ := newTestRouter(ai.Disabled{})

	w := doJSON(t, r, http.MethodGet, "/complaints/unknown-id", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]string
	decode(t, w, &body)
	assert.Equal(t, "Complaint not found", body["message"])
}

// TestListComplaintsEmptyAndOrdered verifies an empty list is a 200 with
// an empty array, and a filled one comes back newest first.
func TestListComplaintsEmptyAndOrdered(t *testing.T) {
	r, _ := newTestRouter(ai.Disabled{})

	w := doJSON(t, r, http.MethodGet, "/complaints", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	for _, title := range []string{"a", "b", "c"} {
		doJSON(t, r, http.MethodPost, "/complaints", map[string]any{
			"title": title, "description": "d", "submitterId": "u1",
		})
	}
	w = doJSON(t, r, http.MethodGet, "/complaints", nil)
	var complaints []models.Complaint
	decode(t, w, &complaints)
	assert.Len(t, complaints, 3)
	assert.Equal(t, "c", complaints[0].Title)
}

// TestPatchComplaint verifies partial updates merge and bump updatedAt,
// and an unknown id yields 404.
func TestPatchComplaint(t *testing.T) {
	r, _ := newTestRouter(ai.Disabled{})

	w := doJSON(t, r, http.MethodPost, "/complaints", map[string]any{
		"title": "t", "description": "d", "submitterId": "u1",
	})
	var created models.Complaint
	decode(t, w, &created)

	w = doJSON(t, r, http.MethodPatch, "/complaints/"+created.ID, map[string]any{
		"status":     models.ComplaintStatusResolved,
		"assignedTo": "hr1",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var updated models.Complaint
	decode(t, w, &updated)
	assert.Equal(t, models.ComplaintStatusResolved, updated.Status)
	assert.Equal(t, "t", updated.Title)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))

	w = doJSON(t, r, http.MethodPatch, "/complaints/unknown", map[string]any{"status": "open"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// TestListUserComplaints verifies the submitter filter endpoint.
func TestListUserComplaints(t *testing.T) {
	r, _ := newTestRouter(ai.Disabled{})

	doJSON(t, r, http.MethodPost, "/complaints", map[string]any{"title": "mine", "description": "d", "submitterId": "u1"})
	doJSON(t, r, http.MethodPost, "/complaints", map[string]any{"title": "theirs", "description": "d", "submitterId": "u2"})

	w := doJSON(t, r, http.MethodGet, "/users/u1/complaints", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var complaints []models.Complaint
	decode(t, w, &complaints)
	assert.Len(t, complaints, 1)
	assert.Equal(t, "mine", complaints[0].Title)
}
