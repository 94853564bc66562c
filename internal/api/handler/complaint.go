package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hrdesk/backend/internal/models"
	"hrdesk/backend/internal/storage"
)

// ListComplaints returns all complaints, newest created first.
func (h *Handler) ListComplaints(c *gin.Context) {
	complaints, err := h.Store.ListComplaints()
	if err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, complaints)
}

// GetComplaint returns a single complaint by id.
func (h *Handler) GetComplaint(c *gin.Context) {
	complaint, err := h.Store.GetComplaintByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			notFound(c, "Complaint not found")
			return
		}
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, complaint)
}

type createComplaintRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description" binding:"required"`
	SubmitterID string  `json:"submitterId" binding:"required"`
	Priority    string  `json:"priority"`
	Category    *string `json:"category"`
	AssignedTo  *string `json:"assignedTo"`
	IsAnonymous bool    `json:"isAnonymous"`
}

// CreateComplaint persists the complaint, then attempts annotation inline.
// A failed annotation is logged and skipped; the complaint keeps null AI
// fields and the request still returns 201.
func (h *Handler) CreateComplaint(c *gin.Context) {
	var req createComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid complaint data")
		return
	}

	complaint := &models.Complaint{
		Title:       req.Title,
		Description: req.Description,
		SubmitterID: req.SubmitterID,
		Priority:    req.Priority,
		Category:    req.Category,
		AssignedTo:  req.AssignedTo,
		IsAnonymous: req.IsAnonymous,
	}
	if err := h.Store.CreateComplaint(complaint); err != nil {
		internalError(c)
		return
	}

	if annotated := h.annotateComplaint(c, complaint); annotated != nil {
		complaint = annotated
	}
	h.notifyAssignee(complaint)

	c.JSON(http.StatusCreated, complaint)
}

// annotateComplaint runs the analysis call and merges the result into the
// stored complaint. Returns nil when annotation was skipped for any reason.
func (h *Handler) annotateComplaint(c *gin.Context, complaint *models.Complaint) *models.Complaint {
	analysis, err := h.AI.AnalyzeComplaint(c.Request.Context(), complaint.Title, complaint.Description)
	if err != nil {
		log.Printf("ERROR: Annotation skipped for complaint %s: %v", complaint.ID, err)
		return nil
	}

	patch := models.ComplaintPatch{
		AIAnalysis:        &analysis.Summary,
		AIRecommendations: &analysis.Recommendations,
		SentimentScore:    &analysis.Sentiment,
		ConfidenceScore:   &analysis.Confidence,
	}
	if analysis.Category != "" {
		patch.Category = &analysis.Category
	}
	switch analysis.Priority {
	case models.PriorityLow, models.PriorityMedium, models.PriorityHigh:
		patch.Priority = &analysis.Priority
	}

	updated, err := h.Store.UpdateComplaint(complaint.ID, patch)
	if err != nil {
		log.Printf("ERROR: Failed to attach analysis to complaint %s: %v", complaint.ID, err)
		return nil
	}
	return updated
}

// notifyAssignee records a notification for the assigned HR staffer, when
// there is one. Best effort.
func (h *Handler) notifyAssignee(complaint *models.Complaint) {
	if complaint.AssignedTo == nil || *complaint.AssignedTo == "" {
		return
	}
	entityType := "complaint"
	notification := &models.Notification{
		UserID:            *complaint.AssignedTo,
		Message:           "New complaint assigned: " + complaint.Title,
		RelatedEntityID:   &complaint.ID,
		RelatedEntityType: &entityType,
	}
	if err := h.Store.CreateNotification(notification); err != nil {
		log.Printf("ERROR: Failed to notify assignee %s for complaint %s: %v",
			*complaint.AssignedTo, complaint.ID, err)
	}
}

// UpdateComplaint applies a partial update. updatedAt is bumped by the
// store on every successful call.
func (h *Handler) UpdateComplaint(c *gin.Context) {
	var patch models.ComplaintPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, "Invalid complaint data")
		return
	}
	complaint, err := h.Store.UpdateComplaint(c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			notFound(c, "Complaint not found")
			return
		}
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, complaint)
}
