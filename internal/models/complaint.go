package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq" // pq.StringArray for the recommendations column
	"gorm.io/gorm"
)

// Complaint statuses and priorities.
const (
	ComplaintStatusOpen       = "open"
	ComplaintStatusInProgress = "in_progress"
	ComplaintStatusResolved   = "resolved"

	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Complaint is a case submitted by an employee. The AI* fields start out
// null and are filled in after a successful annotation call; a failed call
// leaves them null for good.
type Complaint struct {
	ID                string         `gorm:"primaryKey" json:"id"`
	Title             string         `json:"title"`
	Description       string         `json:"description"`
	SubmitterID       string         `gorm:"index" json:"submitterId"`
	Status            string         `json:"status"`
	Priority          string         `json:"priority"`
	Category          *string        `json:"category"`
	AssignedTo        *string        `json:"assignedTo"`
	AIAnalysis        *string        `json:"aiAnalysis"`
	AIRecommendations pq.StringArray `gorm:"type:text[]" json:"aiRecommendations"`
	SentimentScore    *float64       `json:"sentimentScore"`
	ConfidenceScore   *float64       `json:"confidenceScore"`
	IsAnonymous       bool           `json:"isAnonymous"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
}

// BeforeCreate generates a UUID for the complaint if the ID is not set yet.
func (c *Complaint) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}

// ComplaintPatch carries the fields a partial complaint update may
// overwrite. List-valued fields are replaced wholesale, not merged.
type ComplaintPatch struct {
	Title             *string   `json:"title"`
	Description       *string   `json:"description"`
	Status            *string   `json:"status"`
	Priority          *string   `json:"priority"`
	Category          *string   `json:"category"`
	AssignedTo        *string   `json:"assignedTo"`
	AIAnalysis        *string   `json:"aiAnalysis"`
	AIRecommendations *[]string `json:"aiRecommendations"`
	SentimentScore    *float64  `json:"sentimentScore"`
	ConfidenceScore   *float64  `json:"confidenceScore"`
	IsAnonymous       *bool     `json:"isAnonymous"`
}
