package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Scenario risk levels assigned by the annotation service.
const (
	RiskLevelLow      = "low"
	RiskLevelMedium   = "medium"
	RiskLevelHigh     = "high"
	RiskLevelCritical = "critical"
)

// Scenario is a training situation submitted for AI guidance. The AI
// fields stay null until the assessment call succeeds.
type Scenario struct {
	ID                 string         `gorm:"primaryKey" json:"id"`
	Scenario           string         `json:"scenario"`
	AIResponse         *string        `json:"aiResponse"`
	RecommendedActions pq.StringArray `gorm:"type:text[]" json:"recommendedActions"`
	RiskLevel          *string        `json:"riskLevel"`
	CreatedAt          time.Time      `json:"createdAt"`
}

// BeforeCreate generates a UUID for the scenario if the ID is not set yet.
func (s *Scenario) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return
}

// ScenarioPatch carries the fields a partial scenario update may overwrite.
type ScenarioPatch struct {
	Scenario           *string   `json:"scenario"`
	AIResponse         *string   `json:"aiResponse"`
	RecommendedActions *[]string `json:"recommendedActions"`
	RiskLevel          *string   `json:"riskLevel"`
}
