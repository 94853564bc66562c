// Package ai wraps the external language-model completion service used to
// annotate complaints and training scenarios. Callers treat every error as
// "skip annotation": the owning entity is persisted either way and the
// request outcome never depends on this service being up.
package ai

import (
	"context"
	"errors"
)

// ComplaintAnalysis is the annotation attached to a complaint after a
// successful analysis call.
type ComplaintAnalysis struct {
	Category        string   `json:"category"`
	Priority        string   `json:"priority"`
	Summary         string   `json:"summary"`
	Recommendations []string `json:"recommendations"`
	Sentiment       float64  `json:"sentiment"`
	Confidence      float64  `json:"confidence"`
}

// ScenarioAssessment is the annotation attached to a training scenario.
type ScenarioAssessment struct {
	Response           string   `json:"response"`
	RecommendedActions []string `json:"recommendedActions"`
	RiskLevel          string   `json:"riskLevel"`
}

// Annotator is the interface the handlers depend on. Client implements it
// against a live endpoint; Disabled is the no-op fallback when none is
// configured.
type Annotator interface {
	AnalyzeComplaint(ctx context.Context, title, description string) (*ComplaintAnalysis, error)
	AssessScenario(ctx context.Context, scenarioText string) (*ScenarioAssessment, error)
	Answer(ctx context.Context, question string) (string, error)
}

// ErrDisabled is returned by Disabled for every call.
var ErrDisabled = errors.New("ai: no completion endpoint configured")

// Disabled is the Annotator used when no endpoint is configured. Entities
// are simply left un-annotated.
type Disabled struct{}

func (Disabled) AnalyzeComplaint(ctx context.Context, title, description string) (*ComplaintAnalysis, error) {
	return nil, ErrDisabled
}

func (Disabled) AssessScenario(ctx context.Context, scenarioText string) (*ScenarioAssessment, error) {
	return nil, ErrDisabled
}

func (Disabled) Answer(ctx context.Context, question string) (string, error) {
	return "", ErrDisabled
}
