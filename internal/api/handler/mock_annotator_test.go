package handler_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"hrdesk/backend/internal/ai"
)

// MockAnnotator is a testify mock for the annotation client.
type MockAnnotator struct {
	mock.Mock
}

func (m *MockAnnotator) AnalyzeComplaint(ctx context.Context, title, description string) (*ai.ComplaintAnalysis, error) {
	args := m.Called(ctx, title, description)
	if analysis := args.Get(0); analysis != nil {
		return analysis.(*ai.ComplaintAnalysis), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAnnotator) AssessScenario(ctx context.Context, scenarioText string) (*ai.ScenarioAssessment, error) {
	args := m.Called(ctx, scenarioText)
	if assessment := args.Get(0); assessment != nil {
		return assessment.(*ai.ScenarioAssessment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAnnotator) Answer(ctx context.Context, question string) (string, error) {
	args := m.Called(ctx, question)
	return args.String(0), args.Error(1)
}
