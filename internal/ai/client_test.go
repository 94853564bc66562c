package ai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"hrdesk/backend/internal/ai"
)

// fakeCompletion builds a chat-completions endpoint that always replies
// with the given message content.
func fakeCompletion(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req["model"])

		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": content}},
			},
		})
	}))
}

// TestAnalyzeComplaintParsesJSON verifies the analysis payload round-trips
// through the completion wire format.
func TestAnalyzeComplaintParsesJSON(t *testing.T) {
	srv := fakeCompletion(t, `{"category":"harassment","priority":"high","summary":"s","recommendations":["a","b"],"sentiment":-0.7,"confidence":0.9}`)
	defer srv.Close()

	client := ai.NewClient(srv.URL, "test-key", "test-model")
	analysis, err := client.AnalyzeComplaint(context.Background(), "Title", "Description")
	assert.NoError(t, err)
	assert.Equal(t, "harassment", analysis.Category)
	assert.Equal(t, "high", analysis.Priority)
	assert.Equal(t, []string{"a", "b"}, analysis.Recommendations)
	assert.InDelta(t, -0.7, analysis.Sentiment, 1e-9)
}

// TestAnalyzeComplaintStripsCodeFences verifies fenced model output still
// parses.
func TestAnalyzeComplaintStripsCodeFences(t *testing.T) {
	srv := fakeCompletion(t, "```json\n{\"category\":\"pay\",\"priority\":\"low\",\"summary\":\"s\",\"recommendations\":[],\"sentiment\":0,\"confidence\":0.5}\n```")
	defer srv.Close()

	client := ai.NewClient(srv.URL, "test-key", "test-model")
	analysis, err := client.AnalyzeComplaint(context.Background(), "T", "D")
	assert.NoError(t, err)
	assert.Equal(t, "pay", analysis.Category)
}

// TestAnalyzeComplaintMalformedOutput verifies non-JSON model output is an
// error, for the caller to swallow.
func TestAnalyzeComplaintMalformedOutput(t *testing.T) {
	srv := fakeCompletion(t, "I'm sorry, I can't help with that.")
	defer srv.Close()

	client := ai.NewClient(srv.URL, "test-key", "test-model")
	_, err := client.AnalyzeComplaint(context.Background(), "T", "D")
	assert.Error(t, err)
}

// TestAssessScenarioParsesJSON verifies the scenario assessment path.
func TestAssessScenarioParsesJSON(t *testing.T) {
	srv := fakeCompletion(t, `{"response":"guidance","recommendedActions":["x"],"riskLevel":"medium"}`)
	defer srv.Close()

	client := ai.NewClient(srv.URL, "test-key", "test-model")
	assessment, err := client.AssessScenario(context.Background(), "scenario text")
	assert.NoError(t, err)
	assert.Equal(t, "guidance", assessment.Response)
	assert.Equal(t, "medium", assessment.RiskLevel)
}

// TestAnswerReturnsPlainText verifies free-text answers pass through
// trimmed.
func TestAnswerReturnsPlainText(t *testing.T) {
	srv := fakeCompletion(t, "  Ask your manager first.\n")
	defer srv.Close()

	client := ai.NewClient(srv.URL, "test-key", "test-model")
	answer, err := client.Answer(context.Background(), "Who approves leave?")
	assert.NoError(t, err)
	assert.Equal(t, "Ask your manager first.", answer)
}

// TestEndpointErrorSurfaces verifies a non-200 status is an error.
func TestEndpointErrorSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := ai.NewClient(srv.URL, "test-key", "test-model")
	_, err := client.Answer(context.Background(), "q")
	assert.Error(t, err)
}

// TestDisabledAlwaysErrors verifies the no-op annotator reports itself
// disabled on every operation.
func TestDisabledAlwaysErrors(t *testing.T) {
	var annotator ai.Annotator = ai.Disabled{}

	_, err := annotator.AnalyzeComplaint(context.Background(), "t", "d")
	assert.ErrorIs(t, err, ai.ErrDisabled)
	_, err = annotator.AssessScenario(context.Background(), "s")
	assert.ErrorIs(t, err, ai.ErrDisabled)
	_, err = annotator.Answer(context.Background(), "q")
	assert.ErrorIs(t, err, ai.ErrDisabled)
}
