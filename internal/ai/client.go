package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// requestTimeout bounds every completion call so a stalled model endpoint
// cannot hang a request indefinitely.
const requestTimeout = 15 * time.Second

// Client talks to an OpenAI-compatible chat completions endpoint.
type Client struct {
	baseURL string
	apiKey  string
	model   string
	http    *http.Client
}

// NewClient Constructor. baseURL is the API root, e.g. "https://api.openai.com/v1".
func NewClient(baseURL, apiKey, model string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// complete sends one system+user exchange and returns the raw model output.
func (c *Client) complete(ctx context.Context, system, user string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	})
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("ai: completion endpoint returned %d: %s", resp.StatusCode, raw)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("ai: malformed completion response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("ai: completion response has no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}

// stripFences removes a ```json ... ``` wrapper some models insist on
// emitting around JSON output.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}

const analyzeSystemPrompt = `You are an HR case triage assistant. Analyze the complaint and respond with a single JSON object, no prose, with keys: "category" (string), "priority" (one of "low", "medium", "high"), "summary" (string), "recommendations" (array of strings), "sentiment" (number between -1 and 1), "confidence" (number between 0 and 1).`

// AnalyzeComplaint asks the model to categorize a complaint and score its
// sentiment.
func (c *Client) AnalyzeComplaint(ctx context.Context, title, description string) (*ComplaintAnalysis, error) {
	prompt := fmt.Sprintf("Title: %s\n\nDescription: %s", title, description)
	out, err := c.complete(ctx, analyzeSystemPrompt, prompt)
	if err != nil {
		return nil, err
	}
	var analysis ComplaintAnalysis
	if err := json.Unmarshal([]byte(stripFences(out)), &analysis); err != nil {
		return nil, fmt.Errorf("ai: unparseable complaint analysis: %w", err)
	}
	return &analysis, nil
}

const assessSystemPrompt = `You are an HR training assistant. Assess the workplace scenario and respond with a single JSON object, no prose, with keys: "response" (guidance text), "recommendedActions" (array of strings), "riskLevel" (one of "low", "medium", "high", "critical").`

// AssessScenario asks the model for guidance and a risk level for a
// training scenario.
func (c *Client) AssessScenario(ctx context.Context, scenarioText string) (*ScenarioAssessment, error) {
	out, err := c.complete(ctx, assessSystemPrompt, scenarioText)
	if err != nil {
		return nil, err
	}
	var assessment ScenarioAssessment
	if err := json.Unmarshal([]byte(stripFences(out)), &assessment); err != nil {
		return nil, fmt.Errorf("ai: unparseable scenario assessment: %w", err)
	}
	return &assessment, nil
}

const answerSystemPrompt = `You are a helpful HR assistant. Answer the employee's question about workplace policy, benefits or procedures in plain text.`

// Answer returns a free-text reply to an HR question.
func (c *Client) Answer(ctx context.Context, question string) (string, error) {
	out, err := c.complete(ctx, answerSystemPrompt, question)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}
