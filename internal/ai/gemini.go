package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

var ErrIncompleteTrip = errors.New("trip description is incomplete")

// GeminiProvider implements TripParser using Google's Gemini models.
type GeminiProvider struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiProvider initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	// Use Gemini 2.0 Flash for low latency and cost efficiency.
	model := client.GenerativeModel("gemini-2.0-flash")

	// Force JSON response for structured parsing.
	model.ResponseMIMEType = "application/json"

	// Extraction task, keep it close to deterministic.
	model.SetTemperature(0.1)

	return &GeminiProvider{
		client: client,
		model:  model,
	}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

// ParseTrip analyzes a trip description and extracts the fare inputs.
func (p *GeminiProvider) ParseTrip(ctx context.Context, message string, currentContext map[string]string) (*TripDraft, error) {
	if strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("gemini: empty message")
	}
	fullPrompt := fmt.Sprintf("%s\n\nUser Message: %s", buildSystemPrompt(currentContext), message)

	resp, err := p.model.GenerateContent(ctx, genai.Text(fullPrompt))
	if err != nil {
		return nil, fmt.Errorf("gemini generation error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("no response candidates from Gemini")
	}

	var responseText strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			responseText.WriteString(string(txt))
		}
	}
	return decodeDraft(responseText.String())
}

func decodeDraft(raw string) (*TripDraft, error) {
	cleanJSON := cleanJSONString(raw)

	var draft TripDraft
	if err := json.Unmarshal([]byte(cleanJSON), &draft); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w. Raw: %s", err, cleanJSON)
	}
	if draft.PassengerCount == 0 {
		draft.PassengerCount = 1
	}
	return &draft, nil
}

// buildSystemPrompt constructs the instructions for the AI.
func buildSystemPrompt(ctxMap map[string]string) string {
	currentTime := ctxMap["current_time"]
	if currentTime == "" {
		currentTime = "UNKNOWN_TIME"
	}

	return fmt.Sprintf(`Role: You extract taxi trip details for a New York City fare estimator.
Context:
- Current System Time: %s

RULES:
1. "pickup_address" and "dropoff_address" are places in or near New York City, written so a geocoder can find them
   (add ", New York, NY" when the user names only a landmark or street). Use null when not stated.
2. "iso_time" is the pickup time as YYYY-MM-DDTHH:mm:ss. Resolve relative phrases ("tomorrow at 9am", "in 20 minutes")
   against the Current System Time. If the user gives an arrival time, still return it as the pickup time. Use null when unknown.
3. "passenger_count" is an integer from 1 to 6. Default 1.
4. "reply" is one short friendly English sentence. Ask for whatever is still missing.

Output JSON Schema:
{
  "pickup_address": "string or null",
  "dropoff_address": "string or null",
  "passenger_count": integer,
  "iso_time": "YYYY-MM-DDTHH:mm:ss or null",
  "reply": "string"
}
`, currentTime)
}

// cleanJSONString removes markdown code blocks if present (e.g. ```json ... ```)
func cleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
