/*
Package ai condenses filing text into a short plain-English summary using the
Gemini API.
*/
package ai

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.0-flash"

const promptTemplate = "Summarize the following SEC filing excerpt in two plain-English sentences, " +
	"emphasizing what changed and why it matters to investors:\n\n---\n%s"

// Summarizer wraps the Gemini API for filing summarization.
type Summarizer struct {
	apiKey    string
	modelName string
}

// New creates a summarizer. An empty API key is accepted; calls will then
// fail and the caller degrades to its fallback text.
func New(apiKey string, modelName string) *Summarizer {
	if modelName == "" {
		modelName = defaultModel
	}
	return &Summarizer{apiKey: apiKey, modelName: modelName}
}

// Summarize returns a two-sentence summary of the given filing text. Output
// length is bounded and sampling temperature kept low so repeated runs over
// the same filing stay close to deterministic.
func (s *Summarizer) Summarize(ctx context.Context, text string) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  s.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}

	contents := []*genai.Content{
		{
			Parts: []*genai.Part{
				{Text: fmt.Sprintf(promptTemplate, text)},
			},
			Role: "user",
		},
	}

	resp, err := client.Models.GenerateContent(ctx, s.modelName, contents, &genai.GenerateContentConfig{
		MaxOutputTokens: 80,
		Temperature:     genai.Ptr[float32](0.2),
	})
	if err != nil {
		return "", fmt.Errorf("gemini API call failed: %w", err)
	}

	summary := strings.TrimSpace(resp.Text())
	if summary == "" {
		return "", fmt.Errorf("gemini returned an empty response")
	}

	return summary, nil
}
