package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const captionPrompt = `You write Instagram and Facebook captions for a small beauty and wellness business.

Task: write a warm, professional caption for a new post based on the owner's description below. Keep it under 400 characters, no emojis in the hashtags.

Description: %s

Output a single JSON object, nothing else:
{"content": "the caption text", "hashtags": "#five #to #eight #space #separated #hashtags"}`

// Gemini generates captions through the Gemini API, trying each configured
// model in order before giving up
type Gemini struct {
	client *genai.Client
	models []string
}

// NewGemini creates a Gemini generator
func NewGemini(ctx context.Context, apiKey string, models []string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if len(models) == 0 {
		return nil, fmt.Errorf("at least one gemini model is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Gemini{client: client, models: models}, nil
}

type captionResult struct {
	Content  string `json:"content"`
	Hashtags string `json:"hashtags"`
}

// Generate asks Gemini for a caption, falling through the model list on
// rate-limit and not-found errors
func (g *Gemini) Generate(ctx context.Context, description string) (string, string, error) {
	prompt := fmt.Sprintf(captionPrompt, description)

	var lastErr error
	for _, model := range g.models {
		result, err := g.client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
		if err != nil {
			errStr := strings.ToLower(err.Error())
			if strings.Contains(errStr, "429") || strings.Contains(errStr, "rate limit") ||
				strings.Contains(errStr, "exhausted") || strings.Contains(errStr, "not found") {
				lastErr = err
				continue
			}
			return "", "", err
		}

		if result == nil || len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
			lastErr = fmt.Errorf("model %s returned no candidates", model)
			continue
		}

		var caption captionResult
		raw := cleanJSON(result.Candidates[0].Content.Parts[0].Text)
		if err := json.Unmarshal([]byte(raw), &caption); err != nil {
			lastErr = fmt.Errorf("model %s returned unparseable caption: %w", model, err)
			continue
		}
		if caption.Content == "" {
			lastErr = fmt.Errorf("model %s returned empty caption", model)
			continue
		}

		return caption.Content, caption.Hashtags, nil
	}

	return "", "", fmt.Errorf("all models failed: %w", lastErr)
}

func cleanJSON(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
