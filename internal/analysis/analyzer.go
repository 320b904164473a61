package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sashabaranov/go-openai"
)

// Analyzer obtains a lyrics analysis from the OpenAI API
type Analyzer struct {
	apiKey string
	client *openai.Client
}

// NewAnalyzer creates a new lyrics analyzer
func NewAnalyzer(apiKey string) *Analyzer {
	return &Analyzer{
		apiKey: apiKey,
		client: openai.NewClient(apiKey),
	}
}

// Analyze sends the song to the analysis capability and decodes the
// response into a LyricsAnalysis. Malformed responses are rejected with
// a ParseError rather than propagated as loosely typed data.
func (a *Analyzer) Analyze(ctx context.Context, songTitle, lyrics string) (*LyricsAnalysis, error) {
	if a.apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Minute)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: openai.GPT4o,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(userPromptFormat, songTitle, lyrics),
			},
		},
		Temperature: 0,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	resp, err := a.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, &ParseError{Reason: "no response content"}
	}

	return Decode([]byte(resp.Choices[0].Message.Content))
}

// Decode parses and validates a raw analysis JSON document
func Decode(data []byte) (*LyricsAnalysis, error) {
	var result LyricsAnalysis
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, &ParseError{Reason: "malformed JSON", Err: err}
	}
	if err := result.Validate(); err != nil {
		return nil, err
	}
	return &result, nil
}
