package services

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/invayl-academya/Ai-chatbot/internal/models"
)

const tutorSystemPrompt = "You are Invayl Tutor — a patient expert in Python, ML, and DL. " +
	"Be concise, show runnable examples, and end with a short follow-up question."

// defaultMaxOutputTokens caps the reply when the caller sends no budget.
const defaultMaxOutputTokens = 300

// OpenAIService wraps the OpenAI client. Constructed once at startup and
// injected into the chat service; never held in package-level state.
type OpenAIService struct {
	client *openai.Client
	model  string
}

func NewOpenAIService(apiKey, model string) *OpenAIService {
	return &OpenAIService{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// Complete sends one user message with the fixed tutor system prompt and
// returns the reply text plus token usage. No retries: the call either
// succeeds or the error propagates to the orchestration boundary.
func (s *OpenAIService) Complete(ctx context.Context, message string, maxOutputTokens *int) (string, models.Usage, error) {
	req := buildCompletionRequest(s.model, message, maxOutputTokens)

	resp, err := s.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", models.Usage{}, fmt.Errorf("OpenAI API error: %w", err)
	}

	reply := extractReply(resp)
	if reply == "" {
		return "", models.Usage{}, fmt.Errorf("no text returned by model")
	}

	usage := models.Usage{
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
		TotalTokens:      resp.Usage.TotalTokens,
	}
	return reply, usage, nil
}

func buildCompletionRequest(model, message string, maxOutputTokens *int) openai.ChatCompletionRequest {
	req := openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: tutorSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: message},
		},
		MaxTokens: defaultMaxOutputTokens,
	}
	if maxOutputTokens != nil {
		req.MaxTokens = *maxOutputTokens
	}
	return req
}

// extractReply resolves the reply text with an ordered fallback: the first
// choice's content, else the concatenation of all choices' text segments.
// Returns "" when nothing textual came back.
func extractReply(resp openai.ChatCompletionResponse) string {
	if len(resp.Choices) == 0 {
		return ""
	}

	if text := resp.Choices[0].Message.Content; text != "" {
		return text
	}

	var text strings.Builder
	for _, choice := range resp.Choices {
		text.WriteString(choice.Message.Content)
	}
	return text.String()
}
