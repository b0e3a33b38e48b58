package summary

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/sashabaranov/go-openai"
)

const defaultPrompt = "Summarize this job posting in one or two sentences. Mention the main task and the required stack."

// Короткое описание вакансии для уведомлений
type OpenAISummarizer struct {
	client *openai.Client
	prompt string
	// Без ключа summarizer выключен и возвращает пустую строку
	enabled bool
	mu      sync.Mutex
}

// baseURL нужен для прокси и тестов, пустой - api.openai.com
func NewOpenAISummarizer(apiKey, prompt, baseURL string) *OpenAISummarizer {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}

	if prompt == "" {
		prompt = defaultPrompt
	}

	log.Printf("openai summarizer enabled: %v", apiKey != "")

	return &OpenAISummarizer{
		client:  openai.NewClientWithConfig(config),
		prompt:  prompt,
		enabled: apiKey != "",
	}
}

func (s *OpenAISummarizer) Summarize(ctx context.Context, text string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.enabled || strings.TrimSpace(text) == "" {
		return "", nil
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT3Dot5Turbo,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: s.prompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		MaxTokens:   128,
		Temperature: 0.3,
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}

	return trimToSentence(resp.Choices[0].Message.Content), nil
}

// Модель может оборвать ответ на полуслове по MaxTokens, отрезаем незаконченное предложение
func trimToSentence(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.HasSuffix(raw, ".") {
		return raw
	}

	idx := strings.LastIndex(raw, ".")
	if idx < 0 {
		return raw
	}

	return raw[:idx+1]
}
