package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/artinmajd/ai-cover-letter-generator/internal/model"
)

const systemMessage = "You are an expert cover letter writer who creates natural, humanized, and conversational cover letters."

// Fixed generation parameters; the only per-invocation knob is the model name.
const (
	temperature = 0.7
	maxTokens   = 1000
)

// OpenAIProvider calls the OpenAI /v1/chat/completions endpoint.
type OpenAIProvider struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewOpenAIProvider creates a provider targeting the OpenAI API.
func NewOpenAIProvider(baseURL, apiKey, model string, httpClient *http.Client) *OpenAIProvider {
	return &OpenAIProvider{
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
		httpClient: httpClient,
	}
}

// chatRequest mirrors the OpenAI /v1/chat/completions request body.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse mirrors the relevant fields of the OpenAI response.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Complete sends prompt to OpenAI and returns the generated text. It performs
// exactly one request; failures are classified (auth, rate limit, remote) and
// never retried here.
func (p *OpenAIProvider) Complete(ctx context.Context, prompt string) (string, error) {
	reqBody := chatRequest{
		Model: p.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemMessage},
			{Role: "user", Content: prompt},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", &model.RemoteError{Err: fmt.Errorf("marshal request: %w", err)}
	}

	url := p.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", &model.RemoteError{Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", &model.RemoteError{Err: fmt.Errorf("llm request: %w", err)}
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &model.RemoteError{Err: fmt.Errorf("read response: %w", err)}
	}

	if err := classifyStatus(resp.StatusCode, respBytes); err != nil {
		return "", err
	}

	var chatResp chatResponse
	if err := json.Unmarshal(respBytes, &chatResp); err != nil {
		return "", &model.RemoteError{Err: fmt.Errorf("parse response: %w", err)}
	}

	if chatResp.Error != nil {
		return "", &model.RemoteError{Err: fmt.Errorf("llm error (%s): %s", chatResp.Error.Type, chatResp.Error.Message)}
	}

	if len(chatResp.Choices) == 0 {
		return "", &model.RemoteError{Err: errors.New("llm returned no choices")}
	}

	return chatResp.Choices[0].Message.Content, nil
}

// classifyStatus maps a non-2xx HTTP status to the matching error category.
func classifyStatus(status int, body []byte) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return &model.AuthError{Err: fmt.Errorf("API key rejected (HTTP %d): %s", status, string(body))}
	case status == http.StatusTooManyRequests:
		return &model.RateLimitError{Err: fmt.Errorf("HTTP %d: %s", status, string(body))}
	default:
		return &model.RemoteError{StatusCode: status, Err: errors.New(string(body))}
	}
}
