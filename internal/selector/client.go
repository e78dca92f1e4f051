// Package selector provides the pluggable pick decision-makers for
// automated draft seats: a deterministic rule-based selector and an
// LLM-backed selector built on the Anthropic messages API.
package selector

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/tanayko/fantasydraftpredictor/internal/config"
)

// anthropicClient wraps the messages API with rate limiting, a circuit
// breaker, and bounded retries. Credentials and model come from config
// injection only.
type anthropicClient struct {
	httpClient     *http.Client
	logger         *logrus.Logger
	apiKey         string
	baseURL        string
	model          string
	maxTokens      int
	limiter        *rate.Limiter
	circuitBreaker *gobreaker.CircuitBreaker
	retryAttempts  int
}

type apiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type apiRequest struct {
	Model     string       `json:"model"`
	MaxTokens int          `json:"max_tokens"`
	Messages  []apiMessage `json:"messages"`
	System    string       `json:"system,omitempty"`
}

type apiContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type apiUsage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

type apiResponse struct {
	ID         string            `json:"id"`
	Content    []apiContentBlock `json:"content"`
	Model      string            `json:"model"`
	StopReason string            `json:"stop_reason"`
	Usage      apiUsage          `json:"usage"`
}

type apiError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func newAnthropicClient(cfg *config.Config, logger *logrus.Logger) *anthropicClient {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "anthropic-api",
		MaxRequests: 3,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"circuit":    name,
				"from_state": from.String(),
				"to_state":   to.String(),
			}).Info("Anthropic API circuit breaker state changed")
		},
	})

	perSecond := cfg.SelectorRateLimit
	if perSecond <= 0 {
		perSecond = 1
	}

	return &anthropicClient{
		httpClient:     &http.Client{Timeout: cfg.SelectorTimeout},
		logger:         logger,
		apiKey:         cfg.AnthropicAPIKey,
		baseURL:        cfg.AnthropicBaseURL,
		model:          cfg.SelectorModel,
		maxTokens:      cfg.SelectorMaxTokens,
		limiter:        rate.NewLimiter(rate.Limit(perSecond), 1),
		circuitBreaker: cb,
		retryAttempts:  cfg.SelectorRetries,
	}
}

// complete sends one user prompt and returns the concatenated text of
// the response content blocks
func (c *anthropicClient) complete(ctx context.Context, systemPrompt, prompt string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter interrupted: %w", err)
	}

	request := apiRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		Messages:  []apiMessage{{Role: "user", Content: prompt}},
		System:    systemPrompt,
	}

	response, err := c.circuitBreaker.Execute(func() (interface{}, error) {
		return c.makeRequest(ctx, request)
	})
	if err != nil {
		return "", fmt.Errorf("anthropic API request failed: %w", err)
	}

	resp := response.(*apiResponse)
	c.logger.WithFields(logrus.Fields{
		"input_tokens":  resp.Usage.InputTokens,
		"output_tokens": resp.Usage.OutputTokens,
		"stop_reason":   resp.StopReason,
	}).Debug("Anthropic API call completed")

	var text bytes.Buffer
	for _, block := range resp.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	if text.Len() == 0 {
		return "", fmt.Errorf("empty completion from model %s", resp.Model)
	}
	return text.String(), nil
}

// makeRequest performs the HTTP round trip with exponential backoff
func (c *anthropicClient) makeRequest(ctx context.Context, request apiRequest) (*apiResponse, error) {
	requestBody, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt < c.retryAttempts; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(1<<uint(attempt)) * time.Second
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/messages", bytes.NewBuffer(requestBody))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("x-api-key", c.apiKey)
		req.Header.Set("anthropic-version", "2023-06-01")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode == http.StatusOK {
			var decoded apiResponse
			err := json.NewDecoder(resp.Body).Decode(&decoded)
			resp.Body.Close()
			if err != nil {
				return nil, fmt.Errorf("failed to decode response: %w", err)
			}
			return &decoded, nil
		}

		var decodedErr apiError
		decodeErr := json.NewDecoder(resp.Body).Decode(&decodedErr)
		resp.Body.Close()
		if decodeErr != nil {
			lastErr = fmt.Errorf("API request failed with status %d", resp.StatusCode)
			continue
		}

		switch resp.StatusCode {
		case http.StatusUnauthorized:
			return nil, fmt.Errorf("invalid API credentials: %s", decodedErr.Message)
		case http.StatusBadRequest:
			return nil, fmt.Errorf("bad request: %s", decodedErr.Message)
		case http.StatusTooManyRequests:
			lastErr = fmt.Errorf("rate limit exceeded: %s", decodedErr.Message)
		default:
			lastErr = fmt.Errorf("unexpected error (status %d): %s", resp.StatusCode, decodedErr.Message)
		}
	}

	return nil, fmt.Errorf("failed after %d attempts: %w", c.retryAttempts, lastErr)
}
