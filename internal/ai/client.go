package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// Client provides access to a language model for text completion.
// Implementations classify failures into the package sentinel errors;
// callers decide retry policy.
type Client interface {
	// Complete sends a prompt and returns the raw text response.
	Complete(ctx context.Context, prompt string) (string, error)
}

// chatClient implements Client against an OpenAI-compatible
// chat completions HTTP API.
type chatClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewChatClient creates a Client that talks to an OpenAI-compatible
// chat completions endpoint.
func NewChatClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &chatClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

// chatRequest is the JSON body sent to POST /v1/chat/completions.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse is the JSON body returned by POST /v1/chat/completions.
type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message      chatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
}

func (c *chatClient) Complete(ctx context.Context, prompt string) (string, error) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	text, err := c.doRequest(ctx, prompt)

	latency := time.Since(start).Milliseconds()
	if err != nil {
		if ctx.Err() != nil {
			err = ErrTimeout
		}
		c.observer.OnCallComplete(CallEvent{
			Model:     c.cfg.Model,
			LatencyMs: latency,
			Success:   false,
			ErrorCode: errorCode(err),
		})
		return "", err
	}

	c.observer.OnCallComplete(CallEvent{
		Model:     c.cfg.Model,
		LatencyMs: latency,
		Success:   true,
	})
	return text, nil
}

func (c *chatClient) doRequest(ctx context.Context, prompt string) (string, error) {
	body := chatRequest{
		Model:       c.cfg.Model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: c.cfg.Temperature,
		MaxTokens:   c.cfg.MaxTokens,
	}
	data, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	url := c.cfg.Endpoint + "/v1/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		if isConnectionError(err) {
			return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return "", err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	switch {
	case httpResp.StatusCode == http.StatusUnauthorized,
		httpResp.StatusCode == http.StatusForbidden:
		return "", fmt.Errorf("%w: status %d", ErrUnauthorized, httpResp.StatusCode)
	case httpResp.StatusCode == http.StatusTooManyRequests:
		return "", fmt.Errorf("%w: status %d", ErrRateLimited, httpResp.StatusCode)
	case httpResp.StatusCode != http.StatusOK:
		return "", fmt.Errorf("completion api returned status %d: %s",
			httpResp.StatusCode, string(respBody))
	}

	var resp chatResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty choices", ErrInvalidOutput)
	}

	return resp.Choices[0].Message.Content, nil
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnauthorized):
		return "UNAUTHORIZED"
	case errors.Is(err, ErrRateLimited):
		return "RATE_LIMITED"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrInvalidOutput):
		return "INVALID_OUTPUT"
	default:
		return "UNKNOWN"
	}
}
