package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client is a client for the inference server's completion API.
// It is bound to a single model loaded via Loader.Load.
type Client struct {
	BaseURL string
	Model   string
	client  *http.Client
}

// newHTTPClient creates an HTTP client without a timeout. Generation calls
// are synchronous and can legitimately run for a long time; cancellation is
// the caller's context's job.
func newHTTPClient() *http.Client {
	return &http.Client{}
}

// NewClient creates a new inference client for the given server and model.
func NewClient(baseURL, model string) *Client {
	return &Client{
		BaseURL: baseURL,
		Model:   model,
		client:  newHTTPClient(),
	}
}

// completionRequest is the request payload for the /completion endpoint.
// Sampling fields are pointers so they can be omitted entirely, leaving the
// server's own defaults in effect.
type completionRequest struct {
	Model       string   `json:"model"`
	Prompt      string   `json:"prompt"`
	Temperature *float64 `json:"temperature,omitempty"`
	NPredict    *int     `json:"n_predict,omitempty"`
}

// completionResponse is the response from the /completion endpoint.
type completionResponse struct {
	Content string `json:"content"`
}

// Generate sends a completion request for the given prompt and returns the
// generated text. When opts is nil no sampling parameters are sent and the
// server's defaults apply.
func (c *Client) Generate(ctx context.Context, prompt string, opts *GenerateOptions) (string, error) {
	url := fmt.Sprintf("%s/completion", c.BaseURL)

	payload := completionRequest{
		Model:  c.Model,
		Prompt: prompt,
	}
	if opts != nil {
		payload.Temperature = &opts.Temperature
		payload.NPredict = &opts.MaxTokens
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("bad status %d: %s", resp.StatusCode, string(raw))
	}

	var compResp completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&compResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	return compResp.Content, nil
}

// Healthy reports whether the inference server answers its health endpoint.
func (c *Client) Healthy(ctx context.Context) bool {
	url := fmt.Sprintf("%s/health", c.BaseURL)

	checkCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(checkCtx, "GET", url, nil)
	if err != nil {
		return false
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return false
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	return resp.StatusCode == http.StatusOK
}
