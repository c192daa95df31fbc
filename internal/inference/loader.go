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

// Loader loads models into the inference server via its /models/load
// endpoint and hands out a Client and Tokenizer bound to the loaded model.
type Loader struct {
	baseURL      string
	client       *http.Client
	pollInterval time.Duration
	maxAttempts  int
}

// NewLoader creates a new model loader for the given inference server.
func NewLoader(baseURL string) *Loader {
	return &Loader{
		baseURL:      baseURL,
		client:       newHTTPClient(),
		pollInterval: time.Second,
		maxAttempts:  30,
	}
}

// loadModelRequest is the request payload for loading a model.
type loadModelRequest struct {
	Model string `json:"model"`
}

// loadModelResponse is the response from the load model endpoint.
type loadModelResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// modelStatus is the status of one model from the /models endpoint.
type modelStatus struct {
	ID      string `json:"id"`
	InCache bool   `json:"in_cache"`
	Status  struct {
		Value    string `json:"value"`
		ExitCode *int   `json:"exit_code,omitempty"`
		Failed   *bool  `json:"failed,omitempty"`
	} `json:"status"`
}

// modelsResponse is the response from the /models endpoint.
type modelsResponse struct {
	Data []modelStatus `json:"data"`
}

// Load makes the named model resident on the inference server and returns a
// Client and Tokenizer bound to it. Loading is asynchronous on the server
// side, so Load polls the /models endpoint until the model is in cache or
// reports a failure. Models that are already resident short-circuit.
func (l *Loader) Load(ctx context.Context, model string) (*Client, *Tokenizer, error) {
	loaded, err := l.isLoaded(ctx, model)
	if err == nil && loaded {
		return NewClient(l.baseURL, model), NewTokenizer(model), nil
	}

	if err := l.requestLoad(ctx, model); err != nil {
		return nil, nil, err
	}

	if err := l.waitLoaded(ctx, model); err != nil {
		return nil, nil, err
	}

	return NewClient(l.baseURL, model), NewTokenizer(model), nil
}

// isLoaded checks whether the model is already resident on the server.
func (l *Loader) isLoaded(ctx context.Context, model string) (bool, error) {
	resp, err := l.fetchModels(ctx)
	if err != nil {
		return false, err
	}
	for _, m := range resp.Data {
		if m.ID == model {
			return m.InCache, nil
		}
	}
	return false, nil
}

// requestLoad asks the server to load the model.
func (l *Loader) requestLoad(ctx context.Context, model string) error {
	url := fmt.Sprintf("%s/models/load", l.baseURL)

	body, err := json.Marshal(loadModelRequest{Model: model})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("bad status %d: %s", resp.StatusCode, string(raw))
	}

	var loadResp loadModelResponse
	if err := json.NewDecoder(resp.Body).Decode(&loadResp); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if !loadResp.Success {
		return fmt.Errorf("model load failed: %s", loadResp.Error)
	}
	return nil
}

// waitLoaded polls the /models endpoint until the model is in cache or
// reports a failed load. The load endpoint acknowledges immediately while
// the actual load happens asynchronously, so polling is required.
func (l *Loader) waitLoaded(ctx context.Context, model string) error {
	for i := 0; i < l.maxAttempts; i++ {
		resp, err := l.fetchModels(ctx)
		if err != nil {
			// Transient status errors mean the model may still be loading.
			if sleepErr := sleepCtx(ctx, l.pollInterval); sleepErr != nil {
				return sleepErr
			}
			continue
		}

		for _, m := range resp.Data {
			if m.ID != model {
				continue
			}
			if m.InCache {
				return nil
			}
			if m.Status.Failed != nil && *m.Status.Failed {
				exitCode := 0
				if m.Status.ExitCode != nil {
					exitCode = *m.Status.ExitCode
				}
				return fmt.Errorf("model load failed with exit code %d", exitCode)
			}
			break
		}

		if err := sleepCtx(ctx, l.pollInterval); err != nil {
			return err
		}
	}

	return fmt.Errorf("model %q did not load within timeout period", model)
}

// fetchModels retrieves the server's model list.
func (l *Loader) fetchModels(ctx context.Context) (*modelsResponse, error) {
	url := fmt.Sprintf("%s/models", l.baseURL)

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create status request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to check model status: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("bad status %d: %s", resp.StatusCode, string(raw))
	}

	var modelsResp modelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&modelsResp); err != nil {
		return nil, fmt.Errorf("failed to decode models response: %w", err)
	}
	return &modelsResp, nil
}

// sleepCtx sleeps for d unless the context is cancelled first.
func sleepCtx(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
