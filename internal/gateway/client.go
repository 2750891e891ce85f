package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/classroom-llm/gateway-seeder/pkg/logger"
)

// HTTPClient talks to a LiteLLM-compatible key-management API. All calls are
// synchronous and carry the master key as a bearer credential; only the
// readiness wait retries.
type HTTPClient struct {
	baseURL      string
	masterKey    string
	httpClient   *http.Client
	maxAttempts  int
	pollInterval time.Duration
	logger       *logger.Logger
}

var _ Client = (*HTTPClient)(nil)

func NewHTTPClient(baseURL, masterKey string, maxAttempts int, pollInterval time.Duration, log *logger.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL:      strings.TrimRight(baseURL, "/"),
		masterKey:    masterKey,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		maxAttempts:  maxAttempts,
		pollInterval: pollInterval,
		logger:       log,
	}
}

func (c *HTTPClient) WaitUntilReady(ctx context.Context) error {
	url := c.baseURL + "/health/readiness"
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		resp, err := c.httpClient.Do(req)
		if err == nil {
			status := resp.StatusCode
			resp.Body.Close()
			if status == http.StatusOK {
				c.logger.Infof("gateway at %s is ready", c.baseURL)
				return nil
			}
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if attempt < c.maxAttempts {
			c.logger.Infof("waiting for gateway at %s (attempt %d/%d)", c.baseURL, attempt, c.maxAttempts)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.pollInterval):
			}
		}
	}
	return fmt.Errorf("gateway at %s not ready after %d attempts", c.baseURL, c.maxAttempts)
}

func (c *HTTPClient) ListKeys(ctx context.Context) ([]string, error) {
	var out struct {
		Keys []string `json:"keys"`
	}
	if err := c.do(ctx, http.MethodGet, "/key/list", nil, &out); err != nil {
		return nil, err
	}
	return out.Keys, nil
}

func (c *HTTPClient) DeleteKeys(ctx context.Context, keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	payload := map[string][]string{"keys": keys}
	return c.do(ctx, http.MethodPost, "/key/delete", payload, nil)
}

func (c *HTTPClient) GenerateKey(ctx context.Context, req KeyRequest) (string, error) {
	var out struct {
		Key string `json:"key"`
	}
	if err := c.do(ctx, http.MethodPost, "/key/generate", req, &out); err != nil {
		return "", err
	}
	if out.Key == "" {
		return "", errors.New("gateway returned an empty key")
	}
	return out.Key, nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode %s request: %w", path, err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.masterKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("gateway returned status %d for %s: %s", resp.StatusCode, path, strings.TrimSpace(string(detail)))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode %s response: %w", path, err)
		}
	}
	return nil
}
