package claude

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/scout-plus/scout-ai/src/ai/core"
	"github.com/scout-plus/scout-ai/src/webclient"
)

func init() {
	core.RegisterProvider("claude", newClient, "anthropic")
}

const (
	defaultEndpoint = "https://api.anthropic.com/v1/messages"
	defaultModel    = "claude-3-haiku-20240307"

	defaultTemperature = 0.3
	defaultMaxTokens   = 400

	requestTimeout = 60 * time.Second
)

type client struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

func newClient(cfg core.FactoryConfig) (core.Client, error) {
	if cfg.ClaudeKey == "" {
		return nil, fmt.Errorf("claude: API key not configured")
	}

	endpoint := cfg.Extra["claude_endpoint"]
	if endpoint == "" {
		endpoint = defaultEndpoint
	}

	return &client{
		apiKey:     cfg.ClaudeKey,
		endpoint:   endpoint,
		httpClient: webclient.NewDefault(requestTimeout),
	}, nil
}

func (c *client) Complete(ctx context.Context, prompt string, opts core.Options) (string, error) {
	if opts.Model == "" {
		opts.Model = defaultModel
	}
	if opts.Temperature == 0 {
		opts.Temperature = defaultTemperature
	}
	if opts.MaxCompletionTokens == 0 {
		opts.MaxCompletionTokens = defaultMaxTokens
	}

	reqBody := map[string]interface{}{
		"model": opts.Model,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
		"temperature": opts.Temperature,
		"max_tokens":  opts.MaxCompletionTokens,
	}
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.endpoint, bytes.NewBuffer(bodyBytes))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("claude: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("claude: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("claude: status %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Content []struct {
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("claude: decode: %w", err)
	}
	if len(result.Content) == 0 {
		return "", fmt.Errorf("claude: no content in response")
	}

	return strings.TrimSpace(result.Content[0].Text), nil
}
