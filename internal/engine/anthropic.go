package engine

import (
	"context"
	"fmt"
	"strings"

	anthropic "github.com/liushuangls/go-anthropic/v2"
)

const defaultAnthropicModel = "claude-3-5-haiku-latest"

// AnthropicAdapter invokes the Anthropic Messages API.
type AnthropicAdapter struct {
	client    *anthropic.Client
	model     string
	mode      Mode
	maxTokens int
}

func newAnthropicAdapter(cfg Settings, mode Mode) (*AnthropicAdapter, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("anthropic api key is required")
	}
	var opts []anthropic.ClientOption
	if cfg.BaseURL != "" {
		opts = append(opts, anthropic.WithBaseURL(cfg.BaseURL))
	}
	model := cfg.Model
	if model == "" {
		model = defaultAnthropicModel
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 4096
	}
	return &AnthropicAdapter{
		client:    anthropic.NewClient(cfg.APIKey, opts...),
		model:     model,
		mode:      mode,
		maxTokens: maxTokens,
	}, nil
}

func (a *AnthropicAdapter) Name() string { return "anthropic" }

func (a *AnthropicAdapter) Invoke(ctx context.Context, contextText, prompt string) (string, error) {
	system, user := shapeMessages(a.mode, contextText, prompt)

	req := anthropic.MessagesRequest{
		Model:     anthropic.Model(a.model),
		MaxTokens: a.maxTokens,
		Messages: []anthropic.Message{
			anthropic.NewUserTextMessage(user),
		},
	}
	if system != "" {
		req.System = system
	}

	resp, err := a.client.CreateMessages(ctx, req)
	if err != nil {
		return "", fmt.Errorf("anthropic completion: %w", err)
	}
	content := strings.TrimSpace(resp.GetFirstContentText())
	if content == "" {
		return "", ErrEmptyResult
	}
	return content, nil
}
