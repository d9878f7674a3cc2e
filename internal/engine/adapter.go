package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Adapter is the boundary abstraction over the external generative model.
// Invoke receives the task framing (the composed prompt) and the raw facts
// (the context narrative) as two separate inputs and returns plain text.
// Implementations must tolerate arbitrary-length text in both arguments.
type Adapter interface {
	Invoke(ctx context.Context, contextText, prompt string) (string, error)
	Name() string
}

// ErrEmptyResult is returned when the model produced no usable text.
var ErrEmptyResult = errors.New("model returned empty result")

// Mode selects how the two inputs are shaped into model messages.
type Mode string

const (
	// ModeDirect sends one user message carrying both the framing and the
	// facts, mirroring a single-shot completion call.
	ModeDirect Mode = "direct"
	// ModeChain sends the framing as the system prompt and the facts as
	// the user message, mirroring a templated-chain call.
	ModeChain Mode = "chain"
)

// Settings configures adapter construction. Provider and Mode together are
// the capability-polymorphism point: the pipeline only ever sees Adapter.
type Settings struct {
	Provider  string `yaml:"provider"`
	Mode      string `yaml:"mode"`
	APIKey    string `yaml:"api_key"`
	BaseURL   string `yaml:"base_url,omitempty"`
	Model     string `yaml:"model,omitempty"`
	MaxTokens int    `yaml:"max_tokens,omitempty"`
}

// New builds the configured adapter.
func New(cfg Settings) (Adapter, error) {
	mode, err := parseMode(cfg.Mode)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "openai", "":
		return newOpenAIAdapter(cfg, mode)
	case "anthropic":
		return newAnthropicAdapter(cfg, mode)
	case "mock":
		return &Mock{}, nil
	default:
		return nil, fmt.Errorf("unknown engine provider: %s", cfg.Provider)
	}
}

func parseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeDirect, "":
		return ModeDirect, nil
	case ModeChain:
		return ModeChain, nil
	default:
		return "", fmt.Errorf("unknown engine mode: %s", s)
	}
}

// shapeMessages maps (context, prompt) to (system, user) message text for
// the selected mode. The user message is never empty.
func shapeMessages(mode Mode, contextText, prompt string) (system, user string) {
	contextText = strings.TrimSpace(contextText)
	switch mode {
	case ModeChain:
		system = prompt
		user = contextText
		if user == "" {
			user = "Generate the document described in the instructions."
		}
	default:
		var sb strings.Builder
		sb.WriteString(prompt)
		if contextText != "" {
			sb.WriteString("\n\n### Context\n\n")
			sb.WriteString(contextText)
		}
		user = sb.String()
	}
	return system, user
}
