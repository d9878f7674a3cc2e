package engine

import (
	"context"
	"strings"
)

// Mock is an offline adapter for local runs and tests. It echoes the
// context back inside a fixed document skeleton without calling any
// external model.
type Mock struct {
	// Response, when set, is returned verbatim.
	Response string
}

func (m *Mock) Name() string { return "mock" }

func (m *Mock) Invoke(_ context.Context, contextText, prompt string) (string, error) {
	if m.Response != "" {
		return m.Response, nil
	}
	var sb strings.Builder
	sb.WriteString("# Generated Document (mock)\n\n")
	sb.WriteString("This document was produced by the offline mock engine.\n\n")
	if strings.TrimSpace(contextText) != "" {
		sb.WriteString("## Provided Details\n\n")
		sb.WriteString(strings.TrimSpace(contextText))
		sb.WriteString("\n\n")
	}
	sb.WriteString("## Instructions Received\n\n")
	sb.WriteString("```\n")
	sb.WriteString(strings.TrimSpace(prompt))
	sb.WriteString("\n```\n")
	return sb.String(), nil
}
