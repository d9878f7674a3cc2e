package prompt

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cyberbull/startupdocs/internal/document"
)

// TemplateError reports a composer or registry invariant violation: a
// template body missing a required placeholder, or a blank required value.
// It marks a configuration defect, not user input error, and callers are
// expected to log it and surface a generic failure.
type TemplateError struct {
	Reason string
}

func (e *TemplateError) Error() string {
	return "template error: " + e.Reason
}

var placeholderPattern = regexp.MustCompile(`\{([a-z_]+)\}`)

// toneStyles maps tone tags to a style guidance sentence prepended to the
// composed prompt. Unknown tones use the neutral style.
var toneStyles = map[string]string{
	document.ToneFormal:        "Adopt a formal, highly professional tone with a focus on structure, precision, and clarity.",
	document.ToneNeutral:       "Use a neutral tone, ensuring clear and balanced information without emotional bias or excessive detail.",
	document.ToneCasual:        "Provide a conversational and approachable tone, using simple language while ensuring clarity.",
	document.ToneProfessional:  "Emphasize clear, concise, and structured language with a focus on professionalism and detailed insights.",
	document.ToneFriendly:      "Adopt a warm, approachable tone that engages readers with simplicity and empathy.",
	document.ToneInspirational: "Use motivating language to evoke enthusiasm and confidence in the reader.",
	document.ToneSerious:       "Maintain a straightforward, serious tone, conveying critical information with emphasis on logic and results.",
}

// ToneStyle returns the style guidance sentence for a tone, falling back
// to the neutral style for unknown tones.
func ToneStyle(tone string) string {
	if style, ok := toneStyles[document.Normalize(tone)]; ok {
		return style
	}
	return toneStyles[document.ToneNeutral]
}

// Compose substitutes the query, language, and tone placeholders into a
// template body and returns the final instruction text.
//
// Substitution is a single pass over the body: values are inserted as
// opaque text and are never re-scanned, so a query that itself contains
// placeholder syntax stays literal in the output. Tone is case-normalized
// before substitution.
func Compose(body, query, language, tone string) (document.ComposedPrompt, error) {
	query = strings.TrimSpace(query)
	language = strings.TrimSpace(language)
	tone = document.Normalize(tone)
	if query == "" {
		return "", &TemplateError{Reason: "query must not be blank"}
	}
	if language == "" {
		return "", &TemplateError{Reason: "language must not be blank"}
	}
	if tone == "" {
		return "", &TemplateError{Reason: "tone must not be blank"}
	}

	values := map[string]string{
		"query":    query,
		"language": language,
		"tone":     tone,
	}

	// Guard against registry edits: the contract requires all three
	// placeholders in every body, so a missing one is a corrupt template,
	// not a cell to drop silently.
	for _, name := range []string{"query", "language", "tone"} {
		if !strings.Contains(body, "{"+name+"}") {
			return "", &TemplateError{Reason: fmt.Sprintf("body is missing placeholder {%s}", name)}
		}
	}

	substituted := placeholderPattern.ReplaceAllStringFunc(body, func(m string) string {
		name := m[1 : len(m)-1]
		if v, ok := values[name]; ok {
			return v
		}
		return m
	})

	var sb strings.Builder
	sb.WriteString(ToneStyle(tone))
	sb.WriteString("\n\n")
	sb.WriteString(strings.TrimSpace(substituted))
	return document.ComposedPrompt(sb.String()), nil
}
