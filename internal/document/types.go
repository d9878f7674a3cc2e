package document

import (
	"strings"
	"time"
)

// Document type tags. These are the canonical lower-case keys used by the
// template registry and the field schemas.
const (
	TypeBusinessPlan           = "business_plan"
	TypeFundingProposal        = "funding_proposal"
	TypePitchDeck              = "pitch_deck"
	TypeInvestorMaterials      = "investor_materials"
	TypeTechnicalDocumentation = "technical_documentation"
	TypeProjectProposal        = "project_proposal"
	TypeInvestmentMemorandum   = "investment_memorandum"
	TypeShareholderUpdate      = "shareholder_update"
)

// typeOrder is the canonical listing order, matching the selection order
// presented to users.
var typeOrder = []string{
	TypeBusinessPlan,
	TypeFundingProposal,
	TypePitchDeck,
	TypeInvestorMaterials,
	TypeTechnicalDocumentation,
	TypeProjectProposal,
	TypeInvestmentMemorandum,
	TypeShareholderUpdate,
}

// typeLabels maps tags to human-readable display labels.
var typeLabels = map[string]string{
	TypeBusinessPlan:           "Business Plan",
	TypeFundingProposal:        "Funding Proposal",
	TypePitchDeck:              "Pitch Deck",
	TypeInvestorMaterials:      "Investor Materials",
	TypeTechnicalDocumentation: "Technical Documentation",
	TypeProjectProposal:        "Project Proposal",
	TypeInvestmentMemorandum:   "Investment Memorandum",
	TypeShareholderUpdate:      "Shareholder Update",
}

// Tone tags.
const (
	ToneFormal        = "formal"
	ToneNeutral       = "neutral"
	ToneCasual        = "casual"
	ToneProfessional  = "professional"
	ToneFriendly      = "friendly"
	ToneInspirational = "inspirational"
	ToneSerious       = "serious"
)

var toneOrder = []string{
	ToneFormal,
	ToneNeutral,
	ToneCasual,
	ToneProfessional,
	ToneFriendly,
	ToneInspirational,
	ToneSerious,
}

// Normalize lower-cases and trims a user-supplied tag. Registry keys are
// canonical lower-case, so all lookups go through this first.
func Normalize(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

// ParseDocumentType normalizes a tag and reports whether it names a known
// document type. An unknown tag is still returned normalized so callers can
// choose to degrade instead of reject.
func ParseDocumentType(tag string) (string, bool) {
	t := Normalize(tag)
	_, ok := typeLabels[t]
	return t, ok
}

// ParseTone normalizes a tag and reports whether it names a known tone.
func ParseTone(tag string) (string, bool) {
	t := Normalize(tag)
	for _, known := range toneOrder {
		if t == known {
			return t, true
		}
	}
	return t, false
}

// Types returns the document type tags in canonical order.
func Types() []string {
	out := make([]string, len(typeOrder))
	copy(out, typeOrder)
	return out
}

// Tones returns the tone tags in canonical order.
func Tones() []string {
	out := make([]string, len(toneOrder))
	copy(out, toneOrder)
	return out
}

// Label returns the display label for a document type tag, or the tag
// itself when unknown.
func Label(docType string) string {
	if label, ok := typeLabels[Normalize(docType)]; ok {
		return label
	}
	return docType
}

// PromptRequest carries the inputs for one generation call. Constructed per
// invocation, never persisted.
type PromptRequest struct {
	Query        string `json:"query"`
	DocumentType string `json:"document_type"`
	Language     string `json:"language"`
	Tone         string `json:"tone"`
}

// ComposedPrompt is the fully substituted instruction text handed to the
// model adapter. Not mutated after creation.
type ComposedPrompt string

func (p ComposedPrompt) String() string { return string(p) }

// GeneratedDocument is one completed generation. Records accumulate in a
// session's history in insertion order and are never mutated in place.
type GeneratedDocument struct {
	DocumentType string    `json:"document_type"`
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"created_at"`
}
