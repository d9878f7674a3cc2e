package template

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cyberbull/startupdocs/internal/document"
)

func mustRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := LoadRegistry()
	if err != nil {
		t.Fatalf("LoadRegistry failed: %v", err)
	}
	return r
}

func TestLookupPopulatedCell(t *testing.T) {
	r := mustRegistry(t)
	body := r.Lookup(document.TypePitchDeck, document.ToneNeutral)
	if !strings.Contains(body, "pitch deck") {
		t.Fatalf("pitch_deck template missing framing language:\n%s", body)
	}
	for _, ph := range []string{"{tone}", "{query}", "{language}"} {
		if !strings.Contains(body, ph) {
			t.Fatalf("template missing placeholder %s", ph)
		}
	}
}

func TestLookupToneFallsBackToNeutral(t *testing.T) {
	r := mustRegistry(t)
	for _, docType := range document.Types() {
		for _, tone := range document.Tones() {
			if r.Has(docType, tone) {
				continue
			}
			got := r.Lookup(docType, tone)
			want := r.Lookup(docType, document.ToneNeutral)
			if got != want {
				t.Fatalf("lookup(%s, %s) did not degrade to neutral", docType, tone)
			}
		}
	}
}

func TestLookupUnknownTypeFallsBackToBusinessPlan(t *testing.T) {
	r := mustRegistry(t)
	for _, tone := range document.Tones() {
		got := r.Lookup("quarterly_horoscope", tone)
		want := r.Lookup(document.TypeBusinessPlan, tone)
		if got != want {
			t.Fatalf("unknown type lookup with tone %s did not degrade to business_plan", tone)
		}
	}
}

func TestLookupNormalizesInput(t *testing.T) {
	r := mustRegistry(t)
	if r.Lookup(" Business_Plan ", "FORMAL") != r.Lookup(document.TypeBusinessPlan, document.ToneFormal) {
		t.Fatalf("lookup is not case-normalizing its inputs")
	}
}

func TestLoadRegistryFileOverridesCell(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "templates.yaml")
	override := `templates:
  - document_type: pitch_deck
    tone: serious
    body: |-
      Assemble a no-nonsense pitch deck.

      Tone: {tone}
      Query: {query}
      Language: {language}
`
	if err := os.WriteFile(path, []byte(override), 0644); err != nil {
		t.Fatalf("write override: %v", err)
	}

	r, err := LoadRegistryFile(path)
	if err != nil {
		t.Fatalf("LoadRegistryFile failed: %v", err)
	}
	if !r.Has(document.TypePitchDeck, document.ToneSerious) {
		t.Fatalf("override cell was not registered")
	}
	if !strings.Contains(r.Lookup(document.TypePitchDeck, document.ToneSerious), "no-nonsense") {
		t.Fatalf("override body not used")
	}
	// Built-in cells survive the merge.
	if !strings.Contains(r.Lookup(document.TypeBusinessPlan, document.ToneNeutral), "business plan") {
		t.Fatalf("builtin cell lost after override merge")
	}
}

func TestLoadRejectsMissingPlaceholder(t *testing.T) {
	r := mustRegistry(t)
	err := r.merge([]byte(`templates:
  - document_type: pitch_deck
    tone: casual
    body: "No placeholders here at all"
`))
	if err == nil {
		t.Fatalf("expected merge to reject body without placeholders")
	}
	if !strings.Contains(err.Error(), "missing placeholder") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadRejectsUndeclaredPlaceholder(t *testing.T) {
	r := mustRegistry(t)
	err := r.merge([]byte(`templates:
  - document_type: pitch_deck
    tone: casual
    body: "Tone: {tone} Query: {query} Language: {language} Extra: {surprise}"
`))
	if err == nil {
		t.Fatalf("expected merge to reject undeclared placeholder")
	}
	if !strings.Contains(err.Error(), "undeclared placeholder") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDocumentTypesCanonicalOrder(t *testing.T) {
	r := mustRegistry(t)
	got := r.DocumentTypes()
	want := document.Types()
	if len(got) != len(want) {
		t.Fatalf("expected %d types, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("type order mismatch at %d: got %s want %s", i, got[i], want[i])
		}
	}
}

func TestDocumentTypesExtraTypesSorted(t *testing.T) {
	r := mustRegistry(t)
	body := "Tone: {tone} Query: {query} Language: {language}"
	err := r.merge([]byte(`templates:
  - document_type: zoning_application
    tone: neutral
    body: "` + body + `"
  - document_type: audit_report
    tone: neutral
    body: "` + body + `"
  - document_type: market_survey
    tone: neutral
    body: "` + body + `"
`))
	if err != nil {
		t.Fatalf("merge extras: %v", err)
	}

	got := r.DocumentTypes()
	canonical := document.Types()
	extras := got[len(canonical):]
	want := []string{"audit_report", "market_survey", "zoning_application"}
	if len(extras) != len(want) {
		t.Fatalf("extras = %v, want %v", extras, want)
	}
	for i := range want {
		if extras[i] != want[i] {
			t.Fatalf("extras = %v, want sorted %v", extras, want)
		}
	}
}
