package pipeline

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/cyberbull/startupdocs/internal/document"
	"github.com/cyberbull/startupdocs/internal/history"
	"github.com/cyberbull/startupdocs/internal/session"
	"github.com/cyberbull/startupdocs/internal/template"
)

// countingAdapter records every invocation so tests can assert call counts
// and inspect the exact inputs the model received.
type countingAdapter struct {
	mu       sync.Mutex
	calls    int
	contexts []string
	prompts  []string

	response string
	err      error
}

func (a *countingAdapter) Name() string { return "counting" }

func (a *countingAdapter) Invoke(_ context.Context, contextText, prompt string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.calls++
	a.contexts = append(a.contexts, contextText)
	a.prompts = append(a.prompts, prompt)
	if a.err != nil {
		return "", a.err
	}
	return a.response, nil
}

func newTestPipeline(t *testing.T, adapter *countingAdapter) (*Pipeline, *session.Manager) {
	t.Helper()
	reg, err := template.LoadRegistry()
	if err != nil {
		t.Fatalf("load registry: %v", err)
	}
	mgr := session.NewManager(func(string) (history.Store, error) {
		return history.NewMemory(), nil
	}, 0, nil)
	return New(reg, adapter, 0, nil), mgr
}

func newTestSession(t *testing.T, mgr *session.Manager, id string) *session.Session {
	t.Helper()
	s, err := mgr.GetOrCreate(id)
	if err != nil {
		t.Fatalf("get or create session: %v", err)
	}
	return s
}

func businessPlanValues() map[string]string {
	return map[string]string{
		"business_name":  "Acme Inc",
		"startup_domain": "IT",
		"revenue_model":  "Subscriptions",
		"cost_structure": "Cloud hosting and salaries",
		"funding_needed": "500000",
		"target_market":  "Small businesses",
		"competitors":    "BigCo",
		"market_trends":  "Growing demand for automation",
	}
}

func historyLen(t *testing.T, s *session.Session) int {
	t.Helper()
	n, err := s.History().Len()
	if err != nil {
		t.Fatalf("history len: %v", err)
	}
	return n
}

func TestGenerateValidationFailureSkipsModel(t *testing.T) {
	adapter := &countingAdapter{response: "should never be seen"}
	p, mgr := newTestPipeline(t, adapter)
	sess := newTestSession(t, mgr, "s1")

	values := businessPlanValues()
	values["competitors"] = "   "
	delete(values, "target_market")

	doc, fail := p.Generate(context.Background(), document.PromptRequest{
		Query:        "Business Plan",
		DocumentType: "business_plan",
		Language:     "English",
		Tone:         "formal",
	}, values, sess)

	if doc != nil {
		t.Fatalf("expected no document, got %+v", doc)
	}
	if fail == nil || fail.Kind != ValidationError {
		t.Fatalf("expected validation failure, got %+v", fail)
	}
	want := []string{"target_market", "competitors"}
	if len(fail.Missing) != len(want) {
		t.Fatalf("Missing = %v, want %v", fail.Missing, want)
	}
	for i := range want {
		if fail.Missing[i] != want[i] {
			t.Fatalf("Missing = %v, want %v", fail.Missing, want)
		}
	}
	if adapter.calls != 0 {
		t.Fatalf("model was invoked %d times on validation failure", adapter.calls)
	}
	if n := historyLen(t, sess); n != 0 {
		t.Fatalf("history grew to %d on validation failure", n)
	}
}

func TestGenerateSuccessRecordsDocument(t *testing.T) {
	adapter := &countingAdapter{response: "Sample Plan Text"}
	p, mgr := newTestPipeline(t, adapter)
	sess := newTestSession(t, mgr, "s1")

	doc, fail := p.Generate(context.Background(), document.PromptRequest{
		Query:        "Business Plan",
		DocumentType: "Business_Plan",
		Language:     "English",
		Tone:         "formal",
	}, businessPlanValues(), sess)

	if fail != nil {
		t.Fatalf("unexpected failure: %+v", fail)
	}
	if doc.DocumentType != "business_plan" {
		t.Fatalf("DocumentType = %q, want business_plan", doc.DocumentType)
	}
	if doc.Content != "Sample Plan Text" {
		t.Fatalf("Content = %q", doc.Content)
	}
	if doc.CreatedAt.IsZero() {
		t.Fatalf("CreatedAt not set")
	}
	if adapter.calls != 1 {
		t.Fatalf("model invoked %d times, want exactly 1", adapter.calls)
	}

	docs, err := sess.History().List()
	if err != nil {
		t.Fatalf("history list: %v", err)
	}
	if len(docs) != 1 || docs[0].Content != "Sample Plan Text" || docs[0].DocumentType != "business_plan" {
		t.Fatalf("unexpected history: %+v", docs)
	}
}

func TestGenerateModelErrorLeavesHistoryUntouched(t *testing.T) {
	adapter := &countingAdapter{err: errors.New("upstream unavailable")}
	p, mgr := newTestPipeline(t, adapter)
	sess := newTestSession(t, mgr, "s1")

	doc, fail := p.Generate(context.Background(), document.PromptRequest{
		Query:        "Business Plan",
		DocumentType: "business_plan",
		Language:     "English",
		Tone:         "formal",
	}, businessPlanValues(), sess)

	if doc != nil || fail == nil || fail.Kind != ModelError {
		t.Fatalf("expected model failure, got doc=%+v fail=%+v", doc, fail)
	}
	if adapter.calls != 1 {
		t.Fatalf("model invoked %d times, want 1 (no retry)", adapter.calls)
	}
	if n := historyLen(t, sess); n != 0 {
		t.Fatalf("history grew to %d on model failure", n)
	}
}

func TestGenerateEmptyResultIsModelError(t *testing.T) {
	adapter := &countingAdapter{response: "   \n  "}
	p, mgr := newTestPipeline(t, adapter)
	sess := newTestSession(t, mgr, "s1")

	doc, fail := p.Generate(context.Background(), document.PromptRequest{
		Query:        "Business Plan",
		DocumentType: "business_plan",
		Language:     "English",
		Tone:         "formal",
	}, businessPlanValues(), sess)

	if doc != nil || fail == nil || fail.Kind != ModelError {
		t.Fatalf("expected model failure on blank output, got doc=%+v fail=%+v", doc, fail)
	}
	if n := historyLen(t, sess); n != 0 {
		t.Fatalf("history grew to %d on blank output", n)
	}
}

func TestGenerateBlankLanguageIsTemplateError(t *testing.T) {
	adapter := &countingAdapter{response: "irrelevant"}
	p, mgr := newTestPipeline(t, adapter)
	sess := newTestSession(t, mgr, "s1")

	doc, fail := p.Generate(context.Background(), document.PromptRequest{
		Query:        "Business Plan",
		DocumentType: "business_plan",
		Language:     "   ",
		Tone:         "formal",
	}, businessPlanValues(), sess)

	if doc != nil || fail == nil || fail.Kind != TemplateError {
		t.Fatalf("expected template failure, got doc=%+v fail=%+v", doc, fail)
	}
	if adapter.calls != 0 {
		t.Fatalf("model invoked %d times before composition succeeded", adapter.calls)
	}
	if !IsTemplateError(fail) {
		t.Fatalf("IsTemplateError should see through the failure wrapper")
	}
}

func TestGeneratePitchDeckCasual(t *testing.T) {
	adapter := &countingAdapter{response: "## Pitch Deck\n\nSlides."}
	p, mgr := newTestPipeline(t, adapter)
	sess := newTestSession(t, mgr, "s1")

	values := map[string]string{
		"business_name":      "Acme Inc",
		"startup_domain":     "IT",
		"business_idea":      "Automated spreadsheets",
		"team_vision":        "Boring software, delighted users",
		"market_opportunity": "Every office runs on spreadsheets",
	}

	doc, fail := p.Generate(context.Background(), document.PromptRequest{
		Query:        "Pitch Deck",
		DocumentType: "pitch_deck",
		Language:     "English",
		Tone:         "Casual",
	}, values, sess)

	if fail != nil {
		t.Fatalf("unexpected failure: %+v", fail)
	}
	if doc.DocumentType != "pitch_deck" {
		t.Fatalf("DocumentType = %q", doc.DocumentType)
	}

	prompt := adapter.prompts[0]
	for _, want := range []string{"pitch deck", "Tone: casual", "Query: Pitch Deck", "Language: English"} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
	if strings.Contains(prompt, "{tone}") || strings.Contains(prompt, "{query}") || strings.Contains(prompt, "{language}") {
		t.Fatalf("prompt contains unexpanded placeholders:\n%s", prompt)
	}

	contextText := adapter.contexts[0]
	for _, want := range []string{
		"Business Name: Acme Inc",
		"Startup Domain: IT",
		"Business Idea: Automated spreadsheets",
	} {
		if !strings.Contains(contextText, want) {
			t.Fatalf("context missing %q:\n%s", want, contextText)
		}
	}
}

func TestGenerateSessionsAreIsolated(t *testing.T) {
	adapter := &countingAdapter{response: "doc body"}
	p, mgr := newTestPipeline(t, adapter)
	alpha := newTestSession(t, mgr, "alpha")
	beta := newTestSession(t, mgr, "beta")

	req := document.PromptRequest{
		Query:        "Business Plan",
		DocumentType: "business_plan",
		Language:     "English",
		Tone:         "formal",
	}

	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, fail := p.Generate(context.Background(), req, businessPlanValues(), alpha); fail != nil {
				t.Errorf("alpha generate: %+v", fail)
			}
		}()
	}
	wg.Wait()

	if _, fail := p.Generate(context.Background(), req, businessPlanValues(), beta); fail != nil {
		t.Fatalf("beta generate: %+v", fail)
	}

	if n := historyLen(t, alpha); n != 3 {
		t.Fatalf("alpha history = %d, want 3", n)
	}
	if n := historyLen(t, beta); n != 1 {
		t.Fatalf("beta history = %d, want 1", n)
	}
}

func TestGenerateUnknownTypeFallsBackToBusinessPlan(t *testing.T) {
	adapter := &countingAdapter{response: "fallback body"}
	p, mgr := newTestPipeline(t, adapter)
	sess := newTestSession(t, mgr, "s1")

	// Unknown types carry no field requirements; the registry degrades the
	// lookup to the business plan template.
	doc, fail := p.Generate(context.Background(), document.PromptRequest{
		Query:        "Quarterly Horoscope",
		DocumentType: "quarterly_horoscope",
		Language:     "English",
		Tone:         "formal",
	}, map[string]string{"sign": "Taurus"}, sess)

	if fail != nil {
		t.Fatalf("unexpected failure: %+v", fail)
	}
	if doc.DocumentType != "quarterly_horoscope" {
		t.Fatalf("DocumentType = %q, want the requested type preserved", doc.DocumentType)
	}
	if !strings.Contains(adapter.prompts[0], "business plan") {
		t.Fatalf("prompt did not fall back to the business plan template:\n%s", adapter.prompts[0])
	}
	if !strings.Contains(adapter.contexts[0], "Sign: Taurus") {
		t.Fatalf("context missing ad-hoc field:\n%s", adapter.contexts[0])
	}
}
