package template

import (
	"fmt"
	"os"
	"regexp"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/cyberbull/startupdocs/internal/document"
)

// Placeholders every template body must carry, and the only ones allowed.
var requiredPlaceholders = []string{"tone", "query", "language"}

var placeholderPattern = regexp.MustCompile(`\{([a-z_]+)\}`)

// Registry holds the canonical (document type, tone) -> body mapping. It is
// populated once at startup and read-only afterwards, so it is safe to
// share across concurrent requests without locking.
type Registry struct {
	byType map[string]map[string]string
}

type templateEntry struct {
	DocumentType string `yaml:"document_type"`
	Tone         string `yaml:"tone"`
	Body         string `yaml:"body"`
}

type templatesFile struct {
	Templates []templateEntry `yaml:"templates"`
}

// LoadRegistry builds a registry from the built-in template table.
func LoadRegistry() (*Registry, error) {
	r := &Registry{byType: make(map[string]map[string]string)}
	if err := r.merge([]byte(builtinTemplatesYAML)); err != nil {
		return nil, fmt.Errorf("builtin templates: %w", err)
	}
	return r, nil
}

// LoadRegistryFile builds a registry from the built-in table and then
// applies entries from an override file on top of it. Override cells
// replace built-in cells with the same (document type, tone) address.
func LoadRegistryFile(path string) (*Registry, error) {
	r, err := LoadRegistry()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read templates file: %w", err)
	}
	if err := r.merge(data); err != nil {
		return nil, fmt.Errorf("templates file %s: %w", path, err)
	}
	return r, nil
}

func (r *Registry) merge(data []byte) error {
	var tf templatesFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}
	for _, e := range tf.Templates {
		docType := document.Normalize(e.DocumentType)
		tone := document.Normalize(e.Tone)
		if docType == "" || tone == "" {
			return fmt.Errorf("template entry missing document_type or tone")
		}
		if err := validateBody(docType, tone, e.Body); err != nil {
			return err
		}
		set, ok := r.byType[docType]
		if !ok {
			set = make(map[string]string)
			r.byType[docType] = set
		}
		set[tone] = e.Body
	}
	// Every populated document type needs a neutral variant; it is the
	// landing point for every unpopulated tone cell.
	for docType, set := range r.byType {
		if _, ok := set[document.ToneNeutral]; !ok {
			return fmt.Errorf("document type %s has no neutral template", docType)
		}
	}
	if _, ok := r.byType[document.TypeBusinessPlan]; !ok {
		return fmt.Errorf("registry has no %s templates", document.TypeBusinessPlan)
	}
	return nil
}

// validateBody checks that a body references exactly the declared
// placeholder set. Substitution later fails loudly on anything this check
// missed, but catching corrupt entries at load keeps registry edits from
// shipping silently broken templates.
func validateBody(docType, tone, body string) error {
	seen := make(map[string]bool)
	for _, m := range placeholderPattern.FindAllStringSubmatch(body, -1) {
		seen[m[1]] = true
	}
	for _, name := range requiredPlaceholders {
		if !seen[name] {
			return fmt.Errorf("template %s/%s is missing placeholder {%s}", docType, tone, name)
		}
		delete(seen, name)
	}
	for name := range seen {
		return fmt.Errorf("template %s/%s references undeclared placeholder {%s}", docType, tone, name)
	}
	return nil
}

// Lookup resolves a template body and never fails: a tone with no cell for
// the document type falls back to that type's neutral variant, and an
// unknown document type falls back to the business_plan entry. This
// two-level degradation is the system's sole error-masking mechanism and
// is relied on by callers; do not tighten it here.
func (r *Registry) Lookup(docType, tone string) string {
	dt := document.Normalize(docType)
	set, ok := r.byType[dt]
	if !ok {
		set = r.byType[document.TypeBusinessPlan]
	}
	if body, ok := set[document.Normalize(tone)]; ok {
		return body
	}
	return set[document.ToneNeutral]
}

// Has reports whether an exact (document type, tone) cell is populated.
func (r *Registry) Has(docType, tone string) bool {
	set, ok := r.byType[document.Normalize(docType)]
	if !ok {
		return false
	}
	_, ok = set[document.Normalize(tone)]
	return ok
}

// DocumentTypes returns the populated document type tags in canonical
// order, followed by any extra types an override file introduced, sorted
// by tag so the listing is stable across runs.
func (r *Registry) DocumentTypes() []string {
	var out []string
	for _, t := range document.Types() {
		if _, ok := r.byType[t]; ok {
			out = append(out, t)
		}
	}
	var extra []string
	for t := range r.byType {
		if _, known := document.ParseDocumentType(t); !known {
			extra = append(extra, t)
		}
	}
	sort.Strings(extra)
	return append(out, extra...)
}
