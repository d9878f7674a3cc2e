package schema

import (
	"sort"
	"strings"
)

// BuildContext flattens structured field values into the context narrative
// handed to the model: one "Label: value" line per field, in field
// declaration order. Labels are derived by title-casing the field key.
// The narrative is opaque to the rest of the system; nothing parses it.
//
// For unknown document types the values are emitted in sorted key order so
// the narrative stays deterministic.
func BuildContext(docType string, values map[string]string) string {
	flat := Flatten(FieldsFor(docType))

	var lines []string
	if len(flat) == 0 {
		keys := make([]string, 0, len(values))
		for k := range values {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			lines = append(lines, titleCaseKey(k)+": "+values[k])
		}
		return strings.Join(lines, "\n")
	}

	for _, f := range flat {
		v, ok := values[f.Key]
		if !ok {
			continue
		}
		lines = append(lines, titleCaseKey(f.Key)+": "+v)
	}
	return strings.Join(lines, "\n")
}

// titleCaseKey turns "business_name" into "Business Name".
func titleCaseKey(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
