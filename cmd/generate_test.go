package cmd

import "testing"

func TestParseFieldsFileStringifiesScalars(t *testing.T) {
	data := []byte(`
business_name: Acme Inc
capital_needed: 1000
runway_months: 18.5
bootstrapped: true
notes:
`)
	values, err := parseFieldsFile(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	for key, want := range map[string]string{
		"business_name":  "Acme Inc",
		"capital_needed": "1000",
		"runway_months":  "18.5",
		"bootstrapped":   "true",
		"notes":          "",
	} {
		if got := values[key]; got != want {
			t.Fatalf("values[%q] = %q, want %q", key, got, want)
		}
	}
}

func TestParseFieldsFileRejectsNonMap(t *testing.T) {
	if _, err := parseFieldsFile([]byte("- just\n- a list\n")); err == nil {
		t.Fatalf("expected error for non-map input")
	}
}
