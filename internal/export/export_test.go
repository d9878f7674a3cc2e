package export

import (
	"encoding/base64"
	"strings"
	"testing"
)

func TestDataURIRoundTrip(t *testing.T) {
	content := "# Business Plan\n\nSection one."
	uri := DataURI(content)

	const prefix = "data:file/txt;base64,"
	if !strings.HasPrefix(uri, prefix) {
		t.Fatalf("unexpected prefix: %q", uri)
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, prefix))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(decoded) != content {
		t.Fatalf("round trip mismatch: %q", decoded)
	}
}

func TestDownloadLink(t *testing.T) {
	link := DownloadLink("body", "Pitch_Deck_Document_1.txt")
	if !strings.Contains(link, `download="Pitch_Deck_Document_1.txt"`) {
		t.Fatalf("missing download attribute: %q", link)
	}
	if !strings.Contains(link, "Download Document") {
		t.Fatalf("missing link text: %q", link)
	}
	if !strings.Contains(link, DataURI("body")) {
		t.Fatalf("href does not carry the data uri: %q", link)
	}
}

func TestFileName(t *testing.T) {
	for _, tc := range []struct {
		docType string
		n       int
		want    string
	}{
		{"pitch_deck", 2, "Pitch_Deck_Document_2.txt"},
		{"business_plan", 1, "Business_Plan_Document_1.txt"},
		{"pitch_deck", 0, "Pitch_Deck.txt"},
	} {
		if got := FileName(tc.docType, tc.n); got != tc.want {
			t.Fatalf("FileName(%q, %d) = %q, want %q", tc.docType, tc.n, got, tc.want)
		}
	}
}

func TestRenderHTML(t *testing.T) {
	html, err := RenderHTML("# Title\n\nSome **bold** text.")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(html, "<h1>Title</h1>") {
		t.Fatalf("heading not rendered: %q", html)
	}
	if !strings.Contains(html, "<strong>bold</strong>") {
		t.Fatalf("emphasis not rendered: %q", html)
	}
}
