package export

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/cyberbull/startupdocs/internal/document"
)

// DataURI encodes document content as a base64 text data URI suitable for
// a download link.
func DataURI(content string) string {
	return "data:file/txt;base64," + base64.StdEncoding.EncodeToString([]byte(content))
}

// DownloadLink renders an HTML anchor that downloads the content under the
// given filename.
func DownloadLink(content, filename string) string {
	return fmt.Sprintf(`<a href="%s" download="%s">Download Document</a>`, DataURI(content), filename)
}

// FileName shapes a download filename for the nth document of a type,
// e.g. "Pitch_Deck_Document_2.txt".
func FileName(docType string, n int) string {
	label := strings.ReplaceAll(document.Label(docType), " ", "_")
	if n <= 0 {
		return label + ".txt"
	}
	return fmt.Sprintf("%s_Document_%d.txt", label, n)
}

// RenderHTML converts the model's lightweight markup to HTML for preview.
func RenderHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return buf.String(), nil
}
