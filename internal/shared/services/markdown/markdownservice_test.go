package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTMLSanitized_RendersBasicMarkdown(t *testing.T) {
	svc := NewService()

	out, err := svc.ToHTMLSanitized("# Heading\n\nSome **bold** text.")

	require.NoError(t, err)
	assert.Contains(t, out, "<h1")
	assert.Contains(t, out, "<strong>bold</strong>")
}

func TestToHTMLSanitized_StripsScriptTags(t *testing.T) {
	svc := NewService()

	out, err := svc.ToHTMLSanitized("hello <script>alert('x')</script> world")

	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
	assert.NotContains(t, out, "alert")
	assert.Contains(t, out, "hello")
}

func TestToHTMLSanitized_GFMTable(t *testing.T) {
	svc := NewService()

	out, err := svc.ToHTMLSanitized("| a | b |\n|---|---|\n| 1 | 2 |")

	require.NoError(t, err)
	assert.Contains(t, out, "<table>")
}

func TestSanitize_RemovesEventHandlers(t *testing.T) {
	svc := NewService()

	out := svc.Sanitize(`<a href="https://example.com" onclick="steal()">link</a>`)

	assert.NotContains(t, out, "onclick")
	assert.Contains(t, out, "link")
}
