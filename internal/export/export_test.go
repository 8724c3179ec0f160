package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderHTMLTaskListsAndTables(t *testing.T) {
	src := []byte("# Plan\n\n- [x] done\n- [ ] open\n\n| a | b |\n|---|---|\n| 1 | 2 |\n")

	out, err := RenderHTML(src)
	require.NoError(t, err)

	for _, want := range []string{
		`<h1 id="plan">Plan</h1>`,
		`<input checked="" disabled="" type="checkbox"`,
		`<input disabled="" type="checkbox"`,
		"<table>",
	} {
		assert.Contains(t, out, want)
	}
}

func TestRenderHTMLExternalLinksOpenInNewTab(t *testing.T) {
	out, err := RenderHTML([]byte("[site](https://example.com) and [local](other.md)\n"))
	require.NoError(t, err)

	assert.Contains(t, out, `<a href="https://example.com" target="_blank" rel="noopener noreferrer">site</a>`)
	assert.Contains(t, out, `<a href="other.md">local</a>`, "expected local link untouched")
}

func TestRenderHTMLDropsFrontMatter(t *testing.T) {
	out, err := RenderHTML([]byte("---\ntitle: Hidden\n---\nbody text\n"))
	require.NoError(t, err)
	assert.NotContains(t, out, "Hidden")
	assert.Contains(t, out, "<p>body text</p>")
}

func TestTitle(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{src: "---\ntitle: From Header\n---\n# Heading\n", want: "From Header"},
		{src: "intro\n\n# Heading\n", want: "Heading"},
		{src: "## Only second level\n", want: "fallback"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, Title([]byte(tc.src), "fallback"), "Title(%q)", tc.src)
	}
}

func TestWriteHTML(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	path, err := WriteHTML([]byte("# Notes\n\nhello\n"), dir, "notes.md", Options{Dark: true})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "notes.html"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	page := string(data)
	assert.Contains(t, page, "<title>Notes</title>", "expected title from heading")
	assert.Contains(t, page, "#0d1117", "expected dark styles")
	assert.Contains(t, page, "<p>hello</p>")

	_, err = WriteHTML([]byte("x"), dir, "  ", Options{})
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestPageEscapesTitle(t *testing.T) {
	page, err := Page([]byte("text"), Options{Title: "<script>"})
	require.NoError(t, err)
	assert.NotContains(t, page, "<title><script></title>", "expected title to be escaped")
}

func TestRenderTerminalAscii(t *testing.T) {
	out, err := RenderTerminal([]byte("# Heading\n\n- [ ] task\n"), TerminalOptions{
		Style:   "ascii",
		Width:   60,
		Profile: termenv.Ascii,
	})
	require.NoError(t, err)
	assert.Contains(t, out, "Heading")
	assert.Contains(t, out, "task")
}
