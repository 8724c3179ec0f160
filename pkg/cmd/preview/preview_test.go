package preview

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Paintersrp/marknote/internal/config"
	"github.com/Paintersrp/marknote/internal/handler"
	"github.com/Paintersrp/marknote/internal/state"
)

func TestPreviewRendersNote(t *testing.T) {
	vault := t.TempDir()
	content := "---\ntitle: Hidden\n---\n# Heading\n\nSome *text*."
	require.NoError(t, os.WriteFile(filepath.Join(vault, "note.md"), []byte(content), 0o644))
	s := &state.State{
		Workspace: config.NewWorkspace(vault),
		Handler:   handler.NewFileHandler(vault),
	}

	cmd := NewCmdPreview(s)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SilenceUsage = true
	cmd.SetArgs([]string{"note", "--style", "ascii", "--width", "40"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Heading")
	assert.Contains(t, out.String(), "text")
	assert.NotContains(t, out.String(), "title: Hidden", "expected front matter to be stripped")
}

func TestPreviewRejectsUnknownStyle(t *testing.T) {
	vault := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(vault, "note.md"), []byte("x"), 0o644))
	s := &state.State{Handler: handler.NewFileHandler(vault)}

	cmd := NewCmdPreview(s)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SilenceUsage = true
	cmd.SetArgs([]string{"note", "--style", "neon"})
	assert.Error(t, cmd.Execute(), "expected an error for an unknown style")
}

func TestOutputWidth(t *testing.T) {
	assert.Equal(t, 55, outputWidth(55, false))
	assert.Equal(t, fallbackWidth, outputWidth(0, false))
}
