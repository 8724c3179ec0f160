package rename

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Paintersrp/marknote/internal/handler"
	"github.com/Paintersrp/marknote/internal/state"
)

func setup(t *testing.T, names ...string) *state.State {
	t.Helper()
	vault := t.TempDir()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(vault, name), []byte(name), 0o644))
	}
	return &state.State{Handler: handler.NewFileHandler(vault), Vault: vault}
}

func execute(s *state.State, args ...string) (string, error) {
	cmd := NewCmdRename(s)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SilenceUsage = true
	cmd.SetArgs(append([]string{}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestRenameKeepsExtension(t *testing.T) {
	s := setup(t, "ideas.md")

	out, err := execute(s, "ideas.md", "brainstorm")
	require.NoError(t, err)
	assert.Equal(t, "Renamed ideas.md to brainstorm.md\n", out)
	assert.FileExists(t, filepath.Join(s.Vault, "brainstorm.md"))
}

func TestRenameRefusesClash(t *testing.T) {
	s := setup(t, "a.md", "b.md")

	_, err := execute(s, "a.md", "b")
	assert.ErrorIs(t, err, handler.ErrExists)
}

func TestRenameRejectsSeparators(t *testing.T) {
	s := setup(t, "a.md")

	_, err := execute(s, "a.md", "sub/b")
	assert.ErrorIs(t, err, handler.ErrInvalidName)
}
