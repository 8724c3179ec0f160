package trash

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Paintersrp/marknote/internal/handler"
	"github.com/Paintersrp/marknote/internal/state"
)

func newState(t *testing.T) *state.State {
	t.Helper()
	vault := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(vault, "old.md"), []byte("old"), 0o644))
	return &state.State{Handler: handler.NewFileHandler(vault), Vault: vault}
}

func stubConfirm(t *testing.T, answer bool) *[]string {
	t.Helper()
	var prompts []string
	original := confirm
	confirm = func(prompt string) (bool, error) {
		prompts = append(prompts, prompt)
		return answer, nil
	}
	t.Cleanup(func() { confirm = original })
	return &prompts
}

func TestTrashCommandRequiresArgument(t *testing.T) {
	s := &state.State{}
	cmd := NewCmdTrash(s)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SilenceUsage = true

	cmd.SetArgs([]string{})
	assert.Error(t, cmd.Execute(), "expected an error when no path argument is provided")
}

func TestTrashWithYesSkipsPrompt(t *testing.T) {
	s := newState(t)
	prompts := stubConfirm(t, false)

	cmd := NewCmdTrash(s)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"old.md", "--yes"})
	require.NoError(t, cmd.Execute())

	assert.Empty(t, *prompts)
	assert.FileExists(t, filepath.Join(s.Vault, "trash", "old.md"))
	assert.Contains(t, out.String(), "Moved old.md to trash/old.md")
}

func TestTrashDeclinedLeavesNote(t *testing.T) {
	s := newState(t)
	prompts := stubConfirm(t, false)

	cmd := NewCmdTrash(s)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"old.md"})
	require.NoError(t, cmd.Execute())

	require.Len(t, *prompts, 1)
	assert.Contains(t, (*prompts)[0], "old.md")
	assert.FileExists(t, filepath.Join(s.Vault, "old.md"))
}

func TestTrashConfirmed(t *testing.T) {
	s := newState(t)
	stubConfirm(t, true)

	cmd := NewCmdTrash(s)
	cmd.SetOut(io.Discard)
	cmd.SetArgs([]string{"old"})
	assert.Error(t, cmd.Execute(), "expected an error for a path without its extension")

	cmd = NewCmdTrash(s)
	cmd.SetOut(io.Discard)
	cmd.SetArgs([]string{"old.md"})
	require.NoError(t, cmd.Execute())
	assert.NoFileExists(t, filepath.Join(s.Vault, "old.md"))
}
