package check

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

func setup(t *testing.T, content string) *state.State {
	t.Helper()

	vault := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(vault, "todo.md"), []byte(content), 0o644))
	return &state.State{
		Workspace: config.NewWorkspace(vault),
		Handler:   handler.NewFileHandler(vault),
		Vault:     vault,
	}
}

func execute(s *state.State, args ...string) (string, error) {
	cmd := NewCmdCheck(s)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SilenceUsage = true
	cmd.SetArgs(append([]string{}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestCheckFlipsItem(t *testing.T) {
	s := setup(t, "# Todo\n- [ ] milk\n- [x] eggs")

	out, err := execute(s, "todo", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "todo.md:2 is now checked")

	_, err = execute(s, "todo.md", "3")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(s.Vault, "todo.md"))
	require.NoError(t, err)
	assert.Equal(t, "# Todo\n- [x] milk\n- [ ] eggs", string(data))
}

func TestCheckRejectsNonChecklistLine(t *testing.T) {
	s := setup(t, "# Todo\n- [ ] milk")

	for _, args := range [][]string{{"todo", "1"}, {"todo", "9"}, {"todo", "two"}} {
		_, err := execute(s, args...)
		assert.Error(t, err, "expected an error for %v", args)
	}
}
