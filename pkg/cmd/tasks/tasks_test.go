package tasks

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Paintersrp/marknote/internal/config"
	"github.com/Paintersrp/marknote/internal/handler"
	"github.com/Paintersrp/marknote/internal/state"
)

func setup(t *testing.T, files map[string]string) *state.State {
	t.Helper()

	vault := t.TempDir()
	for name, content := range files {
		path := filepath.Join(vault, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return &state.State{
		Workspace: config.NewWorkspace(vault),
		Handler:   handler.NewFileHandler(vault),
		Vault:     vault,
	}
}

func execute(t *testing.T, s *state.State, args ...string) string {
	t.Helper()

	cmd := NewCmdTasks(s)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SilenceUsage = true
	cmd.SetArgs(append([]string{}, args...))
	require.NoError(t, cmd.Execute(), "tasks %v", args)
	return out.String()
}

func TestTasksListsVault(t *testing.T) {
	s := setup(t, map[string]string{
		"a.md":          "# A\n- [ ] first\n- [x] second",
		"projects/b.md": "- [ ] third @due(2024-01-02)\n\n```\n- [ ] not a task\n```",
		"trash/gone.md": "- [ ] trashed",
		"plain-note.md": "nothing here",
	})

	out := execute(t, s)

	for _, want := range []string{
		"a.md:2  [ ] first",
		"a.md:3  [x] second",
		"projects/b.md:1  [ ] third (due 2024-01-02)",
		"2 open, 1 done",
	} {
		assert.Contains(t, out, want)
	}
	for _, unwanted := range []string{"not a task", "trashed"} {
		assert.NotContains(t, out, unwanted)
	}
}

func TestTasksFiltersAndSorts(t *testing.T) {
	s := setup(t, map[string]string{
		"todo.md": "- [ ] later @due(2024-03-01)\n- [x] done\n- [ ] sooner @due(2024-02-01)\n- [ ] whenever",
	})

	out := execute(t, s, "todo", "--status", "open", "--due")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.GreaterOrEqual(t, len(lines), 3, "unexpected output:\n%s", out)
	assert.Contains(t, lines[0], "sooner")
	assert.Contains(t, lines[1], "later")
	assert.Contains(t, lines[2], "whenever")
	assert.NotContains(t, out, "[x]", "expected done tasks to be filtered out")
}

func TestTasksRejectsBadStatus(t *testing.T) {
	s := setup(t, map[string]string{"todo.md": "- [ ] a"})

	cmd := NewCmdTasks(s)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SilenceUsage = true
	cmd.SetArgs([]string{"--status", "someday"})
	assert.Error(t, cmd.Execute(), "expected an error for an unknown status")
}

func TestTaskAdd(t *testing.T) {
	s := setup(t, map[string]string{"todo.md": "# Todo\n\n## Tasks\n- [ ] a\n\n## Notes\ntext"})

	out := execute(t, s, "add", "todo", "buy", "milk", "-p", "high")
	assert.Contains(t, out, "Task added to todo.md")

	data, err := os.ReadFile(filepath.Join(s.Vault, "todo.md"))
	require.NoError(t, err)
	assert.Equal(t, "# Todo\n\n## Tasks\n- [ ] a\n- [ ] buy milk @priority(high)\n\n## Notes\ntext", string(data))
}

func TestTaskAddCreatesNote(t *testing.T) {
	s := setup(t, nil)

	execute(t, s, "add", "inbox", "call", "Sam", "--due", "tomorrow")

	data, err := os.ReadFile(filepath.Join(s.Vault, "inbox.md"))
	require.NoError(t, err, "expected note to be created")
	assert.Equal(t, "## Tasks\n- [ ] call Sam @due(tomorrow)\n", string(data))
}

func TestAppendTask(t *testing.T) {
	tests := map[string]struct {
		content string
		want    string
	}{
		"empty note": {
			content: "",
			want:    "## Tasks\n- [ ] x\n",
		},
		"no section": {
			content: "# Title\nbody\n",
			want:    "# Title\nbody\n\n## Tasks\n- [ ] x\n",
		},
		"section at end": {
			content: "## Tasks\n- [ ] a\n",
			want:    "## Tasks\n- [ ] a\n- [ ] x\n",
		},
		"nested heading stays in section": {
			content: "## Tasks\n### Home\n- [ ] a\n## Done",
			want:    "## Tasks\n### Home\n- [ ] a\n- [ ] x\n## Done",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, AppendTask(tc.content, "x"))
		})
	}
}
