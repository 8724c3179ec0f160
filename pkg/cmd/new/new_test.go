package new

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Paintersrp/marknote/internal/config"
	"github.com/Paintersrp/marknote/internal/handler"
	"github.com/Paintersrp/marknote/internal/parser"
	"github.com/Paintersrp/marknote/internal/state"
)

func newState(t *testing.T) *state.State {
	t.Helper()
	vault := t.TempDir()
	return &state.State{
		Workspace: config.NewWorkspace(vault),
		Handler:   handler.NewFileHandler(vault),
		Vault:     vault,
	}
}

func execute(s *state.State, args ...string) (string, error) {
	cmd := NewCmdNew(s)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SilenceUsage = true
	cmd.SetArgs(append([]string{}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestNewCreatesNote(t *testing.T) {
	s := newState(t)

	out, err := execute(s, "projects/roadmap", "--tags", "work,planning")
	require.NoError(t, err)
	assert.Equal(t, "Created projects/roadmap.md\n", out)

	data, err := os.ReadFile(filepath.Join(s.Vault, "projects", "roadmap.md"))
	require.NoError(t, err)

	fm, body, ok := parser.SplitFrontMatter(data)
	require.True(t, ok, "expected front matter in %q", data)
	assert.Equal(t, "roadmap", fm.Title)
	assert.Equal(t, []string{"work", "planning"}, fm.Tags)
	assert.Equal(t, "\n# roadmap\n\n", string(body))
}

func TestNewQuotesTitle(t *testing.T) {
	got, err := Content("a: b", []string{"x"})
	require.NoError(t, err)

	fm, _, ok := parser.SplitFrontMatter([]byte(got))
	require.True(t, ok)
	assert.Equal(t, "a: b", fm.Title)
}

func TestNewRefusesExisting(t *testing.T) {
	s := newState(t)

	_, err := execute(s, "ideas")
	require.NoError(t, err)
	_, err = execute(s, "ideas")
	assert.ErrorIs(t, err, handler.ErrExists)
}

func TestContentWithoutTags(t *testing.T) {
	got, err := Content("Plan", []string{" "})
	require.NoError(t, err)
	assert.Equal(t, "# Plan\n\n", got)
}

func TestNewWithTemplate(t *testing.T) {
	s := newState(t)

	_, err := execute(s, "groceries", "--template", "checklist")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(s.Vault, "groceries.md"))
	require.NoError(t, err)
	assert.Equal(t, "# groceries\n\n- [ ] \n", string(data))
}

func TestNewWithVaultTemplate(t *testing.T) {
	s := newState(t)

	dir := filepath.Join(s.Vault, TemplateDir)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "idea.tmpl"), []byte("## {{.Title}}\n"), 0o644))

	_, err := execute(s, "spark", "-T", "idea")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(s.Vault, "spark.md"))
	require.NoError(t, err)
	assert.Equal(t, "## spark\n", string(data))
}

func TestNewUnknownTemplate(t *testing.T) {
	s := newState(t)

	_, err := execute(s, "x", "--template", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "available: checklist, daily, meeting, note")
	assert.NoFileExists(t, filepath.Join(s.Vault, "x.md"))
}
