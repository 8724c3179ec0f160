package root

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Paintersrp/marknote/internal/config"
	"github.com/Paintersrp/marknote/internal/handler"
	"github.com/Paintersrp/marknote/internal/state"
)

func TestRootRegistersCommands(t *testing.T) {
	cmd := NewCmdRoot(&state.State{}, nil)

	for _, name := range []string{
		"init", "edit", "open", "toggle", "check", "tasks", "export", "preview",
		"new", "mkdir", "rename", "trash", "untrash", "ls", "search", "settings", "workspace",
	} {
		found, _, err := cmd.Find([]string{name})
		require.NoError(t, err, "expected %q to be registered", name)
		assert.Equal(t, name, found.Name())
	}
}

func TestRootLoadsStateForWorkspace(t *testing.T) {
	vault := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(vault, "note.md"), []byte("x"), 0o644))

	var requested string
	load := func(workspace string) (*state.State, error) {
		requested = workspace
		return &state.State{
			Config:    &config.Config{},
			Workspace: config.NewWorkspace(vault),
			Handler:   handler.NewFileHandler(vault),
			Vault:     vault,
		}, nil
	}

	s := &state.State{}
	cmd := NewCmdRoot(s, load)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"ls", "-w", "work"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "work", requested, "workspace flag should reach the loader")
	assert.Equal(t, vault, s.Vault, "shared state should be filled in")
	assert.Equal(t, "note.md\n", out.String())
}

func TestRootInitSkipsLoader(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	home := t.TempDir()
	t.Setenv("HOME", home)

	load := func(string) (*state.State, error) {
		return nil, errors.New("no vault configured")
	}

	cmd := NewCmdRoot(&state.State{}, load)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"init", filepath.Join(home, "notes")})

	require.NoError(t, cmd.Execute())

	cmd = NewCmdRoot(&state.State{}, load)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"ls"})
	assert.Error(t, cmd.Execute(), "expected loader error for commands that need a vault")
}
