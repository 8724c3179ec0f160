package mkdir

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

func TestMkdirCreatesNestedDir(t *testing.T) {
	vault := t.TempDir()
	s := &state.State{Handler: handler.NewFileHandler(vault)}

	cmd := NewCmdMkdir(s)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"projects/2024"})
	require.NoError(t, cmd.Execute())

	info, err := os.Stat(filepath.Join(vault, "projects", "2024"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, "Created projects/2024/\n", out.String())
}

func TestMkdirRejectsEscape(t *testing.T) {
	s := &state.State{Handler: handler.NewFileHandler(t.TempDir())}

	cmd := NewCmdMkdir(s)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"../outside"})
	assert.Error(t, cmd.Execute(), "expected an error for a directory outside the vault")
}
