package cmd

import (
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Paintersrp/marknote/internal/handler"
	"github.com/Paintersrp/marknote/internal/state"
)

func TestResolveVaultPath(t *testing.T) {
	vaultDir := t.TempDir()

	st := &state.State{Handler: handler.NewFileHandler(vaultDir), Vault: vaultDir}

	tests := map[string]struct {
		command *cobra.Command
		input   string
		want    string
		wantErr bool
	}{
		"absolute inside vault": {
			command: &cobra.Command{Use: "trash"},
			input:   filepath.Join(vaultDir, "note.md"),
			want:    filepath.Join(vaultDir, "note.md"),
		},
		"relative inside vault": {
			command: &cobra.Command{Use: "trash"},
			input:   "note.md",
			want:    filepath.Join(vaultDir, "note.md"),
		},
		"nested relative path": {
			command: &cobra.Command{Use: "edit"},
			input:   "projects/plan.md",
			want:    filepath.Join(vaultDir, "projects", "plan.md"),
		},
		"escape attempt": {
			command: &cobra.Command{Use: "trash"},
			input:   "../evil.md",
			wantErr: true,
		},
		"absolute outside vault": {
			command: &cobra.Command{Use: "edit"},
			input:   filepath.Join(filepath.Dir(vaultDir), "evil.md"),
			wantErr: true,
		},
		"empty argument": {
			command: &cobra.Command{Use: "edit"},
			input:   "  ",
			wantErr: true,
		},
		"untrash infers trash directory": {
			command: &cobra.Command{Use: "untrash"},
			input:   "restored.md",
			want:    filepath.Join(vaultDir, "trash", "restored.md"),
		},
		"untrash respects explicit trash prefix": {
			command: &cobra.Command{Use: "untrash"},
			input:   filepath.Join("trash", "restored.md"),
			want:    filepath.Join(vaultDir, "trash", "restored.md"),
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ResolveVaultPath(tc.command, st, tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, filepath.Clean(tc.want), got)
		})
	}
}

func TestResolveVaultPathOutsideIsSentinel(t *testing.T) {
	vaultDir := t.TempDir()
	st := &state.State{Handler: handler.NewFileHandler(vaultDir)}

	_, err := ResolveVaultPath(&cobra.Command{Use: "edit"}, st, "../../x.md")
	assert.ErrorIs(t, err, handler.ErrOutsideVault)
}

func TestResolveNotePathAddsExtension(t *testing.T) {
	vaultDir := t.TempDir()
	st := &state.State{Handler: handler.NewFileHandler(vaultDir)}

	got, err := ResolveNotePath(&cobra.Command{Use: "edit"}, st, "daily/today")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(vaultDir, "daily", "today.md"), got)
}

func TestResolveVaultPathRequiresState(t *testing.T) {
	_, err := ResolveVaultPath(nil, &state.State{}, "note.md")
	assert.Error(t, err, "expected an error without a handler")
}
