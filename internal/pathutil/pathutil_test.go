package pathutil

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVaultRelativeReturnsForwardSlashes(t *testing.T) {
	vaultParts := []string{"home", "user", "vault"}
	fileParts := append(append([]string{}, vaultParts...), "subdir", "file.md")

	posixVault := filepath.Join(vaultParts...)
	posixFile := filepath.Join(fileParts...)

	rel, err := VaultRelative(posixVault, posixFile)
	require.NoError(t, err, "POSIX paths")
	assert.Equal(t, "subdir/file.md", rel)

	windowsVault := strings.ReplaceAll(posixVault, string(filepath.Separator), "\\")
	windowsFile := strings.ReplaceAll(posixFile, string(filepath.Separator), "\\")

	rel, err = VaultRelative(windowsVault, windowsFile)
	require.NoError(t, err, "Windows paths")
	assert.Equal(t, "subdir/file.md", rel)
}

func TestWithinVault(t *testing.T) {
	vault := filepath.Join(string(filepath.Separator), "notes", "vault")

	tests := map[string]bool{
		vault:                                  true,
		filepath.Join(vault, "a.md"):           true,
		filepath.Join(vault, "sub", "b.md"):    true,
		filepath.Join(vault, "..", "x.md"):     false,
		filepath.Join(vault+"-other", "c.md"):  false,
		filepath.Join(vault, "..dots", "d.md"): true,
	}

	for target, want := range tests {
		assert.Equal(t, want, WithinVault(vault, target), "WithinVault(%q)", target)
	}
}

func TestResolve(t *testing.T) {
	vault := filepath.Join(string(filepath.Separator), "notes", "vault")

	got, err := Resolve(vault, "daily/today.md")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(vault, "daily", "today.md"), got)

	_, err = Resolve(vault, "../escape.md")
	assert.ErrorIs(t, err, ErrOutsideVault)

	_, err = Resolve(vault, "   ")
	assert.Error(t, err, "expected empty path to fail")
}

func TestEnsureExt(t *testing.T) {
	assert.Equal(t, "note.md", EnsureExt("note", ".md"))
	assert.Equal(t, "note.txt", EnsureExt("note.txt", ".md"))
}
