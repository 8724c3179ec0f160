package pathutil

import (
	"errors"
	"path/filepath"
	"strings"
)

// ErrOutsideVault is returned when a path escapes the vault root.
var ErrOutsideVault = errors.New("path is outside the vault")

// NormalizePath converts Windows-style separators to the current platform's separator
// and cleans the resulting path.
func NormalizePath(p string) string {
	if p == "" {
		return ""
	}

	replaced := strings.ReplaceAll(p, "\\", "/")
	return filepath.Clean(filepath.FromSlash(replaced))
}

// VaultRelative returns the path to target relative to the provided vault directory,
// always using forward slashes.
func VaultRelative(vaultDir, target string) (string, error) {
	base := NormalizePath(vaultDir)
	cleanedTarget := NormalizePath(target)

	rel, err := filepath.Rel(base, cleanedTarget)
	if err != nil {
		return "", err
	}

	return filepath.ToSlash(rel), nil
}

// WithinVault reports whether target is the vault itself or sits below it.
func WithinVault(vaultDir, target string) bool {
	rel, err := VaultRelative(vaultDir, target)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, "../"))
}

// Resolve joins a user supplied path onto the vault unless it is already
// absolute, and rejects anything that lands outside the vault.
func Resolve(vaultDir, p string) (string, error) {
	if strings.TrimSpace(p) == "" {
		return "", errors.New("path cannot be empty")
	}

	target := NormalizePath(p)
	if !filepath.IsAbs(target) {
		target = filepath.Join(NormalizePath(vaultDir), target)
	}

	if !WithinVault(vaultDir, target) {
		return "", ErrOutsideVault
	}
	return target, nil
}

// EnsureExt appends ext when name has no extension.
func EnsureExt(name, ext string) string {
	if filepath.Ext(name) == "" {
		return name + ext
	}
	return name
}
