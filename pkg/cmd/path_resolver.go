package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Paintersrp/marknote/internal/handler"
	"github.com/Paintersrp/marknote/internal/pathutil"
	"github.com/Paintersrp/marknote/internal/state"
)

// ResolveVaultPath turns a command argument into an absolute path inside the
// active vault. Commands that only operate on the trash accept paths relative
// to it.
func ResolveVaultPath(cmd *cobra.Command, s *state.State, arg string) (string, error) {
	if s == nil || s.Handler == nil {
		return "", fmt.Errorf("state configuration is not initialized")
	}
	vaultDir := s.Handler.VaultDir()
	if strings.TrimSpace(vaultDir) == "" || vaultDir == "." {
		return "", fmt.Errorf("vault directory is not configured")
	}
	if strings.TrimSpace(arg) == "" {
		return "", fmt.Errorf("a path argument is required")
	}

	resolved := arg
	if !filepath.IsAbs(pathutil.NormalizePath(arg)) {
		resolved = resolveRelative(cmd, arg)
	}

	target, err := pathutil.Resolve(vaultDir, resolved)
	if err != nil {
		return "", fmt.Errorf("%q: %w", arg, err)
	}
	return target, nil
}

// ResolveNotePath is ResolveVaultPath for note files: a missing extension
// becomes the note extension.
func ResolveNotePath(cmd *cobra.Command, s *state.State, arg string) (string, error) {
	path, err := ResolveVaultPath(cmd, s, arg)
	if err != nil {
		return "", err
	}
	return s.Handler.ResolveNote(path)
}

func resolveRelative(cmd *cobra.Command, arg string) string {
	relPath := pathutil.NormalizePath(arg)
	if relPath == "." {
		relPath = ""
	}

	targetDir := inferTargetDir(cmd)
	if targetDir == "" {
		return relPath
	}

	firstSegment := relPath
	if idx := strings.Index(relPath, string(filepath.Separator)); idx != -1 {
		firstSegment = relPath[:idx]
	}

	if firstSegment == targetDir {
		return relPath
	}

	return filepath.Join(targetDir, relPath)
}

func inferTargetDir(cmd *cobra.Command) string {
	if cmd == nil {
		return ""
	}

	switch cmd.Name() {
	case "untrash":
		return handler.TrashDir
	default:
		return ""
	}
}
