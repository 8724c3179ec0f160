package handler

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/Paintersrp/marknote/internal/constants"
	"github.com/Paintersrp/marknote/internal/pathutil"
)

// TrashDir is the vault subdirectory that receives deleted notes.
const TrashDir = "trash"

var (
	ErrOutsideVault = pathutil.ErrOutsideVault
	ErrExists       = errors.New("file already exists")
	ErrInvalidName  = errors.New("invalid name")
)

// FileInfo describes one entry of a vault directory listing.
type FileInfo struct {
	Name    string
	Path    string
	IsDir   bool
	ModTime time.Time
}

// FileHandler performs file operations confined to a single vault directory.
type FileHandler struct {
	vaultDir string
}

func NewFileHandler(vaultDir string) *FileHandler {
	return &FileHandler{vaultDir: pathutil.NormalizePath(vaultDir)}
}

func (h *FileHandler) VaultDir() string {
	return h.vaultDir
}

// Resolve maps a vault relative or absolute path onto the vault, failing with
// ErrOutsideVault when the result escapes it.
func (h *FileHandler) Resolve(p string) (string, error) {
	return pathutil.Resolve(h.vaultDir, p)
}

// ResolveNote is Resolve with the note extension appended when missing.
func (h *FileHandler) ResolveNote(p string) (string, error) {
	return h.Resolve(pathutil.EnsureExt(p, constants.NoteExt))
}

func (h *FileHandler) Read(path string) (string, error) {
	target, err := h.Resolve(path)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(target)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// Write replaces the file contents, creating parent directories as needed.
func (h *FileHandler) Write(path, content string) error {
	target, err := h.Resolve(path)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(target), os.ModePerm); err != nil {
		return fmt.Errorf("create parent of %s: %w", path, err)
	}

	if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Create writes a new file and refuses to overwrite an existing one.
func (h *FileHandler) Create(path, content string) (string, error) {
	target, err := h.Resolve(path)
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(target); err == nil {
		return "", fmt.Errorf("%s: %w", path, ErrExists)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}

	if err := h.Write(target, content); err != nil {
		return "", err
	}
	return target, nil
}

// List returns the entries of dir with directories first, then by name.
// Hidden entries and the trash are omitted.
func (h *FileHandler) List(dir string) ([]FileInfo, error) {
	if dir == "" {
		dir = h.vaultDir
	}
	target, err := h.Resolve(dir)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(target)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}

	infos := make([]FileInfo, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if entry.IsDir() && target == h.vaultDir && name == TrashDir {
			continue
		}

		info := FileInfo{
			Name:  name,
			Path:  filepath.Join(target, name),
			IsDir: entry.IsDir(),
		}
		if fi, err := entry.Info(); err == nil {
			info.ModTime = fi.ModTime()
		}
		infos = append(infos, info)
	}

	sort.SliceStable(infos, func(i, j int) bool {
		if infos[i].IsDir != infos[j].IsDir {
			return infos[i].IsDir
		}
		return strings.ToLower(infos[i].Name) < strings.ToLower(infos[j].Name)
	})
	return infos, nil
}

func (h *FileHandler) CreateDir(dir string) (string, error) {
	target, err := h.Resolve(dir)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(target, os.ModePerm); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}
	return target, nil
}

// Rename gives path a new base name within its current directory.
func (h *FileHandler) Rename(path, newName string) (string, error) {
	source, err := h.Resolve(path)
	if err != nil {
		return "", err
	}

	newName = strings.TrimSpace(newName)
	if newName == "" || newName == "." || newName == ".." ||
		strings.ContainsAny(newName, `/\`) {
		return "", fmt.Errorf("%q: %w", newName, ErrInvalidName)
	}

	info, err := os.Stat(source)
	if err != nil {
		return "", fmt.Errorf("rename %s: %w", path, err)
	}
	if !info.IsDir() && filepath.Ext(newName) == "" {
		newName += filepath.Ext(source)
	}

	dest := filepath.Join(filepath.Dir(source), newName)
	if dest == source {
		return dest, nil
	}
	if _, err := os.Stat(dest); err == nil {
		return "", fmt.Errorf("%s: %w", newName, ErrExists)
	}

	if err := os.Rename(source, dest); err != nil {
		return "", fmt.Errorf("rename %s: %w", path, err)
	}
	return dest, nil
}

// Trash moves a note or directory into the trash subdirectory, keeping its
// path relative to the vault. A name clash in the trash gets a time suffix.
func (h *FileHandler) Trash(path string) (string, error) {
	source, err := h.Resolve(path)
	if err != nil {
		return "", err
	}
	if source == h.vaultDir {
		return "", fmt.Errorf("refusing to trash the vault root: %w", ErrInvalidName)
	}

	rel, err := filepath.Rel(h.vaultDir, source)
	if err != nil {
		return "", err
	}
	if rel == TrashDir || strings.HasPrefix(rel, TrashDir+string(filepath.Separator)) {
		return "", fmt.Errorf("%s is already in the trash: %w", path, ErrInvalidName)
	}

	dest := filepath.Join(h.vaultDir, TrashDir, rel)
	if err := os.MkdirAll(filepath.Dir(dest), os.ModePerm); err != nil {
		return "", err
	}
	if _, err := os.Stat(dest); err == nil {
		ext := filepath.Ext(dest)
		dest = fmt.Sprintf("%s-%d%s", strings.TrimSuffix(dest, ext), time.Now().UnixNano(), ext)
	}

	if err := os.Rename(source, dest); err != nil {
		return "", fmt.Errorf("trash %s: %w", path, err)
	}
	return dest, nil
}

// Untrash moves a trashed entry back to its original location.
func (h *FileHandler) Untrash(path string) (string, error) {
	source, err := h.Resolve(path)
	if err != nil {
		return "", err
	}

	rel, err := filepath.Rel(filepath.Join(h.vaultDir, TrashDir), source)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("%s is not in the trash: %w", path, ErrInvalidName)
	}

	dest := filepath.Join(h.vaultDir, rel)
	if _, err := os.Stat(dest); err == nil {
		return "", fmt.Errorf("%s: %w", rel, ErrExists)
	}
	if err := os.MkdirAll(filepath.Dir(dest), os.ModePerm); err != nil {
		return "", err
	}
	if err := os.Rename(source, dest); err != nil {
		return "", fmt.Errorf("restore %s: %w", path, err)
	}
	return dest, nil
}

// WalkFiles returns every note in the vault, skipping hidden entries and the
// named directories (relative to the vault) and file names.
func (h *FileHandler) WalkFiles(excludeDirs []string, excludeFiles []string) ([]string, error) {
	var files []string

	excludePaths := make(map[string]struct{}, len(excludeDirs))
	for _, d := range excludeDirs {
		excludePaths[filepath.Clean(filepath.Join(h.vaultDir, d))] = struct{}{}
	}
	skipFiles := make(map[string]struct{}, len(excludeFiles))
	for _, f := range excludeFiles {
		skipFiles[f] = struct{}{}
	}

	err := filepath.WalkDir(h.vaultDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		name := d.Name()
		if d.IsDir() {
			if path == h.vaultDir {
				return nil
			}
			if _, skip := excludePaths[filepath.Clean(path)]; skip || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(name, ".") {
			return nil
		}
		if _, skip := skipFiles[name]; skip {
			return nil
		}
		if filepath.Ext(name) == constants.NoteExt {
			files = append(files, path)
		}
		return nil
	})

	return files, err
}

// Notes walks the vault with the trash excluded.
func (h *FileHandler) Notes() ([]string, error) {
	return h.WalkFiles([]string{TrashDir}, nil)
}

// Relative returns path relative to the vault with forward slashes.
func (h *FileHandler) Relative(path string) string {
	rel, err := pathutil.VaultRelative(h.vaultDir, path)
	if err != nil {
		return path
	}
	return rel
}
