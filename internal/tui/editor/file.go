package editor

import (
	"crypto/sha256"
	"errors"
	"io/fs"
	"os"
	"time"
)

// noteFile tracks the on-disk state of the open note so saves can detect
// changes made by other programs.
type noteFile struct {
	path             string
	rel              string
	originalContent  string
	originalChecksum [32]byte
	originalModTime  time.Time
	exists           bool
	allowOverwrite   bool
}

func (f *noteFile) setOriginal(content string, modTime time.Time) {
	f.originalContent = content
	f.originalChecksum = sha256.Sum256([]byte(content))
	f.originalModTime = modTime
	f.allowOverwrite = false
}

func (f *noteFile) checksumMatches(content []byte) bool {
	return sha256.Sum256(content) == f.originalChecksum
}

// diskChanged reports whether the file on disk no longer matches what was
// loaded or last saved.
func (f *noteFile) diskChanged() (bool, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return f.exists, nil
	}
	if err != nil {
		return false, err
	}
	return !f.checksumMatches(data), nil
}

func modTime(path string) time.Time {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}
