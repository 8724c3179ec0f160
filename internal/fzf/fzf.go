package fzf

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/muesli/termenv"

	"github.com/Paintersrp/marknote/internal/export"
	"github.com/Paintersrp/marknote/internal/handler"
	"github.com/Paintersrp/marknote/internal/parser"
)

// ErrNoSelection is returned when the picker is closed without a choice.
var ErrNoSelection = errors.New("no file selected")

// FuzzyFinder picks a note from the vault with a rendered preview.
type FuzzyFinder struct {
	handler *handler.FileHandler
	Header  string
	Style   string
	files   []string
	labels  []string
}

func NewFuzzyFinder(h *handler.FileHandler, header, style string) *FuzzyFinder {
	return &FuzzyFinder{handler: h, Header: header, Style: style}
}

// Run opens the picker seeded with query and returns the chosen note path.
func (f *FuzzyFinder) Run(query string) (string, error) {
	if err := f.load(); err != nil {
		return "", err
	}
	if len(f.files) == 0 {
		return "", fmt.Errorf("no notes found in %s", f.handler.VaultDir())
	}

	options := []fuzzyfinder.Option{
		fuzzyfinder.WithPreviewWindow(f.renderMarkdownPreview),
	}
	if query != "" {
		options = append(options, fuzzyfinder.WithQuery(query))
	}
	if f.Header != "" {
		options = append(options, fuzzyfinder.WithHeader(f.Header))
	}

	idx, err := fuzzyfinder.Find(f.files, func(i int) string {
		return f.labels[i]
	}, options...)
	if errors.Is(err, fuzzyfinder.ErrAbort) {
		return "", ErrNoSelection
	}
	if err != nil {
		return "", fmt.Errorf("error selecting file: %w", err)
	}
	if idx < 0 {
		return "", ErrNoSelection
	}

	return f.files[idx], nil
}

func (f *FuzzyFinder) load() error {
	files, err := f.handler.Notes()
	if err != nil {
		return fmt.Errorf("error listing files: %w", err)
	}

	f.files = files
	f.labels = make([]string, len(files))
	for i, file := range files {
		f.labels[i] = f.label(file)
	}
	return nil
}

// label shows the vault relative path, plus the front matter title and tags
// when the note has them.
func (f *FuzzyFinder) label(file string) string {
	rel := f.handler.Relative(file)

	content, err := os.ReadFile(file)
	if err != nil {
		return rel
	}

	fm, _, ok := parser.SplitFrontMatter(content)
	if !ok {
		return rel
	}

	label := rel
	if fm.Title != "" {
		label = fmt.Sprintf("%s (%s)", fm.Title, rel)
	}
	if len(fm.Tags) > 0 {
		label = fmt.Sprintf("%s [%s]", label, strings.Join(fm.Tags, ", "))
	}
	return label
}

func (f *FuzzyFinder) renderMarkdownPreview(i, w, h int) string {
	if i == -1 {
		return ""
	}

	content, err := os.ReadFile(f.files[i])
	if err != nil {
		return "Error reading file"
	}

	style := f.Style
	if style == "" || style == "auto" {
		style = "dracula"
	}

	out, err := export.RenderTerminal(content, export.TerminalOptions{
		Style:   style,
		Width:   w - 4,
		Profile: termenv.ANSI256,
	})
	if err != nil {
		return "Error rendering markdown"
	}

	return out
}
