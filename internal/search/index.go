// Package search finds text and tags across the notes of a vault.
package search

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/Paintersrp/marknote/internal/parser"
)

// Query represents a search request against the index.
type Query struct {
	// Term is matched case-insensitively against titles, tags and lines.
	Term string
	// Tags must all be present on a note for it to match.
	Tags []string
}

// Match sources reported in Result.MatchFrom.
const (
	FromMetadata    = "metadata"
	FromFrontMatter = "frontmatter"
	FromBody        = "body"
)

// Result is one match. Body matches carry the 1-based line in the file.
type Result struct {
	Path      string
	Line      int
	Snippet   string
	MatchFrom string
}

type document struct {
	path  string
	title string
	tags  []string
	lines []string
	// offset is the number of file lines taken by the front matter.
	offset int
}

// Index holds the parsed notes of a vault.
type Index struct {
	root string
	docs map[string]document
}

func NewIndex(root string) *Index {
	return &Index{
		root: filepath.Clean(root),
		docs: make(map[string]document),
	}
}

// Build replaces the index contents using the provided note paths. Notes
// that vanished since they were listed are skipped.
func (idx *Index) Build(paths []string) error {
	idx.docs = make(map[string]document, len(paths))
	for _, p := range paths {
		canonical := idx.normalize(p)
		doc, err := loadDocument(canonical)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("search: indexing %s: %w", canonical, err)
		}
		idx.docs[canonical] = doc
	}
	return nil
}

// Len returns the number of indexed notes.
func (idx *Index) Len() int { return len(idx.docs) }

func (idx *Index) normalize(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(idx.root, path)
}

// Search returns matches ordered by path, then line. A note whose title or
// tags match is reported once; every matching body line is reported.
func (idx *Index) Search(q Query) []Result {
	term := strings.ToLower(strings.TrimSpace(q.Term))

	var results []Result
	for _, doc := range idx.docs {
		if !doc.hasTags(q.Tags) {
			continue
		}

		if term == "" {
			results = append(results, Result{Path: doc.path, MatchFrom: FromMetadata})
			continue
		}

		if snippet, ok := doc.matchFrontMatter(term); ok {
			results = append(results, Result{Path: doc.path, Line: 1, Snippet: snippet, MatchFrom: FromFrontMatter})
		}
		results = append(results, doc.matchBody(term)...)
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Path != results[j].Path {
			return results[i].Path < results[j].Path
		}
		return results[i].Line < results[j].Line
	})
	return results
}

func loadDocument(path string) (document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return document{}, err
	}

	fm, body, _ := parser.SplitFrontMatter(data)
	offset := bytes.Count(data[:len(data)-len(body)], []byte("\n"))

	text := strings.ReplaceAll(string(body), "\r\n", "\n")
	return document{
		path:   filepath.Clean(path),
		title:  fm.Title,
		tags:   fm.Tags,
		lines:  strings.Split(text, "\n"),
		offset: offset,
	}, nil
}

func (d document) hasTags(required []string) bool {
	for _, tag := range required {
		if !containsFold(d.tags, tag) {
			return false
		}
	}
	return true
}

func (d document) matchFrontMatter(term string) (string, bool) {
	if d.title != "" && strings.Contains(strings.ToLower(d.title), term) {
		return "title: " + d.title, true
	}
	for _, tag := range d.tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return "tag: " + tag, true
		}
	}
	return "", false
}

func (d document) matchBody(term string) []Result {
	var results []Result
	for i, line := range d.lines {
		lowered := strings.ToLower(line)
		at := strings.Index(lowered, term)
		if at == -1 {
			continue
		}
		// Lowercasing can change byte lengths, so work in runes.
		runeStart := utf8.RuneCountInString(lowered[:at])
		results = append(results, Result{
			Path:      d.path,
			Line:      d.offset + i + 1,
			Snippet:   lineSnippet(line, runeStart, utf8.RuneCountInString(term)),
			MatchFrom: FromBody,
		})
	}
	return results
}

func containsFold(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(v, target) {
			return true
		}
	}
	return false
}

// snippetWindow is the number of runes kept on each side of a match.
const snippetWindow = 40

func lineSnippet(line string, index, termLen int) string {
	runes := []rune(line)
	start := max(0, index-snippetWindow)
	end := min(len(runes), index+termLen+snippetWindow)

	snippet := strings.TrimSpace(string(runes[start:end]))
	if start > 0 {
		snippet = "…" + snippet
	}
	if end < len(runes) {
		snippet += "…"
	}
	return snippet
}
