package export

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"github.com/yuin/goldmark"
	emoji "github.com/yuin/goldmark-emoji"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/Paintersrp/marknote/internal/constants"
	mdparser "github.com/Paintersrp/marknote/internal/parser"
)

//go:embed templates/page.html.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/page.html.tmpl"))

var ErrEmptyName = errors.New("export name cannot be empty")

// Options controls the HTML page wrapped around a rendered note.
type Options struct {
	Dark  bool
	Title string
}

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM, emoji.Emoji, &externalLinks{}),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

type externalLinks struct{}

func (e *externalLinks) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithASTTransformers(
		util.Prioritized(&externalLinkTransformer{}, 100),
	))
}

type externalLinkTransformer struct{}

func (t *externalLinkTransformer) Transform(node *ast.Document, reader text.Reader, pc parser.Context) {
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch link := n.(type) {
		case *ast.Link:
			if isExternal(link.Destination) {
				link.SetAttributeString("target", []byte("_blank"))
				link.SetAttributeString("rel", []byte("noopener noreferrer"))
			}
		case *ast.AutoLink:
			if link.AutoLinkType == ast.AutoLinkURL && isExternal(link.URL(reader.Source())) {
				link.SetAttributeString("target", []byte("_blank"))
				link.SetAttributeString("rel", []byte("noopener noreferrer"))
			}
		}
		return ast.WalkContinue, nil
	})
}

func isExternal(dest []byte) bool {
	s := strings.ToLower(strings.TrimSpace(string(dest)))
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// RenderHTML converts Markdown to an HTML fragment. Front matter is dropped.
func RenderHTML(source []byte) (string, error) {
	_, body, _ := mdparser.SplitFrontMatter(source)

	var buf bytes.Buffer
	if err := markdown.Convert(body, &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}

// Page renders a complete standalone HTML document for source.
func Page(source []byte, opts Options) (string, error) {
	fragment, err := RenderHTML(source)
	if err != nil {
		return "", err
	}

	title := opts.Title
	if title == "" {
		title = Title(source, "")
	}

	var buf bytes.Buffer
	err = pageTemplate.Execute(&buf, struct {
		Title   string
		Dark    bool
		Version string
		Body    template.HTML
	}{
		Title:   title,
		Dark:    opts.Dark,
		Version: constants.Version,
		Body:    template.HTML(fragment),
	})
	if err != nil {
		return "", fmt.Errorf("render page: %w", err)
	}
	return buf.String(), nil
}

// Title picks the front matter title, then the first level one heading, then
// fallback.
func Title(source []byte, fallback string) string {
	fm, body, _ := mdparser.SplitFrontMatter(source)
	if fm.Title != "" {
		return fm.Title
	}

	doc := markdown.Parser().Parse(text.NewReader(body))
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if h, ok := n.(*ast.Heading); ok && h.Level == 1 {
			if title := strings.TrimSpace(string(h.Text(body))); title != "" {
				return title
			}
		}
	}
	return fallback
}

// WriteHTML renders source into destDir/name.html and returns the file path.
func WriteHTML(source []byte, destDir, name string, opts Options) (string, error) {
	base := strings.TrimSuffix(filepath.Base(strings.TrimSpace(name)), filepath.Ext(name))
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "", ErrEmptyName
	}
	if opts.Title == "" {
		opts.Title = Title(source, base)
	}

	page, err := Page(source, opts)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(destDir, os.ModePerm); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}

	out := filepath.Join(destDir, base+".html")
	if err := os.WriteFile(out, []byte(page), 0o644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	return out, nil
}

// TerminalOptions configures RenderTerminal.
type TerminalOptions struct {
	Style   string
	Width   int
	Profile termenv.Profile
}

// NewTerminalRenderer builds a glamour renderer for the given style. "auto"
// lets glamour detect the background.
func NewTerminalRenderer(opts TerminalOptions) (*glamour.TermRenderer, error) {
	width := opts.Width
	if width <= 0 {
		width = 100
	}

	styleOpt := glamour.WithStandardStyle(opts.Style)
	if opts.Style == "" || opts.Style == "auto" {
		styleOpt = glamour.WithAutoStyle()
	}

	return glamour.NewTermRenderer(
		styleOpt,
		glamour.WithWordWrap(width),
		glamour.WithColorProfile(opts.Profile),
		glamour.WithEmoji(),
	)
}

// RenderTerminal renders Markdown with ANSI styling for a terminal.
func RenderTerminal(source []byte, opts TerminalOptions) (string, error) {
	r, err := NewTerminalRenderer(opts)
	if err != nil {
		return "", fmt.Errorf("create terminal renderer: %w", err)
	}

	_, body, _ := mdparser.SplitFrontMatter(source)
	out, err := r.Render(string(body))
	if err != nil {
		return "", fmt.Errorf("render terminal markdown: %w", err)
	}
	return out, nil
}
