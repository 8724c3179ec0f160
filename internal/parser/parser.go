package parser

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// Parser collects checklist items from notes through the goldmark AST, so
// items inside code blocks or other non-list content are never reported.
type Parser struct {
	md    goldmark.Markdown
	Tasks []Task
}

func NewParser() *Parser {
	return &Parser{
		md: goldmark.New(goldmark.WithExtensions(extension.TaskList)),
	}
}

// ParseFiles reads and scans every path, appending to Tasks.
func (p *Parser) ParseFiles(paths []string) error {
	for _, path := range paths {
		if err := p.ParseFile(path); err != nil {
			return err
		}
	}
	return nil
}

func (p *Parser) ParseFile(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading file: %w", err)
	}

	p.Tasks = append(p.Tasks, p.ParseSource(path, source)...)
	return nil
}

// ParseSource returns the tasks in source in document order. Line numbers
// are 1-based and path is copied onto each task unchanged.
func (p *Parser) ParseSource(path string, source []byte) []Task {
	document := p.md.Parser().Parse(text.NewReader(source))

	var tasks []Task
	_ = ast.Walk(document, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		box, ok := n.(*extast.TaskCheckBox)
		if !ok {
			return ast.WalkContinue, nil
		}

		content := strings.TrimSpace(siblingText(box, source))
		if content == "" {
			return ast.WalkSkipChildren, nil
		}

		cleaned, metadata := ExtractTaskMetadata(content)
		if cleaned == "" {
			return ast.WalkSkipChildren, nil
		}

		status := StatusUnchecked
		if box.IsChecked {
			status = StatusChecked
		}

		tasks = append(tasks, Task{
			Status:   status,
			Content:  cleaned,
			Path:     path,
			Line:     lineOf(box.Parent(), source),
			Metadata: metadata,
		})
		return ast.WalkSkipChildren, nil
	})

	return tasks
}

func siblingText(box ast.Node, source []byte) string {
	var buf bytes.Buffer
	for c := box.NextSibling(); c != nil; c = c.NextSibling() {
		buf.Write(c.Text(source))
		if t, ok := c.(*ast.Text); ok && (t.SoftLineBreak() || t.HardLineBreak()) {
			buf.WriteByte(' ')
		}
	}
	return buf.String()
}

func lineOf(block ast.Node, source []byte) int {
	for n := block; n != nil; n = n.Parent() {
		if lines := n.Lines(); lines != nil && lines.Len() > 0 {
			segment := lines.At(0)
			return 1 + bytes.Count(source[:segment.Start], []byte("\n"))
		}
	}
	return 0
}
