package markdown

import (
	"strings"
	"unicode/utf8"

	"github.com/Paintersrp/marknote/internal/document"
)

// Edit sources reported to the widget.
const (
	SourceToggleWrap    = "toggle-wrap"
	SourceToggleLines   = "toggle-lines"
	SourceToggleCheck   = "toggle-checkbox"
	SourceInsertSnippet = "insert-snippet"
)

// Engine applies toggles to the widget's current selection. Each toggle is a
// single ExecuteEdits call and therefore a single undo step.
type Engine struct {
	w Widget
}

func NewEngine(w Widget) *Engine {
	return &Engine{w: w}
}

func (e *Engine) ToggleBold() bool        { return e.Toggle(Bold) }
func (e *Engine) ToggleItalic() bool      { return e.Toggle(Italic) }
func (e *Engine) ToggleList() bool        { return e.Toggle(BulletList) }
func (e *Engine) ToggleOrderedList() bool { return e.Toggle(OrderedList) }
func (e *Engine) ToggleChecklist() bool   { return e.Toggle(Checklist) }

// ToggleHeading toggles level 1-3; other levels are ignored.
func (e *Engine) ToggleHeading(level int) bool {
	kind, ok := HeadingKind(level)
	if !ok {
		return false
	}
	return e.Toggle(kind)
}

// Toggle applies kind and reports whether the document changed.
func (e *Engine) Toggle(kind ToggleKind) bool {
	if m, ok := wrapMarkers[kind]; ok {
		return e.toggleWrap(m)
	}
	return e.toggleLines(kind)
}

func (e *Engine) toggleWrap(m wrapMarker) bool {
	sel := e.w.Selection()
	text := e.w.ValueInRange(sel)
	next, _ := WrapText(text, m.open, m.close)
	if !e.w.ExecuteEdits(SourceToggleWrap, []document.Edit{{Range: sel, Text: next}}) {
		return false
	}

	start := sel.Start()
	if text == "" {
		// Leave the cursor between the markers, ready for typing.
		e.w.SetSelection(document.Collapsed(advance(start, m.open)))
		return true
	}
	// Keep the result selected so the next toggle sees the same text.
	e.w.SetSelection(document.RangeBetween(start, advance(start, next)))
	return true
}

func (e *Engine) toggleLines(kind ToggleKind) bool {
	r := ExpandToFullLines(e.w, e.w.Selection())
	lines := linesInRange(e.w, r)
	next := ToggleLines(kind, lines)
	if !e.w.ExecuteEdits(SourceToggleLines, []document.Edit{{Range: r, Text: strings.Join(next, "\n")}}) {
		return false
	}
	e.w.SetSelection(ExpandToFullLines(e.w, r))
	return true
}

// advance returns the position reached after writing text at p.
func advance(p document.Position, text string) document.Position {
	nl := strings.Count(text, "\n")
	if nl == 0 {
		return document.Position{Line: p.Line, Column: p.Column + utf8.RuneCountInString(text)}
	}
	tail := text[strings.LastIndex(text, "\n")+1:]
	return document.Position{Line: p.Line + nl, Column: utf8.RuneCountInString(tail) + 1}
}
