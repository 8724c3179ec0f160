package markdown

import (
	"regexp"
	"strings"

	"github.com/Paintersrp/marknote/internal/document"
)

type ChecklistState int

const (
	ChecklistNone ChecklistState = iota
	ChecklistUnchecked
	ChecklistChecked
)

func (s ChecklistState) String() string {
	switch s {
	case ChecklistUnchecked:
		return "unchecked"
	case ChecklistChecked:
		return "checked"
	}
	return "none"
}

const (
	GlyphChecked   = "checkbox-checked"
	GlyphUnchecked = "checkbox-unchecked"

	hoverChecked   = "Checklist: checked (click to uncheck)"
	hoverUnchecked = "Checklist: unchecked (click to check)"
)

var (
	uncheckedItem = regexp.MustCompile(`^\s*-\s*\[\s\]\s+`)
	checkedItem   = regexp.MustCompile(`^\s*-\s*\[[xX]\]\s+`)
)

// Classify reports whether line is a checklist item and its state.
func Classify(line string) ChecklistState {
	switch {
	case checkedItem.MatchString(line):
		return ChecklistChecked
	case uncheckedItem.MatchString(line):
		return ChecklistUnchecked
	}
	return ChecklistNone
}

// ChecklistDecorations builds one gutter decoration per checklist line.
func ChecklistDecorations(w Widget) []document.Decoration {
	var out []document.Decoration
	for ln := 1; ln <= w.LineCount(); ln++ {
		switch Classify(w.LineContent(ln)) {
		case ChecklistChecked:
			out = append(out, document.Decoration{Line: ln, GlyphClass: GlyphChecked, HoverMessage: hoverChecked})
		case ChecklistUnchecked:
			out = append(out, document.Decoration{Line: ln, GlyphClass: GlyphUnchecked, HoverMessage: hoverUnchecked})
		}
	}
	return out
}

// Resync replaces the session's decorations with a fresh scan of the whole
// document. It must run synchronously after each change so line numbers are
// never stale.
func Resync(w Widget, s *SessionState) {
	s.DecorationIDs = w.DeltaDecorations(s.DecorationIDs, ChecklistDecorations(w))
}

// ToggleLine flips the checkbox token of a single checklist line. The bool is
// false when line is not a checklist item.
func ToggleLine(line string) (string, bool) {
	var (
		loc   []int
		token string
	)
	if loc = checkedItem.FindStringIndex(line); loc != nil {
		token = "[ ]"
	} else if loc = uncheckedItem.FindStringIndex(line); loc != nil {
		token = "[x]"
	} else {
		return line, false
	}

	prefix := line[:loc[1]]
	open := strings.IndexByte(prefix, '[')
	// The bracketed token is three single-byte characters in both patterns.
	return prefix[:open] + token + prefix[open+3:] + line[loc[1]:], true
}

// ToggleAtLine flips the checkbox on line n as one single-line edit and keeps
// the selection where it was. Non-checklist lines are left alone.
func ToggleAtLine(w Widget, n int) bool {
	if n < 1 || n > w.LineCount() {
		return false
	}
	content := w.LineContent(n)
	next, ok := ToggleLine(content)
	if !ok {
		return false
	}

	sel := w.Selection()
	r := document.Range{StartLine: n, StartColumn: 1, EndLine: n, EndColumn: w.LineMaxColumn(n)}
	if !w.ExecuteEdits(SourceToggleCheck, []document.Edit{{Range: r, Text: next}}) {
		return false
	}
	w.SetSelection(sel)
	return true
}

// HandleMouseDown toggles the checkbox under a gutter glyph click. It reports
// whether the event was consumed.
func HandleMouseDown(w Widget, ev document.MouseEvent) bool {
	if ev.Target != document.TargetGutterGlyphMargin || ev.Line < 1 {
		return false
	}
	return ToggleAtLine(w, ev.Line)
}
