package markdown

import "github.com/Paintersrp/marknote/internal/document"

// Widget is the text widget surface the engine reads from and edits through.
// The engine never keeps a copy of the document; every operation re-reads
// the lines it needs.
type Widget interface {
	Selection() document.Range
	SetSelection(r document.Range)
	LineCount() int
	LineContent(line int) string
	LineMaxColumn(line int) int
	ValueInRange(r document.Range) string
	ExecuteEdits(source string, edits []document.Edit) bool
	DeltaDecorations(old []document.DecorationID, next []document.Decoration) []document.DecorationID
}

// ExpandToFullLines snaps sel to whole lines: column 1 of its first line up
// to the last column of its last line. Lines are clamped into the document.
func ExpandToFullLines(w Widget, sel document.Range) document.Range {
	count := w.LineCount()
	if count < 1 {
		count = 1
	}
	start := clampLine(sel.StartLine, count)
	end := clampLine(sel.EndLine, count)
	if end < start {
		start, end = end, start
	}
	return document.Range{
		StartLine:   start,
		StartColumn: 1,
		EndLine:     end,
		EndColumn:   w.LineMaxColumn(end),
	}
}

func clampLine(line, count int) int {
	if line < 1 {
		return 1
	}
	if line > count {
		return count
	}
	return line
}

func linesInRange(w Widget, r document.Range) []string {
	lines := make([]string, 0, r.EndLine-r.StartLine+1)
	for ln := r.StartLine; ln <= r.EndLine; ln++ {
		lines = append(lines, w.LineContent(ln))
	}
	return lines
}
