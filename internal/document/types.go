// Package document implements the in-memory text widget the editing engine
// runs against: a line-addressed buffer with a selection, atomic edits that
// record a single undo step, and a decoration set keyed by line.
//
// Lines and columns are 1-based. Column n sits before the n-th rune of a line,
// so the maximum column of a line is its rune length plus one.
package document

// Position addresses a point in the document.
type Position struct {
	Line   int
	Column int
}

// Range spans [Start, End) in document order.
type Range struct {
	StartLine   int
	StartColumn int
	EndLine     int
	EndColumn   int
}

func (r Range) Start() Position { return Position{Line: r.StartLine, Column: r.StartColumn} }

func (r Range) End() Position { return Position{Line: r.EndLine, Column: r.EndColumn} }

func (r Range) IsEmpty() bool {
	return r.StartLine == r.EndLine && r.StartColumn == r.EndColumn
}

// RangeBetween builds a Range from two positions in any order.
func RangeBetween(a, b Position) Range {
	if ComparePos(a, b) > 0 {
		a, b = b, a
	}
	return Range{StartLine: a.Line, StartColumn: a.Column, EndLine: b.Line, EndColumn: b.Column}
}

// Collapsed returns an empty range at p.
func Collapsed(p Position) Range {
	return Range{StartLine: p.Line, StartColumn: p.Column, EndLine: p.Line, EndColumn: p.Column}
}

func ComparePos(a, b Position) int {
	switch {
	case a.Line < b.Line:
		return -1
	case a.Line > b.Line:
		return 1
	case a.Column < b.Column:
		return -1
	case a.Column > b.Column:
		return 1
	}
	return 0
}

// Edit replaces the text in Range with Text, which may contain '\n'.
type Edit struct {
	Range Range
	Text  string
}

// DecorationID is issued by the buffer for every decoration it accepts.
type DecorationID string

// Decoration is a whole-line gutter annotation.
type Decoration struct {
	Line         int
	GlyphClass   string
	HoverMessage string
}

// MouseTarget identifies which part of the editor a pointer event landed on.
type MouseTarget int

const (
	TargetContent MouseTarget = iota
	TargetGutterLineNumbers
	TargetGutterGlyphMargin
)

// MouseEvent is a pointer press resolved to a document line.
type MouseEvent struct {
	Target MouseTarget
	Line   int
	Column int
}

// Change is delivered to listeners after every effective mutation.
type Change struct {
	Source        string
	VersionBefore uint64
	VersionAfter  uint64
}
