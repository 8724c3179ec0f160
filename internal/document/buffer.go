package document

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Source tags used by the buffer for changes it originates itself.
const (
	SourceSetValue = "set-value"
	SourceType     = "type"
	SourceUndo     = "undo"
	SourceRedo     = "redo"
)

const defaultHistoryLimit = 500

type Options struct {
	// HistoryLimit caps the undo stack. Zero selects the default; a negative
	// value disables history.
	HistoryLimit int
}

// Buffer is a single-threaded text model. It is only safe to use from the
// goroutine that owns it.
type Buffer struct {
	lines   []string
	anchor  Position
	cursor  Position
	version uint64
	opt     Options
	hist    historyState

	decorations  map[DecorationID]Decoration
	nextDecID    uint64
	listeners    []func(Change)
	preferredCol int
}

func New(text string, opt Options) *Buffer {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = defaultHistoryLimit
	}
	b := &Buffer{
		lines:       splitLines(text),
		opt:         opt,
		decorations: make(map[DecorationID]Decoration),
	}
	b.anchor = Position{Line: 1, Column: 1}
	b.cursor = b.anchor
	return b
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(text, "\n")
}

// OnChange registers fn to run synchronously after every effective change.
func (b *Buffer) OnChange(fn func(Change)) {
	if fn != nil {
		b.listeners = append(b.listeners, fn)
	}
}

func (b *Buffer) notify(source string, before uint64) {
	c := Change{Source: source, VersionBefore: before, VersionAfter: b.version}
	for _, fn := range b.listeners {
		fn(c)
	}
}

func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) Text() string { return strings.Join(b.lines, "\n") }

// SetText replaces the whole document and clears history.
func (b *Buffer) SetText(text string) {
	before := b.version
	b.lines = splitLines(text)
	b.hist = historyState{}
	b.anchor = b.clamp(b.anchor)
	b.cursor = b.clamp(b.cursor)
	b.version++
	b.notify(SourceSetValue, before)
}

func (b *Buffer) LineCount() int { return len(b.lines) }

// LineContent returns line n, or "" when n is out of range.
func (b *Buffer) LineContent(n int) string {
	if n < 1 || n > len(b.lines) {
		return ""
	}
	return b.lines[n-1]
}

func (b *Buffer) lineLen(n int) int {
	return utf8.RuneCountInString(b.LineContent(n))
}

func (b *Buffer) LineMaxColumn(n int) int {
	return b.lineLen(n) + 1
}

func (b *Buffer) clamp(p Position) Position {
	if p.Line < 1 {
		return Position{Line: 1, Column: 1}
	}
	if p.Line > len(b.lines) {
		last := len(b.lines)
		return Position{Line: last, Column: b.LineMaxColumn(last)}
	}
	max := b.LineMaxColumn(p.Line)
	if p.Column < 1 {
		p.Column = 1
	}
	if p.Column > max {
		p.Column = max
	}
	return p
}

func (b *Buffer) clampRange(r Range) Range {
	return RangeBetween(b.clamp(r.Start()), b.clamp(r.End()))
}

// byteOffset converts a 1-based rune column into a byte offset within line.
func byteOffset(line string, column int) int {
	if column <= 1 {
		return 0
	}
	n := 0
	for i := range line {
		if n == column-1 {
			return i
		}
		n++
	}
	return len(line)
}

func (b *Buffer) ValueInRange(r Range) string {
	r = b.clampRange(r)
	if r.StartLine == r.EndLine {
		line := b.lines[r.StartLine-1]
		return line[byteOffset(line, r.StartColumn):byteOffset(line, r.EndColumn)]
	}

	var sb strings.Builder
	first := b.lines[r.StartLine-1]
	sb.WriteString(first[byteOffset(first, r.StartColumn):])
	for ln := r.StartLine + 1; ln < r.EndLine; ln++ {
		sb.WriteByte('\n')
		sb.WriteString(b.lines[ln-1])
	}
	last := b.lines[r.EndLine-1]
	sb.WriteByte('\n')
	sb.WriteString(last[:byteOffset(last, r.EndColumn)])
	return sb.String()
}

// Selection returns the current selection in document order.
func (b *Buffer) Selection() Range {
	return RangeBetween(b.anchor, b.cursor)
}

// SetSelection selects r with the cursor at its end.
func (b *Buffer) SetSelection(r Range) {
	r = b.clampRange(r)
	b.anchor = r.Start()
	b.cursor = r.End()
	b.preferredCol = b.cursor.Column
}

func (b *Buffer) HasSelection() bool {
	return !b.Selection().IsEmpty()
}

func (b *Buffer) Cursor() Position { return b.cursor }

// SetCursor moves the cursor. When extend is set the anchor stays put and the
// selection grows or shrinks.
func (b *Buffer) SetCursor(p Position, extend bool) {
	b.cursor = b.clamp(p)
	if !extend {
		b.anchor = b.cursor
	}
	b.preferredCol = b.cursor.Column
}

// replace swaps r for text and returns the position just past the insertion.
func (b *Buffer) replace(r Range, text string) Position {
	first := b.lines[r.StartLine-1]
	last := b.lines[r.EndLine-1]
	prefix := first[:byteOffset(first, r.StartColumn)]
	suffix := last[byteOffset(last, r.EndColumn):]

	inserted := splitLines(text)
	endLine := r.StartLine + len(inserted) - 1
	endCol := utf8.RuneCountInString(inserted[len(inserted)-1]) + 1
	if len(inserted) == 1 {
		endCol += utf8.RuneCountInString(prefix)
	}
	inserted[0] = prefix + inserted[0]
	inserted[len(inserted)-1] += suffix

	next := make([]string, 0, len(b.lines)-(r.EndLine-r.StartLine)+len(inserted)-1)
	next = append(next, b.lines[:r.StartLine-1]...)
	next = append(next, inserted...)
	next = append(next, b.lines[r.EndLine:]...)
	b.lines = next

	return Position{Line: endLine, Column: endCol}
}

// ExecuteEdits applies edits as one atomic change and one undo step. Edits
// must not overlap. With a single edit the inserted text ends up selected;
// with several the cursor lands after the last one in document order.
// It reports whether the document changed.
func (b *Buffer) ExecuteEdits(source string, edits []Edit) bool {
	if len(edits) == 0 {
		return false
	}

	sorted := make([]Edit, len(edits))
	for i, e := range edits {
		sorted[i] = Edit{Range: b.clampRange(e.Range), Text: e.Text}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return ComparePos(sorted[i].Range.Start(), sorted[j].Range.Start()) > 0
	})

	changed := false
	for _, e := range sorted {
		if b.ValueInRange(e.Range) != e.Text {
			changed = true
			break
		}
	}
	if !changed {
		return false
	}

	prev := b.snapshot()
	before := b.version

	// Edits run bottom-up; track keeps the end of the last edit in current
	// coordinates while the ones above it shift lines and columns.
	var track Position
	for i, e := range sorted {
		end := b.replace(e.Range, e.Text)
		if i == 0 {
			track = end
			continue
		}
		if e.Range.EndLine == track.Line {
			track.Column += end.Column - e.Range.EndColumn
		}
		track.Line += end.Line - e.Range.EndLine
	}
	if len(sorted) == 1 {
		b.anchor = sorted[0].Range.Start()
		b.cursor = track
	} else {
		b.anchor = track
		b.cursor = track
	}
	b.preferredCol = b.cursor.Column

	b.version++
	b.recordUndo(prev)
	b.notify(source, before)
	return true
}

// InsertText types s at the cursor, replacing any selection.
func (b *Buffer) InsertText(s string) bool {
	if !b.ExecuteEdits(SourceType, []Edit{{Range: b.Selection(), Text: s}}) {
		return false
	}
	b.anchor = b.cursor
	return true
}

// DeleteBackward applies backspace semantics.
func (b *Buffer) DeleteBackward() bool {
	if b.HasSelection() {
		return b.InsertText("")
	}
	c := b.cursor
	var start Position
	switch {
	case c.Column > 1:
		start = Position{Line: c.Line, Column: c.Column - 1}
	case c.Line > 1:
		start = Position{Line: c.Line - 1, Column: b.LineMaxColumn(c.Line - 1)}
	default:
		return false
	}
	b.anchor = start
	return b.InsertText("")
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() bool {
	if b.HasSelection() {
		return b.InsertText("")
	}
	c := b.cursor
	var end Position
	switch {
	case c.Column < b.LineMaxColumn(c.Line):
		end = Position{Line: c.Line, Column: c.Column + 1}
	case c.Line < len(b.lines):
		end = Position{Line: c.Line + 1, Column: 1}
	default:
		return false
	}
	b.anchor = c
	b.cursor = end
	return b.InsertText("")
}
