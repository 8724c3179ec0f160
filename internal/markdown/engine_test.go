package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Paintersrp/marknote/internal/document"
)

func newBuffer(text string) *document.Buffer {
	return document.New(text, document.Options{})
}

func sel(sl, sc, el, ec int) document.Range {
	return document.Range{StartLine: sl, StartColumn: sc, EndLine: el, EndColumn: ec}
}

func TestExpandToFullLines(t *testing.T) {
	b := newBuffer("first\nsecond line\nthird")

	got := ExpandToFullLines(b, sel(1, 3, 2, 4))
	assert.Equal(t, sel(1, 1, 2, 12), got)

	got = ExpandToFullLines(b, sel(3, 2, 3, 2))
	assert.Equal(t, sel(3, 1, 3, 6), got)

	got = ExpandToFullLines(b, sel(2, 1, 9, 1))
	assert.Equal(t, sel(2, 1, 3, 6), got)
}

func TestToggleBoldWrapsAndUnwrapsSelection(t *testing.T) {
	b := newBuffer("make this bold")
	b.SetSelection(sel(1, 6, 1, 10))
	e := NewEngine(b)

	assert.True(t, e.ToggleBold())
	assert.Equal(t, "make **this** bold", b.Text())
	assert.Equal(t, "**this**", b.ValueInRange(b.Selection()))

	assert.True(t, e.ToggleBold())
	assert.Equal(t, "make this bold", b.Text())
	assert.Equal(t, "this", b.ValueInRange(b.Selection()))
}

func TestToggleItalicEmptySelectionPlacesCursorInside(t *testing.T) {
	b := newBuffer("ab")
	b.SetCursor(document.Position{Line: 1, Column: 2}, false)
	e := NewEngine(b)

	assert.True(t, e.ToggleItalic())
	assert.Equal(t, "a**b", b.Text())
	assert.Equal(t, document.Position{Line: 1, Column: 3}, b.Cursor())
	assert.False(t, b.HasSelection())

	b.InsertText("x")
	assert.Equal(t, "a*x*b", b.Text())
}

func TestToggleIsSingleUndoStep(t *testing.T) {
	b := newBuffer("one\ntwo\nthree")
	b.SetSelection(sel(1, 2, 3, 2))
	e := NewEngine(b)

	assert.True(t, e.ToggleList())
	assert.Equal(t, "- one\n- two\n- three", b.Text())

	assert.True(t, b.Undo())
	assert.Equal(t, "one\ntwo\nthree", b.Text())
	assert.False(t, b.CanUndo())
}

func TestToggleListTwiceRestores(t *testing.T) {
	b := newBuffer("intro\nalpha\n\nbeta")
	b.SetSelection(sel(2, 3, 4, 1))
	e := NewEngine(b)

	assert.True(t, e.ToggleList())
	assert.Equal(t, "intro\n- alpha\n\n- beta", b.Text())
	assert.Equal(t, sel(2, 1, 4, 7), b.Selection())

	assert.True(t, e.ToggleList())
	assert.Equal(t, "intro\nalpha\n\nbeta", b.Text())
}

func TestToggleOrderedListRenumbers(t *testing.T) {
	b := newBuffer("3. x\n7. y\n")
	b.SelectAll()
	e := NewEngine(b)

	assert.True(t, e.ToggleOrderedList())
	assert.Equal(t, "1. x\n2. y\n", b.Text())
}

func TestToggleChecklistOnSelection(t *testing.T) {
	b := newBuffer("- buy milk\nwalk dog")
	b.SelectAll()
	e := NewEngine(b)

	assert.True(t, e.ToggleChecklist())
	assert.Equal(t, "- [ ] buy milk\n- [ ] walk dog", b.Text())

	assert.True(t, e.ToggleChecklist())
	assert.Equal(t, "buy milk\nwalk dog", b.Text())
}

func TestToggleHeading(t *testing.T) {
	b := newBuffer("## Title")
	e := NewEngine(b)

	assert.True(t, e.ToggleHeading(1))
	assert.Equal(t, "# Title", b.Text())

	assert.True(t, e.ToggleHeading(1))
	assert.Equal(t, "Title", b.Text())

	assert.False(t, e.ToggleHeading(4))
	assert.Equal(t, "Title", b.Text())
}

func TestTogglesOnEmptyDocumentAreNoOps(t *testing.T) {
	for _, kind := range []ToggleKind{BulletList, OrderedList, Checklist, Heading1, Heading2, Heading3} {
		b := newBuffer("")
		e := NewEngine(b)

		assert.False(t, e.Toggle(kind), kind.String())
		assert.Equal(t, "", b.Text())
		assert.False(t, b.CanUndo())
	}
}

func TestSnippets(t *testing.T) {
	b := newBuffer("see docs")
	b.SetSelection(sel(1, 5, 1, 9))
	e := NewEngine(b)

	assert.True(t, e.InsertLink())
	assert.Equal(t, "see [docs](https://)", b.Text())

	b = newBuffer("x")
	b.SetCursor(document.Position{Line: 1, Column: 2}, false)
	e = NewEngine(b)
	assert.True(t, e.InsertCodeBlock())
	assert.Equal(t, "x\n```\n\n```\n", b.Text())
	assert.Equal(t, document.Position{Line: 3, Column: 1}, b.Cursor())

	assert.True(t, e.InsertImage())
	assert.Equal(t, "x\n```\n![](https://)\n```\n", b.Text())
}
