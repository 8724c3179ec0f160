package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Paintersrp/marknote/internal/document"
)

func TestClassify(t *testing.T) {
	tests := map[string]ChecklistState{
		"- [ ] task":     ChecklistUnchecked,
		"  - [x] done":   ChecklistChecked,
		"- [X] shouting": ChecklistChecked,
		"-[ ] tight":     ChecklistUnchecked,
		"- [ ]":          ChecklistNone,
		"- item":         ChecklistNone,
		"plain text":     ChecklistNone,
		"[x] no dash":    ChecklistNone,
	}

	for line, want := range tests {
		assert.Equal(t, want, Classify(line), line)
	}
}

func TestToggleLine(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{in: "- [ ] task", want: "- [x] task", ok: true},
		{in: "- [X] task", want: "- [ ] task", ok: true},
		{in: "  -  [x]   spaced [x] body", want: "  -  [ ]   spaced [x] body", ok: true},
		{in: "plain text", want: "plain text", ok: false},
	}

	for _, tc := range tests {
		got, ok := ToggleLine(tc.in)
		assert.Equal(t, tc.want, got)
		assert.Equal(t, tc.ok, ok)
	}
}

func TestToggleAtLineKeepsSelection(t *testing.T) {
	b := newBuffer("intro\n- [ ] task\nplain")
	b.SetSelection(sel(1, 2, 1, 4))

	assert.True(t, ToggleAtLine(b, 2))
	assert.Equal(t, "intro\n- [x] task\nplain", b.Text())
	assert.Equal(t, sel(1, 2, 1, 4), b.Selection())

	assert.True(t, b.Undo())
	assert.Equal(t, "intro\n- [ ] task\nplain", b.Text())

	assert.False(t, ToggleAtLine(b, 3))
	assert.False(t, ToggleAtLine(b, 0))
	assert.False(t, ToggleAtLine(b, 42))
	assert.Equal(t, "intro\n- [ ] task\nplain", b.Text())
}

func TestResyncProducesOneDecorationPerChecklistLine(t *testing.T) {
	b := newBuffer("# list\n- [ ] a\n- [x] b\nnotes\n- [X] c\n- d")
	var state SessionState

	Resync(b, &state)

	assert.Len(t, state.DecorationIDs, 3)
	got := b.Decorations()
	assert.Equal(t, []document.Decoration{
		{Line: 2, GlyphClass: GlyphUnchecked, HoverMessage: hoverUnchecked},
		{Line: 3, GlyphClass: GlyphChecked, HoverMessage: hoverChecked},
		{Line: 5, GlyphClass: GlyphChecked, HoverMessage: hoverChecked},
	}, got)

	// A second pass replaces rather than accumulates.
	b.SetText("- [ ] only")
	Resync(b, &state)
	assert.Len(t, state.DecorationIDs, 1)
	assert.Len(t, b.Decorations(), 1)
}

func TestHandleMouseDown(t *testing.T) {
	b := newBuffer("- [ ] a\nb")

	assert.False(t, HandleMouseDown(b, document.MouseEvent{Target: document.TargetContent, Line: 1}))
	assert.Equal(t, "- [ ] a\nb", b.Text())

	assert.True(t, HandleMouseDown(b, document.MouseEvent{Target: document.TargetGutterGlyphMargin, Line: 1}))
	assert.Equal(t, "- [x] a\nb", b.Text())

	assert.False(t, HandleMouseDown(b, document.MouseEvent{Target: document.TargetGutterGlyphMargin, Line: 2}))
}

func TestChecklistStateMachine(t *testing.T) {
	b := newBuffer("task")
	e := NewEngine(b)

	assert.Equal(t, ChecklistNone, Classify(b.LineContent(1)))
	e.ToggleChecklist()
	assert.Equal(t, ChecklistUnchecked, Classify(b.LineContent(1)))
	ToggleAtLine(b, 1)
	assert.Equal(t, ChecklistChecked, Classify(b.LineContent(1)))
	ToggleAtLine(b, 1)
	assert.Equal(t, ChecklistUnchecked, Classify(b.LineContent(1)))
	e.ToggleChecklist()
	assert.Equal(t, ChecklistNone, Classify(b.LineContent(1)))
	assert.Equal(t, "task", b.Text())
}
