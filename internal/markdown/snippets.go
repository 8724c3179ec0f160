package markdown

import "github.com/Paintersrp/marknote/internal/document"

const (
	linkSnippet      = "[text](https://)"
	imageSnippet     = "![](https://)"
	codeBlockSnippet = "\n```\n\n```\n"
)

// InsertLink replaces the selection with a link. A non-empty selection
// becomes the link text.
func (e *Engine) InsertLink() bool {
	sel := e.w.Selection()
	if text := e.w.ValueInRange(sel); text != "" {
		return e.insert(sel, "["+text+"](https://)")
	}
	return e.insert(sel, linkSnippet)
}

func (e *Engine) InsertImage() bool {
	return e.insert(e.w.Selection(), imageSnippet)
}

func (e *Engine) InsertCodeBlock() bool {
	sel := e.w.Selection()
	if !e.insert(sel, codeBlockSnippet) {
		return false
	}
	// Land on the empty line inside the fence.
	e.w.SetSelection(document.Collapsed(document.Position{Line: sel.StartLine + 2, Column: 1}))
	return true
}

func (e *Engine) insert(sel document.Range, text string) bool {
	if !e.w.ExecuteEdits(SourceInsertSnippet, []document.Edit{{Range: sel, Text: text}}) {
		return false
	}
	e.w.SetSelection(document.Collapsed(advance(sel.Start(), text)))
	return true
}
