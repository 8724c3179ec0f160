package document

// MoveLeft moves the cursor one rune left, wrapping to the previous line.
func (b *Buffer) MoveLeft(extend bool) {
	if !extend && b.HasSelection() {
		b.SetCursor(b.Selection().Start(), false)
		return
	}
	c := b.cursor
	switch {
	case c.Column > 1:
		c.Column--
	case c.Line > 1:
		c = Position{Line: c.Line - 1, Column: b.LineMaxColumn(c.Line - 1)}
	}
	b.SetCursor(c, extend)
}

// MoveRight moves the cursor one rune right, wrapping to the next line.
func (b *Buffer) MoveRight(extend bool) {
	if !extend && b.HasSelection() {
		b.SetCursor(b.Selection().End(), false)
		return
	}
	c := b.cursor
	switch {
	case c.Column < b.LineMaxColumn(c.Line):
		c.Column++
	case c.Line < b.LineCount():
		c = Position{Line: c.Line + 1, Column: 1}
	}
	b.SetCursor(c, extend)
}

// MoveVertical moves the cursor by delta lines keeping the preferred column.
func (b *Buffer) MoveVertical(delta int, extend bool) {
	col := b.preferredCol
	if col < 1 {
		col = b.cursor.Column
	}
	line := b.cursor.Line + delta
	if line < 1 {
		line = 1
	}
	if line > b.LineCount() {
		line = b.LineCount()
	}
	b.cursor = b.clamp(Position{Line: line, Column: col})
	if !extend {
		b.anchor = b.cursor
	}
}

func (b *Buffer) MoveHome(extend bool) {
	b.SetCursor(Position{Line: b.cursor.Line, Column: 1}, extend)
}

func (b *Buffer) MoveEnd(extend bool) {
	b.SetCursor(Position{Line: b.cursor.Line, Column: b.LineMaxColumn(b.cursor.Line)}, extend)
}

func (b *Buffer) SelectAll() {
	last := b.LineCount()
	b.SetSelection(Range{StartLine: 1, StartColumn: 1, EndLine: last, EndColumn: b.LineMaxColumn(last)})
}
