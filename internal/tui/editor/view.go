package editor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Paintersrp/marknote/internal/document"
	"github.com/Paintersrp/marknote/internal/markdown"
)

const (
	glyphWidth     = 2
	glyphChecked   = "☑"
	glyphUnchecked = "☐"
	defaultWidth   = 80
	defaultHeight  = 24
)

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	body := m.renderEditor()
	if m.showPreview {
		body = lipgloss.JoinHorizontal(
			lipgloss.Top,
			body,
			m.styles.preview.Render(m.preview.View()),
		)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		body,
		m.renderStatus(),
		m.styles.help.Render(m.help.View(m.keys)),
	)
}

func (m *Model) renderHeader() string {
	title := m.styles.title.Render(m.file.rel)
	if m.Dirty() {
		title += m.styles.dirty.Render("●")
	}

	c := m.buf.Cursor()
	pos := m.styles.status.Render(fmt.Sprintf("Ln %d, Col %d", c.Line, c.Column))

	gap := m.totalWidth() - lipgloss.Width(title) - lipgloss.Width(pos)
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + pos
}

func (m *Model) renderStatus() string {
	if m.notice != "" {
		if m.noticeErr {
			return m.styles.errNotice.Render(m.notice)
		}
		return m.styles.notice.Render(m.notice)
	}

	open, done := 0, 0
	for _, d := range m.buf.Decorations() {
		if d.GlyphClass == markdown.GlyphChecked {
			done++
		} else {
			open++
		}
	}
	status := fmt.Sprintf("%d lines", m.buf.LineCount())
	if open+done > 0 {
		status += fmt.Sprintf(" · %d/%d tasks done", done, open+done)
	}
	return m.styles.status.Render(status)
}

func (m *Model) renderEditor() string {
	rows := m.editorRows()
	width := m.editorWidth()
	decorations := m.buf.DecorationsByLine()
	sel := m.buf.Selection()
	cursor := m.buf.Cursor()

	lines := make([]string, 0, rows)
	for i := 0; i < rows; i++ {
		n := m.top + i + 1
		if n > m.buf.LineCount() {
			lines = append(lines, strings.Repeat(" ", width))
			continue
		}

		row := m.renderGutter(n, decorations, cursor.Line) + m.renderContent(n, sel, cursor)
		if pad := width - lipgloss.Width(row); pad > 0 {
			row += strings.Repeat(" ", pad)
		}
		lines = append(lines, row)
	}

	return strings.Join(lines, "\n")
}

func (m *Model) renderGutter(n int, decorations map[int]document.Decoration, cursorLine int) string {
	glyph := strings.Repeat(" ", glyphWidth)
	if d, ok := decorations[n]; ok {
		if d.GlyphClass == markdown.GlyphChecked {
			glyph = m.styles.glyphDone.Render(glyphChecked) + " "
		} else {
			glyph = m.styles.glyphOpen.Render(glyphUnchecked) + " "
		}
	}

	num := fmt.Sprintf("%*d ", m.numberWidth(), n)
	if n == cursorLine {
		return glyph + m.styles.currentNum.Render(num)
	}
	return glyph + m.styles.lineNumber.Render(num)
}

type cellClass int

const (
	cellPlain cellClass = iota
	cellSelected
	cellCursor
)

// renderContent draws the visible slice of line n, grouping runs of cells
// that share a style.
func (m *Model) renderContent(n int, sel document.Range, cursor document.Position) string {
	runes := []rune(m.buf.LineContent(n))
	textWidth := m.textWidth()

	var out strings.Builder
	var run []rune
	class := cellPlain
	flush := func() {
		if len(run) == 0 {
			return
		}
		switch class {
		case cellSelected:
			out.WriteString(m.styles.selected.Render(string(run)))
		case cellCursor:
			out.WriteString(m.styles.cursor.Render(string(run)))
		default:
			out.WriteString(m.styles.text.Render(string(run)))
		}
		run = run[:0]
	}

	for i := m.left; i < len(runes)+1 && i < m.left+textWidth; i++ {
		pos := document.Position{Line: n, Column: i + 1}

		r := ' '
		if i < len(runes) {
			r = runes[i]
			if r == '\t' {
				r = ' '
			}
		}

		next := cellPlain
		switch {
		case pos == cursor:
			next = cellCursor
		case inRange(sel, pos) && i < len(runes):
			next = cellSelected
		case i >= len(runes):
			continue
		}

		if next != class {
			flush()
			class = next
		}
		run = append(run, r)
	}
	flush()

	return out.String()
}

func inRange(r document.Range, p document.Position) bool {
	return !r.IsEmpty() &&
		document.ComparePos(p, r.Start()) >= 0 &&
		document.ComparePos(p, r.End()) < 0
}

func (m *Model) totalWidth() int {
	if m.width <= 0 {
		return defaultWidth
	}
	return m.width
}

func (m *Model) editorWidth() int {
	if m.showPreview {
		return m.totalWidth() / 2
	}
	return m.totalWidth()
}

func (m *Model) previewWidth() int {
	return m.totalWidth() - m.editorWidth() - 1
}

func (m *Model) numberWidth() int {
	return len(strconv.Itoa(m.buf.LineCount()))
}

func (m *Model) gutterWidth() int {
	return glyphWidth + m.numberWidth() + 1
}

func (m *Model) textWidth() int {
	w := m.editorWidth() - m.gutterWidth()
	if w < 1 {
		return 1
	}
	return w
}

func (m *Model) editorRows() int {
	height := m.height
	if height <= 0 {
		height = defaultHeight
	}
	rows := height - headerHeight - footerHeight - (lipgloss.Height(m.help.View(m.keys)) - 1)
	if rows < 1 {
		return 1
	}
	return rows
}

func (m *Model) layout() {
	m.help.Width = m.totalWidth()
	m.preview.Width = m.previewWidth() - 1
	m.preview.Height = m.editorRows()
	m.ensureCursorVisible()
}

func (m *Model) scroll(delta int) {
	m.top += delta
	if limit := m.buf.LineCount() - m.editorRows(); m.top > limit {
		m.top = limit
	}
	if m.top < 0 {
		m.top = 0
	}
}

func (m *Model) ensureCursorVisible() {
	c := m.buf.Cursor()
	rows := m.editorRows()
	line := c.Line - 1
	if line < m.top {
		m.top = line
	}
	if line >= m.top+rows {
		m.top = line - rows + 1
	}

	col := c.Column - 1
	width := m.textWidth()
	if col < m.left {
		m.left = col
	}
	if col >= m.left+width {
		m.left = col - width + 1
	}
}
