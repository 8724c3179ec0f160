package editor

import (
	"crypto/sha256"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Paintersrp/marknote/internal/document"
	"github.com/Paintersrp/marknote/internal/export"
	"github.com/Paintersrp/marknote/internal/state"
)

type noticeExpiredMsg struct{ seq int }

type previewTickMsg struct{ version uint64 }

type autosaveTickMsg struct{ version uint64 }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		m.renderedAt = ^uint64(0)
		return m, m.schedulePreview()

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case noticeExpiredMsg:
		if msg.seq == m.noticeSeq {
			m.notice = ""
			m.noticeErr = false
		}
		return m, nil

	case previewTickMsg:
		if m.showPreview && msg.version == m.buf.Version() && m.renderedAt != msg.version {
			m.renderPreview()
		}
		return m, nil

	case autosaveTickMsg:
		if msg.version == m.buf.Version() && m.Dirty() {
			return m, m.save()
		}
		return m, nil

	case state.VaultNoteChangedMsg:
		cmd := m.handleExternalChange(msg)
		return m, tea.Batch(cmd, m.watcher.Start())

	case state.VaultWatcherErrMsg:
		m.logger.Warn("vault watcher error", "err", msg.Err)
		return m, tea.Batch(m.notify(fmt.Sprintf("Watcher error: %v", msg.Err), true), m.watcher.Start())
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	before := m.buf.Version()

	if key.Matches(msg, m.keys.quit) {
		if m.Dirty() && !m.confirmQuit {
			m.confirmQuit = true
			return m.notify("Unsaved changes, press ctrl+q again to quit", true)
		}
		m.quitting = true
		return tea.Quit
	}
	m.confirmQuit = false

	var cmd tea.Cmd
	switch {
	case key.Matches(msg, m.keys.save):
		return m.save()
	case key.Matches(msg, m.keys.bold):
		m.session.ToggleBold()
	case key.Matches(msg, m.keys.italic):
		m.session.ToggleItalic()
	case key.Matches(msg, m.keys.link):
		m.session.InsertLink()
	case key.Matches(msg, m.keys.image):
		m.session.InsertImage()
	case key.Matches(msg, m.keys.codeBlock):
		m.session.InsertCodeBlock()
	case key.Matches(msg, m.keys.list):
		m.session.ToggleList()
	case key.Matches(msg, m.keys.ordered):
		m.session.ToggleOrderedList()
	case key.Matches(msg, m.keys.checklist):
		m.session.ToggleChecklist()
	case key.Matches(msg, m.keys.check):
		if !m.session.ToggleAtLine(m.buf.Cursor().Line) {
			cmd = m.notify("Not a checklist item", false)
		}
	case key.Matches(msg, m.keys.heading1):
		m.session.ToggleHeading(1)
	case key.Matches(msg, m.keys.heading2):
		m.session.ToggleHeading(2)
	case key.Matches(msg, m.keys.heading3):
		m.session.ToggleHeading(3)
	case key.Matches(msg, m.keys.undo):
		m.buf.Undo()
	case key.Matches(msg, m.keys.redo):
		m.buf.Redo()
	case key.Matches(msg, m.keys.preview):
		m.showPreview = !m.showPreview
		m.layout()
		m.renderedAt = ^uint64(0)
		cmd = m.schedulePreview()
	case key.Matches(msg, m.keys.selectAll):
		m.buf.SelectAll()
	case key.Matches(msg, m.keys.copy):
		cmd = m.copySelection(false)
	case key.Matches(msg, m.keys.cut):
		cmd = m.copySelection(true)
	case key.Matches(msg, m.keys.paste):
		cmd = m.paste()
	case key.Matches(msg, m.keys.help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
	default:
		m.handleEditingKey(msg)
	}

	return tea.Batch(cmd, m.afterEdit(before))
}

func (m *Model) handleEditingKey(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt {
			return
		}
		m.buf.InsertText(string(msg.Runes))
	case tea.KeySpace:
		m.buf.InsertText(" ")
	case tea.KeyEnter:
		m.buf.InsertText("\n")
	case tea.KeyTab:
		m.buf.InsertText(tabText)
	case tea.KeyBackspace:
		m.buf.DeleteBackward()
	case tea.KeyDelete:
		m.buf.DeleteForward()
	case tea.KeyLeft, tea.KeyShiftLeft:
		m.buf.MoveLeft(msg.Type == tea.KeyShiftLeft)
	case tea.KeyRight, tea.KeyShiftRight:
		m.buf.MoveRight(msg.Type == tea.KeyShiftRight)
	case tea.KeyUp, tea.KeyShiftUp:
		m.buf.MoveVertical(-1, msg.Type == tea.KeyShiftUp)
	case tea.KeyDown, tea.KeyShiftDown:
		m.buf.MoveVertical(1, msg.Type == tea.KeyShiftDown)
	case tea.KeyHome, tea.KeyShiftHome:
		m.buf.MoveHome(msg.Type == tea.KeyShiftHome)
	case tea.KeyEnd, tea.KeyShiftEnd:
		m.buf.MoveEnd(msg.Type == tea.KeyShiftEnd)
	case tea.KeyPgUp:
		m.buf.MoveVertical(-m.editorRows(), false)
	case tea.KeyPgDown:
		m.buf.MoveVertical(m.editorRows(), false)
	case tea.KeyCtrlHome:
		m.buf.SetCursor(document.Position{Line: 1, Column: 1}, false)
	case tea.KeyCtrlEnd:
		last := m.buf.LineCount()
		m.buf.SetCursor(document.Position{Line: last, Column: m.buf.LineMaxColumn(last)}, false)
	case tea.KeyEsc:
		m.buf.SetCursor(m.buf.Cursor(), false)
	}
}

// afterEdit keeps the cursor in view and schedules the debounced work that
// follows a change to the document.
func (m *Model) afterEdit(before uint64) tea.Cmd {
	m.ensureCursorVisible()
	if m.buf.Version() == before {
		return nil
	}

	var cmds []tea.Cmd
	if m.showPreview {
		cmds = append(cmds, m.schedulePreview())
	}
	if m.autosave > 0 && m.Dirty() {
		v := m.buf.Version()
		cmds = append(cmds, tea.Tick(m.autosave, func(time.Time) tea.Msg {
			return autosaveTickMsg{version: v}
		}))
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.showPreview && msg.X >= m.editorWidth() {
		var cmd tea.Cmd
		m.preview, cmd = m.preview.Update(msg)
		return cmd
	}

	switch msg.Type {
	case tea.MouseWheelUp:
		m.scroll(-3)
		return nil
	case tea.MouseWheelDown:
		m.scroll(3)
		return nil
	case tea.MouseLeft:
	default:
		return nil
	}

	ev, ok := m.hitTest(msg.X, msg.Y)
	if !ok {
		return nil
	}

	before := m.buf.Version()
	switch ev.Target {
	case document.TargetGutterGlyphMargin:
		if !m.session.HandleMouseDown(ev) {
			m.buf.SetCursor(document.Position{Line: ev.Line, Column: 1}, false)
		}
	case document.TargetGutterLineNumbers:
		m.buf.SetSelection(document.Range{
			StartLine: ev.Line, StartColumn: 1,
			EndLine: ev.Line, EndColumn: m.buf.LineMaxColumn(ev.Line),
		})
	default:
		m.buf.SetCursor(document.Position{Line: ev.Line, Column: ev.Column}, msg.Shift)
	}
	return m.afterEdit(before)
}

// hitTest maps a cell in the editor pane to a document position and the
// gutter region under it.
func (m *Model) hitTest(x, y int) (document.MouseEvent, bool) {
	row := y - headerHeight
	if row < 0 || row >= m.editorRows() || x < 0 || x >= m.editorWidth() {
		return document.MouseEvent{}, false
	}

	line := m.top + row + 1
	if line > m.buf.LineCount() {
		return document.MouseEvent{}, false
	}

	ev := document.MouseEvent{Line: line, Column: 1}
	switch {
	case x < glyphWidth:
		ev.Target = document.TargetGutterGlyphMargin
	case x < m.gutterWidth():
		ev.Target = document.TargetGutterLineNumbers
	default:
		ev.Target = document.TargetContent
		ev.Column = m.left + (x - m.gutterWidth()) + 1
	}
	return ev, true
}

func (m *Model) copySelection(cut bool) tea.Cmd {
	if !m.buf.HasSelection() {
		return m.notify("Nothing selected", false)
	}

	text := m.buf.ValueInRange(m.buf.Selection())
	if err := m.clipboard.WriteAll(text); err != nil {
		m.logger.Warn("clipboard write failed", "err", err)
		return m.notify(fmt.Sprintf("Clipboard unavailable: %v", err), true)
	}

	if cut {
		m.buf.InsertText("")
		return nil
	}
	return m.notify("Copied selection", false)
}

func (m *Model) paste() tea.Cmd {
	text, err := m.clipboard.ReadAll()
	if err != nil {
		m.logger.Warn("clipboard read failed", "err", err)
		return m.notify(fmt.Sprintf("Clipboard unavailable: %v", err), true)
	}
	if text != "" {
		m.buf.InsertText(text)
	}
	return nil
}

// save writes the buffer to disk. A file that changed on disk since it was
// loaded is only overwritten on the second attempt.
func (m *Model) save() tea.Cmd {
	if !m.file.allowOverwrite {
		changed, err := m.file.diskChanged()
		if err != nil {
			m.logger.Error("checking note before save", "path", m.file.rel, "err", err)
			return m.notify(fmt.Sprintf("Save failed: %v", err), true)
		}
		if changed {
			m.file.allowOverwrite = true
			return m.notify("External changes on disk, press ctrl+s again to overwrite", true)
		}
	}

	text := m.buf.Text()
	if err := m.handler.Write(m.file.path, text); err != nil {
		m.logger.Error("saving note", "path", m.file.rel, "err", err)
		return m.notify(fmt.Sprintf("Save failed: %v", err), true)
	}

	m.file.setOriginal(text, modTime(m.file.path))
	m.file.exists = true
	m.savedVersion = m.buf.Version()
	m.confirmQuit = false
	m.logger.Info("note saved", "path", m.file.rel, "version", m.savedVersion)
	return m.notify("Saved "+m.file.rel, false)
}

func (m *Model) handleExternalChange(msg state.VaultNoteChangedMsg) tea.Cmd {
	if msg.Path != m.file.rel {
		return nil
	}

	data, err := os.ReadFile(m.file.path)
	if err != nil {
		if msg.Removed {
			return m.notify("Note was removed on disk", true)
		}
		return nil
	}
	if m.file.checksumMatches(data) {
		return nil
	}

	if m.Dirty() {
		return m.notify("Note changed on disk, saving will ask before overwriting", true)
	}

	content := string(data)
	m.session.SetValue(func() { m.buf.SetText(content) })
	m.file.setOriginal(content, modTime(m.file.path))
	m.file.exists = true
	m.savedVersion = m.buf.Version()
	m.ensureCursorVisible()
	m.logger.Info("reloaded external change", "path", m.file.rel)

	cmds := []tea.Cmd{m.notify("Reloaded changes from disk", false)}
	if m.showPreview {
		cmds = append(cmds, m.schedulePreview())
	}
	return tea.Batch(cmds...)
}

func (m *Model) notify(text string, isErr bool) tea.Cmd {
	m.noticeSeq++
	m.notice = text
	m.noticeErr = isErr
	seq := m.noticeSeq
	return tea.Tick(noticeTTL, func(time.Time) tea.Msg {
		return noticeExpiredMsg{seq: seq}
	})
}

func (m *Model) schedulePreview() tea.Cmd {
	if !m.showPreview {
		return nil
	}
	v := m.buf.Version()
	return tea.Tick(previewDebounce, func(time.Time) tea.Msg {
		return previewTickMsg{version: v}
	})
}

func (m *Model) renderPreview() {
	width := m.previewWidth() - 2
	if width <= 0 {
		width = 80
	}

	if m.renderer == nil || m.rendererWidth != width {
		r, err := export.NewTerminalRenderer(export.TerminalOptions{
			Style:   m.previewStyle,
			Width:   width,
			Profile: m.previewProfile,
		})
		if err != nil {
			m.logger.Error("creating preview renderer", "err", err)
			m.preview.SetContent(fmt.Sprintf("preview unavailable: %v", err))
			return
		}
		m.renderer = r
		m.rendererWidth = width
	}

	text := m.buf.Text()
	key := previewKey{sum: sha256.Sum256([]byte(text)), width: width}
	out, hit := m.rendered.Get(key)
	if !hit {
		var err error
		out, err = m.renderer.Render(text)
		if err != nil {
			m.logger.Warn("rendering preview", "err", err)
			out = fmt.Sprintf("preview unavailable: %v", err)
		} else {
			m.rendered.Put(key, out)
		}
	}
	m.preview.SetContent(out)
	m.renderedAt = m.buf.Version()
}

// previewKey identifies a rendered preview by content and wrap width.
type previewKey struct {
	sum   [sha256.Size]byte
	width int
}
