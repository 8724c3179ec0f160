package markdown

import "github.com/Paintersrp/marknote/internal/document"

// SessionState is the mutable per-editor state the engine needs between
// operations.
type SessionState struct {
	// DecorationIDs are the ids of the checklist glyphs currently shown.
	DecorationIDs []document.DecorationID
	// SettingValue is set while the shell replaces the document itself, so
	// the resulting change is not reported as a user edit.
	SettingValue bool
}

// Session binds an Engine and the checklist synchronizer to one widget.
type Session struct {
	*Engine

	State SessionState
	// OnUserEdit runs after every change that did not come from SetValue.
	OnUserEdit func(document.Change)

	w Widget
}

type changeNotifier interface {
	OnChange(fn func(document.Change))
}

// NewSession wires a session to w. When w publishes change notifications the
// session subscribes and resyncs on each one; otherwise the caller must call
// ContentChanged itself.
func NewSession(w Widget) *Session {
	s := &Session{Engine: NewEngine(w), w: w}
	if n, ok := w.(changeNotifier); ok {
		n.OnChange(s.ContentChanged)
	}
	Resync(w, &s.State)
	return s
}

// ContentChanged is the widget change handler.
func (s *Session) ContentChanged(c document.Change) {
	Resync(s.w, &s.State)
	if s.State.SettingValue || s.OnUserEdit == nil {
		return
	}
	s.OnUserEdit(c)
}

// SetValue runs set with the programmatic-change guard raised.
func (s *Session) SetValue(set func()) {
	s.State.SettingValue = true
	defer func() { s.State.SettingValue = false }()
	set()
}

func (s *Session) Resync() { Resync(s.w, &s.State) }

func (s *Session) ToggleAtLine(line int) bool { return ToggleAtLine(s.w, line) }

func (s *Session) HandleMouseDown(ev document.MouseEvent) bool {
	return HandleMouseDown(s.w, ev)
}
