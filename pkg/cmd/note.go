package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Paintersrp/marknote/internal/document"
	"github.com/Paintersrp/marknote/internal/logging"
	"github.com/Paintersrp/marknote/internal/markdown"
	"github.com/Paintersrp/marknote/internal/state"
)

// Note is a vault note loaded into a buffer so the editing engine can run
// against it without a terminal.
type Note struct {
	Path    string
	Rel     string
	Buffer  *document.Buffer
	Session *markdown.Session

	s     *state.State
	saved uint64
}

func LoadNote(cmd *cobra.Command, s *state.State, arg string) (*Note, error) {
	path, err := ResolveNotePath(cmd, s, arg)
	if err != nil {
		return nil, err
	}

	content, err := s.Handler.Read(path)
	if err != nil {
		return nil, err
	}

	limit := 0
	if s.Workspace != nil {
		limit = s.Workspace.HistoryLimit
	}
	buf := document.New(content, document.Options{HistoryLimit: limit})

	return &Note{
		Path:    path,
		Rel:     s.Handler.Relative(path),
		Buffer:  buf,
		Session: markdown.NewSession(buf),
		s:       s,
		saved:   buf.Version(),
	}, nil
}

// Changed reports whether the buffer differs from what was loaded or last
// saved.
func (n *Note) Changed() bool { return n.Buffer.Version() != n.saved }

// Save writes the buffer back when it changed.
func (n *Note) Save() error {
	if !n.Changed() {
		return nil
	}
	if err := n.s.Handler.Write(n.Path, n.Buffer.Text()); err != nil {
		return fmt.Errorf("save %s: %w", n.Rel, err)
	}
	n.saved = n.Buffer.Version()
	Logger(n.s).Info("note saved", "path", n.Rel, "command", "headless")
	return nil
}

// Logger returns the state logger, or a discarding one when the state was
// built without logging.
func Logger(s *state.State) *slog.Logger {
	if s == nil || s.Logger == nil {
		return logging.Discard()
	}
	return s.Logger
}
