package editor

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/Paintersrp/marknote/internal/state"
)

// ErrNotTerminal is returned when the editor is started without a terminal.
var ErrNotTerminal = errors.New("the editor needs an interactive terminal")

// Run opens path from the active vault in the full screen editor and blocks
// until the user quits.
func Run(st *state.State, path string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNotTerminal
	}

	watcher, err := st.Watcher()
	if err != nil {
		st.Logger.Warn("vault watcher unavailable", "err", err)
		watcher = nil
	}

	ws := st.Workspace
	m, err := New(Options{
		Path:            path,
		Handler:         st.Handler,
		Logger:          st.Logger,
		Watcher:         watcher,
		Preview:         ws.Preview,
		AutosaveSeconds: ws.AutosaveSeconds,
		Theme:           ws.Theme,
		GlamourStyle:    ws.GlamourStyle,
		HistoryLimit:    ws.HistoryLimit,
		ColorProfile:    termenv.EnvColorProfile(),
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if err != nil {
		return err
	}

	if fm, ok := final.(*Model); ok && fm.Dirty() {
		st.Logger.Warn("quit with unsaved changes", "path", fm.file.rel)
	}
	return nil
}
