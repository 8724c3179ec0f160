package editor

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"

	"github.com/Paintersrp/marknote/internal/cache"
	"github.com/Paintersrp/marknote/internal/document"
	"github.com/Paintersrp/marknote/internal/handler"
	"github.com/Paintersrp/marknote/internal/logging"
	"github.com/Paintersrp/marknote/internal/markdown"
	"github.com/Paintersrp/marknote/internal/state"
)

const (
	noticeTTL       = 3 * time.Second
	previewDebounce = 250 * time.Millisecond
	// previewCacheSize bounds the rendered previews kept for undo and redo.
	previewCacheSize = 16
	headerHeight     = 1
	footerHeight     = 2
	tabText          = "  "
)

// Clipboard is the system clipboard seen by the editor.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) ReadAll() (string, error)   { return clipboard.ReadAll() }
func (systemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

// Options configures a Model.
type Options struct {
	Path            string
	Handler         *handler.FileHandler
	Logger          *slog.Logger
	Watcher         *state.VaultWatcher
	Clipboard       Clipboard
	Preview         bool
	AutosaveSeconds int
	Theme           string
	GlamourStyle    string
	HistoryLimit    int
	ColorProfile    termenv.Profile
}

// Model is the Bubble Tea editor for a single note.
type Model struct {
	buf     *document.Buffer
	session *markdown.Session
	file    noteFile

	handler   *handler.FileHandler
	logger    *slog.Logger
	watcher   *state.VaultWatcher
	clipboard Clipboard

	keys   keyMap
	help   help.Model
	styles styles

	width  int
	height int
	top    int
	left   int

	showPreview    bool
	preview        viewport.Model
	previewStyle   string
	previewProfile termenv.Profile
	renderer       *glamour.TermRenderer
	rendererWidth  int
	renderedAt     uint64
	rendered       *cache.LRU[previewKey, string]

	savedVersion uint64
	autosave     time.Duration

	notice    string
	noticeErr bool
	noticeSeq int

	confirmQuit bool
	quitting    bool
}

// New loads the note at opts.Path into a fresh editor. A missing file opens
// an empty buffer that is created on first save.
func New(opts Options) (*Model, error) {
	if opts.Handler == nil {
		return nil, errors.New("editor requires a file handler")
	}

	path, err := opts.Handler.ResolveNote(opts.Path)
	if err != nil {
		return nil, err
	}

	content := ""
	exists := true
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		exists = false
	case err != nil:
		return nil, fmt.Errorf("open %s: %w", opts.Path, err)
	default:
		content = string(data)
	}

	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Clipboard == nil {
		opts.Clipboard = systemClipboard{}
	}

	buf := document.New(content, document.Options{HistoryLimit: opts.HistoryLimit})
	m := &Model{
		buf:            buf,
		session:        markdown.NewSession(buf),
		handler:        opts.Handler,
		logger:         opts.Logger,
		watcher:        opts.Watcher,
		clipboard:      opts.Clipboard,
		keys:           newKeyMap(),
		help:           help.New(),
		styles:         newStyles(opts.Theme),
		showPreview:    opts.Preview,
		preview:        viewport.New(0, 0),
		previewStyle:   opts.GlamourStyle,
		previewProfile: opts.ColorProfile,
		savedVersion:   buf.Version(),
		autosave:       time.Duration(opts.AutosaveSeconds) * time.Second,
		renderedAt:     ^uint64(0),
		rendered:       cache.NewLRU[previewKey, string](previewCacheSize),
	}
	m.file = noteFile{
		path:   path,
		rel:    opts.Handler.Relative(path),
		exists: exists,
	}
	m.file.setOriginal(content, modTime(path))
	m.session.OnUserEdit = m.userEdited

	m.logger.Debug("editor opened", "path", m.file.rel, "lines", buf.LineCount(), "exists", exists)
	return m, nil
}

func (m *Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.watcher != nil {
		cmds = append(cmds, m.watcher.Start())
	}
	if m.showPreview {
		cmds = append(cmds, m.schedulePreview())
	}
	if !m.file.exists {
		cmds = append(cmds, m.notify("New note, save to create it", false))
	}
	return tea.Batch(cmds...)
}

// Text returns the current document.
func (m *Model) Text() string { return m.buf.Text() }

// Dirty reports unsaved changes.
func (m *Model) Dirty() bool { return m.buf.Version() != m.savedVersion }

// Path returns the absolute note path.
func (m *Model) Path() string { return m.file.path }

// userEdited runs for every buffer change that was not a programmatic load.
func (m *Model) userEdited(c document.Change) {
	m.confirmQuit = false
	m.logger.Debug("buffer changed", "source", c.Source, "version", c.VersionAfter)
}
