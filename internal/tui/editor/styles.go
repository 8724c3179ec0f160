package editor

import "github.com/charmbracelet/lipgloss"

type palette struct {
	accent    lipgloss.Color
	text      lipgloss.Color
	muted     lipgloss.Color
	selection lipgloss.Color
	border    lipgloss.Color
	errText   lipgloss.Color
}

var (
	darkPalette = palette{
		accent:    lipgloss.Color("#0AF"),
		text:      lipgloss.Color("#CCC"),
		muted:     lipgloss.Color("#556677"),
		selection: lipgloss.Color("#224"),
		border:    lipgloss.Color("#334455"),
		errText:   lipgloss.Color("#F55"),
	}
	lightPalette = palette{
		accent:    lipgloss.Color("#0366D6"),
		text:      lipgloss.Color("#24292E"),
		muted:     lipgloss.Color("#8A939D"),
		selection: lipgloss.Color("#C8E1FF"),
		border:    lipgloss.Color("#D0D7DE"),
		errText:   lipgloss.Color("#CB2431"),
	}
)

type styles struct {
	title      lipgloss.Style
	dirty      lipgloss.Style
	lineNumber lipgloss.Style
	currentNum lipgloss.Style
	glyphOpen  lipgloss.Style
	glyphDone  lipgloss.Style
	text       lipgloss.Style
	selected   lipgloss.Style
	cursor     lipgloss.Style
	preview    lipgloss.Style
	status     lipgloss.Style
	notice     lipgloss.Style
	errNotice  lipgloss.Style
	help       lipgloss.Style
}

func newStyles(theme string) styles {
	p := darkPalette
	if theme == "light" {
		p = lightPalette
	}

	return styles{
		title: lipgloss.NewStyle().
			Foreground(p.accent).
			Bold(true).
			Padding(0, 1),
		dirty: lipgloss.NewStyle().
			Foreground(p.errText).
			Bold(true),
		lineNumber: lipgloss.NewStyle().
			Foreground(p.muted),
		currentNum: lipgloss.NewStyle().
			Foreground(p.accent).
			Bold(true),
		glyphOpen: lipgloss.NewStyle().
			Foreground(p.accent),
		glyphDone: lipgloss.NewStyle().
			Foreground(p.muted),
		text: lipgloss.NewStyle().
			Foreground(p.text),
		selected: lipgloss.NewStyle().
			Foreground(p.accent).
			Background(p.selection),
		cursor: lipgloss.NewStyle().
			Reverse(true),
		preview: lipgloss.NewStyle().
			MarginLeft(1).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(p.border),
		status: lipgloss.NewStyle().
			Foreground(p.muted).
			Padding(0, 1),
		notice: lipgloss.NewStyle().
			Foreground(p.accent).
			Padding(0, 1),
		errNotice: lipgloss.NewStyle().
			Foreground(p.errText).
			Bold(true).
			Padding(0, 1),
		help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#cba6f7")).
			Padding(0, 1),
	}
}
