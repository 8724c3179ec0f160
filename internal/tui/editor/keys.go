package editor

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	bold      key.Binding
	italic    key.Binding
	link      key.Binding
	image     key.Binding
	codeBlock key.Binding
	list      key.Binding
	ordered   key.Binding
	checklist key.Binding
	check     key.Binding
	heading1  key.Binding
	heading2  key.Binding
	heading3  key.Binding
	save      key.Binding
	undo      key.Binding
	redo      key.Binding
	preview   key.Binding
	selectAll key.Binding
	copy      key.Binding
	cut       key.Binding
	paste     key.Binding
	help      key.Binding
	quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		bold: key.NewBinding(
			key.WithKeys("ctrl+b"),
			key.WithHelp("^b", "bold"),
		),
		italic: key.NewBinding(
			key.WithKeys("alt+i"),
			key.WithHelp("M-i", "italic"),
		),
		link: key.NewBinding(
			key.WithKeys("ctrl+k"),
			key.WithHelp("^k", "link"),
		),
		image: key.NewBinding(
			key.WithKeys("alt+g"),
			key.WithHelp("M-g", "image"),
		),
		codeBlock: key.NewBinding(
			key.WithKeys("alt+`"),
			key.WithHelp("M-`", "code block"),
		),
		list: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("^l", "list"),
		),
		ordered: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("^o", "numbered"),
		),
		checklist: key.NewBinding(
			key.WithKeys("alt+c"),
			key.WithHelp("M-c", "checklist"),
		),
		check: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("^x", "check item"),
		),
		heading1: key.NewBinding(
			key.WithKeys("alt+1"),
			key.WithHelp("M-1", "h1"),
		),
		heading2: key.NewBinding(
			key.WithKeys("alt+2"),
			key.WithHelp("M-2", "h2"),
		),
		heading3: key.NewBinding(
			key.WithKeys("alt+3"),
			key.WithHelp("M-3", "h3"),
		),
		save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("^s", "save"),
		),
		undo: key.NewBinding(
			key.WithKeys("ctrl+z"),
			key.WithHelp("^z", "undo"),
		),
		redo: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("^y", "redo"),
		),
		preview: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("^p", "preview"),
		),
		selectAll: key.NewBinding(
			key.WithKeys("alt+a"),
			key.WithHelp("M-a", "select all"),
		),
		copy: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("^c", "copy"),
		),
		cut: key.NewBinding(
			key.WithKeys("ctrl+w"),
			key.WithHelp("^w", "cut"),
		),
		paste: key.NewBinding(
			key.WithKeys("ctrl+v"),
			key.WithHelp("^v", "paste"),
		),
		help: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("^g", "help"),
		),
		quit: key.NewBinding(
			key.WithKeys("ctrl+q"),
			key.WithHelp("^q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.save, k.bold, k.list, k.checklist, k.check, k.preview, k.help, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.bold, k.italic, k.link, k.image, k.codeBlock},
		{k.list, k.ordered, k.checklist, k.check},
		{k.heading1, k.heading2, k.heading3, k.preview},
		{k.save, k.undo, k.redo, k.selectAll},
		{k.copy, k.cut, k.paste, k.help, k.quit},
	}
}
