// Package templater renders the starting text of new notes.
package templater

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
	"time"
)

//go:embed templates
var embeddedTemplates embed.FS

// DefaultTemplate is used when no template is named.
const DefaultTemplate = "note"

// Ext is the file extension of template files.
const Ext = ".tmpl"

var ErrUnknownTemplate = errors.New("template not found")

type SingleTemplate struct {
	FilePath string
	Content  string
}

type TemplateMap map[string]SingleTemplate

// Templater manages a collection of templates.
type Templater struct {
	templates TemplateMap
}

// TemplateData is passed to templates during rendering.
type TemplateData struct {
	Title string
	Date  string
	Tags  []string
}

// NewData fills the date with today's date.
func NewData(title string, tags []string) TemplateData {
	return TemplateData{
		Title: title,
		Date:  time.Now().Format("2006-01-02"),
		Tags:  tags,
	}
}

// NewTemplater loads the templates in userDir, then the built-in ones.
// User templates take precedence. A missing userDir is not an error.
func NewTemplater(userDir string) (*Templater, error) {
	tmplMap := make(TemplateMap)

	if userDir != "" {
		info, err := os.Stat(userDir)
		switch {
		case err == nil && info.IsDir():
			if err := tmplMap.loadTemplates(userDir); err != nil {
				return nil, err
			}
		case err != nil && !errors.Is(err, fs.ErrNotExist):
			return nil, err
		}
	}

	if err := tmplMap.loadEmbeddedTemplates(embeddedTemplates); err != nil {
		return nil, err
	}

	return &Templater{templates: tmplMap}, nil
}

// Names lists the available templates in sorted order.
func (t *Templater) Names() []string {
	names := make([]string, 0, len(t.templates))
	for name := range t.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a template with the given name exists.
func (t *Templater) Has(name string) bool {
	_, ok := t.templates[name]
	return ok
}

// Execute renders the named template with data.
func (t *Templater) Execute(templateName string, data TemplateData) (string, error) {
	tmplData, ok := t.templates[templateName]
	if !ok {
		return "", fmt.Errorf("%q: %w", templateName, ErrUnknownTemplate)
	}

	tmpl, err := template.New(templateName).
		Funcs(template.FuncMap{"join": strings.Join}).
		Parse(tmplData.Content)
	if err != nil {
		return "", fmt.Errorf("parse template %s: %w", tmplData.FilePath, err)
	}

	var rendered bytes.Buffer
	if err := tmpl.Execute(&rendered, data); err != nil {
		return "", fmt.Errorf("render template %s: %w", templateName, err)
	}

	return rendered.String(), nil
}

func (m TemplateMap) loadEmbeddedTemplates(embeddedFS fs.FS) error {
	return fs.WalkDir(
		embeddedFS,
		"templates",
		func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || filepath.Ext(d.Name()) != Ext {
				return nil
			}

			name := strings.TrimSuffix(d.Name(), Ext)
			if _, exists := m[name]; exists {
				return nil
			}

			data, err := fs.ReadFile(embeddedFS, path)
			if err != nil {
				return err
			}
			m[name] = SingleTemplate{FilePath: path, Content: string(data)}
			return nil
		},
	)
}

func (m TemplateMap) loadTemplates(dirPath string) error {
	return filepath.WalkDir(
		dirPath,
		func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || filepath.Ext(path) != Ext {
				return nil
			}

			name := strings.TrimSuffix(d.Name(), Ext)
			if _, exists := m[name]; exists {
				return nil
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			m[name] = SingleTemplate{FilePath: path, Content: string(data)}
			return nil
		},
	)
}
