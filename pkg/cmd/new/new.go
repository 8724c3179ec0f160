package new

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Paintersrp/marknote/internal/parser"
	"github.com/Paintersrp/marknote/internal/state"
	"github.com/Paintersrp/marknote/internal/templater"
	"github.com/Paintersrp/marknote/internal/tui/editor"
	cmdpkg "github.com/Paintersrp/marknote/pkg/cmd"
)

// TemplateDir holds user templates, relative to the vault root.
const TemplateDir = ".templates"

type options struct {
	tags     []string
	edit     bool
	template string
}

func NewCmdNew(s *state.State) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:     "new [name]",
		Aliases: []string{"n"},
		Short:   "Create a new note.",
		Long: heredoc.Doc(`
			Creates a note in the vault from a template with optional front
			matter tags. Existing notes are never overwritten.

			Built-in templates are note, checklist, daily and meeting. Files
			named <name>.tmpl in the vault's .templates directory add new
			templates or replace the built-in ones.
		`),
		Example: heredoc.Doc(`
			marknote new ideas
			marknote new projects/roadmap --tags work,planning --edit
			marknote new standup --template meeting
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := run(cmd, s, args[0], opts)
			if err != nil {
				return err
			}
			if opts.edit {
				return editor.Run(s, path)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&opts.tags, "tags", "t", nil, "Tags for the note front matter.")
	cmd.Flags().BoolVarP(&opts.edit, "edit", "e", false, "Open the note in the editor after creating it.")
	cmd.Flags().StringVarP(&opts.template, "template", "T", templater.DefaultTemplate, "Template for the note body.")

	return cmd
}

func run(cmd *cobra.Command, s *state.State, name string, opts options) (string, error) {
	path, err := cmdpkg.ResolveNotePath(cmd, s, name)
	if err != nil {
		return "", err
	}

	tmpl, err := templater.NewTemplater(filepath.Join(s.Handler.VaultDir(), TemplateDir))
	if err != nil {
		return "", err
	}
	if !tmpl.Has(opts.template) {
		return "", fmt.Errorf(
			"unknown template %q, available: %s",
			opts.template,
			strings.Join(tmpl.Names(), ", "),
		)
	}

	title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	content, err := Render(tmpl, opts.template, title, opts.tags)
	if err != nil {
		return "", err
	}

	created, err := s.Handler.Create(path, content)
	if err != nil {
		return "", err
	}

	rel := s.Handler.Relative(created)
	cmdpkg.Logger(s).Info("note created", "path", rel)
	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", rel)
	return created, nil
}

// Content is the initial text of a new note using the default template.
func Content(title string, tags []string) (string, error) {
	tmpl, err := templater.NewTemplater("")
	if err != nil {
		return "", err
	}
	return Render(tmpl, templater.DefaultTemplate, title, tags)
}

// Render builds a note from the named template. Tags add a front matter
// block above the template output.
func Render(tmpl *templater.Templater, name, title string, tags []string) (string, error) {
	var b strings.Builder

	var clean []string
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			clean = append(clean, tag)
		}
	}
	if len(clean) > 0 {
		header, err := yaml.Marshal(parser.FrontMatter{Title: title, Tags: clean})
		if err != nil {
			return "", fmt.Errorf("encode front matter: %w", err)
		}
		b.WriteString("---\n")
		b.Write(header)
		b.WriteString("---\n\n")
	}

	body, err := tmpl.Execute(name, templater.NewData(title, clean))
	if err != nil {
		return "", err
	}
	b.WriteString(body)
	return b.String(), nil
}
