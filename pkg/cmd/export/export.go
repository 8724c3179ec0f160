package export

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/marknote/internal/export"
	"github.com/Paintersrp/marknote/internal/state"
	cmdpkg "github.com/Paintersrp/marknote/pkg/cmd"
)

type options struct {
	out    string
	dark   bool
	stdout bool
	title  string
}

func NewCmdExport(s *state.State) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:     "export [path]",
		Aliases: []string{"x"},
		Short:   "Export a note as a standalone HTML page.",
		Long: heredoc.Doc(`
			Renders a note to HTML with GitHub flavoured Markdown (tables,
			task lists, strikethrough, autolinks) and emoji shortcodes, and
			wraps it in a standalone page.

			Pages are written to the workspace export directory unless --out
			is given. A relative export directory is placed inside the vault.
		`),
		Example: heredoc.Doc(`
			marknote export ideas
			marknote export ideas --dark --out ~/Desktop
			marknote export ideas --stdout > ideas.html
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, s, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Directory to write the page to.")
	cmd.Flags().BoolVar(&opts.dark, "dark", false, "Use the dark page theme.")
	cmd.Flags().BoolVar(&opts.stdout, "stdout", false, "Print the page instead of writing a file.")
	cmd.Flags().StringVar(&opts.title, "title", "", "Page title, defaults to the note title.")

	return cmd
}

func run(cmd *cobra.Command, s *state.State, path string, opts options) error {
	file, err := cmdpkg.ResolveNotePath(cmd, s, path)
	if err != nil {
		return err
	}

	content, err := s.Handler.Read(file)
	if err != nil {
		return err
	}

	pageOpts := export.Options{Dark: opts.dark, Title: opts.title}
	if opts.stdout {
		page, err := export.Page([]byte(content), pageOpts)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), page)
		return nil
	}

	dest := exportDir(s, opts.out)
	out, err := export.WriteHTML([]byte(content), dest, filepath.Base(file), pageOpts)
	if err != nil {
		return err
	}

	cmdpkg.Logger(s).Info("note exported", "path", s.Handler.Relative(file), "out", out)
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s\n", s.Handler.Relative(file), out)
	return nil
}

func exportDir(s *state.State, flag string) string {
	dir := strings.TrimSpace(flag)
	if dir != "" {
		return dir
	}

	if s.Workspace != nil {
		dir = s.Workspace.ExportDir
	}
	if dir == "" {
		dir = "exports"
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(s.Handler.VaultDir(), dir)
}
