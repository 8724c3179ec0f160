package tasks

import (
	"fmt"
	"io"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/marknote/internal/parser"
	"github.com/Paintersrp/marknote/internal/state"
	cmdpkg "github.com/Paintersrp/marknote/pkg/cmd"
)

type listOptions struct {
	status string
	byDue  bool
}

func NewCmdTasks(s *state.State) *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:     "tasks [path]",
		Aliases: []string{"t"},
		Short:   "List checklist items from a note or the whole vault.",
		Long: heredoc.Doc(`
			Scans notes for checklist items and prints each one with its
			location. Items inside code blocks are ignored.

			Items may carry metadata: @due(friday), @priority(high), #tags
			and [[links]]. Due dates accept natural formats such as
			2024-05-01, "May 1 2024", today or tomorrow.
		`),
		Example: heredoc.Doc(`
			marknote tasks
			marknote tasks projects/roadmap --status open --due
			marknote tasks add todo "Renew passport @due(2024-06-01)"
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runList(cmd, s, path, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.status, "status", "s", "all", "Filter by status: all, open or done.")
	cmd.Flags().BoolVarP(&opts.byDue, "due", "d", false, "Sort by due date instead of location.")

	cmd.AddCommand(newCmdTaskAdd(s))

	return cmd
}

func runList(cmd *cobra.Command, s *state.State, path string, opts listOptions) error {
	var files []string
	if path != "" {
		file, err := cmdpkg.ResolveNotePath(cmd, s, path)
		if err != nil {
			return err
		}
		files = []string{file}
	} else {
		notes, err := s.Handler.Notes()
		if err != nil {
			return fmt.Errorf("error listing notes: %w", err)
		}
		files = notes
	}

	p := parser.NewParser()
	if err := p.ParseFiles(files); err != nil {
		return err
	}

	tasks, err := parser.FilterTasks(p.Tasks, opts.status)
	if err != nil {
		return err
	}
	for i := range tasks {
		tasks[i].Path = s.Handler.Relative(tasks[i].Path)
	}
	parser.SortTasks(tasks, opts.byDue)

	cmdpkg.Logger(s).Debug("tasks listed", "files", len(files), "tasks", len(tasks))
	printTasks(cmd.OutOrStdout(), tasks)
	return nil
}

func printTasks(w io.Writer, tasks []parser.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, "No tasks found.")
		return
	}

	for _, task := range tasks {
		fmt.Fprintln(w, parser.FormatTask(task))
	}

	open, done := parser.Summary(tasks)
	fmt.Fprintf(w, "\n%d open, %d done\n", open, done)
}
