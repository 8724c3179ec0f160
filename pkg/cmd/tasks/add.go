package tasks

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Paintersrp/marknote/internal/state"
	cmdpkg "github.com/Paintersrp/marknote/pkg/cmd"
)

const taskSection = "## Tasks"

var priorities = map[string]bool{"high": true, "medium": true, "low": true}

func newCmdTaskAdd(s *state.State) *cobra.Command {
	var priority string
	var due string

	cmd := &cobra.Command{
		Use:   "add [path] [task]",
		Short: "Append a checklist item to the Tasks section of a note.",
		Long: `Appends "- [ ] task" to the "## Tasks" section of a note, adding the
section at the end when it is missing. A missing note is created.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			task := strings.TrimSpace(strings.Join(args[1:], " "))
			if task == "" {
				return fmt.Errorf("task text cannot be empty")
			}

			priority = strings.ToLower(strings.TrimSpace(priority))
			if priority != "" && !priorities[priority] {
				return fmt.Errorf("invalid priority %q: use high, medium or low", priority)
			}
			if priority != "" {
				task += fmt.Sprintf(" @priority(%s)", priority)
			}
			if due = strings.TrimSpace(due); due != "" {
				task += fmt.Sprintf(" @due(%s)", due)
			}

			return runAdd(cmd, s, args[0], task)
		},
	}

	cmd.Flags().StringVarP(&priority, "priority", "p", "", "Priority of the task (high, medium, low).")
	cmd.Flags().StringVar(&due, "due", "", "Due date of the task.")

	return cmd
}

func runAdd(cmd *cobra.Command, s *state.State, path, task string) error {
	file, err := cmdpkg.ResolveNotePath(cmd, s, path)
	if err != nil {
		return err
	}

	content, err := s.Handler.Read(file)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	next := AppendTask(content, task)
	if err := s.Handler.Write(file, next); err != nil {
		return err
	}

	rel := s.Handler.Relative(file)
	cmdpkg.Logger(s).Info("task added", "path", rel)
	fmt.Fprintf(cmd.OutOrStdout(), "Task added to %s\n", rel)
	return nil
}

// AppendTask inserts an unchecked item after the last line of the Tasks
// section, ahead of any blank lines that separate it from the next heading.
func AppendTask(content, task string) string {
	entry := "- [ ] " + task
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")

	start := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == taskSection {
			start = i
			break
		}
	}

	if start == -1 {
		trimmed := strings.TrimRight(content, "\n")
		if trimmed == "" {
			return taskSection + "\n" + entry + "\n"
		}
		return trimmed + "\n\n" + taskSection + "\n" + entry + "\n"
	}

	end := len(lines)
	for i := start + 1; i < len(lines); i++ {
		if isHeading(lines[i]) {
			end = i
			break
		}
	}

	insert := end
	for insert > start+1 && strings.TrimSpace(lines[insert-1]) == "" {
		insert--
	}

	out := make([]string, 0, len(lines)+1)
	out = append(out, lines[:insert]...)
	out = append(out, entry)
	out = append(out, lines[insert:]...)
	return strings.Join(out, "\n")
}

// isHeading matches ATX headings of level one or two, which end the section.
func isHeading(line string) bool {
	return strings.HasPrefix(line, "# ") || strings.HasPrefix(line, "## ")
}
