package check

import (
	"fmt"
	"strconv"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/marknote/internal/markdown"
	"github.com/Paintersrp/marknote/internal/state"
	cmdpkg "github.com/Paintersrp/marknote/pkg/cmd"
)

func NewCmdCheck(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [path] [line]",
		Short: "Check or uncheck the checklist item on a line.",
		Long: heredoc.Doc(`
			Flips the box of the checklist item on the given line, the same
			as clicking its glyph in the editor gutter. Lines that are not
			checklist items are reported and left alone.
		`),
		Example: heredoc.Doc(`
			marknote check todo 4
		`),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			line, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid line %q: %w", args[1], err)
			}
			return run(cmd, s, args[0], line)
		},
	}

	return cmd
}

func run(cmd *cobra.Command, s *state.State, path string, line int) error {
	note, err := cmdpkg.LoadNote(cmd, s, path)
	if err != nil {
		return err
	}

	if line < 1 || line > note.Buffer.LineCount() {
		return fmt.Errorf("line %d is outside %s (%d lines)", line, note.Rel, note.Buffer.LineCount())
	}

	if !note.Session.ToggleAtLine(line) {
		return fmt.Errorf("%s:%d is not a checklist item", note.Rel, line)
	}
	if err := note.Save(); err != nil {
		return err
	}

	status := markdown.Classify(note.Buffer.LineContent(line))
	fmt.Fprintf(cmd.OutOrStdout(), "%s:%d is now %s\n", note.Rel, line, status)
	return nil
}
