package open

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/marknote/internal/fzf"
	"github.com/Paintersrp/marknote/internal/state"
	"github.com/Paintersrp/marknote/internal/tui/editor"
)

func NewCmdOpen(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "open [query]",
		Aliases: []string{"o"},
		Short:   "Pick a note with a fuzzy finder and edit it.",
		Long: heredoc.Doc(`
			Lists every note in the vault in a fuzzy finder with a rendered
			preview. The chosen note opens in the editor. An optional query
			seeds the finder.
		`),
		Example: heredoc.Doc(`
			marknote open
			marknote open roadmap
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			finder := fzf.NewFuzzyFinder(s.Handler, "Select a note to edit.", s.Workspace.GlamourStyle)

			path, err := finder.Run(strings.Join(args, " "))
			if errors.Is(err, fzf.ErrNoSelection) {
				fmt.Fprintln(cmd.OutOrStdout(), "No note selected.")
				return nil
			}
			if err != nil {
				return err
			}

			return editor.Run(s, path)
		},
	}

	return cmd
}
