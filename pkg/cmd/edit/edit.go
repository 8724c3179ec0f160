package edit

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/marknote/internal/state"
	"github.com/Paintersrp/marknote/internal/tui/editor"
	cmdpkg "github.com/Paintersrp/marknote/pkg/cmd"
)

func NewCmdEdit(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "edit [path]",
		Aliases: []string{"e"},
		Short:   "Edit a note in the terminal editor.",
		Long: heredoc.Doc(`
			Opens a note from the vault in the full screen editor.
			The note extension is optional and a missing note is created
			on the first save.

			Press ctrl+g inside the editor for the full list of keys.
		`),
		Example: heredoc.Doc(`
			marknote edit ideas
			marknote edit projects/roadmap.md
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := cmdpkg.ResolveNotePath(cmd, s, args[0])
			if err != nil {
				return err
			}
			return editor.Run(s, path)
		},
	}

	return cmd
}
