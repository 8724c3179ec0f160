package rename

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/marknote/internal/state"
	cmdpkg "github.com/Paintersrp/marknote/pkg/cmd"
)

func NewCmdRename(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rename [path] [new-name]",
		Aliases: []string{"mv"},
		Short:   "Rename a note or directory in place.",
		Long: heredoc.Doc(`
			Gives a note or directory a new name in the same directory.
			A note keeps its extension when the new name has none. Names
			may not contain path separators.
		`),
		Example: heredoc.Doc(`
			marknote rename ideas.md brainstorm
		`),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := cmdpkg.ResolveVaultPath(cmd, s, args[0])
			if err != nil {
				return err
			}

			dest, err := s.Handler.Rename(path, args[1])
			if err != nil {
				return err
			}

			from, to := s.Handler.Relative(path), s.Handler.Relative(dest)
			cmdpkg.Logger(s).Info("renamed", "from", from, "to", to)
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed %s to %s\n", from, to)
			return nil
		},
	}

	return cmd
}
