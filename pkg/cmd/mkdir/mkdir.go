package mkdir

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Paintersrp/marknote/internal/state"
	cmdpkg "github.com/Paintersrp/marknote/pkg/cmd"
)

func NewCmdMkdir(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "mkdir [dir]",
		Short:   "Create a directory in the vault.",
		Long:    "This command creates a directory, and any missing parents, inside the vault.",
		Example: "marknote mkdir projects/2024",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cmdpkg.ResolveVaultPath(cmd, s, args[0])
			if err != nil {
				return err
			}

			created, err := s.Handler.CreateDir(dir)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s/\n", s.Handler.Relative(created))
			return nil
		},
	}

	return cmd
}
