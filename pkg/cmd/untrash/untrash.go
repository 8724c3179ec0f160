package untrash

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/marknote/internal/state"
	cmdpkg "github.com/Paintersrp/marknote/pkg/cmd"
)

func NewCmdUntrash(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "untrash [path]",
		Short: "Restore a note from the trash.",
		Long: heredoc.Doc(`
			This command restores a note from the 'trash' subdirectory to
			the place it was trashed from. Paths are relative to the trash.

			Example:
			  marknote untrash ideas.md
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				_ = cmd.Help()
				return fmt.Errorf("path argument is required")
			}
			path, err := cmdpkg.ResolveVaultPath(cmd, s, args[0])
			if err != nil {
				return err
			}

			dest, err := s.Handler.Untrash(path)
			if err != nil {
				return err
			}

			rel := s.Handler.Relative(dest)
			cmdpkg.Logger(s).Info("restored", "path", rel)
			fmt.Fprintf(cmd.OutOrStdout(), "Restored %s\n", rel)
			return nil
		},
	}

	return cmd
}
