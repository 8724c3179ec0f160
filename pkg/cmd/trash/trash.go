package trash

import (
	"errors"
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/erikgeiser/promptkit/confirmation"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Paintersrp/marknote/internal/state"
	cmdpkg "github.com/Paintersrp/marknote/pkg/cmd"
)

// ErrNotConfirmed is returned when trashing needs a confirmation that cannot
// be asked for.
var ErrNotConfirmed = errors.New("confirmation required, pass --yes to trash without a prompt")

// confirm asks the user on the terminal. Tests replace it.
var confirm = func(prompt string) (bool, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false, ErrNotConfirmed
	}
	return confirmation.New(prompt, confirmation.No).RunPrompt()
}

func NewCmdTrash(s *state.State) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "trash [path]",
		Aliases: []string{"rm"},
		Short:   "Move a note to the trash.",
		Long: heredoc.Doc(`
			This command moves a note or directory to the 'trash'
			subdirectory of the vault, keeping its relative path so it can be
			restored with untrash. You are asked to confirm unless --yes is
			given.

			Example:
			  marknote trash ideas.md
			  marknote trash old-projects --yes
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
			rel := s.Handler.Relative(path)

			if !yes {
				ok, err := confirm(fmt.Sprintf("Move %s to the trash?", rel))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
			}

			dest, err := s.Handler.Trash(path)
			if err != nil {
				return err
			}

			cmdpkg.Logger(s).Info("trashed", "path", rel, "dest", s.Handler.Relative(dest))
			fmt.Fprintf(cmd.OutOrStdout(), "Moved %s to %s\n", rel, s.Handler.Relative(dest))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt.")

	return cmd
}
