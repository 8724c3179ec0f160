package ls

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Paintersrp/marknote/internal/handler"
	"github.com/Paintersrp/marknote/internal/state"
	cmdpkg "github.com/Paintersrp/marknote/pkg/cmd"
)

func NewCmdLs(s *state.State) *cobra.Command {
	var long bool

	cmd := &cobra.Command{
		Use:     "ls [dir]",
		Short:   "List a vault directory.",
		Long:    "This command lists the notes and directories in a vault directory, directories first.",
		Example: "marknote ls projects",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := s.Handler.VaultDir()
			if len(args) == 1 && args[0] != "." {
				resolved, err := cmdpkg.ResolveVaultPath(cmd, s, args[0])
				if err != nil {
					return err
				}
				dir = resolved
			}

			entries, err := s.Handler.List(dir)
			if err != nil {
				return err
			}

			printEntries(cmd.OutOrStdout(), entries, long)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&long, "long", "l", false, "Show modification times.")

	return cmd
}

func printEntries(w io.Writer, entries []handler.FileInfo, long bool) {
	for _, e := range entries {
		name := e.Name
		if e.IsDir {
			name += "/"
		}
		if long {
			fmt.Fprintf(w, "%s  %s\n", e.ModTime.Format("2006-01-02 15:04"), name)
			continue
		}
		fmt.Fprintln(w, name)
	}
}
