package preview

import (
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Paintersrp/marknote/internal/config"
	"github.com/Paintersrp/marknote/internal/export"
	"github.com/Paintersrp/marknote/internal/state"
	cmdpkg "github.com/Paintersrp/marknote/pkg/cmd"
)

const fallbackWidth = 80

func NewCmdPreview(s *state.State) *cobra.Command {
	var style string
	var width int

	cmd := &cobra.Command{
		Use:     "preview [path]",
		Aliases: []string{"p"},
		Short:   "Render a note in the terminal.",
		Long: heredoc.Doc(`
			Renders a note with glamour at the width of the terminal, using
			the workspace glamour style unless --style is given. Output that
			is not a terminal is rendered without colour.
		`),
		Example: heredoc.Doc(`
			marknote preview ideas
			marknote preview ideas --style light --width 60
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := cmdpkg.ResolveNotePath(cmd, s, args[0])
			if err != nil {
				return err
			}
			content, err := s.Handler.Read(file)
			if err != nil {
				return err
			}

			if style == "" && s.Workspace != nil {
				style = s.Workspace.GlamourStyle
			}
			if style != "" {
				if err := config.ValidateGlamourStyle(style); err != nil {
					return err
				}
			}

			tty := term.IsTerminal(int(os.Stdout.Fd()))
			out, err := export.RenderTerminal([]byte(content), export.TerminalOptions{
				Style:   style,
				Width:   outputWidth(width, tty),
				Profile: profile(tty),
			})
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&style, "style", "", "Glamour style to render with.")
	cmd.Flags().IntVar(&width, "width", 0, "Wrap width, defaults to the terminal width.")

	return cmd
}

func outputWidth(flag int, tty bool) int {
	if flag > 0 {
		return flag
	}
	if tty {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			return w
		}
	}
	return fallbackWidth
}

func profile(tty bool) termenv.Profile {
	if !tty {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}
