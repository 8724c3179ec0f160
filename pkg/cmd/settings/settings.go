package settings

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/erikgeiser/promptkit/selection"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Paintersrp/marknote/internal/config"
	"github.com/Paintersrp/marknote/internal/state"
	cmdpkg "github.com/Paintersrp/marknote/pkg/cmd"
)

var errNoTerminal = errors.New("choosing a value needs an interactive terminal")

// choose shows a selection prompt on the terminal. Tests replace it.
var choose = func(prompt string, choices []string) (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", errNoTerminal
	}
	sel := selection.New(prompt, choices)
	sel.Filter = nil
	return sel.RunPrompt()
}

func NewCmdSettings(s *state.State) *cobra.Command {
	var pick bool

	cmd := &cobra.Command{
		Use:     "settings [key] [value]",
		Aliases: []string{"s"},
		Short:   "Show or change workspace settings.",
		Long: heredoc.Doc(`
			Without arguments every setting of the active workspace is
			printed. With a key the current value is printed, and with a key
			and a value the setting is validated and saved.

			Keys: vaultdir, preview, autosave_seconds, theme, glamour_style,
			export_dir, history_limit.

			--choose picks theme, glamour_style or preview from a menu.
		`),
		Example: heredoc.Doc(`
			marknote settings
			marknote settings theme light
			marknote settings autosave_seconds 30
			marknote settings glamour_style --choose
		`),
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch len(args) {
			case 0:
				return printAll(out, s)
			case 1:
				if pick {
					return pickValue(out, s, args[0])
				}
				value, err := s.Config.Get(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(out, value)
				return nil
			default:
				return setValue(out, s, args[0], args[1])
			}
		},
	}

	cmd.Flags().BoolVarP(&pick, "choose", "c", false, "Choose the value from a menu.")

	return cmd
}

func printAll(w io.Writer, s *state.State) error {
	fmt.Fprintf(w, "workspace: %s\n", s.Config.CurrentWorkspace)
	for _, key := range config.SettingKeys {
		value, err := s.Config.Get(key)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s: %s\n", key, value)
	}
	return nil
}

func setValue(w io.Writer, s *state.State, key, value string) error {
	if err := s.Config.Set(key, value); err != nil {
		return err
	}

	current, err := s.Config.Get(key)
	if err != nil {
		return err
	}
	cmdpkg.Logger(s).Info("setting changed", "key", key, "value", current)
	fmt.Fprintf(w, "%s set to %s\n", strings.ToLower(key), current)
	return nil
}

func pickValue(w io.Writer, s *state.State, key string) error {
	choices := Choices(key)
	if len(choices) == 0 {
		return fmt.Errorf("%q has no fixed set of values to choose from", key)
	}

	value, err := choose(fmt.Sprintf("Choose a value for %s.", key), choices)
	if err != nil {
		return err
	}
	return setValue(w, s, key, value)
}

// Choices lists the accepted values of settings with a fixed set of values.
func Choices(key string) []string {
	var set map[string]bool
	switch strings.ToLower(key) {
	case "theme":
		set = config.ValidThemes
	case "glamour_style", "style":
		set = config.ValidGlamourStyles
	case "preview":
		return []string{"true", "false"}
	default:
		return nil
	}

	out := make([]string, 0, len(set))
	for value := range set {
		out = append(out, value)
	}
	sort.Strings(out)
	return out
}
