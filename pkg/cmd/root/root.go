package root

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Paintersrp/marknote/internal/constants"
	"github.com/Paintersrp/marknote/internal/state"
	"github.com/Paintersrp/marknote/pkg/cmd/check"
	"github.com/Paintersrp/marknote/pkg/cmd/edit"
	"github.com/Paintersrp/marknote/pkg/cmd/export"
	"github.com/Paintersrp/marknote/pkg/cmd/initialize"
	"github.com/Paintersrp/marknote/pkg/cmd/ls"
	"github.com/Paintersrp/marknote/pkg/cmd/mkdir"
	"github.com/Paintersrp/marknote/pkg/cmd/new"
	"github.com/Paintersrp/marknote/pkg/cmd/open"
	"github.com/Paintersrp/marknote/pkg/cmd/preview"
	"github.com/Paintersrp/marknote/pkg/cmd/rename"
	"github.com/Paintersrp/marknote/pkg/cmd/search"
	"github.com/Paintersrp/marknote/pkg/cmd/settings"
	"github.com/Paintersrp/marknote/pkg/cmd/tasks"
	"github.com/Paintersrp/marknote/pkg/cmd/toggle"
	"github.com/Paintersrp/marknote/pkg/cmd/trash"
	"github.com/Paintersrp/marknote/pkg/cmd/untrash"
	"github.com/Paintersrp/marknote/pkg/cmd/workspace"
)

// skipStateAnnotation marks commands that run before a vault is configured.
const skipStateAnnotation = "marknote/skip-state"

// Loader builds the application state for the selected workspace.
type Loader func(workspace string) (*state.State, error)

// NewCmdRoot wires every subcommand to s. The state is filled in by load
// right before a subcommand runs, so commands such as init work without a
// configured vault. The caller closes s after Execute.
func NewCmdRoot(s *state.State, load Loader) *cobra.Command {
	var workspaceName string
	var verbose bool

	cmd := &cobra.Command{
		Use:     "marknote",
		Aliases: []string{"mn"},
		Short:   "Edit Markdown notes in the terminal.",
		Long: heredoc.Doc(`
			marknote is a terminal Markdown editor for a vault of notes.

			It toggles bold, italic, lists, headings and checklists with a
			single key, keeps checklist boxes clickable in the gutter and
			shows a live preview next to the text.

			  marknote init ~/notes
			  marknote edit ideas
			  marknote toggle checklist ideas --lines 3:8
		`),
		Version:       constants.Version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if skipsState(cmd) {
				return nil
			}
			if load == nil || s.Config != nil {
				return nil
			}

			loaded, err := load(workspaceName)
			if err != nil {
				return err
			}
			*s = *loaded
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(
		&workspaceName,
		"workspace",
		"w",
		"",
		"Workspace to use for this command.",
	)
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Write debug output to the log file.")
	viper.BindPFlag("verbose", cmd.PersistentFlags().Lookup("verbose"))

	initCmd := initialize.NewCmdInit(s)
	initCmd.Annotations = map[string]string{skipStateAnnotation: "true"}

	cmd.AddCommand(
		initCmd,
		edit.NewCmdEdit(s),
		open.NewCmdOpen(s),
		toggle.NewCmdToggle(s),
		check.NewCmdCheck(s),
		tasks.NewCmdTasks(s),
		export.NewCmdExport(s),
		preview.NewCmdPreview(s),
		new.NewCmdNew(s),
		mkdir.NewCmdMkdir(s),
		rename.NewCmdRename(s),
		trash.NewCmdTrash(s),
		untrash.NewCmdUntrash(s),
		ls.NewCmdLs(s),
		search.NewCmdSearch(s),
		settings.NewCmdSettings(s),
		workspace.NewCmdWorkspace(s),
	)

	return cmd
}

func skipsState(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if _, ok := c.Annotations[skipStateAnnotation]; ok {
			return true
		}
		switch c.Name() {
		case "help", "completion":
			return true
		}
	}
	return false
}
