package search

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/marknote/internal/search"
	"github.com/Paintersrp/marknote/internal/state"
	"github.com/Paintersrp/marknote/internal/tui/editor"
	cmdpkg "github.com/Paintersrp/marknote/pkg/cmd"
)

type options struct {
	tags []string
	edit bool
}

func NewCmdSearch(s *state.State) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:     "search [term]",
		Aliases: []string{"grep"},
		Short:   "Search note titles, tags and text.",
		Long: heredoc.Doc(`
			Searches every note in the vault, skipping the trash. Matching
			lines are printed as path:line so they can be opened directly.
			With only --tag the notes carrying all of the tags are listed.
		`),
		Example: heredoc.Doc(`
			marknote search parser
			marknote search --tag work --tag planning
			marknote search "release notes" --edit
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			term := ""
			if len(args) == 1 {
				term = args[0]
			}
			if strings.TrimSpace(term) == "" && len(opts.tags) == 0 {
				return fmt.Errorf("a search term or --tag is required")
			}

			results, err := run(s, search.Query{Term: term, Tags: opts.tags})
			if err != nil {
				return err
			}
			printResults(cmd, s, results)

			if opts.edit && len(results) > 0 {
				return editor.Run(s, results[0].Path)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&opts.tags, "tag", "t", nil, "Only search notes with this front matter tag.")
	cmd.Flags().BoolVarP(&opts.edit, "edit", "e", false, "Open the first match in the editor.")

	return cmd
}

func run(s *state.State, q search.Query) ([]search.Result, error) {
	if s == nil || s.Handler == nil {
		return nil, fmt.Errorf("state configuration is not initialized")
	}

	notes, err := s.Handler.Notes()
	if err != nil {
		return nil, err
	}

	idx := search.NewIndex(s.Handler.VaultDir())
	if err := idx.Build(notes); err != nil {
		return nil, err
	}

	results := idx.Search(q)
	cmdpkg.Logger(s).Debug("search finished", "term", q.Term, "tags", q.Tags, "notes", idx.Len(), "matches", len(results))
	return results, nil
}

func printResults(cmd *cobra.Command, s *state.State, results []search.Result) {
	out := cmd.OutOrStdout()
	if len(results) == 0 {
		fmt.Fprintln(out, "No matches.")
		return
	}

	for _, r := range results {
		rel := s.Handler.Relative(r.Path)
		if r.MatchFrom == search.FromMetadata {
			fmt.Fprintln(out, rel)
			continue
		}
		fmt.Fprintf(out, "%s:%d: %s\n", rel, r.Line, r.Snippet)
	}
}
