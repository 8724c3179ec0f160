package toggle

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/marknote/internal/document"
	"github.com/Paintersrp/marknote/internal/markdown"
	"github.com/Paintersrp/marknote/internal/state"
	cmdpkg "github.com/Paintersrp/marknote/pkg/cmd"
)

type options struct {
	lines  string
	cols   string
	dryRun bool
}

func NewCmdToggle(s *state.State) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "toggle [kind] [path]",
		Short: "Toggle Markdown formatting on a range of a note.",
		Long: heredoc.Doc(`
			Applies the same toggles as the editor shortcuts without opening
			the editor. Line toggles (list, ordered, checklist, h1, h2, h3)
			cover every line in --lines. Inline toggles (bold, italic) wrap
			the text between --cols on the first and last line.

			Lines and columns are 1-based. A single number selects one line,
			and the default column range covers the whole lines.
		`),
		Example: heredoc.Doc(`
			marknote toggle checklist ideas --lines 3:8
			marknote toggle bold ideas --lines 2 --cols 5:11
			marknote toggle h2 ideas --lines 1 --dry-run
		`),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, s, args[0], args[1], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.lines, "lines", "l", "1", "Line range as start:end.")
	cmd.Flags().StringVarP(&opts.cols, "cols", "c", "", "Column range as start:end, start on the first line and end on the last.")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Print the result instead of saving it.")

	return cmd
}

func run(cmd *cobra.Command, s *state.State, kindName, path string, opts options) error {
	kind, err := markdown.ParseToggleKind(kindName)
	if err != nil {
		return err
	}

	note, err := cmdpkg.LoadNote(cmd, s, path)
	if err != nil {
		return err
	}

	sel, err := selection(note.Buffer, opts.lines, opts.cols)
	if err != nil {
		return err
	}
	note.Buffer.SetSelection(sel)

	changed := note.Session.Toggle(kind)
	cmdpkg.Logger(s).Debug("toggle", "kind", kind, "path", note.Rel, "changed", changed)

	out := cmd.OutOrStdout()
	if opts.dryRun {
		fmt.Fprintln(out, note.Buffer.Text())
		return nil
	}
	if !changed {
		fmt.Fprintf(out, "No change to %s\n", note.Rel)
		return nil
	}
	if err := note.Save(); err != nil {
		return err
	}

	fmt.Fprintf(out, "Toggled %s in %s (lines %d-%d)\n", kind, note.Rel, sel.StartLine, sel.EndLine)
	return nil
}

// selection builds the range named by the line and column flags, rejecting
// lines outside the note.
func selection(buf *document.Buffer, lines, cols string) (document.Range, error) {
	first, last, err := ParseSpan(lines)
	if err != nil {
		return document.Range{}, fmt.Errorf("invalid --lines: %w", err)
	}
	if last < first {
		return document.Range{}, fmt.Errorf("invalid --lines: end %d is before start %d", last, first)
	}
	if last > buf.LineCount() {
		return document.Range{}, fmt.Errorf(
			"invalid --lines: line %d is past the end of the note (%d lines)",
			last,
			buf.LineCount(),
		)
	}

	r := document.Range{
		StartLine:   first,
		StartColumn: 1,
		EndLine:     last,
		EndColumn:   buf.LineMaxColumn(last),
	}
	if cols == "" {
		return r, nil
	}

	start, end, err := ParseSpan(cols)
	if err != nil {
		return document.Range{}, fmt.Errorf("invalid --cols: %w", err)
	}
	if start > buf.LineMaxColumn(first) || end > buf.LineMaxColumn(last) {
		return document.Range{}, fmt.Errorf("invalid --cols: %s is past the end of the line", cols)
	}
	if first == last && end < start {
		return document.Range{}, fmt.Errorf("invalid --cols: end %d is before start %d", end, start)
	}
	r.StartColumn = start
	r.EndColumn = end
	return r, nil
}

// ParseSpan reads "a:b", or a single "a" meaning "a:a". Both ends must be 1
// or greater.
func ParseSpan(value string) (int, int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, 0, fmt.Errorf("empty range")
	}

	startText, endText, found := strings.Cut(value, ":")
	if !found {
		endText = startText
	}

	start, err := strconv.Atoi(strings.TrimSpace(startText))
	if err != nil {
		return 0, 0, fmt.Errorf("%q is not a number", startText)
	}
	end, err := strconv.Atoi(strings.TrimSpace(endText))
	if err != nil {
		return 0, 0, fmt.Errorf("%q is not a number", endText)
	}
	if start < 1 || end < 1 {
		return 0, 0, fmt.Errorf("%q must be 1 or greater", value)
	}
	return start, end, nil
}
