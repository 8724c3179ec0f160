package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapText(t *testing.T) {
	tests := map[string]struct {
		text      string
		open      string
		want      string
		unwrapped bool
	}{
		"wraps plain":          {text: "word", open: "**", want: "**word**"},
		"unwraps bold":         {text: "**word**", open: "**", want: "word", unwrapped: true},
		"empty inserts pair":   {text: "", open: "**", want: "****"},
		"bare pair unwraps":    {text: "****", open: "**", want: "", unwrapped: true},
		"too short to unwrap":  {text: "**", open: "**", want: "******"},
		"italic inside bold":   {text: "**word**", open: "*", want: "*word*", unwrapped: true},
		"single star wraps":    {text: "*", open: "*", want: "***"},
		"only one side marked": {text: "**word", open: "**", want: "****word**"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, unwrapped := WrapText(tc.text, tc.open, tc.open)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.unwrapped, unwrapped)
		})
	}
}

func TestWrapRoundTrip(t *testing.T) {
	for _, text := range []string{"", "x", "two words", "multi\nline"} {
		wrapped, _ := WrapText(text, "**", "**")
		back, unwrapped := WrapText(wrapped, "**", "**")
		assert.True(t, unwrapped)
		assert.Equal(t, text, back)
	}
}

func TestDecide(t *testing.T) {
	assert.Equal(t, RemoveAll, Decide([]LineState{LineMarked, LineBlank, LineMarked}))
	assert.Equal(t, AddAll, Decide([]LineState{LineMarked, LineUnmarked, LineMarked}))
	assert.Equal(t, RemoveAll, Decide([]LineState{LineBlank}))
	assert.Equal(t, RemoveAll, Decide(nil))
}

func TestPrefixLinesMixedBulletsAddsToAll(t *testing.T) {
	got := PrefixLines(BulletList, []string{"- a", "b", "- c"})
	assert.Equal(t, []string{"- a", "- b", "- c"}, got)
}

func TestPrefixLinesRemovesWhenAllMarked(t *testing.T) {
	got := PrefixLines(BulletList, []string{"- a", "", "  * b"})
	assert.Equal(t, []string{"a", "", "b"}, got)
}

func TestPrefixLinesLeavesBlankLines(t *testing.T) {
	got := PrefixLines(BulletList, []string{"a", "   ", "b"})
	assert.Equal(t, []string{"- a", "   ", "- b"}, got)
}

func TestPrefixLinesNeverStacks(t *testing.T) {
	got := PrefixLines(Checklist, []string{"- a", "* b", "c"})
	assert.Equal(t, []string{"- [ ] a", "- [ ] b", "- [ ] c"}, got)

	got = PrefixLines(BulletList, []string{"- [x] done", "plain"})
	assert.Equal(t, []string{"- done", "- plain"}, got)
}

func TestPrefixLinesChecklistRemovesCheckedAndUnchecked(t *testing.T) {
	got := PrefixLines(Checklist, []string{"- [ ] a", "- [x] b", "- [X] c"})
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestLineTogglesAreIdempotent(t *testing.T) {
	tests := map[ToggleKind][][]string{
		BulletList: {
			{"alpha", "beta", "", "gamma"},
			{"single"},
			{"", ""},
			{"- a", "- b"},
			{"- [ ] a", "- [x] b"},
		},
		Checklist: {
			{"alpha", "beta", "", "gamma"},
			{"single"},
			{"", ""},
			{"- [ ] a", "- [ ] b"},
		},
		OrderedList: {
			{"alpha", "beta", "gamma"},
			{"single"},
			{"", ""},
			{"1. a", "2. b"},
		},
	}

	for kind, inputs := range tests {
		for _, lines := range inputs {
			once := ToggleLines(kind, lines)
			twice := ToggleLines(kind, once)
			assert.Equal(t, lines, twice, "%s on %q", kind, lines)
		}
	}
}

func TestChecklistOverBulletsConvertsThenStrips(t *testing.T) {
	once := PrefixLines(Checklist, []string{"- a", "- b"})
	assert.Equal(t, []string{"- [ ] a", "- [ ] b"}, once)

	twice := PrefixLines(Checklist, once)
	assert.Equal(t, []string{"a", "b"}, twice)
}

func TestChecklistAddResetsCheckedItems(t *testing.T) {
	got := PrefixLines(Checklist, []string{"- [x] done", "todo"})
	assert.Equal(t, []string{"- [ ] done", "- [ ] todo"}, got)
}

func TestOrderedLinesStripsAnyNumbering(t *testing.T) {
	tests := map[string]struct {
		lines []string
		want  []string
	}{
		"non sequential":  {lines: []string{"3. x", "7. y"}, want: []string{"x", "y"}},
		"single line":     {lines: []string{"2. a"}, want: []string{"a"}},
		"sequential":      {lines: []string{"1. a", "  2.  b"}, want: []string{"a", "b"}},
		"indented number": {lines: []string{"  10. ten"}, want: []string{"ten"}},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, OrderedLines(tc.lines))
		})
	}
}

func TestOrderedLinesRenumbers(t *testing.T) {
	got := OrderedLines([]string{"3. x", "7. y", ""})
	assert.Equal(t, []string{"1. x", "2. y", ""}, got)

	got = OrderedLines([]string{"x", "5. y"})
	assert.Equal(t, []string{"1. x", "2. y"}, got)
}

func TestOrderedLinesSkipsBlankWhenNumbering(t *testing.T) {
	got := OrderedLines([]string{"a", "", "b", "- c"})
	assert.Equal(t, []string{"1. a", "", "2. b", "3. - c"}, got)
}

func TestOrderedLinesBlankLineBlocksRemoval(t *testing.T) {
	got := OrderedLines([]string{"1. a", "", "  2.  b"})
	assert.Equal(t, []string{"1. a", "", "2. b"}, got)
}

func TestHeadingLines(t *testing.T) {
	assert.Equal(t, []string{"Title"}, HeadingLines([]string{"## Title"}, 2))
	assert.Equal(t, []string{"# Title"}, HeadingLines([]string{"## Title"}, 1))
	assert.Equal(t, []string{"### Title"}, HeadingLines([]string{"Title"}, 3))
}

func TestHeadingLinesPerLine(t *testing.T) {
	lines := []string{"# one", "## two", "three", ""}

	once := HeadingLines(lines, 2)
	assert.Equal(t, []string{"## one", "two", "## three", ""}, once)

	twice := HeadingLines(once, 2)
	assert.Equal(t, []string{"one", "## two", "three", ""}, twice)
}

func TestHeadingLinesMixedLevelsRoundTripPerLine(t *testing.T) {
	lines := []string{"# one", "## two", "### three", "four", "", "###### six"}

	for level := 1; level <= 3; level++ {
		once := HeadingLines(lines, level)
		twice := HeadingLines(once, level)
		marker := strings.Repeat("#", level) + " "

		for i, line := range lines {
			text := headingPattern.strip(line)
			switch {
			case isBlank(line):
				assert.Equal(t, line, once[i], "level %d line %d", level, i)
				assert.Equal(t, line, twice[i], "level %d line %d", level, i)
			case line == marker+text:
				assert.Equal(t, text, once[i], "level %d line %d", level, i)
				assert.Equal(t, line, twice[i], "level %d line %d", level, i)
			default:
				assert.Equal(t, marker+text, once[i], "level %d line %d", level, i)
				assert.Equal(t, text, twice[i], "level %d line %d", level, i)
			}
		}
	}
}

func TestHeadingLinesStripsDeepHeadings(t *testing.T) {
	got := HeadingLines([]string{"  ###### deep"}, 1)
	assert.Equal(t, []string{"# deep"}, got)
}

func TestParseToggleKind(t *testing.T) {
	for _, kind := range ToggleKinds() {
		got, err := ParseToggleKind(kind.String())
		assert.NoError(t, err)
		assert.Equal(t, kind, got)
	}

	got, err := ParseToggleKind("TODO")
	assert.NoError(t, err)
	assert.Equal(t, Checklist, got)

	_, err = ParseToggleKind("strike")
	assert.Error(t, err)
}
