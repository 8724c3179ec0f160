package markdown

// LineState is the classification of one selected line for a line toggle.
type LineState int

const (
	LineBlank LineState = iota
	LineMarked
	LineUnmarked
)

type Decision int

const (
	AddAll Decision = iota
	RemoveAll
)

func (d Decision) String() string {
	if d == RemoveAll {
		return "remove"
	}
	return "add"
}

// Decide returns RemoveAll when every non-blank line already carries the
// markup and AddAll otherwise. Blank lines never vote. A range of only blank
// lines yields RemoveAll, which leaves them untouched.
func Decide(states []LineState) Decision {
	for _, s := range states {
		if s == LineUnmarked {
			return AddAll
		}
	}
	return RemoveAll
}

func classifyPrefix(lines []string, p linePattern) []LineState {
	states := make([]LineState, len(lines))
	for i, line := range lines {
		switch {
		case isBlank(line):
			states[i] = LineBlank
		case p.has(line):
			states[i] = LineMarked
		default:
			states[i] = LineUnmarked
		}
	}
	return states
}

// classifyOrdered marks every numbered line regardless of its number. A
// blank line counts as unmarked, so a range containing one is renumbered
// rather than stripped.
func classifyOrdered(lines []string) []LineState {
	states := make([]LineState, len(lines))
	for i, line := range lines {
		if orderedPattern.has(line) {
			states[i] = LineMarked
		} else {
			states[i] = LineUnmarked
		}
	}
	return states
}
