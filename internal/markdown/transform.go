package markdown

import (
	"strconv"
	"strings"
)

// WrapText toggles an inline marker pair around text. It reports whether the
// pair was removed.
func WrapText(text, open, close string) (string, bool) {
	if text != "" && len(text) >= len(open)+len(close) &&
		strings.HasPrefix(text, open) && strings.HasSuffix(text, close) {
		return text[len(open) : len(text)-len(close)], true
	}
	return open + text + close, false
}

// PrefixLines applies the all-or-nothing prefix toggle for BulletList or
// Checklist.
func PrefixLines(kind ToggleKind, lines []string) []string {
	p, ok := prefixPatterns[kind]
	if !ok {
		return append([]string(nil), lines...)
	}

	decision := Decide(classifyPrefix(lines, p))
	out := make([]string, len(lines))
	for i, line := range lines {
		switch {
		case decision == RemoveAll:
			out[i] = p.strip(line)
		case isBlank(line):
			out[i] = line
		default:
			// Drop whatever list marker is already there so markers never stack.
			normalized := bulletPattern.strip(checklistPattern.strip(line))
			out[i] = p.prefix + normalized
		}
	}
	return out
}

// OrderedLines strips the numbering when every line is numbered, otherwise
// (re)numbers the non-blank lines from 1, leaving blank lines in place.
func OrderedLines(lines []string) []string {
	decision := Decide(classifyOrdered(lines))
	out := make([]string, len(lines))
	n := 0
	for i, line := range lines {
		switch {
		case decision == RemoveAll:
			out[i] = orderedPattern.strip(line)
		case isBlank(line):
			out[i] = line
		default:
			n++
			out[i] = strconv.Itoa(n) + ". " + orderedPattern.strip(line)
		}
	}
	return out
}

// HeadingLines toggles a heading level on each line independently: a line
// already at level loses its marker, any other line gets level's marker in
// place of its own.
func HeadingLines(lines []string, level int) []string {
	hashes := strings.Repeat("#", level) + " "
	out := make([]string, len(lines))
	for i, line := range lines {
		if isBlank(line) {
			out[i] = line
			continue
		}
		m := headingPattern.match.FindStringSubmatch(line)
		stripped := headingPattern.strip(line)
		if m != nil && len(m[1]) == level {
			out[i] = stripped
			continue
		}
		out[i] = hashes + stripped
	}
	return out
}

// ToggleLines applies a line-oriented kind to lines. Wrap kinds return the
// input unchanged.
func ToggleLines(kind ToggleKind, lines []string) []string {
	switch kind {
	case BulletList, Checklist:
		return PrefixLines(kind, lines)
	case OrderedList:
		return OrderedLines(lines)
	case Heading1, Heading2, Heading3:
		return HeadingLines(lines, kind.headingLevel())
	}
	return append([]string(nil), lines...)
}

// IsLineKind reports whether kind operates on whole lines.
func (k ToggleKind) IsLineKind() bool {
	_, wrap := wrapMarkers[k]
	return !wrap
}
