// Package markdown implements structural Markdown editing on top of a text
// widget: inline wrap toggles, line-prefix toggles (lists, checklists,
// headings) and the checklist gutter synchronizer.
package markdown

import (
	"fmt"
	"regexp"
	"strings"
)

type ToggleKind int

const (
	Bold ToggleKind = iota
	Italic
	BulletList
	OrderedList
	Checklist
	Heading1
	Heading2
	Heading3
)

var kindNames = map[ToggleKind]string{
	Bold:        "bold",
	Italic:      "italic",
	BulletList:  "list",
	OrderedList: "ordered",
	Checklist:   "checklist",
	Heading1:    "h1",
	Heading2:    "h2",
	Heading3:    "h3",
}

func (k ToggleKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ToggleKind(%d)", int(k))
}

// ToggleKinds lists every kind in declaration order.
func ToggleKinds() []ToggleKind {
	return []ToggleKind{Bold, Italic, BulletList, OrderedList, Checklist, Heading1, Heading2, Heading3}
}

func ParseToggleKind(s string) (ToggleKind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "bullet", "ul":
		return BulletList, nil
	case "ol":
		return OrderedList, nil
	case "task", "todo":
		return Checklist, nil
	}
	for kind, n := range kindNames {
		if n == name {
			return kind, nil
		}
	}
	names := make([]string, 0, len(kindNames))
	for _, k := range ToggleKinds() {
		names = append(names, k.String())
	}
	return 0, fmt.Errorf("unknown toggle %q: expected one of %s", s, strings.Join(names, ", "))
}

// HeadingKind maps a heading level to its kind.
func HeadingKind(level int) (ToggleKind, bool) {
	switch level {
	case 1:
		return Heading1, true
	case 2:
		return Heading2, true
	case 3:
		return Heading3, true
	}
	return 0, false
}

func (k ToggleKind) headingLevel() int {
	switch k {
	case Heading1:
		return 1
	case Heading2:
		return 2
	case Heading3:
		return 3
	}
	return 0
}

type wrapMarker struct {
	open  string
	close string
}

var wrapMarkers = map[ToggleKind]wrapMarker{
	Bold:   {open: "**", close: "**"},
	Italic: {open: "*", close: "*"},
}

// linePattern pairs the matcher for a line-prefix markup with the canonical
// prefix added when the markup is applied.
type linePattern struct {
	match  *regexp.Regexp
	prefix string
}

func (p linePattern) has(line string) bool { return p.match.MatchString(line) }

func (p linePattern) strip(line string) string {
	return p.match.ReplaceAllLiteralString(line, "")
}

var (
	bulletPattern = linePattern{
		match:  regexp.MustCompile(`^[\t ]*[-*]\s+`),
		prefix: "- ",
	}
	checklistPattern = linePattern{
		match:  regexp.MustCompile(`^[\t ]*- \[( |x|X)\]\s+`),
		prefix: "- [ ] ",
	}
	orderedPattern = linePattern{
		match: regexp.MustCompile(`^[\t ]*(\d+)\.\s+`),
	}
	headingPattern = linePattern{
		match: regexp.MustCompile(`^[\t ]*(#{1,6})\s+`),
	}
)

var prefixPatterns = map[ToggleKind]linePattern{
	BulletList: bulletPattern,
	Checklist:  checklistPattern,
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
