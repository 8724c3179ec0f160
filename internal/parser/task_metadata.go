package parser

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var (
	metadataPattern = regexp.MustCompile(`@([a-zA-Z0-9_-]+)\(([^)]+)\)`)
	backlinkPattern = regexp.MustCompile(`\[\[([^\]]+)\]\]`)
	tagPattern      = regexp.MustCompile(`(?:^|\s)#([\p{L}\p{N}_/-]+)`)
)

// ExtractTaskMetadata strips @key(value) tokens from a task body and returns
// the remaining text with the parsed metadata. Backlinks and #tags are
// recorded but only backlinks are removed from the text.
func ExtractTaskMetadata(content string) (string, TaskMetadata) {
	metadata := TaskMetadata{RawTokens: make(map[string]string)}
	trimmed := strings.TrimSpace(content)

	cleaned := metadataPattern.ReplaceAllStringFunc(trimmed, func(match string) string {
		sub := metadataPattern.FindStringSubmatch(match)
		key := strings.ToLower(strings.TrimSpace(sub[1]))
		value := strings.TrimSpace(sub[2])
		if value == "" {
			return ""
		}

		metadata.RawTokens[key] = value

		switch key {
		case "due", "deadline":
			if t, ok := parseDate(value); ok {
				metadata.DueDate = &t
			}
		case "priority", "p":
			metadata.Priority = strings.ToLower(value)
		}

		return ""
	})

	metadata.References = uniqueSorted(backlinkPattern.FindAllStringSubmatch(trimmed, -1))
	metadata.Tags = uniqueSorted(tagPattern.FindAllStringSubmatch(trimmed, -1))

	cleaned = backlinkPattern.ReplaceAllString(cleaned, "")
	cleaned = strings.Join(strings.Fields(cleaned), " ")

	return cleaned, metadata
}

func uniqueSorted(matches [][]string) []string {
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	var out []string
	for _, m := range matches {
		value := strings.TrimSpace(m[1])
		if value == "" {
			continue
		}
		if _, dup := seen[value]; dup {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	sort.Strings(out)
	return out
}

func parseDate(value string) (time.Time, bool) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "" {
		return time.Time{}, false
	}

	now := time.Now().Local()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch normalized {
	case "today":
		return midnight, true
	case "tomorrow":
		return midnight.AddDate(0, 0, 1), true
	case "yesterday":
		return midnight.AddDate(0, 0, -1), true
	}

	parsed, err := dateparse.ParseLocal(value)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}
