package parser

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

const (
	StatusUnchecked = "unchecked"
	StatusChecked   = "checked"
)

// Task is one checklist item found in a note.
type Task struct {
	Status   string
	Content  string
	Path     string
	Line     int
	Metadata TaskMetadata
}

func (t Task) Checked() bool {
	return t.Status == StatusChecked
}

type TaskMetadata struct {
	DueDate    *time.Time
	Priority   string
	Tags       []string
	References []string
	RawTokens  map[string]string
}

// FilterTasks keeps the tasks whose status matches. An empty or "all"
// status keeps everything.
func FilterTasks(tasks []Task, status string) ([]Task, error) {
	switch status {
	case "", "all":
		return tasks, nil
	case "open", "todo", StatusUnchecked:
		status = StatusUnchecked
	case "done", StatusChecked:
		status = StatusChecked
	default:
		return nil, fmt.Errorf("invalid status %q: use all, open or done", status)
	}

	var out []Task
	for _, task := range tasks {
		if task.Status == status {
			out = append(out, task)
		}
	}
	return out, nil
}

// SortTasks orders tasks by path and line, or by due date when byDue is set.
// Tasks without a due date sort last.
func SortTasks(tasks []Task, byDue bool) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		if byDue {
			switch {
			case a.Metadata.DueDate != nil && b.Metadata.DueDate == nil:
				return true
			case a.Metadata.DueDate == nil && b.Metadata.DueDate != nil:
				return false
			case a.Metadata.DueDate != nil && !a.Metadata.DueDate.Equal(*b.Metadata.DueDate):
				return a.Metadata.DueDate.Before(*b.Metadata.DueDate)
			}
		}
		if a.Path != b.Path {
			return a.Path < b.Path
		}
		return a.Line < b.Line
	})
}

// Summary counts open and completed tasks.
func Summary(tasks []Task) (open, done int) {
	for _, task := range tasks {
		if task.Checked() {
			done++
		} else {
			open++
		}
	}
	return open, done
}

// FormatTask renders a task as a single checklist line with its location.
func FormatTask(task Task) string {
	box := "[ ]"
	if task.Checked() {
		box = "[x]"
	}

	var details []string
	if task.Metadata.DueDate != nil {
		details = append(details, "due "+task.Metadata.DueDate.Format("2006-01-02"))
	}
	if task.Metadata.Priority != "" {
		details = append(details, "priority "+task.Metadata.Priority)
	}
	if len(task.Metadata.Tags) > 0 {
		details = append(details, "#"+strings.Join(task.Metadata.Tags, " #"))
	}

	line := fmt.Sprintf("%s:%d  %s %s", task.Path, task.Line, box, task.Content)
	if len(details) > 0 {
		line = fmt.Sprintf("%s (%s)", line, strings.Join(details, ", "))
	}
	return line
}
