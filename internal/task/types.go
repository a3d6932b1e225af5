package task

import (
	"fmt"
	"sort"
)

// Task represents a single tracked task.
type Task struct {
	ID        int     `json:"id"`
	Text      string  `json:"text"`
	Due       *string `json:"due"`
	Done      bool    `json:"done"`
	CreatedAt string  `json:"created_at"`
}

// DueString returns the due time or "" when none is set.
func (t Task) DueString() string {
	if t.Due == nil {
		return ""
	}
	return *t.Due
}

// Line renders the task in list form, e.g. "[x] #3 Ship it (due 14:30)".
func (t Task) Line() string {
	status := " "
	if t.Done {
		status = "x"
	}
	line := fmt.Sprintf("[%s] #%d %s", status, t.ID, t.Text)
	if t.Due != nil && *t.Due != "" {
		line += fmt.Sprintf(" (due %s)", *t.Due)
	}
	return line
}

// NextID returns the id for a newly added task: one past the highest
// id currently in use, or 1 for an empty list.
func NextID(tasks []Task) int {
	maxID := 0
	for _, t := range tasks {
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	return maxID + 1
}

// SortedForDisplay returns a copy of tasks in display order: incomplete
// tasks before done ones, then by due rank, then by the due string
// itself. The sort is stable, so otherwise-equal tasks keep their
// stored order.
func SortedForDisplay(tasks []Task) []Task {
	sorted := make([]Task, len(tasks))
	copy(sorted, tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Done != sorted[j].Done {
			return !sorted[i].Done
		}
		ri, si := dueKey(sorted[i].Due)
		rj, sj := dueKey(sorted[j].Due)
		if ri != rj {
			return ri < rj
		}
		return si < sj
	})
	return sorted
}
