package state

import "time"

// DueSoonWindow is how far ahead a due date counts as due soon.
const DueSoonWindow = 24 * time.Hour

// Counts are the per-filter totals shown next to the filter tabs.
type Counts struct {
	All       int
	Active    int
	Completed int
}

// Of returns the count for f.
func (c Counts) Of(f Filter) int {
	switch f {
	case FilterActive:
		return c.Active
	case FilterCompleted:
		return c.Completed
	default:
		return c.All
	}
}

// Visible returns the tasks matching filter, in their original order.
func Visible(tasks []TaskView, filter Filter) []TaskView {
	visible := make([]TaskView, 0, len(tasks))
	for _, t := range tasks {
		switch filter {
		case FilterActive:
			if t.Completed {
				continue
			}
		case FilterCompleted:
			if !t.Completed {
				continue
			}
		}
		visible = append(visible, t)
	}
	return visible
}

// CountsOf counts the full, unfiltered task list.
func CountsOf(tasks []TaskView) Counts {
	c := Counts{All: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			c.Completed++
		} else {
			c.Active++
		}
	}
	return c
}

// DueStatus classifies a task's deadline.
type DueStatus string

const (
	DueNone     DueStatus = "none"
	DueOverdue  DueStatus = "overdue"
	DueSoon     DueStatus = "due_soon"
	DueUpcoming DueStatus = "upcoming"
)

// DueStatusOf classifies task relative to now. Completed tasks have no due status.
func DueStatusOf(task TaskView, now time.Time) DueStatus {
	if task.DueDate == nil || task.Completed {
		return DueNone
	}
	switch {
	case task.DueDate.Before(now):
		return DueOverdue
	case task.DueDate.Before(now.Add(DueSoonWindow)):
		return DueSoon
	default:
		return DueUpcoming
	}
}

// EmptyMessage returns the heading and hint shown when filter matches nothing.
func EmptyMessage(filter Filter) (title, description string) {
	switch filter {
	case FilterActive:
		return "All done", "Nothing active right now."
	case FilterCompleted:
		return "No completed tasks", "Complete a task to see it here."
	default:
		return "No tasks yet", "Add one to get started."
	}
}
