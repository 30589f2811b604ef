package cli

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"todo-app/internal/reconcile"
	"todo-app/internal/state"
)

const displayTimeFormat = "2006-01-02 15:04"

// dueLabel renders the due date with its status, or "-" when there is none
func dueLabel(task state.TaskView, now time.Time, loc *time.Location) string {
	if task.DueDate == nil {
		return "-"
	}

	label := reconcile.FormatDueDate(task.DueDate, loc)
	switch state.DueStatusOf(task, now) {
	case state.DueOverdue:
		label += " (overdue)"
	case state.DueSoon:
		label += " (due soon)"
	}
	return label
}

func checkbox(completed bool) string {
	if completed {
		return "[x]"
	}
	return "[ ]"
}

// writeTable prints one row per task
func writeTable(w io.Writer, tasks []state.TaskView, now time.Time, loc *time.Location) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDONE\tTITLE\tDUE")
	for _, task := range tasks {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", task.ID, checkbox(task.Completed), task.Text, dueLabel(task, now, loc))
	}
	return tw.Flush()
}

// writeCSV prints every task as CSV with RFC 3339 timestamps
func writeCSV(w io.Writer, tasks []state.TaskView) error {
	writer := csv.NewWriter(w)

	header := []string{"ID", "Title", "Description", "Completed", "Created At", "Due Date"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, task := range tasks {
		var description, due string
		if task.Description != nil {
			description = *task.Description
		}
		if task.DueDate != nil {
			due = task.DueDate.UTC().Format(time.RFC3339)
		}

		row := []string{
			strconv.FormatInt(task.ID, 10),
			task.Text,
			description,
			strconv.FormatBool(task.Completed),
			task.CreatedAt.UTC().Format(time.RFC3339),
			due,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// writeDetails prints every field of a single task
func writeDetails(w io.Writer, task state.TaskView, now time.Time, loc *time.Location) error {
	description := "-"
	if task.Description != nil && *task.Description != "" {
		description = *task.Description
	}
	completed := "no"
	if task.Completed {
		completed = "yes"
	}

	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%d\n", task.ID)
	fmt.Fprintf(tw, "Title:\t%s\n", task.Text)
	fmt.Fprintf(tw, "Description:\t%s\n", description)
	fmt.Fprintf(tw, "Completed:\t%s\n", completed)
	fmt.Fprintf(tw, "Created:\t%s\n", task.CreatedAt.In(loc).Format(displayTimeFormat))
	fmt.Fprintf(tw, "Due:\t%s\n", dueLabel(task, now, loc))
	return tw.Flush()
}
