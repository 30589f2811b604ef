package tui

import (
	"fmt"
	"strings"
	"time"

	"todo-app/internal/reconcile"
	"todo-app/internal/state"
)

func (m *Model) View() string {
	var b strings.Builder
	writeTitle(&b)

	switch m.mode {
	case modeHelp:
		writeHelp(&b)
		return b.String()
	case modeForm:
		m.writeForm(&b)
		return b.String()
	}

	m.writeTabs(&b)

	if m.state.Loading {
		b.WriteString("Loading tasks...\n\n")
	} else {
		m.writeTasks(&b)
	}

	m.writeErrors(&b)
	b.WriteString("a add | e edit | space toggle | d delete | 1/2/3 filter | r reload | h help | q quit\n")
	return b.String()
}

func writeTitle(b *strings.Builder) {
	title := "Todo"
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("=", len(title)) + "\n\n")
}

func (m *Model) writeTabs(b *strings.Builder) {
	counts := state.CountsOf(m.state.Tasks)
	labels := map[state.Filter]string{
		state.FilterAll:       "All",
		state.FilterActive:    "Active",
		state.FilterCompleted: "Completed",
	}

	tabs := make([]string, 0, len(state.Filters))
	for _, f := range state.Filters {
		tab := fmt.Sprintf("%s (%d)", labels[f], counts.Of(f))
		if f == m.state.Filter {
			tab = "[" + tab + "]"
		} else {
			tab = " " + tab + " "
		}
		tabs = append(tabs, tab)
	}
	b.WriteString(strings.Join(tabs, "  ") + "\n\n")
}

func (m *Model) writeTasks(b *strings.Builder) {
	visible := m.visible()
	if len(visible) == 0 {
		title, description := state.EmptyMessage(m.state.Filter)
		b.WriteString("  " + title + "\n")
		b.WriteString("  " + description + "\n\n")
		return
	}

	now := m.now()
	for i, task := range visible {
		pointer := " "
		if i == m.cursor {
			pointer = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s\n", pointer, m.formatTask(task, now)))
	}
	if n := m.state.Creating(); n > 0 {
		b.WriteString(fmt.Sprintf("  (adding %d...)\n", n))
	}
	b.WriteString("\n")
}

func (m *Model) formatTask(task state.TaskView, now time.Time) string {
	check := " "
	if task.Completed {
		check = "x"
	}

	line := fmt.Sprintf("[%s] %s", check, task.Text)
	if task.DueDate != nil {
		line += "  due " + reconcile.FormatDueDate(task.DueDate, m.loc)
		switch state.DueStatusOf(task, now) {
		case state.DueOverdue:
			line += " (Overdue)"
		case state.DueSoon:
			line += " (Due soon)"
		}
	}
	if m.state.IsPending(task.ID) {
		line += "  saving..."
	}
	if m.state.IsDeleting(task.ID) {
		line += "  deleting..."
	}
	if task.Description != nil && *task.Description != "" {
		line += "\n      " + *task.Description
	}
	return line
}

func (m *Model) writeErrors(b *strings.Builder) {
	if m.state.Error != "" {
		b.WriteString("Error: " + m.state.Error + " (x to dismiss)\n\n")
	}
	if len(m.state.FieldErrors) > 0 && m.mode == modeList {
		for _, key := range fieldKeys {
			if msg, ok := m.state.FieldErrors[key]; ok {
				b.WriteString(fmt.Sprintf("  %s: %s\n", key, msg))
			}
		}
		b.WriteString("\n")
	}
}

func (m *Model) writeForm(b *strings.Builder) {
	if m.form.editing == 0 {
		b.WriteString("New task\n\n")
	} else {
		b.WriteString(fmt.Sprintf("Edit task #%d\n\n", m.form.editing))
	}

	for i := 0; i < fieldCount; i++ {
		pointer := " "
		cursor := ""
		if i == m.form.focus {
			pointer = ">"
			cursor = "_"
		}
		b.WriteString(fmt.Sprintf("%s %-12s %s%s\n", pointer, fieldLabels[i]+":", string(m.form.values[i]), cursor))
		if msg, ok := m.state.FieldErrors[fieldKeys[i]]; ok {
			b.WriteString("    " + msg + "\n")
		}
		if i == fieldDue && m.form.parseErr != "" {
			b.WriteString("    " + m.form.parseErr + "\n")
		}
	}

	b.WriteString("\nenter save | tab next field | esc cancel\n")
}

func writeHelp(b *strings.Builder) {
	b.WriteString("Keyboard Shortcuts\n\n")
	b.WriteString("  up/k, down/j  Move\n")
	b.WriteString("  a             Add a task\n")
	b.WriteString("  e             Edit the selected task\n")
	b.WriteString("  space         Toggle completion\n")
	b.WriteString("  d             Delete the selected task\n")
	b.WriteString("  1, 2, 3       Show all, active, completed\n")
	b.WriteString("  r             Reload from the server\n")
	b.WriteString("  x             Dismiss the error\n")
	b.WriteString("  q, ctrl+c     Quit\n\n")
	b.WriteString("Press any key to return\n")
}
