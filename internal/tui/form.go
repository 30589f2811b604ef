package tui

import (
	"time"

	"todo-app/internal/reconcile"
	"todo-app/internal/state"
	"todo-app/internal/validation"
)

const (
	fieldTitle = iota
	fieldDescription
	fieldDue
	fieldCount
)

var fieldLabels = [fieldCount]string{"Title", "Description", "Due date"}

// fieldKeys maps form fields onto the wire names used by field errors.
var fieldKeys = [fieldCount]string{validation.FieldTitle, validation.FieldDescription, validation.FieldDueDate}

type form struct {
	editing  int64
	values   [fieldCount][]rune
	focus    int
	parseErr string
}

func newForm() form {
	return form{}
}

func editForm(task state.TaskView, loc *time.Location) form {
	f := form{editing: task.ID}
	f.values[fieldTitle] = []rune(task.Text)
	if task.Description != nil {
		f.values[fieldDescription] = []rune(*task.Description)
	}
	f.values[fieldDue] = []rune(reconcile.FormatDueDate(task.DueDate, loc))
	return f
}

func (f *form) next() {
	f.focus = (f.focus + 1) % fieldCount
}

func (f *form) prev() {
	f.focus = (f.focus + fieldCount - 1) % fieldCount
}

func (f *form) insert(r []rune) {
	f.values[f.focus] = append(f.values[f.focus], r...)
}

func (f *form) backspace() {
	if v := f.values[f.focus]; len(v) > 0 {
		f.values[f.focus] = v[:len(v)-1]
	}
}

func (f *form) draft(loc *time.Location) (reconcile.Draft, error) {
	due, err := reconcile.ParseDueDate(string(f.values[fieldDue]), loc)
	if err != nil {
		return reconcile.Draft{}, err
	}

	d := reconcile.Draft{Title: string(f.values[fieldTitle]), DueDate: due}
	if desc := string(f.values[fieldDescription]); desc != "" {
		d.Description = &desc
	}
	return d, nil
}
