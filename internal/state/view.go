package state

import (
	"fmt"
	"strings"
	"time"

	"todo-app/internal/domain"
)

// Filter selects which tasks are visible.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// Filters lists every filter in display order.
var Filters = []Filter{FilterAll, FilterActive, FilterCompleted}

// ParseFilter accepts a filter name case-insensitively. The empty string means all.
func ParseFilter(s string) (Filter, error) {
	switch Filter(strings.ToLower(strings.TrimSpace(s))) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterActive:
		return FilterActive, nil
	case FilterCompleted:
		return FilterCompleted, nil
	default:
		return "", fmt.Errorf("unknown filter %q (want all, active or completed)", s)
	}
}

// TaskView is the client-side form of a task.
type TaskView struct {
	ID          int64
	Text        string
	Description *string
	DueDate     *time.Time
	Completed   bool
	CreatedAt   time.Time
}

// FromResponse maps a server response onto the view model.
func FromResponse(resp domain.TaskResponse) TaskView {
	return TaskView{
		ID:          resp.ID,
		Text:        resp.Title,
		Description: resp.Description,
		DueDate:     resp.DueDate,
		Completed:   resp.IsCompleted,
		CreatedAt:   resp.CreatedAt,
	}
}

// FromResponses maps a list response. The result is never nil.
func FromResponses(resps []domain.TaskResponse) []TaskView {
	views := make([]TaskView, 0, len(resps))
	for _, resp := range resps {
		views = append(views, FromResponse(resp))
	}
	return views
}

// ToUpdateRequest returns the full update body for this task.
func (v TaskView) ToUpdateRequest() domain.TaskUpdateRequest {
	return domain.TaskUpdateRequest{
		Title:       v.Text,
		Description: v.Description,
		IsCompleted: v.Completed,
		DueDate:     v.DueDate,
	}
}
