package reconcile

import (
	"fmt"
	"strings"
	"time"
)

// DueDateLayouts are the accepted input forms of a due date. A date without a
// time means the end of that day.
var DueDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseDueDate parses user input in loc. Blank input means no due date.
func ParseDueDate(input string, loc *time.Location) (*time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil
	}
	if loc == nil {
		loc = time.Local
	}

	for _, layout := range DueDateLayouts {
		t, err := time.ParseInLocation(layout, input, loc)
		if err != nil {
			continue
		}
		if layout == "2006-01-02" {
			t = t.Add(24*time.Hour - time.Minute)
		}
		return &t, nil
	}
	return nil, fmt.Errorf("invalid due date %q: use YYYY-MM-DD or YYYY-MM-DD HH:MM", input)
}

// FormatDueDate renders a due date the way ParseDueDate reads it back.
func FormatDueDate(t *time.Time, loc *time.Location) string {
	if t == nil {
		return ""
	}
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format("2006-01-02 15:04")
}
