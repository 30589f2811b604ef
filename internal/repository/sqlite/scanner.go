package sqlite

import (
	"database/sql"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// taskColumns is the column list ScanTask expects, in order
const taskColumns = "id, title, description, is_completed, created_at, due_date"

// ScanTask scans a single task from a database row
func ScanTask(scanner Scanner) (*Task, error) {
	task := &Task{}
	var (
		description sql.NullString
		createdAt   string
		dueDate     sql.NullString
	)

	err := scanner.Scan(
		&task.ID,
		&task.Title,
		&description,
		&task.IsCompleted,
		&createdAt,
		&dueDate,
	)
	if err != nil {
		return nil, err
	}

	task.Description = NullStringPtr(description)

	if task.CreatedAt, err = ParseTimeFromDB(createdAt); err != nil {
		return nil, err
	}
	if task.DueDate, err = ParseNullTimeFromDB(dueDate); err != nil {
		return nil, err
	}

	return task, nil
}

// ScanTasks scans multiple tasks from database rows. An empty result is an empty, non-nil slice.
func ScanTasks(rows Rows) ([]*Task, error) {
	tasks := make([]*Task, 0)
	for rows.Next() {
		task, err := ScanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}
