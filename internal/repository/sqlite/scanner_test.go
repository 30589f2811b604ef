package sqlite

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScanner implements the Scanner interface for testing
type TestScanner struct {
	data []interface{}
	err  error
}

func (ts *TestScanner) Scan(dest ...interface{}) error {
	if ts.err != nil {
		return ts.err
	}

	if len(dest) != len(ts.data) {
		return errors.New("mismatch in number of destinations")
	}

	for i, d := range dest {
		switch v := d.(type) {
		case *int64:
			*v = ts.data[i].(int64)
		case *bool:
			*v = ts.data[i].(bool)
		case *string:
			*v = ts.data[i].(string)
		case *sql.NullString:
			*v = ts.data[i].(sql.NullString)
		}
	}

	return nil
}

func TestScanTask(t *testing.T) {
	created := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	due := time.Date(2024, 1, 20, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		scanner     *TestScanner
		expected    *Task
		expectError bool
	}{
		{
			name: "All columns",
			scanner: &TestScanner{data: []interface{}{
				int64(1), "Buy milk",
				sql.NullString{String: "2 litres", Valid: true},
				true,
				"2024-01-15T10:00:00Z",
				sql.NullString{String: "2024-01-20T12:00:00Z", Valid: true},
			}},
			expected: &Task{ID: 1, Title: "Buy milk", Description: strPtr("2 litres"), IsCompleted: true, CreatedAt: created, DueDate: &due},
		},
		{
			name: "Null optionals",
			scanner: &TestScanner{data: []interface{}{
				int64(2), "Walk dog", sql.NullString{}, false, "2024-01-15T10:00:00Z", sql.NullString{},
			}},
			expected: &Task{ID: 2, Title: "Walk dog", CreatedAt: created},
		},
		{
			name: "Corrupt created_at",
			scanner: &TestScanner{data: []interface{}{
				int64(3), "Bad", sql.NullString{}, false, "yesterday", sql.NullString{},
			}},
			expectError: true,
		},
		{
			name:        "Scanner error",
			scanner:     &TestScanner{err: sql.ErrNoRows},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ScanTask(tt.scanner)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected.ID, result.ID)
			assert.Equal(t, tt.expected.Title, result.Title)
			assert.Equal(t, tt.expected.Description, result.Description)
			assert.Equal(t, tt.expected.IsCompleted, result.IsCompleted)
			assert.True(t, tt.expected.CreatedAt.Equal(result.CreatedAt))
			if tt.expected.DueDate == nil {
				assert.Nil(t, result.DueDate)
			} else {
				require.NotNil(t, result.DueDate)
				assert.True(t, tt.expected.DueDate.Equal(*result.DueDate))
			}
		})
	}
}

// TestRows implements the Rows interface for testing
type TestRows struct {
	rows       [][]interface{}
	currentRow int
	err        error
	scanErr    error
}

func (tr *TestRows) Next() bool {
	if tr.err != nil || tr.currentRow >= len(tr.rows) {
		return false
	}
	tr.currentRow++
	return true
}

func (tr *TestRows) Scan(dest ...interface{}) error {
	if tr.scanErr != nil {
		return tr.scanErr
	}
	return (&TestScanner{data: tr.rows[tr.currentRow-1]}).Scan(dest...)
}

func (tr *TestRows) Err() error {
	return tr.err
}

func TestScanTasks(t *testing.T) {
	row := func(id int64, title string) []interface{} {
		return []interface{}{id, title, sql.NullString{}, false, "2024-01-15T10:00:00Z", sql.NullString{}}
	}

	t.Run("Multiple rows", func(t *testing.T) {
		tasks, err := ScanTasks(&TestRows{rows: [][]interface{}{row(1, "one"), row(2, "two")}})
		require.NoError(t, err)
		require.Len(t, tasks, 2)
		assert.Equal(t, "one", tasks[0].Title)
		assert.Equal(t, int64(2), tasks[1].ID)
	})

	t.Run("No rows is empty not nil", func(t *testing.T) {
		tasks, err := ScanTasks(&TestRows{})
		require.NoError(t, err)
		assert.NotNil(t, tasks)
		assert.Empty(t, tasks)
	})

	t.Run("Rows error", func(t *testing.T) {
		_, err := ScanTasks(&TestRows{err: errors.New("cursor broke")})
		assert.Error(t, err)
	})

	t.Run("Scan error", func(t *testing.T) {
		_, err := ScanTasks(&TestRows{rows: [][]interface{}{row(1, "one")}, scanErr: errors.New("bad column")})
		assert.Error(t, err)
	})
}
