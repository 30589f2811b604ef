package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	apperrors "todo-app/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func strPtr(s string) *string {
	return &s
}

func newTask(title string) *Task {
	return &Task{Title: title, CreatedAt: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func TestCreateTask(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	due := time.Date(2025, 2, 1, 9, 30, 0, 500, time.UTC)
	task := &Task{
		Title:       "Buy milk",
		Description: strPtr("semi-skimmed"),
		CreatedAt:   time.Date(2025, 1, 1, 12, 0, 0, 123456789, time.UTC),
		DueDate:     &due,
	}

	require.NoError(t, repo.CreateTask(ctx, task))
	assert.Greater(t, task.ID, int64(0))

	retrieved, err := repo.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", retrieved.Title)
	assert.Equal(t, "semi-skimmed", *retrieved.Description)
	assert.False(t, retrieved.IsCompleted)
	assert.True(t, task.CreatedAt.Equal(retrieved.CreatedAt), "created_at keeps nanoseconds")
	require.NotNil(t, retrieved.DueDate)
	assert.True(t, due.Equal(*retrieved.DueDate))
}

func TestCreateTask_EmptyDescriptionIsNotNull(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	withEmpty := newTask("Empty description")
	withEmpty.Description = strPtr("")
	require.NoError(t, repo.CreateTask(ctx, withEmpty))

	without := newTask("No description")
	require.NoError(t, repo.CreateTask(ctx, without))

	got, err := repo.GetTask(ctx, withEmpty.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Description)
	assert.Equal(t, "", *got.Description)

	got, err = repo.GetTask(ctx, without.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Description)
}

func TestGetTask_NotFound(t *testing.T) {
	repo := setupTestDB(t)

	_, err := repo.GetTask(context.Background(), 999)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Contains(t, err.Error(), "not found")
}

func TestListTasks_OrderedByID(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	tasks, err := repo.ListTasks(ctx)
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)

	for _, title := range []string{"zebra", "apple", "mango"} {
		require.NoError(t, repo.CreateTask(ctx, newTask(title)))
	}

	tasks, err = repo.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "zebra", tasks[0].Title)
	assert.Equal(t, "apple", tasks[1].Title)
	assert.Equal(t, "mango", tasks[2].Title)
	assert.Less(t, tasks[0].ID, tasks[1].ID)
	assert.Less(t, tasks[1].ID, tasks[2].ID)
}

func TestUpdateTask(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	task := newTask("Draft")
	task.Description = strPtr("old")
	require.NoError(t, repo.CreateTask(ctx, task))
	created := task.CreatedAt

	due := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	update := &Task{
		ID:          task.ID,
		Title:       "Final",
		IsCompleted: true,
		DueDate:     &due,
		CreatedAt:   time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.UpdateTask(ctx, update))

	got, err := repo.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Final", got.Title)
	assert.Nil(t, got.Description)
	assert.True(t, got.IsCompleted)
	require.NotNil(t, got.DueDate)
	assert.True(t, due.Equal(*got.DueDate))
	assert.True(t, created.Equal(got.CreatedAt), "created_at is never rewritten")
}

func TestUpdateTask_NotFound(t *testing.T) {
	repo := setupTestDB(t)

	err := repo.UpdateTask(context.Background(), &Task{ID: 42, Title: "Ghost"})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestDeleteTask(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	task := newTask("Disposable")
	require.NoError(t, repo.CreateTask(ctx, task))

	require.NoError(t, repo.DeleteTask(ctx, task.ID))

	_, err := repo.GetTask(ctx, task.ID)
	assert.True(t, apperrors.IsNotFound(err))

	err = repo.DeleteTask(ctx, task.ID)
	assert.True(t, apperrors.IsNotFound(err), "second delete reports not found")
}

func TestDeleteTask_IdsNotReused(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	first := newTask("first")
	require.NoError(t, repo.CreateTask(ctx, first))
	require.NoError(t, repo.DeleteTask(ctx, first.ID))

	second := newTask("second")
	require.NoError(t, repo.CreateTask(ctx, second))
	assert.Greater(t, second.ID, first.ID)
}

func TestRepository_FileBackedPersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "todo.db")
	ctx := context.Background()

	repo, err := NewWithOptions(dbPath, Options{QueryTimeout: time.Second, WriteTimeout: time.Second})
	require.NoError(t, err)
	task := newTask("Survives restart")
	require.NoError(t, repo.CreateTask(ctx, task))
	require.NoError(t, repo.Close())

	reopened, err := New(dbPath)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Survives restart", got.Title)
}

func TestRepository_CancelledContext(t *testing.T) {
	repo := setupTestDB(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.ListTasks(ctx)
	require.Error(t, err)
	assert.False(t, apperrors.IsNotFound(err))
}
