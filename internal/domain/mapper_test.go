package domain

import (
	"encoding/json"
	"testing"
	"time"

	"todo-app/internal/repository/sqlite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestEntityToResponse_CopiesVerbatim(t *testing.T) {
	created := time.Date(2025, 4, 1, 8, 30, 0, 123, time.UTC)
	due := created.Add(48 * time.Hour)
	task := Task{
		ID:          7,
		Title:       "  Pay rent  ",
		Description: strPtr(""),
		IsCompleted: true,
		CreatedAt:   created,
		DueDate:     &due,
	}

	resp := EntityToResponse(task)

	assert.Equal(t, TaskResponse{
		ID:          7,
		Title:       "  Pay rent  ",
		Description: strPtr(""),
		IsCompleted: true,
		CreatedAt:   created,
		DueDate:     &due,
	}, resp)
}

func TestEntitiesToResponses_EmptyIsNotNil(t *testing.T) {
	resp := EntitiesToResponses(nil)
	require.NotNil(t, resp)
	assert.Empty(t, resp)

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestCreateRequestToEntity(t *testing.T) {
	now := time.Date(2025, 4, 1, 10, 0, 0, 0, time.FixedZone("CEST", 2*3600))
	due := now.Add(time.Hour)

	task := CreateRequestToEntity(TaskCreateRequest{
		Title:       "Buy milk",
		Description: strPtr("2 litres"),
		DueDate:     &due,
	}, now)

	assert.Zero(t, task.ID)
	assert.Equal(t, "Buy milk", task.Title)
	assert.Equal(t, "2 litres", *task.Description)
	assert.False(t, task.IsCompleted)
	assert.Equal(t, time.UTC, task.CreatedAt.Location())
	assert.True(t, task.CreatedAt.Equal(now))
	assert.Equal(t, &due, task.DueDate)
}

func TestCreateThenRespond_RoundTripPreservesSubmittedFields(t *testing.T) {
	due := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	tests := []TaskCreateRequest{
		{Title: "Buy milk"},
		{Title: " padded title ", Description: strPtr("")},
		{Title: "With everything", Description: strPtr("details"), DueDate: &due},
	}

	for _, req := range tests {
		t.Run(req.Title, func(t *testing.T) {
			resp := EntityToResponse(CreateRequestToEntity(req, time.Now()))
			assert.Equal(t, req.Title, resp.Title)
			assert.Equal(t, req.Description, resp.Description)
			assert.Equal(t, req.DueDate, resp.DueDate)
		})
	}
}

func TestApplyUpdateRequest_KeepsIdentityAndCreation(t *testing.T) {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	due := created.Add(time.Hour)
	task := Task{ID: 3, Title: "Old", Description: strPtr("old"), CreatedAt: created, DueDate: &due}

	ApplyUpdateRequest(TaskUpdateRequest{Title: "New", IsCompleted: true}, &task)

	assert.Equal(t, int64(3), task.ID)
	assert.Equal(t, created, task.CreatedAt)
	assert.Equal(t, "New", task.Title)
	assert.Nil(t, task.Description, "absent description clears the field")
	assert.True(t, task.IsCompleted)
	assert.Nil(t, task.DueDate)
}

func TestTaskResponse_JSONShape(t *testing.T) {
	resp := TaskResponse{
		ID:        1,
		Title:     "Buy milk",
		CreatedAt: time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 1,
		"title": "Buy milk",
		"description": null,
		"isCompleted": false,
		"createdAt": "2025-04-01T10:00:00Z",
		"dueDate": null
	}`, string(data))
}

func TestTaskMapper_ToDatabase(t *testing.T) {
	mapper := NewTaskMapper()
	created := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
	domainTask := Task{ID: 1, Title: "Test Task", Description: strPtr("desc"), IsCompleted: true, CreatedAt: created}

	result := mapper.ToDatabase(domainTask)

	expected := sqlite.Task{ID: 1, Title: "Test Task", Description: strPtr("desc"), IsCompleted: true, CreatedAt: created}
	assert.Equal(t, expected, result)
}

func TestTaskMapper_FromDatabase(t *testing.T) {
	mapper := NewTaskMapper()
	due := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	dbTask := sqlite.Task{ID: 1, Title: "Test Task", DueDate: &due}

	result := mapper.FromDatabase(dbTask)

	expected := Task{ID: 1, Title: "Test Task", DueDate: &due}
	assert.Equal(t, expected, result)
}

func TestTaskMapper_FromDatabaseSlice(t *testing.T) {
	mapper := NewTaskMapper()
	dbTasks := []*sqlite.Task{
		{ID: 1, Title: "Task 1"},
		{ID: 2, Title: "Task 2", IsCompleted: true},
	}

	result := mapper.FromDatabaseSlice(dbTasks)

	expected := []Task{
		{ID: 1, Title: "Task 1"},
		{ID: 2, Title: "Task 2", IsCompleted: true},
	}
	assert.Equal(t, expected, result)
	assert.NotNil(t, mapper.FromDatabaseSlice(nil))
}
