package api

import (
	"fmt"
	"net/http"
	"strconv"

	"todo-app/internal/domain"

	"github.com/gin-gonic/gin"
)

// TaskLocation returns the path of the Get endpoint for id
func TaskLocation(id int64) string {
	return fmt.Sprintf("%s/todo/%d", APIPrefix, id)
}

// parseID reads the :id path segment. Anything that is not an integer cannot name a task.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) listTasks(c *gin.Context) {
	tasks, err := s.service.ListTasks(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (s *Server) getTask(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}

	task, found, err := s.service.GetTask(c.Request.Context(), id)
	if err != nil {
		s.respondError(c, err)
		return
	}
	if !found {
		c.Status(http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (s *Server) createTask(c *gin.Context) {
	var req domain.TaskCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondBadBody(c, err)
		return
	}

	task, err := s.service.CreateTask(c.Request.Context(), req)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.Header("Location", TaskLocation(task.ID))
	c.JSON(http.StatusCreated, task)
}

func (s *Server) updateTask(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}

	var req domain.TaskUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondBadBody(c, err)
		return
	}

	updated, err := s.service.UpdateTask(c.Request.Context(), id, req)
	if err != nil {
		s.respondError(c, err)
		return
	}
	if !updated {
		c.Status(http.StatusNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) deleteTask(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}

	deleted, err := s.service.DeleteTask(c.Request.Context(), id)
	if err != nil {
		s.respondError(c, err)
		return
	}
	if !deleted {
		c.Status(http.StatusNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}
