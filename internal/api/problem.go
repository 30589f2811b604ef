package api

import (
	stderrors "errors"
	"log/slog"
	"net/http"

	"todo-app/internal/errors"
	"todo-app/internal/validation"

	"github.com/gin-gonic/gin"
)

// ProblemContentType is the media type of every error body
const ProblemContentType = "application/problem+json"

const (
	problemTypeValidation = "https://tools.ietf.org/html/rfc9110#section-15.5.1"
	problemTypeUnexpected = "https://httpstatuses.com/500"

	titleValidation = "One or more validation errors occurred."
	titleBadRequest = "The request body could not be read."
	titleUnexpected = "An unexpected error occurred."
)

// Problem is an RFC 7807 problem details body
type Problem struct {
	Type     string            `json:"type"`
	Title    string            `json:"title"`
	Status   int               `json:"status"`
	Instance string            `json:"instance"`
	Detail   string            `json:"detail,omitempty"`
	Errors   map[string]string `json:"errors,omitempty"`
}

func writeProblem(c *gin.Context, p Problem) {
	c.Header("Content-Type", ProblemContentType)
	c.JSON(p.Status, p)
}

// respondError is the single place that turns a failed operation into a response.
// Validation failures become 400 with field messages; everything else is logged
// and becomes a generic 500.
func (s *Server) respondError(c *gin.Context, err error) {
	var ve *validation.ValidationError
	if errors.IsErrorType(err, errors.ErrorTypeValidation) && stderrors.As(err, &ve) {
		writeProblem(c, Problem{
			Type:     problemTypeValidation,
			Title:    titleValidation,
			Status:   http.StatusBadRequest,
			Instance: c.Request.URL.Path,
			Errors:   ve.Fields(),
		})
		return
	}

	level := slog.LevelWarn
	if errors.ShouldLogError(err) {
		level = slog.LevelError
	}
	s.logger.Log(c.Request.Context(), level, "unhandled error",
		"error", err,
		"code", errors.GetErrorCode(err),
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"request_id", requestID(c),
	)

	p := Problem{
		Type:     problemTypeUnexpected,
		Title:    titleUnexpected,
		Status:   http.StatusInternalServerError,
		Instance: c.Request.URL.Path,
	}
	if s.cfg.IsDevelopment() {
		p.Detail = err.Error()
	}
	writeProblem(c, p)
}

// respondBadBody reports a request body that could not be decoded
func (s *Server) respondBadBody(c *gin.Context, err error) {
	writeProblem(c, Problem{
		Type:     problemTypeValidation,
		Title:    titleBadRequest,
		Status:   http.StatusBadRequest,
		Instance: c.Request.URL.Path,
		Detail:   err.Error(),
	})
}
