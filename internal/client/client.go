// Package client talks to the task API over HTTP. Every body crossing the wire is
// checked against its JSON schema before it is sent or decoded.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"todo-app/internal/config"
	"todo-app/internal/domain"
	"todo-app/internal/errors"
	"todo-app/internal/validation"
)

const apiPrefix = "/api/v1/todo"

// TodoAPI is the client view of the task API. Missing tasks are reported as
// not_found AppErrors, rejected input as validation AppErrors, and failures to
// reach the server as transport AppErrors.
type TodoAPI interface {
	List(ctx context.Context) ([]domain.TaskResponse, error)
	Get(ctx context.Context, id int64) (*domain.TaskResponse, error)
	Create(ctx context.Context, req domain.TaskCreateRequest) (*domain.TaskResponse, error)
	Update(ctx context.Context, id int64, req domain.TaskUpdateRequest) error
	Delete(ctx context.Context, id int64) error
}

// HTTPClient implements TodoAPI against a running server.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	schemas    *Schemas
}

// NewHTTPClient creates a client for baseURL. An empty baseURL falls back to the default API address.
func NewHTTPClient(baseURL string, timeout time.Duration) (*HTTPClient, error) {
	if baseURL == "" {
		baseURL = config.DefaultAPIURL
	}

	schemas, err := LoadSchemas()
	if err != nil {
		return nil, err
	}

	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		schemas:    schemas,
	}, nil
}

// NewFromConfig creates a client from the client section of the configuration.
func NewFromConfig(cfg *config.Config) (*HTTPClient, error) {
	return NewHTTPClient(cfg.Client.APIURL, cfg.Client.Timeout.Duration)
}

// BaseURL returns the server address requests are sent to.
func (c *HTTPClient) BaseURL() string {
	return c.baseURL
}

func (c *HTTPClient) List(ctx context.Context) ([]domain.TaskResponse, error) {
	resp, body, err := c.do(ctx, "list tasks", http.MethodGet, apiPrefix, "", nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, c.statusError(resp, body, "")
	}

	var tasks []domain.TaskResponse
	if err := c.decode(SchemaTaskList, body, &tasks); err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []domain.TaskResponse{}
	}
	return tasks, nil
}

func (c *HTTPClient) Get(ctx context.Context, id int64) (*domain.TaskResponse, error) {
	resp, body, err := c.do(ctx, "get task", http.MethodGet, taskPath(id), "", nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, c.statusError(resp, body, strconv.FormatInt(id, 10))
	}

	var task domain.TaskResponse
	if err := c.decode(SchemaTaskResponse, body, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *HTTPClient) Create(ctx context.Context, req domain.TaskCreateRequest) (*domain.TaskResponse, error) {
	resp, body, err := c.do(ctx, "create task", http.MethodPost, apiPrefix, SchemaTaskCreate, req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusCreated {
		return nil, c.statusError(resp, body, "")
	}

	var task domain.TaskResponse
	if err := c.decode(SchemaTaskResponse, body, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *HTTPClient) Update(ctx context.Context, id int64, req domain.TaskUpdateRequest) error {
	resp, body, err := c.do(ctx, "update task", http.MethodPut, taskPath(id), SchemaTaskUpdate, req)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusNoContent {
		return c.statusError(resp, body, strconv.FormatInt(id, 10))
	}
	return nil
}

func (c *HTTPClient) Delete(ctx context.Context, id int64) error {
	resp, body, err := c.do(ctx, "delete task", http.MethodDelete, taskPath(id), "", nil)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusNoContent {
		return c.statusError(resp, body, strconv.FormatInt(id, 10))
	}
	return nil
}

func taskPath(id int64) string {
	return fmt.Sprintf("%s/%d", apiPrefix, id)
}

// do sends one request and reads the whole response body.
func (c *HTTPClient) do(ctx context.Context, op, method, path, schema string, payload interface{}) (*http.Response, []byte, error) {
	var reader io.Reader
	if payload != nil {
		data, err := c.schemas.ValidateValue(schema, payload)
		if err != nil {
			return nil, nil, errors.NewUnexpectedError("request does not match "+schema, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, nil, errors.NewUnexpectedError("failed to build request", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, errors.NewTransportError(op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, errors.NewTransportError(op, err)
	}
	return resp, body, nil
}

func (c *HTTPClient) decode(schema string, body []byte, v interface{}) error {
	if err := c.schemas.Validate(schema, body); err != nil {
		return errors.NewUnexpectedError("unexpected response from server", err)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return errors.WrapError(err, errors.ErrorTypeUnexpected, "unexpected response from server")
	}
	return nil
}

// statusError maps a non-success response onto the error taxonomy.
func (c *HTTPClient) statusError(resp *http.Response, body []byte, id string) error {
	if resp.StatusCode == http.StatusNotFound {
		return errors.NewNotFoundError("task", id)
	}

	var problem struct {
		Title  string            `json:"title"`
		Detail string            `json:"detail"`
		Errors map[string]string `json:"errors"`
	}
	if len(body) > 0 && c.schemas.Validate(SchemaProblem, body) == nil {
		_ = json.Unmarshal(body, &problem)
	}

	if resp.StatusCode == http.StatusBadRequest && len(problem.Errors) > 0 {
		return errors.NewValidationError("invalid task", validation.FromFields(problem.Errors))
	}

	message := problem.Title
	if message == "" {
		message = fmt.Sprintf("server responded %s", resp.Status)
	}
	appErr := errors.NewUnexpectedError(message, nil).WithContext("status", resp.StatusCode)
	if problem.Detail != "" {
		appErr = appErr.WithContext("detail", problem.Detail)
	}
	return appErr
}
