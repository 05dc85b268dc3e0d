package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	. "todos/internal/adapter/http/helper"
	. "todos/internal/adapter/http/validation"
	"todos/internal/adapter/http/middleware"
	"todos/internal/adapter/telemetry"
	"todos/internal/core/domain"
	"todos/internal/core/model/request"
	"todos/internal/core/model/response"
	"todos/internal/core/port"
	"todos/internal/core/service"
	"todos/internal/core/util"

	"github.com/gin-gonic/gin"
)

// TodoHandler holds the repository and binds a TodoService to the
// authenticated user on every request, so each service instance is
// owner-scoped for its whole lifetime.
type TodoHandler struct {
	repo    port.TodoRepository
	metrics *telemetry.AppMetrics
}

func NewTodoHandler(repo port.TodoRepository, metrics *telemetry.AppMetrics) *TodoHandler {
	return &TodoHandler{
		repo:    repo,
		metrics: metrics,
	}
}

func (t *TodoHandler) boundService(c *gin.Context) (port.TodoService, bool) {
	user, ok := middleware.CurrentUser(c)

	if !ok {
		SendUnauthorizedError(c, "Credentials required")
		return nil, false
	}

	return service.NewTodoService(t.repo, user), true
}

func (t *TodoHandler) ListTodos(c *gin.Context) {
	svc, ok := t.boundService(c)

	if !ok {
		return
	}

	todos, err := svc.List(c.Request.Context())

	if err != nil {
		slog.Error("Todo#List", "error", err)
		SendInternalError(c, "Error getting todos")
		return
	}

	data := make([]response.TodoResponse, 0, len(todos))

	for _, todo := range todos {
		data = append(data, todoResponse(todo))
	}

	t.metrics.RecordTodoOperation("list")

	SendSuccess(c, http.StatusOK, data)
}

func (t *TodoHandler) CreateTodo(c *gin.Context) {
	svc, ok := t.boundService(c)

	if !ok {
		return
	}

	params, err := util.ParamsToMap[request.TodoCreateRequest](c)

	if err != nil {
		SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	if err := Validator.Struct(params); err != nil {
		SendValidationError(c, err)
		return
	}

	todo, err := svc.Create(c.Request.Context(), params.Title)

	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			SendConflictError(c, "title", err.Error())
			return
		}

		slog.Error("Todo#Create", "error", err)
		SendBadRequestError(c, "creation", err.Error())
		return
	}

	t.metrics.RecordTodoOperation("create")

	SendSuccess(c, http.StatusCreated, todoResponse(todo))
}

// UpdateTodo applies the fields present in the body: title, status or
// both. An id that does not exist or is owned by someone else changes
// nothing and still answers 200.
func (t *TodoHandler) UpdateTodo(c *gin.Context) {
	svc, ok := t.boundService(c)

	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))

	if err != nil {
		SendBadRequestError(c, "id", "Invalid todo id")
		return
	}

	params, err := util.ParamsToMap[request.TodoUpdateRequest](c)

	if err != nil {
		SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	if err := Validator.Struct(params); err != nil {
		SendValidationError(c, err)
		return
	}

	if params.Title == "" && params.Status == "" {
		SendBadRequestError(c, "request", "Nothing to update")
		return
	}

	ctx := c.Request.Context()

	if params.Title != "" {
		if err := svc.UpdateTitle(ctx, id, params.Title); err != nil {
			if errors.Is(err, domain.ErrConflict) {
				SendConflictError(c, "title", err.Error())
				return
			}

			slog.Error("Todo#UpdateTitle", "error", err)
			SendInternalError(c, "Error updating todo")
			return
		}
	}

	if params.Status != "" {
		if err := svc.UpdateStatus(ctx, id, params.Status); err != nil {
			slog.Error("Todo#UpdateStatus", "error", err)
			SendInternalError(c, "Error updating todo")
			return
		}
	}

	t.metrics.RecordTodoOperation("update")

	SendSuccess(c, http.StatusOK, gin.H{"id": id})
}

func (t *TodoHandler) DeleteTodo(c *gin.Context) {
	svc, ok := t.boundService(c)

	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))

	if err != nil {
		SendBadRequestError(c, "id", "Invalid todo id")
		return
	}

	if err := svc.Delete(c.Request.Context(), id); err != nil {
		slog.Error("Todo#Delete", "error", err)
		SendInternalError(c, "Error deleting todo")
		return
	}

	t.metrics.RecordTodoOperation("delete")

	SendSuccess(c, http.StatusOK, gin.H{"id": id})
}

func todoResponse(todo domain.Todo) response.TodoResponse {
	return response.TodoResponse{
		ID:       todo.ID,
		Title:    todo.Title,
		Status:   todo.Status,
		Deadline: todo.Deadline,
	}
}
