// Package handlers translates HTTP requests into TODO service calls and
// service results back into responses. It is the single point where internal
// errors become HTTP statuses; details are logged, never leaked.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"todo-backend/application/services"
	"todo-backend/pkg/common"
	apperrors "todo-backend/pkg/errors"
	"todo-backend/pkg/utils"
)

// TodoHandler handles the /todos routes
type TodoHandler struct {
	todos  *services.TodoService
	logger *zap.Logger
}

// NewTodoHandler creates a new todo handler
func NewTodoHandler(todos *services.TodoService, logger *zap.Logger) *TodoHandler {
	return &TodoHandler{
		todos:  todos,
		logger: logger,
	}
}

// CreateTodoRequest represents the request body for creating a todo
type CreateTodoRequest struct {
	Title string `json:"title" validate:"required,min=1,max=256"`
}

// ListTodos handles GET /todos
func (h *TodoHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := common.GetUserID(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	items, err := h.todos.List(r.Context(), ownerID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	// An owner with no items gets 200 and an empty array, never 404.
	respondJSON(w, http.StatusOK, items)
}

// CreateTodo handles POST /todos
func (h *TodoHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := common.GetUserID(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req CreateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		respondMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	item, err := h.todos.Create(r.Context(), ownerID, req.Title)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, item)
}

// DeleteTodo handles DELETE /todos/{id}
func (h *TodoHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	todoID := chi.URLParam(r, "id")
	if todoID == "" {
		respondMessage(w, http.StatusBadRequest, "Todo id is required")
		return
	}

	key, err := h.todos.Delete(r.Context(), todoID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, key)
}

// UpdateTodo handles PATCH /todos/{id}. The update semantics were never
// decided, so the route answers 501 explicitly instead of falling through
// to another branch.
func (h *TodoHandler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	respondMessage(w, http.StatusNotImplemented, "PATCH /todos/{id} is not implemented")
}

// respondError maps a service error onto an HTTP response. Typed errors keep
// their message; anything else surfaces as a generic 500.
func (h *TodoHandler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperrors.HTTPStatus(err)

	if status >= http.StatusInternalServerError {
		h.logger.Error("Request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		respondMessage(w, status, "Internal server error")
		return
	}

	message := err.Error()
	if appErr := apperrors.GetAppError(err); appErr != nil {
		message = appErr.Message
	}
	respondMessage(w, status, message)
}
