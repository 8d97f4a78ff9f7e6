package taskshandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/NikGojani/san-rise-sub001/internal/domain/tasks"
	"github.com/NikGojani/san-rise-sub001/internal/transport/http/api"
	"github.com/NikGojani/san-rise-sub001/internal/transport/http/middleware"
	"github.com/NikGojani/san-rise-sub001/internal/transport/http/shared"
)

type Handler struct {
	Store *tasks.Store
}

func NewHandler(db *pgxpool.Pool) *Handler {
	return &Handler{Store: tasks.NewStore(db)}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/tasks", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Route("/{taskID}", func(r chi.Router) {
			r.Get("/", h.handleGet)
			r.Put("/", h.handleUpdate)
			r.Patch("/status", h.handleStatus)
			r.Delete("/", h.handleDelete)
		})
	})
}

func (h *Handler) authorized(w http.ResponseWriter, r *http.Request) (string, bool) {
	requestID := middleware.GetRequestID(r.Context())
	if _, ok := middleware.GetUser(r.Context()); !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestID)
		return requestID, false
	}
	return requestID, true
}

type taskPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	Assignee    string `json:"assignee"`
	DueDate     string `json:"dueDate"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID, ok := h.authorized(w, r)
	if !ok {
		return
	}

	list, err := h.Store.List(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "task_list_failed", "failed to list tasks", requestID)
		return
	}
	api.Success(w, list, requestID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	requestID, ok := h.authorized(w, r)
	if !ok {
		return
	}

	task, err := h.Store.Get(r.Context(), chi.URLParam(r, "taskID"))
	if errors.Is(err, tasks.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "task not found", requestID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "task_get_failed", "failed to load task", requestID)
		return
	}
	api.Success(w, task, requestID)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	requestID, ok := h.authorized(w, r)
	if !ok {
		return
	}

	task, ok := h.decodeAndValidate(w, r, requestID)
	if !ok {
		return
	}

	id, err := h.Store.Create(r.Context(), *task)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "task_create_failed", "failed to create task", requestID)
		return
	}
	api.Created(w, map[string]string{"id": id}, requestID)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	requestID, ok := h.authorized(w, r)
	if !ok {
		return
	}

	task, ok := h.decodeAndValidate(w, r, requestID)
	if !ok {
		return
	}
	task.ID = chi.URLParam(r, "taskID")

	err := h.Store.Update(r.Context(), *task)
	if errors.Is(err, tasks.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "task not found", requestID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "task_update_failed", "failed to update task", requestID)
		return
	}
	api.Success(w, map[string]bool{"updated": true}, requestID)
}

func (h *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	requestID, ok := h.authorized(w, r)
	if !ok {
		return
	}

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	validator := shared.NewValidator()
	validator.Required("status", payload.Status, "status is required")
	validator.Enum("status", payload.Status, tasks.Statuses, "must be one of todo, in-progress, done")
	if validator.Reject(w, requestID) {
		return
	}

	err := h.Store.UpdateStatus(r.Context(), chi.URLParam(r, "taskID"), payload.Status)
	if errors.Is(err, tasks.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "task not found", requestID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "task_status_failed", "failed to update task status", requestID)
		return
	}
	api.Success(w, map[string]bool{"updated": true}, requestID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	requestID, ok := h.authorized(w, r)
	if !ok {
		return
	}

	err := h.Store.Delete(r.Context(), chi.URLParam(r, "taskID"))
	if errors.Is(err, tasks.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "task not found", requestID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "task_delete_failed", "failed to delete task", requestID)
		return
	}
	api.Success(w, map[string]bool{"deleted": true}, requestID)
}

func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, requestID string) (*tasks.Task, bool) {
	var payload taskPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return nil, false
	}

	if payload.Status == "" {
		payload.Status = tasks.StatusTodo
	}
	if payload.Priority == "" {
		payload.Priority = tasks.PriorityMedium
	}

	validator := shared.NewValidator()
	validator.Required("title", payload.Title, "title is required")
	validator.Enum("status", payload.Status, tasks.Statuses, "must be one of todo, in-progress, done")
	validator.Enum("priority", payload.Priority, tasks.Priorities, "must be one of low, medium, high")

	var dueDate *time.Time
	if payload.DueDate != "" {
		parsed, dateOK := validator.Date("dueDate", payload.DueDate)
		if dateOK {
			dueDate = &parsed
		}
	}

	if validator.Reject(w, requestID) {
		return nil, false
	}

	return &tasks.Task{
		Title:       payload.Title,
		Description: payload.Description,
		Status:      payload.Status,
		Priority:    payload.Priority,
		Assignee:    payload.Assignee,
		DueDate:     dueDate,
	}, true
}
