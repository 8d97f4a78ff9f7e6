package employeeshandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/NikGojani/san-rise-sub001/internal/domain/employees"
	"github.com/NikGojani/san-rise-sub001/internal/domain/finance"
	"github.com/NikGojani/san-rise-sub001/internal/transport/http/api"
	"github.com/NikGojani/san-rise-sub001/internal/transport/http/middleware"
	"github.com/NikGojani/san-rise-sub001/internal/transport/http/shared"
)

const defaultAdditionalPercentage = 20

type Handler struct {
	Store *employees.Store
}

func NewHandler(db *pgxpool.Pool) *Handler {
	return &Handler{Store: employees.NewStore(db)}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/summary", h.handleSummary)
		r.Route("/{employeeID}", func(r chi.Router) {
			r.Get("/", h.handleGet)
			r.Put("/", h.handleUpdate)
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

type employeePayload struct {
	Name                 string              `json:"name"`
	Role                 string              `json:"role"`
	GrossSalary          any                 `json:"grossSalary"`
	AdditionalPercentage *float64            `json:"additionalCostsPercentage"`
	IsActive             *bool               `json:"isActive"`
	StartDate            string              `json:"startDate"`
	Email                string              `json:"email"`
	Phone                string              `json:"phone"`
	Address              string              `json:"address"`
	Files                []employees.FileRef `json:"files"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID, ok := h.authorized(w, r)
	if !ok {
		return
	}

	list, err := h.Store.List(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_list_failed", "failed to list employees", requestID)
		return
	}
	api.Success(w, list, requestID)
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	requestID, ok := h.authorized(w, r)
	if !ok {
		return
	}

	list, err := h.Store.List(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_summary_failed", "failed to summarize employees", requestID)
		return
	}
	api.Success(w, finance.SummarizeEmployees(employees.CostInputs(list)), requestID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	requestID, ok := h.authorized(w, r)
	if !ok {
		return
	}

	emp, err := h.Store.Get(r.Context(), chi.URLParam(r, "employeeID"))
	if errors.Is(err, employees.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", requestID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_get_failed", "failed to load employee", requestID)
		return
	}
	api.Success(w, emp, requestID)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	requestID, ok := h.authorized(w, r)
	if !ok {
		return
	}

	emp, ok := h.decodeAndValidate(w, r, requestID)
	if !ok {
		return
	}

	id, err := h.Store.Create(r.Context(), *emp)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_create_failed", "failed to create employee", requestID)
		return
	}
	api.Created(w, map[string]string{"id": id}, requestID)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	requestID, ok := h.authorized(w, r)
	if !ok {
		return
	}

	emp, ok := h.decodeAndValidate(w, r, requestID)
	if !ok {
		return
	}
	emp.ID = chi.URLParam(r, "employeeID")

	err := h.Store.Update(r.Context(), *emp)
	if errors.Is(err, employees.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", requestID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_update_failed", "failed to update employee", requestID)
		return
	}
	api.Success(w, map[string]bool{"updated": true}, requestID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	requestID, ok := h.authorized(w, r)
	if !ok {
		return
	}

	err := h.Store.Delete(r.Context(), chi.URLParam(r, "employeeID"))
	if errors.Is(err, employees.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", requestID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_delete_failed", "failed to delete employee", requestID)
		return
	}
	api.Success(w, map[string]bool{"deleted": true}, requestID)
}

func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, requestID string) (*employees.Employee, bool) {
	var payload employeePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return nil, false
	}

	salary := finance.Normalize(payload.GrossSalary)
	percentage := float64(defaultAdditionalPercentage)
	if payload.AdditionalPercentage != nil {
		percentage = *payload.AdditionalPercentage
	}
	active := true
	if payload.IsActive != nil {
		active = *payload.IsActive
	}

	validator := shared.NewValidator()
	validator.Required("name", payload.Name, "name is required")
	validator.NonNegative("grossSalary", salary)
	validator.Percentage("additionalCostsPercentage", percentage)

	var startDate *time.Time
	if payload.StartDate != "" {
		parsed, dateOK := validator.Date("startDate", payload.StartDate)
		if dateOK {
			startDate = &parsed
		}
	}

	if validator.Reject(w, requestID) {
		return nil, false
	}

	return &employees.Employee{
		Name:                 payload.Name,
		Role:                 payload.Role,
		GrossSalary:          salary,
		AdditionalPercentage: percentage,
		IsActive:             active,
		StartDate:            startDate,
		Email:                payload.Email,
		Phone:                payload.Phone,
		Address:              payload.Address,
		Files:                payload.Files,
	}, true
}
