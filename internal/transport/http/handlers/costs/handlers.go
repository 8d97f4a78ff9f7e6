package costshandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/NikGojani/san-rise-sub001/internal/domain/costs"
	"github.com/NikGojani/san-rise-sub001/internal/domain/finance"
	"github.com/NikGojani/san-rise-sub001/internal/transport/http/api"
	"github.com/NikGojani/san-rise-sub001/internal/transport/http/middleware"
	"github.com/NikGojani/san-rise-sub001/internal/transport/http/shared"
)

var costTypes = []string{"one-time", "monthly", "yearly"}

type Handler struct {
	Store *costs.Store
	Now   func() time.Time
}

func NewHandler(db *pgxpool.Pool) *Handler {
	return &Handler{Store: costs.NewStore(db), Now: time.Now}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/costs", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/summary", h.handleSummary)
		r.Route("/{costID}", func(r chi.Router) {
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

type costPayload struct {
	Name        string             `json:"name"`
	Amount      any                `json:"amount"`
	Category    string             `json:"category"`
	Type        string             `json:"type"`
	Date        string             `json:"date"`
	Description string             `json:"description"`
	Attachments []costs.Attachment `json:"attachments"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID, ok := h.authorized(w, r)
	if !ok {
		return
	}

	list, err := h.Store.List(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "cost_list_failed", "failed to list additional costs", requestID)
		return
	}
	api.Success(w, list, requestID)
}

// handleSummary reports the monthly total for the requested month, defaulting
// to the current one. The result is always computed fresh; one-time costs make
// it time-dependent.
func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	requestID, ok := h.authorized(w, r)
	if !ok {
		return
	}

	now := h.Now()
	if monthParam := r.URL.Query().Get("month"); monthParam != "" {
		month, errMonth := strconv.Atoi(monthParam)
		year, errYear := strconv.Atoi(r.URL.Query().Get("year"))
		if errMonth != nil || errYear != nil || month < 1 || month > 12 {
			api.Fail(w, http.StatusBadRequest, "invalid_month", "month and year must be valid integers", requestID)
			return
		}
		now = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	}

	list, err := h.Store.List(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "cost_summary_failed", "failed to summarize additional costs", requestID)
		return
	}

	api.Success(w, map[string]any{
		"month":        int(now.Month()),
		"year":         now.Year(),
		"monthlyTotal": finance.MonthlyAdditionalTotal(costs.Entries(list), now),
		"costCount":    len(list),
	}, requestID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	requestID, ok := h.authorized(w, r)
	if !ok {
		return
	}

	cost, err := h.Store.Get(r.Context(), chi.URLParam(r, "costID"))
	if errors.Is(err, costs.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "additional cost not found", requestID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "cost_get_failed", "failed to load additional cost", requestID)
		return
	}
	api.Success(w, cost, requestID)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	requestID, ok := h.authorized(w, r)
	if !ok {
		return
	}

	cost, ok := h.decodeAndValidate(w, r, requestID)
	if !ok {
		return
	}

	id, err := h.Store.Create(r.Context(), *cost)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "cost_create_failed", "failed to create additional cost", requestID)
		return
	}
	api.Created(w, map[string]string{"id": id}, requestID)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	requestID, ok := h.authorized(w, r)
	if !ok {
		return
	}

	cost, ok := h.decodeAndValidate(w, r, requestID)
	if !ok {
		return
	}
	cost.ID = chi.URLParam(r, "costID")

	err := h.Store.Update(r.Context(), *cost)
	if errors.Is(err, costs.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "additional cost not found", requestID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "cost_update_failed", "failed to update additional cost", requestID)
		return
	}
	api.Success(w, map[string]bool{"updated": true}, requestID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	requestID, ok := h.authorized(w, r)
	if !ok {
		return
	}

	err := h.Store.Delete(r.Context(), chi.URLParam(r, "costID"))
	if errors.Is(err, costs.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "additional cost not found", requestID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "cost_delete_failed", "failed to delete additional cost", requestID)
		return
	}
	api.Success(w, map[string]bool{"deleted": true}, requestID)
}

func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, requestID string) (*costs.AdditionalCost, bool) {
	var payload costPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return nil, false
	}

	amount := finance.Normalize(payload.Amount)

	validator := shared.NewValidator()
	validator.Required("name", payload.Name, "name is required")
	validator.NonNegative("amount", amount)
	validator.Required("type", payload.Type, "type is required")
	validator.Enum("type", payload.Type, costTypes, "must be one of one-time, monthly, yearly")
	date, _ := validator.Date("date", payload.Date)

	if validator.Reject(w, requestID) {
		return nil, false
	}

	return &costs.AdditionalCost{
		Name:        payload.Name,
		Amount:      amount,
		Category:    payload.Category,
		Type:        finance.CostType(payload.Type),
		Date:        date,
		Description: payload.Description,
		Attachments: payload.Attachments,
	}, true
}
