package contractshandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/NikGojani/san-rise-sub001/internal/domain/contracts"
	"github.com/NikGojani/san-rise-sub001/internal/domain/finance"
	"github.com/NikGojani/san-rise-sub001/internal/transport/http/api"
	"github.com/NikGojani/san-rise-sub001/internal/transport/http/middleware"
	"github.com/NikGojani/san-rise-sub001/internal/transport/http/shared"
)

var intervals = []string{"monthly", "yearly", "once"}

type Handler struct {
	Store *contracts.Store
}

func NewHandler(db *pgxpool.Pool) *Handler {
	return &Handler{Store: contracts.NewStore(db)}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/contracts", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Route("/{contractID}", func(r chi.Router) {
			r.Get("/", h.handleGet)
			r.Put("/", h.handleUpdate)
			r.Delete("/", h.handleDelete)
		})
	})
}

// contractPayload keeps amount loosely typed: clients and older stored rows
// deliver it as either number or string.
type contractPayload struct {
	Name        string                 `json:"name"`
	Amount      any                    `json:"amount"`
	Category    string                 `json:"category"`
	Interval    string                 `json:"interval"`
	StartDate   string                 `json:"startDate"`
	EndDate     string                 `json:"endDate"`
	Attachments []contracts.Attachment `json:"attachments"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	if _, ok := middleware.GetUser(r.Context()); !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestID)
		return
	}

	list, err := h.Store.List(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "contract_list_failed", "failed to list contracts", requestID)
		return
	}
	api.Success(w, list, requestID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	if _, ok := middleware.GetUser(r.Context()); !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestID)
		return
	}

	contract, err := h.Store.Get(r.Context(), chi.URLParam(r, "contractID"))
	if errors.Is(err, contracts.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "contract not found", requestID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "contract_get_failed", "failed to load contract", requestID)
		return
	}
	api.Success(w, contract, requestID)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	if _, ok := middleware.GetUser(r.Context()); !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestID)
		return
	}

	contract, ok := h.decodeAndValidate(w, r, requestID)
	if !ok {
		return
	}

	id, err := h.Store.Create(r.Context(), *contract)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "contract_create_failed", "failed to create contract", requestID)
		return
	}
	api.Created(w, map[string]string{"id": id}, requestID)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	if _, ok := middleware.GetUser(r.Context()); !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestID)
		return
	}

	contract, ok := h.decodeAndValidate(w, r, requestID)
	if !ok {
		return
	}
	contract.ID = chi.URLParam(r, "contractID")

	err := h.Store.Update(r.Context(), *contract)
	if errors.Is(err, contracts.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "contract not found", requestID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "contract_update_failed", "failed to update contract", requestID)
		return
	}
	api.Success(w, map[string]bool{"updated": true}, requestID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	if _, ok := middleware.GetUser(r.Context()); !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestID)
		return
	}

	err := h.Store.Delete(r.Context(), chi.URLParam(r, "contractID"))
	if errors.Is(err, contracts.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "contract not found", requestID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "contract_delete_failed", "failed to delete contract", requestID)
		return
	}
	api.Success(w, map[string]bool{"deleted": true}, requestID)
}

func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, requestID string) (*contracts.Contract, bool) {
	var payload contractPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return nil, false
	}

	amount := finance.Normalize(payload.Amount)

	validator := shared.NewValidator()
	validator.Required("name", payload.Name, "name is required")
	validator.NonNegative("amount", amount)
	validator.Required("interval", payload.Interval, "interval is required")
	validator.Enum("interval", payload.Interval, intervals, "must be one of monthly, yearly, once")

	startDate, startOK := validator.Date("startDate", payload.StartDate)
	var endDate *time.Time
	if payload.EndDate != "" {
		parsed, endOK := validator.Date("endDate", payload.EndDate)
		if endOK {
			endDate = &parsed
			if startOK {
				validator.DateOrder("startDate", startDate, "endDate", parsed)
			}
		}
	}

	if validator.Reject(w, requestID) {
		return nil, false
	}

	return &contracts.Contract{
		Name:        payload.Name,
		Amount:      amount,
		Category:    payload.Category,
		Interval:    finance.Interval(payload.Interval),
		StartDate:   startDate,
		EndDate:     endDate,
		Attachments: payload.Attachments,
	}, true
}
