package settingshandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/NikGojani/san-rise-sub001/internal/domain/finance"
	"github.com/NikGojani/san-rise-sub001/internal/domain/settings"
	"github.com/NikGojani/san-rise-sub001/internal/transport/http/api"
	"github.com/NikGojani/san-rise-sub001/internal/transport/http/middleware"
	"github.com/NikGojani/san-rise-sub001/internal/transport/http/shared"
)

type Handler struct {
	Store       *settings.Store
	CompanyName string
}

func NewHandler(db *pgxpool.Pool, companyName string) *Handler {
	return &Handler{Store: settings.NewStore(db), CompanyName: companyName}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/settings", func(r chi.Router) {
		r.Get("/", h.handleGet)
		r.Put("/", h.handleSave)
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

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	requestID, ok := h.authorized(w, r)
	if !ok {
		return
	}

	current, err := h.Store.Get(r.Context())
	if errors.Is(err, settings.ErrNotFound) {
		api.Success(w, settings.Defaults(h.CompanyName), requestID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "settings_get_failed", "failed to load settings", requestID)
		return
	}
	api.Success(w, current, requestID)
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	requestID, ok := h.authorized(w, r)
	if !ok {
		return
	}

	var payload settings.Settings
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	validator := shared.NewValidator()
	validator.Required("companyName", payload.CompanyName, "company name is required")
	validator.Required("currency", payload.Currency, "currency is required")
	validator.Percentage("gemaPercentage", payload.GemaPercentage)
	validator.Percentage("profitDistribution.nik", payload.ProfitDistribution.Nik)
	validator.Percentage("profitDistribution.adrian", payload.ProfitDistribution.Adrian)
	validator.Percentage("profitDistribution.sebastian", payload.ProfitDistribution.Sebastian)
	validator.Percentage("profitDistribution.mexify", payload.ProfitDistribution.Mexify)
	if validator.Reject(w, requestID) {
		return
	}

	err := h.Store.Save(r.Context(), payload)
	if errors.Is(err, finance.ErrDistributionSum) {
		// The defect is relational, so it is reported against the whole
		// distribution rather than a single share.
		shared.FailValidation(w, requestID, []shared.ValidationIssue{
			{Field: "profitDistribution", Reason: "shares must sum to exactly 100"},
		})
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "settings_save_failed", "failed to save settings", requestID)
		return
	}
	api.Success(w, payload, requestID)
}
