package reportshandler

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/NikGojani/san-rise-sub001/internal/domain/contracts"
	"github.com/NikGojani/san-rise-sub001/internal/domain/costs"
	"github.com/NikGojani/san-rise-sub001/internal/domain/employees"
	"github.com/NikGojani/san-rise-sub001/internal/domain/events"
	"github.com/NikGojani/san-rise-sub001/internal/domain/finance"
	"github.com/NikGojani/san-rise-sub001/internal/domain/reports"
	"github.com/NikGojani/san-rise-sub001/internal/domain/settings"
	"github.com/NikGojani/san-rise-sub001/internal/transport/http/api"
	"github.com/NikGojani/san-rise-sub001/internal/transport/http/middleware"
)

type Handler struct {
	Contracts *contracts.Store
	Employees *employees.Store
	Costs     *costs.Store
	Events    *events.Store
	Settings  *settings.Store
	Service   *reports.Service
	Now       func() time.Time

	companyName string
}

func NewHandler(db *pgxpool.Pool, companyName string) *Handler {
	return &Handler{
		Contracts:   contracts.NewStore(db),
		Employees:   employees.NewStore(db),
		Costs:       costs.NewStore(db),
		Events:      events.NewStore(db),
		Settings:    settings.NewStore(db),
		Service:     reports.NewService(),
		Now:         time.Now,
		companyName: companyName,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/reports/summary.pdf", h.handleSummaryPDF)
	r.Get("/reports/events/{eventID}.pdf", h.handleEventPDF)
}

func (h *Handler) authorized(w http.ResponseWriter, r *http.Request) (string, bool) {
	requestID := middleware.GetRequestID(r.Context())
	if _, ok := middleware.GetUser(r.Context()); !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestID)
		return requestID, false
	}
	return requestID, true
}

func (h *Handler) handleSummaryPDF(w http.ResponseWriter, r *http.Request) {
	requestID, ok := h.authorized(w, r)
	if !ok {
		return
	}
	ctx := r.Context()

	contractList, err := h.Contracts.List(ctx)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "report_failed", "failed to load contracts", requestID)
		return
	}
	employeeList, err := h.Employees.List(ctx)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "report_failed", "failed to load employees", requestID)
		return
	}
	costList, err := h.Costs.List(ctx)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "report_failed", "failed to load additional costs", requestID)
		return
	}

	cfg := settings.Defaults(h.companyName)
	if stored, err := h.Settings.Get(ctx); err == nil {
		cfg = *stored
	} else if !errors.Is(err, settings.ErrNotFound) {
		api.Fail(w, http.StatusInternalServerError, "report_failed", "failed to load settings", requestID)
		return
	}

	now := h.Now()
	summary := finance.MonthlySummary(
		contracts.CostInputs(contractList),
		employees.CostInputs(employeeList),
		costs.Entries(costList),
		now,
	)

	var buf bytes.Buffer
	if err := h.Service.SummaryPDF(&buf, summary, cfg, now); err != nil {
		api.Fail(w, http.StatusInternalServerError, "report_failed", "failed to render summary report", requestID)
		return
	}
	servePDF(w, fmt.Sprintf("cost-summary-%s.pdf", now.Format("2006-01")), buf.Bytes())
}

func (h *Handler) handleEventPDF(w http.ResponseWriter, r *http.Request) {
	requestID, ok := h.authorized(w, r)
	if !ok {
		return
	}
	ctx := r.Context()

	eventID := chi.URLParam(r, "eventID")
	event, err := h.Events.Get(ctx, eventID)
	if err != nil {
		if errors.Is(err, events.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "event not found", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "report_failed", "failed to load event", requestID)
		return
	}

	currency := settings.DefaultCurrency
	if cfg, err := h.Settings.Get(ctx); err == nil {
		currency = cfg.Currency
	}

	var buf bytes.Buffer
	if err := h.Service.EventPDF(&buf, *event, currency); err != nil {
		api.Fail(w, http.StatusInternalServerError, "report_failed", "failed to render event report", requestID)
		return
	}
	servePDF(w, fmt.Sprintf("event-%s.pdf", event.ID), buf.Bytes())
}

// servePDF buffers the whole document first so render failures can still
// produce a JSON error instead of a truncated download.
func servePDF(w http.ResponseWriter, filename string, body []byte) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", fmt.Sprint(len(body)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
