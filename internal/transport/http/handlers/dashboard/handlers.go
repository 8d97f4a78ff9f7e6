package dashboardhandler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/NikGojani/san-rise-sub001/internal/domain/contracts"
	"github.com/NikGojani/san-rise-sub001/internal/domain/costs"
	"github.com/NikGojani/san-rise-sub001/internal/domain/employees"
	"github.com/NikGojani/san-rise-sub001/internal/domain/finance"
	"github.com/NikGojani/san-rise-sub001/internal/transport/http/api"
	"github.com/NikGojani/san-rise-sub001/internal/transport/http/middleware"
)

type Handler struct {
	Contracts *contracts.Store
	Employees *employees.Store
	Costs     *costs.Store
	Now       func() time.Time
}

func NewHandler(db *pgxpool.Pool) *Handler {
	return &Handler{
		Contracts: contracts.NewStore(db),
		Employees: employees.NewStore(db),
		Costs:     costs.NewStore(db),
		Now:       time.Now,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/dashboard/summary", h.handleSummary)
}

// handleSummary recomputes from fresh reads on every request. The one-time
// cost check depends on the wall clock, so this result must never be cached
// across a month boundary.
func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	if _, ok := middleware.GetUser(r.Context()); !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestID)
		return
	}

	summary, err := h.Summary(r)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "dashboard_failed", "failed to compute dashboard summary", requestID)
		return
	}
	api.Success(w, summary, requestID)
}

func (h *Handler) Summary(r *http.Request) (finance.Summary, error) {
	ctx := r.Context()

	contractList, err := h.Contracts.List(ctx)
	if err != nil {
		return finance.Summary{}, err
	}
	employeeList, err := h.Employees.List(ctx)
	if err != nil {
		return finance.Summary{}, err
	}
	costList, err := h.Costs.List(ctx)
	if err != nil {
		return finance.Summary{}, err
	}

	return finance.MonthlySummary(
		contracts.CostInputs(contractList),
		employees.CostInputs(employeeList),
		costs.Entries(costList),
		h.Now(),
	), nil
}
