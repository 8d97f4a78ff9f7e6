package calculatorhandler

import (
	"encoding/json"
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
	Settings    *settings.Store
	CompanyName string
}

func NewHandler(db *pgxpool.Pool, companyName string) *Handler {
	return &Handler{Settings: settings.NewStore(db), CompanyName: companyName}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/calculator/events", h.handleCalculate)
}

type calcPayload struct {
	Name              string   `json:"name"`
	TicketCount       float64  `json:"ticketCount"`
	TicketPrice       float64  `json:"ticketPrice"`
	VKPercentage      float64  `json:"vkPercentage"`
	Termine           float64  `json:"termine"`
	GemaPercentage    *float64 `json:"gemaPercentage"`
	MarketingCosts    float64  `json:"marketingCosts"`
	ArtistCosts       float64  `json:"artistCosts"`
	LocationCosts     float64  `json:"locationCosts"`
	MerchandiserCosts float64  `json:"merchandiserCosts"`
	TravelCosts       float64  `json:"travelCosts"`
	Rabatt            float64  `json:"rabatt"`
	Aufbauhelfer      float64  `json:"aufbauhelfer"`
	VariableCosts     float64  `json:"variableCosts"`
	TicketingFee      float64  `json:"ticketingFee"`
}

// handleCalculate runs the event economics without persisting anything. The
// calculator itself never clamps, so all bounds are enforced here.
func (h *Handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	if _, ok := middleware.GetUser(r.Context()); !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestID)
		return
	}

	var payload calcPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	var gema float64
	if payload.GemaPercentage != nil {
		gema = *payload.GemaPercentage
	} else {
		gema = h.defaultGema(r)
	}

	validator := shared.NewValidator()
	validator.Min("ticketCount", payload.TicketCount, 1)
	validator.Min("termine", payload.Termine, 1)
	validator.NonNegative("ticketPrice", payload.TicketPrice)
	validator.Percentage("vkPercentage", payload.VKPercentage)
	validator.Percentage("gemaPercentage", gema)
	validator.NonNegative("rabatt", payload.Rabatt)
	validator.NonNegative("marketingCosts", payload.MarketingCosts)
	validator.NonNegative("artistCosts", payload.ArtistCosts)
	validator.NonNegative("locationCosts", payload.LocationCosts)
	validator.NonNegative("merchandiserCosts", payload.MerchandiserCosts)
	validator.NonNegative("travelCosts", payload.TravelCosts)
	validator.NonNegative("aufbauhelfer", payload.Aufbauhelfer)
	validator.NonNegative("variableCosts", payload.VariableCosts)
	validator.NonNegative("ticketingFee", payload.TicketingFee)
	if validator.Reject(w, requestID) {
		return
	}

	result := finance.CalculateEvent(finance.EventInput{
		TicketCount:       payload.TicketCount,
		TicketPrice:       payload.TicketPrice,
		VKPercentage:      payload.VKPercentage,
		Termine:           payload.Termine,
		GemaPercentage:    gema,
		MarketingCosts:    payload.MarketingCosts,
		ArtistCosts:       payload.ArtistCosts,
		LocationCosts:     payload.LocationCosts,
		MerchandiserCosts: payload.MerchandiserCosts,
		TravelCosts:       payload.TravelCosts,
		Rabatt:            payload.Rabatt,
		Aufbauhelfer:      payload.Aufbauhelfer,
		VariableCosts:     payload.VariableCosts,
		TicketingFee:      payload.TicketingFee,
	})

	api.Success(w, map[string]any{
		"name":   payload.Name,
		"result": result,
	}, requestID)
}

func (h *Handler) defaultGema(r *http.Request) float64 {
	current, err := h.Settings.Get(r.Context())
	if err != nil {
		return settings.Defaults(h.CompanyName).GemaPercentage
	}
	return current.GemaPercentage
}
