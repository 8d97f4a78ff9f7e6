package eventshandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/NikGojani/san-rise-sub001/internal/domain/events"
	"github.com/NikGojani/san-rise-sub001/internal/transport/http/api"
	"github.com/NikGojani/san-rise-sub001/internal/transport/http/middleware"
	"github.com/NikGojani/san-rise-sub001/internal/transport/http/shared"
)

type Handler struct {
	Store *events.Store
}

func NewHandler(db *pgxpool.Pool) *Handler {
	return &Handler{Store: events.NewStore(db)}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/events", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Route("/{eventID}", func(r chi.Router) {
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

type eventPayload struct {
	Name              string  `json:"name"`
	Date              string  `json:"date"`
	Description       string  `json:"description"`
	TicketCount       float64 `json:"ticketCount"`
	TicketPrice       float64 `json:"ticketPrice"`
	VKPercentage      float64 `json:"vkPercentage"`
	Termine           float64 `json:"termine"`
	GemaPercentage    float64 `json:"gemaPercentage"`
	MarketingCosts    float64 `json:"marketingCosts"`
	ArtistCosts       float64 `json:"artistCosts"`
	LocationCosts     float64 `json:"locationCosts"`
	MerchandiserCosts float64 `json:"merchandiserCosts"`
	TravelCosts       float64 `json:"travelCosts"`
	Rabatt            float64 `json:"rabatt"`
	Aufbauhelfer      float64 `json:"aufbauhelfer"`
	VariableCosts     float64 `json:"variableCosts"`
	TicketingFee      float64 `json:"ticketingFee"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID, ok := h.authorized(w, r)
	if !ok {
		return
	}

	list, err := h.Store.List(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "event_list_failed", "failed to list events", requestID)
		return
	}
	api.Success(w, list, requestID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	requestID, ok := h.authorized(w, r)
	if !ok {
		return
	}

	event, err := h.Store.Get(r.Context(), chi.URLParam(r, "eventID"))
	if errors.Is(err, events.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "event not found", requestID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "event_get_failed", "failed to load event", requestID)
		return
	}
	api.Success(w, event, requestID)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	requestID, ok := h.authorized(w, r)
	if !ok {
		return
	}

	event, ok := h.decodeAndValidate(w, r, requestID)
	if !ok {
		return
	}

	id, err := h.Store.Create(r.Context(), *event)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "event_create_failed", "failed to create event", requestID)
		return
	}
	api.Created(w, map[string]string{"id": id}, requestID)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	requestID, ok := h.authorized(w, r)
	if !ok {
		return
	}

	event, ok := h.decodeAndValidate(w, r, requestID)
	if !ok {
		return
	}
	event.ID = chi.URLParam(r, "eventID")

	err := h.Store.Update(r.Context(), *event)
	if errors.Is(err, events.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "event not found", requestID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "event_update_failed", "failed to update event", requestID)
		return
	}
	api.Success(w, map[string]bool{"updated": true}, requestID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	requestID, ok := h.authorized(w, r)
	if !ok {
		return
	}

	err := h.Store.Delete(r.Context(), chi.URLParam(r, "eventID"))
	if errors.Is(err, events.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "event not found", requestID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "event_delete_failed", "failed to delete event", requestID)
		return
	}
	api.Success(w, map[string]bool{"deleted": true}, requestID)
}

func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, requestID string) (*events.Event, bool) {
	var payload eventPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return nil, false
	}

	validator := shared.NewValidator()
	validator.Required("name", payload.Name, "name is required")
	validator.Min("ticketCount", payload.TicketCount, 1)
	validator.Min("termine", payload.Termine, 1)
	validator.NonNegative("ticketPrice", payload.TicketPrice)
	validator.Percentage("vkPercentage", payload.VKPercentage)
	validator.Percentage("gemaPercentage", payload.GemaPercentage)
	validator.NonNegative("rabatt", payload.Rabatt)
	validator.NonNegative("marketingCosts", payload.MarketingCosts)
	validator.NonNegative("artistCosts", payload.ArtistCosts)
	validator.NonNegative("locationCosts", payload.LocationCosts)
	validator.NonNegative("merchandiserCosts", payload.MerchandiserCosts)
	validator.NonNegative("travelCosts", payload.TravelCosts)
	validator.NonNegative("aufbauhelfer", payload.Aufbauhelfer)
	validator.NonNegative("variableCosts", payload.VariableCosts)
	validator.NonNegative("ticketingFee", payload.TicketingFee)

	var date *time.Time
	if payload.Date != "" {
		parsed, dateOK := validator.Date("date", payload.Date)
		if dateOK {
			date = &parsed
		}
	}

	if validator.Reject(w, requestID) {
		return nil, false
	}

	return &events.Event{
		Name:              payload.Name,
		Date:              date,
		Description:       payload.Description,
		TicketCount:       payload.TicketCount,
		TicketPrice:       payload.TicketPrice,
		VKPercentage:      payload.VKPercentage,
		Termine:           payload.Termine,
		GemaPercentage:    payload.GemaPercentage,
		MarketingCosts:    payload.MarketingCosts,
		ArtistCosts:       payload.ArtistCosts,
		LocationCosts:     payload.LocationCosts,
		MerchandiserCosts: payload.MerchandiserCosts,
		TravelCosts:       payload.TravelCosts,
		Rabatt:            payload.Rabatt,
		Aufbauhelfer:      payload.Aufbauhelfer,
		VariableCosts:     payload.VariableCosts,
		TicketingFee:      payload.TicketingFee,
	}, true
}
