package events

import (
	"time"

	"github.com/NikGojani/san-rise-sub001/internal/domain/finance"
)

// Event is a persisted planning entry: the calculator inputs plus the last
// computed economics snapshot.
type Event struct {
	ID                string              `json:"id"`
	Name              string              `json:"name"`
	Date              *time.Time          `json:"date,omitempty"`
	Description       string              `json:"description,omitempty"`
	TicketCount       float64             `json:"ticketCount"`
	TicketPrice       float64             `json:"ticketPrice"`
	VKPercentage      float64             `json:"vkPercentage"`
	Termine           float64             `json:"termine"`
	GemaPercentage    float64             `json:"gemaPercentage"`
	MarketingCosts    float64             `json:"marketingCosts"`
	ArtistCosts       float64             `json:"artistCosts"`
	LocationCosts     float64             `json:"locationCosts"`
	MerchandiserCosts float64             `json:"merchandiserCosts"`
	TravelCosts       float64             `json:"travelCosts"`
	Rabatt            float64             `json:"rabatt"`
	Aufbauhelfer      float64             `json:"aufbauhelfer"`
	VariableCosts     float64             `json:"variableCosts"`
	TicketingFee      float64             `json:"ticketingFee"`
	Result            finance.EventResult `json:"result"`
	CreatedAt         time.Time           `json:"createdAt"`
	UpdatedAt         time.Time           `json:"updatedAt"`
}

func (e Event) CalculatorInput() finance.EventInput {
	return finance.EventInput{
		TicketCount:       e.TicketCount,
		TicketPrice:       e.TicketPrice,
		VKPercentage:      e.VKPercentage,
		Termine:           e.Termine,
		GemaPercentage:    e.GemaPercentage,
		MarketingCosts:    e.MarketingCosts,
		ArtistCosts:       e.ArtistCosts,
		LocationCosts:     e.LocationCosts,
		MerchandiserCosts: e.MerchandiserCosts,
		TravelCosts:       e.TravelCosts,
		Rabatt:            e.Rabatt,
		Aufbauhelfer:      e.Aufbauhelfer,
		VariableCosts:     e.VariableCosts,
		TicketingFee:      e.TicketingFee,
	}
}
