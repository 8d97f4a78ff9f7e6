package finance

const (
	// Payment processor schedule applied when no external ticketing fee is
	// configured: 1.9% of revenue plus a flat 0.25 per ticket.
	platformFeeRevenueRate = 0.019
	platformFeePerTicket   = 0.25
)

type EventInput struct {
	TicketCount       float64
	TicketPrice       float64
	VKPercentage      float64
	Termine           float64
	GemaPercentage    float64
	MarketingCosts    float64
	ArtistCosts       float64
	LocationCosts     float64
	MerchandiserCosts float64
	TravelCosts       float64
	Rabatt            float64
	Aufbauhelfer      float64
	VariableCosts     float64
	TicketingFee      float64
}

type EventResult struct {
	SoldTickets    float64 `json:"soldTickets"`
	Revenue        float64 `json:"revenue"`
	GemaFee        float64 `json:"gemaFee"`
	PlatformFee    float64 `json:"platformFee"`
	BasicCosts     float64 `json:"basicCosts"`
	OptionalCosts  float64 `json:"optionalCosts"`
	DiscountAmount float64 `json:"discountAmount"`
	Profit         float64 `json:"profit"`
	MonthlyRevenue float64 `json:"monthlyRevenue"`
}

// CalculateEvent projects the economics of one planned event. Percentages
// are trusted as validated; no clamping happens here, so out-of-range input
// produces out-of-range output.
func CalculateEvent(in EventInput) EventResult {
	sellThrough := in.VKPercentage / 100
	soldTickets := in.TicketCount * in.Termine * sellThrough
	revenue := soldTickets * in.TicketPrice
	gemaFee := revenue * (in.GemaPercentage / 100)

	// An external ticketing fee replaces the platform fee entirely.
	var platformFee float64
	if in.TicketingFee <= 0 {
		ticketsPerOccurrence := in.TicketCount * sellThrough
		revenuePerOccurrence := ticketsPerOccurrence * in.TicketPrice
		feePerOccurrence := revenuePerOccurrence*platformFeeRevenueRate + ticketsPerOccurrence*platformFeePerTicket
		platformFee = feePerOccurrence * in.Termine
	}

	basicCosts := gemaFee + in.MarketingCosts + in.ArtistCosts + in.LocationCosts + in.MerchandiserCosts + in.TravelCosts
	optionalCosts := in.Aufbauhelfer + in.VariableCosts + in.TicketingFee
	discountAmount := revenue * (in.Rabatt / 100)
	profit := revenue - basicCosts - optionalCosts - platformFee - discountAmount

	return EventResult{
		SoldTickets:    soldTickets,
		Revenue:        revenue,
		GemaFee:        gemaFee,
		PlatformFee:    platformFee,
		BasicCosts:     basicCosts,
		OptionalCosts:  optionalCosts,
		DiscountAmount: discountAmount,
		Profit:         profit,
		// The profit figure already covers all occurrences in the period.
		MonthlyRevenue: profit,
	}
}
