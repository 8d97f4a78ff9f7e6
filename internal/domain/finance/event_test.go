package finance

import "testing"

func baseEvent() EventInput {
	return EventInput{
		TicketCount:    100,
		Termine:        1,
		VKPercentage:   50,
		TicketPrice:    20,
		GemaPercentage: 5,
	}
}

func TestCalculateEvent(t *testing.T) {
	result := CalculateEvent(baseEvent())

	if result.SoldTickets != 50 {
		t.Fatalf("expected 50 sold tickets, got %v", result.SoldTickets)
	}
	if result.Revenue != 1000 {
		t.Fatalf("expected revenue 1000, got %v", result.Revenue)
	}
	if result.GemaFee != 50 {
		t.Fatalf("expected gema fee 50, got %v", result.GemaFee)
	}
	// 1.9% of 1000 plus 0.25 for each of 50 tickets.
	if result.PlatformFee != 31.5 {
		t.Fatalf("expected platform fee 31.5, got %v", result.PlatformFee)
	}
	if result.Profit != 918.5 {
		t.Fatalf("expected profit 918.5, got %v", result.Profit)
	}
	if result.MonthlyRevenue != result.Profit {
		t.Fatalf("monthly revenue must alias profit, got %v vs %v", result.MonthlyRevenue, result.Profit)
	}
}

func TestCalculateEventTicketingFeeWaivesPlatformFee(t *testing.T) {
	input := baseEvent()
	input.TicketingFee = 100

	result := CalculateEvent(input)

	if result.PlatformFee != 0 {
		t.Fatalf("expected platform fee waived, got %v", result.PlatformFee)
	}
	if result.OptionalCosts != 100 {
		t.Fatalf("expected optional costs 100, got %v", result.OptionalCosts)
	}
	if result.Profit != 850 {
		t.Fatalf("expected profit 850, got %v", result.Profit)
	}
}

func TestCalculateEventMultipleOccurrences(t *testing.T) {
	input := baseEvent()
	input.Termine = 4

	result := CalculateEvent(input)

	if result.SoldTickets != 200 {
		t.Fatalf("expected 200 sold tickets, got %v", result.SoldTickets)
	}
	if result.Revenue != 4000 {
		t.Fatalf("expected revenue 4000, got %v", result.Revenue)
	}
	// Per-occurrence fee of 31.5 scales with the number of occurrences.
	if result.PlatformFee != 126 {
		t.Fatalf("expected platform fee 126, got %v", result.PlatformFee)
	}
}

func TestCalculateEventDiscountOnGrossRevenue(t *testing.T) {
	input := baseEvent()
	input.Rabatt = 10

	result := CalculateEvent(input)

	if result.DiscountAmount != 100 {
		t.Fatalf("expected discount 100, got %v", result.DiscountAmount)
	}
	if result.Profit != 818.5 {
		t.Fatalf("expected profit 818.5, got %v", result.Profit)
	}
}

func TestCalculateEventCostRollup(t *testing.T) {
	input := baseEvent()
	input.MarketingCosts = 100
	input.ArtistCosts = 200
	input.LocationCosts = 150
	input.MerchandiserCosts = 50
	input.TravelCosts = 75
	input.Aufbauhelfer = 40
	input.VariableCosts = 10

	result := CalculateEvent(input)

	if result.BasicCosts != 625 {
		t.Fatalf("expected basic costs 625, got %v", result.BasicCosts)
	}
	if result.OptionalCosts != 50 {
		t.Fatalf("expected optional costs 50, got %v", result.OptionalCosts)
	}
	want := 1000.0 - 625 - 50 - 31.5
	if result.Profit != want {
		t.Fatalf("expected profit %v, got %v", want, result.Profit)
	}
}

func TestCalculateEventIsPure(t *testing.T) {
	input := baseEvent()
	first := CalculateEvent(input)
	second := CalculateEvent(input)
	if first != second {
		t.Fatalf("expected identical results, got %+v vs %+v", first, second)
	}
}

func TestCalculateEventZeroInput(t *testing.T) {
	result := CalculateEvent(EventInput{})
	if result.Revenue != 0 || result.Profit != 0 || result.PlatformFee != 0 {
		t.Fatalf("expected all-zero result, got %+v", result)
	}
}
