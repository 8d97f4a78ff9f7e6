package finance

import "testing"

func TestMonthlyEquivalent(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		interval Interval
		want     float64
	}{
		{name: "monthly unchanged", amount: 500, interval: IntervalMonthly, want: 500},
		{name: "yearly split over twelve months", amount: 1200, interval: IntervalYearly, want: 100},
		{name: "one-time does not recur", amount: 999, interval: IntervalOnce, want: 0},
		{name: "unknown interval", amount: 100, interval: Interval("weekly"), want: 0},
		{name: "empty interval", amount: 100, interval: "", want: 0},
		{name: "zero amount", amount: 0, interval: IntervalMonthly, want: 0},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := MonthlyEquivalent(tc.amount, tc.interval); got != tc.want {
				t.Fatalf("MonthlyEquivalent(%v, %q) = %v, want %v", tc.amount, tc.interval, got, tc.want)
			}
		})
	}
}

func TestYearlyEquivalent(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		interval Interval
		want     float64
	}{
		{name: "monthly times twelve", amount: 100, interval: IntervalMonthly, want: 1200},
		{name: "yearly unchanged", amount: 1200, interval: IntervalYearly, want: 1200},
		{name: "one-time counts once", amount: 750, interval: IntervalOnce, want: 750},
		{name: "unknown interval", amount: 100, interval: Interval("daily"), want: 0},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := YearlyEquivalent(tc.amount, tc.interval); got != tc.want {
				t.Fatalf("YearlyEquivalent(%v, %q) = %v, want %v", tc.amount, tc.interval, got, tc.want)
			}
		})
	}
}

func TestEquivalentsRoundTrip(t *testing.T) {
	for _, amount := range []float64{0, 12, 1200, 54321} {
		monthly := MonthlyEquivalent(amount, IntervalYearly)
		if got := YearlyEquivalent(monthly, IntervalMonthly); got != amount {
			t.Fatalf("round trip for %v: got %v", amount, got)
		}
	}
}
