package finance

import (
	"testing"
	"time"
)

func TestMonthlyAdditionalTotal(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		costs []AdditionalCostEntry
		want  float64
	}{
		{
			name:  "monthly counts in full",
			costs: []AdditionalCostEntry{{Amount: 120, Type: CostTypeMonthly}},
			want:  120,
		},
		{
			name:  "yearly spread over twelve months",
			costs: []AdditionalCostEntry{{Amount: 1200, Type: CostTypeYearly}},
			want:  100,
		},
		{
			name:  "one-time inside current month",
			costs: []AdditionalCostEntry{{Amount: 80, Type: CostTypeOneTime, Date: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)}},
			want:  80,
		},
		{
			name:  "one-time outside current month",
			costs: []AdditionalCostEntry{{Amount: 80, Type: CostTypeOneTime, Date: time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC)}},
			want:  0,
		},
		{
			name:  "one-time same month previous year",
			costs: []AdditionalCostEntry{{Amount: 80, Type: CostTypeOneTime, Date: time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)}},
			want:  0,
		},
		{
			name:  "unknown type ignored",
			costs: []AdditionalCostEntry{{Amount: 80, Type: CostType("quarterly")}},
			want:  0,
		},
		{
			name:  "empty collection",
			costs: nil,
			want:  0,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := MonthlyAdditionalTotal(tc.costs, now); got != tc.want {
				t.Fatalf("MonthlyAdditionalTotal = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestMonthlySummary(t *testing.T) {
	now := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)

	contracts := []ContractCost{
		{Amount: 100, Interval: IntervalMonthly},
		{Amount: 1200, Interval: IntervalYearly},
		{Amount: 5000, Interval: IntervalOnce},
	}
	employees := []EmployeeCostInput{
		{Name: "Anna", GrossSalary: 1000, AdditionalPercentage: 20, Active: true},
		{Name: "Ben", GrossSalary: 9999, AdditionalPercentage: 20, Active: false},
	}
	costs := []AdditionalCostEntry{
		{Amount: 50, Type: CostTypeMonthly},
		{Amount: 600, Type: CostTypeYearly},
		{Amount: 75, Type: CostTypeOneTime, Date: now},
		{Amount: 999, Type: CostTypeOneTime, Date: now.AddDate(0, -1, 0)},
	}

	summary := MonthlySummary(contracts, employees, costs, now)

	if summary.ContractsMonthly != 200 {
		t.Fatalf("expected contract total 200, got %v", summary.ContractsMonthly)
	}
	if summary.EmployeesMonthly != 1200 {
		t.Fatalf("expected employee total 1200, got %v", summary.EmployeesMonthly)
	}
	if summary.AdditionalMonthly != 175 {
		t.Fatalf("expected additional total 175, got %v", summary.AdditionalMonthly)
	}
	if summary.GrandTotal != summary.ContractsMonthly+summary.EmployeesMonthly+summary.AdditionalMonthly {
		t.Fatalf("grand total %v does not reconcile with subtotals", summary.GrandTotal)
	}
	if summary.ContractCount != 3 || summary.CostCount != 4 {
		t.Fatalf("unexpected counts: %d contracts, %d costs", summary.ContractCount, summary.CostCount)
	}
}

func TestMonthlySummaryEmptyCollections(t *testing.T) {
	summary := MonthlySummary(nil, nil, nil, time.Now())
	if summary.GrandTotal != 0 {
		t.Fatalf("expected 0 grand total, got %v", summary.GrandTotal)
	}
}

func TestMonthlySummaryMonthBoundary(t *testing.T) {
	cost := AdditionalCostEntry{Amount: 300, Type: CostTypeOneTime, Date: time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)}

	january := time.Date(2025, time.January, 31, 23, 0, 0, 0, time.UTC)
	february := time.Date(2025, time.February, 1, 1, 0, 0, 0, time.UTC)

	if got := MonthlyAdditionalTotal([]AdditionalCostEntry{cost}, january); got != 300 {
		t.Fatalf("expected 300 within the month, got %v", got)
	}
	if got := MonthlyAdditionalTotal([]AdditionalCostEntry{cost}, february); got != 0 {
		t.Fatalf("expected 0 after the month rolled over, got %v", got)
	}
}
