package finance

import (
	"math"
	"testing"
)

func TestAdditionalCost(t *testing.T) {
	tests := []struct {
		name       string
		gross      float64
		percentage float64
		want       float64
	}{
		{name: "twenty percent of 1000", gross: 1000, percentage: 20, want: 200},
		{name: "rounds to whole units", gross: 3333, percentage: 20, want: 667},
		{name: "rounds half away from zero", gross: 1050, percentage: 5, want: 53},
		{name: "zero salary", gross: 0, percentage: 20, want: 0},
		{name: "zero percentage", gross: 1000, percentage: 0, want: 0},
		{name: "nan salary normalized to zero", gross: math.NaN(), percentage: 20, want: 0},
		{name: "infinite percentage normalized to zero", gross: 1000, percentage: math.Inf(1), want: 0},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := AdditionalCost(tc.gross, tc.percentage); got != tc.want {
				t.Fatalf("AdditionalCost(%v, %v) = %v, want %v", tc.gross, tc.percentage, got, tc.want)
			}
		})
	}
}

func TestTotalMonthlyCost(t *testing.T) {
	if got := TotalMonthlyCost(1000, 20); got != 1200 {
		t.Fatalf("expected 1200, got %v", got)
	}
	if got := TotalMonthlyCost(math.NaN(), 20); got != 0 {
		t.Fatalf("expected 0 for unparseable salary, got %v", got)
	}
}

func TestSummarizeEmployees(t *testing.T) {
	employees := []EmployeeCostInput{
		{Name: "Anna", GrossSalary: 1000, AdditionalPercentage: 20, Active: true},
		{Name: "Ben", GrossSalary: 5000, AdditionalPercentage: 20, Active: false},
	}

	summary := SummarizeEmployees(employees)

	if summary.TotalMonthlyCost != 1200 {
		t.Fatalf("expected total 1200, got %v", summary.TotalMonthlyCost)
	}
	if summary.EmployeeCount != 1 {
		t.Fatalf("expected 1 active employee, got %d", summary.EmployeeCount)
	}
	if summary.TotalEmployees != 2 {
		t.Fatalf("expected 2 total employees, got %d", summary.TotalEmployees)
	}
	if summary.InactiveEmployees != 1 {
		t.Fatalf("expected 1 inactive employee, got %d", summary.InactiveEmployees)
	}
	if len(summary.Breakdown) != 2 {
		t.Fatalf("expected breakdown to keep both employees, got %d", len(summary.Breakdown))
	}
	if summary.Breakdown[1].TotalCost != 6000 {
		t.Fatalf("expected inactive breakdown cost 6000, got %v", summary.Breakdown[1].TotalCost)
	}
}

func TestSummarizeEmployeesMissingFields(t *testing.T) {
	employees := []EmployeeCostInput{
		{Name: "Unpaid", GrossSalary: math.NaN(), AdditionalPercentage: 20, Active: true},
	}

	summary := SummarizeEmployees(employees)

	if summary.TotalMonthlyCost != 0 {
		t.Fatalf("expected total 0, got %v", summary.TotalMonthlyCost)
	}
	if len(summary.Breakdown) != 1 {
		t.Fatal("employee with missing salary must stay in breakdown")
	}
	if summary.Breakdown[0].GrossSalary != 0 {
		t.Fatalf("expected normalized salary 0, got %v", summary.Breakdown[0].GrossSalary)
	}
}

func TestSummarizeEmployeesEmpty(t *testing.T) {
	summary := SummarizeEmployees(nil)
	if summary.TotalMonthlyCost != 0 || summary.TotalEmployees != 0 {
		t.Fatalf("expected empty summary, got %+v", summary)
	}
}
