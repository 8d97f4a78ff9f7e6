package finance

import "math"

type EmployeeCostInput struct {
	Name                 string
	GrossSalary          float64
	AdditionalPercentage float64
	Active               bool
}

type EmployeeBreakdown struct {
	Name           string  `json:"name"`
	GrossSalary    float64 `json:"grossSalary"`
	Percentage     float64 `json:"additionalCostsPercentage"`
	AdditionalCost float64 `json:"additionalCost"`
	TotalCost      float64 `json:"totalMonthlyCost"`
	Active         bool    `json:"isActive"`
}

type EmployeeSummary struct {
	TotalMonthlyCost  float64             `json:"totalMonthlyCost"`
	EmployeeCount     int                 `json:"employeeCount"`
	TotalEmployees    int                 `json:"totalEmployees"`
	InactiveEmployees int                 `json:"inactiveEmployees"`
	Breakdown         []EmployeeBreakdown `json:"breakdown"`
}

// AdditionalCost estimates the employer-side non-wage cost as a percentage
// surcharge on gross salary, rounded to whole currency units. This is a
// payroll estimate, not a ledger computation.
func AdditionalCost(grossSalary, percentage float64) float64 {
	return math.Round(finite(grossSalary) * finite(percentage) / 100)
}

func TotalMonthlyCost(grossSalary, percentage float64) float64 {
	return finite(grossSalary) + AdditionalCost(grossSalary, percentage)
}

// SummarizeEmployees sums monthly cost over active employees only. Inactive
// employees stay in the breakdown for record-keeping but are excluded from
// the total.
func SummarizeEmployees(employees []EmployeeCostInput) EmployeeSummary {
	summary := EmployeeSummary{
		TotalEmployees: len(employees),
		Breakdown:      make([]EmployeeBreakdown, 0, len(employees)),
	}

	for _, emp := range employees {
		additional := AdditionalCost(emp.GrossSalary, emp.AdditionalPercentage)
		total := TotalMonthlyCost(emp.GrossSalary, emp.AdditionalPercentage)

		summary.Breakdown = append(summary.Breakdown, EmployeeBreakdown{
			Name:           emp.Name,
			GrossSalary:    finite(emp.GrossSalary),
			Percentage:     finite(emp.AdditionalPercentage),
			AdditionalCost: additional,
			TotalCost:      total,
			Active:         emp.Active,
		})

		if emp.Active {
			summary.EmployeeCount++
			summary.TotalMonthlyCost += total
		} else {
			summary.InactiveEmployees++
		}
	}

	return summary
}
