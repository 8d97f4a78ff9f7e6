package finance

import "time"

type CostType string

const (
	CostTypeOneTime CostType = "one-time"
	CostTypeMonthly CostType = "monthly"
	CostTypeYearly  CostType = "yearly"
)

type ContractCost struct {
	Amount   float64
	Interval Interval
}

type AdditionalCostEntry struct {
	Amount float64
	Type   CostType
	Date   time.Time
}

type Summary struct {
	ContractsMonthly  float64         `json:"totalMonthlyContractCosts"`
	EmployeesMonthly  float64         `json:"totalMonthlyEmployeeCosts"`
	AdditionalMonthly float64         `json:"totalMonthlyAdditionalCosts"`
	GrandTotal        float64         `json:"totalMonthlyCosts"`
	ContractCount     int             `json:"contractCount"`
	CostCount         int             `json:"additionalCostCount"`
	Employees         EmployeeSummary `json:"employees"`
}

// MonthlyAdditionalTotal sums additional costs into a monthly figure for the
// month containing now. One-time costs count only when dated in that month;
// yearly costs are spread over twelve months.
func MonthlyAdditionalTotal(costs []AdditionalCostEntry, now time.Time) float64 {
	var total float64
	for _, cost := range costs {
		switch cost.Type {
		case CostTypeMonthly:
			total += finite(cost.Amount)
		case CostTypeYearly:
			total += finite(cost.Amount) / 12
		case CostTypeOneTime:
			if cost.Date.Year() == now.Year() && cost.Date.Month() == now.Month() {
				total += finite(cost.Amount)
			}
		}
	}
	return total
}

// MonthlySummary combines the per-entity calculators across collections.
// The result depends on now through the one-time cost check and must be
// recomputed per request, never cached across a month boundary.
func MonthlySummary(contracts []ContractCost, employees []EmployeeCostInput, costs []AdditionalCostEntry, now time.Time) Summary {
	var contractsMonthly float64
	for _, contract := range contracts {
		contractsMonthly += MonthlyEquivalent(contract.Amount, contract.Interval)
	}

	employeeSummary := SummarizeEmployees(employees)
	additionalMonthly := MonthlyAdditionalTotal(costs, now)

	return Summary{
		ContractsMonthly:  contractsMonthly,
		EmployeesMonthly:  employeeSummary.TotalMonthlyCost,
		AdditionalMonthly: additionalMonthly,
		// The grand total is the sum of the three subtotals with no
		// independent rounding, so the categories always reconcile.
		GrandTotal:    contractsMonthly + employeeSummary.TotalMonthlyCost + additionalMonthly,
		ContractCount: len(contracts),
		CostCount:     len(costs),
		Employees:     employeeSummary,
	}
}
