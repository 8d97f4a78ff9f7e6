package contracts

import (
	"time"

	"github.com/NikGojani/san-rise-sub001/internal/domain/finance"
)

type Attachment struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Size int64  `json:"size,omitempty"`
}

type Contract struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Amount      float64          `json:"amount"`
	Category    string           `json:"category"`
	Interval    finance.Interval `json:"interval"`
	StartDate   time.Time        `json:"startDate"`
	EndDate     *time.Time       `json:"endDate,omitempty"`
	Attachments []Attachment     `json:"attachments"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

func (c Contract) MonthlyEquivalent() float64 {
	return finance.MonthlyEquivalent(c.Amount, c.Interval)
}

func (c Contract) YearlyEquivalent() float64 {
	return finance.YearlyEquivalent(c.Amount, c.Interval)
}

// CostInputs maps contracts into the shape the aggregation layer consumes.
func CostInputs(list []Contract) []finance.ContractCost {
	costs := make([]finance.ContractCost, 0, len(list))
	for _, contract := range list {
		costs = append(costs, finance.ContractCost{
			Amount:   contract.Amount,
			Interval: contract.Interval,
		})
	}
	return costs
}
