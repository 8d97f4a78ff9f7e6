package employees

import (
	"time"

	"github.com/NikGojani/san-rise-sub001/internal/domain/finance"
)

type FileRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Size int64  `json:"size,omitempty"`
}

type Employee struct {
	ID                   string     `json:"id"`
	Name                 string     `json:"name"`
	Role                 string     `json:"role"`
	GrossSalary          float64    `json:"grossSalary"`
	AdditionalPercentage float64    `json:"additionalCostsPercentage"`
	IsActive             bool       `json:"isActive"`
	StartDate            *time.Time `json:"startDate,omitempty"`
	Email                string     `json:"email,omitempty"`
	Phone                string     `json:"phone,omitempty"`
	Address              string     `json:"address,omitempty"`
	Files                []FileRef  `json:"files"`
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            time.Time  `json:"updatedAt"`
}

func (e Employee) AdditionalCost() float64 {
	return finance.AdditionalCost(e.GrossSalary, e.AdditionalPercentage)
}

func (e Employee) TotalMonthlyCost() float64 {
	return finance.TotalMonthlyCost(e.GrossSalary, e.AdditionalPercentage)
}

// CostInputs maps employees into the shape the cost summary consumes.
func CostInputs(list []Employee) []finance.EmployeeCostInput {
	inputs := make([]finance.EmployeeCostInput, 0, len(list))
	for _, emp := range list {
		inputs = append(inputs, finance.EmployeeCostInput{
			Name:                 emp.Name,
			GrossSalary:          emp.GrossSalary,
			AdditionalPercentage: emp.AdditionalPercentage,
			Active:               emp.IsActive,
		})
	}
	return inputs
}
