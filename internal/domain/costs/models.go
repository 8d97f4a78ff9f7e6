package costs

import (
	"time"

	"github.com/NikGojani/san-rise-sub001/internal/domain/finance"
)

type Attachment struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Size int64  `json:"size,omitempty"`
}

type AdditionalCost struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Amount      float64          `json:"amount"`
	Category    string           `json:"category"`
	Type        finance.CostType `json:"type"`
	Date        time.Time        `json:"date"`
	Description string           `json:"description,omitempty"`
	Attachments []Attachment     `json:"attachments"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// Entries maps persisted costs into the shape the aggregation layer consumes.
func Entries(list []AdditionalCost) []finance.AdditionalCostEntry {
	entries := make([]finance.AdditionalCostEntry, 0, len(list))
	for _, cost := range list {
		entries = append(entries, finance.AdditionalCostEntry{
			Amount: cost.Amount,
			Type:   cost.Type,
			Date:   cost.Date,
		})
	}
	return entries
}
