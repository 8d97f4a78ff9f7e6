package finance

import "errors"

var ErrDistributionSum = errors.New("profit distribution shares must sum to exactly 100")

type Distribution struct {
	Nik       float64 `json:"nik"`
	Adrian    float64 `json:"adrian"`
	Sebastian float64 `json:"sebastian"`
	Mexify    float64 `json:"mexify"`
}

func (d Distribution) Sum() float64 {
	return d.Nik + d.Adrian + d.Sebastian + d.Mexify
}

// ValidateDistribution gates settings writes. The defect is relational, so a
// failed check reports one error for the whole distribution rather than a
// per-field issue. Reads are never gated; an already misconfigured row can
// still be loaded and displayed.
func ValidateDistribution(d Distribution) error {
	if d.Sum() != 100 {
		return ErrDistributionSum
	}
	return nil
}
