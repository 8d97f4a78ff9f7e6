package finance

type Interval string

const (
	IntervalMonthly Interval = "monthly"
	IntervalYearly  Interval = "yearly"
	IntervalOnce    Interval = "once"
)

// MonthlyEquivalent converts a periodic amount into its steady monthly
// figure. One-time amounts do not recur and contribute nothing to a monthly
// baseline. Unknown intervals yield 0.
func MonthlyEquivalent(amount float64, interval Interval) float64 {
	switch interval {
	case IntervalMonthly:
		return finite(amount)
	case IntervalYearly:
		return finite(amount) / 12
	case IntervalOnce:
		return 0
	default:
		return 0
	}
}

// YearlyEquivalent converts a periodic amount into its yearly figure.
// One-time amounts count once at annual scale for reporting.
func YearlyEquivalent(amount float64, interval Interval) float64 {
	switch interval {
	case IntervalMonthly:
		return finite(amount) * 12
	case IntervalYearly:
		return finite(amount)
	case IntervalOnce:
		return finite(amount)
	default:
		return 0
	}
}
