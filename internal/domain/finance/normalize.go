package finance

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Normalize coerces a persisted scalar into a finite float64. The storage
// layer may return numeric columns as strings or nulls; anything that does
// not parse to a finite number becomes 0.
func Normalize(value any) float64 {
	switch v := value.(type) {
	case nil:
		return 0
	case float64:
		return finite(v)
	case float32:
		return finite(float64(v))
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case *float64:
		if v == nil {
			return 0
		}
		return finite(*v)
	case json.Number:
		return parseFloat(v.String())
	case string:
		return parseFloat(v)
	default:
		return 0
	}
}

func parseFloat(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return finite(parsed)
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
