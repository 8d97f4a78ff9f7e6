package finance

import (
	"encoding/json"
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	salary := 1250.5

	tests := []struct {
		name  string
		input any
		want  float64
	}{
		{name: "nil", input: nil, want: 0},
		{name: "float", input: 99.5, want: 99.5},
		{name: "int", input: 42, want: 42},
		{name: "int64", input: int64(7), want: 7},
		{name: "numeric string", input: "1200.50", want: 1200.5},
		{name: "padded string", input: " 300 ", want: 300},
		{name: "garbage string", input: "abc", want: 0},
		{name: "empty string", input: "", want: 0},
		{name: "json number", input: json.Number("18.5"), want: 18.5},
		{name: "bad json number", input: json.Number("nope"), want: 0},
		{name: "nan", input: math.NaN(), want: 0},
		{name: "positive infinity", input: math.Inf(1), want: 0},
		{name: "nil float pointer", input: (*float64)(nil), want: 0},
		{name: "float pointer", input: &salary, want: 1250.5},
		{name: "unsupported type", input: []string{"x"}, want: 0},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.input); got != tc.want {
				t.Fatalf("Normalize(%v) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestNormalizeNeverPanics(t *testing.T) {
	inputs := []any{nil, math.NaN(), "NaN", "Inf", struct{}{}, map[string]any{}}
	for _, input := range inputs {
		got := Normalize(input)
		if math.IsNaN(got) || math.IsInf(got, 0) {
			t.Fatalf("Normalize(%v) returned non-finite %v", input, got)
		}
	}
}
