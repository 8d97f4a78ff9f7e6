package finance

import (
	"errors"
	"testing"
)

func TestValidateDistribution(t *testing.T) {
	tests := []struct {
		name    string
		dist    Distribution
		wantErr bool
	}{
		{
			name: "even split",
			dist: Distribution{Nik: 25, Adrian: 25, Sebastian: 25, Mexify: 25},
		},
		{
			name: "uneven but complete",
			dist: Distribution{Nik: 40, Adrian: 30, Sebastian: 20, Mexify: 10},
		},
		{
			name: "single share",
			dist: Distribution{Nik: 100},
		},
		{
			name:    "one percent short",
			dist:    Distribution{Nik: 25, Adrian: 25, Sebastian: 25, Mexify: 24},
			wantErr: true,
		},
		{
			name:    "over one hundred",
			dist:    Distribution{Nik: 50, Adrian: 50, Sebastian: 50, Mexify: 50},
			wantErr: true,
		},
		{
			name:    "all zero",
			dist:    Distribution{},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateDistribution(tc.dist)
			if tc.wantErr {
				if !errors.Is(err, ErrDistributionSum) {
					t.Fatalf("expected ErrDistributionSum, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
