package shared

import (
	"math"
	"net/http/httptest"
	"testing"
)

func TestValidatorNumericBounds(t *testing.T) {
	v := NewValidator()
	v.NonNegative("amount", -5)
	v.NonNegative("ok", 10)
	v.NonNegative("nan", math.NaN())
	v.Percentage("vkPercentage", 120)
	v.Percentage("gemaPercentage", 9)
	v.Min("ticketCount", 0, 1)

	issues := v.Issues()
	if len(issues) != 4 {
		t.Fatalf("expected 4 issues, got %d: %+v", len(issues), issues)
	}

	fields := map[string]bool{}
	for _, issue := range issues {
		fields[issue.Field] = true
	}
	for _, want := range []string{"amount", "nan", "vkPercentage", "ticketCount"} {
		if !fields[want] {
			t.Fatalf("expected issue for %s, got %+v", want, issues)
		}
	}
}

func TestValidatorRequiredAndEnum(t *testing.T) {
	v := NewValidator()
	v.Required("name", "  ", "name is required")
	v.Enum("interval", "weekly", []string{"monthly", "yearly", "once"}, "invalid interval")
	v.Enum("type", "monthly", []string{"one-time", "monthly", "yearly"}, "invalid type")

	if len(v.Issues()) != 2 {
		t.Fatalf("expected 2 issues, got %+v", v.Issues())
	}
}

func TestValidatorDateOrder(t *testing.T) {
	v := NewValidator()
	start, ok := v.Date("startDate", "2025-06-01")
	if !ok {
		t.Fatal("expected start date to parse")
	}
	end, ok := v.Date("endDate", "2025-05-01")
	if !ok {
		t.Fatal("expected end date to parse")
	}
	v.DateOrder("startDate", start, "endDate", end)

	if !v.HasIssues() {
		t.Fatal("expected order violation")
	}
}

func TestValidatorReject(t *testing.T) {
	v := NewValidator()
	if v.Reject(httptest.NewRecorder(), "req-1") {
		t.Fatal("clean validator must not reject")
	}

	v.Add("amount", "must be a non-negative number")
	rec := httptest.NewRecorder()
	if !v.Reject(rec, "req-1") {
		t.Fatal("expected rejection")
	}
	if rec.Code != 400 {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}
