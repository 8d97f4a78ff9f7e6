package calculatorhandler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/NikGojani/san-rise-sub001/internal/domain/auth"
	"github.com/NikGojani/san-rise-sub001/internal/domain/finance"
	"github.com/NikGojani/san-rise-sub001/internal/transport/http/middleware"
)

func doCalculate(t *testing.T, body string, authenticated bool) *httptest.ResponseRecorder {
	t.Helper()

	h := &Handler{CompanyName: "Test GmbH"}
	req := httptest.NewRequest(http.MethodPost, "/calculator/events", strings.NewReader(body))
	if authenticated {
		ctx := middleware.WithUser(req.Context(), auth.UserContext{UserID: "u1", Email: "admin@test.local"})
		req = req.WithContext(ctx)
	}

	rec := httptest.NewRecorder()
	h.handleCalculate(rec, req)
	return rec
}

func TestCalculateRequiresAuth(t *testing.T) {
	rec := doCalculate(t, `{"ticketCount":100,"termine":1,"gemaPercentage":9}`, false)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestCalculateRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero ticket count", `{"ticketCount":0,"termine":1,"gemaPercentage":9}`},
		{"zero termine", `{"ticketCount":100,"termine":0,"gemaPercentage":9}`},
		{"vk over 100", `{"ticketCount":100,"termine":1,"vkPercentage":150,"gemaPercentage":9}`},
		{"negative cost", `{"ticketCount":100,"termine":1,"gemaPercentage":9,"artistCosts":-1}`},
		{"malformed json", `{"ticketCount":`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := doCalculate(t, tc.body, true)
			if rec.Code != http.StatusBadRequest && rec.Code != http.StatusUnprocessableEntity {
				t.Fatalf("expected validation failure, got %d: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestCalculateReturnsEconomics(t *testing.T) {
	body := `{
		"name": "Open Air",
		"ticketCount": 100,
		"ticketPrice": 20,
		"vkPercentage": 80,
		"termine": 1,
		"gemaPercentage": 9,
		"marketingCosts": 100,
		"artistCosts": 300,
		"locationCosts": 200,
		"ticketingFee": 50
	}`

	rec := doCalculate(t, body, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			Name   string             `json:"name"`
			Result finance.EventResult `json:"result"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !envelope.Success {
		t.Fatal("expected success envelope")
	}
	if envelope.Data.Name != "Open Air" {
		t.Fatalf("expected name to echo back, got %q", envelope.Data.Name)
	}

	result := envelope.Data.Result
	if result.SoldTickets != 80 {
		t.Fatalf("expected 80 sold tickets, got %v", result.SoldTickets)
	}
	if result.Revenue != 1600 {
		t.Fatalf("expected revenue 1600, got %v", result.Revenue)
	}
	if result.GemaFee != 144 {
		t.Fatalf("expected gema fee 144, got %v", result.GemaFee)
	}
	// ticketingFee > 0 waives the per-ticket platform fee.
	if result.PlatformFee != 0 {
		t.Fatalf("expected waived platform fee, got %v", result.PlatformFee)
	}
	if result.Profit != 806 {
		t.Fatalf("expected profit 806, got %v", result.Profit)
	}
}

func TestCalculateDoesNotPersist(t *testing.T) {
	// The handler never writes: with no database attached, a fully specified
	// payload must still succeed.
	rec := doCalculate(t, `{"ticketCount":10,"ticketPrice":5,"vkPercentage":100,"termine":1,"gemaPercentage":0}`, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 without storage, got %d: %s", rec.Code, rec.Body.String())
	}
}
