package freecurrency

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mfinelli/fbarcalc"
)

// serveLatest swaps the provider endpoint for a local test server.
func serveLatest(t *testing.T, handler http.HandlerFunc) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	old := latestEndpoint
	latestEndpoint = server.URL
	t.Cleanup(func() { latestEndpoint = old })
}

func TestUSDRate(t *testing.T) {
	serveLatest(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("apikey"); got != "demo" {
			t.Errorf("apikey = %q, want %q", got, "demo")
		}
		if got := r.URL.Query().Get("base_currency"); got != "USD" {
			t.Errorf("base_currency = %q, want %q", got, "USD")
		}
		if got := r.URL.Query().Get("currencies"); got != "EUR" {
			t.Errorf("currencies = %q, want %q", got, "EUR")
		}
		fmt.Fprint(w, `{"data":{"EUR":0.8}}`)
	})

	rate, err := USDRate(NewClient(), "demo", "EUR")
	if err != nil {
		t.Fatalf("USDRate() error = %v", err)
	}
	// 1 EUR = 1/0.8 = 1.25 USD
	if want := decimal.RequireFromString("1.25"); !rate.Equal(want) {
		t.Errorf("USDRate() = %s, want %s", rate, want)
	}
}

func TestUSDRate_usdShortCircuits(t *testing.T) {
	serveLatest(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("USD conversion should not query the provider")
	})

	rate, err := USDRate(NewClient(), "demo", "USD")
	if err != nil {
		t.Fatalf("USDRate() error = %v", err)
	}
	if !rate.Equal(decimal.NewFromInt(1)) {
		t.Errorf("USDRate(USD) = %s, want 1", rate)
	}
}

func TestUSDRate_missingKey(t *testing.T) {
	if _, err := USDRate(NewClient(), "", "EUR"); !errors.Is(err, fbarcalc.ErrRateUnavailable) {
		t.Errorf("USDRate() error = %v, want ErrRateUnavailable", err)
	}
}

func TestUSDRate_failures(t *testing.T) {
	testCases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "provider error status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "invalid api key", http.StatusUnauthorized)
			},
		},
		{
			name: "rate missing from response",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"data":{"GBP":0.8}}`)
			},
		},
		{
			name: "rate is not a number",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"data":{"EUR":"not-a-rate"}}`)
			},
		},
		{
			name: "zero quote",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"data":{"EUR":0}}`)
			},
		},
		{
			name: "not json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `<html>here be dragons</html>`)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			serveLatest(t, tc.handler)
			if _, err := USDRate(NewClient(), "demo", "EUR"); !errors.Is(err, fbarcalc.ErrRateUnavailable) {
				t.Errorf("USDRate() error = %v, want ErrRateUnavailable", err)
			}
		})
	}
}

func TestClient_userAgent(t *testing.T) {
	serveLatest(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != userAgent {
			t.Errorf("User-Agent = %q, want %q", got, userAgent)
		}
		fmt.Fprint(w, `{"data":{"EUR":0.9}}`)
	})

	if _, err := USDRate(NewClient(), "demo", "EUR"); err != nil {
		t.Fatalf("USDRate() error = %v", err)
	}
}
