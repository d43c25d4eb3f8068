package fbarcalc

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestAmount_Truncate(t *testing.T) {
	testCases := []struct {
		name  string
		value string
		want  string
	}{
		{name: "three fractional digits", value: "12.345", want: "12.34"},
		{name: "already two digits", value: "12.34", want: "12.34"},
		{name: "integral", value: "100", want: "100"},
		{name: "negative floors toward negative infinity", value: "-0.005", want: "-0.01"},
		{name: "negative three digits", value: "-12.999", want: "-13"},
		{name: "zero", value: "0", want: "0"},
		{name: "many digits", value: "1.23999999", want: "1.23"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := A(decimal.RequireFromString(tc.value), "EUR").Truncate()
			want := A(decimal.RequireFromString(tc.want), "EUR")
			if !got.Equal(want) {
				t.Errorf("Truncate(%s) = %v, want %v", tc.value, got, want)
			}
		})
	}
}

func TestAmount_String(t *testing.T) {
	testCases := []struct {
		name     string
		value    float64
		currency string
		want     string
	}{
		{name: "euro", value: 105, currency: "EUR", want: "€105.00"},
		{name: "pound", value: 12.34, currency: "GBP", want: "£12.34"},
		{name: "yen keeps two digits", value: 1000, currency: "JPY", want: "¥1000.00"},
		{name: "dollar", value: 113.4, currency: "USD", want: "$113.40"},
		{name: "negative", value: -12.34, currency: "USD", want: "$-12.34"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := A(tc.value, tc.currency).String(); got != tc.want {
				t.Errorf("A(%v, %q).String() = %q, want %q", tc.value, tc.currency, got, tc.want)
			}
		})
	}
}

func TestAmount_Add(t *testing.T) {
	got := A(100, "EUR").Add(A(-50, "EUR"))
	if !got.Equal(A(50, "EUR")) {
		t.Errorf("Add() = %v, want %v", got, A(50, "EUR"))
	}
	// the "" currency is weak and adopts the other side's
	if got := A(1, "").Add(A(2, "GBP")); got.Currency() != "GBP" {
		t.Errorf("Add() currency = %q, want %q", got.Currency(), "GBP")
	}
}

func TestAmount_Add_mismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Add() with mismatched currencies should panic")
		}
	}()
	A(1, "EUR").Add(A(1, "JPY"))
}

func TestParseAmount(t *testing.T) {
	a, err := ParseAmount("12.345", "EUR")
	if err != nil {
		t.Fatalf("ParseAmount() error = %v", err)
	}
	if !a.Truncate().Equal(A(12.34, "EUR")) {
		t.Errorf("ParseAmount(12.345).Truncate() = %v, want %v", a.Truncate(), A(12.34, "EUR"))
	}

	if _, err := ParseAmount("12,34", "EUR"); err == nil {
		t.Error("ParseAmount() with a comma separator should fail")
	}
}
