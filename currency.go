package fbarcalc

import (
	"fmt"
	"slices"

	"github.com/Rhymond/go-money"
)

// Currency is one entry of the supported-currency table.
type Currency struct {
	Code string // ISO 4217 code, e.g. "EUR"
	Name string // display name, e.g. "Euro"
}

// The table order is the display order of the selection prompt; codes are
// unique across the table.
var supportedCurrencies = []Currency{
	{Code: "EUR", Name: "Euro"},
	{Code: "GBP", Name: "British Pound Sterling"},
	{Code: "JPY", Name: "Japanese Yen"},
	{Code: "USD", Name: "US Dollar"},
}

// Currencies returns the supported currencies in their stable display order.
func Currencies() []Currency {
	return slices.Clone(supportedCurrencies)
}

// FindCurrency returns the supported currency with the given code.
func FindCurrency(code string) (Currency, error) {
	for _, c := range supportedCurrencies {
		if c.Code == code {
			return c, nil
		}
	}
	return Currency{}, fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
}

// FindCurrencyByName returns the supported currency with the given display name.
func FindCurrencyByName(name string) (Currency, error) {
	for _, c := range supportedCurrencies {
		if c.Name == name {
			return c, nil
		}
	}
	return Currency{}, fmt.Errorf("%w: %q", ErrUnknownCurrency, name)
}

// Symbol returns the currency's display symbol (grapheme).
func (c Currency) Symbol() string {
	// to get a never nil currency I need to call the Money constructor
	return money.New(0, c.Code).Currency().Grapheme
}

func (c Currency) String() string { return c.Code }
