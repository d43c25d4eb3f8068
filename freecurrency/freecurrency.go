// Package freecurrency fetches point-in-time exchange rates from
// freecurrencyapi.com.
package freecurrency

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"

	"github.com/mfinelli/fbarcalc"
)

// latestEndpoint serves the latest quotes. The provider quotes USD→target,
// so the rate we want is the reciprocal.
//
// Variable so tests can point it at a local server.
var latestEndpoint = "https://api.freecurrencyapi.com/v1/latest"

/*
	{
	    "data": {
	        "EUR": 0.9259
	    }
	}
*/

// USDRate returns the rate converting one unit of currency into US dollars,
// valid only for the instant it was fetched. USD itself never needs a
// lookup and is answered locally with rate 1. Every failure mode (missing
// key, transport error, rate absent from the response) is reported as
// fbarcalc.ErrRateUnavailable.
func USDRate(client *http.Client, apiKey, currency string) (decimal.Decimal, error) {
	if currency == "USD" {
		return decimal.NewFromInt(1), nil
	}
	if apiKey == "" {
		return decimal.Decimal{}, fmt.Errorf("%w: no API key configured", fbarcalc.ErrRateUnavailable)
	}

	q := url.Values{}
	q.Set("apikey", apiKey)
	q.Set("base_currency", "USD")
	q.Set("currencies", currency)
	addr := latestEndpoint + "?" + q.Encode()

	var jobj any
	if err := jwget(client, addr, &jobj); err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %v", fbarcalc.ErrRateUnavailable, err)
	}

	path := "$.data." + currency
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: no rate for %q in response", fbarcalc.ErrRateUnavailable, currency)
	}
	// because jsonpath is never clear about whether it returns a list of 1
	// answer, or a single answer: by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	quoted, ok := jval.(float64)
	if !ok || quoted <= 0 {
		return decimal.Decimal{}, fmt.Errorf("%w: unusable quote %v for %q", fbarcalc.ErrRateUnavailable, jval, currency)
	}
	return decimal.NewFromInt(1).Div(decimal.NewFromFloat(quoted)), nil
}
