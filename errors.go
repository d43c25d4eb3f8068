package fbarcalc

import "errors"

// The closed set of failure kinds surfaced by this package. Callers branch
// with errors.Is; every fatal condition maps to exactly one of these.
var (
	// ErrConfigMissing reports that no config file exists where one was
	// expected. The calculation flow treats this as "not configured yet".
	ErrConfigMissing = errors.New("config file does not exist")

	// ErrConfigParse reports a config file that exists but is not a valid
	// document.
	ErrConfigParse = errors.New("config file is malformed")

	// ErrUnknownCurrency reports a currency code or name absent from the
	// supported-currency table.
	ErrUnknownCurrency = errors.New("unsupported currency")

	// ErrRateUnavailable reports that the exchange rate could not be
	// obtained: rejected credential, network failure, or a provider
	// response missing the requested rate.
	ErrRateUnavailable = errors.New("exchange rate unavailable")
)
