package fbarcalc

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Report is the dual-currency result of one calculation run: the maximum
// account value in its native currency, plus the exchange rate converting
// one unit of that currency into US dollars at lookup time.
type Report struct {
	Native Amount
	Rate   decimal.Decimal
}

// NewReport combines the native-currency maximum with its USD exchange rate.
// A non-positive rate is rejected, so a report either carries both amounts
// or does not exist at all.
func NewReport(max Amount, rate decimal.Decimal) (Report, error) {
	if rate.Sign() <= 0 {
		return Report{}, fmt.Errorf("%w: non-positive rate %s", ErrRateUnavailable, rate)
	}
	return Report{Native: max, Rate: rate}, nil
}

// USD returns the maximum converted to US dollars, rounded to cents for
// display.
func (r Report) USD() Amount {
	return Amount{value: r.Native.value.Mul(r.Rate).Round(2), cur: "USD"}
}
