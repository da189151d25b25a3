package aggregators

import (
	"math"

	"license-usage-aggregator/internal/models"

	"github.com/shopspring/decimal"
)

var (
	one         = decimal.NewFromInt(1)
	maxQuantity = decimal.NewFromInt(math.MaxInt64)
)

// DailyPeak reduces a day's series to its billable quantity: the highest concurrent usage,
// rounded up to a whole unit.
func DailyPeak(series models.TimeSeries) (int64, error) {
	return DailyPeakOver(series, one)
}

// DailyPeakOver is DailyPeak for a series whose points are stored multiplied by denominator.
// The ceiling comes from one exact division with remainder.
func DailyPeakOver(series models.TimeSeries, denominator decimal.Decimal) (int64, error) {
	peak, ok := series.Max()
	if !ok {
		return 0, errInternalEmptySeries()
	}

	quotient, remainder := peak.QuoRem(denominator, 0)
	if remainder.IsPositive() {
		quotient = quotient.Add(one)
	}
	if quotient.GreaterThan(maxQuantity) {
		return 0, errInternalQuantityOverflow(quotient)
	}
	return quotient.IntPart(), nil
}
