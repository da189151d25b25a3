package aggregators

import (
	"fmt"
	"math"

	"license-usage-aggregator/internal/shared/svcerrors"
)

const (
	codeInternalEmptySeries      = "AGG_9000"
	codeInternalDayPanicked      = "AGG_9001"
	codeInternalQuantityOverflow = "AGG_9002"
)

// errInternalEmptySeries returns an error when a peak is requested for a key that never
// received a sample.
func errInternalEmptySeries() *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalEmptySeries, fmt.Errorf("emptySeries: no points to reduce"))
}

// errInternalDayPanicked returns an error when aggregating a day panicked.
func errInternalDayPanicked(day string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalDayPanicked, fmt.Errorf("dayPanicked %s: %w", day, cause))
}

// errInternalQuantityOverflow returns an error when a daily peak does not fit a quantity.
func errInternalQuantityOverflow(quantity fmt.Stringer) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalQuantityOverflow, fmt.Errorf("quantityOverflow: %s exceeds %d", quantity, math.MaxInt64))
}
