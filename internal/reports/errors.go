package reports

import (
	"fmt"

	"license-usage-aggregator/internal/shared/svcerrors"
)

const (
	codeInternalQuantityOverflow = "RPT_9001"
)

// errInternalQuantityOverflow returns an error when converting a quantity to PVU would not
// fit a quantity.
func errInternalQuantityOverflow(quantity, multiplier int64) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalQuantityOverflow,
		fmt.Errorf("quantityOverflow: %d PVU cores times %d", quantity, multiplier))
}
