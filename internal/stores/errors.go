package stores

import (
	"fmt"

	"license-usage-aggregator/internal/shared/svcerrors"
)

const (
	codeInternalReportWriteFailed = "RPT_9000"
)

// errInternalReportWriteFailed returns an error when a report file cannot be written.
func errInternalReportWriteFailed(key string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReportWriteFailed, fmt.Errorf("reportWriteFailed %s: %w", key, cause))
}
