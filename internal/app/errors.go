package app

import (
	"license-usage-aggregator/internal/shared/svcerrors"
)

const (
	codeInputInvalid  = "APP_1000"
	codeOutputInvalid = "APP_1001"
)

// errInputInvalid returns an error when the input location cannot be aggregated.
func errInputInvalid(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewPreconditionFailedError(codeInputInvalid, msg, cause)
}

// errOutputInvalid returns an error when the output directory cannot receive reports.
func errOutputInvalid(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewPreconditionFailedError(codeOutputInvalid, msg, cause)
}
