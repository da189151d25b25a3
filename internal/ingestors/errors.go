package ingestors

import (
	"fmt"

	"license-usage-aggregator/internal/shared/svcerrors"
)

// Sample errors. They never leave the loader: the row is logged, counted and skipped.
const (
	codeProductIDMismatch  = "SMP_1000"
	codePartialCloudpak    = "SMP_1001"
	codeInvalidVCPU        = "SMP_1002"
	codeInvalidRatio       = "SMP_1003"
	codeMissingProductID   = "SMP_1004"
	codeMalformedRow       = "SMP_1005"
	codeMissingHeaderField = "ING_1000"

	codeInternalTaskReadFailed = "ING_9000"
	codeInternalListingFailed  = "ING_9001"
)

func errProductIDMismatch(productID, productDir string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeProductIDMismatch,
		fmt.Sprintf("productId %q does not match product directory %q", productID, productDir), nil)
}

func errPartialCloudpak(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codePartialCloudpak, "cloudpak fields must be all set or all empty", cause)
}

func errInvalidVCPU(value string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidVCPU,
		fmt.Sprintf("vCPU %q is not a non-negative number", value), cause)
}

func errVCPUOutOfRange(value string, limit fmt.Stringer) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidVCPU,
		fmt.Sprintf("vCPU %q exceeds the per-sample limit of %s", value, limit), nil)
}

func errInvalidRatio(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidRatio, "malformed productCloudpakRatio", cause)
}

func errMissingProductID() *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeMissingProductID, "productId is required outside a cloudpak bundle", nil)
}

func errMalformedRow(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeMalformedRow, msg, cause)
}

func errMissingHeaderField(columns []string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeMissingHeaderField,
		fmt.Sprintf("task file header lacks required columns %v", columns), nil)
}

// errInternalTaskReadFailed returns an error when a task file cannot be opened or read.
func errInternalTaskReadFailed(taskKey string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalTaskReadFailed, fmt.Errorf("taskReadFailed %s: %w", taskKey, cause))
}

// errInternalListingFailed returns an error when the input tree cannot be listed.
func errInternalListingFailed(key string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalListingFailed, fmt.Errorf("listingFailed %q: %w", key, cause))
}
