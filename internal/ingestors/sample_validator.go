package ingestors

import (
	"strings"

	"license-usage-aggregator/internal/models"
	"license-usage-aggregator/internal/shared/svcerrors"
	"license-usage-aggregator/internal/shared/validators"

	"github.com/shopspring/decimal"
)

// maxVCPU bounds a single sample. No node reports more than a billion cores, and the bound
// keeps accumulated peaks far from the int64 quantity limit.
var maxVCPU = decimal.New(1, 9)

// usageRow is one task file row addressed by column name, before any typing.
type usageRow struct {
	Timestamp     string
	ProductName   string
	ProductID     string `validate:"required_without=CloudpakName"`
	ProductMetric string
	VCPU          string
	ClusterID     string

	CloudpakName         string `validate:"required_with=CloudpakID CloudpakMetric ProductCloudpakRatio"`
	CloudpakID           string `validate:"required_with=CloudpakName CloudpakMetric ProductCloudpakRatio"`
	CloudpakMetric       string `validate:"required_with=CloudpakName CloudpakID ProductCloudpakRatio"`
	ProductCloudpakRatio string `validate:"required_with=CloudpakName CloudpakID CloudpakMetric"`
}

type sampleValidator struct {
	validate *validators.Validate
}

func newSampleValidator() *sampleValidator {
	return &sampleValidator{
		validate: validators.New(),
	}
}

// Validate turns a row found under productDir into a UsageSample, or explains why the row
// must not be accumulated.
func (v *sampleValidator) Validate(row *usageRow, productDir string) (*models.UsageSample, *svcerrors.ServiceError) {
	// A product directory authorizes exactly one product id.
	if row.ProductID != "" && row.ProductID != productDir {
		return nil, errProductIDMismatch(row.ProductID, productDir)
	}

	if err := v.validate.Struct(row); err != nil {
		return nil, v.classifyFieldErrors(err)
	}

	vcpuText := strings.TrimSpace(row.VCPU)
	vcpu, err := decimal.NewFromString(vcpuText)
	if err != nil {
		return nil, errInvalidVCPU(row.VCPU, err)
	}
	if vcpu.IsNegative() {
		return nil, errInvalidVCPU(row.VCPU, nil)
	}
	if vcpu.GreaterThan(maxVCPU) {
		return nil, errVCPUOutOfRange(row.VCPU, maxVCPU)
	}

	sample := &models.UsageSample{
		Timestamp:     row.Timestamp,
		ProductName:   row.ProductName,
		ProductID:     row.ProductID,
		ProductMetric: row.ProductMetric,
		VCPU:          vcpu,
		ClusterID:     row.ClusterID,
	}

	if row.CloudpakName == "" {
		return sample, nil
	}

	ratio, err := models.ParseRatio(row.ProductCloudpakRatio)
	if err != nil {
		return nil, errInvalidRatio(err)
	}
	sample.Cloudpak = &models.CloudpakTag{
		Name:   row.CloudpakName,
		ID:     row.CloudpakID,
		Metric: row.CloudpakMetric,
		Ratio:  ratio,
	}
	return sample, nil
}

// classifyFieldErrors maps struct tag failures onto sample codes. Partial cloudpak tagging
// wins over a missing product id because it is the more specific defect.
func (v *sampleValidator) classifyFieldErrors(err error) *svcerrors.ServiceError {
	fieldErrors := validators.FieldErrors(err)
	for _, fe := range fieldErrors {
		if fe.Tag() == "required_with" {
			return errPartialCloudpak(err)
		}
	}
	for _, fe := range fieldErrors {
		if fe.Field() == "ProductID" {
			return errMissingProductID()
		}
	}
	return svcerrors.NewInternalErrorUndefined(err)
}
