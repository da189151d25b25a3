package models

import "github.com/shopspring/decimal"

// UsageSample is one validated row of a task file: the vCPU a product consumed at one
// measurement instant on one cluster.
type UsageSample struct {
	// Timestamp is opaque: it is only ever compared for equality.
	Timestamp     string
	ProductName   string
	ProductID     string
	ProductMetric string
	VCPU          decimal.Decimal
	ClusterID     string
	// Cloudpak is nil for a standalone product sample.
	Cloudpak *CloudpakTag
}

// CloudpakTag marks a sample as consumed by a cloudpak bundle.
type CloudpakTag struct {
	Name   string
	ID     string
	Metric string
	Ratio  Ratio
}

// IsCloudpakMember reports whether the sample accumulates under a CloudpakMemberKey.
func (s *UsageSample) IsCloudpakMember() bool {
	return s.Cloudpak != nil
}

// ProductKey returns the standalone identity of the sample.
func (s *UsageSample) ProductKey() ProductKey {
	return ProductKey{
		ProductName:   s.ProductName,
		ProductID:     s.ProductID,
		ProductMetric: s.ProductMetric,
		ClusterID:     s.ClusterID,
	}
}

// CloudpakMemberKey returns the bundle-participant identity of the sample. It must only
// be called on cloudpak members.
func (s *UsageSample) CloudpakMemberKey() CloudpakMemberKey {
	return CloudpakMemberKey{
		ProductName:    s.ProductName,
		CloudpakName:   s.Cloudpak.Name,
		CloudpakID:     s.Cloudpak.ID,
		CloudpakMetric: s.Cloudpak.Metric,
		Ratio:          s.Cloudpak.Ratio.String(),
		ProductID:      s.ProductID,
		ProductMetric:  s.ProductMetric,
		ClusterID:      s.ClusterID,
	}
}
