package models

// ProductKey identifies the time series of a product reported without cloudpak fields.
type ProductKey struct {
	ProductName   string
	ProductID     string
	ProductMetric string
	ClusterID     string
}

// CloudpakMemberKey identifies the time series of a product participating in a cloudpak
// bundle. Ratio holds the canonical "N:M" text of the declared ratio.
type CloudpakMemberKey struct {
	ProductName    string
	CloudpakName   string
	CloudpakID     string
	CloudpakMetric string
	Ratio          string
	ProductID      string
	ProductMetric  string
	ClusterID      string
}

// Bundle returns the key under which this member's ratio-adjusted series is summed.
func (k CloudpakMemberKey) Bundle() BundleKey {
	return BundleKey{
		CloudpakName: k.CloudpakName,
		CloudpakID:   k.CloudpakID,
		ClusterID:    k.ClusterID,
	}
}

// Less orders members for the bundle display tie-break.
func (k CloudpakMemberKey) Less(other CloudpakMemberKey) bool {
	if k.ProductID != other.ProductID {
		return k.ProductID < other.ProductID
	}
	if k.ProductName != other.ProductName {
		return k.ProductName < other.ProductName
	}
	if k.ProductMetric != other.ProductMetric {
		return k.ProductMetric < other.ProductMetric
	}
	if k.CloudpakMetric != other.CloudpakMetric {
		return k.CloudpakMetric < other.CloudpakMetric
	}
	return k.Ratio < other.Ratio
}

// BundleKey identifies a cloudpak bundle on a cluster.
type BundleKey struct {
	CloudpakName string
	CloudpakID   string
	ClusterID    string
}
