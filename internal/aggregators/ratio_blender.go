package aggregators

import (
	"sort"

	"license-usage-aggregator/internal/models"

	"github.com/shopspring/decimal"
)

// BundleSeries is the combined, ratio-adjusted series of every member of one bundle.
type BundleSeries struct {
	Key models.BundleKey
	// Display is the member whose product and cloudpak metric label the bundle row. It is the
	// smallest member key, so the choice does not depend on merge order.
	Display models.CloudpakMemberKey
	// Points hold the bundle usage multiplied by Denominator, the product of the distinct
	// ratio denominators of its members. Each member contributes v*N*(Denominator/M), which
	// is a plain multiplication, so a 2:3 member never turns into a rounded 0.666...
	Points      models.TimeSeries
	Denominator decimal.Decimal
}

// Peak is the daily peak of the bundle, divided back by the common denominator only once.
func (b *BundleSeries) Peak() (int64, error) {
	return DailyPeakOver(b.Points, b.Denominator)
}

// Blend scales every member series by its ratio and sums the scaled series of each bundle
// over the union of their timestamps. Bundles are returned sorted by key.
func Blend(members map[models.CloudpakMemberKey]*models.MemberSeries) []*BundleSeries {
	keysByBundle := make(map[models.BundleKey][]models.CloudpakMemberKey)
	for key := range members {
		bundleKey := key.Bundle()
		keysByBundle[bundleKey] = append(keysByBundle[bundleKey], key)
	}

	bundles := make([]*BundleSeries, 0, len(keysByBundle))
	for bundleKey, keys := range keysByBundle {
		sort.Slice(keys, func(i, j int) bool {
			return keys[i].Less(keys[j])
		})

		denominators := distinctDenominators(keys, members)
		bundle := &BundleSeries{
			Key:         bundleKey,
			Display:     keys[0],
			Points:      make(models.TimeSeries),
			Denominator: decimal.NewFromInt(1),
		}
		for _, d := range denominators {
			bundle.Denominator = bundle.Denominator.Mul(d)
		}

		for _, key := range keys {
			member := members[key]
			factor := member.Ratio.Numerator
			for _, d := range denominators {
				if !d.Equal(member.Ratio.Denominator) {
					factor = factor.Mul(d)
				}
			}
			bundle.Points.AddSeries(member.Points.Scaled(factor))
		}
		bundles = append(bundles, bundle)
	}

	sort.Slice(bundles, func(i, j int) bool {
		return bundleKeyLess(bundles[i].Key, bundles[j].Key)
	})
	return bundles
}

// distinctDenominators lists each ratio denominator of keys once, compared by value.
func distinctDenominators(keys []models.CloudpakMemberKey, members map[models.CloudpakMemberKey]*models.MemberSeries) []decimal.Decimal {
	out := make([]decimal.Decimal, 0, len(keys))
	for _, key := range keys {
		d := members[key].Ratio.Denominator
		seen := false
		for _, cur := range out {
			if cur.Equal(d) {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, d)
		}
	}
	return out
}

func bundleKeyLess(a, b models.BundleKey) bool {
	if a.CloudpakName != b.CloudpakName {
		return a.CloudpakName < b.CloudpakName
	}
	if a.CloudpakID != b.CloudpakID {
		return a.CloudpakID < b.CloudpakID
	}
	return a.ClusterID < b.ClusterID
}
