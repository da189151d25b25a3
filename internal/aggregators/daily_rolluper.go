package aggregators

import (
	"sort"

	"license-usage-aggregator/internal/models"
)

//go:generate mockgen -source=daily_rolluper.go -destination=./mocks/daily_rolluper_mock.go -package=mocks
type DailyRolluper interface {
	// Rollup reduces everything accumulated for one day to one row per standalone product
	// and one row per cloudpak bundle.
	Rollup(day string, set *models.SeriesSet) ([]*models.DailyHWMRow, error)
}

type dailyRolluper struct{}

func NewDailyRolluper() DailyRolluper {
	return &dailyRolluper{}
}

func (r *dailyRolluper) Rollup(day string, set *models.SeriesSet) ([]*models.DailyHWMRow, error) {
	rows := make([]*models.DailyHWMRow, 0, set.Len())

	keys := make([]models.ProductKey, 0, len(set.Standalone))
	for key := range set.Standalone {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return productKeyLess(keys[i], keys[j])
	})

	for _, key := range keys {
		quantity, err := DailyPeak(set.Standalone[key])
		if err != nil {
			return nil, err
		}
		rows = append(rows, &models.DailyHWMRow{
			Date:           day,
			Name:           key.ProductName,
			ID:             key.ProductID,
			MetricName:     key.ProductMetric,
			MetricQuantity: quantity,
			ClusterID:      key.ClusterID,
		})
	}
	metricDailyRowsTotal.WithLabelValues(kindStandalone).Add(float64(len(keys)))

	bundles := Blend(set.Members)
	for _, bundle := range bundles {
		quantity, err := bundle.Peak()
		if err != nil {
			return nil, err
		}
		rows = append(rows, &models.DailyHWMRow{
			Date:           day,
			Name:           bundle.Display.ProductName,
			ID:             bundle.Display.ProductID,
			MetricName:     bundle.Display.ProductMetric,
			MetricQuantity: quantity,
			ClusterID:      bundle.Key.ClusterID,
			Cloudpak: &models.CloudpakRef{
				Name:   bundle.Key.CloudpakName,
				ID:     bundle.Key.CloudpakID,
				Metric: bundle.Display.CloudpakMetric,
			},
		})
	}
	metricDailyRowsTotal.WithLabelValues(kindBundle).Add(float64(len(bundles)))

	return rows, nil
}

func productKeyLess(a, b models.ProductKey) bool {
	if a.ProductName != b.ProductName {
		return a.ProductName < b.ProductName
	}
	if a.ProductID != b.ProductID {
		return a.ProductID < b.ProductID
	}
	if a.ProductMetric != b.ProductMetric {
		return a.ProductMetric < b.ProductMetric
	}
	return a.ClusterID < b.ClusterID
}
