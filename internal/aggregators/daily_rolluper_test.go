package aggregators

import (
	"testing"

	"license-usage-aggregator/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyRolluper_Rollup(t *testing.T) {
	t.Parallel()

	set := models.NewSeriesSet()
	set.Standalone[models.ProductKey{ProductName: "IBM MQ", ProductID: "p1", ProductMetric: "VIRTUAL_PROCESSOR_CORE", ClusterID: "c1"}] = series(map[string]string{"t1": "1.5", "t2": "2.25"})
	set.Standalone[models.ProductKey{ProductName: "IBM Db2", ProductID: "p9", ProductMetric: "PROCESSOR_VALUE_UNIT", ClusterID: "c1"}] = series(map[string]string{"t1": "0.5"})

	halfKey, half := member("p2", "IBM App Connect", "1:2")
	half.Points["t1"] = decimal.NewFromInt(10)
	wholeKey, whole := member("p3", "IBM API Connect", "1:1")
	whole.Points["t1"] = decimal.NewFromInt(10)
	set.Members[halfKey] = half
	set.Members[wholeKey] = whole

	rows, err := NewDailyRolluper().Rollup("2024-03-01", set)

	require.NoError(t, err)
	expected := []*models.DailyHWMRow{
		{Date: "2024-03-01", Name: "IBM Db2", ID: "p9", MetricName: "PROCESSOR_VALUE_UNIT", MetricQuantity: 1, ClusterID: "c1"},
		{Date: "2024-03-01", Name: "IBM MQ", ID: "p1", MetricName: "VIRTUAL_PROCESSOR_CORE", MetricQuantity: 3, ClusterID: "c1"},
		{
			Date:           "2024-03-01",
			Name:           "IBM App Connect",
			ID:             "p2",
			MetricName:     "PROCESSOR_VALUE_UNIT",
			MetricQuantity: 15,
			ClusterID:      "c1",
			Cloudpak:       &models.CloudpakRef{Name: "Cloud Pak for Integration", ID: "cp1", Metric: "VIRTUAL_PROCESSOR_CORE"},
		},
	}
	assert.Equal(t, expected, rows)
}

func TestDailyRolluper_Rollup_EmptySet(t *testing.T) {
	t.Parallel()

	rows, err := NewDailyRolluper().Rollup("2024-03-01", models.NewSeriesSet())

	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestDailyRolluper_Rollup_ErrInternalEmptySeries(t *testing.T) {
	t.Parallel()

	set := models.NewSeriesSet()
	set.Standalone[models.ProductKey{ProductName: "IBM MQ"}] = models.TimeSeries{}

	rows, err := NewDailyRolluper().Rollup("2024-03-01", set)

	require.Error(t, err)
	assert.Nil(t, rows)
}
