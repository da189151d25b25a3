package aggregators

import (
	"fmt"
	"testing"

	"license-usage-aggregator/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func member(productID, productName, ratio string) (models.CloudpakMemberKey, *models.MemberSeries) {
	r, err := models.ParseRatio(ratio)
	if err != nil {
		panic(err)
	}
	key := models.CloudpakMemberKey{
		ProductName:    productName,
		CloudpakName:   "Cloud Pak for Integration",
		CloudpakID:     "cp1",
		CloudpakMetric: "VIRTUAL_PROCESSOR_CORE",
		Ratio:          r.String(),
		ProductID:      productID,
		ProductMetric:  "PROCESSOR_VALUE_UNIT",
		ClusterID:      "c1",
	}
	return key, &models.MemberSeries{Ratio: r, Points: make(models.TimeSeries)}
}

func TestBlend_ScalesAndSumsMembers(t *testing.T) {
	t.Parallel()

	halfKey, half := member("p1", "IBM MQ", "1:2")
	half.Points["t1"] = decimal.NewFromInt(10)
	wholeKey, whole := member("p2", "IBM App Connect", "1:1")
	whole.Points["t1"] = decimal.NewFromInt(10)

	bundles := Blend(map[models.CloudpakMemberKey]*models.MemberSeries{halfKey: half, wholeKey: whole})

	require.Len(t, bundles, 1)
	assert.Equal(t, models.BundleKey{CloudpakName: "Cloud Pak for Integration", CloudpakID: "cp1", ClusterID: "c1"}, bundles[0].Key)
	// 10*1/2 + 10*1/1 kept over the common denominator 2
	assert.True(t, decimal.NewFromInt(2).Equal(bundles[0].Denominator))
	assert.True(t, decimal.NewFromInt(30).Equal(bundles[0].Points["t1"]), "got %s", bundles[0].Points["t1"])

	quantity, err := bundles[0].Peak()
	require.NoError(t, err)
	assert.Equal(t, int64(15), quantity)
}

func TestBlend_NonTerminatingRatiosStayExact(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ratio    string
		members  int
		expected int64
	}{
		{name: "three members at 2:3", ratio: "2:3", members: 3, expected: 2},
		{name: "six members at 1:6", ratio: "1:6", members: 6, expected: 1},
		{name: "seven members at 1:7", ratio: "1:7", members: 7, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			members := make(map[models.CloudpakMemberKey]*models.MemberSeries)
			for i := range tt.members {
				key, m := member(fmt.Sprintf("p%d", i), "product", tt.ratio)
				m.Points["t1"] = decimal.NewFromInt(1)
				members[key] = m
			}

			bundles := Blend(members)

			require.Len(t, bundles, 1)
			quantity, err := bundles[0].Peak()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, quantity)
		})
	}
}

func TestBlend_MixedDenominators(t *testing.T) {
	t.Parallel()

	// 1*2/3 + 1*1/6 + 1*1/6 is exactly 1
	aKey, a := member("p1", "IBM MQ", "2:3")
	a.Points["t1"] = decimal.NewFromInt(1)
	bKey, b := member("p2", "IBM App Connect", "1:6")
	b.Points["t1"] = decimal.NewFromInt(1)
	cKey, c := member("p3", "IBM API Connect", "0.5:3")
	c.Points["t1"] = decimal.NewFromInt(1)

	bundles := Blend(map[models.CloudpakMemberKey]*models.MemberSeries{aKey: a, bKey: b, cKey: c})

	require.Len(t, bundles, 1)
	quantity, err := bundles[0].Peak()
	require.NoError(t, err)
	assert.Equal(t, int64(1), quantity)
}

func TestBlend_UnionOfTimestamps(t *testing.T) {
	t.Parallel()

	aKey, a := member("p1", "IBM MQ", "1:1")
	a.Points["t1"] = decimal.NewFromInt(4)
	a.Points["t2"] = decimal.NewFromInt(1)
	bKey, b := member("p2", "IBM App Connect", "2:1")
	b.Points["t2"] = decimal.NewFromInt(1)
	b.Points["t3"] = decimal.NewFromInt(3)

	bundles := Blend(map[models.CloudpakMemberKey]*models.MemberSeries{aKey: a, bKey: b})

	require.Len(t, bundles, 1)
	points := bundles[0].Points
	assert.Len(t, points, 3)
	assert.True(t, decimal.NewFromInt(4).Equal(points["t1"]))
	assert.True(t, decimal.NewFromInt(3).Equal(points["t2"]))
	assert.True(t, decimal.NewFromInt(6).Equal(points["t3"]))
	// member series are not scaled in place
	assert.True(t, decimal.NewFromInt(3).Equal(b.Points["t3"]))
}

func TestBlend_DisplayIsSmallestMember(t *testing.T) {
	t.Parallel()

	members := make(map[models.CloudpakMemberKey]*models.MemberSeries)
	for _, id := range []string{"p3", "p1", "p2"} {
		key, m := member(id, "product "+id, "1:1")
		m.Points["t1"] = decimal.NewFromInt(1)
		members[key] = m
	}

	for range 5 {
		bundles := Blend(members)
		require.Len(t, bundles, 1)
		assert.Equal(t, "p1", bundles[0].Display.ProductID)
	}
}

func TestBlend_SeparateBundlesPerCluster(t *testing.T) {
	t.Parallel()

	aKey, a := member("p1", "IBM MQ", "1:1")
	a.Points["t1"] = decimal.NewFromInt(2)
	bKey, b := member("p1", "IBM MQ", "1:1")
	bKey.ClusterID = "c0"
	b.Points["t1"] = decimal.NewFromInt(5)

	bundles := Blend(map[models.CloudpakMemberKey]*models.MemberSeries{aKey: a, bKey: b})

	require.Len(t, bundles, 2)
	assert.Equal(t, "c0", bundles[0].Key.ClusterID)
	assert.True(t, decimal.NewFromInt(5).Equal(bundles[0].Points["t1"]))
	assert.Equal(t, "c1", bundles[1].Key.ClusterID)
	assert.True(t, decimal.NewFromInt(2).Equal(bundles[1].Points["t1"]))
}

func TestBlend_NoMembers(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Blend(nil))
}
