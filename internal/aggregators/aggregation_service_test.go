package aggregators_test

import (
	"context"
	"errors"
	"testing"

	"license-usage-aggregator/internal/aggregators"
	aggregatormocks "license-usage-aggregator/internal/aggregators/mocks"
	ingestormocks "license-usage-aggregator/internal/ingestors/mocks"
	"license-usage-aggregator/internal/models"
	"license-usage-aggregator/internal/shared/svcerrors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func sample(productID, ts, vcpu string) *models.UsageSample {
	return &models.UsageSample{
		Timestamp:     ts,
		ProductName:   "product " + productID,
		ProductID:     productID,
		ProductMetric: "VIRTUAL_PROCESSOR_CORE",
		VCPU:          decimal.RequireFromString(vcpu),
		ClusterID:     "c1",
	}
}

func setOf(samples ...*models.UsageSample) *models.SeriesSet {
	set := models.NewSeriesSet()
	for _, s := range samples {
		set.AddSample(s)
	}
	return set
}

func TestAggregateDay_SumsTasksBeforePeak(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loader := ingestormocks.NewMockUsageLoader(ctrl)
	loader.EXPECT().Load(gomock.Any(), "p1", "d1/p1/a.csv").Return(setOf(sample("p1", "t1", "1.5"), sample("p1", "t2", "0.5")), nil)
	loader.EXPECT().Load(gomock.Any(), "p1", "d1/p1/b.csv").Return(setOf(sample("p1", "t1", "1"), sample("p1", "t2", "0.5")), nil)
	service := aggregators.NewAggregationService(loader, aggregators.NewDailyRolluper(), aggregators.AggregationOptions{})

	day := &models.DayDir{Name: "d1", Products: []*models.ProductDir{
		{Name: "p1", TaskKeys: []string{"d1/p1/a.csv", "d1/p1/b.csv"}},
		{Name: "p2"},
	}}
	rows, err := service.AggregateDay(context.Background(), day)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "d1", rows[0].Date)
	assert.Equal(t, "p1", rows[0].ID)
	// t1: 1.5 + 1 = 2.5, t2: 0.5 + 0.5 = 1, ceil(max) = 3
	assert.Equal(t, int64(3), rows[0].MetricQuantity)
}

func TestAggregateDay_ErrLoaderFailed(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loadErr := svcerrors.NewInternalError("ING_9000", errors.New("disk gone"))
	loader := ingestormocks.NewMockUsageLoader(ctrl)
	loader.EXPECT().Load(gomock.Any(), "p1", "a.csv").Return(nil, loadErr)
	rolluper := aggregatormocks.NewMockDailyRolluper(ctrl)
	service := aggregators.NewAggregationService(loader, rolluper, aggregators.AggregationOptions{})

	day := &models.DayDir{Name: "d1", Products: []*models.ProductDir{{Name: "p1", TaskKeys: []string{"a.csv", "b.csv"}}}}
	rows, err := service.AggregateDay(context.Background(), day)

	assert.Nil(t, rows)
	assert.ErrorIs(t, err, loadErr)
}

func TestAggregateDay_ErrRollupFailed(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rollupErr := errors.New("rollup failed")
	loader := ingestormocks.NewMockUsageLoader(ctrl)
	loader.EXPECT().Load(gomock.Any(), "p1", "a.csv").Return(setOf(sample("p1", "t1", "1")), nil)
	rolluper := aggregatormocks.NewMockDailyRolluper(ctrl)
	rolluper.EXPECT().Rollup("d1", gomock.Any()).Return(nil, rollupErr)
	service := aggregators.NewAggregationService(loader, rolluper, aggregators.AggregationOptions{})

	day := &models.DayDir{Name: "d1", Products: []*models.ProductDir{{Name: "p1", TaskKeys: []string{"a.csv"}}}}
	_, err := service.AggregateDay(context.Background(), day)

	assert.ErrorIs(t, err, rollupErr)
}

func newRunLayout() *models.UsageLayout {
	layout := &models.UsageLayout{}
	for _, name := range []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04"} {
		layout.Days = append(layout.Days, &models.DayDir{
			Name:     name,
			Products: []*models.ProductDir{{Name: "p1", TaskKeys: []string{name + "/p1/task.csv"}}},
		})
	}
	return layout
}

func TestAggregateRun_KeepsDayOrder(t *testing.T) {
	t.Parallel()

	for _, workers := range []int{1, 3, 8} {
		ctrl := gomock.NewController(t)
		loader := ingestormocks.NewMockUsageLoader(ctrl)
		loader.EXPECT().Load(gomock.Any(), "p1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, taskKey string) (*models.SeriesSet, error) {
				return setOf(sample("p1", "t1", "2")), nil
			}).Times(4)
		service := aggregators.NewAggregationService(loader, aggregators.NewDailyRolluper(), aggregators.AggregationOptions{DayWorkers: workers})

		report, err := service.AggregateRun(context.Background(), newRunLayout())

		require.NoError(t, err)
		assert.Equal(t, "2024-01-01", report.StartDate)
		assert.Equal(t, "2024-01-04", report.EndDate)
		require.Len(t, report.Rows, 4)
		for i, date := range []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04"} {
			assert.Equal(t, date, report.Rows[i].Date, "workers=%d", workers)
			assert.Equal(t, int64(2), report.Rows[i].MetricQuantity)
		}
	}
}

func TestAggregateRun_EmptyLayout(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := aggregators.NewAggregationService(ingestormocks.NewMockUsageLoader(ctrl), aggregators.NewDailyRolluper(), aggregators.AggregationOptions{DayWorkers: 2})

	report, err := service.AggregateRun(context.Background(), &models.UsageLayout{})

	require.NoError(t, err)
	assert.Empty(t, report.StartDate)
	assert.Empty(t, report.Rows)
}

func TestAggregateRun_FirstErrorFailsRun(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loadErr := svcerrors.NewInternalError("ING_9000", errors.New("disk gone"))
	loader := ingestormocks.NewMockUsageLoader(ctrl)
	loader.EXPECT().Load(gomock.Any(), "p1", "2024-01-01/p1/task.csv").Return(nil, loadErr)
	service := aggregators.NewAggregationService(loader, aggregators.NewDailyRolluper(), aggregators.AggregationOptions{DayWorkers: 1})

	report, err := service.AggregateRun(context.Background(), newRunLayout())

	assert.Nil(t, report)
	assert.ErrorIs(t, err, loadErr)
}

func TestAggregateRun_ErrInternalDayPanicked(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loader := ingestormocks.NewMockUsageLoader(ctrl)
	loader.EXPECT().Load(gomock.Any(), "p1", gomock.Any()).
		DoAndReturn(func(context.Context, string, string) (*models.SeriesSet, error) {
			panic("corrupt state")
		}).MinTimes(1)
	service := aggregators.NewAggregationService(loader, aggregators.NewDailyRolluper(), aggregators.AggregationOptions{DayWorkers: 1})

	var report *models.DailyReport
	var err error
	assert.NotPanics(t, func() {
		report, err = service.AggregateRun(context.Background(), newRunLayout())
	})

	assert.Nil(t, report)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok, "expected ServiceError")
	assert.Equal(t, "AGG_9001", svcErr.Code)
}
