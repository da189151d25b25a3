package aggregators

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"license-usage-aggregator/internal/ingestors"
	"license-usage-aggregator/internal/models"
	"license-usage-aggregator/internal/shared/loggers"
	"license-usage-aggregator/internal/shared/metrics"
	"license-usage-aggregator/internal/shared/svcerrors"

	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=aggregation_service.go -destination=./mocks/aggregation_service_mock.go -package=mocks
type AggregationService interface {
	// AggregateDay loads every task of the day and reduces it to daily rows.
	AggregateDay(ctx context.Context, day *models.DayDir) ([]*models.DailyHWMRow, error)
	// AggregateRun aggregates every day of the layout. Rows come back grouped by day in
	// layout order whatever the number of workers.
	AggregateRun(ctx context.Context, layout *models.UsageLayout) (*models.DailyReport, error)
}

// AggregationOptions tunes a run.
type AggregationOptions struct {
	// DayWorkers bounds how many days are aggregated at once. Days share no state, so any
	// value yields the same rows; 1 processes them one after another.
	DayWorkers int
}

type aggregationService struct {
	usageLoader   ingestors.UsageLoader
	dailyRolluper DailyRolluper
	opts          AggregationOptions
}

func NewAggregationService(usageLoader ingestors.UsageLoader, dailyRolluper DailyRolluper, opts AggregationOptions) AggregationService {
	if opts.DayWorkers < 1 {
		opts.DayWorkers = 1
	}
	return &aggregationService{usageLoader: usageLoader, dailyRolluper: dailyRolluper, opts: opts}
}

func (s *aggregationService) AggregateDay(ctx context.Context, day *models.DayDir) ([]*models.DailyHWMRow, error) {
	logger := loggers.Ctx(ctx).With().Str(loggers.FieldDay, day.Name).Logger()
	ctx = logger.WithContext(ctx)
	logger.Info().Msg("started aggregating day")

	productSets := make([]*models.SeriesSet, 0, len(day.Products))
	for _, product := range day.Products {
		productSet, err := s.loadProduct(ctx, product)
		if err != nil {
			return nil, err
		}
		productSets = append(productSets, productSet)
	}
	daySet := models.NewSeriesSet().Merge(productSets...)

	rows, err := s.dailyRolluper.Rollup(day.Name, daySet)
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		event := logger.Debug().
			Str(loggers.FieldClusterID, row.ClusterID).
			Str("name", row.Name).
			Str("metric", row.MetricName).
			Int64("quantity", row.MetricQuantity)
		if row.Cloudpak != nil {
			event = event.Str("cloudpak_id", row.Cloudpak.ID)
		}
		event.Msg("daily high-water mark")
	}
	logger.Info().Int("rows", len(rows)).Msg("finished aggregating day")
	return rows, nil
}

// loadProduct merges every task file of one product directory.
func (s *aggregationService) loadProduct(ctx context.Context, product *models.ProductDir) (*models.SeriesSet, error) {
	logger := loggers.Ctx(ctx).With().Str(loggers.FieldProduct, product.Name).Logger()
	ctx = logger.WithContext(ctx)
	logger.Debug().Int("tasks", len(product.TaskKeys)).Msg("started loading product")

	taskSets := make([]*models.SeriesSet, 0, len(product.TaskKeys))
	for _, taskKey := range product.TaskKeys {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		taskSet, err := s.usageLoader.Load(ctx, product.Name, taskKey)
		if err != nil {
			return nil, err
		}
		taskSets = append(taskSets, taskSet)
	}
	return models.NewSeriesSet().Merge(taskSets...), nil
}

func (s *aggregationService) AggregateRun(ctx context.Context, layout *models.UsageLayout) (*models.DailyReport, error) {
	logger := loggers.Ctx(ctx)
	logger.Info().
		Str("start_date", layout.StartDate()).
		Str("end_date", layout.EndDate()).
		Int("day_workers", s.opts.DayWorkers).
		Msg("started aggregating run")

	dayRows := make([][]*models.DailyHWMRow, len(layout.Days))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.DayWorkers)
	for i, day := range layout.Days {
		g.Go(func() error {
			rows, err := s.aggregateDaySafely(gctx, day)
			if err != nil {
				return err
			}
			dayRows[i] = rows
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &models.DailyReport{
		StartDate: layout.StartDate(),
		EndDate:   layout.EndDate(),
	}
	for _, rows := range dayRows {
		report.Rows = append(report.Rows, rows...)
	}

	logger.Info().Int("rows", len(report.Rows)).Msg("finished aggregating run")
	return report, nil
}

// aggregateDaySafely runs AggregateDay, turning a panic into an error so that one bad day
// fails the run instead of crashing the process.
func (s *aggregationService) aggregateDaySafely(ctx context.Context, day *models.DayDir) (rows []*models.DailyHWMRow, err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			loggers.Ctx(ctx).Error().
				Str(loggers.FieldDay, day.Name).
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msg("day aggregation panic recovered")

			var panicErr error
			if e, ok := r.(error); ok {
				panicErr = e
			} else {
				panicErr = fmt.Errorf("%v", r)
			}
			rows, err = nil, errInternalDayPanicked(day.Name, panicErr)
		}

		code := metrics.ValueNoError
		if err != nil {
			code = svcerrors.NewInternalErrorUndefined(err).Code
			if svcErr, ok := svcerrors.AsServiceError(err); ok {
				code = svcErr.Code
			}
		}
		metricDaysAggregatedTotal.WithLabelValues(code).Inc()
		metricDayDurationSeconds.WithLabelValues(code).Observe(time.Since(start).Seconds())
	}()

	return s.AggregateDay(ctx, day)
}
