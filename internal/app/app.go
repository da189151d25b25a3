package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"license-usage-aggregator/internal/aggregators"
	"license-usage-aggregator/internal/ingestors"
	"license-usage-aggregator/internal/reports"
	"license-usage-aggregator/internal/shared/configs"
	"license-usage-aggregator/internal/shared/filestorages"
	"license-usage-aggregator/internal/shared/loggers"
	"license-usage-aggregator/internal/shared/metrics"
	"license-usage-aggregator/internal/shared/svcerrors"
	"license-usage-aggregator/internal/shared/ulid"
	"license-usage-aggregator/internal/stores"
)

const appName = "license-usage-aggregator"

// App holds the configuration and logger shared by every run.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level, config.Log.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return NewWithLogger(config, appLogger), nil
}

// NewWithLogger creates an App that logs through appLogger instead of stdout.
func NewWithLogger(config *configs.Config, appLogger loggers.Logger) *App {
	return &App{
		config:    config,
		appLogger: appLogger.With().Str(loggers.FieldApp, appName).Logger(),
	}
}

// Run aggregates the usage tree at input into report files in outputDir. The input is a
// local directory or, with input.source s3, an object prefix in the configured bucket.
func (app *App) Run(ctx context.Context, input string, outputDir string) error {
	runLogger := app.appLogger.With().Str(loggers.FieldRunID, ulid.NewULID()).Logger()
	ctx = runLogger.WithContext(ctx)
	start := time.Now()

	runLogger.Info().
		Str("input", input).
		Str("input_source", app.config.Input.Source).
		Str("output", outputDir).
		Msg("started license usage aggregation")

	err := app.run(ctx, input, outputDir)
	app.flushMetrics(ctx)

	if err != nil {
		event := runLogger.Error().Err(err)
		if svcErr, ok := svcerrors.AsServiceError(err); ok {
			event = event.Str(loggers.FieldErrorCode, svcErr.Code)
		}
		event.Msg("license usage aggregation failed")
		return err
	}

	runLogger.Info().Dur(loggers.FieldDuration, time.Since(start)).Msg("finished license usage aggregation")
	return nil
}

func (app *App) run(ctx context.Context, input string, outputDir string) error {
	reader, err := app.newInputReader(input)
	if err != nil {
		return errInputInvalid("cannot open input", err)
	}
	if err := checkInput(ctx, reader); err != nil {
		return err
	}

	outputStorage, err := filestorages.NewFileStorage(outputDir)
	if err != nil {
		return errOutputInvalid("cannot open output directory", err)
	}
	if err := checkOutput(ctx, outputStorage); err != nil {
		return err
	}

	return app.newPipeline(reader, outputStorage).run(ctx)
}

func (app *App) newInputReader(input string) (filestorages.Reader, error) {
	if app.config.Input.Source == configs.SourceS3 {
		s3 := app.config.Input.S3
		return filestorages.NewMinioReader(filestorages.MinioOptions{
			Endpoint:  s3.Endpoint,
			Bucket:    s3.Bucket,
			AccessKey: s3.AccessKey,
			SecretKey: s3.SecretKey,
			Region:    s3.Region,
			UseSSL:    s3.UseSSL,
			Prefix:    input,
		})
	}
	return filestorages.NewFileStorage(input)
}

func (app *App) newPipeline(reader filestorages.Reader, outputStorage filestorages.FileStorage) *pipeline {
	usageLoader := ingestors.NewUsageLoader(reader, ingestors.LoaderOptions{
		SkipUnreadableTasks: app.config.Aggregation.SkipUnreadableTasks,
	})
	aggregationService := aggregators.NewAggregationService(usageLoader, aggregators.NewDailyRolluper(), aggregators.AggregationOptions{
		DayWorkers: app.config.Aggregation.DayWorkers,
	})
	rowFormatter := reports.NewRowFormatter(reports.FormatterOptions{
		FilePrefix:    app.config.Report.FilePrefix,
		Extension:     app.config.Report.Extension,
		PVUMultiplier: int64(app.config.Aggregation.PVUMultiplier),
	})
	reportStore := stores.NewReportStore(outputStorage, stores.ReportStoreOptions{
		UseCRLF: app.config.Report.UseCRLF,
	})

	return &pipeline{
		taskWalker:         ingestors.NewTaskWalker(reader),
		aggregationService: aggregationService,
		rowFormatter:       rowFormatter,
		reportStore:        reportStore,
	}
}

// checkInput requires an existing, non-empty input root.
func checkInput(ctx context.Context, reader filestorages.Reader) error {
	entries, err := reader.List(ctx, "")
	switch {
	case errors.Is(err, filestorages.ErrFileNotFound):
		return errInputInvalid("input directory does not exist", err)
	case errors.Is(err, filestorages.ErrNotDirectory):
		return errInputInvalid("input is not a directory", err)
	case err != nil:
		return errInputInvalid("cannot list input", err)
	case len(entries) == 0:
		return errInputInvalid("input directory is empty", nil)
	}
	return nil
}

// checkOutput requires an existing, empty output directory: report files are appended to,
// so leftovers from an earlier run would be duplicated.
func checkOutput(ctx context.Context, storage filestorages.FileStorage) error {
	entries, err := storage.List(ctx, "")
	switch {
	case errors.Is(err, filestorages.ErrFileNotFound):
		return errOutputInvalid("output directory does not exist", err)
	case errors.Is(err, filestorages.ErrNotDirectory):
		return errOutputInvalid("output is not a directory", err)
	case err != nil:
		return errOutputInvalid("cannot list output directory", err)
	case len(entries) > 0:
		return errOutputInvalid("output directory is not empty", nil)
	}
	return nil
}

func (app *App) flushMetrics(ctx context.Context) {
	path := app.config.Metrics.TextfilePath
	if path == "" {
		return
	}
	if err := metrics.WriteTextfile(path); err != nil {
		loggers.Ctx(ctx).Warn().Err(err).Str(loggers.FieldFile, path).Msg("failed to write metrics textfile")
	}
}
