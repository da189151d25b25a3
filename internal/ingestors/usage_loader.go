package ingestors

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"license-usage-aggregator/internal/models"
	"license-usage-aggregator/internal/shared/filestorages"
	"license-usage-aggregator/internal/shared/loggers"
	"license-usage-aggregator/internal/shared/metrics"
	"license-usage-aggregator/internal/shared/svcerrors"

	"github.com/rs/zerolog"
)

// Task file columns. Rows are addressed by name so column order does not matter.
const (
	ColumnTimestamp            = "Timestamp"
	ColumnProductName          = "ProductName"
	ColumnProductID            = "ProductId"
	ColumnMetric               = "Metric"
	ColumnVCPU                 = "vCPU"
	ColumnClusterID            = "ClusterId"
	ColumnCloudpakName         = "CloudpakName"
	ColumnCloudpakID           = "CloudpakId"
	ColumnCloudpakMetric       = "CloudpakMetric"
	ColumnProductCloudpakRatio = "ProductCloudpakRatio"
)

// requiredColumns must all be present in a header; the cloudpak columns may be absent, in
// which case every row of the file is a standalone sample.
var requiredColumns = []string{
	ColumnTimestamp,
	ColumnProductName,
	ColumnProductID,
	ColumnMetric,
	ColumnVCPU,
	ColumnClusterID,
}

const utf8BOM = "\ufeff"

//go:generate mockgen -source=usage_loader.go -destination=./mocks/usage_loader_mock.go -package=mocks
type UsageLoader interface {
	// Load reads one task file found under productDir and returns what its valid rows
	// accumulate to. Invalid rows are skipped and never fail the call.
	Load(ctx context.Context, productDir string, taskKey string) (*models.SeriesSet, error)
}

// LoaderOptions tunes how the loader treats files it cannot read.
type LoaderOptions struct {
	// SkipUnreadableTasks turns a task read failure into an empty contribution instead of
	// failing the run.
	SkipUnreadableTasks bool
}

type usageLoader struct {
	reader    filestorages.Reader
	validator *sampleValidator
	opts      LoaderOptions
}

func NewUsageLoader(reader filestorages.Reader, opts LoaderOptions) UsageLoader {
	return &usageLoader{
		reader:    reader,
		validator: newSampleValidator(),
		opts:      opts,
	}
}

func (l *usageLoader) Load(ctx context.Context, productDir string, taskKey string) (*models.SeriesSet, error) {
	logger := loggers.Ctx(ctx).With().Str(loggers.FieldTask, taskKey).Logger()
	logger.Debug().Msg("started loading task file")

	set, err := l.load(ctx, &logger, productDir, taskKey)
	if err != nil {
		svcErr, _ := svcerrors.AsServiceError(err)
		if svcErr == nil {
			svcErr = errInternalTaskReadFailed(taskKey, err)
		}
		metricTaskFilesTotal.WithLabelValues(svcErr.Code).Inc()

		if l.opts.SkipUnreadableTasks {
			logger.Warn().Err(svcErr).Str(loggers.FieldErrorCode, svcErr.Code).Msg("skipped unreadable task file")
			return models.NewSeriesSet(), nil
		}
		return nil, svcErr
	}

	logger.Debug().Int("keys", set.Len()).Msg("finished loading task file")
	return set, nil
}

func (l *usageLoader) load(ctx context.Context, logger *zerolog.Logger, productDir string, taskKey string) (*models.SeriesSet, error) {
	rc, err := l.reader.Get(ctx, taskKey)
	if err != nil {
		return nil, errInternalTaskReadFailed(taskKey, err)
	}
	defer rc.Close()

	r := csv.NewReader(rc)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	set := models.NewSeriesSet()

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		logger.Debug().Msg("task file is empty")
		metricTaskFilesTotal.WithLabelValues(metrics.ValueNoError).Inc()
		return set, nil
	}
	if err != nil {
		return nil, errInternalTaskReadFailed(taskKey, err)
	}

	columns, missing := newColumnIndex(header)
	if len(missing) > 0 {
		svcErr := errMissingHeaderField(missing)
		logger.Warn().Err(svcErr).Str(loggers.FieldErrorCode, svcErr.Code).Msg("skipped task file")
		metricTaskFilesTotal.WithLabelValues(svcErr.Code).Inc()
		return set, nil
	}

	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			l.reject(logger, parseErr.StartLine, errMalformedRow("unparsable row", err))
			continue
		}
		if err != nil {
			return nil, errInternalTaskReadFailed(taskKey, err)
		}
		line, _ := r.FieldPos(0)

		row, ok := columns.row(record)
		if !ok {
			l.reject(logger, line, errMalformedRow("row has fewer fields than the header", nil))
			continue
		}

		sample, svcErr := l.validator.Validate(row, productDir)
		if svcErr != nil {
			l.reject(logger, line, svcErr)
			continue
		}

		set.AddSample(sample)
		metricSamplesTotal.WithLabelValues(metrics.ValueNoError).Inc()
	}

	metricTaskFilesTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return set, nil
}

func (l *usageLoader) reject(logger *zerolog.Logger, line int, svcErr *svcerrors.ServiceError) {
	logger.Warn().
		Int(loggers.FieldLine, line).
		Str(loggers.FieldErrorCode, svcErr.Code).
		Err(svcErr).
		Msg("rejected usage sample")
	metricSamplesTotal.WithLabelValues(svcErr.Code).Inc()
}

// columnIndex maps a column name to its position in the header.
type columnIndex map[string]int

func newColumnIndex(header []string) (columnIndex, []string) {
	columns := make(columnIndex, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		columns[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	return columns, missing
}

// row builds a usageRow from record. It reports false when the record is too short to hold
// a column the header declares.
func (c columnIndex) row(record []string) (*usageRow, bool) {
	short := false
	field := func(name string) string {
		i, ok := c[name]
		if !ok {
			return ""
		}
		if i >= len(record) {
			short = true
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	row := &usageRow{
		Timestamp:            field(ColumnTimestamp),
		ProductName:          field(ColumnProductName),
		ProductID:            field(ColumnProductID),
		ProductMetric:        field(ColumnMetric),
		VCPU:                 field(ColumnVCPU),
		ClusterID:            field(ColumnClusterID),
		CloudpakName:         field(ColumnCloudpakName),
		CloudpakID:           field(ColumnCloudpakID),
		CloudpakMetric:       field(ColumnCloudpakMetric),
		ProductCloudpakRatio: field(ColumnProductCloudpakRatio),
	}
	return row, !short
}
