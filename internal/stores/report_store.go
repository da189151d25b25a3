package stores

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"license-usage-aggregator/internal/models"
	"license-usage-aggregator/internal/shared/filestorages"
	"license-usage-aggregator/internal/shared/loggers"
	"license-usage-aggregator/internal/shared/metrics"
)

// ReportStoreOptions controls the byte format of report files.
type ReportStoreOptions struct {
	// UseCRLF terminates lines with \r\n, the line ending spreadsheet-style CSV readers expect.
	UseCRLF bool
}

//go:generate mockgen -source=report_store.go -destination=./mocks/report_store_mock.go -package=mocks
type ReportStore interface {
	// Append writes a header line followed by the file's rows at the end of file.Key,
	// creating the file when it does not exist.
	Append(ctx context.Context, file *models.ReportFile) error
}

type reportStore struct {
	fileStorage filestorages.FileStorage
	opts        ReportStoreOptions
}

func NewReportStore(fileStorage filestorages.FileStorage, opts ReportStoreOptions) ReportStore {
	return &reportStore{fileStorage: fileStorage, opts: opts}
}

func (s *reportStore) Append(ctx context.Context, file *models.ReportFile) error {
	data, err := s.encode(file)
	if err != nil {
		svcErr := errInternalReportWriteFailed(file.Key, err)
		metricReportFilesWrittenTotal.WithLabelValues(svcErr.Code).Inc()
		return svcErr
	}

	if err := s.fileStorage.Append(ctx, file.Key, bytes.NewReader(data)); err != nil {
		svcErr := errInternalReportWriteFailed(file.Key, err)
		metricReportFilesWrittenTotal.WithLabelValues(svcErr.Code).Inc()
		return svcErr
	}

	loggers.Ctx(ctx).Info().
		Str(loggers.FieldFile, file.Key).
		Int("rows", len(file.Rows)).
		Msg("wrote report file")
	metricReportFilesWrittenTotal.WithLabelValues(metrics.ValueNoError).Inc()
	metricReportRowsWrittenTotal.WithLabelValues().Add(float64(len(file.Rows)))
	return nil
}

func (s *reportStore) encode(file *models.ReportFile) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.UseCRLF = s.opts.UseCRLF

	if err := w.Write(models.ReportHeader); err != nil {
		return nil, fmt.Errorf("failed to encode header: %w", err)
	}
	for _, row := range file.Rows {
		if err := w.Write(row.Record()); err != nil {
			return nil, fmt.Errorf("failed to encode row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush rows: %w", err)
	}
	return buf.Bytes(), nil
}
