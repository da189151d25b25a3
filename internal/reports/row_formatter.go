package reports

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"license-usage-aggregator/internal/models"
)

// MetricPVU is billed in processor value units, a fixed multiple of the measured cores.
const MetricPVU = "PROCESSOR_VALUE_UNIT"

var clusterIDReplacer = strings.NewReplacer(":", "_", "/", "_")

// FormatterOptions controls naming and unit conversion of the emitted files.
type FormatterOptions struct {
	FilePrefix    string
	Extension     string
	PVUMultiplier int64
}

//go:generate mockgen -source=row_formatter.go -destination=./mocks/row_formatter_mock.go -package=mocks
type RowFormatter interface {
	// Format resolves the emitted identity of every row, converts PVU quantities and groups
	// the rows by destination file. Files are sorted by key and rows within a file by
	// name, metric and date.
	Format(report *models.DailyReport) ([]*models.ReportFile, error)
}

type rowFormatter struct {
	opts FormatterOptions
}

func NewRowFormatter(opts FormatterOptions) RowFormatter {
	return &rowFormatter{opts: opts}
}

func (f *rowFormatter) Format(report *models.DailyReport) ([]*models.ReportFile, error) {
	rows := make([]*models.ReportRow, 0, len(report.Rows))
	for _, row := range report.Rows {
		out, err := f.formatRow(row)
		if err != nil {
			return nil, err
		}
		rows = append(rows, out)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return reportRowLess(rows[i], rows[j])
	})

	byKey := make(map[string]*models.ReportFile)
	keys := make([]string, 0)
	for _, row := range rows {
		key := f.fileKey(report.StartDate, report.EndDate, row.ClusterID)
		file, ok := byKey[key]
		if !ok {
			file = &models.ReportFile{Key: key}
			byKey[key] = file
			keys = append(keys, key)
		}
		file.Rows = append(file.Rows, row)
	}

	sort.Strings(keys)
	files := make([]*models.ReportFile, 0, len(keys))
	for _, key := range keys {
		files = append(files, byKey[key])
	}
	return files, nil
}

// fileKey names the file holding the rows of one cluster for the run.
func (f *rowFormatter) fileKey(startDate, endDate, clusterID string) string {
	return fmt.Sprintf("%s_%s_%s_%s.%s", f.opts.FilePrefix, startDate, endDate, SanitizeClusterID(clusterID), f.opts.Extension)
}

// formatRow applies the bundle override, then converts the quantity of the effective metric.
// A member measured in PVU inside a bundle billed per core is therefore not multiplied: the
// bundle quantity is already in the bundle's unit.
func (f *rowFormatter) formatRow(row *models.DailyHWMRow) (*models.ReportRow, error) {
	out := &models.ReportRow{
		Date:           row.Date,
		Name:           row.Name,
		ID:             row.ID,
		MetricName:     row.MetricName,
		MetricQuantity: row.MetricQuantity,
		ClusterID:      row.ClusterID,
	}
	if row.Cloudpak != nil {
		out.Name = row.Cloudpak.Name
		out.ID = row.Cloudpak.ID
		out.MetricName = row.Cloudpak.Metric
	}
	if out.MetricName == MetricPVU {
		if f.opts.PVUMultiplier > 0 && out.MetricQuantity > math.MaxInt64/f.opts.PVUMultiplier {
			return nil, errInternalQuantityOverflow(out.MetricQuantity, f.opts.PVUMultiplier)
		}
		out.MetricQuantity *= f.opts.PVUMultiplier
	}
	return out, nil
}

// SanitizeClusterID replaces the characters of a cluster id that cannot appear in a file name.
func SanitizeClusterID(clusterID string) string {
	return clusterIDReplacer.Replace(clusterID)
}

func reportRowLess(a, b *models.ReportRow) bool {
	if a.Name != b.Name {
		return a.Name < b.Name
	}
	if a.MetricName != b.MetricName {
		return a.MetricName < b.MetricName
	}
	if a.Date != b.Date {
		return a.Date < b.Date
	}
	if a.ID != b.ID {
		return a.ID < b.ID
	}
	return a.ClusterID < b.ClusterID
}
