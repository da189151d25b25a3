package models

import "strconv"

// ReportHeader is the column order of every emitted report file.
var ReportHeader = []string{"date", "name", "id", "metricName", "metricQuantity", "clusterId"}

// CloudpakRef is the bundle identity carried by a bundle row until formatting.
type CloudpakRef struct {
	Name   string
	ID     string
	Metric string
}

// DailyHWMRow is the daily high-water mark of one product or bundle on one cluster.
type DailyHWMRow struct {
	Date           string
	Name           string
	ID             string
	MetricName     string
	MetricQuantity int64
	ClusterID      string
	// Cloudpak is set on bundle rows only and is never emitted as a column.
	Cloudpak *CloudpakRef
}

// DailyReport is the outcome of aggregating a whole input tree.
type DailyReport struct {
	StartDate string
	EndDate   string
	Rows      []*DailyHWMRow
}

// ReportRow is a formatted row ready for serialization.
type ReportRow struct {
	Date           string
	Name           string
	ID             string
	MetricName     string
	MetricQuantity int64
	ClusterID      string
}

// Record returns the row's fields in ReportHeader order.
func (r *ReportRow) Record() []string {
	return []string{
		r.Date,
		r.Name,
		r.ID,
		r.MetricName,
		strconv.FormatInt(r.MetricQuantity, 10),
		r.ClusterID,
	}
}

// ReportFile is the set of rows destined for one output file.
type ReportFile struct {
	Key  string
	Rows []*ReportRow
}
