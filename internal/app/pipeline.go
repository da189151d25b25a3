package app

import (
	"context"

	"license-usage-aggregator/internal/aggregators"
	"license-usage-aggregator/internal/ingestors"
	"license-usage-aggregator/internal/reports"
	"license-usage-aggregator/internal/shared/loggers"
	"license-usage-aggregator/internal/stores"
)

// pipeline is one run: walk the input, aggregate every day, format and write the reports.
type pipeline struct {
	taskWalker         ingestors.TaskWalker
	aggregationService aggregators.AggregationService
	rowFormatter       reports.RowFormatter
	reportStore        stores.ReportStore
}

func (p *pipeline) run(ctx context.Context) error {
	logger := loggers.Ctx(ctx)

	layout, err := p.taskWalker.Walk(ctx)
	if err != nil {
		return err
	}

	report, err := p.aggregationService.AggregateRun(ctx, layout)
	if err != nil {
		return err
	}

	files, err := p.rowFormatter.Format(report)
	if err != nil {
		return err
	}
	for _, file := range files {
		if err := p.reportStore.Append(ctx, file); err != nil {
			return err
		}
	}

	logger.Info().
		Str("start_date", report.StartDate).
		Str("end_date", report.EndDate).
		Int("rows", len(report.Rows)).
		Int("files", len(files)).
		Msg("finished writing reports")
	return nil
}
