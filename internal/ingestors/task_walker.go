package ingestors

import (
	"context"
	"sort"

	"license-usage-aggregator/internal/models"
	"license-usage-aggregator/internal/shared/filestorages"
	"license-usage-aggregator/internal/shared/loggers"
)

//go:generate mockgen -source=task_walker.go -destination=./mocks/task_walker_mock.go -package=mocks
type TaskWalker interface {
	// Walk enumerates <day>/<product>/<task> below the reader's root. Days come back in
	// lexical order, products and tasks in listing order.
	Walk(ctx context.Context) (*models.UsageLayout, error)
}

type taskWalker struct {
	reader filestorages.Reader
}

func NewTaskWalker(reader filestorages.Reader) TaskWalker {
	return &taskWalker{
		reader: reader,
	}
}

func (w *taskWalker) Walk(ctx context.Context) (*models.UsageLayout, error) {
	logger := loggers.Ctx(ctx)

	dayEntries, err := w.dirs(ctx, "")
	if err != nil {
		return nil, err
	}
	sort.Slice(dayEntries, func(i, j int) bool {
		return dayEntries[i].Name < dayEntries[j].Name
	})

	layout := &models.UsageLayout{Days: make([]*models.DayDir, 0, len(dayEntries))}
	for _, dayEntry := range dayEntries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		productEntries, err := w.dirs(ctx, dayEntry.Key)
		if err != nil {
			return nil, err
		}

		day := &models.DayDir{Name: dayEntry.Name, Products: make([]*models.ProductDir, 0, len(productEntries))}
		for _, productEntry := range productEntries {
			taskKeys, err := w.files(ctx, productEntry.Key)
			if err != nil {
				return nil, err
			}
			if len(taskKeys) == 0 {
				logger.Debug().Str(loggers.FieldDay, day.Name).Str(loggers.FieldProduct, productEntry.Name).Msg("product directory has no task files")
			}
			day.Products = append(day.Products, &models.ProductDir{Name: productEntry.Name, TaskKeys: taskKeys})
		}
		layout.Days = append(layout.Days, day)
	}

	logger.Info().Int("days", len(layout.Days)).Int("tasks", layout.TaskCount()).Msg("walked usage directory")
	return layout, nil
}

// dirs lists the directory entries under key, skipping stray files.
func (w *taskWalker) dirs(ctx context.Context, key string) ([]filestorages.Entry, error) {
	entries, err := w.reader.List(ctx, key)
	if err != nil {
		return nil, errInternalListingFailed(key, err)
	}

	out := make([]filestorages.Entry, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir {
			loggers.Ctx(ctx).Debug().Str(loggers.FieldFile, entry.Key).Msg("skipped non-directory entry")
			continue
		}
		out = append(out, entry)
	}
	return out, nil
}

// files lists the keys of the files under key, skipping nested directories.
func (w *taskWalker) files(ctx context.Context, key string) ([]string, error) {
	entries, err := w.reader.List(ctx, key)
	if err != nil {
		return nil, errInternalListingFailed(key, err)
	}

	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir {
			loggers.Ctx(ctx).Debug().Str(loggers.FieldFile, entry.Key).Msg("skipped nested directory")
			continue
		}
		out = append(out, entry.Key)
	}
	return out, nil
}
