package importer

//go:generate mockgen -source=importer.go -destination=importer_mock.go -package=importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sbilibin2017/gw-usecase-explorer/internal/logger"
	"github.com/sbilibin2017/gw-usecase-explorer/internal/models"
)

// TitleChecker reports whether a use case title is taken.
type TitleChecker interface {
	ExistsByTitle(ctx context.Context, title string) (bool, error)
}

// UseCaseCreator inserts use cases.
type UseCaseCreator interface {
	Create(ctx context.Context, uc models.UseCaseDB) (*models.UseCaseDB, error)
}

// Options controls an import run.
type Options struct {
	// DryRun validates rows without touching the store.
	DryRun bool
	// Force reports rows with an existing title as errors instead of skipping them silently.
	Force bool
}

// Result summarises an import run.
type Result struct {
	Total    int      `json:"total"`
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors"`
}

// Importer loads use cases from CSV files.
type Importer struct {
	titles  TitleChecker
	creator UseCaseCreator
}

// New creates a new Importer. Both dependencies may be nil for dry runs.
func New(titles TitleChecker, creator UseCaseCreator) *Importer {
	return &Importer{titles: titles, creator: creator}
}

type parsedRow struct {
	line    int
	useCase models.UseCaseDB
}

// Import reads CSV records from r, maps them with format and stores the valid ones.
// Row failures are collected in Result.Errors; only unreadable input fails the run.
func (i *Importer) Import(ctx context.Context, r io.Reader, format Format, opts Options) (*Result, error) {
	rows, result, err := parse(r, format)
	if err != nil {
		return nil, err
	}

	logger.Log.Infow("csv parsed",
		"format", format,
		"total", result.Total,
		"valid", len(rows),
		"skipped", result.Skipped,
	)

	if opts.DryRun {
		logger.Log.Info("dry run, nothing imported")
		return result, nil
	}

	for _, row := range rows {
		title := row.useCase.Title

		exists, err := i.titles.ExistsByTitle(ctx, title)
		if err != nil {
			result.fail(fmt.Sprintf("line %d: failed to import %q: %v", row.line, title, err))
			continue
		}
		if exists {
			result.Skipped++
			if opts.Force {
				result.Errors = append(result.Errors, fmt.Sprintf("line %d: use case already exists: %q", row.line, title))
			} else {
				logger.Log.Infow("skipped existing use case", "title", title)
			}
			continue
		}

		if _, err := i.creator.Create(ctx, row.useCase); err != nil {
			result.fail(fmt.Sprintf("line %d: failed to import %q: %v", row.line, title, err))
			continue
		}

		logger.Log.Infow("imported use case", "title", title)
		result.Imported++
	}

	logger.Log.Infow("import finished",
		"imported", result.Imported,
		"skipped", result.Skipped,
		"errors", len(result.Errors),
	)

	return result, nil
}

func (r *Result) fail(msg string) {
	logger.Log.Warn(msg)
	r.Errors = append(r.Errors, msg)
	r.Skipped++
}

// parse reads every record and maps it, counting invalid rows as skipped.
// Line numbers count the header as line 1.
func parse(r io.Reader, format Format) ([]parsedRow, *Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, &Result{Errors: []string{}}, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read csv header: %w", err)
	}
	for idx, h := range header {
		header[idx] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}

	result := &Result{Errors: []string{}}
	var rows []parsedRow

	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read csv line %d: %w", line, err)
		}

		if format == FormatBechtle && line == 2 && isSchemaRow(record) {
			logger.Log.Debug("skipped SharePoint schema row")
			continue
		}

		result.Total++

		row := make(map[string]string, len(header))
		for idx, h := range header {
			if idx < len(record) {
				row[h] = record[idx]
			}
		}

		uc, err := RowToUseCase(format, row)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %v", line, err))
			continue
		}
		rows = append(rows, parsedRow{line: line, useCase: uc})
	}

	return rows, result, nil
}
