package services

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/bytesyntax/schedule-helper/pkg/core/schedule"
)

// RowSource yields raw shift rows, e.g. a spreadsheet file, a stored import or a Google sheet
type RowSource interface {
	Name() string
	ReadRows(ctx context.Context) ([]schedule.RawShift, error)
}

// SourceSummary counts what one source contributed
type SourceSummary struct {
	Name     string
	Rows     int
	Records  int
	Failures int
}

// LoadResult holds every valid record, their dates and the rows that were rejected
type LoadResult struct {
	Records  []*schedule.ShiftRecord
	Dates    *schedule.DateSet
	Failures []*schedule.RowError
	Sources  []SourceSummary
}

type sourceResult struct {
	records  []*schedule.ShiftRecord
	dates    *schedule.DateSet
	failures []*schedule.RowError
	rows     int
	err      error
}

// LoadShifts reads all sources in parallel and builds records against policy.
// Each source registers dates in its own set; the sets are merged afterwards and records keep
// source order. A source that cannot be read fails the whole load; bad rows do not.
func LoadShifts(ctx context.Context, sources []RowSource, policy schedule.Policy, logger *zap.Logger) (*LoadResult, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}

	results := make([]sourceResult, len(sources))
	var wg sync.WaitGroup

	for i, src := range sources {
		wg.Add(1)
		go func(i int, src RowSource) {
			defer wg.Done()
			results[i] = loadSource(ctx, src, policy, logger)
		}(i, src)
	}
	wg.Wait()

	load := &LoadResult{Dates: schedule.NewDateSet()}
	for i, res := range results {
		if res.err != nil {
			return nil, fmt.Errorf("failed to read shifts from %s: %w", sources[i].Name(), res.err)
		}
		load.Records = append(load.Records, res.records...)
		load.Failures = append(load.Failures, res.failures...)
		load.Dates.Merge(res.dates)
		load.Sources = append(load.Sources, SourceSummary{
			Name:     sources[i].Name(),
			Rows:     res.rows,
			Records:  len(res.records),
			Failures: len(res.failures),
		})
	}

	for _, failure := range load.Failures {
		logger.Warn("Skipping invalid shift row",
			zap.String("source", failure.Source),
			zap.Int("row", failure.Index),
			zap.Strings("values", failure.Row.Values()),
			zap.Error(failure.Err))
	}

	logger.Info(fmt.Sprintf("Processed %d lines of shift data", len(load.Records)),
		zap.Int("sources", len(sources)),
		zap.Int("dates", load.Dates.Len()),
		zap.Int("failures", len(load.Failures)))

	return load, nil
}

func loadSource(ctx context.Context, src RowSource, policy schedule.Policy, logger *zap.Logger) sourceResult {
	logger.Debug("Reading shift data", zap.String("source", src.Name()))

	rows, err := src.ReadRows(ctx)
	if err != nil {
		return sourceResult{err: err}
	}

	dates := schedule.NewDateSet()
	builder, err := schedule.NewRecordBuilder(policy, dates)
	if err != nil {
		return sourceResult{err: err}
	}

	records, failures := schedule.ReadRecords(src.Name(), rows, builder)
	return sourceResult{records: records, dates: dates, failures: failures, rows: len(rows)}
}
