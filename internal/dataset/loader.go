package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// LoadDataset reads the cleaned layoffs table from path and sanitizes it into
// the immutable session dataset. CSV and Excel sources are both accepted,
// selected by extension. A missing or unreadable file is an error; per the
// session contract the caller treats that as fatal before any computation.
func LoadDataset(path string, logger *slog.Logger) (*Dataset, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var (
		header []string
		rows   [][]string
		err    error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		header, rows, err = readExcelTable(path)
	default:
		header, rows, err = readCSVTable(path)
	}
	if err != nil {
		return nil, fmt.Errorf("load dataset %s: %w", path, err)
	}

	ds := &Dataset{
		Records:  Sanitize(header, rows, logger),
		Source:   path,
		LoadedAt: time.Now(),
	}

	logger.Info("dataset loaded",
		slog.String("source", path),
		slog.Int("records", len(ds.Records)))

	return ds, nil
}

// LoadSummaryInsights reads the companion summary table and extracts the
// precomputed Funding_Correlation value. The value is consumed as-is, never
// recomputed. A missing file is an error; a present file with an unparseable
// correlation yields an absent value, not an error.
func LoadSummaryInsights(path string, logger *slog.Logger) (*SummaryInsights, error) {
	if logger == nil {
		logger = slog.Default()
	}

	header, rows, err := readCSVTable(path)
	if err != nil {
		return nil, fmt.Errorf("load summary insights %s: %w", path, err)
	}

	insights := &SummaryInsights{Source: path}

	corrIdx := -1
	for i, name := range header {
		if strings.EqualFold(strings.TrimSpace(name), "Funding_Correlation") {
			corrIdx = i
			break
		}
	}

	if corrIdx >= 0 && len(rows) > 0 && corrIdx < len(rows[0]) {
		if v, err := strconv.ParseFloat(strings.TrimSpace(rows[0][corrIdx]), 64); err == nil {
			insights.FundingCorrelation = &v
		}
	}

	if insights.FundingCorrelation == nil {
		logger.Warn("summary insights missing funding correlation",
			slog.String("source", path))
	}

	return insights, nil
}

// Load fetches the dataset and the summary insights concurrently. Either file
// missing aborts the whole load so the session never starts on partial input.
func Load(ctx context.Context, datasetPath, summaryPath string, logger *slog.Logger) (*Dataset, *SummaryInsights, error) {
	var (
		ds       *Dataset
		insights *SummaryInsights
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		ds, err = LoadDataset(datasetPath, logger)
		return err
	})
	g.Go(func() error {
		var err error
		insights, err = LoadSummaryInsights(summaryPath, logger)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return ds, insights, nil
}

// readCSVTable reads a CSV file into a header row plus data rows. Ragged rows
// are tolerated; the sanitizer treats short rows as missing values.
func readCSVTable(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	all, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(all) == 0 {
		return nil, nil, fmt.Errorf("empty table")
	}

	return all[0], all[1:], nil
}
