// Command processor turns a raw layoffs export (CSV or Excel) into the two
// tables the dashboard service consumes: cleaned_layoffs.csv and
// summary_insights.csv. It runs the same sanitizer the service uses, so a
// cleaned file round-trips without further drops.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/saibhavana-turai/layoffsanalysis/internal/analysis"
	"github.com/saibhavana-turai/layoffsanalysis/internal/dataset"
)

func main() {
	input := flag.String("input", "", "raw layoffs file (.csv or .xlsx)")
	outDir := flag.String("out-dir", "reports", "output directory")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if *input == "" {
		fmt.Fprintln(os.Stderr, "usage: processor -input <file> [-out-dir <dir>]")
		os.Exit(2)
	}

	if err := run(*input, *outDir, logger); err != nil {
		logger.Error("processing failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(input, outDir string, logger *slog.Logger) error {
	data, err := dataset.LoadDataset(input, logger)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	cleanedPath := filepath.Join(outDir, "cleaned_layoffs.csv")
	if err := writeCleaned(cleanedPath, data.Records); err != nil {
		return fmt.Errorf("write cleaned table: %w", err)
	}

	summaryPath := filepath.Join(outDir, "summary_insights.csv")
	if err := writeSummary(summaryPath, data.Records); err != nil {
		return fmt.Errorf("write summary table: %w", err)
	}

	logger.Info("processing complete",
		slog.Int("records", len(data.Records)),
		slog.String("cleaned", cleanedPath),
		slog.String("summary", summaryPath))

	return nil
}

func writeCleaned(path string, records []dataset.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"company", "location", "industry", "country", "year", "month", "total_laid_off", "funds_raised"}); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			r.Company,
			r.Location,
			r.Industry,
			r.Country,
			strconv.Itoa(r.Year),
			strconv.Itoa(r.Month),
			strconv.Itoa(r.TotalLaidOff),
			r.FundsRaised,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

// writeSummary computes whole-dataset headline values. The correlation cell
// stays empty when indeterminate so downstream consumers see an absent value
// rather than a fake zero.
func writeSummary(path string, records []dataset.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scalars := analysis.Summarize(records, analysis.Filter{})
	corr := analysis.Correlate(records)

	corrCell := ""
	if corr.Valid {
		corrCell = strconv.FormatFloat(corr.Coefficient, 'f', 6, 64)
	}

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"Total_Layoffs", "Peak_Year", "Top_Industry", "Top_Country", "Avg_YoY_Change", "Funding_Correlation"}); err != nil {
		return err
	}
	row := []string{
		strconv.Itoa(scalars.TotalLayoffs),
		scalars.PeakYear,
		scalars.TopIndustry,
		scalars.TopCountry,
		strconv.FormatFloat(scalars.AvgYoYChangePercent, 'f', 2, 64),
		corrCell,
	}
	if err := w.Write(row); err != nil {
		return err
	}

	return w.Error()
}
