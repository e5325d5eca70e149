package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeTempCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDatasetCSV(t *testing.T) {
	path := writeTempCSV(t, "layoffs.csv",
		"company,location,industry,country,year,month,total_laid_off,funds_raised\n"+
			"Acme,SF,Tech,US,2020,March,100,10M\n"+
			"Beta,NY,Media,US,not-a-year,April,50,1M\n"+
			"Gamma,Berlin,Tech,Germany,2021,5,200,$2.5B\n")

	ds, err := LoadDataset(path, nil)
	require.NoError(t, err)

	require.Len(t, ds.Records, 2)
	assert.Equal(t, path, ds.Source)

	first := ds.Records[0]
	assert.Equal(t, "Acme", first.Company)
	assert.Equal(t, 2020, first.Year)
	assert.Equal(t, 3, first.Month)
	assert.Equal(t, 100, first.TotalLaidOff)
	require.NotNil(t, first.FundsRaisedClean)
	assert.InDelta(t, 1e7, *first.FundsRaisedClean, 1e-6)

	second := ds.Records[1]
	assert.Equal(t, "Germany", second.Country)
	require.NotNil(t, second.FundsRaisedClean)
	assert.InDelta(t, 2.5e9, *second.FundsRaisedClean, 1e-3)
}

func TestLoadDatasetMissingFileIsFatal(t *testing.T) {
	_, err := LoadDataset(filepath.Join(t.TempDir(), "absent.csv"), nil)
	require.Error(t, err)
}

func TestLoadDatasetXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layoffs.xlsx")

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1",
		&[]interface{}{"company", "industry", "country", "year", "month", "total_laid_off", "funds_raised"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2",
		&[]interface{}{"Acme", "Tech", "US", 2020, "January", 75, "5K"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	ds, err := LoadDataset(path, nil)
	require.NoError(t, err)

	require.Len(t, ds.Records, 1)
	r := ds.Records[0]
	assert.Equal(t, "Acme", r.Company)
	assert.Equal(t, 2020, r.Year)
	assert.Equal(t, 1, r.Month)
	assert.Equal(t, 75, r.TotalLaidOff)
	require.NotNil(t, r.FundsRaisedClean)
	assert.InDelta(t, 5000.0, *r.FundsRaisedClean, 1e-9)
}

func TestLoadSummaryInsights(t *testing.T) {
	t.Run("present value", func(t *testing.T) {
		path := writeTempCSV(t, "summary.csv",
			"Total_Layoffs,Funding_Correlation\n12345,0.427\n")

		insights, err := LoadSummaryInsights(path, nil)
		require.NoError(t, err)
		require.NotNil(t, insights.FundingCorrelation)
		assert.InDelta(t, 0.427, *insights.FundingCorrelation, 1e-9)
	})

	t.Run("unparseable value is absent, not an error", func(t *testing.T) {
		path := writeTempCSV(t, "summary.csv",
			"Funding_Correlation\nNaN-ish\n")

		insights, err := LoadSummaryInsights(path, nil)
		require.NoError(t, err)
		assert.Nil(t, insights.FundingCorrelation)
	})

	t.Run("missing column is absent", func(t *testing.T) {
		path := writeTempCSV(t, "summary.csv", "Total_Layoffs\n10\n")

		insights, err := LoadSummaryInsights(path, nil)
		require.NoError(t, err)
		assert.Nil(t, insights.FundingCorrelation)
	})
}

func TestLoadBothFiles(t *testing.T) {
	datasetPath := writeTempCSV(t, "layoffs.csv",
		"company,year,total_laid_off\nAcme,2020,10\n")
	summaryPath := writeTempCSV(t, "summary.csv",
		"Funding_Correlation\n0.5\n")

	ds, insights, err := Load(context.Background(), datasetPath, summaryPath, nil)
	require.NoError(t, err)
	assert.Len(t, ds.Records, 1)
	require.NotNil(t, insights.FundingCorrelation)

	t.Run("either file missing aborts the load", func(t *testing.T) {
		_, _, err := Load(context.Background(), datasetPath, filepath.Join(t.TempDir(), "absent.csv"), nil)
		require.Error(t, err)
	})
}

func TestDatasetDistinctValues(t *testing.T) {
	ds := &Dataset{Records: []Record{
		{Year: 2022, Industry: "Tech", Country: "US"},
		{Year: 2020, Industry: "Media", Country: "India"},
		{Year: 2022, Industry: "Tech", Country: "US"},
		{Year: 2021, Industry: "Retail", Country: "Germany"},
	}}

	assert.Equal(t, []int{2020, 2021, 2022}, ds.Years())
	assert.Equal(t, []string{"Media", "Retail", "Tech"}, ds.Industries())
	assert.Equal(t, []string{"Germany", "India", "US"}, ds.Countries())
}
