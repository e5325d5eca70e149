package dataset

import (
	"sort"
	"time"
)

// Unknown is the sentinel substituted for missing text fields.
const Unknown = "Unknown"

// Record is a single layoff event after sanitization.
//
// Year is always present and integral; rows whose year could not be parsed
// never become Records. Month is 0 when the source value was absent or
// unmapped. FundsRaisedClean is nil when the raw funding value was absent or
// uninterpretable; it is never negative when present.
type Record struct {
	Company          string   `json:"company"`
	Location         string   `json:"location"`
	Industry         string   `json:"industry"`
	Country          string   `json:"country"`
	Year             int      `json:"year"`
	Month            int      `json:"month"`
	TotalLaidOff     int      `json:"total_laid_off"`
	FundsRaised      string   `json:"funds_raised,omitempty"`
	FundsRaisedClean *float64 `json:"funds_raised_clean,omitempty"`
}

// Dataset is the immutable record set loaded once per session.
type Dataset struct {
	Records  []Record
	Source   string
	LoadedAt time.Time
}

// Years returns the distinct years present in the dataset, ascending.
func (d *Dataset) Years() []int {
	seen := make(map[int]struct{})
	var years []int
	for _, r := range d.Records {
		if _, ok := seen[r.Year]; !ok {
			seen[r.Year] = struct{}{}
			years = append(years, r.Year)
		}
	}
	sort.Ints(years)
	return years
}

// Industries returns the distinct industries, sorted lexicographically.
func (d *Dataset) Industries() []string {
	return d.distinct(func(r Record) string { return r.Industry })
}

// Countries returns the distinct countries, sorted lexicographically.
func (d *Dataset) Countries() []string {
	return d.distinct(func(r Record) string { return r.Country })
}

func (d *Dataset) distinct(key func(Record) string) []string {
	seen := make(map[string]struct{})
	var values []string
	for _, r := range d.Records {
		v := key(r)
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			values = append(values, v)
		}
	}
	sort.Strings(values)
	return values
}

// SummaryInsights carries the precomputed values consumed from the companion
// summary table. FundingCorrelation is nil when the source value was missing
// or not numeric.
type SummaryInsights struct {
	FundingCorrelation *float64
	Source             string
}
