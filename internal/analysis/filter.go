package analysis

import (
	"github.com/saibhavana-turai/layoffsanalysis/internal/dataset"
)

// All is the selector value that disables an exact-match filter.
const All = "All"

// Filter describes one dashboard selection. Year bounds are inclusive;
// Industry and Country are exact-match filters disabled by the All sentinel.
type Filter struct {
	FromYear int    `json:"from_year"`
	ToYear   int    `json:"to_year"`
	Industry string `json:"industry"`
	Country  string `json:"country"`
}

// Normalized returns the filter with reversed year bounds swapped and empty
// group selectors widened to All, so a reversed UI selection behaves exactly
// like its ordered counterpart.
func (f Filter) Normalized() Filter {
	if f.FromYear > f.ToYear {
		f.FromYear, f.ToYear = f.ToYear, f.FromYear
	}
	if f.Industry == "" {
		f.Industry = All
	}
	if f.Country == "" {
		f.Country = All
	}
	return f
}

// Apply retains the records matching the filter. The result is a new slice;
// the input is never modified. An empty result is a valid state, not an error.
func Apply(records []dataset.Record, f Filter) []dataset.Record {
	f = f.Normalized()

	out := make([]dataset.Record, 0, len(records))
	for _, r := range records {
		if r.Year < f.FromYear || r.Year > f.ToYear {
			continue
		}
		if f.Industry != All && r.Industry != f.Industry {
			continue
		}
		if f.Country != All && r.Country != f.Country {
			continue
		}
		out = append(out, r)
	}
	return out
}
