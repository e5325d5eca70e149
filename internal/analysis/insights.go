package analysis

import (
	"fmt"
	"strings"
)

// FundingInsight renders the narrative line for the precomputed correlation
// value consumed from the summary table. A nil value means the upstream
// analysis could not measure the relationship.
func FundingInsight(corr *float64) string {
	switch {
	case corr == nil:
		return "Insufficient data to measure correlation between funding and layoffs."
	case *corr > 0:
		return fmt.Sprintf("Positive correlation (%.3f): Higher-funded companies tended to record larger layoffs, likely due to restructuring.", *corr)
	case *corr < 0:
		return fmt.Sprintf("Negative correlation (%.3f): Companies with strong funding generally experienced fewer layoffs.", *corr)
	default:
		return "No clear pattern detected between funding and layoffs."
	}
}

// DynamicTitle builds a compact heading reflecting the active filters, in the
// order industry, year range, country. "All" selectors are elided.
func DynamicTitle(base string, f Filter) string {
	f = f.Normalized()

	parts := []string{fmt.Sprintf("%d–%d", f.FromYear, f.ToYear)}
	if f.Industry != All {
		parts = append([]string{f.Industry}, parts...)
	}
	if f.Country != All {
		parts = append(parts, f.Country)
	}

	return fmt.Sprintf("%s (%s)", base, strings.Join(parts, " • "))
}
