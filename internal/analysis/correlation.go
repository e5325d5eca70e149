package analysis

import (
	"math"

	"github.com/saibhavana-turai/layoffsanalysis/internal/dataset"
)

// Correlation strength classes by |r|.
const (
	StrengthWeak     = "Weak"
	StrengthModerate = "Moderate"
	StrengthStrong   = "Strong"
)

// CorrelationReport describes the funding/layoffs relationship over a record
// set. Valid is false when fewer than two qualifying rows exist or the data
// has no variance on either axis; that state is "insufficient data" and is
// deliberately distinct from an actual zero correlation.
type CorrelationReport struct {
	Valid       bool    `json:"valid"`
	Coefficient float64 `json:"coefficient"`
	Strength    string  `json:"strength,omitempty"`
	Narrative   string  `json:"narrative"`
	SampleSize  int     `json:"sample_size"`
}

// Correlate computes the Pearson correlation between cleaned funding amounts
// and total layoffs. Only rows where funding is present and strictly positive
// qualify.
func Correlate(records []dataset.Record) CorrelationReport {
	var xs, ys []float64
	for _, r := range records {
		if r.FundsRaisedClean == nil || *r.FundsRaisedClean <= 0 {
			continue
		}
		xs = append(xs, *r.FundsRaisedClean)
		ys = append(ys, float64(r.TotalLaidOff))
	}

	report := CorrelationReport{SampleSize: len(xs)}

	r, ok := pearson(xs, ys)
	if !ok {
		report.Narrative = "Insufficient numeric data to calculate correlation."
		return report
	}

	report.Valid = true
	report.Coefficient = r
	report.Strength = ClassifyStrength(r)
	report.Narrative = correlationNarrative(r)
	return report
}

// pearson returns the sample correlation coefficient, or ok=false when it is
// undefined (fewer than two points, or zero variance on either axis).
func pearson(xs, ys []float64) (float64, bool) {
	n := float64(len(xs))
	if len(xs) < 2 {
		return 0, false
	}

	var sumX, sumY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX, meanY := sumX/n, sumY/n

	var cov, varX, varY float64
	for i := range xs {
		dx, dy := xs[i]-meanX, ys[i]-meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0, false
	}

	return cov / math.Sqrt(varX*varY), true
}

// ClassifyStrength buckets a correlation coefficient by magnitude.
func ClassifyStrength(r float64) string {
	switch abs := math.Abs(r); {
	case abs < 0.3:
		return StrengthWeak
	case abs < 0.6:
		return StrengthModerate
	default:
		return StrengthStrong
	}
}

func correlationNarrative(r float64) string {
	switch {
	case r > 0:
		return "Companies with higher funding tend to have higher layoffs, possibly due to large-scale restructuring."
	case r < 0:
		return "Companies with higher funding generally avoided massive layoffs, showing better financial stability."
	default:
		return "No clear relationship between funding and layoffs was found."
	}
}
