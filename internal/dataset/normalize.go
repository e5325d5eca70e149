package dataset

import (
	"regexp"
	"strconv"
	"strings"
)

// suffixMultipliers is the closed mapping of magnitude suffixes accepted in
// funding amounts. Anything outside this table fails the match.
var suffixMultipliers = map[string]float64{
	"":  1,
	"K": 1e3,
	"M": 1e6,
	"B": 1e9,
}

// fundsPattern matches a leading decimal number with an optional single-letter
// magnitude suffix, e.g. "1200", "12.3M", "5 K".
var fundsPattern = regexp.MustCompile(`^([0-9]+(?:\.[0-9]+)?)\s*([KMBkmb]?)`)

// monthOrdinals maps canonical full English month names to their 1-based
// ordinal. The match is exact and case-sensitive.
var monthOrdinals = map[string]int{
	"January":   1,
	"February":  2,
	"March":     3,
	"April":     4,
	"May":       5,
	"June":      6,
	"July":      7,
	"August":    8,
	"September": 9,
	"October":   10,
	"November":  11,
	"December":  12,
}

// NormalizeFunds converts heterogeneous funding values such as "$1,200",
// "5K" or "12.3M" into an amount in base currency units. The boolean is
// false when the value cannot be interpreted; that is a missing-value marker,
// not an error.
func NormalizeFunds(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "$", "")
	m := fundsPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	num, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return num * suffixMultipliers[strings.ToUpper(m[2])], true
}

// NormalizeMonth maps a raw month cell to an integer month. Absent values map
// to 0. Digit-only text parses unvalidated, so an out-of-range "13" stays 13;
// range policing belongs to the caller. Fractional numerics truncate. Full
// English month names resolve through the canonical table; any other text is 0.
func NormalizeMonth(raw string, present bool) int {
	if !present {
		return 0
	}
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	if isDigits(s) {
		n, _ := strconv.Atoi(s)
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return monthOrdinals[s]
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
