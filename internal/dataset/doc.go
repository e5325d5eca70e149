// Package dataset defines the normalized layoffs record model and the loaders
// that produce it from raw tabular sources (CSV and Excel exports).
//
// The pipeline is one-way: raw rows are sanitized and normalized exactly once
// at load time, and the resulting record set is treated as read-only for the
// rest of the session. Filtering and aggregation live in internal/analysis and
// never mutate records.
package dataset
