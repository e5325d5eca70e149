// Package analysis implements the filtering and aggregation engine over the
// normalized layoffs dataset. Every operation is a total function: empty input
// produces well-shaped empty tables and defined sentinel scalars instead of
// errors.
package analysis
