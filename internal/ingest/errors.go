package ingest

import "fmt"

// ParseError is a syntactic failure decoding one row of a CSV or JSON input
// (spec.md §7).
type ParseError struct {
	Row    int
	Column int
	Detail string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("row %d, column %d: %s", e.Row, e.Column, e.Detail)
}

// ShortRowError is a CSV row with fewer than three columns.
type ShortRowError struct {
	Row int
}

func (e *ShortRowError) Error() string {
	return fmt.Sprintf("row %d: fewer than 3 columns", e.Row)
}

// NegativeDistanceError is returned when a row's distance is negative.
type NegativeDistanceError struct {
	Row      int
	Distance float64
}

func (e *NegativeDistanceError) Error() string {
	return fmt.Sprintf("row %d: negative distance %v", e.Row, e.Distance)
}
