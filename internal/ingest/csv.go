package ingest

import (
	"encoding/csv"
	"io"
	"strings"
)

// Row is one decoded input record: two identifiers and a distance, still in
// text form (the distance is parsed later so that the ingester, not the
// decoder, decides what "row 1, column 3" means).
type Row struct {
	IDA, IDB, DistanceText string
}

// RowSource is a lazy, ordered source of Rows. Next returns ok=false once
// exhausted; a non-nil err aborts ingestion immediately and rowNum
// identifies the offending row for the caller's error.
type RowSource interface {
	Next() (row Row, rowNum int, ok bool, err error)
}

// CSVSource decodes the three-column, headerless CSV format from spec.md
// §4.G: id_a, id_b, distance, whitespace-trimmed, blank lines skipped, rows
// with fewer than three columns rejected with ShortRowError.
type CSVSource struct {
	r   *csv.Reader
	row int
}

// NewCSVSource wraps r as a RowSource.
func NewCSVSource(r io.Reader) *CSVSource {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	return &CSVSource{r: cr}
}

func (s *CSVSource) Next() (Row, int, bool, error) {
	for {
		rec, err := s.r.Read()
		if err == io.EOF {
			return Row{}, 0, false, nil
		}
		if err != nil {
			return Row{}, s.row + 1, false, &ParseError{Row: s.row + 1, Column: 0, Detail: err.Error()}
		}
		if isBlankRecord(rec) {
			continue
		}
		s.row++
		if len(rec) < 3 {
			return Row{}, s.row, false, &ShortRowError{Row: s.row}
		}
		return Row{
			IDA:          strings.TrimSpace(rec[0]),
			IDB:          strings.TrimSpace(rec[1]),
			DistanceText: strings.TrimSpace(rec[2]),
		}, s.row, true, nil
	}
}

func isBlankRecord(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
