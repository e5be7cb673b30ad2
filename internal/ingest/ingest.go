// Package ingest implements the edge ingester (spec.md §4.B): it turns a
// lazy row stream into a netgraph.Graph, applying threshold admission,
// self-loop rejection, endpoint interning, orientation normalization, and
// dedup-by-minimum-distance, in that order, per row.
package ingest

import (
	"fmt"
	"math"
	"strconv"

	"github.com/alexanderritik/transnet/internal/ids"
	"github.com/alexanderritik/transnet/internal/netgraph"
	"github.com/rs/zerolog"
)

// Stats reports per-category row counts gathered during ingestion, for
// operator diagnostics (§5 of SPEC_FULL.md); they carry no normative
// meaning and are never part of the JSON contract.
type Stats struct {
	RowsSeen         int
	RowsAdmitted     int
	RowsOverThresh   int
	RowsSelfLoop     int
	RowsDeduplicated int
}

// Ingest consumes source row by row and builds a Graph admitting only pairs
// with distance <= threshold. It returns the first structural error
// encountered (ParseError, ShortRowError, NegativeDistanceError, or an
// *ids.InvalidIDError), aborting the whole batch — no partial graph is ever
// returned alongside an error. logger receives per-run diagnostics only;
// pass netlog.Discard() for silent operation.
func Ingest(threshold float64, source RowSource, logger zerolog.Logger) (*netgraph.Graph, Stats, error) {
	g := netgraph.New(threshold)
	interner := ids.New()
	var stats Stats

	for {
		row, rowNum, ok, err := source.Next()
		if err != nil {
			return nil, stats, err
		}
		if !ok {
			break
		}
		stats.RowsSeen++

		distance, err := strconv.ParseFloat(row.DistanceText, 64)
		if err != nil || math.IsNaN(distance) || math.IsInf(distance, 0) {
			return nil, stats, &ParseError{
				Row: rowNum, Column: 3,
				Detail: fmt.Sprintf("distance %q is not a finite real number", row.DistanceText),
			}
		}
		if distance < 0 {
			return nil, stats, &NegativeDistanceError{Row: rowNum, Distance: distance}
		}
		if distance > threshold {
			stats.RowsOverThresh++
			continue
		}
		if row.IDA == row.IDB {
			stats.RowsSelfLoop++
			continue
		}

		ia, err := interner.Intern(row.IDA)
		if err != nil {
			return nil, stats, err
		}
		ib, err := interner.Intern(row.IDB)
		if err != nil {
			return nil, stats, err
		}
		syncNodes(g, interner)

		if ia > ib {
			ia, ib = ib, ia
		}
		if g.HasEdge(ia, ib) {
			stats.RowsDeduplicated++
		}
		g.UpsertEdge(ia, ib, distance)
		stats.RowsAdmitted++
	}

	g.BuildAdjacency()

	logger.Debug().
		Int("rows_seen", stats.RowsSeen).
		Int("rows_admitted", stats.RowsAdmitted).
		Int("rows_over_threshold", stats.RowsOverThresh).
		Int("rows_self_loop", stats.RowsSelfLoop).
		Int("rows_deduplicated", stats.RowsDeduplicated).
		Int("nodes", g.NodeCount()).
		Int("edges", g.EdgeCount()).
		Msg("ingestion complete")

	return g, stats, nil
}

func syncNodes(g *netgraph.Graph, interner *ids.Interner) {
	for g.NodeCount() < interner.Len() {
		i := g.NodeCount()
		g.AddNode(i, interner.IDAt(i))
	}
}
