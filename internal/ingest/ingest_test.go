package ingest

import (
	"strings"
	"testing"

	"github.com/alexanderritik/transnet/internal/netgraph"
	"github.com/alexanderritik/transnet/internal/netlog"
)

func ingestCSV(t *testing.T, threshold float64, csvText string) (*netgraph.Graph, Stats, error) {
	t.Helper()
	return Ingest(threshold, NewCSVSource(strings.NewReader(csvText)), netlog.Discard())
}

func TestIngestSimpleTwoClusters(t *testing.T) {
	csvText := "A,B,0.01\nA,C,0.02\nB,D,0.015\nC,D,0.01\nE,F,0.025\nG,H,0.01\n"
	g, _, err := ingestCSV(t, 0.03, csvText)
	if err != nil {
		t.Fatalf("Ingest error = %v", err)
	}
	if g.NodeCount() != 8 {
		t.Errorf("NodeCount() = %d, want 8", g.NodeCount())
	}
	if g.EdgeCount() != 6 {
		t.Errorf("EdgeCount() = %d, want 6", g.EdgeCount())
	}
}

func TestIngestThresholdExcludesEdge(t *testing.T) {
	csvText := "A,B,0.01\nA,C,0.02\nB,D,0.015\nC,D,0.01\nE,F,0.025\nG,H,0.01\n"
	g, _, err := ingestCSV(t, 0.02, csvText)
	if err != nil {
		t.Fatalf("Ingest error = %v", err)
	}
	if g.NodeCount() != 6 {
		t.Errorf("NodeCount() = %d, want 6 (E,F never interned)", g.NodeCount())
	}
	if g.EdgeCount() != 5 {
		t.Errorf("EdgeCount() = %d, want 5", g.EdgeCount())
	}
}

func TestIngestSelfLoopDropped(t *testing.T) {
	g, _, err := ingestCSV(t, 0.01, "A,A,0.005\n")
	if err != nil {
		t.Fatalf("Ingest error = %v", err)
	}
	if g.NodeCount() != 0 || g.EdgeCount() != 0 {
		t.Errorf("self-loop row contributed nodes=%d edges=%d, want 0/0", g.NodeCount(), g.EdgeCount())
	}
}

func TestIngestDuplicateEdgeDedupByMin(t *testing.T) {
	g, _, err := ingestCSV(t, 0.03, "A,B,0.02\nB,A,0.01\n")
	if err != nil {
		t.Fatalf("Ingest error = %v", err)
	}
	if g.EdgeCount() != 1 {
		t.Fatalf("EdgeCount() = %d, want 1", g.EdgeCount())
	}
	if got := g.IterEdges()[0].Distance; got != 0.01 {
		t.Errorf("Distance = %v, want 0.01", got)
	}
}

func TestIngestMalformedRow(t *testing.T) {
	_, _, err := ingestCSV(t, 0.01, "A,B,notanumber\n")
	if err == nil {
		t.Fatal("expected ParseError, got nil")
	}
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("error type = %T, want *ParseError", err)
	}
	if pe.Row != 1 || pe.Column != 3 {
		t.Errorf("ParseError = %+v, want row=1 column=3", pe)
	}
}

func TestIngestNegativeDistance(t *testing.T) {
	_, _, err := ingestCSV(t, 0.01, "A,B,-0.01\n")
	if err == nil {
		t.Fatal("expected NegativeDistanceError, got nil")
	}
	if _, ok := err.(*NegativeDistanceError); !ok {
		t.Errorf("error type = %T, want *NegativeDistanceError", err)
	}
}

func TestIngestShortRow(t *testing.T) {
	_, _, err := ingestCSV(t, 0.01, "A,B\n")
	if err == nil {
		t.Fatal("expected ShortRowError, got nil")
	}
	if _, ok := err.(*ShortRowError); !ok {
		t.Errorf("error type = %T, want *ShortRowError", err)
	}
}

func TestIngestBlankLinesSkipped(t *testing.T) {
	g, _, err := ingestCSV(t, 0.03, "\nA,B,0.01\n\nC,D,0.01\n")
	if err != nil {
		t.Fatalf("Ingest error = %v", err)
	}
	if g.NodeCount() != 4 || g.EdgeCount() != 2 {
		t.Errorf("nodes=%d edges=%d, want 4/2", g.NodeCount(), g.EdgeCount())
	}
}

func TestIngestEmptyInput(t *testing.T) {
	g, _, err := ingestCSV(t, 0.03, "")
	if err != nil {
		t.Fatalf("Ingest error = %v", err)
	}
	if g.NodeCount() != 0 || g.EdgeCount() != 0 {
		t.Errorf("nodes=%d edges=%d, want 0/0 for empty input", g.NodeCount(), g.EdgeCount())
	}
}
