// Package transnet is the library/binding surface from spec.md §6: two pure
// functions over strings, safe to call from a CLI, an HTTP handler, or a
// WASM host without any of them reaching into transnet's internals. No
// global state is read or written by either call.
package transnet

import (
	"strings"

	json "github.com/goccy/go-json"

	"github.com/alexanderritik/transnet/internal/annotate"
	"github.com/alexanderritik/transnet/internal/components"
	"github.com/alexanderritik/transnet/internal/ingest"
	"github.com/alexanderritik/transnet/internal/netcfg"
	"github.com/alexanderritik/transnet/internal/netlog"
	"github.com/alexanderritik/transnet/internal/report"
)

// BuildNetwork parses csvText as the three-column CSV format from spec.md
// §4.G, ingests it under threshold, labels connected components, and
// renders the canonical JSON document in the requested format ("plain" or
// "object"; empty defaults to "plain").
func BuildNetwork(csvText string, threshold float64, format string) (string, error) {
	cfg, err := netcfg.NewConfig(threshold, netcfg.Format(format))
	if err != nil {
		return "", err
	}

	source := ingest.NewCSVSource(strings.NewReader(csvText))
	g, _, err := ingest.Ingest(cfg.Threshold, source, netlog.Discard())
	if err != nil {
		return "", err
	}

	sizes := components.Label(g)

	data, err := report.Render(g, sizes, cfg.Format)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// AnnotateNetworkJSON attaches attributesJSON (a JSON array of attribute
// records) and schemaJSON (a JSON object describing those attributes) to
// networkJSON, which may or may not carry the trace_results wrapper, and
// returns the enriched document.
func AnnotateNetworkJSON(networkJSON, attributesJSON, schemaJSON string) (string, error) {
	var attributes []map[string]interface{}
	if err := json.Unmarshal([]byte(attributesJSON), &attributes); err != nil {
		return "", err
	}

	var schema map[string]interface{}
	if err := json.Unmarshal([]byte(schemaJSON), &schema); err != nil {
		return "", err
	}

	out, err := annotate.Annotate([]byte(networkJSON), attributes, schema, annotate.Options{})
	if err != nil {
		return "", err
	}
	return string(out), nil
}
