// Package annotate implements the annotation pass (spec.md §4.F): given an
// already-rendered network document, a table of per-patient attribute
// records, and a schema describing those attributes, it returns a new
// document where each matched node carries its attributes and the body
// carries the schema. It never drops a node or edge, and accepts either
// Nodes layout report.Render can produce.
package annotate

import (
	"fmt"

	"github.com/alexanderritik/transnet/internal/report"
)

// DefaultIDField is the attribute-record key used to look up a patient when
// Options.IDField is empty.
const DefaultIDField = "ehars_uid"

// Options configures a single Annotate call.
type Options struct {
	// IDField is the attribute-record key holding the patient ID.
	// Defaults to DefaultIDField.
	IDField string
}

// Annotate attaches attributes and schema to networkDoc and returns the
// resulting document, preserving whichever trace_results wrapping
// convention networkDoc used.
func Annotate(networkDoc []byte, attributes []map[string]interface{}, schema map[string]interface{}, opts Options) ([]byte, error) {
	idField := opts.IDField
	if idField == "" {
		idField = DefaultIDField
	}

	body, wrapped, err := report.Decode(networkDoc)
	if err != nil {
		return nil, err
	}

	index, err := indexAttributes(attributes, idField)
	if err != nil {
		return nil, err
	}

	nodesRaw, ok := body["Nodes"]
	if !ok {
		return nil, &MalformedNetworkError{Detail: "missing Nodes key"}
	}

	switch nodes := nodesRaw.(type) {
	case map[string]interface{}:
		if err := annotateColumnar(nodes, index); err != nil {
			return nil, err
		}
	case []interface{}:
		if err := annotateObjects(nodes, index); err != nil {
			return nil, err
		}
	default:
		return nil, &MalformedNetworkError{Detail: "Nodes is neither a columnar object nor an array of node objects"}
	}

	body["patient_attribute_schema"] = schema

	return report.Encode(body, wrapped)
}

// indexAttributes builds a patient-ID -> record index. Later records win on
// a duplicate ID (spec.md §9 Open Question (c)).
func indexAttributes(records []map[string]interface{}, idField string) (map[string]map[string]interface{}, error) {
	index := make(map[string]map[string]interface{}, len(records))
	for i, rec := range records {
		raw, ok := rec[idField]
		if !ok {
			return nil, &MissingIDFieldError{IDField: idField, Index: i}
		}
		id, ok := raw.(string)
		if !ok || id == "" {
			return nil, &MissingIDFieldError{IDField: idField, Index: i}
		}
		index[id] = rec
	}
	return index, nil
}

// annotateColumnar handles the {"id": [...], "cluster": [...]} layout. A
// parallel "patient_attributes" array is added, with a null entry for any
// node whose ID has no attribute record, keeping the array index-aligned
// with id/cluster.
func annotateColumnar(nodes map[string]interface{}, index map[string]map[string]interface{}) error {
	idsRaw, ok := nodes["id"].([]interface{})
	if !ok {
		return &MalformedNetworkError{Detail: "Nodes.id is not an array"}
	}
	attrs := make([]interface{}, len(idsRaw))
	for i, idRaw := range idsRaw {
		id, _ := idRaw.(string)
		if rec, ok := index[id]; ok {
			attrs[i] = rec
		}
	}
	nodes["patient_attributes"] = attrs
	return nil
}

// annotateObjects handles the [{"id": ..., "cluster": ...}, ...] layout. A
// matched node gains a "patient_attributes" key; an unmatched node is left
// untouched.
func annotateObjects(nodes []interface{}, index map[string]map[string]interface{}) error {
	for i, raw := range nodes {
		nodeMap, ok := raw.(map[string]interface{})
		if !ok {
			return &MalformedNetworkError{Detail: fmt.Sprintf("node %d is not an object", i)}
		}
		id, _ := nodeMap["id"].(string)
		if rec, ok := index[id]; ok {
			nodeMap["patient_attributes"] = rec
		}
	}
	return nil
}
