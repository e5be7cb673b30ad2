// Package report renders a netgraph.Graph into the canonical JSON document
// (spec.md §4.E) and decodes that document's free-form tree back for the
// annotation pass (the JSON half of spec.md §4.G). Two layouts are
// supported: "plain" (columnar Nodes.id/Nodes.cluster arrays) and "object"
// (one object per node); both round-trip through Decode.
package report

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/alexanderritik/transnet/internal/netcfg"
	"github.com/alexanderritik/transnet/internal/netgraph"
)

// wrapperKey is the top-level key wrapping the document body, per spec.md §4.E.
const wrapperKey = "trace_results"

type networkSummary struct {
	Nodes    int `json:"Nodes"`
	Edges    int `json:"Edges"`
	Clusters int `json:"Clusters"`
}

type edgeDoc struct {
	Source   int     `json:"source"`
	Target   int     `json:"target"`
	Distance float64 `json:"distance"`
}

type settingsDoc struct {
	Threshold float64 `json:"threshold"`
}

// plainNodesDoc is the columnar Nodes shape. A singleton's Cluster entry is
// a JSON null so the array stays index-aligned with ID (Open Question (a)
// in spec.md §9, decided in DESIGN.md: plain layout emits null, object
// layout omits the field).
type plainNodesDoc struct {
	ID      []string `json:"id"`
	Cluster []*int   `json:"cluster"`
}

type objectNodeDoc struct {
	ID      string `json:"id"`
	Cluster *int   `json:"cluster,omitempty"`
}

type plainBody struct {
	Summary      networkSummary `json:"Network Summary"`
	ClusterSizes []int          `json:"Cluster sizes"`
	Nodes        plainNodesDoc  `json:"Nodes"`
	Edges        []edgeDoc      `json:"Edges"`
	Settings     settingsDoc    `json:"Settings"`
}

type objectBody struct {
	Summary      networkSummary  `json:"Network Summary"`
	ClusterSizes []int           `json:"Cluster sizes"`
	Nodes        []objectNodeDoc `json:"Nodes"`
	Edges        []edgeDoc       `json:"Edges"`
	Settings     settingsDoc     `json:"Settings"`
}

// Render produces the canonical JSON document for g and clusterSizes in the
// requested format, wrapped under "trace_results".
func Render(g *netgraph.Graph, clusterSizes []int, format netcfg.Format) ([]byte, error) {
	switch format {
	case netcfg.FormatObject:
		return RenderObject(g, clusterSizes)
	case netcfg.FormatPlain, "":
		return RenderPlain(g, clusterSizes)
	default:
		return nil, fmt.Errorf("report: unknown format %q", format)
	}
}

// RenderPlain renders the columnar layout.
func RenderPlain(g *netgraph.Graph, clusterSizes []int) ([]byte, error) {
	nodes := g.IterNodes()
	ids := make([]string, len(nodes))
	clusters := make([]*int, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID
		if n.HasCluster() {
			c := n.Cluster
			clusters[i] = &c
		}
	}
	edges := renderEdges(g)

	doc := map[string]plainBody{
		wrapperKey: {
			Summary:      networkSummary{Nodes: len(nodes), Edges: len(edges), Clusters: len(clusterSizes)},
			ClusterSizes: nonNilInts(clusterSizes),
			Nodes:        plainNodesDoc{ID: ids, Cluster: clusters},
			Edges:        edges,
			Settings:     settingsDoc{Threshold: g.Threshold()},
		},
	}
	return json.MarshalIndent(doc, "", "  ")
}

// RenderObject renders the per-node-object layout used by the annotation
// round-trip.
func RenderObject(g *netgraph.Graph, clusterSizes []int) ([]byte, error) {
	nodes := g.IterNodes()
	objNodes := make([]objectNodeDoc, len(nodes))
	for i, n := range nodes {
		nd := objectNodeDoc{ID: n.ID}
		if n.HasCluster() {
			c := n.Cluster
			nd.Cluster = &c
		}
		objNodes[i] = nd
	}
	edges := renderEdges(g)

	doc := map[string]objectBody{
		wrapperKey: {
			Summary:      networkSummary{Nodes: len(nodes), Edges: len(edges), Clusters: len(clusterSizes)},
			ClusterSizes: nonNilInts(clusterSizes),
			Nodes:        objNodes,
			Edges:        edges,
			Settings:     settingsDoc{Threshold: g.Threshold()},
		},
	}
	return json.MarshalIndent(doc, "", "  ")
}

func renderEdges(g *netgraph.Graph) []edgeDoc {
	es := g.IterEdges()
	out := make([]edgeDoc, len(es))
	for i, e := range es {
		out[i] = edgeDoc{Source: e.Source, Target: e.Target, Distance: e.Distance}
	}
	return out
}

func nonNilInts(s []int) []int {
	if s == nil {
		return []int{}
	}
	return s
}

// Decode parses data as a JSON document, honoring the optional
// "trace_results" wrapper (spec.md §4.F step 1), and returns the unwrapped
// body as a free-form tree plus whether the wrapper was present, so callers
// can re-wrap identically with Encode.
func Decode(data []byte) (body map[string]interface{}, wrapped bool, err error) {
	var tree map[string]interface{}
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, false, fmt.Errorf("report: decode: %w", err)
	}
	if inner, ok := tree[wrapperKey]; ok {
		m, ok := inner.(map[string]interface{})
		if !ok {
			return nil, false, fmt.Errorf("report: %q is not an object", wrapperKey)
		}
		return m, true, nil
	}
	return tree, false, nil
}

// Encode re-wraps body under "trace_results" if wrapped is true and
// marshals the result.
func Encode(body map[string]interface{}, wrapped bool) ([]byte, error) {
	var out interface{} = body
	if wrapped {
		out = map[string]interface{}{wrapperKey: body}
	}
	return json.MarshalIndent(out, "", "  ")
}
