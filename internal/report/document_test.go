package report

import (
	"encoding/json"
	"testing"

	"github.com/alexanderritik/transnet/internal/components"
	"github.com/alexanderritik/transnet/internal/netcfg"
	"github.com/alexanderritik/transnet/internal/netgraph"
)

func sampleGraph(t *testing.T) (*netgraph.Graph, []int) {
	t.Helper()
	g := netgraph.New(0.03)
	for i, id := range []string{"A", "B", "C", "D", "E", "F", "G", "H"} {
		g.AddNode(i, id)
	}
	for _, e := range [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}, {4, 5}} {
		g.UpsertEdge(e[0], e[1], 0.01)
	}
	g.BuildAdjacency()
	sizes := components.Label(g)
	return g, sizes
}

func TestRenderPlainSingletonIsNull(t *testing.T) {
	g, sizes := sampleGraph(t)
	data, err := RenderPlain(g, sizes)
	if err != nil {
		t.Fatalf("RenderPlain error = %v", err)
	}

	var tree map[string]map[string]interface{}
	if err := json.Unmarshal(data, &tree); err != nil {
		t.Fatalf("Unmarshal output error = %v", err)
	}
	nodes := tree["trace_results"]["Nodes"].(map[string]interface{})
	clusters := nodes["cluster"].([]interface{})
	if clusters[6] != nil {
		t.Errorf("singleton G cluster entry = %v, want null", clusters[6])
	}
	if clusters[0] == nil {
		t.Errorf("clustered node A cluster entry is null, want a label")
	}
}

func TestRenderObjectSingletonOmitsField(t *testing.T) {
	g, sizes := sampleGraph(t)
	data, err := RenderObject(g, sizes)
	if err != nil {
		t.Fatalf("RenderObject error = %v", err)
	}

	var tree map[string]map[string]interface{}
	if err := json.Unmarshal(data, &tree); err != nil {
		t.Fatalf("Unmarshal output error = %v", err)
	}
	nodes := tree["trace_results"]["Nodes"].([]interface{})
	singleton := nodes[6].(map[string]interface{})
	if _, hasCluster := singleton["cluster"]; hasCluster {
		t.Errorf("singleton object node has cluster field: %v", singleton)
	}
}

func TestRenderClustersCountAndSizes(t *testing.T) {
	g, sizes := sampleGraph(t)
	data, err := Render(g, sizes, netcfg.FormatPlain)
	if err != nil {
		t.Fatalf("Render error = %v", err)
	}

	var tree map[string]map[string]interface{}
	if err := json.Unmarshal(data, &tree); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	summary := tree["trace_results"]["Network Summary"].(map[string]interface{})
	if summary["Clusters"].(float64) != 2 {
		t.Errorf("Clusters = %v, want 2", summary["Clusters"])
	}
	clusterSizes := tree["trace_results"]["Cluster sizes"].([]interface{})
	if len(clusterSizes) != 2 || clusterSizes[0].(float64) != 4 || clusterSizes[1].(float64) != 2 {
		t.Errorf("Cluster sizes = %v, want [4 2]", clusterSizes)
	}
}

func TestDecodeUnwrapsWrapper(t *testing.T) {
	g, sizes := sampleGraph(t)
	data, err := RenderPlain(g, sizes)
	if err != nil {
		t.Fatalf("RenderPlain error = %v", err)
	}

	body, wrapped, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode error = %v", err)
	}
	if !wrapped {
		t.Error("wrapped = false, want true")
	}
	if _, ok := body["Network Summary"]; !ok {
		t.Error("decoded body missing Network Summary key")
	}
}

func TestDecodeAcceptsUnwrappedBody(t *testing.T) {
	body, wrapped, err := Decode([]byte(`{"Nodes": {"id": ["A"], "cluster": [null]}}`))
	if err != nil {
		t.Fatalf("Decode error = %v", err)
	}
	if wrapped {
		t.Error("wrapped = true, want false")
	}
	if _, ok := body["Nodes"]; !ok {
		t.Error("decoded body missing Nodes key")
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	g, sizes := sampleGraph(t)
	data, err := RenderPlain(g, sizes)
	if err != nil {
		t.Fatalf("RenderPlain error = %v", err)
	}
	body, wrapped, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode error = %v", err)
	}
	reencoded, err := Encode(body, wrapped)
	if err != nil {
		t.Fatalf("Encode error = %v", err)
	}
	body2, wrapped2, err := Decode(reencoded)
	if err != nil {
		t.Fatalf("Decode(reencoded) error = %v", err)
	}
	if wrapped2 != wrapped {
		t.Errorf("wrapped2 = %v, want %v", wrapped2, wrapped)
	}
	if len(body2) != len(body) {
		t.Errorf("re-encoded body has %d keys, want %d", len(body2), len(body))
	}
}
