// Package netgraph holds the transmission-network graph store: a node
// table, an edge table, and the adjacency index derived from them.
//
// # Ownership Model
//
// Graph owns its node and edge tables outright. Nothing outside the package
// holds a Node or Edge by reference; every cross-reference (adjacency,
// component labels, BFS frontiers) is a plain integer index into the node
// table. There is no shared-ownership or reference-counting scheme to
// untangle.
//
// # Lifecycle
//
// A Graph is built by repeated calls to AddNode/UpsertEdge during ingestion,
// then frozen by a single call to BuildAdjacency once ingestion is done.
// After that it is read-only for the remainder of its life: component
// labelling and report rendering only read from it.
package netgraph

import "sort"

// Node represents one patient/sequence sample.
type Node struct {
	// ID is the opaque, trimmed, non-empty identifier supplied by the input.
	ID string
	// Index is this node's position in the node table, assigned at first
	// insertion and stable thereafter.
	Index int
	// Cluster is the connected-component label assigned by the labeller.
	// Zero means "not yet labelled or a singleton"; HasCluster reports
	// whether a label is set and does not tell those two cases apart.
	Cluster int
}

// HasCluster reports whether the component labeller has assigned this node
// a cluster (degree >= 1). Singletons never get a cluster label.
func (n Node) HasCluster() bool {
	return n.Cluster > 0
}

// Edge is an undirected, normalized edge between two distinct nodes.
type Edge struct {
	// Source and Target satisfy Source < Target.
	Source int
	Target int
	// Distance is the admitted pairwise genetic distance, 0 <= Distance <= threshold.
	Distance float64
}

// Graph is the append-only, then frozen, transmission-network store.
type Graph struct {
	nodes     []Node
	edges     []Edge
	edgeIndex map[[2]int]int // normalized (source,target) -> index into edges
	adjacency [][]int        // lazily built; nil until BuildAdjacency
	threshold float64
}

// New returns an empty Graph retaining threshold for provenance (§3 of the
// spec: Settings.threshold in the rendered report).
func New(threshold float64) *Graph {
	return &Graph{
		edgeIndex: make(map[[2]int]int),
		threshold: threshold,
	}
}

// Threshold returns the admission threshold this graph was built with.
func (g *Graph) Threshold() float64 {
	return g.threshold
}

// AddNode appends a new node for an index not yet seen. The caller (the
// interner) guarantees indices arrive in order 0, 1, 2, ... with no gaps;
// AddNode panics on a mismatched index, which would indicate a programmer
// error in the ingester rather than bad input data.
func (g *Graph) AddNode(index int, id string) {
	if index != len(g.nodes) {
		panic("netgraph: AddNode called out of order")
	}
	g.nodes = append(g.nodes, Node{ID: id, Index: index})
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// Node returns the node at index i.
func (g *Graph) Node(i int) Node {
	return g.nodes[i]
}

// SetCluster assigns a cluster label to the node at index i. Used only by
// the component labeller.
func (g *Graph) SetCluster(i, cluster int) {
	g.nodes[i].Cluster = cluster
}

// IterNodes returns a copy of the node table, in index order.
func (g *Graph) IterNodes() []Node {
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// IterEdges returns a copy of the edge table, in insertion order.
func (g *Graph) IterEdges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// UpsertEdge inserts an edge between source and target (already normalized
// so source < target, already interned, already distance-admitted). If an
// edge between this pair already exists, the one with the smaller distance
// is kept; ties keep the first-seen edge.
func (g *Graph) UpsertEdge(source, target int, distance float64) {
	key := [2]int{source, target}
	if existing, ok := g.edgeIndex[key]; ok {
		if distance < g.edges[existing].Distance {
			g.edges[existing].Distance = distance
		}
		return
	}
	g.edgeIndex[key] = len(g.edges)
	g.edges = append(g.edges, Edge{Source: source, Target: target, Distance: distance})
}

// HasEdge reports whether a normalized (source, target) pair is already
// present, letting the ingester detect a dedup without having to look at
// distances.
func (g *Graph) HasEdge(source, target int) bool {
	_, ok := g.edgeIndex[[2]int{source, target}]
	return ok
}

// BuildAdjacency constructs the neighbor-list index from the edge table: a
// first scan counts each node's degree so that all 2*len(edges) endpoint
// emplacements go into one pre-reserved backing array, a second scan fills
// it, and each neighbor list is then sorted by node index for deterministic
// traversal. Safe to call multiple times; it always rebuilds from the
// current edge table.
func (g *Graph) BuildAdjacency() {
	degree := make([]int, len(g.nodes))
	for _, e := range g.edges {
		degree[e.Source]++
		degree[e.Target]++
	}
	backing := make([]int, 2*len(g.edges))
	adj := make([][]int, len(g.nodes))
	offset := 0
	for i, d := range degree {
		adj[i] = backing[offset : offset : offset+d]
		offset += d
	}
	for _, e := range g.edges {
		adj[e.Source] = append(adj[e.Source], e.Target)
		adj[e.Target] = append(adj[e.Target], e.Source)
	}
	for i := range adj {
		sort.Ints(adj[i])
	}
	g.adjacency = adj
}

// Neighbors returns the sorted neighbor indices of node i. BuildAdjacency
// must have been called first; otherwise Neighbors returns nil for every
// node.
func (g *Graph) Neighbors(i int) []int {
	if g.adjacency == nil {
		return nil
	}
	return g.adjacency[i]
}

// Degree returns len(Neighbors(i)).
func (g *Graph) Degree(i int) int {
	return len(g.Neighbors(i))
}
