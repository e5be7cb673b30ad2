// Package components assigns connected-component labels to a netgraph.Graph
// via breadth-first search, in ascending node-index order, with no
// recursion so arbitrarily large components never grow the call stack.
package components

import "github.com/alexanderritik/transnet/internal/netgraph"

// Label walks g in ascending index order, running one BFS per unvisited
// node of degree >= 1. Each BFS assigns the nodes it reaches a shared,
// monotonically increasing cluster label starting at 1. Nodes of degree 0
// are left unlabelled (Cluster stays 0) and are not counted as clusters.
// Label returns the cluster sizes in ascending label order, i.e. sizes[i-1]
// is the size of cluster i.
//
// g.BuildAdjacency must have been called first.
func Label(g *netgraph.Graph) []int {
	n := g.NodeCount()
	visited := make([]bool, n)
	var sizes []int
	nextLabel := 1

	for start := 0; start < n; start++ {
		if visited[start] || g.Degree(start) == 0 {
			continue
		}

		queue := []int{start}
		visited[start] = true
		size := 0

		for head := 0; head < len(queue); head++ {
			current := queue[head]
			g.SetCluster(current, nextLabel)
			size++

			for _, neighbor := range g.Neighbors(current) {
				if !visited[neighbor] {
					visited[neighbor] = true
					queue = append(queue, neighbor)
				}
			}
		}

		sizes = append(sizes, size)
		nextLabel++
	}

	return sizes
}
