package graph

import (
	"sort"

	"gonum.org/v1/gonum/graph/network"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Summary provides aggregate statistics over the dependency graph.
type Summary struct {
	TotalNodes       int          `json:"total_nodes" toon:"total_nodes"`
	TotalEdges       int          `json:"total_edges" toon:"total_edges"`
	AvgDegree        float64      `json:"avg_degree" toon:"avg_degree"`
	Density          float64      `json:"density" toon:"density"`
	Components       int          `json:"components" toon:"components"`
	LargestComponent int          `json:"largest_component" toon:"largest_component"`
	TopRanked        []RankedNode `json:"top_ranked,omitempty" toon:"top_ranked,omitempty"`
}

// RankedNode pairs a node with its PageRank score.
type RankedNode struct {
	Node     string  `json:"node" toon:"node"`
	PageRank float64 `json:"pagerank" toon:"pagerank"`
}

// topRankedLimit bounds how many nodes the summary reports by PageRank.
const topRankedLimit = 10

// gonumView holds the gonum representation and the ID mappings both ways.
type gonumView struct {
	directed   *simple.DirectedGraph
	undirected *simple.UndirectedGraph
	toID       map[string]int64
	fromID     map[int64]string
}

// toGonum converts the graph to gonum types. Self loops are skipped since
// simple graphs reject them.
func toGonum(g *Graph) *gonumView {
	v := &gonumView{
		directed:   simple.NewDirectedGraph(),
		undirected: simple.NewUndirectedGraph(),
		toID:       make(map[string]int64),
		fromID:     make(map[int64]string),
	}

	for i, node := range g.Nodes() {
		id := int64(i)
		v.toID[node] = id
		v.fromID[id] = node
		v.directed.AddNode(simple.Node(id))
		v.undirected.AddNode(simple.Node(id))
	}

	for _, source := range g.Nodes() {
		for _, target := range g.Successors(source) {
			from, to := v.toID[source], v.toID[target]
			if from == to {
				continue
			}
			v.directed.SetEdge(simple.Edge{F: simple.Node(from), T: simple.Node(to)})
			if !v.undirected.HasEdgeBetween(from, to) {
				v.undirected.SetEdge(simple.Edge{F: simple.Node(from), T: simple.Node(to)})
			}
		}
	}

	return v
}

// Summarize computes aggregate graph statistics with gonum.
func Summarize(g *Graph) Summary {
	s := Summary{
		TotalNodes: g.NodeCount(),
		TotalEdges: g.EdgeCount(),
	}
	if s.TotalNodes == 0 {
		return s
	}

	v := toGonum(g)

	degree := 0
	for _, node := range g.Nodes() {
		degree += len(g.succ[node]) + len(g.pred[node])
	}
	s.AvgDegree = float64(degree) / float64(s.TotalNodes)

	if s.TotalNodes > 1 {
		maxEdges := s.TotalNodes * (s.TotalNodes - 1)
		s.Density = float64(s.TotalEdges) / float64(maxEdges)
	}

	components := topo.ConnectedComponents(v.undirected)
	s.Components = len(components)
	for _, comp := range components {
		if len(comp) > s.LargestComponent {
			s.LargestComponent = len(comp)
		}
	}

	ranks := network.PageRank(v.directed, 0.85, 1e-6)
	ranked := make([]RankedNode, 0, len(ranks))
	for id, rank := range ranks {
		ranked = append(ranked, RankedNode{Node: v.fromID[id], PageRank: rank})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].PageRank != ranked[j].PageRank {
			return ranked[i].PageRank > ranked[j].PageRank
		}
		return ranked[i].Node < ranked[j].Node
	})
	if len(ranked) > topRankedLimit {
		ranked = ranked[:topRankedLimit]
	}
	s.TopRanked = ranked

	return s
}
