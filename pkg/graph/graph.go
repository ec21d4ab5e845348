package graph

import (
	"sort"
	"strings"
)

// Graph is a directed dependency graph keyed by node name. It keeps both
// forward and reverse adjacency so dependents are as cheap to answer as
// dependencies. Build it, run Cycles, throw it away; a Graph is never
// reused across analysis runs.
type Graph struct {
	succ map[string]map[string]struct{}
	pred map[string]map[string]struct{}
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		succ: make(map[string]map[string]struct{}),
		pred: make(map[string]map[string]struct{}),
	}
}

// AddEdge records a dependency from source to target, creating either node
// as needed. Duplicate edges collapse.
func (g *Graph) AddEdge(source, target string) {
	g.ensure(source)
	g.ensure(target)
	g.succ[source][target] = struct{}{}
	g.pred[target][source] = struct{}{}
}

func (g *Graph) ensure(node string) {
	if _, ok := g.succ[node]; !ok {
		g.succ[node] = make(map[string]struct{})
		g.pred[node] = make(map[string]struct{})
	}
}

// HasNode reports whether the node is present.
func (g *Graph) HasNode(node string) bool {
	_, ok := g.succ[node]
	return ok
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.succ)
}

// EdgeCount returns the number of distinct edges.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, targets := range g.succ {
		n += len(targets)
	}
	return n
}

// Nodes returns all nodes in sorted order.
func (g *Graph) Nodes() []string {
	nodes := make([]string, 0, len(g.succ))
	for node := range g.succ {
		nodes = append(nodes, node)
	}
	sort.Strings(nodes)
	return nodes
}

// Successors returns a sorted copy of the nodes that node depends on.
func (g *Graph) Successors(node string) []string {
	return sortedKeys(g.succ[node])
}

// Predecessors returns a sorted copy of the nodes that depend on node.
func (g *Graph) Predecessors(node string) []string {
	return sortedKeys(g.pred[node])
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// frame is one level of the cycle search. next indexes into succs so a
// suspended level resumes exactly where it left off.
type frame struct {
	node  string
	succs []string
	next  int
}

// Cycles enumerates circular dependencies with a depth-first search driven
// by an explicit frame stack, so pathological graphs cannot exhaust the
// goroutine stack. A back edge into the live path closes a cycle; the
// search keeps going past it to find the rest. Each cycle is reported once
// in canonical rotation regardless of which root discovered it, and the
// result is ordered by discovery over sorted roots, so output is stable.
func (g *Graph) Cycles() []Cycle {
	visited := make(map[string]bool, len(g.succ))
	onStack := make(map[string]bool)
	seen := make(map[string]bool)

	var cycles []Cycle
	var path []string
	var stack []frame

	push := func(node string) {
		visited[node] = true
		onStack[node] = true
		path = append(path, node)
		stack = append(stack, frame{node: node, succs: g.Successors(node)})
	}

	for _, root := range g.Nodes() {
		if visited[root] {
			continue
		}
		push(root)

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next >= len(top.succs) {
				onStack[top.node] = false
				path = path[:len(path)-1]
				stack = stack[:len(stack)-1]
				continue
			}

			next := top.succs[top.next]
			top.next++

			switch {
			case onStack[next]:
				walk := closeWalk(path, next)
				key := canonicalKey(walk)
				if !seen[key] {
					seen[key] = true
					cycles = append(cycles, Cycle{
						Nodes:    walk,
						Severity: SeverityFor(walk),
					})
				}
			case !visited[next]:
				push(next)
			}
		}
	}

	return cycles
}

// closeWalk cuts the live path at the back edge target and appends the
// target again, producing the closed walk in canonical rotation.
func closeWalk(path []string, target string) []string {
	start := 0
	for i, node := range path {
		if node == target {
			start = i
			break
		}
	}

	distinct := path[start:]
	walk := make([]string, 0, len(distinct)+1)
	walk = append(walk, rotateMin(distinct)...)
	walk = append(walk, walk[0])
	return walk
}

// rotateMin rotates the node sequence so the lexicographically smallest
// node leads. Two discoveries of the same cycle from different roots then
// compare equal.
func rotateMin(nodes []string) []string {
	min := 0
	for i, node := range nodes {
		if node < nodes[min] {
			min = i
		}
	}

	out := make([]string, 0, len(nodes))
	out = append(out, nodes[min:]...)
	out = append(out, nodes[:min]...)
	return out
}

func canonicalKey(walk []string) string {
	return strings.Join(walk[:len(walk)-1], "\x00")
}
