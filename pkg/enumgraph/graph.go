package enumgraph

import "cmp"

// Edge is a directed edge between two enumeration members.
type Edge[T Enum] struct {
	From T
	To   T
}

// DiGraph is a directed graph whose nodes are all members of T. Edges are
// unlabeled and self loops are allowed.
//
// The zero value is an empty graph, ready to use. DiGraph values are
// comparable with ==: two graphs are equal iff every node has the same
// successor set.
type DiGraph[T Enum] struct {
	adj [MaxCardinality]Set[T] // successors, indexed by member ordinal
}

// New returns a graph with no edges.
func New[T Enum]() DiGraph[T] { return DiGraph[T]{} }

// HasEdge reports whether the edge from→to is present.
func (g DiGraph[T]) HasEdge(from, to T) bool { return g.adj[from].Contains(to) }

// AdjacentNodes returns the nodes reachable by a single edge from from.
// The result contains from only if from has a self loop.
func (g DiGraph[T]) AdjacentNodes(from T) Set[T] { return g.adj[from] }

// HasPath reports whether to is reachable from from. Zero-length paths
// count, so HasPath(x, x) is always true.
func (g DiGraph[T]) HasPath(from, to T) bool { return g.ReachableNodes(from).Contains(to) }

// ReachableNodes returns every node reachable from from by a directed path
// of any length, including from itself.
//
// The search is an iterative depth-first traversal with an explicit stack.
// A node is expanded at most once, so cycles and self loops terminate and
// the work is bounded by the enumeration size.
func (g DiGraph[T]) ReachableNodes(from T) Set[T] {
	var visited Set[T]
	stack := []T{from}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited.Contains(n) {
			continue
		}
		visited.Insert(n)
		for next := range g.adj[n].Difference(visited).All() {
			stack = append(stack, next)
		}
	}
	return visited
}

// ReachableNodesFromMulti returns the union of ReachableNodes over every
// member of from. The traversal shares one visited set, so nodes reachable
// from several starts are expanded once.
func (g DiGraph[T]) ReachableNodesFromMulti(from Set[T]) Set[T] {
	var visited Set[T]
	frontier := from
	for !frontier.IsEmpty() {
		visited = visited.Union(frontier)
		var next Set[T]
		for n := range frontier.All() {
			next = next.Union(g.adj[n])
		}
		frontier = next.Difference(visited)
	}
	return visited
}

// InsertEdge adds the edge from→to. Inserting an existing edge is a no-op.
func (g *DiGraph[T]) InsertEdge(from, to T) { g.adj[from].Insert(to) }

// RemoveEdge deletes the edge from→to if present.
func (g *DiGraph[T]) RemoveEdge(from, to T) { g.adj[from].Remove(to) }

// TransitiveClosure returns a graph with an edge x→y for every pair where
// y is reachable from x in g. Every node of the result has a self loop.
// Taking the closure of a closure returns an equal graph.
//
// Runs in O(N²) bitset operations where N is the enumeration size.
func (g DiGraph[T]) TransitiveClosure() DiGraph[T] {
	var out DiGraph[T]
	for n := range FullSet[T]().All() {
		out.adj[n] = g.ReachableNodes(n)
	}
	return out
}

// Reverse returns g with every edge flipped.
func (g DiGraph[T]) Reverse() DiGraph[T] {
	var out DiGraph[T]
	for from := range FullSet[T]().All() {
		for to := range g.adj[from].All() {
			out.InsertEdge(to, from)
		}
	}
	return out
}

// Union returns a graph containing the edges of both g and o. Union is
// commutative and associative, and the empty graph is its identity.
func (g DiGraph[T]) Union(o DiGraph[T]) DiGraph[T] {
	var out DiGraph[T]
	for i := range g.adj {
		out.adj[i] = g.adj[i] | o.adj[i]
	}
	return out
}

// Edges lists every edge, ordered by source then target ordinal.
func (g DiGraph[T]) Edges() []Edge[T] {
	var edges []Edge[T]
	for from := range FullSet[T]().All() {
		for to := range g.adj[from].All() {
			edges = append(edges, Edge[T]{From: from, To: to})
		}
	}
	return edges
}

// EdgeCount returns the number of edges, self loops included.
func (g DiGraph[T]) EdgeCount() int {
	n := 0
	for i := range g.adj {
		n += g.adj[i].Len()
	}
	return n
}

// Equal reports whether both graphs have the same edges.
func (g DiGraph[T]) Equal(o DiGraph[T]) bool { return g == o }

// Compare orders graphs by comparing successor sets lexicographically in
// node ordinal order. The order carries no domain meaning; it exists so
// graphs can serve as keys in sorted containers.
func (g DiGraph[T]) Compare(o DiGraph[T]) int {
	for i := range g.adj {
		if c := cmp.Compare(g.adj[i], o.adj[i]); c != 0 {
			return c
		}
	}
	return 0
}
