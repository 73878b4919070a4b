// Package enumgraph provides directed graphs whose node set is a small,
// compile-time-fixed enumeration.
//
// # Overview
//
// LV2 vocabularies such as plugin classes and atom classes are fixed lists of
// at most a few dozen terms. Questions like "does a Reverb plugin also count
// as a Delay plugin?" are reachability queries over a graph whose nodes are
// exactly those terms. This package stores such graphs as one 64-bit bitset
// of successors per node, so every set operation is a handful of machine
// instructions.
//
// # Node Types
//
// Any type satisfying [Enum] can be used as a node: an integer type with
// underlying type uint8 whose members are numbered 0..Cardinality()-1, with
// Cardinality() <= [MaxCardinality]:
//
//	type Color uint8
//
//	const (
//	    Red Color = iota
//	    Green
//	    Blue
//	)
//
//	func (Color) Cardinality() int { return 3 }
//
// Every member is always a node of the graph, even when it has no edges.
//
// # Basic Usage
//
//	var g enumgraph.DiGraph[Color]
//	g.InsertEdge(Red, Green)
//	g.InsertEdge(Green, Blue)
//
//	g.HasPath(Red, Blue)         // true
//	closure := g.TransitiveClosure()
//	closure.HasEdge(Red, Blue)   // true
//	closure.HasEdge(Blue, Blue)  // true, every node reaches itself
//
// # Building From Edge Lists
//
// [FromEdges] and [FromSeq] build a graph sequentially. [FromEdgesParallel]
// splits the edge list across workers, builds one single-edge graph per edge
// and folds them with [DiGraph.Union]. Because union is commutative and
// associative, the result is identical for any partitioning.
//
// # Concurrency
//
// A DiGraph is a plain value. Building it with [DiGraph.InsertEdge] requires
// exclusive access; once built, any number of goroutines may query it
// concurrently. Graphs returned by [DiGraph.TransitiveClosure],
// [DiGraph.Reverse] and [DiGraph.Union] are independent copies.
package enumgraph
