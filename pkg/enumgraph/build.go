package enumgraph

import (
	"context"
	"iter"

	"golang.org/x/sync/errgroup"
)

// FromEdges builds a graph containing exactly the given edges. Duplicate
// edges collapse.
func FromEdges[T Enum](edges ...Edge[T]) DiGraph[T] {
	var g DiGraph[T]
	for _, e := range edges {
		g.InsertEdge(e.From, e.To)
	}
	return g
}

// FromSeq builds a graph from an edge sequence.
func FromSeq[T Enum](edges iter.Seq[Edge[T]]) DiGraph[T] {
	var g DiGraph[T]
	for e := range edges {
		g.InsertEdge(e.From, e.To)
	}
	return g
}

// FromEdgesParallel builds the same graph as [FromEdges] using up to workers
// goroutines. The edge list is split into contiguous chunks; each worker
// folds one single-edge graph per edge into a partial result, and the
// partials are folded with [DiGraph.Union].
//
// The result does not depend on workers or on scheduling. A workers value
// below 1 is treated as 1. The only error is ctx's, if it is cancelled
// before every chunk has been processed.
func FromEdgesParallel[T Enum](ctx context.Context, edges []Edge[T], workers int) (DiGraph[T], error) {
	if workers < 1 {
		workers = 1
	}
	if workers > len(edges) {
		workers = max(len(edges), 1)
	}

	partials := make([]DiGraph[T], workers)
	chunk := (len(edges) + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for w := range workers {
		lo := min(w*chunk, len(edges))
		hi := min(lo+chunk, len(edges))
		g.Go(func() error {
			var part DiGraph[T]
			for _, e := range edges[lo:hi] {
				if err := ctx.Err(); err != nil {
					return err
				}
				part = part.Union(singleton(e))
			}
			partials[w] = part
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return DiGraph[T]{}, err
	}

	var out DiGraph[T]
	for _, p := range partials {
		out = out.Union(p)
	}
	return out, nil
}

func singleton[T Enum](e Edge[T]) DiGraph[T] {
	var g DiGraph[T]
	g.InsertEdge(e.From, e.To)
	return g
}
