package enumgraph

import (
	"context"
	"math/rand/v2"
	"testing"
)

type letter uint8

const (
	a letter = iota
	b
	c
	d
	e
	numLetters
)

func (letter) Cardinality() int { return int(numLetters) }

func (l letter) String() string { return string(rune('a' + l)) }

// wide exercises the full 64-member range.
type wide uint8

func (wide) Cardinality() int { return MaxCardinality }

func randomGraph(r *rand.Rand, edges int) DiGraph[letter] {
	var g DiGraph[letter]
	for range edges {
		g.InsertEdge(letter(r.IntN(int(numLetters))), letter(r.IntN(int(numLetters))))
	}
	return g
}

func TestNew_Empty(t *testing.T) {
	g := New[letter]()
	if g.EdgeCount() != 0 {
		t.Errorf("EdgeCount() = %d, want 0", g.EdgeCount())
	}
	for _, from := range Members[letter]() {
		for _, to := range Members[letter]() {
			if g.HasEdge(from, to) {
				t.Errorf("HasEdge(%v, %v) = true, want false", from, to)
			}
		}
		if got := g.ReachableNodes(from); got != SetOf(from) {
			t.Errorf("ReachableNodes(%v) = %v, want {%v}", from, got.Members(), from)
		}
	}
	if g != (DiGraph[letter]{}) {
		t.Error("New() != zero value")
	}
}

func TestInsertEdge(t *testing.T) {
	var g DiGraph[letter]
	g.InsertEdge(a, b)

	if !g.HasEdge(a, b) {
		t.Error("HasEdge(a, b) = false, want true")
	}
	if g.HasEdge(b, a) {
		t.Error("HasEdge(b, a) = true, want false")
	}

	before := g
	g.InsertEdge(a, b)
	if g != before {
		t.Error("InsertEdge is not idempotent")
	}
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount() = %d, want 1", g.EdgeCount())
	}
}

func TestRemoveEdge(t *testing.T) {
	g := FromEdges(Edge[letter]{a, b}, Edge[letter]{b, c})
	g.RemoveEdge(a, b)
	if g.HasEdge(a, b) {
		t.Error("HasEdge(a, b) after RemoveEdge = true, want false")
	}
	g.RemoveEdge(d, e)
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount() = %d, want 1", g.EdgeCount())
	}
}

func TestAdjacentNodes(t *testing.T) {
	g := FromEdges(
		Edge[letter]{a, b},
		Edge[letter]{a, c},
		Edge[letter]{c, d},
		Edge[letter]{e, e},
	)

	tests := []struct {
		from letter
		want Set[letter]
	}{
		{a, SetOf(b, c)},
		{b, 0},
		{c, SetOf(d)},
		{e, SetOf(e)},
	}
	for _, tt := range tests {
		if got := g.AdjacentNodes(tt.from); got != tt.want {
			t.Errorf("AdjacentNodes(%v) = %v, want %v", tt.from, got.Members(), tt.want.Members())
		}
	}
}

func TestReachableNodes(t *testing.T) {
	tests := []struct {
		name  string
		edges []Edge[letter]
		from  letter
		want  Set[letter]
	}{
		{
			name:  "chain",
			edges: []Edge[letter]{{a, b}, {b, c}, {c, d}},
			from:  a,
			want:  SetOf(a, b, c, d),
		},
		{
			name:  "middle of chain",
			edges: []Edge[letter]{{a, b}, {b, c}, {c, d}},
			from:  c,
			want:  SetOf(c, d),
		},
		{
			name:  "cycle",
			edges: []Edge[letter]{{a, b}, {b, c}, {c, a}},
			from:  b,
			want:  SetOf(a, b, c),
		},
		{
			name:  "self loop",
			edges: []Edge[letter]{{a, a}, {a, b}},
			from:  a,
			want:  SetOf(a, b),
		},
		{
			name:  "diamond",
			edges: []Edge[letter]{{a, b}, {a, c}, {b, d}, {c, d}},
			from:  a,
			want:  SetOf(a, b, c, d),
		},
		{
			name:  "isolated",
			edges: []Edge[letter]{{a, b}},
			from:  e,
			want:  SetOf(e),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := FromEdges(tt.edges...)
			if got := g.ReachableNodes(tt.from); got != tt.want {
				t.Errorf("ReachableNodes(%v) = %v, want %v", tt.from, got.Members(), tt.want.Members())
			}
		})
	}
}

func TestReachableNodesFromMulti(t *testing.T) {
	g := FromEdges(Edge[letter]{a, b}, Edge[letter]{c, d}, Edge[letter]{d, c})

	if got := g.ReachableNodesFromMulti(0); got != 0 {
		t.Errorf("ReachableNodesFromMulti({}) = %v, want {}", got.Members())
	}

	r := rand.New(rand.NewPCG(7, 11))
	for range 200 {
		g := randomGraph(r, 6)
		from := Set[letter](r.Uint64()) & FullSet[letter]()
		var want Set[letter]
		for n := range from.All() {
			want = want.Union(g.ReachableNodes(n))
		}
		if got := g.ReachableNodesFromMulti(from); got != want {
			t.Fatalf("ReachableNodesFromMulti(%v) = %v, want %v", from.Members(), got.Members(), want.Members())
		}
	}
}

func TestHasPath(t *testing.T) {
	g := FromEdges(Edge[letter]{a, b}, Edge[letter]{b, c})

	tests := []struct {
		from, to letter
		want     bool
	}{
		{a, c, true},
		{a, a, true},
		{c, a, false},
		{d, d, true},
		{d, a, false},
	}
	for _, tt := range tests {
		if got := g.HasPath(tt.from, tt.to); got != tt.want {
			t.Errorf("HasPath(%v, %v) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestTransitiveClosure(t *testing.T) {
	g := FromEdges(Edge[letter]{a, b}, Edge[letter]{b, c})
	closure := g.TransitiveClosure()

	want := FromEdges(
		Edge[letter]{a, a}, Edge[letter]{a, b}, Edge[letter]{a, c},
		Edge[letter]{b, b}, Edge[letter]{b, c},
		Edge[letter]{c, c},
		Edge[letter]{d, d},
		Edge[letter]{e, e},
	)
	if closure != want {
		t.Errorf("TransitiveClosure() edges = %v, want %v", closure.Edges(), want.Edges())
	}
}

func TestTransitiveClosure_Properties(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for range 500 {
		g := randomGraph(r, r.IntN(12))
		closure := g.TransitiveClosure()

		for _, x := range Members[letter]() {
			if !closure.HasEdge(x, x) {
				t.Fatalf("closure missing self loop on %v for %v", x, g.Edges())
			}
			for _, y := range Members[letter]() {
				if closure.HasEdge(x, y) != g.HasPath(x, y) {
					t.Fatalf("closure.HasEdge(%v, %v) = %v, HasPath = %v", x, y, closure.HasEdge(x, y), g.HasPath(x, y))
				}
				if g.HasEdge(x, y) && !closure.HasEdge(x, y) {
					t.Fatalf("closure dropped edge %v→%v", x, y)
				}
			}
		}
		if again := closure.TransitiveClosure(); again != closure {
			t.Fatalf("closure not idempotent for %v", g.Edges())
		}
	}
}

func TestReverse(t *testing.T) {
	g := FromEdges(Edge[letter]{a, b}, Edge[letter]{b, c}, Edge[letter]{d, d})
	rev := g.Reverse()

	want := FromEdges(Edge[letter]{b, a}, Edge[letter]{c, b}, Edge[letter]{d, d})
	if rev != want {
		t.Errorf("Reverse() edges = %v, want %v", rev.Edges(), want.Edges())
	}

	r := rand.New(rand.NewPCG(3, 4))
	for range 200 {
		g := randomGraph(r, 8)
		if g.Reverse().Reverse() != g {
			t.Fatalf("Reverse(Reverse(g)) != g for %v", g.Edges())
		}
		rev := g.Reverse()
		for _, x := range Members[letter]() {
			for _, y := range Members[letter]() {
				if g.HasEdge(x, y) != rev.HasEdge(y, x) {
					t.Fatalf("HasEdge(%v, %v) mismatch after Reverse", x, y)
				}
			}
		}
	}
}

func TestUnion_Properties(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	empty := New[letter]()
	for range 200 {
		g, h, k := randomGraph(r, 5), randomGraph(r, 5), randomGraph(r, 5)

		if g.Union(h) != h.Union(g) {
			t.Fatal("Union is not commutative")
		}
		if g.Union(h).Union(k) != g.Union(h.Union(k)) {
			t.Fatal("Union is not associative")
		}
		if g.Union(empty) != g {
			t.Fatal("empty graph is not the Union identity")
		}
		u := g.Union(h)
		for _, e := range append(g.Edges(), h.Edges()...) {
			if !u.HasEdge(e.From, e.To) {
				t.Fatalf("Union dropped edge %v→%v", e.From, e.To)
			}
		}
		if u.EdgeCount() > g.EdgeCount()+h.EdgeCount() {
			t.Fatalf("Union invented edges: %d > %d+%d", u.EdgeCount(), g.EdgeCount(), h.EdgeCount())
		}
	}
}

func TestCompare(t *testing.T) {
	empty := New[letter]()
	ab := FromEdges(Edge[letter]{a, b})
	ac := FromEdges(Edge[letter]{a, c})

	tests := []struct {
		name string
		x, y DiGraph[letter]
		want int
	}{
		{"equal", ab, FromEdges(Edge[letter]{a, b}), 0},
		{"empty first", empty, ab, -1},
		{"empty last", ab, empty, 1},
		{"higher bit wins", ab, ac, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.x.Compare(tt.y); got != tt.want {
				t.Errorf("Compare() = %d, want %d", got, tt.want)
			}
			if got := tt.x.Equal(tt.y); got != (tt.want == 0) {
				t.Errorf("Equal() = %v, want %v", got, tt.want == 0)
			}
		})
	}
}

func TestCompare_TotalOrder(t *testing.T) {
	r := rand.New(rand.NewPCG(8, 9))
	for range 300 {
		g, h, k := randomGraph(r, 3), randomGraph(r, 3), randomGraph(r, 3)
		if g.Compare(h) != -h.Compare(g) {
			t.Fatal("Compare is not antisymmetric")
		}
		if (g.Compare(h) == 0) != (g == h) {
			t.Fatal("Compare() == 0 disagrees with ==")
		}
		if g.Compare(h) <= 0 && h.Compare(k) <= 0 && g.Compare(k) > 0 {
			t.Fatal("Compare is not transitive")
		}
	}
}

func TestFromEdgesParallel(t *testing.T) {
	r := rand.New(rand.NewPCG(10, 12))
	edges := make([]Edge[letter], 100)
	for i := range edges {
		edges[i] = Edge[letter]{letter(r.IntN(int(numLetters))), letter(r.IntN(int(numLetters)))}
	}
	want := FromEdges(edges...)

	for _, workers := range []int{-1, 0, 1, 2, 3, 7, 16, 1000} {
		got, err := FromEdgesParallel(context.Background(), edges, workers)
		if err != nil {
			t.Fatalf("FromEdgesParallel(workers=%d) error = %v", workers, err)
		}
		if got != want {
			t.Errorf("FromEdgesParallel(workers=%d) differs from FromEdges", workers)
		}
	}
}

// permutations returns every ordering of edges.
func permutations[T any](items []T) [][]T {
	if len(items) <= 1 {
		return [][]T{append([]T(nil), items...)}
	}
	var out [][]T
	for i := range items {
		rest := append(append([]T(nil), items[:i]...), items[i+1:]...)
		for _, p := range permutations(rest) {
			out = append(out, append([]T{items[i]}, p...))
		}
	}
	return out
}

func TestFromEdgesParallel_Permutations(t *testing.T) {
	tests := []struct {
		name  string
		edges []Edge[letter]
	}{
		{"two disjoint edges", []Edge[letter]{{a, b}, {c, d}}},
		{"duplicate and self loop", []Edge[letter]{{a, b}, {a, b}, {c, c}, {b, d}, {d, a}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var want DiGraph[letter]
			for _, e := range tt.edges {
				want.InsertEdge(e.From, e.To)
			}

			for _, perm := range permutations(tt.edges) {
				if got := FromEdges(perm...); got != want {
					t.Fatalf("FromEdges(%v) edges = %v, want %v", perm, got.Edges(), want.Edges())
				}
				for workers := 1; workers <= len(perm); workers++ {
					got, err := FromEdgesParallel(context.Background(), perm, workers)
					if err != nil {
						t.Fatalf("FromEdgesParallel(%v, %d) error = %v", perm, workers, err)
					}
					if got != want {
						t.Fatalf("FromEdgesParallel(%v, %d) edges = %v, want %v", perm, workers, got.Edges(), want.Edges())
					}
				}
			}
		})
	}
}

func TestFromEdgesParallel_Empty(t *testing.T) {
	got, err := FromEdgesParallel[letter](context.Background(), nil, 4)
	if err != nil {
		t.Fatalf("FromEdgesParallel() error = %v", err)
	}
	if got != New[letter]() {
		t.Errorf("FromEdgesParallel(nil) edges = %v, want none", got.Edges())
	}
}

func TestFromEdgesParallel_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := FromEdgesParallel(ctx, []Edge[letter]{{a, b}}, 1)
	if err == nil {
		t.Error("FromEdgesParallel() with cancelled context error = nil, want error")
	}
}

func TestFromSeq(t *testing.T) {
	edges := []Edge[letter]{{a, b}, {b, c}, {a, b}}
	seq := func(yield func(Edge[letter]) bool) {
		for _, e := range edges {
			if !yield(e) {
				return
			}
		}
	}
	if got, want := FromSeq(seq), FromEdges(edges...); got != want {
		t.Errorf("FromSeq() edges = %v, want %v", got.Edges(), want.Edges())
	}
}

func TestWideEnum(t *testing.T) {
	var g DiGraph[wide]
	for i := range MaxCardinality - 1 {
		g.InsertEdge(wide(i), wide(i+1))
	}

	if got := g.ReachableNodes(0); got != FullSet[wide]() {
		t.Errorf("ReachableNodes(0).Len() = %d, want %d", got.Len(), MaxCardinality)
	}
	if !g.HasPath(0, 63) {
		t.Error("HasPath(0, 63) = false, want true")
	}
	if g.HasPath(63, 0) {
		t.Error("HasPath(63, 0) = true, want false")
	}
	if got := g.Reverse().ReachableNodes(63).Len(); got != MaxCardinality {
		t.Errorf("Reverse().ReachableNodes(63).Len() = %d, want %d", got, MaxCardinality)
	}
	if got := g.TransitiveClosure().EdgeCount(); got != MaxCardinality*(MaxCardinality+1)/2 {
		t.Errorf("TransitiveClosure().EdgeCount() = %d, want %d", got, MaxCardinality*(MaxCardinality+1)/2)
	}
}
