package hierarchy

import (
	"cmp"
	"slices"
	"testing"
)

// node is a test class whose parents come from a shared shape table, so each
// test can describe its own hierarchy.
type node struct {
	name string
	h    *shape
}

type shape map[string][]string

func (n node) Parents() []node {
	var out []node
	for _, p := range (*n.h)[n.name] {
		out = append(out, node{name: p, h: n.h})
	}
	return out
}

func names(s Set[node]) []string {
	var out []string
	for _, n := range s.Sorted(func(x, y node) int { return cmp.Compare(x.name, y.name) }) {
		out = append(out, n.name)
	}
	return out
}

func TestAncestorsAndSelf(t *testing.T) {
	tests := []struct {
		name  string
		shape shape
		start string
		want  []string
	}{
		{
			name:  "root",
			shape: shape{"b": {"a"}},
			start: "a",
			want:  []string{"a"},
		},
		{
			name:  "tree",
			shape: shape{"b": {"a"}, "c": {"a"}, "d": {"b"}, "e": {"b"}},
			start: "d",
			want:  []string{"a", "b", "d"},
		},
		{
			name:  "forest",
			shape: shape{"b": {"a"}, "y": {"x"}},
			start: "y",
			want:  []string{"x", "y"},
		},
		{
			name:  "dag",
			shape: shape{"b": {"a"}, "c": {"a"}, "d": {"b", "c"}},
			start: "d",
			want:  []string{"a", "b", "c", "d"},
		},
		{
			name:  "cycle",
			shape: shape{"a": {"c"}, "b": {"a"}, "c": {"b"}},
			start: "a",
			want:  []string{"a", "b", "c"},
		},
		{
			name:  "self parent",
			shape: shape{"a": {"a"}, "b": {"a", "b"}},
			start: "b",
			want:  []string{"a", "b"},
		},
		{
			name:  "duplicate parents",
			shape: shape{"b": {"a", "a", "a"}},
			start: "b",
			want:  []string{"a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := names(AncestorsAndSelf(node{name: tt.start, h: &tt.shape}))
			if !slices.Equal(got, tt.want) {
				t.Errorf("AncestorsAndSelf(%s) = %v, want %v", tt.start, got, tt.want)
			}
		})
	}
}

func TestAncestorsAndSelfMultiple(t *testing.T) {
	s := shape{"b": {"a"}, "c": {"a"}, "y": {"x"}}
	n := func(name string) node { return node{name: name, h: &s} }

	tests := []struct {
		name  string
		nodes []node
		want  []string
	}{
		{"empty", nil, nil},
		{"single", []node{n("b")}, []string{"a", "b"}},
		{"shared ancestor", []node{n("b"), n("c")}, []string{"a", "b", "c"}},
		{"disjoint trees", []node{n("b"), n("y")}, []string{"a", "b", "x", "y"}},
		{"duplicates", []node{n("b"), n("b"), n("a")}, []string{"a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AncestorsAndSelfMultiple(tt.nodes...)
			if !slices.Equal(names(got), tt.want) {
				t.Errorf("AncestorsAndSelfMultiple() = %v, want %v", names(got), tt.want)
			}
		})
	}
}

func TestIsSubclassOf(t *testing.T) {
	s := shape{
		"b": {"a"},
		"c": {"a"},
		"d": {"b", "c"},
		"p": {"q"},
		"q": {"p"},
	}
	n := func(name string) node { return node{name: name, h: &s} }

	tests := []struct {
		sub, super string
		want       bool
	}{
		{"a", "a", true},
		{"d", "a", true},
		{"d", "c", true},
		{"a", "d", false},
		{"b", "c", false},
		{"p", "q", true},
		{"q", "p", true},
		{"p", "a", false},
	}
	for _, tt := range tests {
		if got := IsSubclassOf(n(tt.sub), n(tt.super)); got != tt.want {
			t.Errorf("IsSubclassOf(%s, %s) = %v, want %v", tt.sub, tt.super, got, tt.want)
		}
		if got := IsSuperclassOf(n(tt.super), n(tt.sub)); got != tt.want {
			t.Errorf("IsSuperclassOf(%s, %s) = %v, want %v", tt.super, tt.sub, got, tt.want)
		}
	}
}

func TestIsSubclassOf_MatchesAncestors(t *testing.T) {
	s := shape{"b": {"a"}, "c": {"b", "a"}, "d": {"c"}, "e": {"e"}}
	all := []string{"a", "b", "c", "d", "e"}
	for _, x := range all {
		anc := AncestorsAndSelf(node{name: x, h: &s})
		for _, y := range all {
			want := anc.Contains(node{name: y, h: &s})
			if got := IsSubclassOf(node{name: x, h: &s}, node{name: y, h: &s}); got != want {
				t.Errorf("IsSubclassOf(%s, %s) = %v, AncestorsAndSelf contains = %v", x, y, got, want)
			}
		}
	}
}
