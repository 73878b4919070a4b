// Package hierarchy answers subclass questions over class hierarchies whose
// structure is known statically: each class can list its direct parents.
//
// Unlike [enumgraph], the node type here is any comparable value, so the
// traversal keeps its visited set in a map. Parent lists may contain
// duplicates, and a hierarchy may contain cycles (including a class listing
// itself as a parent); every traversal terminates regardless.
package hierarchy

import (
	"maps"
	"slices"
)

// Node is a class that can enumerate its direct parent classes.
// Parents must be deterministic for a given value.
type Node[T any] interface {
	comparable
	Parents() []T
}

// Set is a set of classes.
type Set[T comparable] map[T]struct{}

// Contains reports whether n is in the set.
func (s Set[T]) Contains(n T) bool {
	_, ok := s[n]
	return ok
}

// Add inserts n into the set.
func (s Set[T]) Add(n T) { s[n] = struct{}{} }

// Sorted returns the members ordered by cmp.
func (s Set[T]) Sorted(cmp func(x, y T) int) []T {
	return slices.SortedFunc(maps.Keys(s), cmp)
}

// AncestorsAndSelf returns n together with every class reachable from n by
// following parent links.
func AncestorsAndSelf[T Node[T]](n T) Set[T] {
	out := make(Set[T])
	collect(out, n)
	return out
}

// AncestorsAndSelfMultiple returns the union of AncestorsAndSelf over nodes.
// The result is a true set: shared ancestors appear once. No nodes yields an
// empty set.
func AncestorsAndSelfMultiple[T Node[T]](nodes ...T) Set[T] {
	out := make(Set[T])
	for _, n := range nodes {
		collect(out, n)
	}
	return out
}

// collect adds n and its ancestors to visited. Nodes already in visited are
// not expanded again, which also makes repeated calls share work.
func collect[T Node[T]](visited Set[T], n T) {
	stack := []T{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited.Contains(cur) {
			continue
		}
		visited.Add(cur)
		for _, p := range cur.Parents() {
			if !visited.Contains(p) {
				stack = append(stack, p)
			}
		}
	}
}

// IsSubclassOf reports whether sub equals super or has super as a
// transitive parent. The search stops as soon as super is found.
func IsSubclassOf[T Node[T]](sub, super T) bool {
	visited := make(Set[T])
	stack := []T{sub}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur == super {
			return true
		}
		if visited.Contains(cur) {
			continue
		}
		visited.Add(cur)
		for _, p := range cur.Parents() {
			if !visited.Contains(p) {
				stack = append(stack, p)
			}
		}
	}
	return false
}

// IsSuperclassOf reports whether super is sub or one of its ancestors.
func IsSuperclassOf[T Node[T]](super, sub T) bool { return IsSubclassOf(sub, super) }
