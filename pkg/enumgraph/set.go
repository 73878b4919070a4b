package enumgraph

import (
	"iter"
	"math/bits"
)

// MaxCardinality is the largest enumeration a [Set] or [DiGraph] can hold.
const MaxCardinality = 64

// Enum is the constraint for node types. Members must be numbered
// consecutively from zero, and Cardinality must report the member count
// without depending on the receiver (it is called on the zero value).
type Enum interface {
	~uint8
	Cardinality() int
}

// Set is a set of enumeration members stored as a bitmask, one bit per
// member ordinal. The zero value is the empty set.
type Set[T Enum] uint64

// SetOf returns the set containing the given members.
func SetOf[T Enum](members ...T) Set[T] {
	var s Set[T]
	for _, m := range members {
		s = s.With(m)
	}
	return s
}

// FullSet returns the set of every member of T.
func FullSet[T Enum]() Set[T] {
	var zero T
	n := zero.Cardinality()
	if n >= MaxCardinality {
		return Set[T](^uint64(0))
	}
	return Set[T](uint64(1)<<uint(n) - 1)
}

// Members lists every member of T in ordinal order.
func Members[T Enum]() []T { return FullSet[T]().Members() }

func bit[T Enum](m T) Set[T] { return Set[T](uint64(1) << uint(m)) }

// Contains reports whether m is in the set.
func (s Set[T]) Contains(m T) bool { return s&bit(m) != 0 }

// With returns a copy of the set with m added.
func (s Set[T]) With(m T) Set[T] { return s | bit(m) }

// Without returns a copy of the set with m removed.
func (s Set[T]) Without(m T) Set[T] { return s &^ bit(m) }

// Insert adds m to the set in place.
func (s *Set[T]) Insert(m T) { *s |= bit(m) }

// Remove deletes m from the set in place.
func (s *Set[T]) Remove(m T) { *s &^= bit(m) }

// Union returns the members in either set.
func (s Set[T]) Union(o Set[T]) Set[T] { return s | o }

// Intersect returns the members in both sets.
func (s Set[T]) Intersect(o Set[T]) Set[T] { return s & o }

// Difference returns the members of s that are not in o.
func (s Set[T]) Difference(o Set[T]) Set[T] { return s &^ o }

// IsDisjoint reports whether the sets share no members.
func (s Set[T]) IsDisjoint(o Set[T]) bool { return s&o == 0 }

// IsSubsetOf reports whether every member of s is in o.
func (s Set[T]) IsSubsetOf(o Set[T]) bool { return s&^o == 0 }

// IsEmpty reports whether the set has no members.
func (s Set[T]) IsEmpty() bool { return s == 0 }

// Len returns the number of members.
func (s Set[T]) Len() int { return bits.OnesCount64(uint64(s)) }

// All iterates the members in ordinal order.
func (s Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for w := uint64(s); w != 0; w &= w - 1 {
			if !yield(T(bits.TrailingZeros64(w))) {
				return
			}
		}
	}
}

// Members returns the members in ordinal order.
func (s Set[T]) Members() []T {
	out := make([]T, 0, s.Len())
	for m := range s.All() {
		out = append(out, m)
	}
	return out
}
