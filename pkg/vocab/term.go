package vocab

import (
	"fmt"

	"github.com/allen-marshall/lv2-se-bundle/pkg/enumgraph"
)

// Term is implemented by every vocabulary enumeration in this package.
// Terms are usable as [enumgraph] nodes and carry the IRI that identifies
// them in RDF.
type Term interface {
	enumgraph.Enum
	IRI() string
	String() string

	lookup(iri string) (uint8, bool)
}

// Parse returns the term of type T identified by iri.
func Parse[T Term](iri string) (T, bool) {
	var zero T
	v, ok := zero.lookup(iri)
	return T(v), ok
}

// ByName returns the term of type T whose String form is name.
func ByName[T Term](name string) (T, bool) {
	for _, t := range enumgraph.Members[T]() {
		if t.String() == name {
			return t, true
		}
	}
	var zero T
	return zero, false
}

// Names lists the String form of every term of type T in ordinal order.
func Names[T Term]() []string {
	members := enumgraph.Members[T]()
	out := make([]string, len(members))
	for i, t := range members {
		out[i] = t.String()
	}
	return out
}

type entry struct {
	name string
	iri  string
}

// table holds the names and IRIs of one enumeration, indexed by ordinal.
type table[T ~uint8] struct {
	kind  string
	terms []entry
	byIRI map[string]T
}

func newTable[T ~uint8](kind string, terms ...entry) *table[T] {
	if len(terms) > enumgraph.MaxCardinality {
		panic(fmt.Sprintf("vocab: %s has %d terms, more than %d", kind, len(terms), enumgraph.MaxCardinality))
	}
	t := &table[T]{kind: kind, terms: terms, byIRI: make(map[string]T, len(terms))}
	for i, e := range terms {
		t.byIRI[e.iri] = T(i)
	}
	return t
}

func (t *table[T]) len() int { return len(t.terms) }

func (t *table[T]) name(v T) string {
	if int(v) < len(t.terms) {
		return t.terms[v].name
	}
	return fmt.Sprintf("%s(%d)", t.kind, uint8(v))
}

func (t *table[T]) iri(v T) string {
	if int(v) < len(t.terms) {
		return t.terms[v].iri
	}
	return ""
}

func (t *table[T]) parse(iri string) (T, bool) {
	v, ok := t.byIRI[iri]
	return v, ok
}

func (t *table[T]) lookup(iri string) (uint8, bool) {
	v, ok := t.byIRI[iri]
	return uint8(v), ok
}
