package model

import (
	"slices"

	"github.com/allen-marshall/lv2-se-bundle/pkg/enumgraph"
	"github.com/allen-marshall/lv2-se-bundle/pkg/rdfutil"
	"github.com/allen-marshall/lv2-se-bundle/pkg/vocab"
)

// Unknown is a term, identified by IRI, that is not part of the standard
// vocabulary K. Bundles often reference classes and features from
// non-standard extensions; those are kept as Unknown values rather than
// dropped.
type Unknown[K vocab.Term] struct {
	iri rdfutil.IRI
}

// NewUnknown wraps iri as an unknown term of vocabulary K.
func NewUnknown[K vocab.Term](iri rdfutil.IRI) Unknown[K] { return Unknown[K]{iri: iri} }

// IRI returns the identifying IRI.
func (u Unknown[K]) IRI() rdfutil.IRI { return u.iri }

func (u Unknown[K]) String() string { return u.iri.String() }

type (
	UnknownPluginType      = Unknown[vocab.PluginType]
	UnknownPortType        = Unknown[vocab.PortType]
	UnknownHostFeature     = Unknown[vocab.HostFeature]
	UnknownExtensionData   = Unknown[vocab.ExtensionData]
	UnknownOption          = Unknown[vocab.Option]
	UnknownPortDesignation = Unknown[vocab.PortDesignation]
	UnknownPortProperty    = Unknown[vocab.PortProperty]
	UnknownUnit            = Unknown[vocab.Unit]
)

// TermSet holds terms of vocabulary K: standard members in a bitset and
// everything else as a sorted, duplicate-free list of [Unknown] values.
//
// The zero value is an empty set.
type TermSet[K vocab.Term] struct {
	known   enumgraph.Set[K]
	unknown []Unknown[K]
}

// TermSetOf returns a set holding the given standard terms.
func TermSetOf[K vocab.Term](terms ...K) TermSet[K] {
	return TermSet[K]{known: enumgraph.SetOf(terms...)}
}

// Add inserts a standard term.
func (s *TermSet[K]) Add(t K) { s.known.Insert(t) }

// AddIRI inserts the term identified by iri, as a standard term when the
// vocabulary knows it and as an unknown otherwise. It reports whether iri
// was a standard term.
func (s *TermSet[K]) AddIRI(iri rdfutil.IRI) bool {
	if t, ok := vocab.Parse[K](iri.String()); ok {
		s.known.Insert(t)
		return true
	}
	s.AddUnknown(NewUnknown[K](iri))
	return false
}

// AddUnknown inserts an unknown term.
func (s *TermSet[K]) AddUnknown(u Unknown[K]) {
	i, found := s.search(u.iri)
	if !found {
		s.unknown = slices.Insert(s.unknown, i, u)
	}
}

// RemoveIRI deletes the term identified by iri.
func (s *TermSet[K]) RemoveIRI(iri rdfutil.IRI) {
	if t, ok := vocab.Parse[K](iri.String()); ok {
		s.known.Remove(t)
		return
	}
	if i, found := s.search(iri); found {
		s.unknown = slices.Delete(s.unknown, i, i+1)
	}
}

func (s TermSet[K]) search(iri rdfutil.IRI) (int, bool) {
	return slices.BinarySearchFunc(s.unknown, iri, func(u Unknown[K], iri rdfutil.IRI) int {
		return u.iri.Compare(iri)
	})
}

// Contains reports whether the standard term t is in the set.
func (s TermSet[K]) Contains(t K) bool { return s.known.Contains(t) }

// ContainsIRI reports whether the term identified by iri is in the set.
func (s TermSet[K]) ContainsIRI(iri rdfutil.IRI) bool {
	if t, ok := vocab.Parse[K](iri.String()); ok {
		return s.known.Contains(t)
	}
	_, found := s.search(iri)
	return found
}

// Known returns the standard terms.
func (s TermSet[K]) Known() enumgraph.Set[K] { return s.known }

// Unknown returns the non-standard terms sorted by IRI.
func (s TermSet[K]) Unknown() []Unknown[K] { return slices.Clone(s.unknown) }

// Len returns the total number of terms.
func (s TermSet[K]) Len() int { return s.known.Len() + len(s.unknown) }

// IsEmpty reports whether the set has no terms.
func (s TermSet[K]) IsEmpty() bool { return s.Len() == 0 }

// IRIs lists every term's IRI: standard terms in ordinal order, then
// unknown terms sorted by IRI.
func (s TermSet[K]) IRIs() []rdfutil.IRI {
	out := make([]rdfutil.IRI, 0, s.Len())
	for t := range s.known.All() {
		out = append(out, rdfutil.MustIRI(t.IRI()))
	}
	for _, u := range s.unknown {
		out = append(out, u.iri)
	}
	return out
}

// Union returns the terms in either set.
func (s TermSet[K]) Union(o TermSet[K]) TermSet[K] {
	out := TermSet[K]{known: s.known.Union(o.known), unknown: slices.Clone(s.unknown)}
	for _, u := range o.unknown {
		out.AddUnknown(u)
	}
	return out
}

// Difference returns the terms of s that are not in o.
func (s TermSet[K]) Difference(o TermSet[K]) TermSet[K] {
	out := TermSet[K]{known: s.known.Difference(o.known)}
	for _, u := range s.unknown {
		if _, found := o.search(u.iri); !found {
			out.unknown = append(out.unknown, u)
		}
	}
	return out
}

// Equal reports whether both sets hold the same terms.
func (s TermSet[K]) Equal(o TermSet[K]) bool {
	return s.known == o.known && slices.Equal(s.unknown, o.unknown)
}
