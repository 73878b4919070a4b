package model

import (
	"slices"

	"golang.org/x/text/language"

	"github.com/allen-marshall/lv2-se-bundle/pkg/rdfutil"
)

// LiteralSet is a sorted, duplicate-free set of literals. The zero value is
// empty.
type LiteralSet struct {
	items []rdfutil.Literal
}

// Add inserts l.
func (s *LiteralSet) Add(l rdfutil.Literal) {
	i, found := slices.BinarySearchFunc(s.items, l, rdfutil.CompareLiterals)
	if !found {
		s.items = slices.Insert(s.items, i, l)
	}
}

// All returns the literals in sorted order.
func (s LiteralSet) All() []rdfutil.Literal { return slices.Clone(s.items) }

// Len returns the number of literals.
func (s LiteralSet) Len() int { return len(s.items) }

// Best picks the literal that best matches the preferred languages.
// Untagged literals match any preference as a fallback. The second result
// is false only when the set is empty.
func (s LiteralSet) Best(prefs ...language.Tag) (rdfutil.Literal, bool) {
	if len(s.items) == 0 {
		return rdfutil.Literal{}, false
	}
	if len(prefs) == 0 {
		for _, l := range s.items {
			if !l.HasLang() {
				return l, true
			}
		}
		return s.items[0], true
	}

	var (
		tags       []language.Tag
		candidates []rdfutil.Literal
		untagged   = -1
	)
	for i, l := range s.items {
		if !l.HasLang() {
			if untagged < 0 {
				untagged = i
			}
			continue
		}
		tags = append(tags, l.Lang().Tag())
		candidates = append(candidates, l)
	}
	if len(candidates) == 0 {
		return s.items[untagged], true
	}

	_, idx, conf := language.NewMatcher(tags).Match(prefs...)
	if conf == language.No && untagged >= 0 {
		return s.items[untagged], true
	}
	return candidates[idx], true
}

// Naming holds the human-readable names of a resource. It is embedded by
// the data model types that implement [Named].
type Naming struct {
	names      LiteralSet
	shortNames LiteralSet
}

// AddName records a name literal.
func (n *Naming) AddName(l rdfutil.Literal) { n.names.Add(l) }

// AddShortName records a short name literal.
func (n *Naming) AddShortName(l rdfutil.Literal) { n.shortNames.Add(l) }

// Names returns every name literal, one per language at most by convention.
func (n Naming) Names() []rdfutil.Literal { return n.names.All() }

// ShortNames returns every short name literal.
func (n Naming) ShortNames() []rdfutil.Literal { return n.shortNames.All() }

// Name returns the name best matching prefs.
func (n Naming) Name(prefs ...language.Tag) (rdfutil.Literal, bool) {
	return n.names.Best(prefs...)
}

// ShortName returns the short name best matching prefs, falling back to
// the name.
func (n Naming) ShortName(prefs ...language.Tag) (rdfutil.Literal, bool) {
	if l, ok := n.shortNames.Best(prefs...); ok {
		return l, true
	}
	return n.names.Best(prefs...)
}

// Documenting holds embedded documentation literals. It is embedded by the
// data model types that implement [Documented].
type Documenting struct {
	docs LiteralSet
}

// AddDocumentation records a documentation literal. LV2 expects XHTML Basic
// fragments, but the text is stored as is.
func (d *Documenting) AddDocumentation(l rdfutil.Literal) { d.docs.Add(l) }

// Documentation returns every documentation literal.
func (d Documenting) Documentation() []rdfutil.Literal { return d.docs.All() }

// Doc returns the documentation best matching prefs.
func (d Documenting) Doc(prefs ...language.Tag) (rdfutil.Literal, bool) {
	return d.docs.Best(prefs...)
}
