package bundle

import (
	"cmp"
	"fmt"
	"regexp"
	"slices"

	"github.com/geoknoesis/rdf-go/rdf"

	"github.com/allen-marshall/lv2-se-bundle/pkg/vocab"
)

// term is a comparable copy of an RDF term. Blank node IDs are already
// scoped to their file, so terms from different files can share a graph.
type term struct {
	kind     rdf.TermKind
	value    string // IRI, scoped blank node ID, or lexical form
	datatype string
	lang     string
}

func (t term) isIRI() bool   { return t.kind == rdf.TermIRI }
func (t term) isBlank() bool { return t.kind == rdf.TermBlankNode }

func (t term) isLiteral() bool { return t.kind == rdf.TermLiteral }

func (t term) literal() rdf.Literal {
	return rdf.Literal{Lexical: t.value, Datatype: rdf.IRI{Value: t.datatype}, Lang: t.lang}
}

func (t term) String() string {
	switch t.kind {
	case rdf.TermBlankNode:
		return "_:" + t.value
	case rdf.TermLiteral:
		return t.literal().String()
	default:
		return "<" + t.value + ">"
	}
}

func compareTerms(a, b term) int {
	return cmp.Or(
		cmp.Compare(a.kind, b.kind),
		cmp.Compare(a.value, b.value),
		cmp.Compare(a.datatype, b.datatype),
		cmp.Compare(a.lang, b.lang),
	)
}

type triple struct {
	s term
	p string
	o term
}

// graph indexes triples by subject and predicate. Objects keep the order in
// which they were first seen; duplicates are dropped.
type graph struct {
	out map[term]map[string][]term
	len int
}

func newGraph() *graph {
	return &graph{out: make(map[term]map[string][]term)}
}

func (g *graph) add(t triple) {
	preds := g.out[t.s]
	if preds == nil {
		preds = make(map[string][]term)
		g.out[t.s] = preds
	}
	if slices.Contains(preds[t.p], t.o) {
		return
	}
	preds[t.p] = append(preds[t.p], t.o)
	g.len++
}

func (g *graph) objects(s term, p string) []term {
	return g.out[s][p]
}

// first returns the smallest object of s and p, so single-valued properties
// resolve the same way regardless of file order.
func (g *graph) first(s term, p string) (term, bool) {
	objs := g.objects(s, p)
	if len(objs) == 0 {
		return term{}, false
	}
	return slices.MinFunc(objs, compareTerms), true
}

func (g *graph) hasType(s term, class string) bool {
	return slices.Contains(g.objects(s, vocab.RDFType), term{kind: rdf.TermIRI, value: class})
}

// subjectsOfType returns every subject typed as class, in term order.
func (g *graph) subjectsOfType(class string) []term {
	var out []term
	for s := range g.out {
		if g.hasType(s, class) {
			out = append(out, s)
		}
	}
	slices.SortFunc(out, compareTerms)
	return out
}

// anonymousLabel matches the labels the Turtle decoder assigns to [] nodes.
var anonymousLabel = regexp.MustCompile(`^b[0-9]+$`)

// blankScope turns parsed terms into graph terms. The Turtle decoder numbers
// anonymous nodes from b1 again in every statement, so their labels are
// qualified by a statement counter as well as the file. A statement's triples
// about its own subject come before the triples generated for its nested
// nodes, which lets a new statement be recognised when an IRI subject
// follows a blank one or replaces a different IRI subject.
type blankScope struct {
	file     int
	stmt     int
	lastIRI  string
	inNested bool
}

func (b *blankScope) triple(st rdf.Statement) triple {
	if st.S.Kind() == rdf.TermIRI {
		if v := st.S.String(); b.inNested || v != b.lastIRI {
			b.stmt++
			b.lastIRI = v
		}
		b.inNested = false
	} else {
		b.inNested = true
	}
	return triple{s: b.term(st.S), p: st.P.Value, o: b.term(st.O)}
}

func (b *blankScope) term(t rdf.Term) term {
	switch v := t.(type) {
	case rdf.IRI:
		return term{kind: rdf.TermIRI, value: v.Value}
	case rdf.BlankNode:
		if anonymousLabel.MatchString(v.ID) {
			return term{kind: rdf.TermBlankNode, value: fmt.Sprintf("f%d.s%d.%s", b.file, b.stmt, v.ID)}
		}
		return term{kind: rdf.TermBlankNode, value: fmt.Sprintf("f%d.%s", b.file, v.ID)}
	case rdf.Literal:
		return term{kind: rdf.TermLiteral, value: v.Lexical, datatype: v.Datatype.Value, lang: v.Lang}
	default:
		// Quoted triples carry no LV2 meaning; keep them opaque.
		return term{kind: t.Kind(), value: t.String()}
	}
}
