// Package rdfutil provides validated RDF value types: IRIs, language tags,
// literals and LV2 symbols.
//
// Each type is a small comparable value whose constructor enforces its
// invariants, so holders of a value never need to re-validate it. Values can
// be used as map keys and sorted with their Compare functions.
package rdfutil

import (
	"cmp"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/geoknoesis/rdf-go/rdf"
	"golang.org/x/text/language"

	"github.com/allen-marshall/lv2-se-bundle/pkg/errors"
	"github.com/allen-marshall/lv2-se-bundle/pkg/vocab"
)

// IRI is a validated IRI. Two IRIs are equal only if their text is equal.
type IRI struct{ s string }

// ParseIRI validates s as an IRI.
func ParseIRI(s string) (IRI, error) {
	if err := rdf.ValidateIRI(s); err != nil {
		return IRI{}, errors.Wrap(errors.ErrCodeInvalidIRI, err, "invalid IRI %q", s)
	}
	return IRI{s: s}, nil
}

// MustIRI is like ParseIRI but panics on invalid input. It is meant for
// IRIs fixed at compile time.
func MustIRI(s string) IRI {
	i, err := ParseIRI(s)
	if err != nil {
		panic(err)
	}
	return i
}

func (i IRI) String() string { return i.s }

// IsZero reports whether i was never set.
func (i IRI) IsZero() bool { return i.s == "" }

// Compare orders IRIs by their text.
func (i IRI) Compare(o IRI) int { return cmp.Compare(i.s, o.s) }

// LangTag is a BCP 47 language tag in canonical form, so equivalent tags
// such as "EN-us" and "en-US" compare equal.
type LangTag struct{ s string }

// ParseLangTag validates and canonicalizes s.
func ParseLangTag(s string) (LangTag, error) {
	t, err := language.Parse(s)
	if err != nil {
		return LangTag{}, errors.Wrap(errors.ErrCodeInvalidLangTag, err, "invalid language tag %q", s)
	}
	return LangTag{s: t.String()}, nil
}

func (t LangTag) String() string { return t.s }

// IsZero reports whether t was never set.
func (t LangTag) IsZero() bool { return t.s == "" }

// Tag returns t as a [language.Tag] for matching.
func (t LangTag) Tag() language.Tag {
	if t.s == "" {
		return language.Und
	}
	return language.Make(t.s)
}

var (
	langStringType = IRI{s: vocab.RDFLangString}
	stringType     = IRI{s: vocab.XSDString}
)

// Literal is an RDF literal. A literal has a language tag if and only if
// its datatype is rdf:langString; literals without a tag or explicit
// datatype are xsd:string.
//
// Equality is lexical: "0" and "0.0" are different literals even when both
// are typed as numbers.
type Literal struct {
	value    string
	datatype IRI
	lang     LangTag
}

// NewLiteral returns a plain xsd:string literal.
func NewLiteral(value string) Literal {
	return Literal{value: value, datatype: stringType}
}

// NewLangLiteral returns a language-tagged literal.
func NewLangLiteral(value string, lang LangTag) Literal {
	return Literal{value: value, datatype: langStringType, lang: lang}
}

// NewTypedLiteral returns a literal with an explicit datatype. It fails for
// rdf:langString, which requires a language tag.
func NewTypedLiteral(value string, datatype IRI) (Literal, error) {
	if datatype == langStringType {
		return Literal{}, errors.New(errors.ErrCodeInvalidLiteral, "datatype %s requires a language tag", datatype)
	}
	return Literal{value: value, datatype: datatype}, nil
}

// LiteralFromRDF converts a parsed literal, validating its language tag and
// datatype.
func LiteralFromRDF(l rdf.Literal) (Literal, error) {
	if l.Lang != "" {
		tag, err := ParseLangTag(l.Lang)
		if err != nil {
			return Literal{}, err
		}
		return NewLangLiteral(l.Lexical, tag), nil
	}
	if l.Datatype.Value == "" {
		return NewLiteral(l.Lexical), nil
	}
	dt, err := ParseIRI(l.Datatype.Value)
	if err != nil {
		return Literal{}, err
	}
	return NewTypedLiteral(l.Lexical, dt)
}

func (l Literal) Value() string { return l.value }
func (l Literal) Datatype() IRI { return l.datatype }
func (l Literal) Lang() LangTag { return l.lang }
func (l Literal) HasLang() bool { return !l.lang.IsZero() }
func (l Literal) IsZero() bool  { return l == Literal{} }

func (l Literal) String() string {
	switch {
	case l.HasLang():
		return strconv.Quote(l.value) + "@" + l.lang.s
	case l.datatype == stringType:
		return strconv.Quote(l.value)
	default:
		return strconv.Quote(l.value) + "^^<" + l.datatype.s + ">"
	}
}

// decimalPattern is the xsd:double lexical space without the special values.
var decimalPattern = regexp.MustCompile(`^[+-]?([0-9]+(\.[0-9]*)?|\.[0-9]+)([eE][+-]?[0-9]+)?$`)

// Float parses the literal as a number. Integer, decimal and double
// lexical forms are all accepted, including INF, -INF and NaN. Go-only
// spellings such as "inf" or hex floats are rejected.
func (l Literal) Float() (float64, error) {
	v := strings.TrimSpace(l.value)
	switch v {
	case "INF", "+INF":
		return math.Inf(1), nil
	case "-INF":
		return math.Inf(-1), nil
	case "NaN":
		return math.NaN(), nil
	}
	if !decimalPattern.MatchString(v) {
		return 0, errors.New(errors.ErrCodeInvalidLiteral, "literal %s is not a number", l)
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidLiteral, err, "literal %s is not a number", l)
	}
	return f, nil
}

// Int parses the literal as a non-fractional integer.
func (l Literal) Int() (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(l.value), 10, 64)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidLiteral, err, "literal %s is not an integer", l)
	}
	return n, nil
}

// Bool parses the literal as an xsd:boolean ("true", "false", "1", "0").
func (l Literal) Bool() (bool, error) {
	switch strings.TrimSpace(l.value) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	}
	return false, errors.New(errors.ErrCodeInvalidLiteral, "literal %s is not a boolean", l)
}

// CompareLiterals orders literals by value, then datatype, then language
// tag. The order has no meaning beyond making output deterministic.
func CompareLiterals(a, b Literal) int {
	return cmp.Or(
		cmp.Compare(a.value, b.value),
		a.datatype.Compare(b.datatype),
		cmp.Compare(a.lang.s, b.lang.s),
	)
}

// Symbol is an LV2 symbol: an identifier of letters, digits and
// underscores that does not start with a digit.
type Symbol struct{ s string }

// ParseSymbol validates s as an LV2 symbol.
func ParseSymbol(s string) (Symbol, error) {
	if err := errors.ValidateSymbol(s); err != nil {
		return Symbol{}, err
	}
	return Symbol{s: s}, nil
}

func (s Symbol) String() string { return s.s }

// IsZero reports whether s was never set.
func (s Symbol) IsZero() bool { return s.s == "" }
