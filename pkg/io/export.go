package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/allen-marshall/lv2-se-bundle/pkg/bundle"
	"github.com/allen-marshall/lv2-se-bundle/pkg/enumgraph"
	"github.com/allen-marshall/lv2-se-bundle/pkg/model"
	"github.com/allen-marshall/lv2-se-bundle/pkg/rdfutil"
	"github.com/allen-marshall/lv2-se-bundle/pkg/vocab"
)

// Document is the JSON form of a bundle.
type Document struct {
	Dir          string        `json:"dir"`
	Files        []string      `json:"files"`
	Plugins      []Plugin      `json:"plugins"`
	Projects     []Project     `json:"projects,omitempty"`
	DynManifests []DynManifest `json:"dyn_manifests,omitempty"`
}

// Literal is the JSON form of an RDF literal.
type Literal struct {
	Value    string `json:"value"`
	Lang     string `json:"lang,omitempty"`
	Datatype string `json:"datatype,omitempty"`
}

// Plugin is the JSON form of [model.PluginInfo].
type Plugin struct {
	IRI        string    `json:"iri"`
	Binary     string    `json:"binary,omitempty"`
	Symbol     string    `json:"symbol,omitempty"`
	Project    string    `json:"project,omitempty"`
	Names      []Literal `json:"names,omitempty"`
	ShortNames []Literal `json:"short_names,omitempty"`
	Docs       []Literal `json:"docs,omitempty"`

	Types        []string `json:"types,omitempty"`
	ImpliedTypes []string `json:"implied_types,omitempty"`

	Version      string  `json:"version,omitempty"`
	Latency      *uint64 `json:"latency,omitempty"`
	Enabled      *bool   `json:"enabled,omitempty"`
	FreeWheeling *bool   `json:"free_wheeling,omitempty"`

	RequiredFeatures []string `json:"required_features,omitempty"`
	OptionalFeatures []string `json:"optional_features,omitempty"`
	RequiredOptions  []string `json:"required_options,omitempty"`
	OptionalOptions  []string `json:"optional_options,omitempty"`
	ExtensionData    []string `json:"extension_data,omitempty"`

	Ports []Port `json:"ports"`
}

// Port is the JSON form of [model.PortInfo].
type Port struct {
	Index      uint32    `json:"index"`
	Symbol     string    `json:"symbol"`
	Types      []string  `json:"types,omitempty"`
	Names      []Literal `json:"names,omitempty"`
	ShortNames []Literal `json:"short_names,omitempty"`
	Docs       []Literal `json:"docs,omitempty"`

	Default *Literal `json:"default,omitempty"`
	Minimum *Literal `json:"minimum,omitempty"`
	Maximum *Literal `json:"maximum,omitempty"`

	Designations []string `json:"designations,omitempty"`
	Channels     []string `json:"channels,omitempty"`
	Properties   []string `json:"properties,omitempty"`
	Units        []string `json:"units,omitempty"`
}

// Project is the JSON form of [model.ProjectInfo].
type Project struct {
	IRI        string    `json:"iri,omitempty"`
	Symbol     string    `json:"symbol,omitempty"`
	Names      []Literal `json:"names,omitempty"`
	ShortNames []Literal `json:"short_names,omitempty"`
}

// DynManifest is the JSON form of [model.DynManifestInfo].
type DynManifest struct {
	IRI    string `json:"iri,omitempty"`
	Binary string `json:"binary"`
}

// FromBundle converts b to its JSON form.
func FromBundle(b *bundle.Bundle) Document {
	doc := Document{
		Dir:     b.Dir,
		Files:   b.Files,
		Plugins: make([]Plugin, len(b.Plugins)),
	}
	for i := range b.Plugins {
		doc.Plugins[i] = fromPlugin(&b.Plugins[i])
	}
	for _, p := range b.Projects {
		doc.Projects = append(doc.Projects, Project{
			IRI:        p.IRI.String(),
			Symbol:     p.Symbol.String(),
			Names:      literals(p.Names()),
			ShortNames: literals(p.ShortNames()),
		})
	}
	for _, d := range b.DynManifests {
		doc.DynManifests = append(doc.DynManifests, DynManifest{IRI: d.IRI.String(), Binary: d.Binary.String()})
	}
	return doc
}

func fromPlugin(p *model.PluginInfo) Plugin {
	out := Plugin{
		IRI:        p.IRI.String(),
		Binary:     p.Binary.String(),
		Symbol:     p.Symbol.String(),
		Project:    p.Project.String(),
		Names:      literals(p.Names()),
		ShortNames: literals(p.ShortNames()),
		Docs:       literals(p.Documentation()),

		Types:        iris(p.DeclaredTypes.IRIs()),
		ImpliedTypes: setIRIs(p.Types().Difference(p.DeclaredTypes.Known())),

		Latency:      p.Latency,
		Enabled:      p.Enabled,
		FreeWheeling: p.FreeWheeling,

		RequiredFeatures: iris(p.RequiredFeatures().IRIs()),
		OptionalFeatures: iris(p.OptionalFeatures().IRIs()),
		RequiredOptions:  iris(p.RequiredOptions().IRIs()),
		OptionalOptions:  iris(p.OptionalOptions().IRIs()),
		ExtensionData:    iris(p.ExtensionData().IRIs()),

		Ports: make([]Port, len(p.Ports)),
	}
	if p.Version != (model.ResourceVersion{}) {
		out.Version = p.Version.String()
	}
	for i := range p.Ports {
		out.Ports[i] = fromPort(&p.Ports[i])
	}
	return out
}

func fromPort(p *model.PortInfo) Port {
	return Port{
		Index:      p.Index,
		Symbol:     p.Symbol.String(),
		Types:      iris(p.Types.IRIs()),
		Names:      literals(p.Names()),
		ShortNames: literals(p.ShortNames()),
		Docs:       literals(p.Documentation()),

		Default: optionalLiteral(p.Default),
		Minimum: optionalLiteral(p.Minimum),
		Maximum: optionalLiteral(p.Maximum),

		Designations: iris(p.Designations.IRIs()),
		Channels:     setIRIs(p.Channels),
		Properties:   iris(p.Properties.IRIs()),
		Units:        iris(p.DeclaredUnits.IRIs()),
	}
}

func fromLiteral(l rdfutil.Literal) Literal {
	out := Literal{Value: l.Value()}
	switch {
	case l.HasLang():
		out.Lang = l.Lang().String()
	case l.Datatype().String() != vocab.XSDString:
		out.Datatype = l.Datatype().String()
	}
	return out
}

func optionalLiteral(l rdfutil.Literal) *Literal {
	if l.IsZero() {
		return nil
	}
	out := fromLiteral(l)
	return &out
}

func literals(ls []rdfutil.Literal) []Literal {
	if len(ls) == 0 {
		return nil
	}
	out := make([]Literal, len(ls))
	for i, l := range ls {
		out[i] = fromLiteral(l)
	}
	return out
}

func iris(is []rdfutil.IRI) []string {
	if len(is) == 0 {
		return nil
	}
	out := make([]string, len(is))
	for i, iri := range is {
		out[i] = iri.String()
	}
	return out
}

func setIRIs[T vocab.Term](s enumgraph.Set[T]) []string {
	var out []string
	for t := range s.All() {
		out = append(out, t.IRI())
	}
	return out
}

// WriteJSON encodes b as indented JSON and writes it to w.
func WriteJSON(b *bundle.Bundle, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromBundle(b)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes b to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(b *bundle.Bundle, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return WriteJSON(b, f)
}
