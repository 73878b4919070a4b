package model

import (
	"github.com/allen-marshall/lv2-se-bundle/pkg/rdfutil"
	"github.com/allen-marshall/lv2-se-bundle/pkg/vocab"
)

// Requirements records which host features and options a plugin or UI
// requires and which it can use when available.
//
// A term is never both required and optional: requiring a term removes it
// from the optional set, and marking a required term optional is ignored.
type Requirements struct {
	requiredFeatures TermSet[vocab.HostFeature]
	optionalFeatures TermSet[vocab.HostFeature]
	requiredOptions  TermSet[vocab.Option]
	optionalOptions  TermSet[vocab.Option]
}

// RequireFeature marks the host feature iri as required.
func (r *Requirements) RequireFeature(iri rdfutil.IRI) {
	r.requiredFeatures.AddIRI(iri)
	r.optionalFeatures.RemoveIRI(iri)
}

// SupportFeature marks the host feature iri as optionally supported.
func (r *Requirements) SupportFeature(iri rdfutil.IRI) {
	if !r.requiredFeatures.ContainsIRI(iri) {
		r.optionalFeatures.AddIRI(iri)
	}
}

// RequireOption marks the option iri as required.
func (r *Requirements) RequireOption(iri rdfutil.IRI) {
	r.requiredOptions.AddIRI(iri)
	r.optionalOptions.RemoveIRI(iri)
}

// SupportOption marks the option iri as optionally supported.
func (r *Requirements) SupportOption(iri rdfutil.IRI) {
	if !r.requiredOptions.ContainsIRI(iri) {
		r.optionalOptions.AddIRI(iri)
	}
}

func (r Requirements) RequiredFeatures() TermSet[vocab.HostFeature] { return r.requiredFeatures }
func (r Requirements) OptionalFeatures() TermSet[vocab.HostFeature] { return r.optionalFeatures }
func (r Requirements) RequiredOptions() TermSet[vocab.Option]       { return r.requiredOptions }
func (r Requirements) OptionalOptions() TermSet[vocab.Option]       { return r.optionalOptions }

// SupportedFeatures returns required and optional features together.
func (r Requirements) SupportedFeatures() TermSet[vocab.HostFeature] {
	return r.requiredFeatures.Union(r.optionalFeatures)
}

// RequiresFeature reports whether f is required.
func (r Requirements) RequiresFeature(f vocab.HostFeature) bool {
	return r.requiredFeatures.Contains(f)
}

// SupportsFeature reports whether f is required or optionally supported.
func (r Requirements) SupportsFeature(f vocab.HostFeature) bool {
	return r.requiredFeatures.Contains(f) || r.optionalFeatures.Contains(f)
}

// Provision records the extension interfaces a plugin or UI provides
// through its extension_data callback.
type Provision struct {
	extensionData TermSet[vocab.ExtensionData]
}

// ProvideExtensionData records the interface iri as provided.
func (p *Provision) ProvideExtensionData(iri rdfutil.IRI) { p.extensionData.AddIRI(iri) }

func (p Provision) ExtensionData() TermSet[vocab.ExtensionData] { return p.extensionData }

// HasExtensionData reports whether the interface e is provided.
func (p Provision) HasExtensionData(e vocab.ExtensionData) bool {
	return p.extensionData.Contains(e)
}
