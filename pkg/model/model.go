// Package model holds typed representations of the resources described in
// an LV2 bundle: plugins, their ports, projects and dynamic manifest
// generators.
//
// Values are plain data. They are filled in by a loader (see package
// bundle) or by hand, and are safe for concurrent reads once built.
// Derived queries consult the implication tables, so a plugin declared as
// a Reverb reports Delay and Simulator among its types, and a gain port
// reports decibels among its units.
//
// Terms from non-standard extensions are preserved as [Unknown] values in
// [TermSet] fields instead of being dropped.
package model

import (
	"cmp"
	"fmt"

	"golang.org/x/text/language"

	"github.com/allen-marshall/lv2-se-bundle/pkg/enumgraph"
	"github.com/allen-marshall/lv2-se-bundle/pkg/implications"
	"github.com/allen-marshall/lv2-se-bundle/pkg/rdfutil"
	"github.com/allen-marshall/lv2-se-bundle/pkg/vocab"
)

// Named is implemented by resources with human-readable names.
type Named interface {
	Names() []rdfutil.Literal
	ShortNames() []rdfutil.Literal
	Name(prefs ...language.Tag) (rdfutil.Literal, bool)
}

// Documented is implemented by resources with embedded documentation.
type Documented interface {
	Documentation() []rdfutil.Literal
}

// Requirer is implemented by resources that require or support host
// features and options.
type Requirer interface {
	RequiredFeatures() TermSet[vocab.HostFeature]
	OptionalFeatures() TermSet[vocab.HostFeature]
	RequiredOptions() TermSet[vocab.Option]
	OptionalOptions() TermSet[vocab.Option]
	RequiresFeature(vocab.HostFeature) bool
	SupportsFeature(vocab.HostFeature) bool
}

// Provider is implemented by resources that provide extension interfaces.
type Provider interface {
	ExtensionData() TermSet[vocab.ExtensionData]
	HasExtensionData(vocab.ExtensionData) bool
}

// ResourceVersion is an LV2 minor/micro version pair. Versions with an odd
// component, or with minor version zero, are development versions.
type ResourceVersion struct {
	Minor uint64
	Micro uint64
}

// IsStable reports whether v denotes a stable release.
func (v ResourceVersion) IsStable() bool {
	return v.Minor != 0 && v.Minor%2 == 0 && v.Micro%2 == 0
}

// Compare orders versions by minor, then micro.
func (v ResourceVersion) Compare(o ResourceVersion) int {
	return cmp.Or(cmp.Compare(v.Minor, o.Minor), cmp.Compare(v.Micro, o.Micro))
}

func (v ResourceVersion) String() string { return fmt.Sprintf("%d.%d", v.Minor, v.Micro) }

// PluginInfo describes one LV2 plugin.
type PluginInfo struct {
	Naming
	Documenting
	Requirements
	Provision

	IRI    rdfutil.IRI
	Binary rdfutil.IRI    // shared library; zero if not specified
	Symbol rdfutil.Symbol // zero if not specified

	// DeclaredTypes are the classes stated in the bundle. See Types for the
	// full set including implied classes.
	DeclaredTypes TermSet[vocab.PluginType]

	Version ResourceVersion

	// Latency is the plugin's fixed latency in frames, if declared.
	Latency *uint64

	// Enabled and FreeWheeling are runtime states that bundles rarely set.
	Enabled      *bool
	FreeWheeling *bool

	Project rdfutil.IRI // zero if not specified
	Ports   []PortInfo  // ordered by index
}

// Types returns every standard class the plugin belongs to, including
// classes implied by the declared ones.
func (p *PluginInfo) Types() enumgraph.Set[vocab.PluginType] {
	return implications.PluginTypesImpliedBy(p.DeclaredTypes.Known())
}

// HasType reports whether the plugin belongs to t, directly or by
// implication.
func (p *PluginInfo) HasType(t vocab.PluginType) bool { return p.Types().Contains(t) }

// Port returns the port with the given symbol.
func (p *PluginInfo) Port(symbol string) (*PortInfo, bool) {
	for i := range p.Ports {
		if p.Ports[i].Symbol.String() == symbol {
			return &p.Ports[i], true
		}
	}
	return nil, false
}

// PortInfo describes one port of a plugin.
type PortInfo struct {
	Naming
	Documenting

	Index  uint32
	Symbol rdfutil.Symbol
	Types  TermSet[vocab.PortType]

	// Default, Minimum and Maximum are zero literals when not specified.
	Default rdfutil.Literal
	Minimum rdfutil.Literal
	Maximum rdfutil.Literal

	Designations TermSet[vocab.PortDesignation]
	Channels     enumgraph.Set[vocab.PortChannel]
	Properties   TermSet[vocab.PortProperty]

	// DeclaredUnits are the units stated in the bundle. See Units for the
	// full set including units implied by designations.
	DeclaredUnits TermSet[vocab.Unit]
}

// Units returns the standard units of the port, including units implied by
// its designations.
func (p *PortInfo) Units() enumgraph.Set[vocab.Unit] {
	return p.DeclaredUnits.Known().Union(implications.UnitsImpliedByDesignations(p.Designations.Known()))
}

// IsInput reports whether the port is an input port.
func (p *PortInfo) IsInput() bool { return p.Types.Contains(vocab.InputPort) }

// IsOutput reports whether the port is an output port.
func (p *PortInfo) IsOutput() bool { return p.Types.Contains(vocab.OutputPort) }

// HasProperty reports whether the standard property pp applies.
func (p *PortInfo) HasProperty(pp vocab.PortProperty) bool { return p.Properties.Contains(pp) }

// ProjectInfo describes an lv2:Project grouping related plugins.
type ProjectInfo struct {
	Naming

	IRI    rdfutil.IRI    // zero for a blank-node project
	Symbol rdfutil.Symbol // zero if not specified
}

// DynManifestInfo describes a dynamic manifest generator.
type DynManifestInfo struct {
	IRI    rdfutil.IRI // zero if the generator is a blank node
	Binary rdfutil.IRI // relative to the bundle when not absolute
}

var (
	_ Named      = (*PluginInfo)(nil)
	_ Documented = (*PluginInfo)(nil)
	_ Requirer   = (*PluginInfo)(nil)
	_ Provider   = (*PluginInfo)(nil)
	_ Named      = (*PortInfo)(nil)
	_ Documented = (*PortInfo)(nil)
	_ Named      = (*ProjectInfo)(nil)
)
