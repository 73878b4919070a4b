// Package implications holds the LV2 rules by which one declared term
// implies others: a plugin declared as a Reverb is also a Delay and a
// Simulator, and a port designated as a gain is measured in decibels.
//
// The class tables are stored as transitively closed [enumgraph.DiGraph]
// values. They are built on first use and never modified afterwards, so
// they may be read from any number of goroutines.
package implications

import (
	"sync"

	"github.com/allen-marshall/lv2-se-bundle/pkg/enumgraph"
	"github.com/allen-marshall/lv2-se-bundle/pkg/vocab"
)

type pe = enumgraph.Edge[vocab.PluginType]

// pluginTypeEdges lists subclass→superclass pairs between the standard
// plugin classes.
var pluginTypeEdges = []pe{
	{From: vocab.ReverbPlugin, To: vocab.DelayPlugin},
	{From: vocab.ReverbPlugin, To: vocab.SimulatorPlugin},
	{From: vocab.WaveshaperPlugin, To: vocab.DistortionPlugin},

	{From: vocab.AmplifierPlugin, To: vocab.DynamicsPlugin},
	{From: vocab.CompressorPlugin, To: vocab.DynamicsPlugin},
	{From: vocab.EnvelopePlugin, To: vocab.DynamicsPlugin},
	{From: vocab.ExpanderPlugin, To: vocab.DynamicsPlugin},
	{From: vocab.GatePlugin, To: vocab.DynamicsPlugin},
	{From: vocab.LimiterPlugin, To: vocab.DynamicsPlugin},

	{From: vocab.AllpassPlugin, To: vocab.FilterPlugin},
	{From: vocab.BandpassPlugin, To: vocab.FilterPlugin},
	{From: vocab.CombPlugin, To: vocab.FilterPlugin},
	{From: vocab.EQPlugin, To: vocab.FilterPlugin},
	{From: vocab.MultiEQPlugin, To: vocab.EQPlugin},
	{From: vocab.ParaEQPlugin, To: vocab.EQPlugin},
	{From: vocab.HighpassPlugin, To: vocab.FilterPlugin},
	{From: vocab.LowpassPlugin, To: vocab.FilterPlugin},

	{From: vocab.ConstantPlugin, To: vocab.GeneratorPlugin},
	{From: vocab.InstrumentPlugin, To: vocab.GeneratorPlugin},
	{From: vocab.OscillatorPlugin, To: vocab.GeneratorPlugin},

	{From: vocab.ChorusPlugin, To: vocab.ModulatorPlugin},
	{From: vocab.FlangerPlugin, To: vocab.ModulatorPlugin},
	{From: vocab.PhaserPlugin, To: vocab.ModulatorPlugin},

	{From: vocab.PitchPlugin, To: vocab.SpectralPlugin},

	{From: vocab.AnalyserPlugin, To: vocab.UtilityPlugin},
	{From: vocab.ConverterPlugin, To: vocab.UtilityPlugin},
	{From: vocab.FunctionPlugin, To: vocab.UtilityPlugin},
	{From: vocab.MixerPlugin, To: vocab.UtilityPlugin},
}

type ae = enumgraph.Edge[vocab.AtomType]

// atomTypeEdges lists subclass→superclass pairs between the standard atom
// classes. Classes with no more specific parent point at Atom.
var atomTypeEdges = []ae{
	{From: vocab.AtomBool, To: vocab.Atom},
	{From: vocab.AtomChunk, To: vocab.Atom},
	{From: vocab.AtomLiteral, To: vocab.Atom},
	{From: vocab.AtomNumber, To: vocab.Atom},
	{From: vocab.AtomDouble, To: vocab.AtomNumber},
	{From: vocab.AtomFloat, To: vocab.AtomNumber},
	{From: vocab.AtomInt, To: vocab.AtomNumber},
	{From: vocab.AtomLong, To: vocab.AtomNumber},
	{From: vocab.AtomObject, To: vocab.Atom},
	{From: vocab.AtomProperty, To: vocab.Atom},
	{From: vocab.AtomSequence, To: vocab.Atom},
	{From: vocab.AtomString, To: vocab.Atom},
	{From: vocab.AtomURI, To: vocab.AtomString},
	{From: vocab.AtomPath, To: vocab.AtomURI},
	{From: vocab.AtomTuple, To: vocab.Atom},
	{From: vocab.AtomURID, To: vocab.Atom},
	{From: vocab.AtomVector, To: vocab.Atom},
	{From: vocab.AtomSound, To: vocab.AtomVector},

	{From: vocab.MidiEvent, To: vocab.Atom},
	{From: vocab.MidiSystemMessage, To: vocab.MidiEvent},
	{From: vocab.MidiSystemCommon, To: vocab.MidiSystemMessage},
	{From: vocab.MidiQuarterFrame, To: vocab.MidiSystemCommon},
	{From: vocab.MidiSongPosition, To: vocab.MidiSystemCommon},
	{From: vocab.MidiSongSelect, To: vocab.MidiSystemCommon},
	{From: vocab.MidiTuneRequest, To: vocab.MidiSystemCommon},
	{From: vocab.MidiSystemExclusive, To: vocab.MidiSystemMessage},
	{From: vocab.MidiSystemRealtime, To: vocab.MidiSystemMessage},
	{From: vocab.MidiActiveSense, To: vocab.MidiSystemRealtime},
	{From: vocab.MidiClock, To: vocab.MidiSystemRealtime},
	{From: vocab.MidiContinue, To: vocab.MidiSystemRealtime},
	{From: vocab.MidiReset, To: vocab.MidiSystemRealtime},
	{From: vocab.MidiStart, To: vocab.MidiSystemRealtime},
	{From: vocab.MidiStop, To: vocab.MidiSystemRealtime},
	{From: vocab.MidiVoiceMessage, To: vocab.MidiEvent},
	{From: vocab.MidiAftertouch, To: vocab.MidiVoiceMessage},
	{From: vocab.MidiBender, To: vocab.MidiVoiceMessage},
	{From: vocab.MidiChannelPressure, To: vocab.MidiVoiceMessage},
	{From: vocab.MidiController, To: vocab.MidiVoiceMessage},
	{From: vocab.MidiNoteOff, To: vocab.MidiVoiceMessage},
	{From: vocab.MidiNoteOn, To: vocab.MidiVoiceMessage},
	{From: vocab.MidiProgramChange, To: vocab.MidiVoiceMessage},
}

var (
	pluginTypes = sync.OnceValue(func() enumgraph.DiGraph[vocab.PluginType] {
		return enumgraph.FromEdges(pluginTypeEdges...).TransitiveClosure()
	})
	atomTypes = sync.OnceValue(func() enumgraph.DiGraph[vocab.AtomType] {
		return enumgraph.FromEdges(atomTypeEdges...).TransitiveClosure()
	})
	unitsByDesignation = sync.OnceValue(func() map[vocab.PortDesignation]enumgraph.Set[vocab.Unit] {
		return map[vocab.PortDesignation]enumgraph.Set[vocab.Unit]{
			vocab.Gain: enumgraph.SetOf(vocab.Decibel),
		}
	})
)

// PluginTypes returns the closed implication graph over plugin classes:
// an edge x→y means a plugin of class x is also of class y. Every class
// implies itself.
func PluginTypes() enumgraph.DiGraph[vocab.PluginType] { return pluginTypes() }

// PluginTypeEdges returns the direct subclass→superclass pairs the plugin
// class graph is built from.
func PluginTypeEdges() []enumgraph.Edge[vocab.PluginType] {
	return append([]enumgraph.Edge[vocab.PluginType](nil), pluginTypeEdges...)
}

// PluginTypesImpliedBy returns every plugin class a plugin belongs to when
// it is declared with the classes in explicit. The result is a superset of
// explicit.
func PluginTypesImpliedBy(explicit enumgraph.Set[vocab.PluginType]) enumgraph.Set[vocab.PluginType] {
	return impliedBy(pluginTypes(), explicit)
}

// AtomTypes returns the closed implication graph over atom classes.
func AtomTypes() enumgraph.DiGraph[vocab.AtomType] { return atomTypes() }

// AtomTypeEdges returns the direct subclass→superclass pairs the atom class
// graph is built from.
func AtomTypeEdges() []enumgraph.Edge[vocab.AtomType] {
	return append([]enumgraph.Edge[vocab.AtomType](nil), atomTypeEdges...)
}

// AtomTypesImpliedBy returns every atom class implied by the classes in
// explicit, including explicit itself.
func AtomTypesImpliedBy(explicit enumgraph.Set[vocab.AtomType]) enumgraph.Set[vocab.AtomType] {
	return impliedBy(atomTypes(), explicit)
}

// UnitsImpliedByDesignations returns the units a port must use because of
// its designations. The result is empty when no designation fixes a unit.
func UnitsImpliedByDesignations(designations enumgraph.Set[vocab.PortDesignation]) enumgraph.Set[vocab.Unit] {
	var out enumgraph.Set[vocab.Unit]
	for d, u := range unitsByDesignation() {
		if designations.Contains(d) {
			out = out.Union(u)
		}
	}
	return out
}

// impliedBy reads one row of a closed graph per member. Closure rows already
// contain their own node, so the union covers explicit.
func impliedBy[T enumgraph.Enum](closure enumgraph.DiGraph[T], explicit enumgraph.Set[T]) enumgraph.Set[T] {
	var out enumgraph.Set[T]
	for t := range explicit.All() {
		out = out.Union(closure.AdjacentNodes(t))
	}
	return out
}
