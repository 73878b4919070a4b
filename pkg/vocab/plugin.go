package vocab

// PluginType is a standard LV2 plugin class. Non-standard plugin classes
// are kept as unknown IRIs by the data model.
//
// Ordinals carry no meaning beyond identity; a superclass is not guaranteed
// to sort before its subclasses.
type PluginType uint8

const (
	DelayPlugin PluginType = iota
	ReverbPlugin
	DistortionPlugin
	WaveshaperPlugin
	DynamicsPlugin
	AmplifierPlugin
	CompressorPlugin
	EnvelopePlugin
	ExpanderPlugin
	GatePlugin
	LimiterPlugin
	FilterPlugin
	AllpassPlugin
	BandpassPlugin
	CombPlugin
	EQPlugin
	MultiEQPlugin
	ParaEQPlugin
	HighpassPlugin
	LowpassPlugin
	GeneratorPlugin
	ConstantPlugin
	InstrumentPlugin
	OscillatorPlugin
	MIDIPlugin
	ModulatorPlugin
	ChorusPlugin
	FlangerPlugin
	PhaserPlugin
	SimulatorPlugin
	SpatialPlugin
	SpectralPlugin
	PitchPlugin
	UtilityPlugin
	AnalyserPlugin
	ConverterPlugin
	FunctionPlugin
	MixerPlugin
)

var pluginTypes = newTable[PluginType]("PluginType",
	entry{"Delay", NsLV2 + "DelayPlugin"},
	entry{"Reverb", NsLV2 + "ReverbPlugin"},
	entry{"Distortion", NsLV2 + "DistortionPlugin"},
	entry{"Waveshaper", NsLV2 + "WaveshaperPlugin"},
	entry{"Dynamics", NsLV2 + "DynamicsPlugin"},
	entry{"Amplifier", NsLV2 + "AmplifierPlugin"},
	entry{"Compressor", NsLV2 + "CompressorPlugin"},
	entry{"Envelope", NsLV2 + "EnvelopePlugin"},
	entry{"Expander", NsLV2 + "ExpanderPlugin"},
	entry{"Gate", NsLV2 + "GatePlugin"},
	entry{"Limiter", NsLV2 + "LimiterPlugin"},
	entry{"Filter", NsLV2 + "FilterPlugin"},
	entry{"Allpass", NsLV2 + "AllpassPlugin"},
	entry{"Bandpass", NsLV2 + "BandpassPlugin"},
	entry{"Comb", NsLV2 + "CombPlugin"},
	entry{"EQ", NsLV2 + "EQPlugin"},
	entry{"MultiEQ", NsLV2 + "MultiEQPlugin"},
	entry{"ParaEQ", NsLV2 + "ParaEQPlugin"},
	entry{"Highpass", NsLV2 + "HighpassPlugin"},
	entry{"Lowpass", NsLV2 + "LowpassPlugin"},
	entry{"Generator", NsLV2 + "GeneratorPlugin"},
	entry{"Constant", NsLV2 + "ConstantPlugin"},
	entry{"Instrument", NsLV2 + "InstrumentPlugin"},
	entry{"Oscillator", NsLV2 + "OscillatorPlugin"},
	entry{"MIDI", NsLV2 + "MIDIPlugin"},
	entry{"Modulator", NsLV2 + "ModulatorPlugin"},
	entry{"Chorus", NsLV2 + "ChorusPlugin"},
	entry{"Flanger", NsLV2 + "FlangerPlugin"},
	entry{"Phaser", NsLV2 + "PhaserPlugin"},
	entry{"Simulator", NsLV2 + "SimulatorPlugin"},
	entry{"Spatial", NsLV2 + "SpatialPlugin"},
	entry{"Spectral", NsLV2 + "SpectralPlugin"},
	entry{"Pitch", NsLV2 + "PitchPlugin"},
	entry{"Utility", NsLV2 + "UtilityPlugin"},
	entry{"Analyser", NsLV2 + "AnalyserPlugin"},
	entry{"Converter", NsLV2 + "ConverterPlugin"},
	entry{"Function", NsLV2 + "FunctionPlugin"},
	entry{"Mixer", NsLV2 + "MixerPlugin"},
)

func (PluginType) Cardinality() int                { return pluginTypes.len() }
func (t PluginType) String() string                { return pluginTypes.name(t) }
func (t PluginType) IRI() string                   { return pluginTypes.iri(t) }
func (PluginType) lookup(iri string) (uint8, bool) { return pluginTypes.lookup(iri) }

// ParsePluginType returns the plugin class identified by iri.
func ParsePluginType(iri string) (PluginType, bool) { return pluginTypes.parse(iri) }

// Parents returns the direct superclasses of t within the standard plugin
// classes. Top-level classes, whose only superclass is lv2:Plugin itself,
// return nil.
func (t PluginType) Parents() []PluginType {
	switch t {
	case ReverbPlugin:
		return []PluginType{DelayPlugin, SimulatorPlugin}
	case WaveshaperPlugin:
		return []PluginType{DistortionPlugin}
	case AmplifierPlugin, CompressorPlugin, EnvelopePlugin, ExpanderPlugin, GatePlugin, LimiterPlugin:
		return []PluginType{DynamicsPlugin}
	case AllpassPlugin, BandpassPlugin, CombPlugin, EQPlugin, HighpassPlugin, LowpassPlugin:
		return []PluginType{FilterPlugin}
	case MultiEQPlugin, ParaEQPlugin:
		return []PluginType{EQPlugin}
	case ConstantPlugin, InstrumentPlugin, OscillatorPlugin:
		return []PluginType{GeneratorPlugin}
	case ChorusPlugin, FlangerPlugin, PhaserPlugin:
		return []PluginType{ModulatorPlugin}
	case PitchPlugin:
		return []PluginType{SpectralPlugin}
	case AnalyserPlugin, ConverterPlugin, FunctionPlugin, MixerPlugin:
		return []PluginType{UtilityPlugin}
	}
	return nil
}
