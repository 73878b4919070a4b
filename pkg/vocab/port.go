package vocab

// PortType is a standard LV2 port class. InputPort and OutputPort are not
// mutually exclusive.
type PortType uint8

const (
	InputPort PortType = iota
	OutputPort
	AudioPort
	CVPort
	ControlPort
	AtomPort
	MorphPort
	AutoMorphPort
)

var portTypes = newTable[PortType]("PortType",
	entry{"Input", NsLV2 + "InputPort"},
	entry{"Output", NsLV2 + "OutputPort"},
	entry{"Audio", NsLV2 + "AudioPort"},
	entry{"CV", NsLV2 + "CVPort"},
	entry{"Control", NsLV2 + "ControlPort"},
	entry{"Atom", NsAtom + "AtomPort"},
	entry{"Morph", NsMorph + "MorphPort"},
	entry{"AutoMorph", NsMorph + "AutoMorphPort"},
)

func (PortType) Cardinality() int                { return portTypes.len() }
func (t PortType) String() string                { return portTypes.name(t) }
func (t PortType) IRI() string                   { return portTypes.iri(t) }
func (PortType) lookup(iri string) (uint8, bool) { return portTypes.lookup(iri) }

// ParsePortType returns the port class identified by iri.
func ParsePortType(iri string) (PortType, bool) { return portTypes.parse(iri) }

// PortProperty is a standard property flag that can apply to a port.
type PortProperty uint8

const (
	ConnectionOptional PortProperty = iota
	Enumeration
	IntegerOnly
	SideChain
	ReportsLatency
	BoundsRelativeToSampleRate
	Toggled
	CausesArtifacts
	ContinuousCV
	DiscreteCV
	Expensive
	HasStrictBounds
	Logarithmic
	NotAutomatic
	NotOnGUI
	Trigger
)

var portProperties = newTable[PortProperty]("PortProperty",
	entry{"ConnectionOptional", NsLV2 + "connectionOptional"},
	entry{"Enumeration", NsLV2 + "enumeration"},
	entry{"IntegerOnly", NsLV2 + "integer"},
	entry{"SideChain", NsLV2 + "isSideChain"},
	entry{"ReportsLatency", NsLV2 + "reportsLatency"},
	entry{"BoundsRelativeToSampleRate", NsLV2 + "sampleRate"},
	entry{"Toggled", NsLV2 + "toggled"},
	entry{"CausesArtifacts", NsPortProps + "causesArtifacts"},
	entry{"ContinuousCV", NsPortProps + "continuousCV"},
	entry{"DiscreteCV", NsPortProps + "discreteCV"},
	entry{"Expensive", NsPortProps + "expensive"},
	entry{"HasStrictBounds", NsPortProps + "hasStrictBounds"},
	entry{"Logarithmic", NsPortProps + "logarithmic"},
	entry{"NotAutomatic", NsPortProps + "notAutomatic"},
	entry{"NotOnGUI", NsPortProps + "notOnGUI"},
	entry{"Trigger", NsPortProps + "trigger"},
)

func (PortProperty) Cardinality() int                { return portProperties.len() }
func (p PortProperty) String() string                { return portProperties.name(p) }
func (p PortProperty) IRI() string                   { return portProperties.iri(p) }
func (PortProperty) lookup(iri string) (uint8, bool) { return portProperties.lookup(iri) }

// ParsePortProperty returns the port property identified by iri.
func ParsePortProperty(iri string) (PortProperty, bool) { return portProperties.parse(iri) }

// PortDesignation is a standard parameter designation for a port. Channel
// designations are separate; see [PortChannel].
type PortDesignation uint8

const (
	Amplitude PortDesignation = iota
	Attack
	Bypass
	CutoffFrequency
	Decay
	DelayTime
	DryLevel
	Frequency
	Gain
	Hold
	PulseWidth
	CompressionRatio
	Release
	Resonance
	SampleRate
	Sustain
	Threshold
	Waveform
	WetDryRatio
	WetLevel
)

var portDesignations = newTable[PortDesignation]("PortDesignation",
	entry{"Amplitude", NsParameters + "amplitude"},
	entry{"Attack", NsParameters + "attack"},
	entry{"Bypass", NsParameters + "bypass"},
	entry{"CutoffFrequency", NsParameters + "cutoffFrequency"},
	entry{"Decay", NsParameters + "decay"},
	entry{"Delay", NsParameters + "delay"},
	entry{"DryLevel", NsParameters + "dryLevel"},
	entry{"Frequency", NsParameters + "frequency"},
	entry{"Gain", NsParameters + "gain"},
	entry{"Hold", NsParameters + "hold"},
	entry{"PulseWidth", NsParameters + "pulseWidth"},
	entry{"CompressionRatio", NsParameters + "ratio"},
	entry{"Release", NsParameters + "release"},
	entry{"Resonance", NsParameters + "resonance"},
	entry{"SampleRate", NsParameters + "sampleRate"},
	entry{"Sustain", NsParameters + "sustain"},
	entry{"Threshold", NsParameters + "threshold"},
	entry{"Waveform", NsParameters + "waveform"},
	entry{"WetDryRatio", NsParameters + "wetDryRatio"},
	entry{"WetLevel", NsParameters + "wetLevel"},
)

func (PortDesignation) Cardinality() int                { return portDesignations.len() }
func (d PortDesignation) String() string                { return portDesignations.name(d) }
func (d PortDesignation) IRI() string                   { return portDesignations.iri(d) }
func (PortDesignation) lookup(iri string) (uint8, bool) { return portDesignations.lookup(iri) }

// ParsePortDesignation returns the designation identified by iri.
func ParsePortDesignation(iri string) (PortDesignation, bool) { return portDesignations.parse(iri) }

// PortChannel is a standard channel designation for a port.
type PortChannel uint8

const (
	ChannelControl PortChannel = iota
	ChannelCenter
	ChannelCenterLeft
	ChannelCenterRight
	ChannelLeft
	ChannelLowFrequencyEffects
	ChannelRearCenter
	ChannelRearLeft
	ChannelRearRight
	ChannelRight
	ChannelSide
	ChannelSideLeft
	ChannelSideRight
)

var portChannels = newTable[PortChannel]("PortChannel",
	entry{"Control", NsLV2 + "control"},
	entry{"Center", NsPortGroups + "center"},
	entry{"CenterLeft", NsPortGroups + "centerLeft"},
	entry{"CenterRight", NsPortGroups + "centerRight"},
	entry{"Left", NsPortGroups + "left"},
	entry{"LowFrequencyEffects", NsPortGroups + "lowFrequencyEffects"},
	entry{"RearCenter", NsPortGroups + "rearCenter"},
	entry{"RearLeft", NsPortGroups + "rearLeft"},
	entry{"RearRight", NsPortGroups + "rearRight"},
	entry{"Right", NsPortGroups + "right"},
	entry{"Side", NsPortGroups + "side"},
	entry{"SideLeft", NsPortGroups + "sideLeft"},
	entry{"SideRight", NsPortGroups + "sideRight"},
)

func (PortChannel) Cardinality() int                { return portChannels.len() }
func (c PortChannel) String() string                { return portChannels.name(c) }
func (c PortChannel) IRI() string                   { return portChannels.iri(c) }
func (PortChannel) lookup(iri string) (uint8, bool) { return portChannels.lookup(iri) }

// ParsePortChannel returns the channel designation identified by iri.
func ParsePortChannel(iri string) (PortChannel, bool) { return portChannels.parse(iri) }

// Unit is a measurement unit from the LV2 units extension.
type Unit uint8

const (
	Bar Unit = iota
	Beat
	BPM
	Cent
	Centimeter
	Coefficient
	Decibel
	Degree
	AudioFrame
	Hertz
	Inch
	Kilohertz
	Kilometer
	Meter
	Megahertz
	MIDINote
	Mile
	Minute
	Millimeter
	Millisecond
	Octave
	Percent
	Second
	Semitone12TET
)

var units = newTable[Unit]("Unit",
	entry{"Bar", NsUnits + "bar"},
	entry{"Beat", NsUnits + "beat"},
	entry{"BPM", NsUnits + "bpm"},
	entry{"Cent", NsUnits + "cent"},
	entry{"Centimeter", NsUnits + "cm"},
	entry{"Coefficient", NsUnits + "coef"},
	entry{"Decibel", NsUnits + "db"},
	entry{"Degree", NsUnits + "degree"},
	entry{"AudioFrame", NsUnits + "frame"},
	entry{"Hertz", NsUnits + "hz"},
	entry{"Inch", NsUnits + "inch"},
	entry{"Kilohertz", NsUnits + "khz"},
	entry{"Kilometer", NsUnits + "km"},
	entry{"Meter", NsUnits + "m"},
	entry{"Megahertz", NsUnits + "mhz"},
	entry{"MIDINote", NsUnits + "midiNote"},
	entry{"Mile", NsUnits + "mile"},
	entry{"Minute", NsUnits + "min"},
	entry{"Millimeter", NsUnits + "mm"},
	entry{"Millisecond", NsUnits + "ms"},
	entry{"Octave", NsUnits + "oct"},
	entry{"Percent", NsUnits + "pc"},
	entry{"Second", NsUnits + "s"},
	entry{"Semitone12TET", NsUnits + "semitone12TET"},
)

func (Unit) Cardinality() int                { return units.len() }
func (u Unit) String() string                { return units.name(u) }
func (u Unit) IRI() string                   { return units.iri(u) }
func (Unit) lookup(iri string) (uint8, bool) { return units.lookup(iri) }

// ParseUnit returns the unit identified by iri.
func ParseUnit(iri string) (Unit, bool) { return units.parse(iri) }
