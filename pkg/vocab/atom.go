package vocab

// AtomType is a standard LV2 atom class, including the MIDI message classes
// from the midi extension.
type AtomType uint8

const (
	Atom AtomType = iota
	AtomBool
	AtomChunk
	AtomLiteral
	AtomNumber
	AtomDouble
	AtomFloat
	AtomInt
	AtomLong
	AtomObject
	AtomProperty
	AtomSequence
	AtomString
	AtomURI
	AtomPath
	AtomTuple
	AtomURID
	AtomVector
	AtomSound
	MidiEvent
	MidiSystemMessage
	MidiSystemCommon
	MidiQuarterFrame
	MidiSongPosition
	MidiSongSelect
	MidiTuneRequest
	MidiSystemExclusive
	MidiSystemRealtime
	MidiActiveSense
	MidiClock
	MidiContinue
	MidiReset
	MidiStart
	MidiStop
	MidiVoiceMessage
	MidiAftertouch
	MidiBender
	MidiChannelPressure
	MidiController
	MidiNoteOff
	MidiNoteOn
	MidiProgramChange
)

var atomTypes = newTable[AtomType]("AtomType",
	entry{"Atom", NsAtom + "Atom"},
	entry{"Bool", NsAtom + "Bool"},
	entry{"Chunk", NsAtom + "Chunk"},
	entry{"Literal", NsAtom + "Literal"},
	entry{"Number", NsAtom + "Number"},
	entry{"Double", NsAtom + "Double"},
	entry{"Float", NsAtom + "Float"},
	entry{"Int", NsAtom + "Int"},
	entry{"Long", NsAtom + "Long"},
	entry{"Object", NsAtom + "Object"},
	entry{"Property", NsAtom + "Property"},
	entry{"Sequence", NsAtom + "Sequence"},
	entry{"String", NsAtom + "String"},
	entry{"URI", NsAtom + "URI"},
	entry{"Path", NsAtom + "Path"},
	entry{"Tuple", NsAtom + "Tuple"},
	entry{"URID", NsAtom + "URID"},
	entry{"Vector", NsAtom + "Vector"},
	entry{"Sound", NsAtom + "Sound"},
	entry{"MidiEvent", NsMIDI + "MidiEvent"},
	entry{"MidiSystemMessage", NsMIDI + "SystemMessage"},
	entry{"MidiSystemCommon", NsMIDI + "SystemCommon"},
	entry{"MidiQuarterFrame", NsMIDI + "QuarterFrame"},
	entry{"MidiSongPosition", NsMIDI + "SongPosition"},
	entry{"MidiSongSelect", NsMIDI + "SongSelect"},
	entry{"MidiTuneRequest", NsMIDI + "TuneRequest"},
	entry{"MidiSystemExclusive", NsMIDI + "SystemExclusive"},
	entry{"MidiSystemRealtime", NsMIDI + "SystemRealtime"},
	entry{"MidiActiveSense", NsMIDI + "ActiveSense"},
	entry{"MidiClock", NsMIDI + "Clock"},
	entry{"MidiContinue", NsMIDI + "Continue"},
	entry{"MidiReset", NsMIDI + "Reset"},
	entry{"MidiStart", NsMIDI + "Start"},
	entry{"MidiStop", NsMIDI + "Stop"},
	entry{"MidiVoiceMessage", NsMIDI + "VoiceMessage"},
	entry{"MidiAftertouch", NsMIDI + "Aftertouch"},
	entry{"MidiBender", NsMIDI + "Bender"},
	entry{"MidiChannelPressure", NsMIDI + "ChannelPressure"},
	entry{"MidiController", NsMIDI + "Controller"},
	entry{"MidiNoteOff", NsMIDI + "NoteOff"},
	entry{"MidiNoteOn", NsMIDI + "NoteOn"},
	entry{"MidiProgramChange", NsMIDI + "ProgramChange"},
)

func (AtomType) Cardinality() int                { return atomTypes.len() }
func (t AtomType) String() string                { return atomTypes.name(t) }
func (t AtomType) IRI() string                   { return atomTypes.iri(t) }
func (AtomType) lookup(iri string) (uint8, bool) { return atomTypes.lookup(iri) }

// ParseAtomType returns the atom class identified by iri.
func ParseAtomType(iri string) (AtomType, bool) { return atomTypes.parse(iri) }

// Parents returns the direct superclasses of t. Atom is the root and has
// none; every class without a more specific parent descends from Atom.
func (t AtomType) Parents() []AtomType {
	switch t {
	case Atom:
		return nil
	case AtomDouble, AtomFloat, AtomInt, AtomLong:
		return []AtomType{AtomNumber}
	case AtomURI:
		return []AtomType{AtomString}
	case AtomPath:
		return []AtomType{AtomURI}
	case AtomSound:
		return []AtomType{AtomVector}
	case MidiSystemMessage, MidiVoiceMessage:
		return []AtomType{MidiEvent}
	case MidiSystemCommon, MidiSystemExclusive, MidiSystemRealtime:
		return []AtomType{MidiSystemMessage}
	case MidiQuarterFrame, MidiSongPosition, MidiSongSelect, MidiTuneRequest:
		return []AtomType{MidiSystemCommon}
	case MidiActiveSense, MidiClock, MidiContinue, MidiReset, MidiStart, MidiStop:
		return []AtomType{MidiSystemRealtime}
	case MidiAftertouch, MidiBender, MidiChannelPressure, MidiController,
		MidiNoteOff, MidiNoteOn, MidiProgramChange:
		return []AtomType{MidiVoiceMessage}
	}
	return []AtomType{Atom}
}
