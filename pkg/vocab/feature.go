package vocab

// HostFeature is a standard feature a host may provide to a plugin or UI.
// UI port protocols are listed separately as [UIPortProtocol].
type HostFeature uint8

const (
	HardRTCapable HostFeature = iota
	InPlaceBroken
	IsLive
	BoundedBlockLength
	CoarseBlockLength
	FixedBlockLength
	PowerOf2BlockLength
	Logging
	OptionsFeature
	StrictBounds
	ResizeBuffer
	LoadDefaultState
	MakePath
	MapPath
	ThreadSafeRestore
	FixedGUISize
	IdleInterfaceFeature
	NoUserResize
	GUIParent
	PortMap
	PortSubscribe
	ResizeGUI
	UITouch
	URIDMap
	URIDUnmap
	WorkSchedule
	ExtensionDataAccess
	InstanceAccess
)

var hostFeatures = newTable[HostFeature]("HostFeature",
	entry{"HardRTCapable", NsLV2 + "hardRTCapable"},
	entry{"InPlaceBroken", NsLV2 + "inPlaceBroken"},
	entry{"IsLive", NsLV2 + "isLive"},
	entry{"BoundedBlockLength", NsBufSize + "boundedBlockLength"},
	entry{"CoarseBlockLength", NsBufSize + "coarseBlockLength"},
	entry{"FixedBlockLength", NsBufSize + "fixedBlockLength"},
	entry{"PowerOf2BlockLength", NsBufSize + "powerOf2BlockLength"},
	entry{"Logging", NsLog + "log"},
	entry{"Options", NsOptions + "options"},
	entry{"StrictBounds", NsPortProps + "supportsStrictBounds"},
	entry{"ResizeBuffer", NsResizePort + "resize"},
	entry{"LoadDefaultState", NsState + "loadDefaultState"},
	entry{"MakePath", NsState + "makePath"},
	entry{"MapPath", NsState + "mapPath"},
	entry{"ThreadSafeRestore", NsState + "threadSafeRestore"},
	entry{"FixedGUISize", NsUI + "fixedSize"},
	entry{"IdleInterface", NsUI + "idleInterface"},
	entry{"NoUserResize", NsUI + "noUserResize"},
	entry{"GUIParent", NsUI + "parent"},
	entry{"PortMap", NsUI + "portMap"},
	entry{"PortSubscribe", NsUI + "portSubscribe"},
	entry{"ResizeGUI", NsUI + "resize"},
	entry{"UITouch", NsUI + "touch"},
	entry{"URIDMap", NsURID + "map"},
	entry{"URIDUnmap", NsURID + "unmap"},
	entry{"WorkSchedule", NsWorker + "schedule"},
	entry{"ExtensionDataAccess", NsDataAccess},
	entry{"InstanceAccess", NsInstanceAccess},
)

func (HostFeature) Cardinality() int                { return hostFeatures.len() }
func (f HostFeature) String() string                { return hostFeatures.name(f) }
func (f HostFeature) IRI() string                   { return hostFeatures.iri(f) }
func (HostFeature) lookup(iri string) (uint8, bool) { return hostFeatures.lookup(iri) }

// ParseHostFeature returns the host feature identified by iri.
func ParseHostFeature(iri string) (HostFeature, bool) { return hostFeatures.parse(iri) }

// UIPortProtocol is a standard protocol by which a UI and a plugin exchange
// port values.
type UIPortProtocol uint8

const (
	AtomTransfer UIPortProtocol = iota
	EventTransfer
	FloatProtocol
	PeakProtocol
)

var uiPortProtocols = newTable[UIPortProtocol]("UIPortProtocol",
	entry{"AtomTransfer", NsAtom + "atomTransfer"},
	entry{"EventTransfer", NsAtom + "eventTransfer"},
	entry{"Float", NsUI + "floatProtocol"},
	entry{"Peak", NsUI + "peakProtocol"},
)

func (UIPortProtocol) Cardinality() int                { return uiPortProtocols.len() }
func (p UIPortProtocol) String() string                { return uiPortProtocols.name(p) }
func (p UIPortProtocol) IRI() string                   { return uiPortProtocols.iri(p) }
func (UIPortProtocol) lookup(iri string) (uint8, bool) { return uiPortProtocols.lookup(iri) }

// ParseUIPortProtocol returns the port protocol identified by iri.
func ParseUIPortProtocol(iri string) (UIPortProtocol, bool) { return uiPortProtocols.parse(iri) }

// Option is a standard LV2 option a host may set.
type Option uint8

const (
	MaxBlockLength Option = iota
	MinBlockLength
	NominalBlockLength
	SequenceSize
)

var options = newTable[Option]("Option",
	entry{"MaxBlockLength", NsBufSize + "maxBlockLength"},
	entry{"MinBlockLength", NsBufSize + "minBlockLength"},
	entry{"NominalBlockLength", NsBufSize + "nominalBlockLength"},
	entry{"SequenceSize", NsBufSize + "sequenceSize"},
)

func (Option) Cardinality() int                { return options.len() }
func (o Option) String() string                { return options.name(o) }
func (o Option) IRI() string                   { return options.iri(o) }
func (Option) lookup(iri string) (uint8, bool) { return options.lookup(iri) }

// ParseOption returns the option identified by iri.
func ParseOption(iri string) (Option, bool) { return options.parse(iri) }

// ExtensionData is a standard extension interface a plugin or UI can
// provide.
type ExtensionData uint8

const (
	OptionsInterface ExtensionData = iota
	StateInterface
	IdleInterface
	ResizeInterface
	ShowInterface
	WorkerInterface
)

var extensionData = newTable[ExtensionData]("ExtensionData",
	entry{"Options", NsOptions + "interface"},
	entry{"State", NsState + "interface"},
	entry{"IdleInterface", NsUI + "idleInterface"},
	entry{"Resize", NsUI + "resize"},
	entry{"ShowInterface", NsUI + "showInterface"},
	entry{"Worker", NsWorker + "interface"},
)

func (ExtensionData) Cardinality() int                { return extensionData.len() }
func (e ExtensionData) String() string                { return extensionData.name(e) }
func (e ExtensionData) IRI() string                   { return extensionData.iri(e) }
func (ExtensionData) lookup(iri string) (uint8, bool) { return extensionData.lookup(iri) }

// ParseExtensionData returns the extension interface identified by iri.
func ParseExtensionData(iri string) (ExtensionData, bool) { return extensionData.parse(iri) }
