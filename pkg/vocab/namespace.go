package vocab

// Namespace IRIs used by LV2 bundle data.
const (
	NsRDF  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	NsRDFS = "http://www.w3.org/2000/01/rdf-schema#"
	NsXSD  = "http://www.w3.org/2001/XMLSchema#"
	NsDOAP = "http://usefulinc.com/ns/doap#"

	NsLV2            = "http://lv2plug.in/ns/lv2core#"
	NsAtom           = "http://lv2plug.in/ns/ext/atom#"
	NsBufSize        = "http://lv2plug.in/ns/ext/buf-size#"
	NsDataAccess     = "http://lv2plug.in/ns/ext/data-access"
	NsDynManifest    = "http://lv2plug.in/ns/ext/dynmanifest#"
	NsInstanceAccess = "http://lv2plug.in/ns/ext/instance-access"
	NsLog            = "http://lv2plug.in/ns/ext/log#"
	NsMIDI           = "http://lv2plug.in/ns/ext/midi#"
	NsMorph          = "http://lv2plug.in/ns/ext/morph#"
	NsOptions        = "http://lv2plug.in/ns/ext/options#"
	NsParameters     = "http://lv2plug.in/ns/ext/parameters#"
	NsPortGroups     = "http://lv2plug.in/ns/ext/port-groups#"
	NsPortProps      = "http://lv2plug.in/ns/ext/port-props#"
	NsResizePort     = "http://lv2plug.in/ns/ext/resize-port#"
	NsState          = "http://lv2plug.in/ns/ext/state#"
	NsUI             = "http://lv2plug.in/ns/extensions/ui#"
	NsUnits          = "http://lv2plug.in/ns/extensions/units#"
	NsURID           = "http://lv2plug.in/ns/ext/urid#"
	NsWorker         = "http://lv2plug.in/ns/ext/worker#"
)

// Classes and properties read by the bundle loader.
const (
	RDFType       = NsRDF + "type"
	RDFLangString = NsRDF + "langString"
	RDFSSeeAlso   = NsRDFS + "seeAlso"
	RDFSComment   = NsRDFS + "comment"
	XSDString     = NsXSD + "string"
	XSDBoolean    = NsXSD + "boolean"
	XSDInteger    = NsXSD + "integer"
	XSDDecimal    = NsXSD + "decimal"
	XSDDouble     = NsXSD + "double"

	DOAPName        = NsDOAP + "name"
	DOAPShortName   = NsDOAP + "shortname"
	DOAPMaintainer  = NsDOAP + "maintainer"
	DOAPDescription = NsDOAP + "description"

	LV2Plugin          = NsLV2 + "Plugin"
	LV2Port            = NsLV2 + "Port"
	LV2Project         = NsLV2 + "Project"
	LV2PortProp        = NsLV2 + "port"
	LV2Binary          = NsLV2 + "binary"
	LV2Index           = NsLV2 + "index"
	LV2Symbol          = NsLV2 + "symbol"
	LV2Name            = NsLV2 + "name"
	LV2ShortName       = NsLV2 + "shortName"
	LV2Documentation   = NsLV2 + "documentation"
	LV2MinorVersion    = NsLV2 + "minorVersion"
	LV2MicroVersion    = NsLV2 + "microVersion"
	LV2RequiredFeature = NsLV2 + "requiredFeature"
	LV2OptionalFeature = NsLV2 + "optionalFeature"
	LV2ExtensionData   = NsLV2 + "extensionData"
	LV2ProjectProp     = NsLV2 + "project"
	LV2Default         = NsLV2 + "default"
	LV2Minimum         = NsLV2 + "minimum"
	LV2Maximum         = NsLV2 + "maximum"
	LV2Designation     = NsLV2 + "designation"
	LV2PortProperty    = NsLV2 + "portProperty"
	LV2Latency         = NsLV2 + "latency"
	LV2Enabled         = NsLV2 + "enabled"
	LV2FreeWheeling    = NsLV2 + "freeWheeling"

	OptsRequiredOption  = NsOptions + "requiredOption"
	OptsSupportedOption = NsOptions + "supportedOption"

	DynManifestClass = NsDynManifest + "DynManifest"

	UnitsUnit = NsUnits + "unit"
)
