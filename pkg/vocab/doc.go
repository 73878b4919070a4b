// Package vocab defines the fixed LV2 vocabularies as Go enumerations.
//
// Each vocabulary (plugin classes, port classes, host features, atom
// classes, units and so on) is a uint8 type whose members are numbered from
// zero. Every type implements [Term]: it reports its member count through
// Cardinality, so it can serve as an [enumgraph] node type, and each member
// knows its name and IRI.
//
// Lookups by IRI go through the per-type ParseX functions or the generic
// [Parse]:
//
//	t, ok := vocab.ParsePluginType("http://lv2plug.in/ns/lv2core#ReverbPlugin")
//	// t == vocab.ReverbPlugin, ok == true
//
// [PluginType] and [AtomType] also describe their direct superclasses with
// a Parents method, which makes them usable with package hierarchy.
//
// Terms outside these vocabularies are not errors. The data model keeps
// them as unknown IRIs next to the known members.
package vocab
