// Package nodelink renders vocabulary graphs as node-link diagrams.
//
// # Overview
//
// Plugin classes and atom types form small directed graphs over fixed
// enumerations. This package draws them with Graphviz: terms appear as
// boxes and each edge points from a term to a term it implies.
//
// # Usage
//
// Convert a graph to DOT format, then render to SVG:
//
//	g := implications.PluginTypes()
//	dot := nodelink.ToDOT(g, nodelink.Options[vocab.PluginType]{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// Highlight the result of a query:
//
//	implied := implications.PluginTypesImpliedBy(enumgraph.SetOf(vocab.ReverbPlugin))
//	dot := nodelink.ToDOT(g, nodelink.Options[vocab.PluginType]{Highlight: implied})
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Detailed: node labels include the term's IRI
//   - Isolated: terms without edges are drawn too
//   - Highlight: terms drawn with a coloured fill
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion is in package render and requires
// librsvg (rsvg-convert).
package nodelink
