// Package render provides diagram output for the vocabulary graphs.
//
// # Overview
//
// The [nodelink] subpackage turns an [enumgraph.DiGraph] over a vocabulary
// enumeration into Graphviz DOT and renders it to SVG in process. This
// package converts that SVG to other formats:
//
//	dot := nodelink.ToDOT(implications.PluginTypes(), nodelink.Options[vocab.PluginType]{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)  // 2x scale
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] use the external rsvg-convert tool (from librsvg).
// When it is missing they fail with an UNSUPPORTED error that explains how
// to install it.
//
// [nodelink]: github.com/allen-marshall/lv2-se-bundle/pkg/render/nodelink
// [enumgraph.DiGraph]: github.com/allen-marshall/lv2-se-bundle/pkg/enumgraph
package render
