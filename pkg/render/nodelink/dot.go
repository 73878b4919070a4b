package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/allen-marshall/lv2-se-bundle/pkg/enumgraph"
	"github.com/allen-marshall/lv2-se-bundle/pkg/errors"
	"github.com/allen-marshall/lv2-se-bundle/pkg/vocab"
)

// Options configures node-link diagram rendering.
type Options[T vocab.Term] struct {
	// Detailed adds each term's IRI below its name.
	Detailed bool

	// Isolated includes terms without any edge. By default only terms that
	// take part in an edge are drawn.
	Isolated bool

	// Highlight marks terms drawn with a coloured fill, for example the
	// result of an implication query.
	Highlight enumgraph.Set[T]
}

// ToDOT converts a vocabulary graph to Graphviz DOT format. Edges point
// from a term to the terms it implies, so a subclass points at its parents.
// The resulting DOT string can be rendered using [RenderSVG].
//
// Output is deterministic: nodes and edges appear in ordinal order.
func ToDOT[T vocab.Term](g enumgraph.DiGraph[T], opts Options[T]) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=BT;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	edges := g.Edges()
	var used enumgraph.Set[T]
	for _, e := range edges {
		used.Insert(e.From)
		used.Insert(e.To)
	}

	for _, t := range enumgraph.Members[T]() {
		if !opts.Isolated && !used.Contains(t) {
			continue
		}
		attrs := fmtAttrs(fmtLabel(t, opts.Detailed), opts.Highlight.Contains(t))
		fmt.Fprintf(&buf, "  %q [%s];\n", t.String(), strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range edges {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.From.String(), e.To.String())
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel[T vocab.Term](t T, detailed bool) string {
	if !detailed {
		return t.String()
	}
	return t.String() + "\n" + t.IRI()
}

func fmtAttrs(label string, highlighted bool) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if highlighted {
		attrs = append(attrs, "fillcolor=lightblue")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
//
// [render.ToPDF]: github.com/allen-marshall/lv2-se-bundle/pkg/render
// [render.ToPNG]: github.com/allen-marshall/lv2-se-bundle/pkg/render
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-sized root element with one whose
// viewBox starts at the origin and whose size is unitless.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
