package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/allen-marshall/lv2-se-bundle/pkg/buildinfo"
	"github.com/allen-marshall/lv2-se-bundle/pkg/cache"
	"github.com/allen-marshall/lv2-se-bundle/pkg/enumgraph"
	"github.com/allen-marshall/lv2-se-bundle/pkg/errors"
	"github.com/allen-marshall/lv2-se-bundle/pkg/implications"
	"github.com/allen-marshall/lv2-se-bundle/pkg/observability"
	"github.com/allen-marshall/lv2-se-bundle/pkg/render"
	"github.com/allen-marshall/lv2-se-bundle/pkg/render/nodelink"
	"github.com/allen-marshall/lv2-se-bundle/pkg/vocab"
)

const (
	formatDOT = "dot"
	formatSVG = "svg"
	formatPDF = "pdf"
	formatPNG = "png"

	pngScale = 2.0
)

// validFormats is the set of supported graph output formats.
var validFormats = map[string]bool{formatDOT: true, formatSVG: true, formatPDF: true, formatPNG: true}

// graphOpts holds the command-line flags for the graph command.
type graphOpts struct {
	output    string   // output file; stdout when empty
	format    string   // explicit format; overrides the output extension
	closure   bool     // draw every implied edge rather than direct parents
	reverse   bool     // point edges from superclass to subclass
	detailed  bool     // add IRIs to node labels
	isolated  bool     // include classes with no edges
	highlight []string // classes whose implied set is filled
	noCache   bool     // render even if a cached artifact exists
}

// graphCommand creates the graph command for rendering implication graphs.
func (c *CLI) graphCommand() *cobra.Command {
	var opts graphOpts

	cmd := &cobra.Command{
		Use:   "graph plugin|atom",
		Short: "Render a class implication graph",
		Long: `Render the plugin or atom class graph. Edges point from a class to its
direct parents, or with --closure to every class it implies.

The output format is taken from --format, then from the extension of
--output, then from the config file. DOT needs no external tools; SVG uses
the embedded Graphviz; PDF and PNG additionally need rsvg-convert.`,
		Example: `  lv2model graph plugin -o plugins.svg
  lv2model graph atom --closure --highlight Int | dot -Tpng > atoms.png`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{kindPlugin, kindAtom},
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(opts.format, opts.output, c.Config.Format)
			if err != nil {
				return err
			}
			var dot string
			switch args[0] {
			case kindPlugin:
				dot, err = buildDOT(implications.PluginTypeEdges(), implications.PluginTypes(), opts)
			case kindAtom:
				dot, err = buildDOT(implications.AtomTypeEdges(), implications.AtomTypes(), opts)
			default:
				return unknownKind(args[0])
			}
			if err != nil {
				return err
			}
			return c.runGraph(cmd, args[0], dot, format, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: dot, svg, pdf, png")
	cmd.Flags().BoolVar(&opts.closure, "closure", false, "draw every implied edge instead of direct parents")
	cmd.Flags().BoolVar(&opts.reverse, "reverse", false, "point edges from superclass to subclass")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show class IRIs in node labels")
	cmd.Flags().BoolVar(&opts.isolated, "isolated", false, "include classes without edges")
	cmd.Flags().StringSliceVar(&opts.highlight, "highlight", nil, "fill these classes and everything they imply")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "do not read or write rendered artifacts in the cache")
	_ = cmd.RegisterFlagCompletionFunc("highlight", completeClassFlag)
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions([]string{formatDOT, formatSVG, formatPDF, formatPNG}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

// outputFormat picks the format from the explicit flag, the output file
// extension, or the configured default, in that order.
func outputFormat(explicit, output, fallback string) (string, error) {
	format := explicit
	if format == "" && output != "" {
		if ext := strings.TrimPrefix(filepath.Ext(output), "."); validFormats[ext] {
			format = ext
		}
	}
	if format == "" {
		format = fallback
	}
	if !validFormats[format] {
		return "", errors.New(errors.ErrCodeInvalidInput, "invalid format: %s (must be 'dot', 'svg', 'pdf', or 'png')", format)
	}
	return format, nil
}

// buildDOT selects the direct or closed graph, applies --reverse, and emits
// DOT. closure is the precomputed implication table; its reflexive edges are
// dropped since every class implies itself.
func buildDOT[T vocab.Term](direct []enumgraph.Edge[T], closure enumgraph.DiGraph[T], opts graphOpts) (string, error) {
	g := enumgraph.FromEdges(direct...)
	if opts.closure {
		g = closure
		for _, t := range enumgraph.Members[T]() {
			g.RemoveEdge(t, t)
		}
	}
	if opts.reverse {
		g = g.Reverse()
	}

	highlighted, err := parseTerms[T](opts.highlight)
	if err != nil {
		return "", err
	}
	return nodelink.ToDOT(g, nodelink.Options[T]{
		Detailed:  opts.detailed,
		Isolated:  opts.isolated,
		Highlight: closure.ReachableNodesFromMulti(highlighted),
	}), nil
}

func (c *CLI) runGraph(cmd *cobra.Command, name, dot, format string, opts graphOpts) error {
	ctx := cmd.Context()
	store := c.newCache(opts.noCache)
	defer store.Close()

	data, err := cachedRender(ctx, store, name, dot, format)
	if err != nil {
		return err
	}

	output := opts.output

	if output == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "write %s", output)
	}
	loggerFromContext(ctx).Infof("Generated %s", output)
	return nil
}

// cachedRender returns the artifact for dot in format, rendering it on a
// cache miss. DOT output is never cached. Cache failures only cost a render.
func cachedRender(ctx context.Context, store cache.Cache, name, dot, format string) ([]byte, error) {
	if format == formatDOT {
		return renderGraph(ctx, name, dot, format)
	}
	logger := loggerFromContext(ctx)
	key := cache.Key("render", buildinfo.Version, format, dot)
	if data, ok, err := store.Get(ctx, key); err == nil && ok {
		logger.Debug("render cache hit", "graph", name, "format", format)
		return data, nil
	} else if err != nil {
		logger.Debug("render cache read failed", "err", err)
	}

	data, err := renderGraph(ctx, name, dot, format)
	if err != nil {
		return nil, err
	}
	if err := store.Set(ctx, key, data, 0); err != nil {
		logger.Debug("render cache write failed", "err", err)
	}
	return data, nil
}

// renderGraph converts DOT to the requested format and reports the work to
// the render hooks.
func renderGraph(ctx context.Context, name, dot, format string) (data []byte, err error) {
	hooks := observability.Render()
	hooks.OnRenderStart(ctx, name, format)
	start := time.Now()
	defer func() {
		hooks.OnRenderComplete(ctx, name, format, len(data), time.Since(start), err)
	}()

	switch format {
	case formatDOT:
		return []byte(dot), nil
	case formatSVG:
		return nodelink.RenderSVG(ctx, dot)
	}

	svg, err := nodelink.RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	switch format {
	case formatPDF:
		return render.ToPDF(ctx, svg)
	case formatPNG:
		return render.ToPNG(ctx, svg, pngScale)
	}
	return nil, errors.New(errors.ErrCodeInvalidInput, "unknown format: %s", format)
}
