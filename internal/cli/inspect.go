package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/allen-marshall/lv2-se-bundle/pkg/bundle"
	"github.com/allen-marshall/lv2-se-bundle/pkg/enumgraph"
	"github.com/allen-marshall/lv2-se-bundle/pkg/errors"
	pkgio "github.com/allen-marshall/lv2-se-bundle/pkg/io"
	"github.com/allen-marshall/lv2-se-bundle/pkg/model"
	"github.com/allen-marshall/lv2-se-bundle/pkg/rdfutil"
	"github.com/allen-marshall/lv2-se-bundle/pkg/vocab"
)

// inspectOpts holds the command-line flags for the inspect command.
type inspectOpts struct {
	implied bool     // list classes implied by the declared ones
	langs   []string // preferred languages for names, best first
	json    bool     // write the bundle as JSON instead of text
}

// inspectCommand creates the inspect command, which loads a bundle and
// prints its plugins, ports, projects and dynamic manifests.
func (c *CLI) inspectCommand() *cobra.Command {
	var opts inspectOpts

	cmd := &cobra.Command{
		Use:   "inspect <bundle-dir>",
		Short: "Load an LV2 bundle and print its contents",
		Example: `  lv2model inspect /usr/lib/lv2/amp.lv2
  lv2model inspect --lang de,en ./reverb.lv2
  lv2model inspect --json ./amp.lv2 > amp.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("implied") {
				opts.implied = c.Config.Implied
			}
			return c.runInspect(cmd, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.implied, "implied", true, "list plugin classes implied by the declared ones (default from config)")
	cmd.Flags().StringSliceVar(&opts.langs, "lang", nil, "preferred languages for names and documentation, best first")
	cmd.Flags().BoolVar(&opts.json, "json", false, "write the bundle as JSON")

	return cmd
}

func (c *CLI) runInspect(cmd *cobra.Command, dir string, opts inspectOpts) error {
	prefs, err := parseLangs(opts.langs)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	var spinner *Spinner
	if stderr := cmd.ErrOrStderr(); !c.verbose && isTerminal(stderr) {
		spinner = newSpinner(ctx, stderr, "Loading "+dir)
		spinner.Start()
	}

	prog := newProgress(logger)
	b, err := bundle.Load(ctx, dir, bundle.Options{Logger: logger, MaxTriples: c.Config.MaxTriples})
	if spinner != nil {
		if err != nil {
			spinner.StopWithError(errors.UserMessage(err))
		} else {
			spinner.Stop()
		}
	}
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Loaded %s (%d files)", b.Dir, len(b.Files)))

	if opts.json {
		return pkgio.WriteJSON(b, cmd.OutOrStdout())
	}
	printBundle(cmd.OutOrStdout(), b, opts.implied, prefs)
	return nil
}

func parseLangs(langs []string) ([]language.Tag, error) {
	tags := make([]language.Tag, 0, len(langs))
	for _, l := range langs {
		t, err := language.Parse(l)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidLangTag, err, "--lang %q", l)
		}
		tags = append(tags, t)
	}
	return tags, nil
}

// =============================================================================
// Bundle Output
// =============================================================================

func printBundle(w io.Writer, b *bundle.Bundle, implied bool, prefs []language.Tag) {
	for i := range b.Plugins {
		printPlugin(w, &b.Plugins[i], implied, prefs)
		fmt.Fprintln(w)
	}
	for i := range b.Projects {
		printProject(w, &b.Projects[i], prefs)
		fmt.Fprintln(w)
	}
	for _, d := range b.DynManifests {
		printInfo(w, "dynamic manifest %s %s", orAnonymous(d.IRI), StyleDim.Render("("+d.Binary.String()+")"))
	}
	printInfo(w, "%d plugins, %d projects, %d files", len(b.Plugins), len(b.Projects), len(b.Files))
}

func printPlugin(w io.Writer, p *model.PluginInfo, implied bool, prefs []language.Tag) {
	printTitle(w, displayName(p.Naming, p.IRI.String(), prefs))
	printKeyValue(w, "iri", p.IRI.String())
	printOptional(w, "binary", p.Binary.String())
	printOptional(w, "symbol", p.Symbol.String())
	printOptional(w, "project", p.Project.String())
	if p.Version != (model.ResourceVersion{}) {
		v := p.Version.String()
		if !p.Version.IsStable() {
			v += StyleWarning.Render(" (unstable)")
		}
		printKeyValue(w, "version", v)
	}
	if p.Latency != nil {
		printKeyValue(w, "latency", fmt.Sprintf("%d frames", *p.Latency))
	}
	if doc, ok := p.Doc(prefs...); ok {
		printKeyValue(w, "doc", firstLine(doc.Value()))
	}

	known, unknown := termNames(p.DeclaredTypes)
	printList(w, "types", known, unknown)
	if implied {
		printList(w, "implied", setNames(p.Types().Difference(p.DeclaredTypes.Known())), nil)
	}
	known, unknown = termNames(p.RequiredFeatures())
	printList(w, "requires", known, unknown)
	known, unknown = termNames(p.OptionalFeatures())
	printList(w, "supports", known, unknown)
	known, unknown = termNames(p.RequiredOptions().Union(p.OptionalOptions()))
	printList(w, "options", known, unknown)
	known, unknown = termNames(p.ExtensionData())
	printList(w, "extensions", known, unknown)

	printKeyValue(w, "ports", fmt.Sprint(len(p.Ports)))
	for i := range p.Ports {
		printPort(w, &p.Ports[i], prefs)
	}
}

func printPort(w io.Writer, port *model.PortInfo, prefs []language.Tag) {
	known, unknown := termNames(port.Types)
	parts := []string{strings.Join(append(known, unknown...), "/")}
	if name, ok := port.Name(prefs...); ok {
		parts = append(parts, fmt.Sprintf("%q", name.Value()))
	}
	if r := portRange(port); r != "" {
		parts = append(parts, r)
	}
	if units := setNames(port.Units()); len(units) > 0 {
		parts = append(parts, strings.Join(units, ","))
	}
	fmt.Fprintf(w, "    %3d %-16s %s\n", port.Index, port.Symbol, StyleDim.Render(strings.Join(parts, "  ")))
}

// portRange formats minimum, maximum and default as "[min, max] = def",
// leaving out whatever the port does not declare.
func portRange(port *model.PortInfo) string {
	var b strings.Builder
	if !port.Minimum.IsZero() || !port.Maximum.IsZero() {
		fmt.Fprintf(&b, "[%s, %s]", literalOr(port.Minimum, "?"), literalOr(port.Maximum, "?"))
	}
	if !port.Default.IsZero() {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "= %s", port.Default.Value())
	}
	return b.String()
}

func printProject(w io.Writer, p *model.ProjectInfo, prefs []language.Tag) {
	printTitle(w, displayName(p.Naming, "project "+orAnonymous(p.IRI), prefs))
	printOptional(w, "iri", p.IRI.String())
	printOptional(w, "symbol", p.Symbol.String())
}

func printOptional(w io.Writer, key, value string) {
	if value != "" {
		printKeyValue(w, key, value)
	}
}

func displayName(n model.Naming, fallback string, prefs []language.Tag) string {
	if name, ok := n.Name(prefs...); ok {
		return name.Value()
	}
	return fallback
}

func orAnonymous(iri rdfutil.IRI) string {
	if iri.IsZero() {
		return "(anonymous)"
	}
	return iri.String()
}

func literalOr(l rdfutil.Literal, fallback string) string {
	if l.IsZero() {
		return fallback
	}
	return l.Value()
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " ..."
	}
	return s
}

// termNames splits a term set into standard term names and unknown IRIs.
func termNames[K vocab.Term](s model.TermSet[K]) (known, unknown []string) {
	known = setNames(s.Known())
	for _, u := range s.Unknown() {
		unknown = append(unknown, u.String())
	}
	return known, unknown
}

func setNames[T vocab.Term](s enumgraph.Set[T]) []string {
	var out []string
	for t := range s.All() {
		out = append(out, t.String())
	}
	return out
}
