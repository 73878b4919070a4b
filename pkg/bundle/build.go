package bundle

import (
	"cmp"
	"math"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/allen-marshall/lv2-se-bundle/pkg/errors"
	"github.com/allen-marshall/lv2-se-bundle/pkg/model"
	"github.com/allen-marshall/lv2-se-bundle/pkg/rdfutil"
	"github.com/allen-marshall/lv2-se-bundle/pkg/vocab"
)

type builder struct {
	g        *graph
	logger   *log.Logger
	projects map[term]bool
}

func newBuilder(g *graph, logger *log.Logger) *builder {
	return &builder{g: g, logger: logger, projects: make(map[term]bool)}
}

func (b *builder) build() (*Bundle, error) {
	out := &Bundle{}

	for _, s := range b.g.subjectsOfType(vocab.LV2Plugin) {
		if !s.isIRI() {
			b.logger.Debug("skipping plugin without IRI", "node", s)
			continue
		}
		p, err := b.plugin(s)
		if err != nil {
			return nil, err
		}
		out.Plugins = append(out.Plugins, p)
	}

	for _, s := range b.g.subjectsOfType(vocab.LV2Project) {
		b.projects[s] = true
	}
	for _, s := range sortedKeys(b.projects) {
		p, err := b.project(s)
		if err != nil {
			return nil, err
		}
		out.Projects = append(out.Projects, p)
	}

	for _, s := range b.g.subjectsOfType(vocab.DynManifestClass) {
		d, err := b.dynManifest(s)
		if err != nil {
			return nil, err
		}
		out.DynManifests = append(out.DynManifests, d)
	}
	return out, nil
}

func (b *builder) plugin(s term) (model.PluginInfo, error) {
	var p model.PluginInfo
	wrap := func(err error) error { return wrapf(err, "plugin %s", s.value) }

	var err error
	if p.IRI, err = rdfutil.ParseIRI(s.value); err != nil {
		return p, wrap(err)
	}

	for _, iri := range b.iris(s, vocab.RDFType) {
		if iri.String() == vocab.LV2Plugin {
			continue
		}
		if !p.DeclaredTypes.AddIRI(iri) {
			b.logUnknown("plugin type", s, iri)
		}
	}

	if p.Binary, err = b.optionalIRI(s, vocab.LV2Binary); err != nil {
		return p, wrap(err)
	}
	if p.Project, err = b.optionalIRI(s, vocab.LV2ProjectProp); err != nil {
		return p, wrap(err)
	}
	if proj, ok := b.g.first(s, vocab.LV2ProjectProp); ok && (proj.isIRI() || proj.isBlank()) {
		b.projects[proj] = true
	}
	if err := b.naming(s, &p.Naming, vocab.DOAPName, vocab.LV2ShortName); err != nil {
		return p, wrap(err)
	}
	if err := b.documenting(s, &p.Documenting); err != nil {
		return p, wrap(err)
	}
	if p.Symbol, err = b.optionalSymbol(s); err != nil {
		return p, wrap(err)
	}

	minor, err := b.optionalUint(s, vocab.LV2MinorVersion, math.MaxUint64)
	if err != nil {
		return p, wrap(err)
	}
	micro, err := b.optionalUint(s, vocab.LV2MicroVersion, math.MaxUint64)
	if err != nil {
		return p, wrap(err)
	}
	if minor != nil {
		p.Version.Minor = *minor
	}
	if micro != nil {
		p.Version.Micro = *micro
	}
	if p.Latency, err = b.optionalUint(s, vocab.LV2Latency, math.MaxUint64); err != nil {
		return p, wrap(err)
	}
	if p.Enabled, err = b.optionalBool(s, vocab.LV2Enabled); err != nil {
		return p, wrap(err)
	}
	if p.FreeWheeling, err = b.optionalBool(s, vocab.LV2FreeWheeling); err != nil {
		return p, wrap(err)
	}

	b.requirements(s, &p.Requirements)
	for _, iri := range b.iris(s, vocab.LV2ExtensionData) {
		logUnknownTerm[vocab.ExtensionData](b, "extension data", s, iri)
		p.ProvideExtensionData(iri)
	}

	for _, o := range b.g.objects(s, vocab.LV2PortProp) {
		if o.isLiteral() {
			return p, wrap(errors.New(errors.ErrCodeInvalidBundle, "lv2:port value %s is a literal", o))
		}
		port, err := b.port(o)
		if err != nil {
			return p, wrap(err)
		}
		p.Ports = append(p.Ports, port)
	}
	slices.SortFunc(p.Ports, func(x, y model.PortInfo) int { return cmp.Compare(x.Index, y.Index) })
	for i, port := range p.Ports {
		if int(port.Index) != i {
			return p, errors.New(errors.ErrCodeInvalidBundle,
				"plugin %s: port indices must run from 0 to %d without gaps or repeats", s.value, len(p.Ports)-1)
		}
	}
	seen := make(map[string]bool, len(p.Ports))
	for _, port := range p.Ports {
		if seen[port.Symbol.String()] {
			return p, errors.New(errors.ErrCodeInvalidBundle, "plugin %s: duplicate port symbol %q", s.value, port.Symbol)
		}
		seen[port.Symbol.String()] = true
	}
	return p, nil
}

func (b *builder) requirements(s term, r *model.Requirements) {
	for _, iri := range b.iris(s, vocab.LV2OptionalFeature) {
		logUnknownTerm[vocab.HostFeature](b, "host feature", s, iri)
		r.SupportFeature(iri)
	}
	for _, iri := range b.iris(s, vocab.LV2RequiredFeature) {
		logUnknownTerm[vocab.HostFeature](b, "host feature", s, iri)
		r.RequireFeature(iri)
	}
	for _, iri := range b.iris(s, vocab.OptsSupportedOption) {
		logUnknownTerm[vocab.Option](b, "option", s, iri)
		r.SupportOption(iri)
	}
	for _, iri := range b.iris(s, vocab.OptsRequiredOption) {
		logUnknownTerm[vocab.Option](b, "option", s, iri)
		r.RequireOption(iri)
	}
}

func (b *builder) port(s term) (model.PortInfo, error) {
	var p model.PortInfo
	wrap := func(err error) error { return wrapf(err, "port %s", s) }

	for _, pred := range []string{vocab.LV2Index, vocab.LV2Symbol} {
		if err := b.singleValued(s, pred); err != nil {
			return p, err
		}
	}
	idx, err := b.optionalUint(s, vocab.LV2Index, math.MaxUint32)
	if err != nil {
		return p, wrap(err)
	}
	if idx == nil {
		return p, errors.New(errors.ErrCodeInvalidBundle, "port %s has no lv2:index", s)
	}
	p.Index = uint32(*idx)

	if p.Symbol, err = b.optionalSymbol(s); err != nil {
		return p, wrap(err)
	}
	if p.Symbol.IsZero() {
		return p, errors.New(errors.ErrCodeInvalidBundle, "port %d has no lv2:symbol", p.Index)
	}
	wrap = func(err error) error { return wrapf(err, "port %s", p.Symbol) }

	for _, iri := range b.iris(s, vocab.RDFType) {
		if iri.String() == vocab.LV2Port {
			continue
		}
		if !p.Types.AddIRI(iri) {
			b.logUnknown("port type", s, iri)
		}
	}
	if err := b.naming(s, &p.Naming, vocab.LV2Name, vocab.LV2ShortName); err != nil {
		return p, wrap(err)
	}
	if err := b.documenting(s, &p.Documenting); err != nil {
		return p, wrap(err)
	}
	for _, v := range []struct {
		pred string
		dst  *rdfutil.Literal
	}{
		{vocab.LV2Default, &p.Default},
		{vocab.LV2Minimum, &p.Minimum},
		{vocab.LV2Maximum, &p.Maximum},
	} {
		if *v.dst, err = b.optionalLiteral(s, v.pred); err != nil {
			return p, wrap(err)
		}
	}

	for _, iri := range b.iris(s, vocab.LV2Designation) {
		if c, ok := vocab.ParsePortChannel(iri.String()); ok {
			p.Channels.Insert(c)
			continue
		}
		if !p.Designations.AddIRI(iri) {
			b.logUnknown("port designation", s, iri)
		}
	}
	for _, iri := range b.iris(s, vocab.LV2PortProperty) {
		if !p.Properties.AddIRI(iri) {
			b.logUnknown("port property", s, iri)
		}
	}
	for _, iri := range b.iris(s, vocab.UnitsUnit) {
		if !p.DeclaredUnits.AddIRI(iri) {
			b.logUnknown("unit", s, iri)
		}
	}
	return p, nil
}

func (b *builder) project(s term) (model.ProjectInfo, error) {
	var p model.ProjectInfo
	wrap := func(err error) error { return wrapf(err, "project %s", s) }
	var err error
	if s.isIRI() {
		if p.IRI, err = rdfutil.ParseIRI(s.value); err != nil {
			return p, wrap(err)
		}
	}
	if err := b.naming(s, &p.Naming, vocab.DOAPName, vocab.DOAPShortName); err != nil {
		return p, wrap(err)
	}
	if p.Symbol, err = b.optionalSymbol(s); err != nil {
		return p, wrap(err)
	}
	return p, nil
}

func (b *builder) dynManifest(s term) (model.DynManifestInfo, error) {
	var d model.DynManifestInfo
	var err error
	if s.isIRI() {
		if d.IRI, err = rdfutil.ParseIRI(s.value); err != nil {
			return d, wrapf(err, "dynamic manifest %s", s)
		}
	}
	if d.Binary, err = b.optionalIRI(s, vocab.LV2Binary); err != nil {
		return d, wrapf(err, "dynamic manifest %s", s)
	}
	if d.Binary.IsZero() {
		return d, errors.New(errors.ErrCodeInvalidBundle, "dynamic manifest %s has no lv2:binary", s)
	}
	return d, nil
}

func (b *builder) naming(s term, n *model.Naming, namePred, shortPred string) error {
	names, err := b.literals(s, namePred)
	if err != nil {
		return err
	}
	for _, l := range names {
		n.AddName(l)
	}
	shorts, err := b.literals(s, shortPred)
	if err != nil {
		return err
	}
	for _, l := range shorts {
		if err := errors.ValidateShortName(l.Value()); err != nil {
			return err
		}
		n.AddShortName(l)
	}
	return nil
}

func (b *builder) documenting(s term, d *model.Documenting) error {
	docs, err := b.literals(s, vocab.LV2Documentation)
	if err != nil {
		return err
	}
	for _, l := range docs {
		d.AddDocumentation(l)
	}
	return nil
}

// iris returns the IRI objects of s and p. Blank and literal objects are
// logged and skipped.
func (b *builder) iris(s term, p string) []rdfutil.IRI {
	var out []rdfutil.IRI
	for _, o := range b.g.objects(s, p) {
		if !o.isIRI() {
			b.logger.Debug("skipping non-IRI value", "node", s, "predicate", p, "value", o)
			continue
		}
		iri, err := rdfutil.ParseIRI(o.value)
		if err != nil {
			b.logger.Debug("skipping invalid IRI", "node", s, "predicate", p, "err", err)
			continue
		}
		out = append(out, iri)
	}
	return out
}

func (b *builder) literals(s term, p string) ([]rdfutil.Literal, error) {
	var out []rdfutil.Literal
	for _, o := range b.g.objects(s, p) {
		if !o.isLiteral() {
			return nil, errors.New(errors.ErrCodeInvalidLiteral, "%s of %s must be a literal, got %s", p, s, o)
		}
		l, err := rdfutil.LiteralFromRDF(o.literal())
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}

// singleValued fails if s has more than one distinct object for p. Ports
// are identified by index and symbol, so conflicting values mean two port
// descriptions were merged into one node.
func (b *builder) singleValued(s term, p string) error {
	objs := slices.Clone(b.g.objects(s, p))
	slices.SortFunc(objs, compareTerms)
	if objs = slices.Compact(objs); len(objs) > 1 {
		return errors.New(errors.ErrCodeInvalidBundle, "%s has %d values for %s: %s and %s", s, len(objs), p, objs[0], objs[1])
	}
	return nil
}

func (b *builder) optionalLiteral(s term, p string) (rdfutil.Literal, error) {
	o, ok := b.g.first(s, p)
	if !ok {
		return rdfutil.Literal{}, nil
	}
	if !o.isLiteral() {
		return rdfutil.Literal{}, errors.New(errors.ErrCodeInvalidLiteral, "%s of %s must be a literal, got %s", p, s, o)
	}
	return rdfutil.LiteralFromRDF(o.literal())
}

func (b *builder) optionalIRI(s term, p string) (rdfutil.IRI, error) {
	o, ok := b.g.first(s, p)
	if !ok || o.isBlank() {
		return rdfutil.IRI{}, nil
	}
	if !o.isIRI() {
		return rdfutil.IRI{}, errors.New(errors.ErrCodeInvalidIRI, "%s of %s must be an IRI, got %s", p, s, o)
	}
	return rdfutil.ParseIRI(o.value)
}

func (b *builder) optionalSymbol(s term) (rdfutil.Symbol, error) {
	l, err := b.optionalLiteral(s, vocab.LV2Symbol)
	if err != nil || l.IsZero() {
		return rdfutil.Symbol{}, err
	}
	return rdfutil.ParseSymbol(l.Value())
}

func (b *builder) optionalUint(s term, p string, limit uint64) (*uint64, error) {
	l, err := b.optionalLiteral(s, p)
	if err != nil || l.IsZero() {
		return nil, err
	}
	n, err := l.Int()
	if err != nil {
		return nil, err
	}
	if n < 0 || uint64(n) > limit {
		return nil, errors.New(errors.ErrCodeInvalidLiteral, "%s of %s is out of range: %d", p, s, n)
	}
	v := uint64(n)
	return &v, nil
}

func (b *builder) optionalBool(s term, p string) (*bool, error) {
	l, err := b.optionalLiteral(s, p)
	if err != nil || l.IsZero() {
		return nil, err
	}
	v, err := l.Bool()
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// wrapf adds context to err and keeps its code. Errors without a code are
// reported as INVALID_BUNDLE.
func wrapf(err error, format string, args ...any) error {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInvalidBundle
	}
	return errors.Wrap(code, err, format, args...)
}

func (b *builder) logUnknown(kind string, s term, iri rdfutil.IRI) {
	b.logger.Debug("unknown term", "kind", kind, "node", s, "iri", iri)
}

func logUnknownTerm[K vocab.Term](b *builder, kind string, s term, iri rdfutil.IRI) {
	if _, ok := vocab.Parse[K](iri.String()); !ok {
		b.logUnknown(kind, s, iri)
	}
}

func sortedKeys(m map[term]bool) []term {
	out := make([]term, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	slices.SortFunc(out, compareTerms)
	return out
}
