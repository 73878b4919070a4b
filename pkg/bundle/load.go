// Package bundle loads LV2 bundles from disk into the typed values of
// package model.
//
// A bundle is a directory holding a manifest.ttl file. The manifest, and
// every file it reaches through rdfs:seeAlso inside the bundle, is parsed as
// Turtle with the bundle directory as base IRI. The merged statements are
// then read into plugins, ports, projects and dynamic manifest generators.
//
// Terms outside the standard LV2 vocabulary are kept as unknown terms in the
// model rather than rejected. Malformed values that LV2 gives a fixed shape,
// such as port indices, symbols and version numbers, fail the load with a
// coded error from package errors.
package bundle

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/geoknoesis/rdf-go/rdf"
	"golang.org/x/sync/errgroup"

	"github.com/allen-marshall/lv2-se-bundle/pkg/errors"
	"github.com/allen-marshall/lv2-se-bundle/pkg/model"
	"github.com/allen-marshall/lv2-se-bundle/pkg/observability"
	"github.com/allen-marshall/lv2-se-bundle/pkg/vocab"
)

// ManifestFile is the entry point of every bundle.
const ManifestFile = "manifest.ttl"

// Options configures [Load].
type Options struct {
	// Logger receives debug messages about skipped and unknown terms.
	// Nil disables logging.
	Logger *log.Logger

	// MaxTriples bounds the number of statements read from the whole
	// bundle. Zero means no bound beyond the parser's own defaults.
	MaxTriples int64

	// Workers bounds how many files are parsed at once. Zero or negative
	// means GOMAXPROCS.
	Workers int
}

// Bundle is the content of one loaded bundle.
type Bundle struct {
	Dir          string                  // absolute bundle directory
	Files        []string                // parsed files, relative to Dir
	Plugins      []model.PluginInfo      // ordered by IRI
	Projects     []model.ProjectInfo     // ordered by IRI; blank projects last
	DynManifests []model.DynManifestInfo // ordered by IRI
}

// Plugin returns the plugin identified by iri.
func (b *Bundle) Plugin(iri string) (*model.PluginInfo, bool) {
	for i := range b.Plugins {
		if b.Plugins[i].IRI.String() == iri {
			return &b.Plugins[i], true
		}
	}
	return nil, false
}

// Load reads the bundle in dir.
//
// Load fails with FILE_NOT_FOUND if the manifest or a file it references is
// missing, PARSE_ERROR if a file is not valid Turtle, TOO_LARGE if the
// bundle exceeds Options.MaxTriples, and INVALID_BUNDLE or one of the
// INVALID_* value codes if the statements describe a malformed resource.
func Load(ctx context.Context, dir string, opts Options) (b *Bundle, err error) {
	hooks := observability.Bundle()
	hooks.OnLoadStart(ctx, dir)
	start := time.Now()
	defer func() {
		n := 0
		if b != nil {
			n = len(b.Plugins)
		}
		hooks.OnLoadComplete(ctx, dir, n, time.Since(start), err)
	}()

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "bundle directory %q", dir)
	}
	l := &loader{dir: abs, opts: opts, logger: opts.Logger}
	if l.logger == nil {
		l.logger = log.New(io.Discard)
	}

	g, files, err := l.parseAll(ctx)
	if err != nil {
		return nil, err
	}
	b, err = newBuilder(g, l.logger).build()
	if err != nil {
		return nil, err
	}
	b.Dir = abs
	b.Files = files
	return b, nil
}

type loader struct {
	dir    string
	opts   Options
	logger *log.Logger
}

type parsed struct {
	triples []triple
	refs    []string // rdfs:seeAlso targets, already relative to the bundle
}

// parseAll parses the manifest and then follows rdfs:seeAlso breadth first.
// Files of one round are parsed concurrently; merging happens in file order
// so the result does not depend on scheduling.
func (l *loader) parseAll(ctx context.Context) (*graph, []string, error) {
	g := newGraph()
	seen := map[string]bool{ManifestFile: true}
	var files []string
	round := []string{ManifestFile}

	for len(round) > 0 {
		results := make([]parsed, len(round))
		eg, egCtx := errgroup.WithContext(ctx)
		eg.SetLimit(l.workers())
		for i, rel := range round {
			fileID := len(files) + i
			eg.Go(func() error {
				res, err := l.parseFile(egCtx, rel, fileID)
				if err != nil {
					return err
				}
				results[i] = res
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return nil, nil, err
		}

		files = append(files, round...)
		var next []string
		for _, res := range results {
			for _, t := range res.triples {
				g.add(t)
			}
			for _, ref := range res.refs {
				if !seen[ref] {
					seen[ref] = true
					next = append(next, ref)
				}
			}
		}
		if l.opts.MaxTriples > 0 && int64(g.len) > l.opts.MaxTriples {
			return nil, nil, errors.New(errors.ErrCodeTooLarge, "bundle has more than %d statements", l.opts.MaxTriples)
		}
		slices.Sort(next)
		round = next
	}
	return g, files, nil
}

func (l *loader) workers() int {
	if l.opts.Workers > 0 {
		return l.opts.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// parseFile parses one bundle file. rel has passed ValidateBundlePath.
func (l *loader) parseFile(ctx context.Context, rel string, fileID int) (res parsed, err error) {
	path := filepath.Join(l.dir, filepath.FromSlash(rel))
	start := time.Now()
	defer func() {
		observability.Bundle().OnFileParsed(ctx, path, len(res.triples), time.Since(start), err)
	}()

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return parsed{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "bundle file %s", rel)
		}
		return parsed{}, errors.Wrap(errors.ErrCodeInvalidBundle, err, "open %s", rel)
	}
	defer f.Close()

	base := dirIRI(filepath.Dir(path))
	src := io.MultiReader(strings.NewReader(fmt.Sprintf("@base <%s> .\n", base)), f)

	var popts []rdf.Option
	if l.opts.MaxTriples > 0 {
		popts = append(popts, rdf.OptMaxTriples(l.opts.MaxTriples))
	}

	scope := &blankScope{file: fileID}
	err = rdf.Parse(ctx, src, rdf.FormatTurtle, func(st rdf.Statement) error {
		if limit := l.opts.MaxTriples; limit > 0 && int64(len(res.triples)) >= limit {
			return errors.New(errors.ErrCodeTooLarge, "%s has more than %d statements", rel, limit)
		}
		t := scope.triple(st)
		res.triples = append(res.triples, t)
		if t.p == vocab.RDFSSeeAlso && t.o.isIRI() {
			if ref, ok := l.bundlePath(t.o.value); ok {
				res.refs = append(res.refs, ref)
			}
		}
		return nil
	}, popts...)
	switch {
	case err == nil:
	case ctx.Err() != nil:
		return parsed{}, ctx.Err()
	case errors.GetCode(err) != "":
		return parsed{}, err
	case isLimit(err):
		return parsed{}, errors.Wrap(errors.ErrCodeTooLarge, err, "parse %s", rel)
	default:
		return parsed{}, errors.Wrap(errors.ErrCodeParse, err, "parse %s", rel)
	}

	l.logger.Debug("parsed bundle file", "file", rel, "statements", len(res.triples))
	return res, nil
}

func isLimit(err error) bool {
	switch rdf.Code(err) {
	case rdf.ErrCodeTripleLimitExceeded, rdf.ErrCodeStatementTooLong, rdf.ErrCodeLineTooLong, rdf.ErrCodeDepthExceeded:
		return true
	}
	return false
}

// bundlePath maps a file IRI to a slash-separated path inside the bundle.
// References to other schemes or to files outside the bundle are skipped.
func (l *loader) bundlePath(iri string) (string, bool) {
	u, err := url.Parse(iri)
	if err != nil || u.Scheme != "file" {
		l.logger.Debug("skipping non-file rdfs:seeAlso", "iri", iri)
		return "", false
	}
	rel, err := filepath.Rel(l.dir, filepath.FromSlash(u.Path))
	if err == nil {
		err = errors.ValidateBundlePath(rel)
	}
	if err != nil {
		l.logger.Debug("skipping rdfs:seeAlso outside bundle", "iri", iri)
		return "", false
	}
	return filepath.ToSlash(rel), true
}

// dirIRI returns the file: IRI of an absolute directory, with a trailing
// slash so relative references resolve inside it.
func dirIRI(dir string) string {
	p := filepath.ToSlash(dir)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if !strings.HasSuffix(p, "/") {
		p += "/"
	}
	return (&url.URL{Scheme: "file", Path: p}).String()
}
