// Package pkg provides the libraries behind lv2model, a typed model of LV2
// plugin bundles.
//
// # Overview
//
// An LV2 bundle is a directory of Turtle files describing audio plugins. The
// pkg directory turns those files into Go values and answers questions about
// the standard LV2 class vocabulary. It is organized into three areas:
//
//  1. Graph engines: [enumgraph] (bitset digraphs over small enumerations)
//     and [hierarchy] (ancestor traversal over parent links)
//  2. Vocabulary: [vocab] (LV2 terms and their IRIs), [implications] (which
//     classes and units a term implies) and [rdfutil] (validated IRIs,
//     literals, language tags and symbols)
//  3. Bundles: [model] (plugin, port and project descriptions), [bundle]
//     (the loader) and [io] (JSON export)
//
// Supporting packages: [errors] (coded errors), [observability] (load and
// render hooks), [render] (DOT, SVG, PDF and PNG output of implication
// graphs), [cache] (rendered output cache) and [buildinfo].
//
// # Architecture
//
// The typical data flow through lv2model:
//
//	bundle directory (manifest.ttl + rdfs:seeAlso files)
//	         ↓
//	    [bundle] package (parse Turtle, collect statements)
//	         ↓
//	    [model] package (plugins, ports, projects)
//	         ↓
//	    [implications] package (implied classes and units)
//	         ↓
//	    text or JSON output
//
// # Quick Start
//
//	import (
//	    "context"
//	    "github.com/allen-marshall/lv2-se-bundle/pkg/bundle"
//	    "github.com/allen-marshall/lv2-se-bundle/pkg/vocab"
//	)
//
//	b, err := bundle.Load(context.Background(), "/usr/lib/lv2/amp.lv2", bundle.Options{})
//	if err != nil {
//	    return err
//	}
//	for _, p := range b.Plugins {
//	    if p.HasType(vocab.DynamicsPlugin) {
//	        fmt.Println(p.IRI)
//	    }
//	}
//
// Vocabulary questions need no bundle at all:
//
//	implied := implications.PluginTypesImpliedBy(enumgraph.SetOf(vocab.ReverbPlugin))
//	// Reverb, Delay, Simulator, Plugin
//
// [enumgraph]: github.com/allen-marshall/lv2-se-bundle/pkg/enumgraph
// [hierarchy]: github.com/allen-marshall/lv2-se-bundle/pkg/hierarchy
// [vocab]: github.com/allen-marshall/lv2-se-bundle/pkg/vocab
// [implications]: github.com/allen-marshall/lv2-se-bundle/pkg/implications
// [rdfutil]: github.com/allen-marshall/lv2-se-bundle/pkg/rdfutil
// [model]: github.com/allen-marshall/lv2-se-bundle/pkg/model
// [bundle]: github.com/allen-marshall/lv2-se-bundle/pkg/bundle
// [io]: github.com/allen-marshall/lv2-se-bundle/pkg/io
// [errors]: github.com/allen-marshall/lv2-se-bundle/pkg/errors
// [observability]: github.com/allen-marshall/lv2-se-bundle/pkg/observability
// [render]: github.com/allen-marshall/lv2-se-bundle/pkg/render
// [cache]: github.com/allen-marshall/lv2-se-bundle/pkg/cache
// [buildinfo]: github.com/allen-marshall/lv2-se-bundle/pkg/buildinfo
package pkg
