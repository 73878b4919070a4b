// Package io exports loaded LV2 bundles as JSON.
//
// # Overview
//
// The JSON form is a flat rendering of [bundle.Bundle] for tools that do not
// want to parse Turtle: every class, feature and unit is written as its IRI,
// and text is written as literals with their language tags.
//
// # JSON Format
//
//	{
//	  "dir": "/usr/lib/lv2/amp.lv2",
//	  "files": ["manifest.ttl", "amp.ttl"],
//	  "plugins": [
//	    {
//	      "iri": "http://example.org/amp",
//	      "binary": "file:///usr/lib/lv2/amp.lv2/amp.so",
//	      "names": [{"value": "Amp"}, {"value": "Verstärker", "lang": "de"}],
//	      "types": ["http://lv2plug.in/ns/lv2core#AmplifierPlugin"],
//	      "implied_types": ["http://lv2plug.in/ns/lv2core#DynamicsPlugin", "..."],
//	      "ports": [
//	        {
//	          "index": 0,
//	          "symbol": "gain",
//	          "types": ["http://lv2plug.in/ns/lv2core#InputPort", "..."],
//	          "minimum": {"value": "-90.0", "datatype": "http://www.w3.org/2001/XMLSchema#decimal"}
//	        }
//	      ]
//	    }
//	  ]
//	}
//
// Empty lists and unset values are omitted. Plain string literals carry no
// datatype; language-tagged literals carry only their tag.
//
// # Export
//
// Use [ExportJSON] to write a bundle to a file, or [WriteJSON] to write to
// any io.Writer:
//
//	b, err := bundle.Load(ctx, "amp.lv2", bundle.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := io.WriteJSON(b, os.Stdout); err != nil {
//	    log.Fatal(err)
//	}
//
// [FromBundle] returns the intermediate [Document] for callers that want to
// encode it differently.
package io
