package io

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/allen-marshall/lv2-se-bundle/pkg/bundle"
)

const ampManifest = `@prefix lv2: <http://lv2plug.in/ns/lv2core#> .
@prefix doap: <http://usefulinc.com/ns/doap#> .
@prefix units: <http://lv2plug.in/ns/extensions/units#> .
@prefix urid: <http://lv2plug.in/ns/ext/urid#> .

<http://example.org/amp>
	a lv2:Plugin, lv2:AmplifierPlugin ;
	lv2:binary <amp.so> ;
	doap:name "Amp", "Verstärker"@de ;
	lv2:minorVersion 2 ;
	lv2:microVersion 0 ;
	lv2:requiredFeature urid:map ;
	lv2:port [
		a lv2:InputPort, lv2:ControlPort ;
		lv2:index 0 ;
		lv2:symbol "gain" ;
		lv2:name "Gain" ;
		lv2:minimum -90.0 ;
		units:unit units:db
	] .
`

func loadAmp(t *testing.T) *bundle.Bundle {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "manifest.ttl"), []byte(ampManifest), 0o644); err != nil {
		t.Fatal(err)
	}
	b, err := bundle.Load(context.Background(), dir, bundle.Options{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return b
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(loadAmp(t), &buf); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	var doc Document
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if len(doc.Plugins) != 1 {
		t.Fatalf("plugins = %d, want 1", len(doc.Plugins))
	}
	p := doc.Plugins[0]

	if p.IRI != "http://example.org/amp" {
		t.Errorf("iri = %q", p.IRI)
	}
	if !strings.HasSuffix(p.Binary, "/amp.so") {
		t.Errorf("binary = %q, want resolved amp.so", p.Binary)
	}
	if p.Version != "2.0" {
		t.Errorf("version = %q, want 2.0", p.Version)
	}
	if !slices.Contains(p.Names, Literal{Value: "Verstärker", Lang: "de"}) {
		t.Errorf("names = %v, want German name", p.Names)
	}
	if !slices.Contains(p.Names, Literal{Value: "Amp"}) {
		t.Errorf("names = %v, want plain name without datatype", p.Names)
	}
	if !slices.Contains(p.Types, "http://lv2plug.in/ns/lv2core#AmplifierPlugin") {
		t.Errorf("types = %v", p.Types)
	}
	if slices.Contains(p.ImpliedTypes, "http://lv2plug.in/ns/lv2core#AmplifierPlugin") {
		t.Errorf("implied_types repeats a declared class: %v", p.ImpliedTypes)
	}
	if !slices.Contains(p.ImpliedTypes, "http://lv2plug.in/ns/lv2core#DynamicsPlugin") {
		t.Errorf("implied_types = %v, want DynamicsPlugin", p.ImpliedTypes)
	}
	if !slices.Equal(p.RequiredFeatures, []string{"http://lv2plug.in/ns/ext/urid#map"}) {
		t.Errorf("required_features = %v", p.RequiredFeatures)
	}

	if len(p.Ports) != 1 {
		t.Fatalf("ports = %d, want 1", len(p.Ports))
	}
	port := p.Ports[0]
	if port.Symbol != "gain" || port.Index != 0 {
		t.Errorf("port = %d %q", port.Index, port.Symbol)
	}
	if port.Minimum == nil || !strings.HasPrefix(port.Minimum.Value, "-90") || port.Minimum.Datatype == "" {
		t.Errorf("minimum = %+v, want typed -90", port.Minimum)
	}
	if port.Default != nil || port.Maximum != nil {
		t.Errorf("unset range values exported: %+v %+v", port.Default, port.Maximum)
	}
	if !slices.Equal(port.Units, []string{"http://lv2plug.in/ns/extensions/units#db"}) {
		t.Errorf("units = %v", port.Units)
	}
}

func TestWriteJSON_OmitsEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(loadAmp(t), &buf); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{`"projects"`, `"dyn_manifests"`, `"latency"`, `"extension_data"`, `"default"`} {
		if strings.Contains(buf.String(), key) {
			t.Errorf("output contains empty %s:\n%s", key, buf.String())
		}
	}
}

func TestExportJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "amp.json")
	if err := ExportJSON(loadAmp(t), path); err != nil {
		t.Fatalf("ExportJSON() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("file is not valid JSON: %v", err)
	}
	if doc.Dir == "" || len(doc.Files) != 1 || doc.Files[0] != "manifest.ttl" {
		t.Errorf("dir = %q, files = %v", doc.Dir, doc.Files)
	}
}

func TestExportJSON_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "amp.json")
	if err := ExportJSON(loadAmp(t), path); err == nil {
		t.Error("ExportJSON() into a missing directory succeeded")
	}
}
