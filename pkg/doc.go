// Package pkg provides the core libraries for Ringlayout.
//
// # Overview
//
// Ringlayout places a set of elements at evenly spaced angles around a
// circle and keeps the distribution even as items are pushed, popped,
// inserted and removed. The pkg directory is organized into these areas:
//
//  1. [surface] - Minimal element tree with classes, inline styles and events
//  2. [ring] - Angle math, capability probing and the ring layout itself
//  3. [render] - Scene snapshots and the SVG, JSON and DOT sinks
//  4. [pipeline] - Orchestration (build → ops → render) with caching
//  5. [config] - TOML ring descriptions
//
// # Architecture
//
// The typical data flow through Ringlayout:
//
//	ring.toml
//	    ↓
//	[config] package (parse, validate, build elements)
//	    ↓
//	[ring] package (probe host, assign slot angles, place items)
//	    ↓
//	[render] package (snapshot positions, render sinks)
//	    ↓
//	SVG/JSON/DOT/PNG output
//
// # Quick Start
//
// Lay out four items a quarter turn apart, starting at the top:
//
//	import (
//	    "github.com/matzehuels/ringlayout/pkg/render"
//	    "github.com/matzehuels/ringlayout/pkg/render/sink"
//	    "github.com/matzehuels/ringlayout/pkg/ring"
//	    "github.com/matzehuels/ringlayout/pkg/surface"
//	)
//
//	doc := surface.NewDocument(surface.Capabilities{CustomProperties: true})
//	container := doc.CreateElement("div")
//	doc.Body().AppendChild(container)
//
//	var items []*surface.Element
//	for range 4 {
//	    el := doc.CreateElement("div")
//	    container.AppendChild(el)
//	    items = append(items, el)
//	}
//
//	opts := ring.DefaultOptions()
//	opts.AngleSeed = ring.Seed(-90)
//	l, _ := ring.New(container, items, opts)
//	svg := sink.RenderSVG(render.Snapshot(l))
//
// # Infrastructure
//
// [cache] - Artifact caching with file, Redis and null backends.
//
// [errors] - Structured error codes shared by every package.
//
// [observability] - Hooks for layout, render and cache events.
//
// [buildinfo] - Version information set via ldflags.
//
// [surface]: github.com/matzehuels/ringlayout/pkg/surface
// [ring]: github.com/matzehuels/ringlayout/pkg/ring
// [render]: github.com/matzehuels/ringlayout/pkg/render
// [pipeline]: github.com/matzehuels/ringlayout/pkg/pipeline
// [config]: github.com/matzehuels/ringlayout/pkg/config
// [cache]: github.com/matzehuels/ringlayout/pkg/cache
// [errors]: github.com/matzehuels/ringlayout/pkg/errors
// [observability]: github.com/matzehuels/ringlayout/pkg/observability
// [buildinfo]: github.com/matzehuels/ringlayout/pkg/buildinfo
package pkg
