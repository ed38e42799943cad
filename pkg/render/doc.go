// Package render turns ring layouts into static scenes that sinks can write
// out as SVG, JSON or Graphviz output.
//
// # Overview
//
// A [Scene] is a flat, serialisable snapshot of a [ring.Layout]: the canvas
// size, the ring radius in pixels and one [Item] per positioned element with
// its angle and centre point. Snapshots are taken with [Snapshot].
//
// Positions follow the same formula the computed-transform strategy writes
// to elements: rotate by θ, translate out by the radius, counter-rotate. In
// screen coordinates (y down) that places an item at
//
//	x = cx + r·cos θ
//	y = cy + r·sin θ
//
// so 0° is to the right of the centre and -90° is straight up.
//
// # Sinks
//
// The [sink] subpackage renders scenes:
//
//	scene := render.Snapshot(layout)
//	svg := sink.RenderSVG(scene)
//	data, err := sink.RenderJSON(scene)
//	png, err := sink.RenderGraphviz(ctx, scene, sink.FormatPNG)
package render
