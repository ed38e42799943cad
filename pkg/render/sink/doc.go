// Package sink renders ring scenes to output formats.
//
// # Formats
//
//   - [RenderSVG]: standalone SVG with the ring guide, one group per item and
//     an entrance animation for items still entering
//   - [RenderJSON]: the scene as indented JSON
//   - [ToDOT]: Graphviz DOT with pinned node positions and ring edges
//   - [RenderGraphviz]: DOT rendered through Graphviz (SVG or PNG)
//
// Scenes come from [render.Snapshot].
package sink
