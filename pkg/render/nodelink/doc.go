// Package nodelink renders word graphs as node-link diagrams.
//
// # Usage
//
// Convert a [graph.Graph] to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// For PDF or PNG output:
//
//	pdf, err := nodelink.RenderPDF(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot, 2.0)  // 2x scale
//
// # Styling
//
// Node and edge styles written by materialization ("fill-color: rgb(r,g,b);")
// become Graphviz fillcolor and color attributes. Dark fills switch the node
// font to white so labels stay readable. Edges carry their predicate label.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
//
// [graph.Graph]: github.com/matzehuels/wordweb/pkg/graph.Graph
package nodelink
