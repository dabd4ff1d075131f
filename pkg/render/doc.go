// Package render provides output formats for materialized word graphs.
//
// # Overview
//
// The [nodelink] subpackage turns a [graph.Graph] into Graphviz DOT and
// renders it to SVG in-process. This package converts that SVG to other
// formats with the external rsvg-convert tool (from librsvg):
//
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)  // 2x scale
//
// A missing converter is reported as an UNSUPPORTED error.
//
// # Styles
//
// Materialized nodes and edges carry CSS-like style strings such as
// "fill-color: rgb(255,0,0);". [ParseFillColor] extracts the color so that
// exporters can map it to their own attribute syntax.
//
// [nodelink]: github.com/matzehuels/wordweb/pkg/render/nodelink
// [graph.Graph]: github.com/matzehuels/wordweb/pkg/graph.Graph
package render
