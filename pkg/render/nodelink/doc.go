// Package nodelink renders flow graphs as node-link diagrams.
//
// # Overview
//
// This package produces directed graph images using Graphviz. The diagram
// encodes node role by shape and fill and rule action by edge color and line
// style:
//
//	role       shape     fill
//	internal   circle    #b6e6bd
//	external   square    #f7cac9
//	generic    diamond   #ececec
//
// # Usage
//
// Convert a graph to DOT, then render it:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{})
//	png, err := nodelink.Render(ctx, dot, nodelink.LayoutSpring, nodelink.FormatPNG)
//
// Or do both and write the file in one call with [RenderFile].
//
// # Layout Selection
//
// [SelectLayout] picks the engine from the node count. Graphs with more than
// [LargeGraphThreshold] nodes use [LayoutStress] (neato in Kamada-Kawai
// mode), which copes better with many nodes. Smaller graphs use
// [LayoutSpring] (fdp), with a spring constant well above the default for
// clearer separation and a raised iteration cap. Coordinates are not part of
// the output contract; only topology and styling are deterministic.
//
// # Legend and Title
//
// Every image carries the title and a fixed six-entry legend (three node
// roles and three edge colors) in the top-left corner, whether or not each
// category occurs in the graph.
//
// # Resources
//
// [Render] acquires a Graphviz context and a parsed graph and releases both
// with defer, so a failed render never leaks them.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process layout and
// rendering; no Graphviz installation is required.
package nodelink
