// Package render turns flow graphs into images.
//
// The [nodelink] subpackage draws the traffic graph as a node-link diagram
// using an in-process Graphviz: hosts are shaped and colored by role, rules
// are directed edges styled by action, and a legend and title are attached
// to every image.
//
//	g, _ := flowgraph.Build(rs, flowgraph.BuildOptions{})
//	layout, err := nodelink.RenderFile(ctx, g, "firewall_diagram.png", nodelink.Options{})
//
// [nodelink]: github.com/matzehuels/firewallviz/pkg/render/nodelink
package render
