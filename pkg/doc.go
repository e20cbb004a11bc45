// Package pkg provides the libraries behind firewallviz.
//
// # Overview
//
// firewallviz turns a flat list of firewall rules into a node-link diagram:
// hosts are nodes, rules are directed edges. The packages form a straight
// pipeline:
//
//	rule file (JSON, YAML, TOML)
//	         ↓
//	    [io] package (decode, bootstrap example rules)
//	         ↓
//	    [rules] package (defaults, endpoint roles, actions)
//	         ↓
//	    [flowgraph] package (nodes, edges, styling)
//	         ↓
//	    [render/nodelink] package (Graphviz layout + image)
//	         ↓
//	    PNG/SVG/JPG output
//
// [pipeline] runs the stages in order with validated options, and
// [observability] exposes hooks around each stage.
//
// # Quick Start
//
//	rs, _ := io.LoadRules("firewall_rules.json", logger)
//	g, _ := flowgraph.Build(rs, flowgraph.BuildOptions{})
//	layout, err := nodelink.RenderFile(ctx, g, "firewall_diagram.png", nodelink.Options{})
//
// [io]: github.com/matzehuels/firewallviz/pkg/io
// [rules]: github.com/matzehuels/firewallviz/pkg/rules
// [flowgraph]: github.com/matzehuels/firewallviz/pkg/flowgraph
// [render/nodelink]: github.com/matzehuels/firewallviz/pkg/render/nodelink
// [pipeline]: github.com/matzehuels/firewallviz/pkg/pipeline
// [observability]: github.com/matzehuels/firewallviz/pkg/observability
package pkg
