// Package flowgraph derives the styled traffic graph drawn for a rule set.
//
// # Overview
//
// [Build] turns a list of [rules.Rule] into a [Graph]: one [Node] per
// distinct source or destination and one [Edge] per rule. Nodes carry their
// [rules.Role] and a draw size; edges carry a label, color, line style and
// weight. Everything is a pure function of the rule list, so the same rules
// always yield the same graph (apart from layout, which is not computed here).
//
//	g, err := flowgraph.Build(rs, flowgraph.BuildOptions{})
//	fmt.Println(g.NodeCount(), g.EdgeCount(), g.WarnCount())
//
// # Highlight Filter
//
// [BuildOptions.Highlight] keeps only the edges whose action matches. The
// filter applies to edges only: nodes are derived from the full rule list,
// so the node set and node sizes do not change when filtering.
//
// # Parallel Edges
//
// Rules between the same pair of endpoints produce parallel edges. They are
// never merged, since each edge carries its own rule label.
//
// # Styling
//
//	action   any→any   color      style    weight
//	ALLOW    yes       #ffa500    solid    3
//	ALLOW    no        #2b83ba    solid    2
//	DENY     -         #d7191c    dashed   2
//	other    -         #d7191c    solid    2
//
// Node sizes are areas in square points: 500 for the wildcard, 1200+100×refs
// for internal hosts and 1000+100×refs for external hosts.
//
// [rules.Rule]: github.com/matzehuels/firewallviz/pkg/rules.Rule
// [rules.Role]: github.com/matzehuels/firewallviz/pkg/rules.Role
package flowgraph
