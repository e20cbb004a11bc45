package flowgraph

import (
	"fmt"

	"github.com/matzehuels/firewallviz/pkg/rules"
)

// BuildOptions configures graph derivation.
type BuildOptions struct {
	// Highlight keeps only edges whose action matches (case-insensitive).
	// Empty keeps every edge. Nodes are never filtered.
	Highlight rules.Action
}

// Build derives the graph for rs.
//
// Every source and destination becomes exactly one node, in order of first
// appearance. Every rule passing the highlight filter becomes one edge.
func Build(rs []rules.Rule, opts BuildOptions) (*Graph, error) {
	resolved := rules.ResolveAll(rs)
	g := New()

	refs := make(map[rules.Endpoint]int)
	var order []rules.Endpoint
	count := func(e rules.Endpoint) {
		if _, seen := refs[e]; !seen {
			order = append(order, e)
		}
		refs[e]++
	}
	for _, r := range resolved {
		count(r.Source)
		count(r.Destination)
	}

	for _, e := range order {
		role := rules.Classify(e)
		n := Node{
			ID:       e.ID(),
			Endpoint: e,
			Role:     role,
			Refs:     refs[e],
			Size:     NodeSize(role, refs[e]),
		}
		if err := g.AddNode(n); err != nil {
			return nil, fmt.Errorf("node %s: %w", n.ID, err)
		}
	}

	for _, r := range resolved {
		if opts.Highlight != "" && !r.Action.Matches(opts.Highlight) {
			continue
		}
		color, style, weight := edgeStyle(r)
		e := Edge{
			From:    r.Source.ID(),
			To:      r.Destination.ID(),
			Label:   r.Label(),
			Color:   color,
			Style:   style,
			Weight:  weight,
			WarnAny: r.WarnAny(),
			Action:  r.Action,
		}
		if err := g.AddEdge(e); err != nil {
			return nil, fmt.Errorf("edge %s->%s: %w", e.From, e.To, err)
		}
	}

	return g, nil
}
