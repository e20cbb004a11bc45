package flowgraph

import (
	"errors"
	"slices"

	"github.com/matzehuels/firewallviz/pkg/rules"
)

var (
	// ErrInvalidNodeID is returned by [Graph.AddNode] when the node ID is empty.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [Graph.AddNode] when a node with the
	// same ID already exists.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownSourceNode is returned by [Graph.AddEdge] when the From node
	// does not exist.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [Graph.AddEdge] when the To node
	// does not exist.
	ErrUnknownTargetNode = errors.New("unknown target node")
)

// Node is a host or the wildcard zone.
type Node struct {
	ID       string         // Endpoint ID, also the display label
	Endpoint rules.Endpoint // Source endpoint of the ID
	Role     rules.Role     // Classification of Endpoint
	Refs     int            // Number of rule sides referencing this endpoint
	Size     float64        // Draw area in square points
}

// Edge is one rule drawn as a directed connection.
type Edge struct {
	From    string       // Source node ID
	To      string       // Target node ID
	Label   string       // "{PROTOCOL}:{PORT} ({ACTION})"
	Color   string       // Line color
	Style   EdgeStyle    // Line style
	Weight  int          // Line width
	WarnAny bool         // any→any ALLOW
	Action  rules.Action // Rule action
}

// Graph is a directed multigraph of hosts and rule flows.
//
// Nodes keep insertion order. Multiple edges between the same pair of nodes
// are allowed and kept in insertion order. Graph is not safe for concurrent
// modification.
type Graph struct {
	nodes map[string]*Node
	order []string
	edges []Edge
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{nodes: make(map[string]*Node)}
}

// AddNode adds a node. Returns ErrInvalidNodeID if the ID is empty or
// ErrDuplicateNodeID if it is already present.
func (g *Graph) AddNode(n Node) error {
	if n.ID == "" {
		return ErrInvalidNodeID
	}
	if _, exists := g.nodes[n.ID]; exists {
		return ErrDuplicateNodeID
	}
	g.nodes[n.ID] = &n
	g.order = append(g.order, n.ID)
	return nil
}

// AddEdge adds a directed edge between two existing nodes. Parallel edges
// are kept as separate entries.
func (g *Graph) AddEdge(e Edge) error {
	if _, ok := g.nodes[e.From]; !ok {
		return ErrUnknownSourceNode
	}
	if _, ok := g.nodes[e.To]; !ok {
		return ErrUnknownTargetNode
	}
	g.edges = append(g.edges, e)
	return nil
}

// Node returns the node with the given ID.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, len(g.order))
	for i, id := range g.order {
		out[i] = g.nodes[id]
	}
	return out
}

// NodeIDs returns all node IDs in insertion order.
func (g *Graph) NodeIDs() []string { return slices.Clone(g.order) }

// NodesByRole returns the nodes of role r in insertion order.
func (g *Graph) NodesByRole(r rules.Role) []*Node {
	var out []*Node
	for _, id := range g.order {
		if n := g.nodes[id]; n.Role == r {
			out = append(out, n)
		}
	}
	return out
}

// Edges returns a copy of all edges in insertion order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges, counting parallel edges separately.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// WarnCount returns the number of any→any ALLOW edges.
func (g *Graph) WarnCount() int {
	n := 0
	for _, e := range g.edges {
		if e.WarnAny {
			n++
		}
	}
	return n
}
