package flowgraph

import (
	"errors"
	"testing"

	"github.com/matzehuels/firewallviz/pkg/rules"
)

func TestAddNode_Errors(t *testing.T) {
	g := New()
	if err := g.AddNode(Node{}); !errors.Is(err, ErrInvalidNodeID) {
		t.Errorf("AddNode(empty) = %v, want ErrInvalidNodeID", err)
	}
	if err := g.AddNode(Node{ID: "a"}); err != nil {
		t.Fatalf("AddNode(a) = %v", err)
	}
	if err := g.AddNode(Node{ID: "a"}); !errors.Is(err, ErrDuplicateNodeID) {
		t.Errorf("AddNode(a) twice = %v, want ErrDuplicateNodeID", err)
	}
}

func TestAddEdge_Errors(t *testing.T) {
	g := New()
	_ = g.AddNode(Node{ID: "a"})

	if err := g.AddEdge(Edge{From: "x", To: "a"}); !errors.Is(err, ErrUnknownSourceNode) {
		t.Errorf("AddEdge(x->a) = %v, want ErrUnknownSourceNode", err)
	}
	if err := g.AddEdge(Edge{From: "a", To: "x"}); !errors.Is(err, ErrUnknownTargetNode) {
		t.Errorf("AddEdge(a->x) = %v, want ErrUnknownTargetNode", err)
	}
}

func TestParallelEdgesKept(t *testing.T) {
	g := New()
	_ = g.AddNode(Node{ID: "a"})
	_ = g.AddNode(Node{ID: "b"})
	_ = g.AddEdge(Edge{From: "a", To: "b", Label: "TCP:22 (ALLOW)"})
	_ = g.AddEdge(Edge{From: "a", To: "b", Label: "TCP:80 (ALLOW)"})

	if g.EdgeCount() != 2 {
		t.Fatalf("EdgeCount() = %d, want 2", g.EdgeCount())
	}
	edges := g.Edges()
	if edges[0].Label == edges[1].Label {
		t.Error("parallel edges should keep their own labels")
	}
}

func TestEdgesReturnsCopy(t *testing.T) {
	g := New()
	_ = g.AddNode(Node{ID: "a"})
	_ = g.AddEdge(Edge{From: "a", To: "a", Color: ColorAllow})

	edges := g.Edges()
	edges[0].Color = "mutated"
	if g.Edges()[0].Color != ColorAllow {
		t.Error("Edges() should return a copy")
	}
}

func TestNodesInsertionOrder(t *testing.T) {
	g := New()
	for _, id := range []string{"c", "a", "b"} {
		_ = g.AddNode(Node{ID: id})
	}
	got := g.NodeIDs()
	want := []string{"c", "a", "b"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("NodeIDs() = %v, want %v", got, want)
		}
	}
}

func TestNodeSize(t *testing.T) {
	tests := []struct {
		role rules.Role
		refs int
		want float64
	}{
		{rules.RoleGeneric, 1, 500},
		{rules.RoleGeneric, 7, 500},
		{rules.RoleInternal, 1, 1300},
		{rules.RoleInternal, 3, 1500},
		{rules.RoleExternal, 1, 1100},
		{rules.RoleExternal, 2, 1200},
	}

	for _, tt := range tests {
		if got := NodeSize(tt.role, tt.refs); got != tt.want {
			t.Errorf("NodeSize(%v, %d) = %v, want %v", tt.role, tt.refs, got, tt.want)
		}
	}
}

func TestRoleColor(t *testing.T) {
	if RoleColor(rules.RoleInternal) != ColorInternal ||
		RoleColor(rules.RoleExternal) != ColorExternal ||
		RoleColor(rules.RoleGeneric) != ColorGeneric {
		t.Error("RoleColor() mismatch")
	}
}
