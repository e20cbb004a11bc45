package flowgraph

import (
	"testing"

	"github.com/matzehuels/firewallviz/pkg/rules"
)

func TestBuild_Examples(t *testing.T) {
	g, err := Build(rules.Examples(), BuildOptions{})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	want := []string{"192.168.1.10", "10.0.0.5", "any", "10.0.0.10", "10.0.0.2", "192.168.1.2"}
	got := g.NodeIDs()
	if len(got) != len(want) {
		t.Fatalf("NodeIDs() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("NodeIDs()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if g.EdgeCount() != 4 {
		t.Errorf("EdgeCount() = %d, want 4", g.EdgeCount())
	}
	if g.WarnCount() != 1 {
		t.Errorf("WarnCount() = %d, want 1", g.WarnCount())
	}

	for _, e := range g.Edges() {
		if e.WarnAny && e.Label != "UDP:any (ALLOW)" {
			t.Errorf("warn edge label = %q, want the any->any udp rule", e.Label)
		}
	}
}

func TestBuild_ExampleNodeAttributes(t *testing.T) {
	g, _ := Build(rules.Examples(), BuildOptions{})

	tests := []struct {
		id   string
		role rules.Role
		refs int
		size float64
	}{
		{"any", rules.RoleGeneric, 3, 500},
		{"192.168.1.10", rules.RoleInternal, 1, 1300},
		{"10.0.0.2", rules.RoleInternal, 1, 1300},
	}

	for _, tt := range tests {
		n, ok := g.Node(tt.id)
		if !ok {
			t.Fatalf("Node(%q) missing", tt.id)
		}
		if n.Role != tt.role || n.Refs != tt.refs || n.Size != tt.size {
			t.Errorf("Node(%q) = role %v refs %d size %v, want %v %d %v",
				tt.id, n.Role, n.Refs, n.Size, tt.role, tt.refs, tt.size)
		}
	}
}

func TestBuild_EdgeStyles(t *testing.T) {
	rs := []rules.Rule{
		{Source: "any", Destination: "any", Action: "allow"},
		{Source: "10.0.0.1", Destination: "8.8.8.8", Port: "53", Protocol: "udp", Action: "ALLOW"},
		{Source: "8.8.8.8", Destination: "10.0.0.1", Action: "deny"},
		{Source: "any", Destination: "any", Action: "DENY"},
		{Source: "1.1.1.1", Destination: "10.0.0.1", Action: "reject"},
	}

	g, err := Build(rs, BuildOptions{})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	want := []struct {
		color  string
		style  EdgeStyle
		weight int
		warn   bool
	}{
		{ColorWarn, StyleSolid, WeightWarn, true},
		{ColorAllow, StyleSolid, WeightNormal, false},
		{ColorDeny, StyleDashed, WeightNormal, false},
		{ColorDeny, StyleDashed, WeightNormal, false},
		{ColorDeny, StyleSolid, WeightNormal, false},
	}

	edges := g.Edges()
	for i, w := range want {
		e := edges[i]
		if e.Color != w.color || e.Style != w.style || e.Weight != w.weight || e.WarnAny != w.warn {
			t.Errorf("edge %d = {%s %s %d %v}, want {%s %s %d %v}",
				i, e.Color, e.Style, e.Weight, e.WarnAny, w.color, w.style, w.weight, w.warn)
		}
	}
}

func TestBuild_HighlightKeepsNodes(t *testing.T) {
	full, _ := Build(rules.Examples(), BuildOptions{})

	tests := []struct {
		highlight rules.Action
		wantEdges int
	}{
		{"", 4},
		{"ALLOW", 3},
		{"allow", 3},
		{"deny", 1},
		{"REJECT", 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.highlight), func(t *testing.T) {
			g, err := Build(rules.Examples(), BuildOptions{Highlight: tt.highlight})
			if err != nil {
				t.Fatalf("Build() error: %v", err)
			}
			if g.EdgeCount() != tt.wantEdges {
				t.Errorf("EdgeCount() = %d, want %d", g.EdgeCount(), tt.wantEdges)
			}
			if g.NodeCount() != full.NodeCount() {
				t.Errorf("NodeCount() = %d, want %d (filter must not touch nodes)", g.NodeCount(), full.NodeCount())
			}
			for _, n := range full.Nodes() {
				m, ok := g.Node(n.ID)
				if !ok || m.Size != n.Size {
					t.Errorf("node %q changed under filter", n.ID)
				}
			}
		})
	}
}

func TestBuild_SelfLoopCountsTwice(t *testing.T) {
	g, _ := Build([]rules.Rule{{Source: "8.8.8.8", Destination: "8.8.8.8"}}, BuildOptions{})

	n, _ := g.Node("8.8.8.8")
	if n.Refs != 2 {
		t.Errorf("Refs = %d, want 2", n.Refs)
	}
	if g.NodeCount() != 1 || g.EdgeCount() != 1 {
		t.Errorf("graph = %d nodes %d edges, want 1 and 1", g.NodeCount(), g.EdgeCount())
	}
}

func TestBuild_Empty(t *testing.T) {
	g, err := Build(nil, BuildOptions{})
	if err != nil {
		t.Fatalf("Build(nil) error: %v", err)
	}
	if g.NodeCount() != 0 || g.EdgeCount() != 0 {
		t.Errorf("Build(nil) = %d nodes %d edges, want empty", g.NodeCount(), g.EdgeCount())
	}
}

func TestBuild_ParallelRules(t *testing.T) {
	rs := []rules.Rule{
		{Source: "10.0.0.1", Destination: "10.0.0.2", Port: "22", Protocol: "tcp"},
		{Source: "10.0.0.1", Destination: "10.0.0.2", Port: "80", Protocol: "tcp"},
		{Source: "10.0.0.1", Destination: "10.0.0.2", Port: "22", Protocol: "tcp"},
	}
	g, _ := Build(rs, BuildOptions{})

	if g.EdgeCount() != 3 {
		t.Errorf("EdgeCount() = %d, want 3 (parallel edges are not merged)", g.EdgeCount())
	}
	n, _ := g.Node("10.0.0.1")
	if n.Size != 1500 {
		t.Errorf("Size = %v, want 1500", n.Size)
	}
}

func TestBuild_RawIdentifiers(t *testing.T) {
	rs := []rules.Rule{
		{Source: "10.0.0.1", Destination: "8.8.8.8"},
		{Source: " 10.0.0.1", Destination: "8.8.8.8"},
	}
	g, _ := Build(rs, BuildOptions{})

	if g.NodeCount() != 3 {
		t.Fatalf("NodeIDs() = %q, want three distinct nodes", g.NodeIDs())
	}
	n, ok := g.Node(" 10.0.0.1")
	if !ok {
		t.Fatal(`Node(" 10.0.0.1") missing`)
	}
	if n.Role != rules.RoleExternal {
		t.Errorf("padded host role = %v, want external", n.Role)
	}
}
