package nodelink_test

import (
	"fmt"

	"github.com/matzehuels/firewallviz/pkg/flowgraph"
	"github.com/matzehuels/firewallviz/pkg/render/nodelink"
	"github.com/matzehuels/firewallviz/pkg/rules"
)

func ExampleSelectLayout() {
	fmt.Println(nodelink.SelectLayout(6))
	fmt.Println(nodelink.SelectLayout(25))
	// Output:
	// fdp
	// neato
}

func ExampleToDOT() {
	g, _ := flowgraph.Build([]rules.Rule{
		{Source: "10.0.0.2", Destination: "192.168.1.2", Port: "443", Protocol: "tcp", Action: "DENY"},
	}, flowgraph.BuildOptions{})

	dot := nodelink.ToDOT(g, nodelink.Options{})
	fmt.Println(g.NodeCount(), "nodes,", g.EdgeCount(), "edge")
	fmt.Println(len(dot) > 0)
	// Output:
	// 2 nodes, 1 edge
	// true
}
