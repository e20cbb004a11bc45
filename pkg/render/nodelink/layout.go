package nodelink

import "github.com/goccy/go-graphviz"

// LargeGraphThreshold is the node count above which [LayoutStress] is used.
const LargeGraphThreshold = 10

// Layout is a Graphviz layout engine with its tuning.
type Layout string

const (
	// LayoutSpring is the fdp spring embedder, tuned for small graphs.
	LayoutSpring Layout = "fdp"
	// LayoutStress is neato in Kamada-Kawai mode, for larger graphs.
	LayoutStress Layout = "neato"
)

// Spring embedder tuning. Graphviz defaults are K=0.3 and maxiter=600.
const (
	springK       = 1.6
	springMaxIter = 800
)

// SelectLayout returns the layout for a graph with nodeCount nodes.
func SelectLayout(nodeCount int) Layout {
	if nodeCount > LargeGraphThreshold {
		return LayoutStress
	}
	return LayoutSpring
}

// String implements fmt.Stringer.
func (l Layout) String() string { return string(l) }

// attrs returns the graph attributes that tune the engine.
func (l Layout) attrs() []string {
	switch l {
	case LayoutStress:
		return []string{`layout="neato"`, `mode="KK"`, "overlap=false"}
	default:
		return []string{
			`layout="fdp"`,
			"K=" + formatFloat(springK),
			"maxiter=" + formatFloat(springMaxIter),
			"overlap=false",
		}
	}
}

func (l Layout) engine() graphviz.Layout {
	if l == LayoutStress {
		return graphviz.NEATO
	}
	return graphviz.FDP
}
