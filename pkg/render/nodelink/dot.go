package nodelink

import (
	"bytes"
	"fmt"
	"html"
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/firewallviz/pkg/flowgraph"
	"github.com/matzehuels/firewallviz/pkg/rules"
)

const (
	// DefaultTitle is drawn above the legend.
	DefaultTitle = "Firewall Rule Visualization"

	// DefaultDPI is the raster resolution of PNG and JPG output.
	DefaultDPI = 130.0
)

const (
	nodeAlpha     = 0.9
	edgeAlpha     = 0.85
	nodeFontSize  = 9
	edgeFontSize  = 7
	titleFontSize = 14
	legendFontSz  = 8
	pointsPerInch = 72.0
)

// Options configures diagram generation.
type Options struct {
	// Title is drawn at the top of the image. Empty uses DefaultTitle.
	Title string
	// DPI is the output resolution. Zero uses DefaultDPI.
	DPI float64
	// Layout overrides the engine chosen by SelectLayout.
	Layout Layout
}

func (o Options) withDefaults(nodeCount int) Options {
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.DPI <= 0 {
		o.DPI = DefaultDPI
	}
	if o.Layout == "" {
		o.Layout = SelectLayout(nodeCount)
	}
	return o
}

// roleShapes maps each role to its Graphviz node shape.
var roleShapes = map[rules.Role]string{
	rules.RoleInternal: "circle",
	rules.RoleExternal: "square",
	rules.RoleGeneric:  "diamond",
}

// legendEntry is one swatch of the legend.
type legendEntry struct {
	color string
	label string
}

// legend is fixed and does not depend on the graph contents.
var legend = []legendEntry{
	{flowgraph.ColorInternal, "Internal Node"},
	{flowgraph.ColorExternal, "External Node"},
	{flowgraph.ColorGeneric, "Any/Generic Node"},
	{flowgraph.ColorWarn, "ANY-&gt;ANY ALLOW"},
	{flowgraph.ColorAllow, "ALLOW"},
	{flowgraph.ColorDeny, "DENY"},
}

// ToDOT converts a flow graph to Graphviz DOT source.
//
// Nodes are emitted grouped by role (internal, external, generic), each with
// its own shape, fill and size. Edges are emitted one statement per edge in
// insertion order, so parallel edges stay distinct.
func ToDOT(g *flowgraph.Graph, opts Options) string {
	opts = opts.withDefaults(g.NodeCount())

	var buf bytes.Buffer
	buf.WriteString("digraph firewall {\n")

	graphAttrs := append(opts.Layout.attrs(),
		"dpi="+formatFloat(opts.DPI),
		"pad=0.2",
		"splines=true",
		"outputorder=edgesfirst",
		`bgcolor="white"`,
		`fontname="Helvetica"`,
		"labelloc=t",
		"labeljust=l",
		"label="+legendLabel(opts.Title),
	)
	fmt.Fprintf(&buf, "  graph [%s];\n", strings.Join(graphAttrs, ", "))
	fmt.Fprintf(&buf, "  node [style=filled, color=black, penwidth=1, fixedsize=true, fontname=\"Helvetica-Bold\", fontsize=%d];\n", nodeFontSize)
	fmt.Fprintf(&buf, "  edge [arrowhead=normal, arrowsize=1.2, fontname=\"Helvetica\", fontsize=%d];\n", edgeFontSize)

	for _, role := range rules.Roles {
		nodes := g.NodesByRole(role)
		if len(nodes) == 0 {
			continue
		}
		fmt.Fprintf(&buf, "\n  // %s\n", role)
		for _, n := range nodes {
			fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(nodeAttrs(n), ", "))
		}
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %q -> %q [%s];\n", e.From, e.To, strings.Join(edgeAttrs(e), ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(n *flowgraph.Node) []string {
	side := nodeSide(n.Size)
	return []string{
		fmt.Sprintf("label=%q", n.ID),
		"shape=" + roleShapes[n.Role],
		fmt.Sprintf("fillcolor=%q", withAlpha(flowgraph.RoleColor(n.Role), nodeAlpha)),
		"width=" + formatFloat(side),
		"height=" + formatFloat(side),
	}
}

func edgeAttrs(e flowgraph.Edge) []string {
	return []string{
		fmt.Sprintf("label=%q", e.Label),
		fmt.Sprintf("color=%q", withAlpha(e.Color, edgeAlpha)),
		"style=" + string(e.Style),
		"penwidth=" + strconv.Itoa(e.Weight),
	}
}

// nodeSide converts a draw area in square points to a side length in inches.
func nodeSide(size float64) float64 {
	if size <= 0 {
		return 0
	}
	return math.Round(math.Sqrt(size)/pointsPerInch*100) / 100
}

// legendLabel builds the HTML-like graph label holding title and legend.
func legendLabel(title string) string {
	var b strings.Builder
	b.WriteString(`<<table border="0" cellborder="0" cellspacing="2" cellpadding="2">`)
	fmt.Fprintf(&b, `<tr><td colspan="2" align="left"><font point-size="%d"><b>%s</b></font></td></tr>`,
		titleFontSize, html.EscapeString(title))
	for _, e := range legend {
		fmt.Fprintf(&b, `<tr><td bgcolor="%s" width="14" height="10" fixedsize="true"></td><td align="left"><font point-size="%d">%s</font></td></tr>`,
			e.color, legendFontSz, e.label)
	}
	b.WriteString(`</table>>`)
	return b.String()
}

// withAlpha appends an alpha channel to a #rrggbb color.
func withAlpha(color string, alpha float64) string {
	if len(color) != 7 || color[0] != '#' {
		return color
	}
	return fmt.Sprintf("%s%02x", color, int(math.Round(alpha*255)))
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
