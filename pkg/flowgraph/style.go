package flowgraph

import "github.com/matzehuels/firewallviz/pkg/rules"

// Edge colors.
const (
	ColorAllow = "#2b83ba"
	ColorDeny  = "#d7191c"
	ColorWarn  = "#ffa500"
)

// Node fill colors by role.
const (
	ColorInternal = "#b6e6bd"
	ColorExternal = "#f7cac9"
	ColorGeneric  = "#ececec"
)

// EdgeStyle is the line style of an edge.
type EdgeStyle string

const (
	StyleSolid  EdgeStyle = "solid"
	StyleDashed EdgeStyle = "dashed"
)

// Edge weights, used as line widths.
const (
	WeightNormal = 2
	WeightWarn   = 3
)

// Node size parameters, in square points.
const (
	sizeGeneric      = 500
	sizeInternalBase = 1200
	sizeExternalBase = 1000
	sizePerRef       = 100
)

// RoleColor returns the fill color for nodes of role r.
func RoleColor(r rules.Role) string {
	switch r {
	case rules.RoleInternal:
		return ColorInternal
	case rules.RoleExternal:
		return ColorExternal
	default:
		return ColorGeneric
	}
}

// NodeSize returns the draw size of a node with the given role and
// reference count. It is non-decreasing in refs for every role.
func NodeSize(r rules.Role, refs int) float64 {
	switch r {
	case rules.RoleInternal:
		return float64(sizeInternalBase + sizePerRef*refs)
	case rules.RoleExternal:
		return float64(sizeExternalBase + sizePerRef*refs)
	default:
		return sizeGeneric
	}
}

// edgeStyle computes color, line style and weight for a resolved rule.
func edgeStyle(r rules.Resolved) (color string, style EdgeStyle, weight int) {
	warn := r.WarnAny()

	switch {
	case warn:
		color = ColorWarn
	case r.Action.IsAllow():
		color = ColorAllow
	default:
		color = ColorDeny
	}

	style = StyleSolid
	if r.Action.IsDeny() {
		style = StyleDashed
	}

	weight = WeightNormal
	if warn {
		weight = WeightWarn
	}
	return color, style, weight
}
