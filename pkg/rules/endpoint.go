package rules

import "strings"

// WildcardID is the textual form of the wildcard endpoint in rule files and
// node identifiers.
const WildcardID = "any"

// internalPrefixes are the address prefixes treated as internal networks.
var internalPrefixes = []string{"192.", "10.", "172."}

// Endpoint is the source or destination of a rule: either the wildcard or a
// concrete host identifier.
//
// The zero value is the wildcard. Endpoint is comparable and can be used as a
// map key.
type Endpoint struct {
	host string
}

// Any is the wildcard endpoint matching every host.
var Any = Endpoint{}

// Host returns the endpoint for a concrete host identifier.
// Use [ParseEndpoint] for text read from a rule file.
func Host(id string) Endpoint {
	return Endpoint{host: id}
}

// ParseEndpoint converts rule file text to an endpoint. Empty text and the
// literal "any" yield [Any]. Other text is kept verbatim, so " 10.0.0.1" and
// "10.0.0.1" are distinct hosts.
func ParseEndpoint(s string) Endpoint {
	if s == "" || s == WildcardID {
		return Any
	}
	return Host(s)
}

// IsAny reports whether e is the wildcard.
func (e Endpoint) IsAny() bool { return e.host == "" }

// ID returns the node identifier: "any" for the wildcard, else the host.
func (e Endpoint) ID() string {
	if e.IsAny() {
		return WildcardID
	}
	return e.host
}

// String implements fmt.Stringer.
func (e Endpoint) String() string { return e.ID() }

// Role classifies a node by network placement.
type Role int

const (
	// RoleGeneric is the wildcard "any" node.
	RoleGeneric Role = iota
	// RoleInternal is a host inside a private address range.
	RoleInternal
	// RoleExternal is every other host.
	RoleExternal
)

// Roles lists every role in drawing order.
var Roles = []Role{RoleInternal, RoleExternal, RoleGeneric}

func (r Role) String() string {
	switch r {
	case RoleInternal:
		return "internal"
	case RoleExternal:
		return "external"
	case RoleGeneric:
		return "generic"
	default:
		return "unknown"
	}
}

// Classify returns the role of e. It is a pure function of the endpoint.
func Classify(e Endpoint) Role {
	if e.IsAny() {
		return RoleGeneric
	}
	for _, p := range internalPrefixes {
		if strings.HasPrefix(e.host, p) {
			return RoleInternal
		}
	}
	return RoleExternal
}
