package rules

import (
	"fmt"
	"strings"
)

// AnyValue is the default for a missing port or protocol.
const AnyValue = "any"

// Rule is a firewall rule as it appears in a rule file. All fields are
// optional; an empty field means the key was absent.
type Rule struct {
	Source      string `json:"source,omitempty" yaml:"source,omitempty" toml:"source,omitempty"`
	Destination string `json:"destination,omitempty" yaml:"destination,omitempty" toml:"destination,omitempty"`
	Port        string `json:"port,omitempty" yaml:"port,omitempty" toml:"port,omitempty"`
	Protocol    string `json:"protocol,omitempty" yaml:"protocol,omitempty" toml:"protocol,omitempty"`
	Action      string `json:"action,omitempty" yaml:"action,omitempty" toml:"action,omitempty"`
}

// Resolved is a rule with defaults applied and its endpoints and action
// classified.
type Resolved struct {
	Source      Endpoint
	Destination Endpoint
	Port        string // "any" when absent
	Protocol    string // upper-cased, "ANY" when absent
	Action      Action
}

// Resolve applies defaults: missing endpoints become [Any], missing port and
// protocol become "any" and a missing action becomes ALLOW.
func (r Rule) Resolve() Resolved {
	return Resolved{
		Source:      ParseEndpoint(r.Source),
		Destination: ParseEndpoint(r.Destination),
		Port:        orAny(r.Port),
		Protocol:    strings.ToUpper(orAny(r.Protocol)),
		Action:      ParseAction(r.Action),
	}
}

// ResolveAll resolves every rule in order.
func ResolveAll(rs []Rule) []Resolved {
	out := make([]Resolved, len(rs))
	for i, r := range rs {
		out[i] = r.Resolve()
	}
	return out
}

// WarnAny reports whether the rule allows any host to reach any host.
func (r Resolved) WarnAny() bool {
	return r.Source.IsAny() && r.Destination.IsAny() && r.Action.IsAllow()
}

// Label formats the rule for an edge: "{PROTOCOL}:{PORT} ({ACTION})".
func (r Resolved) Label() string {
	return fmt.Sprintf("%s:%s (%s)", r.Protocol, r.Port, r.Action)
}

func orAny(s string) string {
	if s == "" {
		return AnyValue
	}
	return s
}
