// Package rules defines the firewall rule model.
//
// # Overview
//
// A [Rule] is the raw record read from a rule file: five optional strings
// (source, destination, port, protocol, action). Raw rules are never mutated;
// defaults are applied when a rule is resolved for graph building:
//
//	r := rules.Rule{Source: "192.168.1.10", Destination: "10.0.0.5", Port: "22"}
//	res := r.Resolve()
//	res.Protocol // "ANY"
//	res.Action   // rules.ActionAllow
//
// # Endpoints and Roles
//
// Sources and destinations resolve to an [Endpoint]. The literal "any" (or a
// missing value) becomes the wildcard endpoint [Any], a variant distinct from
// every concrete host. [Classify] maps an endpoint to its [Role]:
//
//   - wildcard: [RoleGeneric]
//   - host starting with "192.", "10." or "172.": [RoleInternal]
//   - any other host: [RoleExternal]
//
// # Actions
//
// [ParseAction] upper-cases the action text. ALLOW and DENY are the actions
// the renderer knows; other values are carried through unchanged so that a
// rule file is never rejected for its action.
//
// # Risky Rules
//
// [Resolved.WarnAny] flags the any→any ALLOW pattern, the one rule shape the
// diagram calls out with a warning color.
package rules
