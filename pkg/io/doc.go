// Package io reads and writes firewall rule files.
//
// # Overview
//
// A rule file holds a list of rule records, each with the optional keys
// source, destination, port, protocol and action:
//
//	[
//	    {"source": "192.168.1.10", "destination": "10.0.0.5", "port": "22", "protocol": "tcp", "action": "ALLOW"},
//	    {"source": "any", "destination": "any", "protocol": "udp"}
//	]
//
// The encoding is picked from the file extension: .yaml and .yml files are
// YAML sequences, .toml files hold a [[rules]] array of tables, and every
// other extension is JSON.
//
// No schema validation happens here. Unknown keys are ignored, missing keys
// stay empty and scalar values of other types (a numeric port, say) are
// converted to their text form. Defaults are applied later by
// [rules.Rule.Resolve].
//
// # Loading
//
// [LoadRules] is the entry point used by the pipeline. It bootstraps a
// missing file with [rules.Examples] and treats an undecodable file as an
// empty rule list, logging the decode error instead of returning it:
//
//	rs, err := io.LoadRules("firewall_rules.json", logger)
//	if err != nil {
//	    // filesystem failure
//	}
//	if len(rs) == 0 {
//	    // nothing to render
//	}
//
// [ImportRules] and [ExportRules] are the strict variants: decode errors are
// returned to the caller.
//
// [rules.Examples]: github.com/matzehuels/firewallviz/pkg/rules.Examples
// [rules.Rule.Resolve]: github.com/matzehuels/firewallviz/pkg/rules.Rule.Resolve
package io
