package rules

// Examples returns the built-in rule set written on first run when no rule
// file exists. Each call returns a fresh slice.
func Examples() []Rule {
	return []Rule{
		{Source: "192.168.1.10", Destination: "10.0.0.5", Port: "22", Protocol: "tcp", Action: "ALLOW"},
		{Source: "any", Destination: "10.0.0.10", Port: "80", Protocol: "tcp", Action: "ALLOW"},
		{Source: "any", Destination: "any", Port: "any", Protocol: "udp", Action: "ALLOW"},
		{Source: "10.0.0.2", Destination: "192.168.1.2", Port: "443", Protocol: "tcp", Action: "DENY"},
	}
}
