package rules

import "strings"

// Action is the upper-cased verdict of a rule.
type Action string

const (
	ActionAllow Action = "ALLOW"
	ActionDeny  Action = "DENY"
)

// ParseAction normalizes action text. Matching is case-insensitive and an
// empty action means ALLOW. Unrecognized actions are returned upper-cased.
func ParseAction(s string) Action {
	s = strings.ToUpper(s)
	if s == "" {
		return ActionAllow
	}
	return Action(s)
}

// IsAllow reports whether a is ALLOW.
func (a Action) IsAllow() bool { return a == ActionAllow }

// IsDeny reports whether a is DENY.
func (a Action) IsDeny() bool { return a == ActionDeny }

// Matches reports whether a equals other, ignoring case.
func (a Action) Matches(other Action) bool {
	return strings.EqualFold(string(a), string(other))
}

func (a Action) String() string { return string(a) }
