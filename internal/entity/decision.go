package entity

// Decision is the outcome of checking one value against the allow-list.
type Decision struct {
	Value      string `json:"value" yaml:"value"`
	Normalized string `json:"normalized" yaml:"normalized"`
	Allowed    bool   `json:"allowed" yaml:"allowed"`

	// MatchedEntry is the normalized allow-list entry that matched, if any.
	MatchedEntry string `json:"matched_entry,omitempty" yaml:"matched_entry,omitempty"`
	// MatchedRule is set when the entry was admitted by the configured rule.
	MatchedRule  string `json:"matched_rule,omitempty" yaml:"matched_rule,omitempty"`
}

// Reason returns a short human-readable explanation of the decision.
func (d *Decision) Reason() string {
	switch {
	case d.MatchedEntry != "":
		return "matches entry " + d.MatchedEntry
	case d.MatchedRule != "":
		return "matches rule " + d.MatchedRule
	default:
		return "no matching entry or rule"
	}
}
