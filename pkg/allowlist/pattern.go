package allowlist

import (
	"fmt"
	"regexp"
)

// Pattern describes text to remove from an entry before comparison.
//
// A non-global pattern removes only the first match in each entry; a global one
// removes every non-overlapping match.
type Pattern struct {
	re     *regexp.Regexp
	global bool
}

// Prefix returns a pattern that removes the literal prefix p when an entry starts with it.
func Prefix(p string) *Pattern {
	return &Pattern{re: regexp.MustCompile("^" + regexp.QuoteMeta(p))}
}

// Literal returns a pattern that removes the first occurrence of s.
func Literal(s string) *Pattern {
	return &Pattern{re: regexp.MustCompile(regexp.QuoteMeta(s))}
}

// Compile parses expr as a regular expression. When global is set every match is
// removed instead of only the first one.
func Compile(expr string, global bool) (*Pattern, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("compile strip pattern %q: %w", expr, err)
	}
	return &Pattern{re: re, global: global}, nil
}

// MustCompile is like Compile but panics if expr cannot be parsed.
func MustCompile(expr string, global bool) *Pattern {
	p, err := Compile(expr, global)
	if err != nil {
		panic(err)
	}
	return p
}

// Global reports whether the pattern removes every match.
func (p *Pattern) Global() bool { return p.global }

// String returns the source expression.
func (p *Pattern) String() string { return p.re.String() }

// Strip removes matches of the pattern from s.
func (p *Pattern) Strip(s string) string {
	if p.global {
		return p.re.ReplaceAllLiteralString(s, "")
	}
	loc := p.re.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + s[loc[1]:]
}
