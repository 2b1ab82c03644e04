// Package allowexpr compiles CEL allow rules evaluated against a single
// normalized allow-list entry.
package allowexpr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/ext"
)

// EntryVar is the variable name a rule uses to refer to the entry under test.
const EntryVar = "entry"

// Rule is a compiled, type-checked boolean expression.
type Rule struct {
	source string
	prg    cel.Program
}

// Compile parses and type-checks expr. The expression must evaluate to bool.
func Compile(expr string) (*Rule, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, errors.New("rule expression is empty")
	}

	env, err := buildEnv()
	if err != nil {
		return nil, err
	}

	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("invalid rule: %w", issues.Err())
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, fmt.Errorf("rule must evaluate to bool, got %s", ast.OutputType())
	}

	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("build program: %w", err)
	}
	return &Rule{source: expr, prg: prg}, nil
}

// Allows evaluates the rule with entry bound to EntryVar.
func (r *Rule) Allows(entry string) (bool, error) {
	out, _, err := r.prg.Eval(map[string]any{EntryVar: entry})
	if err != nil {
		return false, fmt.Errorf("evaluate rule %q: %w", r.source, err)
	}
	allowed, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("rule %q returned %T, want bool", r.source, out.Value())
	}
	return allowed, nil
}

// String returns the rule source.
func (r *Rule) String() string { return r.source }

func buildEnv() (*cel.Env, error) {
	// ext.Strings adds split, lowerAscii and friends on top of the standard
	// startsWith/endsWith/contains/matches.
	return cel.NewEnv(
		cel.Variable(EntryVar, cel.StringType),
		ext.Strings(),
	)
}
