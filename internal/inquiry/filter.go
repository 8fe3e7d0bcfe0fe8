package inquiry

import (
	"context"
	"fmt"

	"github.com/google/cel-go/cel"
)

// RuleFilter evaluates operator-maintained CEL expressions against each parsed
// submission. A rule that yields true drops the inquiry the same way the
// honeypot does: generic success, no dispatch, nothing revealed to the sender.
type RuleFilter struct {
	programs []cel.Program
	sources  []string
}

func NewRuleFilter(rules []string) (*RuleFilter, error) {
	env, err := cel.NewEnv(
		cel.Variable("name", cel.StringType),
		cel.Variable("email", cel.StringType),
		cel.Variable("vehicle", cel.StringType),
		cel.Variable("country", cel.StringType),
		cel.Variable("message", cel.StringType),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}

	f := &RuleFilter{}
	for _, rule := range rules {
		ast, issues := env.Compile(rule)
		if issues != nil && issues.Err() != nil {
			return nil, fmt.Errorf("failed to compile spam rule %q: %w", rule, issues.Err())
		}

		if ast.OutputType() != cel.BoolType {
			return nil, fmt.Errorf("spam rule %q must return bool, got %v", rule, ast.OutputType())
		}

		program, err := env.Program(ast)
		if err != nil {
			return nil, fmt.Errorf("failed to build program for spam rule %q: %w", rule, err)
		}

		f.programs = append(f.programs, program)
		f.sources = append(f.sources, rule)
	}

	return f, nil
}

// Match reports whether any rule fires, together with the source text of the
// first match for logging. Evaluation errors are returned so the caller can
// decide; the service fails open.
func (f *RuleFilter) Match(ctx context.Context, req SubmitRequest) (bool, string, error) {
	if f == nil || len(f.programs) == 0 {
		return false, "", nil
	}

	vars := map[string]interface{}{
		"name":    req.Name,
		"email":   req.Email,
		"vehicle": req.Vehicle,
		"country": req.Country,
		"message": req.Message,
	}

	for i, program := range f.programs {
		result, _, err := program.ContextEval(ctx, vars)
		if err != nil {
			return false, "", fmt.Errorf("spam rule %q evaluation failed: %w", f.sources[i], err)
		}

		if matched, ok := result.Value().(bool); ok && matched {
			return true, f.sources[i], nil
		}
	}

	return false, "", nil
}
