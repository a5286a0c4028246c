package policy

import (
	"errors"
	"fmt"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/checker/decls"
)

// ErrNotBoolean reports a filter expression that does not yield a bool.
var ErrNotBoolean = errors.New("filter expression must evaluate to bool")

// ShopFacts are the variables a filter expression can reference.
type ShopFacts struct {
	ID     uint64
	Degree int
	Impact int
	Core   bool
	Winner bool
}

func (f ShopFacts) vars() map[string]interface{} {
	return map[string]interface{}{
		"id":     f.ID,
		"degree": int64(f.Degree),
		"impact": int64(f.Impact),
		"core":   f.Core,
		"winner": f.Winner,
	}
}

// ShopFilter is a compiled CEL predicate over ShopFacts,
// e.g. "core && impact > 2" or "degree >= 3 || id == 7u".
type ShopFilter struct {
	expr string
	prg  cel.Program
}

// NewShopFilter compiles expr. An empty expression matches every shop.
func NewShopFilter(expr string) (*ShopFilter, error) {
	if expr == "" {
		return &ShopFilter{}, nil
	}

	env, err := cel.NewEnv(
		cel.Declarations(
			decls.NewVar("id", decls.Uint),
			decls.NewVar("degree", decls.Int),
			decls.NewVar("impact", decls.Int),
			decls.NewVar("core", decls.Bool),
			decls.NewVar("winner", decls.Bool),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL env: %w", err)
	}

	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("filter compilation error: %w", issues.Err())
	}
	if ast.OutputType() != cel.BoolType {
		return nil, fmt.Errorf("%w: %q yields %s", ErrNotBoolean, expr, ast.OutputType())
	}

	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("filter program creation error: %w", err)
	}

	return &ShopFilter{expr: expr, prg: prg}, nil
}

// String returns the source expression.
func (f *ShopFilter) String() string {
	return f.expr
}

// Match evaluates the filter for one shop.
func (f *ShopFilter) Match(facts ShopFacts) (bool, error) {
	if f.prg == nil {
		return true, nil
	}

	out, _, err := f.prg.Eval(facts.vars())
	if err != nil {
		return false, fmt.Errorf("filter evaluation failed for shop %d: %w", facts.ID, err)
	}

	match, ok := out.Value().(bool)
	if !ok {
		return false, ErrNotBoolean
	}
	return match, nil
}
