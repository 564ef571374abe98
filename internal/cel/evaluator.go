// Package cel runs the CEL expressions behind catalog methods. Every
// expression sees the current value as `s` (string) and the call arguments
// as `args` (list of strings) and must produce a value with a string form.
package cel

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/decls"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"
	celext "github.com/google/cel-go/ext"
)

const (
	ValueVar = "s"
	ArgsVar  = "args"
)

// Evaluator compiles method expressions once and evaluates them on demand.
// It is safe for concurrent use.
type Evaluator struct {
	env *cel.Env

	mu       sync.RWMutex
	programs map[string]cel.Program
}

// NewEvaluator creates an evaluator with the string and encoder extensions.
func NewEvaluator(opts ...cel.EnvOption) (*Evaluator, error) {
	env, err := newMethodEnv(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}
	return &Evaluator{env: env, programs: make(map[string]cel.Program)}, nil
}

func newMethodEnv(opts ...cel.EnvOption) (*cel.Env, error) {
	allOpts := make([]cel.EnvOption, 0, 4+len(opts))
	allOpts = append(allOpts,
		cel.Variable(ValueVar, cel.StringType),
		cel.Variable(ArgsVar, cel.ListType(cel.StringType)),
		celext.Strings(),
		celext.Encoders(),
	)
	allOpts = append(allOpts, opts...)
	return cel.NewEnv(allOpts...)
}

// Check compiles expr without running it.
func (e *Evaluator) Check(expr string) error {
	_, err := e.program(expr)
	return err
}

// Eval runs expr with s and args bound and returns the string form of the
// result.
func (e *Evaluator) Eval(expr, s string, args []string) (string, error) {
	prg, err := e.program(expr)
	if err != nil {
		return "", err
	}
	if args == nil {
		args = []string{}
	}
	result, _, err := prg.Eval(map[string]any{
		ValueVar: s,
		ArgsVar:  args,
	})
	if err != nil {
		return "", fmt.Errorf("eval error: %w", err)
	}
	return ToString(result), nil
}

func (e *Evaluator) program(expr string) (cel.Program, error) {
	e.mu.RLock()
	prg, ok := e.programs[expr]
	e.mu.RUnlock()
	if ok {
		return prg, nil
	}

	ast, issues := e.env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compilation error: %w", issues.Err())
	}
	prg, err := e.env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program error: %w", err)
	}

	e.mu.Lock()
	e.programs[expr] = prg
	e.mu.Unlock()
	return prg, nil
}

// ToString converts a CEL result to the text written into a template.
func ToString(val ref.Val) string {
	switch v := val.(type) {
	case nil:
		return ""
	case types.String:
		return string(v)
	case types.Bytes:
		return string(v)
	case types.Bool:
		if v {
			return "true"
		}
		return "false"
	case types.Int:
		return fmt.Sprint(int64(v))
	case types.Uint:
		return fmt.Sprint(uint64(v))
	case types.Double:
		return fmt.Sprint(float64(v))
	}
	return fmt.Sprint(val.Value())
}

// StringFunctions lists the member functions callable on `s`, one usage
// line each, sorted. Catalog authors use it when writing method
// expressions.
func (e *Evaluator) StringFunctions() []string {
	seen := make(map[string]bool)
	var out []string
	for _, fn := range e.env.Functions() {
		if isOperator(fn.Name()) {
			continue
		}
		for _, o := range fn.OverloadDecls() {
			if !o.IsMemberFunction() || typeLabel(o.ArgTypes()[0]) != "string" {
				continue
			}
			usage := usageFromOverload(fn.Name(), o)
			if !seen[usage] {
				seen[usage] = true
				out = append(out, usage)
			}
		}
	}
	sort.Strings(out)
	return out
}

func isOperator(name string) bool {
	return strings.HasPrefix(name, "@") || strings.HasPrefix(name, "_") || strings.HasPrefix(name, "!") || strings.HasPrefix(name, "-")
}

func typeLabel(t *types.Type) string {
	if t == nil {
		return "any"
	}
	if name := t.DeclaredTypeName(); name != "" {
		return name
	}
	return "any"
}

func formatParams(params []*types.Type) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = typeLabel(p)
	}
	return strings.Join(parts, ", ")
}

// usageFromOverload renders a member overload as "string.name(args) -> result".
func usageFromOverload(name string, o *decls.OverloadDecl) string {
	params := o.ArgTypes()
	call := typeLabel(params[0]) + "." + name + "(" + formatParams(params[1:]) + ")"
	if o.ResultType() == nil {
		return call
	}
	return call + " -> " + typeLabel(o.ResultType())
}
