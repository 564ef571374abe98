// Package render expands {variable} templates against concrete values for
// previews. It understands the same syntax the completion engine offers:
// {name}, {name:format} and {name.method(args)} chains.
package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-logr/logr"

	"github.com/oakwood-commons/tplc/internal/catalog"
	"github.com/oakwood-commons/tplc/internal/cel"
)

var (
	ErrUnknownVariable = errors.New("unknown variable")
	ErrUnknownMethod   = errors.New("unknown method")
	ErrNoExpression    = errors.New("method has no expression")
	ErrSyntax          = errors.New("malformed interpolation")
)

// MethodLookup resolves a method by canonical name or alias.
type MethodLookup interface {
	LookupMethod(name string) (catalog.Method, bool)
}

// Renderer expands templates. It is safe for concurrent use.
type Renderer struct {
	methods MethodLookup
	eval    *cel.Evaluator
	log     logr.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the logger used for V(1) tracing of failed
// interpolations.
func WithLogger(log logr.Logger) Option {
	return func(r *Renderer) {
		r.log = log
	}
}

// New creates a renderer resolving methods through methods.
func New(methods MethodLookup, opts ...Option) (*Renderer, error) {
	eval, err := cel.NewEvaluator()
	if err != nil {
		return nil, err
	}
	r := &Renderer{methods: methods, eval: eval, log: logr.Discard()}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Render expands every interpolation in tmpl. "{{" and "}}" produce literal
// braces. An interpolation that cannot be expanded is copied through
// verbatim and its problem is included in the returned error, so the
// output is always usable as a preview.
func (r *Renderer) Render(tmpl string, values map[string]string) (string, error) {
	var out strings.Builder
	var errs []error
	runes := []rune(tmpl)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch {
		case c == '{' && i+1 < len(runes) && runes[i+1] == '{':
			out.WriteRune('{')
			i++
		case c == '}' && i+1 < len(runes) && runes[i+1] == '}':
			out.WriteRune('}')
			i++
		case c == '{':
			end := closingBrace(runes, i+1)
			if end < 0 {
				out.WriteString(string(runes[i:]))
				return out.String(), errors.Join(append(errs, fmt.Errorf("%w: unterminated %q", ErrSyntax, string(runes[i:])))...)
			}
			body := string(runes[i+1 : end])
			expanded, err := r.expand(body, values)
			if err != nil {
				r.log.V(1).Info("interpolation kept verbatim", "interpolation", body, "error", err.Error())
				errs = append(errs, err)
				expanded = "{" + body + "}"
			}
			out.WriteString(expanded)
			i = end
		default:
			out.WriteRune(c)
		}
	}
	return out.String(), errors.Join(errs...)
}

// closingBrace finds the '}' ending an interpolation that starts at from,
// skipping braces inside quoted method arguments.
func closingBrace(runes []rune, from int) int {
	var quote rune
	for i := from; i < len(runes); i++ {
		c := runes[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == '}':
			return i
		case c == '{':
			return -1
		}
	}
	return -1
}

func (r *Renderer) expand(body string, values map[string]string) (string, error) {
	expr, err := parseInterpolation(body)
	if err != nil {
		return "", err
	}
	value, ok := lookupValue(values, expr.Name)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownVariable, expr.Name)
	}
	if expr.Format != "" {
		value = FormatValue(value, expr.Format)
	}
	for _, call := range expr.Calls {
		m, ok := r.methods.LookupMethod(call.Name)
		if !ok {
			return "", fmt.Errorf("{%s}: %w: %q", body, ErrUnknownMethod, call.Name)
		}
		if m.Expr == "" {
			return "", fmt.Errorf("{%s}: %w: %q", body, ErrNoExpression, m.Name)
		}
		value, err = r.eval.Eval(m.Expr, value, call.Args)
		if err != nil {
			return "", fmt.Errorf("{%s}: method %q: %w", body, m.Name, err)
		}
	}
	return value, nil
}

// lookupValue tries the exact name first, then a case-insensitive match.
func lookupValue(values map[string]string, name string) (string, bool) {
	if v, ok := values[name]; ok {
		return v, true
	}
	for k, v := range values {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return "", false
}
