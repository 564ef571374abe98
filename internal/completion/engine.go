package completion

import (
	"github.com/go-logr/logr"

	"github.com/oakwood-commons/tplc/internal/catalog"
)

// DefaultMethodLookback bounds how far back from a '.' the method trigger
// looks for the enclosing '{'. It caps the cost of a keystroke on long
// lines with no braces; a variable name longer than this gets no method
// completion.
const DefaultMethodLookback = 50

// DefaultReservedNames are variable names that never start method
// completion. "i" is the conventional loop counter.
var DefaultReservedNames = []string{"i"}

// VariableCatalog supplies the variables offered in variable mode and
// resolves the variable in front of a ':'.
type VariableCatalog interface {
	Variables() []catalog.Variable
	LookupVariable(name string) (catalog.Variable, bool)
}

// MethodCatalog supplies the methods offered in method mode.
type MethodCatalog interface {
	Methods() []catalog.Method
}

// Engine computes completion contexts for {variable} templates.
// It holds only read-only catalog data and may be shared by any number of
// sessions; every method is a pure computation over the arguments.
type Engine struct {
	variables VariableCatalog
	methods   MethodCatalog

	variableItems []Item
	methodItems   []Item

	lookback int
	reserved map[string]bool
	log      logr.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithMethodLookback overrides DefaultMethodLookback. Values below 1 are
// ignored.
func WithMethodLookback(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.lookback = n
		}
	}
}

// WithReservedNames replaces DefaultReservedNames. An empty list disables
// the check.
func WithReservedNames(names ...string) Option {
	return func(e *Engine) {
		e.reserved = make(map[string]bool, len(names))
		for _, n := range names {
			e.reserved[n] = true
		}
	}
}

// WithLogger sets the logger used for V(1) tracing of session transitions.
func WithLogger(log logr.Logger) Option {
	return func(e *Engine) {
		e.log = log
	}
}

// NewEngine creates an engine over the given catalogs. Candidate items are
// precomputed here, so the catalogs must not change afterwards; build a new
// engine (and start new sessions) instead.
func NewEngine(variables VariableCatalog, methods MethodCatalog, opts ...Option) *Engine {
	e := &Engine{
		variables: variables,
		methods:   methods,
		lookback:  DefaultMethodLookback,
		log:       logr.Discard(),
	}
	WithReservedNames(DefaultReservedNames...)(e)
	for _, opt := range opts {
		opt(e)
	}
	if variables != nil {
		e.variableItems = variableItems(variables.Variables())
	}
	if methods != nil {
		e.methodItems = methodItems(methods.Methods())
	}
	return e
}

// NewEngineFromRegistry is a shortcut for a registry serving as both
// catalogs, with its reserved names applied.
func NewEngineFromRegistry(r *catalog.Registry, opts ...Option) *Engine {
	all := append([]Option{WithReservedNames(r.Reserved()...)}, opts...)
	return NewEngine(r, r, all...)
}

// IsInsideBraces returns the offset of the '{' enclosing caret, or -1.
func (e *Engine) IsInsideBraces(text string, caret int) int {
	return ScanOpenBrace(text, caret)
}

// GetCompletionContext opens a context for a trigger rune typed just before
// caret. It returns nil when no completion applies.
func (e *Engine) GetCompletionContext(text string, caret int, trigger rune) *Context {
	return e.Build(text, caret, trigger)
}

// UpdateCompletionContext re-validates and re-filters ctx after an edit or
// caret move. It returns nil when the context must close.
func (e *Engine) UpdateCompletionContext(ctx *Context, text string, caret int) *Context {
	return e.Update(ctx, text, caret)
}

func variableItems(vars []catalog.Variable) []Item {
	items := make([]Item, 0, len(vars))
	for _, v := range vars {
		label := "{" + v.Name + "}"
		items = append(items, Item{
			Text:         v.Name,
			DisplayText:  label,
			Description:  v.Description,
			Replacement:  label,
			CursorOffset: -1,
			Metadata:     VariableMetadata{Name: v.Name, HasFormats: v.HasFormats()},
		})
	}
	return items
}

// methodItems emits one item per canonical name and one per alias; all of
// them insert the canonical name.
func methodItems(methods []catalog.Method) []Item {
	items := make([]Item, 0, len(methods))
	for _, m := range methods {
		for i, name := range m.Names() {
			if name == "" {
				continue
			}
			desc := m.Description
			if i > 0 {
				desc = "alias of " + m.Name
				if m.Description != "" {
					desc += ": " + m.Description
				}
			}
			items = append(items, Item{
				Text:         name,
				DisplayText:  name,
				Description:  desc,
				Replacement:  "." + m.Name,
				CursorOffset: 0,
				Metadata: MethodMetadata{
					Canonical:     m.Name,
					IsAlias:       i > 0,
					HasParameters: m.HasParameters,
				},
			})
		}
	}
	return items
}

func formatItems(v catalog.Variable) []Item {
	items := make([]Item, 0, len(v.Formats))
	for _, f := range v.Formats {
		items = append(items, Item{
			Text:        f.Text,
			DisplayText: f.Text,
			Description: f.Description,
			Replacement: f.Text,
			Metadata:    FormatMetadata{Variable: v.Name},
		})
	}
	return items
}
