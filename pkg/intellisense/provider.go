// Package intellisense exports the tplc completion engine for host editors.
//
// A host creates one Engine per catalog and keeps one State per editor
// buffer. After every edit or caret move it feeds an Event to Step and acts
// on the returned Effect:
//
//	eng, err := intellisense.NewDefaultEngine()
//	if err != nil {
//		return err
//	}
//	var st intellisense.State
//	st, eff := eng.Step(st, intellisense.Typed{Text: "{", Caret: 1, Input: "{"})
//	if eff.Kind == intellisense.EffectOpened {
//		for _, item := range st.Context.Items {
//			fmt.Println(item.DisplayText, item.Description)
//		}
//	}
//
// All offsets are rune offsets.
package intellisense

import (
	"fmt"

	"github.com/oakwood-commons/tplc/internal/catalog"
	"github.com/oakwood-commons/tplc/internal/completion"
)

type (
	Engine          = completion.Engine
	Option          = completion.Option
	VariableCatalog = completion.VariableCatalog
	MethodCatalog   = completion.MethodCatalog

	Mode             = completion.Mode
	Item             = completion.Item
	Context          = completion.Context
	VariableMetadata = completion.VariableMetadata
	MethodMetadata   = completion.MethodMetadata
	FormatMetadata   = completion.FormatMetadata

	State      = completion.State
	Event      = completion.Event
	Typed      = completion.Typed
	CaretMoved = completion.CaretMoved
	Accept     = completion.Accept
	Dismiss    = completion.Dismiss
	Effect     = completion.Effect
	EffectKind = completion.EffectKind
	Edit       = completion.Edit

	Catalog      = catalog.Catalog
	Variable     = catalog.Variable
	Method       = catalog.Method
	FormatOption = catalog.FormatOption
	Registry     = catalog.Registry
)

const (
	ModeVariable = completion.ModeVariable
	ModeMethod   = completion.ModeMethod
	ModeFormat   = completion.ModeFormat

	EffectNone       = completion.EffectNone
	EffectOpened     = completion.EffectOpened
	EffectRefiltered = completion.EffectRefiltered
	EffectClosed     = completion.EffectClosed
	EffectApplied    = completion.EffectApplied

	DefaultMethodLookback = completion.DefaultMethodLookback
)

var (
	WithMethodLookback = completion.WithMethodLookback
	WithReservedNames  = completion.WithReservedNames
	WithLogger         = completion.WithLogger
)

// IsInsideBraces returns the rune offset of the '{' enclosing caret, or -1.
func IsInsideBraces(text string, caret int) int {
	return completion.ScanOpenBrace(text, caret)
}

// NewEngine creates an engine over caller-supplied catalogs.
func NewEngine(variables VariableCatalog, methods MethodCatalog, opts ...Option) *Engine {
	return completion.NewEngine(variables, methods, opts...)
}

// NewRegistry indexes a catalog for use as both engine catalogs.
func NewRegistry(c Catalog) *Registry {
	return catalog.NewRegistry(c)
}

// DefaultCatalog returns a copy of the built-in catalog.
func DefaultCatalog() (Catalog, error) {
	return catalog.Default()
}

// LoadCatalog reads a yaml, json or toml catalog file and lays it over the
// built-in catalog. The merged catalog is validated.
func LoadCatalog(path string) (Catalog, error) {
	base, err := catalog.Default()
	if err != nil {
		return base, fmt.Errorf("load default catalog: %w", err)
	}
	overlay, err := catalog.LoadFile(path)
	if err != nil {
		return base, err
	}
	merged := catalog.Merge(base, overlay)
	if err := catalog.Validate(merged); err != nil {
		return merged, fmt.Errorf("%s: %w", path, err)
	}
	return merged, nil
}

// NewDefaultEngine creates an engine over the built-in catalog.
func NewDefaultEngine(opts ...Option) (*Engine, error) {
	c, err := catalog.Default()
	if err != nil {
		return nil, fmt.Errorf("load default catalog: %w", err)
	}
	return completion.NewEngineFromRegistry(catalog.NewRegistry(c), opts...), nil
}

// Filter keeps the items whose Text or DisplayText starts with filterText,
// ignoring case.
func Filter(items []Item, filterText string) []Item {
	return completion.Filter(items, filterText)
}

// Apply writes item over the replace range of ctx in text.
func Apply(text string, ctx *Context, item Item) (Edit, bool) {
	return completion.Apply(text, ctx, item)
}
