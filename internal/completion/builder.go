package completion

import (
	"strings"
)

// Build opens a completion context for trigger, the rune just typed before
// caret. '{', '.' and ':' select variable, method and format mode; any other
// rune typed inside an open interpolation continues variable completion.
// It returns nil when no completion applies.
func (e *Engine) Build(text string, caret int, trigger rune) *Context {
	runes := []rune(text)
	if caret < 0 || caret > len(runes) {
		return nil
	}
	var ctx *Context
	switch trigger {
	case '{':
		ctx = e.buildVariable(runes, caret)
	case '.':
		ctx = e.buildMethod(runes, caret)
	case ':':
		ctx = e.buildFormat(runes, caret)
	default:
		if scanOpenBrace(runes, caret) >= 0 {
			ctx = e.buildVariable(runes, caret)
		}
	}
	if ctx != nil {
		e.log.V(1).Info("completion context opened",
			"mode", ctx.Mode.String(),
			"replaceStart", ctx.ReplaceStart,
			"filterStart", ctx.FilterStart,
			"replaceEnd", ctx.ReplaceEnd,
			"items", len(ctx.Items))
	}
	return ctx
}

func (e *Engine) buildVariable(runes []rune, caret int) *Context {
	open := scanOpenBrace(runes, caret)
	if open < 0 {
		return nil
	}
	filterStart := open + 1
	end := clampAtCloser(runes, filterStart, caret)
	return newContext(ModeVariable, e.variableItems, open, filterStart, end, runes)
}

func (e *Engine) buildMethod(runes []rune, caret int) *Context {
	if caret < 1 || runes[caret-1] != '.' {
		return nil
	}
	dot := caret - 1
	open := -1
	limit := max(0, dot-e.lookback)
	for i := dot - 1; i >= limit; i-- {
		if runes[i] == '}' {
			return nil
		}
		if runes[i] == '{' {
			open = i
			break
		}
	}
	if open < 0 {
		return nil
	}
	name := strings.TrimSpace(string(runes[open+1 : dot]))
	if name == "" || e.reserved[name] {
		return nil
	}
	filterStart := dot + 1
	end := clampAtCloser(runes, filterStart, caret)
	return newContext(ModeMethod, e.methodItems, dot, filterStart, end, runes)
}

func (e *Engine) buildFormat(runes []rune, caret int) *Context {
	if e.variables == nil {
		return nil
	}
	colon := -1
	for i := caret - 1; i >= 0; i-- {
		if runes[i] == '{' || runes[i] == '}' {
			break
		}
		if runes[i] == ':' {
			colon = i
			break
		}
	}
	if colon < 0 {
		return nil
	}
	open := -1
	for i := colon - 1; i >= 0; i-- {
		if runes[i] == '}' || runes[i] == ':' {
			return nil
		}
		if runes[i] == '{' {
			open = i
			break
		}
	}
	if open < 0 {
		return nil
	}
	name := strings.TrimSpace(string(runes[open+1 : colon]))
	if name == "" {
		return nil
	}
	v, ok := e.variables.LookupVariable(name)
	if !ok || !v.HasFormats() {
		return nil
	}
	start := colon + 1
	end := clampAtCloser(runes, start, caret)
	return newContext(ModeFormat, formatItems(v), start, start, end, runes)
}

func newContext(mode Mode, items []Item, replaceStart, filterStart, replaceEnd int, runes []rune) *Context {
	original := append([]Item(nil), items...)
	filterText := ""
	if replaceEnd > filterStart {
		filterText = string(runes[filterStart:replaceEnd])
	}
	return &Context{
		Mode:          mode,
		Items:         Filter(original, filterText),
		OriginalItems: original,
		ReplaceStart:  replaceStart,
		ReplaceEnd:    replaceEnd,
		FilterStart:   filterStart,
	}
}
