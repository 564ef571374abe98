package completion

// Update re-validates ctx against the edited text and caret and returns a
// re-filtered copy, or nil when the context has to close:
//
//  1. the caret is no longer inside an open interpolation;
//  2. the caret moved before the anchor or past the end of the text, or the
//     anchor itself was edited away;
//  3. a '}' was typed between the anchor and the caret.
func (e *Engine) Update(ctx *Context, text string, caret int) *Context {
	if ctx == nil {
		return nil
	}
	runes := []rune(text)
	if reason := closeReason(ctx, runes, caret); reason != "" {
		e.log.V(1).Info("completion context closed", "mode", ctx.Mode.String(), "reason", reason, "caret", caret)
		return nil
	}
	filterText := ""
	if caret > ctx.FilterStart {
		filterText = string(runes[ctx.FilterStart:min(caret, len(runes))])
	}
	return &Context{
		Mode:          ctx.Mode,
		Items:         Filter(ctx.OriginalItems, filterText),
		OriginalItems: ctx.OriginalItems,
		ReplaceStart:  ctx.ReplaceStart,
		ReplaceEnd:    caret,
		FilterStart:   ctx.FilterStart,
	}
}

func closeReason(ctx *Context, runes []rune, caret int) string {
	if scanOpenBrace(runes, caret) < 0 {
		return "outside braces"
	}
	if caret < ctx.ReplaceStart || caret > len(runes) {
		return "caret before anchor"
	}
	// A caret before FilterStart would break the offset ordering; it means
	// the trigger rune was deleted or stepped over.
	if caret < ctx.FilterStart || !anchorIntact(ctx, runes) {
		return "anchor edited"
	}
	if indexRune(runes, '}', ctx.ReplaceStart+1, caret) >= 0 {
		return "interpolation closed"
	}
	return ""
}

// anchorIntact checks that the trigger rune still sits right before
// FilterStart.
func anchorIntact(ctx *Context, runes []rune) bool {
	i := ctx.FilterStart - 1
	return i >= 0 && i < len(runes) && runes[i] == ctx.Mode.Trigger()
}
