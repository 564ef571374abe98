package completion

import (
	"unicode/utf8"
)

// State is the session state owned by a host editor. The zero value is the
// closed state.
type State struct {
	Context *Context
}

// Open reports whether a completion popup is showing.
func (s State) Open() bool {
	return s.Context != nil
}

// Event is something the host observed on its buffer.
type Event interface {
	isEvent()
}

// Typed reports an edit. Text and Caret describe the buffer after the edit
// (including any closer the host auto-inserted); Input is the text the user
// inserted, empty for deletions.
type Typed struct {
	Text  string
	Caret int
	Input string
}

// CaretMoved reports a caret move without a text change.
type CaretMoved struct {
	Text  string
	Caret int
}

// Accept asks to apply Context.Items[Index] to Text.
type Accept struct {
	Text  string
	Index int
}

// Dismiss closes the popup (Esc, focus loss, catalog reload).
type Dismiss struct{}

func (Typed) isEvent()      {}
func (CaretMoved) isEvent() {}
func (Accept) isEvent()     {}
func (Dismiss) isEvent()    {}

// EffectKind tells the host what to do with its popup after a step.
type EffectKind int

const (
	EffectNone       EffectKind = iota // nothing changed
	EffectOpened                       // show a new popup (replaces any previous one)
	EffectRefiltered                   // refresh the items of the open popup
	EffectClosed                       // hide the popup
	EffectApplied                      // hide the popup and apply Edit to the buffer
)

func (k EffectKind) String() string {
	switch k {
	case EffectOpened:
		return "opened"
	case EffectRefiltered:
		return "refiltered"
	case EffectClosed:
		return "closed"
	case EffectApplied:
		return "applied"
	default:
		return "none"
	}
}

// Effect is the side effect a host performs after a step.
type Effect struct {
	Kind EffectKind
	Edit *Edit // set for EffectApplied
}

// Edit is the result of applying a completion item.
type Edit struct {
	Start       int    // ReplaceStart of the context
	End         int    // ReplaceEnd of the context
	Replacement string // text written over [Start, End)
	Text        string // the whole buffer after the edit
	Caret       int    // caret offset after the edit
}

// Step advances a session by one event. It never mutates s; the returned
// state replaces it.
func (e *Engine) Step(s State, ev Event) (State, Effect) {
	switch ev := ev.(type) {
	case Typed:
		return e.stepTyped(s, ev)
	case CaretMoved:
		if !s.Open() {
			return s, Effect{Kind: EffectNone}
		}
		return refreshed(e.Update(s.Context, ev.Text, ev.Caret))
	case Accept:
		if !s.Open() || ev.Index < 0 || ev.Index >= len(s.Context.Items) {
			return s, Effect{Kind: EffectNone}
		}
		edit, ok := Apply(ev.Text, s.Context, s.Context.Items[ev.Index])
		if !ok {
			return State{}, Effect{Kind: EffectClosed}
		}
		e.log.V(1).Info("completion applied", "mode", s.Context.Mode.String(), "replacement", edit.Replacement, "caret", edit.Caret)
		return State{}, Effect{Kind: EffectApplied, Edit: &edit}
	case Dismiss:
		if !s.Open() {
			return s, Effect{Kind: EffectNone}
		}
		return State{}, Effect{Kind: EffectClosed}
	default:
		return s, Effect{Kind: EffectNone}
	}
}

func (e *Engine) stepTyped(s State, ev Typed) (State, Effect) {
	last, _ := utf8.DecodeLastRuneInString(ev.Input)
	if ev.Input == "" {
		last = 0
	}
	if !s.Open() {
		if last == 0 {
			return s, Effect{Kind: EffectNone}
		}
		if ctx := e.Build(ev.Text, ev.Caret, last); ctx != nil {
			return State{Context: ctx}, Effect{Kind: EffectOpened}
		}
		return s, Effect{Kind: EffectNone}
	}
	if isTrigger(last) {
		if ctx := e.Build(ev.Text, ev.Caret, last); ctx != nil {
			return State{Context: ctx}, Effect{Kind: EffectOpened}
		}
	}
	return refreshed(e.Update(s.Context, ev.Text, ev.Caret))
}

func refreshed(ctx *Context) (State, Effect) {
	if ctx == nil {
		return State{}, Effect{Kind: EffectClosed}
	}
	return State{Context: ctx}, Effect{Kind: EffectRefiltered}
}

func isTrigger(r rune) bool {
	return r == '{' || r == '.' || r == ':'
}

// Apply writes item over [ctx.ReplaceStart, ctx.ReplaceEnd) of text and
// places the caret CursorOffset runes from the end of the replacement,
// clamped to [ReplaceStart, len(result)]. It reports false when the
// context does not fit text.
func Apply(text string, ctx *Context, item Item) (Edit, bool) {
	runes := []rune(text)
	if !ctx.Valid(len(runes)) {
		return Edit{}, false
	}
	replacement := []rune(item.Replacement)
	out := make([]rune, 0, len(runes)-(ctx.ReplaceEnd-ctx.ReplaceStart)+len(replacement))
	out = append(out, runes[:ctx.ReplaceStart]...)
	out = append(out, replacement...)
	out = append(out, runes[ctx.ReplaceEnd:]...)

	caret := ctx.ReplaceStart + len(replacement) + item.CursorOffset
	caret = max(ctx.ReplaceStart, min(caret, len(out)))
	return Edit{
		Start:       ctx.ReplaceStart,
		End:         ctx.ReplaceEnd,
		Replacement: item.Replacement,
		Text:        string(out),
		Caret:       caret,
	}, true
}
