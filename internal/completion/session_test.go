package completion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// editor is a minimal host buffer used to drive sessions in tests.
type editor struct {
	runes    []rune
	caret    int
	autoPair bool
}

func (ed *editor) text() string { return string(ed.runes) }

// typeRune inserts r at the caret, auto-pairing '{' when enabled, and
// returns the event the host would send.
func (ed *editor) typeRune(r rune) Typed {
	insert := []rune{r}
	if ed.autoPair && r == '{' {
		insert = append(insert, '}')
	}
	out := append([]rune{}, ed.runes[:ed.caret]...)
	out = append(out, insert...)
	ed.runes = append(out, ed.runes[ed.caret:]...)
	ed.caret++
	return Typed{Text: ed.text(), Caret: ed.caret, Input: string(r)}
}

func (ed *editor) backspace() Typed {
	ed.runes = append(ed.runes[:ed.caret-1], ed.runes[ed.caret:]...)
	ed.caret--
	return Typed{Text: ed.text(), Caret: ed.caret}
}

func (ed *editor) moveTo(caret int) CaretMoved {
	ed.caret = caret
	return CaretMoved{Text: ed.text(), Caret: caret}
}

// typeString feeds every rune of s through the session and returns the
// final state and the effect of the last step.
func typeString(e *Engine, s State, ed *editor, text string) (State, Effect) {
	var eff Effect
	for _, r := range text {
		s, eff = e.Step(s, ed.typeRune(r))
	}
	return s, eff
}

func TestSessionVariableCompletion(t *testing.T) {
	e := newTestEngine()
	ed := &editor{}

	s, eff := typeString(e, State{}, ed, "Hello ")
	assert.False(t, s.Open())
	assert.Equal(t, EffectNone, eff.Kind)

	s, eff = e.Step(s, ed.typeRune('{'))
	require.True(t, s.Open())
	assert.Equal(t, EffectOpened, eff.Kind)
	assert.Equal(t, ModeVariable, s.Context.Mode)

	s, eff = typeString(e, s, ed, "na")
	require.True(t, s.Open())
	assert.Equal(t, EffectRefiltered, eff.Kind)
	assert.Equal(t, []string{"name", "namespace"}, itemTexts(s.Context.Items))

	s, eff = e.Step(s, Accept{Text: ed.text(), Index: 0})
	assert.False(t, s.Open())
	require.Equal(t, EffectApplied, eff.Kind)
	require.NotNil(t, eff.Edit)
	assert.Equal(t, "Hello {name}", eff.Edit.Text)
	assert.Equal(t, 11, eff.Edit.Caret)
	assert.Equal(t, "{name}", eff.Edit.Replacement)
}

func TestSessionAutoPairedBraceIsLeftToHost(t *testing.T) {
	e := newTestEngine()
	ed := &editor{autoPair: true}

	s, eff := e.Step(State{}, ed.typeRune('{'))
	require.Equal(t, EffectOpened, eff.Kind)
	assert.Equal(t, "{}", ed.text())
	assert.Equal(t, 1, s.Context.ReplaceEnd)

	s, _ = typeString(e, s, ed, "da")
	require.True(t, s.Open())
	assert.Equal(t, "{da}", ed.text())
	assert.Equal(t, 3, s.Context.ReplaceEnd)

	_, eff = e.Step(s, Accept{Text: ed.text(), Index: 0})
	require.Equal(t, EffectApplied, eff.Kind)
	// The replacement stops before the existing closer.
	assert.Equal(t, "{date}}", eff.Edit.Text)
	assert.Equal(t, 5, eff.Edit.Caret)
}

func TestSessionModeChangeAndClosure(t *testing.T) {
	e := newTestEngine()
	ed := &editor{}

	s, _ := typeString(e, State{}, ed, "{name")
	require.True(t, s.Open())
	require.Equal(t, ModeVariable, s.Context.Mode)

	s, eff := e.Step(s, ed.typeRune('.'))
	require.True(t, s.Open())
	assert.Equal(t, EffectOpened, eff.Kind)
	assert.Equal(t, ModeMethod, s.Context.Mode)
	assert.Equal(t, 5, s.Context.ReplaceStart)

	s, _ = typeString(e, s, ed, "up")
	require.True(t, s.Open())
	assert.Equal(t, []string{"upper"}, itemTexts(s.Context.Items))

	s, eff = e.Step(s, ed.typeRune('}'))
	assert.False(t, s.Open())
	assert.Equal(t, EffectClosed, eff.Kind)

	// typing on after the closer does not reopen
	s, eff = typeString(e, s, ed, "xy")
	assert.False(t, s.Open())
	assert.Equal(t, EffectNone, eff.Kind)
}

func TestSessionFormatMode(t *testing.T) {
	e := newTestEngine()
	ed := &editor{}

	s, _ := typeString(e, State{}, ed, "{date")
	s, eff := e.Step(s, ed.typeRune(':'))
	require.True(t, s.Open())
	assert.Equal(t, EffectOpened, eff.Kind)
	assert.Equal(t, ModeFormat, s.Context.Mode)

	s, _ = typeString(e, s, ed, "h")
	require.True(t, s.Open())
	assert.Equal(t, []string{"HH:mm"}, itemTexts(s.Context.Items))

	_, eff = e.Step(s, Accept{Text: ed.text(), Index: 0})
	require.Equal(t, EffectApplied, eff.Kind)
	assert.Equal(t, "{date:HH:mm", eff.Edit.Text)
	assert.Equal(t, 11, eff.Edit.Caret)
}

func TestSessionColonWithoutFormatsKeepsVariableContext(t *testing.T) {
	e := newTestEngine()
	ed := &editor{}

	s, _ := typeString(e, State{}, ed, "{text")
	s, eff := e.Step(s, ed.typeRune(':'))
	require.True(t, s.Open(), "no format context, so the variable context is refiltered")
	assert.Equal(t, EffectRefiltered, eff.Kind)
	assert.Equal(t, ModeVariable, s.Context.Mode)
	assert.Empty(t, s.Context.Items)
}

func TestSessionBackspaceOverTrigger(t *testing.T) {
	e := newTestEngine()
	ed := &editor{}

	s, _ := typeString(e, State{}, ed, "{name.u")
	require.True(t, s.Open())
	require.Equal(t, ModeMethod, s.Context.Mode)

	s, eff := e.Step(s, ed.backspace())
	require.True(t, s.Open())
	assert.Equal(t, EffectRefiltered, eff.Kind)
	assert.Len(t, s.Context.Items, 4)

	s, eff = e.Step(s, ed.backspace())
	assert.False(t, s.Open())
	assert.Equal(t, EffectClosed, eff.Kind)

	// deleting while closed stays closed
	s, eff = e.Step(s, ed.backspace())
	assert.False(t, s.Open())
	assert.Equal(t, EffectNone, eff.Kind)
}

func TestSessionCaretMoves(t *testing.T) {
	e := newTestEngine()
	ed := &editor{}

	s, _ := typeString(e, State{}, ed, "ab {na")
	require.True(t, s.Open())

	s, eff := e.Step(s, ed.moveTo(5))
	require.True(t, s.Open())
	assert.Equal(t, EffectRefiltered, eff.Kind)
	assert.Equal(t, 5, s.Context.ReplaceEnd)

	s, eff = e.Step(s, ed.moveTo(1))
	assert.False(t, s.Open())
	assert.Equal(t, EffectClosed, eff.Kind)

	// moving back inside does not reopen by itself
	s, eff = e.Step(s, ed.moveTo(5))
	assert.False(t, s.Open())
	assert.Equal(t, EffectNone, eff.Kind)
}

func TestSessionDismissAndInvalidAccept(t *testing.T) {
	e := newTestEngine()
	ed := &editor{}

	s, _ := typeString(e, State{}, ed, "{")
	require.True(t, s.Open())

	same, eff := e.Step(s, Accept{Text: ed.text(), Index: 99})
	assert.Equal(t, s, same)
	assert.Equal(t, EffectNone, eff.Kind)

	same, eff = e.Step(s, Accept{Text: ed.text(), Index: -1})
	assert.Equal(t, s, same)
	assert.Equal(t, EffectNone, eff.Kind)

	closed, eff := e.Step(s, Dismiss{})
	assert.False(t, closed.Open())
	assert.Equal(t, EffectClosed, eff.Kind)

	_, eff = e.Step(closed, Dismiss{})
	assert.Equal(t, EffectNone, eff.Kind)

	_, eff = e.Step(closed, Accept{Text: ed.text(), Index: 0})
	assert.Equal(t, EffectNone, eff.Kind)
}

func TestSessionAcceptOnStaleText(t *testing.T) {
	e := newTestEngine()
	s, _ := typeString(e, State{}, &editor{}, "Hello {na")
	require.True(t, s.Open())

	s, eff := e.Step(s, Accept{Text: "Hi", Index: 0})
	assert.False(t, s.Open())
	assert.Equal(t, EffectClosed, eff.Kind)
	assert.Nil(t, eff.Edit)
}

func TestApplyClampsCaret(t *testing.T) {
	ctx := &Context{ReplaceStart: 1, FilterStart: 2, ReplaceEnd: 2}

	edit, ok := Apply("x.", ctx, Item{Replacement: ".up", CursorOffset: 10})
	require.True(t, ok)
	assert.Equal(t, "x.up", edit.Text)
	assert.Equal(t, 4, edit.Caret)

	edit, ok = Apply("x.", ctx, Item{Replacement: ".up", CursorOffset: -10})
	require.True(t, ok)
	assert.Equal(t, 1, edit.Caret)

	_, ok = Apply("x", ctx, Item{Replacement: ".up"})
	assert.False(t, ok)

	_, ok = Apply("x.", nil, Item{})
	assert.False(t, ok)
}

func TestApplyKeepsTextAfterReplaceEnd(t *testing.T) {
	ctx := &Context{ReplaceStart: 2, FilterStart: 3, ReplaceEnd: 4}
	edit, ok := Apply("日本{語x}!", ctx, Item{Replacement: "{name}", CursorOffset: -1})
	require.True(t, ok)
	assert.Equal(t, "日本{name}x}!", edit.Text)
	assert.Equal(t, 7, edit.Caret)
}

func TestEffectKindString(t *testing.T) {
	assert.Equal(t, "none", EffectNone.String())
	assert.Equal(t, "opened", EffectOpened.String())
	assert.Equal(t, "refiltered", EffectRefiltered.String())
	assert.Equal(t, "closed", EffectClosed.String())
	assert.Equal(t, "applied", EffectApplied.String())
	assert.Equal(t, "variable", ModeVariable.String())
	assert.Equal(t, "method", ModeMethod.String())
	assert.Equal(t, "format", ModeFormat.String())
}
