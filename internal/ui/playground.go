// Package ui implements the interactive completion playground: a single
// line editor that drives a completion session the way a real host editor
// would and shows the popup, the context offsets and a rendered preview.
package ui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	runewidth "github.com/mattn/go-runewidth"

	"github.com/oakwood-commons/tplc/internal/catalog"
	"github.com/oakwood-commons/tplc/internal/completion"
	"github.com/oakwood-commons/tplc/internal/limiter"
	"github.com/oakwood-commons/tplc/internal/render"
)

const (
	defaultPrompt  = "> "
	defaultMaxRows = 8
	charLimit      = 1000
	maxHelpFormats = 3
)

// HelpCatalog resolves the catalog entry behind the highlighted item.
type HelpCatalog interface {
	LookupVariable(name string) (catalog.Variable, bool)
	LookupMethod(name string) (catalog.Method, bool)
}

// Options configures a playground Model.
type Options struct {
	// Initial is the starting buffer; the caret starts at its end.
	Initial string
	// AutoPair inserts '}' after a typed '{' and types over it later.
	AutoPair bool
	// MaxRows caps the visible popup rows; 0 means the default.
	MaxRows int
	NoColor bool
	// AltScreen renders in the terminal's alternate screen.
	AltScreen bool
	// Renderer and Values enable the preview line.
	Renderer *render.Renderer
	Values   map[string]string
	// Catalog enables the help lines under the popup.
	Catalog HelpCatalog
}

// Model is the bubbletea model of the playground. It owns the buffer and
// the completion session state.
type Model struct {
	engine *completion.Engine
	input  textinput.Model
	theme  Theme

	buf      []rune
	caret    int
	state    completion.State
	selected int
	effect   completion.EffectKind

	autoPair  bool
	maxRows   int
	altScreen bool
	width     int
	quitting  bool

	renderer *render.Renderer
	values   map[string]string
	help     HelpCatalog
}

// NewModel creates a playground over engine.
func NewModel(engine *completion.Engine, opts Options) *Model {
	ti := textinput.New()
	ti.Prompt = defaultPrompt
	ti.Placeholder = "type a template, e.g. Hello {name.upper}"
	ti.CharLimit = charLimit
	ti.SetWidth(78)
	ti.Focus()

	m := &Model{
		engine:    engine,
		input:     ti,
		theme:     DefaultTheme(),
		autoPair:  opts.AutoPair,
		maxRows:   opts.MaxRows,
		altScreen: opts.AltScreen,
		renderer:  opts.Renderer,
		values:    opts.Values,
		help:      opts.Catalog,
	}
	if opts.NoColor {
		m.theme = PlainTheme()
	}
	if m.maxRows <= 0 {
		m.maxRows = defaultMaxRows
	}
	initial := []rune(opts.Initial)
	m.setBuffer(initial, len(initial))
	return m
}

// Text returns the buffer.
func (m *Model) Text() string { return string(m.buf) }

// Caret returns the caret as a rune offset.
func (m *Model) Caret() int { return m.caret }

// State returns the completion session state.
func (m *Model) State() completion.State { return m.state }

// Selected returns the index of the highlighted popup item.
func (m *Model) Selected() int { return m.selected }

// LastEffect returns the effect of the most recent session step.
func (m *Model) LastEffect() completion.EffectKind { return m.effect }

// Quitting reports whether the user asked to leave.
func (m *Model) Quitting() bool { return m.quitting }

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.SetWidth(max(10, msg.Width-runewidth.StringWidth(defaultPrompt)-1))
		return m, nil
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}
	if m.state.Open() {
		switch key {
		case "up":
			m.moveSelection(-1)
			return m, nil
		case "down":
			m.moveSelection(1)
			return m, nil
		case "tab", "enter":
			m.accept()
			return m, nil
		case "esc":
			m.step(completion.Dismiss{})
			return m, nil
		}
	} else if key == "esc" {
		m.quitting = true
		return m, tea.Quit
	}

	switch key {
	case "backspace":
		if m.caret > 0 {
			m.setBuffer(append(m.buf[:m.caret-1:m.caret-1], m.buf[m.caret:]...), m.caret-1)
			m.typed("")
		}
	case "delete":
		if m.caret < len(m.buf) {
			m.setBuffer(append(m.buf[:m.caret:m.caret], m.buf[m.caret+1:]...), m.caret)
			m.typed("")
		}
	case "left":
		m.moveCaret(m.caret - 1)
	case "right":
		m.moveCaret(m.caret + 1)
	case "home":
		m.moveCaret(0)
	case "end":
		m.moveCaret(len(m.buf))
	case "tab", "enter", "up", "down":
	default:
		if msg.Text != "" {
			m.insert(msg.Text)
		}
	}
	return m, nil
}

func (m *Model) insert(text string) {
	runes := []rune(text)
	if m.autoPair && text == "}" && m.caret < len(m.buf) && m.buf[m.caret] == '}' {
		m.moveCaret(m.caret + 1)
		return
	}
	if len(m.buf)+len(runes) > charLimit {
		return
	}
	buf := make([]rune, 0, len(m.buf)+len(runes)+1)
	buf = append(buf, m.buf[:m.caret]...)
	buf = append(buf, runes...)
	if m.autoPair && text == "{" {
		buf = append(buf, '}')
	}
	buf = append(buf, m.buf[m.caret:]...)
	m.setBuffer(buf, m.caret+len(runes))
	m.typed(text)
}

func (m *Model) moveCaret(caret int) {
	caret = max(0, min(caret, len(m.buf)))
	if caret == m.caret {
		return
	}
	m.setBuffer(m.buf, caret)
	m.step(completion.CaretMoved{Text: m.Text(), Caret: m.caret})
}

func (m *Model) typed(input string) {
	m.step(completion.Typed{Text: m.Text(), Caret: m.caret, Input: input})
}

func (m *Model) step(ev completion.Event) completion.Effect {
	st, eff := m.engine.Step(m.state, ev)
	m.state = st
	m.effect = eff.Kind
	switch eff.Kind {
	case completion.EffectOpened:
		m.selected = 0
	case completion.EffectRefiltered:
		m.selected = max(0, min(m.selected, len(st.Context.Items)-1))
	case completion.EffectClosed, completion.EffectApplied:
		m.selected = 0
	}
	return eff
}

func (m *Model) moveSelection(delta int) {
	n := len(m.state.Context.Items)
	if n == 0 {
		return
	}
	m.selected = (m.selected + delta + n) % n
}

// accept applies the highlighted item, then tidies what the session leaves
// to the host: a closer the auto-pair already inserted, and the parentheses
// of methods that take arguments.
func (m *Model) accept() {
	items := m.state.Context.Items
	if m.selected < 0 || m.selected >= len(items) {
		m.step(completion.Dismiss{})
		return
	}
	item := items[m.selected]
	eff := m.step(completion.Accept{Text: m.Text(), Index: m.selected})
	if eff.Kind != completion.EffectApplied {
		return
	}
	buf := []rune(eff.Edit.Text)
	caret := eff.Edit.Caret
	end := eff.Edit.Start + len([]rune(eff.Edit.Replacement))
	if m.autoPair && strings.HasSuffix(eff.Edit.Replacement, "}") && end < len(buf) && buf[end] == '}' {
		buf = append(buf[:end:end], buf[end+1:]...)
	}
	if md, ok := item.Metadata.(completion.MethodMetadata); ok && md.HasParameters {
		withParens := make([]rune, 0, len(buf)+2)
		withParens = append(withParens, buf[:caret]...)
		withParens = append(withParens, '(', ')')
		withParens = append(withParens, buf[caret:]...)
		buf = withParens
		caret++
	}
	m.setBuffer(buf, caret)
}

func (m *Model) setBuffer(buf []rune, caret int) {
	m.buf = buf
	m.caret = max(0, min(caret, len(buf)))
	m.input.SetValue(string(buf))
	m.input.SetCursor(m.caret)
}

func (m *Model) View() tea.View {
	v := tea.NewView(m.Render())
	v.AltScreen = m.altScreen
	return v
}

// Render returns the screen content as a string.
func (m *Model) Render() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("tplc playground") + "\n\n")
	b.WriteString(m.input.View() + "\n")
	b.WriteString(m.popupView())
	b.WriteString(m.helpView())
	b.WriteString(m.theme.Status.Render(m.statusLine()) + "\n")
	if m.renderer != nil {
		out, err := m.renderer.Render(m.Text(), m.values)
		b.WriteString(m.theme.Preview.Render("preview: "+out) + "\n")
		if err != nil {
			first, _, _ := strings.Cut(err.Error(), "\n")
			b.WriteString(m.theme.Error.Render("  "+first) + "\n")
		}
	}
	b.WriteString("\n" + m.theme.Status.Render("tab/enter accept · ↑/↓ select · esc dismiss/quit · ctrl+c quit"))
	return b.String()
}

func (m *Model) popupView() string {
	if !m.state.Open() {
		return ""
	}
	ctx := m.state.Context
	indent := runewidth.StringWidth(defaultPrompt)
	if ctx.ReplaceStart <= len(m.buf) {
		indent += runewidth.StringWidth(string(m.buf[:ctx.ReplaceStart]))
	}
	if m.width > 0 {
		indent = min(indent, max(0, m.width/2))
	}
	pad := strings.Repeat(" ", indent)

	if len(ctx.Items) == 0 {
		return pad + m.theme.Description.Render("(no matches)") + "\n"
	}
	window := limiter.Window(len(ctx.Items), m.selected, m.maxRows)
	start, end := window.Bounds(len(ctx.Items))
	visible := limiter.Apply(window, ctx.Items)

	labelWidth := 0
	for _, item := range visible {
		labelWidth = max(labelWidth, runewidth.StringWidth(item.DisplayText))
	}
	var b strings.Builder
	for i, item := range visible {
		label := runewidth.FillRight(item.DisplayText, labelWidth)
		row := m.theme.Item.Render(label)
		if start+i == m.selected {
			row = m.theme.Selected.Render(label)
		}
		if item.Description != "" {
			row += "  " + m.theme.Description.Render(item.Description)
		}
		b.WriteString(pad + row + "\n")
	}
	if window.IsActive() {
		b.WriteString(pad + m.theme.Description.Render(fmt.Sprintf("%d-%d of %d", start+1, end, len(ctx.Items))) + "\n")
	}
	return b.String()
}

func (m *Model) helpView() string {
	if m.help == nil || !m.state.Open() {
		return ""
	}
	items := m.state.Context.Items
	if m.selected < 0 || m.selected >= len(items) {
		return ""
	}
	var lines []string
	switch md := items[m.selected].Metadata.(type) {
	case completion.VariableMetadata:
		if v, ok := m.help.LookupVariable(md.Name); ok {
			lines = catalog.FormatVariableLines(v, maxHelpFormats)
		}
	case completion.MethodMetadata:
		if mt, ok := m.help.LookupMethod(md.Canonical); ok {
			lines = []string{catalog.FormatMethodOneLiner(mt)}
		}
	}
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(m.theme.Description.Render(line) + "\n")
	}
	return b.String()
}

func (m *Model) statusLine() string {
	if ctx := m.state.Context; ctx != nil {
		return fmt.Sprintf("%s · replace [%d,%d) · filter %q · %d/%d items",
			ctx.Mode, ctx.ReplaceStart, ctx.ReplaceEnd, ctx.FilterText(m.Text()),
			len(ctx.Items), len(ctx.OriginalItems))
	}
	status := fmt.Sprintf("caret %d", m.caret)
	if open := completion.ScanOpenBrace(m.Text(), m.caret); open >= 0 {
		status += fmt.Sprintf(" · inside braces at %d", open)
	}
	if m.effect != completion.EffectNone {
		status += " · " + m.effect.String()
	}
	return status
}

// Run starts the playground and returns the final model.
func Run(m *Model, opts ...tea.ProgramOption) (*Model, error) {
	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return m, fmt.Errorf("run playground: %w", err)
	}
	if fm, ok := final.(*Model); ok {
		return fm, nil
	}
	return m, nil
}
