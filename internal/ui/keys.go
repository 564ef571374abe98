package ui

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/oakwood-commons/tplc/internal/completion"
)

// ParseKeys turns a scripted key sequence into key presses. Tokens in angle
// brackets name special keys ("<Tab>", "<Esc>", "<BS>", "<Left>", "<C-c>");
// everything else is typed literally. A '<' without a matching '>' is
// literal too.
func ParseKeys(script string) []tea.KeyPressMsg {
	var msgs []tea.KeyPressMsg
	remaining := script
	for remaining != "" {
		start := strings.Index(remaining, "<")
		if start < 0 {
			msgs = append(msgs, literalKeys(remaining)...)
			break
		}
		msgs = append(msgs, literalKeys(remaining[:start])...)
		end := strings.Index(remaining[start:], ">")
		if end < 0 {
			msgs = append(msgs, literalKeys(remaining[start:])...)
			break
		}
		token := remaining[start : start+end+1]
		if keys, ok := keyMsgsFromToken(token); ok {
			msgs = append(msgs, keys...)
		} else {
			msgs = append(msgs, literalKeys(token)...)
		}
		remaining = remaining[start+end+1:]
	}
	return msgs
}

func literalKeys(s string) []tea.KeyPressMsg {
	msgs := make([]tea.KeyPressMsg, 0, len(s))
	for _, r := range s {
		msgs = append(msgs, tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	return msgs
}

// keyMsgsFromToken parses a Vim-like token such as "<Esc>" or "<CR>".
func keyMsgsFromToken(token string) ([]tea.KeyPressMsg, bool) {
	inner := strings.ToLower(strings.TrimSuffix(strings.TrimPrefix(token, "<"), ">"))
	switch inner {
	case "esc", "c-[", "escape":
		return []tea.KeyPressMsg{{Code: tea.KeyEscape}}, true
	case "cr", "enter", "return":
		return []tea.KeyPressMsg{{Code: tea.KeyEnter}}, true
	case "tab":
		return []tea.KeyPressMsg{{Code: tea.KeyTab}}, true
	case "space":
		return []tea.KeyPressMsg{{Code: ' ', Text: " "}}, true
	case "bs", "backspace":
		return []tea.KeyPressMsg{{Code: tea.KeyBackspace}}, true
	case "del", "delete":
		return []tea.KeyPressMsg{{Code: tea.KeyDelete}}, true
	case "left":
		return []tea.KeyPressMsg{{Code: tea.KeyLeft}}, true
	case "right":
		return []tea.KeyPressMsg{{Code: tea.KeyRight}}, true
	case "up":
		return []tea.KeyPressMsg{{Code: tea.KeyUp}}, true
	case "down":
		return []tea.KeyPressMsg{{Code: tea.KeyDown}}, true
	case "home":
		return []tea.KeyPressMsg{{Code: tea.KeyHome}}, true
	case "end":
		return []tea.KeyPressMsg{{Code: tea.KeyEnd}}, true
	case "lt":
		return []tea.KeyPressMsg{{Code: '<', Text: "<"}}, true
	case "c-c":
		return []tea.KeyPressMsg{{Code: 'c', Mod: tea.ModCtrl}}, true
	}
	return nil, false
}

// ApplyKeys feeds key presses to m as if typed.
func ApplyKeys(m *Model, keys []tea.KeyPressMsg) {
	for _, k := range keys {
		m.Press(k)
	}
}

// Press handles one key press and returns the effect of the session step it
// caused, EffectNone when it caused none.
func (m *Model) Press(k tea.KeyPressMsg) completion.EffectKind {
	m.effect = completion.EffectNone
	m.Update(k)
	return m.effect
}
