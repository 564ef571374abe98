package ui

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/tplc/internal/completion"
)

func TestParseKeys(t *testing.T) {
	msgs := ParseKeys("{a<Tab><bs><Esc><lt>x<nope>")
	require.Len(t, msgs, 13)

	assert.Equal(t, tea.KeyPressMsg{Code: '{', Text: "{"}, msgs[0])
	assert.Equal(t, tea.KeyPressMsg{Code: 'a', Text: "a"}, msgs[1])
	assert.Equal(t, tea.KeyTab, msgs[2].Code)
	assert.Equal(t, tea.KeyBackspace, msgs[3].Code)
	assert.Equal(t, tea.KeyEscape, msgs[4].Code)
	assert.Equal(t, "<", msgs[5].Text)
	assert.Equal(t, "x", msgs[6].Text)
	// unknown tokens are typed literally
	assert.Equal(t, "<", msgs[7].Text)
	assert.Equal(t, ">", msgs[12].Text)
}

func TestParseKeysUnclosedBracket(t *testing.T) {
	msgs := ParseKeys("a<b")
	require.Len(t, msgs, 3)
	assert.Equal(t, "<", msgs[1].Text)
}

func TestParseKeysMultibyte(t *testing.T) {
	msgs := ParseKeys("日本")
	require.Len(t, msgs, 2)
	assert.Equal(t, '日', msgs[0].Code)
}

func TestCtrlCToken(t *testing.T) {
	msgs := ParseKeys("<C-c>")
	require.Len(t, msgs, 1)
	assert.Equal(t, "ctrl+c", msgs[0].String())
}

func TestPressReportsEffectOfThatKey(t *testing.T) {
	m := newTestModel(Options{})
	assert.Equal(t, completion.EffectOpened, m.Press(tea.KeyPressMsg{Code: '{', Text: "{"}))
	assert.Equal(t, completion.EffectRefiltered, m.Press(tea.KeyPressMsg{Code: 'n', Text: "n"}))
	assert.Equal(t, completion.EffectNone, m.Press(tea.KeyPressMsg{Code: tea.KeyDown}))
	assert.Equal(t, completion.EffectApplied, m.Press(tea.KeyPressMsg{Code: tea.KeyTab}))
	assert.Equal(t, completion.EffectNone, m.Press(tea.KeyPressMsg{Code: tea.KeyEnd}))
	assert.Equal(t, completion.EffectNone, m.Press(tea.KeyPressMsg{Code: 'x', Text: "x"}))
}
