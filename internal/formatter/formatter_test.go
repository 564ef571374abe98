package formatter

import (
	"strings"
	"testing"

	runewidth "github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTableNoColor(t *testing.T) {
	out := RenderTable(
		[]string{"NAME", "DESCRIPTION"},
		[][]string{{"{date}", "current date"}, {"{name}", "file name"}},
		true, 0)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "NAME    DESCRIPTION", lines[0])
	assert.Equal(t, strings.Repeat("─", 20), lines[1])
	assert.Equal(t, "{date}  current date", lines[2])
	assert.Equal(t, "{name}  file name", lines[3])
}

func TestRenderTableWideRunes(t *testing.T) {
	out := RenderTable(nil, [][]string{{"日本", "x"}, {"ab", "y"}}, true, 0)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "日本  x", lines[0])
	assert.Equal(t, "ab    y", lines[1])
}

func TestRenderTableTruncatesLastColumn(t *testing.T) {
	out := RenderTable([]string{"K", "V"}, [][]string{{"key", strings.Repeat("v", 50)}}, true, 20)
	for _, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		assert.LessOrEqual(t, runewidth.StringWidth(line), 20, "line %q", line)
	}
	assert.Contains(t, out, "...")
}

func TestRenderTableRaggedRows(t *testing.T) {
	out := RenderTable([]string{"A"}, [][]string{{"1", "2", "3"}, {"4"}}, true, 0)
	assert.Contains(t, out, "1  2  3")
	assert.Empty(t, RenderTable(nil, nil, true, 0))
}

func TestRenderTableColored(t *testing.T) {
	out := RenderTable([]string{"K"}, [][]string{{"v"}}, false, 0)
	assert.Contains(t, out, "K")
	assert.Contains(t, out, "v")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello", truncate("hello", 10))
	assert.Equal(t, "he...", truncate("hello world", 5))
	assert.Equal(t, "he", truncate("hello", 2))
	assert.Equal(t, "hello", truncate("hello", 0))
}

func TestEncode(t *testing.T) {
	v := map[string]any{"mode": "variable", "items": []string{"name", "date"}}

	y, err := Encode(v, OutputYAML)
	require.NoError(t, err)
	assert.Contains(t, y, "mode: variable")

	j, err := Encode(v, OutputJSON)
	require.NoError(t, err)
	assert.Contains(t, j, `"mode": "variable"`)

	tm, err := Encode(v, OutputTOML)
	require.NoError(t, err)
	assert.Contains(t, tm, "mode = 'variable'")

	_, err = Encode(v, OutputTable)
	assert.Error(t, err)
}

func TestFormatYAMLLiteralBlocks(t *testing.T) {
	out, err := FormatYAML(map[string]string{"help": "line one\nline two"}, 2)
	require.NoError(t, err)
	assert.Contains(t, out, "help: |")
}

func TestValidateOutput(t *testing.T) {
	for _, o := range []string{"table", "yaml", "json", "toml"} {
		assert.NoError(t, ValidateOutput(o))
	}
	assert.Error(t, ValidateOutput("csv"))
}
