// Package formatter renders CLI results as aligned tables or as YAML, JSON
// and TOML documents.
package formatter

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
	runewidth "github.com/mattn/go-runewidth"
)

var (
	defaultHeaderFG   = lipgloss.Color("12")
	defaultHeaderBG   = lipgloss.Color("236")
	defaultKeyColor   = lipgloss.Color("14")
	defaultValueColor = lipgloss.Color("248")
	defaultSeparator  = lipgloss.Color("240")

	headerStyle    lipgloss.Style
	keyStyle       lipgloss.Style
	valueStyle     lipgloss.Style
	separatorStyle lipgloss.Style
)

// TableColors controls the rendered colors for the formatter table.
// Empty fields fall back to the defaults (ANSI 256 codes).
type TableColors struct {
	HeaderFG       color.Color
	HeaderBG       color.Color
	KeyColor       color.Color
	ValueColor     color.Color
	SeparatorColor color.Color
}

func applyTableTheme(tc TableColors) {
	pick := func(c, def color.Color) color.Color {
		if c == nil {
			return def
		}
		return c
	}
	headerStyle = lipgloss.NewStyle().Bold(true).
		Foreground(pick(tc.HeaderFG, defaultHeaderFG)).
		Background(pick(tc.HeaderBG, defaultHeaderBG))
	keyStyle = lipgloss.NewStyle().Foreground(pick(tc.KeyColor, defaultKeyColor))
	valueStyle = lipgloss.NewStyle().Foreground(pick(tc.ValueColor, defaultValueColor))
	separatorStyle = lipgloss.NewStyle().Foreground(pick(tc.SeparatorColor, defaultSeparator))
}

//nolint:gochecknoinits // initialize default table theme for package consumers
func init() {
	applyTableTheme(TableColors{})
}

const columnGap = "  "

// RenderTable renders rows under header as space-aligned columns. The first
// column is styled as a key, the rest as values. When maxWidth is positive
// the last column is truncated so no line exceeds it.
func RenderTable(header []string, rows [][]string, noColor bool, maxWidth int) string {
	cols := len(header)
	for _, row := range rows {
		cols = max(cols, len(row))
	}
	if cols == 0 {
		return ""
	}
	widths := make([]int, cols)
	measure := func(row []string) {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}
	measure(header)
	for _, row := range rows {
		measure(row)
	}
	if maxWidth > 0 {
		fixed := 0
		for _, w := range widths[:cols-1] {
			fixed += w + len(columnGap)
		}
		widths[cols-1] = max(min(widths[cols-1], maxWidth-fixed), 3)
	}
	total := 0
	for _, w := range widths {
		total += w
	}
	total += len(columnGap) * (cols - 1)

	var b strings.Builder
	writeRow := func(row []string, style func(col int) *lipgloss.Style) {
		cells := make([]string, cols)
		for i := range cells {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			cell = padRight(truncate(cell, widths[i]), widths[i])
			if i == cols-1 {
				cell = strings.TrimRight(cell, " ")
			}
			if !noColor && style != nil {
				cell = style(i).Render(cell)
			}
			cells[i] = cell
		}
		b.WriteString(strings.Join(cells, columnGap) + "\n")
	}

	if len(header) > 0 {
		writeRow(header, func(int) *lipgloss.Style { return &headerStyle })
		sep := strings.Repeat("─", total)
		if !noColor {
			sep = separatorStyle.Render(sep)
		}
		b.WriteString(sep + "\n")
	}
	for _, row := range rows {
		writeRow(row, func(col int) *lipgloss.Style {
			if col == 0 {
				return &keyStyle
			}
			return &valueStyle
		})
	}
	return b.String()
}

// truncate shortens s to maxLen display columns, ending in "..." when
// there is room for it.
func truncate(s string, maxLen int) string {
	if maxLen <= 0 || runewidth.StringWidth(s) <= maxLen {
		return s
	}
	if maxLen < 3 {
		return runewidth.Truncate(s, maxLen, "")
	}
	return runewidth.Truncate(s, maxLen, "...")
}

// padRight pads s with spaces to width display columns.
func padRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}
