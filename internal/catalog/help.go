package catalog

import (
	"strings"
)

// FormatMethodSignature returns a display-ready call form, e.g. "replace(…)"
// for methods with parameters and "upper()" otherwise.
func FormatMethodSignature(m Method) string {
	if m.HasParameters {
		return m.Name + "(…)"
	}
	return m.Name + "()"
}

// FormatMethodOneLiner returns a single-line help string for a status bar.
func FormatMethodOneLiner(m Method) string {
	sig := FormatMethodSignature(m)
	desc := strings.TrimSpace(m.Description)
	if desc == "" {
		return sig
	}
	return sig + " — " + desc
}

// FormatVariableLines returns multi-line help text: the interpolation,
// its description, and up to maxFormats format options. Each element is a
// separate line.
func FormatVariableLines(v Variable, maxFormats int) []string {
	lines := make([]string, 0, 2+len(v.Formats))
	lines = append(lines, "{"+v.Name+"}")
	if d := strings.TrimSpace(v.Description); d != "" {
		lines = append(lines, d)
	}
	for i, f := range v.Formats {
		if maxFormats > 0 && i >= maxFormats {
			break
		}
		line := "  {" + v.Name + ":" + f.Text + "}"
		if f.Description != "" {
			line += "  " + f.Description
		}
		lines = append(lines, line)
	}
	return lines
}
