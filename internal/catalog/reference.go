package catalog

import (
	"fmt"
	"strings"
)

// Reference renders c as a Markdown reference page: one table of
// variables with their formats and one of methods with their aliases.
func Reference(c Catalog) []byte {
	var b strings.Builder
	b.WriteString("# Template reference\n\n")
	b.WriteString("Interpolations take the form `{variable}`, `{variable:format}` or `{variable.method(args)}`. ")
	b.WriteString("Write `{{` and `}}` for literal braces.\n")

	if len(c.Variables) > 0 {
		b.WriteString("\n## Variables\n\n")
		b.WriteString("| Variable | Description | Formats |\n|---|---|---|\n")
		for _, v := range c.Variables {
			formats := make([]string, 0, len(v.Formats))
			for _, f := range v.Formats {
				formats = append(formats, "`"+f.Text+"`")
			}
			fmt.Fprintf(&b, "| `{%s}` | %s | %s |\n", v.Name, cell(v.Description), strings.Join(formats, ", "))
		}
	}

	if len(c.Methods) > 0 {
		b.WriteString("\n## Methods\n\n")
		b.WriteString("| Method | Aliases | Description |\n|---|---|---|\n")
		for _, m := range c.Methods {
			aliases := make([]string, 0, len(m.Aliases))
			for _, a := range m.Aliases {
				aliases = append(aliases, "`"+a+"`")
			}
			fmt.Fprintf(&b, "| `.%s` | %s | %s |\n", FormatMethodSignature(m), strings.Join(aliases, ", "), cell(m.Description))
		}
	}

	if len(c.Reserved) > 0 {
		fmt.Fprintf(&b, "\nMethod completion is not offered after: `%s`.\n", strings.Join(c.Reserved, "`, `"))
	}
	return []byte(b.String())
}

// cell escapes text for a Markdown table cell.
func cell(s string) string {
	s = strings.ReplaceAll(strings.TrimSpace(s), "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
