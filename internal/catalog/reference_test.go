package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReference(t *testing.T) {
	c := Catalog{
		Variables: []Variable{
			{Name: "date", Description: "Current date", Formats: []FormatOption{{Text: "yyyy-MM-dd"}, {Text: "HH:mm"}}},
			{Name: "pipe", Description: "a | b"},
		},
		Methods: []Method{
			{Name: "upper", Aliases: []string{"toUpper"}, Description: "Upper case"},
			{Name: "replace", HasParameters: true},
		},
		Reserved: []string{"i", "j"},
	}
	out := string(Reference(c))

	assert.True(t, strings.HasPrefix(out, "# Template reference\n"))
	assert.Contains(t, out, "| `{date}` | Current date | `yyyy-MM-dd`, `HH:mm` |\n")
	assert.Contains(t, out, `| `+"`{pipe}`"+` | a \| b |  |`)
	assert.Contains(t, out, "| `.upper()` | `toUpper` | Upper case |\n")
	assert.Contains(t, out, "| `.replace(…)` |  |  |\n")
	assert.Contains(t, out, "not offered after: `i`, `j`.")
}

func TestReferenceOfDefaultCatalog(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	out := string(Reference(c))
	assert.Contains(t, out, "## Variables")
	assert.Contains(t, out, "## Methods")
	assert.Contains(t, out, "`{clipboard}`")
}

func TestReferenceOmitsEmptySections(t *testing.T) {
	out := string(Reference(Catalog{}))
	assert.NotContains(t, out, "## Variables")
	assert.NotContains(t, out, "## Methods")
	assert.NotContains(t, out, "not offered")
}
