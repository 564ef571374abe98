package completion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter(t *testing.T) {
	items := []Item{
		{Text: "name", DisplayText: "{name}"},
		{Text: "Namespace", DisplayText: "{Namespace}"},
		{Text: "date", DisplayText: "{date}"},
		{Text: "äpfel", DisplayText: "{äpfel}"},
	}

	tests := []struct {
		name   string
		filter string
		want   []string
	}{
		{name: "prefix", filter: "na", want: []string{"name", "Namespace"}},
		{name: "case-insensitive", filter: "NAMES", want: []string{"Namespace"}},
		{name: "matches display text", filter: "{da", want: []string{"date"}},
		{name: "unicode folding", filter: "ÄP", want: []string{"äpfel"}},
		{name: "prefix only", filter: "ame", want: []string{}},
		{name: "longer than every item", filter: "namespace-and-more", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(items, tt.filter)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, itemTexts(got))
		})
	}
}

func TestFilterEmptyReturnsItemsUnchanged(t *testing.T) {
	items := []Item{{Text: "b"}, {Text: "a"}}
	got := Filter(items, "")
	assert.Equal(t, items, got)

	assert.Nil(t, Filter(nil, ""))
	assert.Equal(t, []Item{}, Filter(nil, "x"))
}

func TestHasPrefixFold(t *testing.T) {
	assert.True(t, hasPrefixFold("Hello", "hE"))
	assert.True(t, hasPrefixFold("ß", "ß"))
	assert.True(t, hasPrefixFold("anything", ""))
	assert.False(t, hasPrefixFold("he", "hello"))
	assert.False(t, hasPrefixFold("日本語", "日語"))
}
