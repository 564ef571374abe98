//revive:disable:exported
package completion

// Mode is the kind of completion a context offers. It is fixed for the
// lifetime of a context; a different mode means a new context.
type Mode int

const (
	ModeVariable Mode = iota // after '{': variable names
	ModeMethod               // after '.': string transform methods
	ModeFormat               // after ':': format options of the variable
)

func (m Mode) String() string {
	switch m {
	case ModeVariable:
		return "variable"
	case ModeMethod:
		return "method"
	case ModeFormat:
		return "format"
	default:
		return "unknown"
	}
}

// Trigger returns the rune that opens a context of this mode.
func (m Mode) Trigger() rune {
	switch m {
	case ModeMethod:
		return '.'
	case ModeFormat:
		return ':'
	default:
		return '{'
	}
}

// Item is a single completion candidate.
type Item struct {
	Text        string // Text matched against the filter
	DisplayText string // Text shown in the popup, also matched against the filter
	Description string // Help text for the popup
	Replacement string // Text written over [ReplaceStart, ReplaceEnd)
	// CursorOffset moves the caret relative to the end of Replacement
	// after the item is applied (-1 lands inside "{name}").
	CursorOffset int
	Metadata     any // VariableMetadata, MethodMetadata or FormatMetadata
}

// VariableMetadata is attached to ModeVariable items.
type VariableMetadata struct {
	Name       string
	HasFormats bool
}

// MethodMetadata is attached to ModeMethod items.
type MethodMetadata struct {
	Canonical     string
	IsAlias       bool
	HasParameters bool
}

// FormatMetadata is attached to ModeFormat items.
type FormatMetadata struct {
	Variable string
}

// Context is the live state of one completion popup. Offsets are rune
// offsets into the text the context was computed from and always satisfy
// 0 <= ReplaceStart <= FilterStart <= ReplaceEnd <= len(text).
//
// A Context is never modified after it is returned; updates produce a new
// value.
type Context struct {
	Mode          Mode
	Items         []Item // OriginalItems filtered by the current filter text
	OriginalItems []Item
	ReplaceStart  int
	ReplaceEnd    int
	FilterStart   int
}

//revive:enable:exported

// FilterText returns the text between FilterStart and ReplaceEnd.
func (c *Context) FilterText(text string) string {
	if c == nil {
		return ""
	}
	runes := []rune(text)
	if c.FilterStart < 0 || c.ReplaceEnd > len(runes) || c.FilterStart >= c.ReplaceEnd {
		return ""
	}
	return string(runes[c.FilterStart:c.ReplaceEnd])
}

// Valid reports whether the offset ordering holds for a text of textLen runes.
func (c *Context) Valid(textLen int) bool {
	return c != nil &&
		0 <= c.ReplaceStart &&
		c.ReplaceStart <= c.FilterStart &&
		c.FilterStart <= c.ReplaceEnd &&
		c.ReplaceEnd <= textLen
}
