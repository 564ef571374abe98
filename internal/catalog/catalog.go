// Package catalog holds the descriptive data behind template completion:
// the interpolation variables a host knows about and the string transform
// methods that can be chained onto them.
package catalog

// FormatOption is a named format string accepted after ':' in an
// interpolation, e.g. {date:yyyy-MM-dd}.
type FormatOption struct {
	Text        string `yaml:"text" json:"text" toml:"text"`
	Description string `yaml:"description,omitempty" json:"description,omitempty" toml:"description,omitempty"`
}

// Variable describes a value that can be interpolated as {name}.
type Variable struct {
	Name        string         `yaml:"name" json:"name" toml:"name"`
	Description string         `yaml:"description,omitempty" json:"description,omitempty" toml:"description,omitempty"`
	Formats     []FormatOption `yaml:"formats,omitempty" json:"formats,omitempty" toml:"formats,omitempty"`
}

// HasFormats reports whether the variable accepts any format option.
func (v Variable) HasFormats() bool {
	return len(v.Formats) > 0
}

// Method describes a string transform usable as {name.method(args)}.
type Method struct {
	Name          string   `yaml:"name" json:"name" toml:"name"`
	Aliases       []string `yaml:"aliases,omitempty" json:"aliases,omitempty" toml:"aliases,omitempty"`
	Description   string   `yaml:"description,omitempty" json:"description,omitempty" toml:"description,omitempty"`
	HasParameters bool     `yaml:"has_parameters,omitempty" json:"has_parameters,omitempty" toml:"has_parameters,omitempty"`
	// Expr is a CEL expression over `s` (the current value) and `args`
	// (the call arguments as strings). Only the preview renderer uses it.
	Expr string `yaml:"cel,omitempty" json:"cel,omitempty" toml:"cel,omitempty"`
}

// Names returns the canonical name followed by the aliases.
func (m Method) Names() []string {
	names := make([]string, 0, 1+len(m.Aliases))
	names = append(names, m.Name)
	return append(names, m.Aliases...)
}

// Catalog is the on-disk shape of a completion catalog.
type Catalog struct {
	Variables []Variable `yaml:"variables,omitempty" json:"variables,omitempty" toml:"variables,omitempty"`
	Methods   []Method   `yaml:"methods,omitempty" json:"methods,omitempty" toml:"methods,omitempty"`
	// Reserved lists variable names that never start method completion
	// (loop counters). A nil slice means "not set"; an empty one clears it.
	Reserved []string `yaml:"reserved,omitempty" json:"reserved,omitempty" toml:"reserved,omitempty"`
}
