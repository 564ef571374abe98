package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

//go:embed default_catalog.yaml
var embeddedDefaultCatalog []byte

var (
	embeddedCatalogOnce sync.Once
	embeddedCatalog     Catalog
	embeddedCatalogErr  error
)

// Format names a catalog file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// ErrUnsupportedFormat is returned for catalog files with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported catalog format")

// FormatFromPath picks the encoding from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Parse decodes a catalog in the given format and validates it.
func Parse(data []byte, format Format) (Catalog, error) {
	var c Catalog
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &c)
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&c)
	case FormatTOML:
		err = toml.Unmarshal(data, &c)
	default:
		return c, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return c, fmt.Errorf("decode %s catalog: %w", format, err)
	}
	if err := Validate(c); err != nil {
		return c, err
	}
	return c, nil
}

// LoadFile reads and parses a catalog file.
func LoadFile(path string) (Catalog, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Catalog{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Parse(data, format)
	if err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// DefaultYAML returns a copy of the embedded default catalog bytes.
func DefaultYAML() []byte {
	return append([]byte(nil), embeddedDefaultCatalog...)
}

// Default returns the embedded default catalog.
func Default() (Catalog, error) {
	embeddedCatalogOnce.Do(func() {
		if len(embeddedDefaultCatalog) == 0 {
			embeddedCatalogErr = fmt.Errorf("embedded default catalog is empty")
			return
		}
		embeddedCatalog, embeddedCatalogErr = Parse(embeddedDefaultCatalog, FormatYAML)
		if embeddedCatalogErr != nil {
			embeddedCatalogErr = fmt.Errorf("embedded default catalog: %w", embeddedCatalogErr)
		}
	})
	return clone(embeddedCatalog), embeddedCatalogErr
}

// Merge lays overlay on top of base. Entries with a known name replace the
// base entry in place; new names are appended. Reserved is taken from the
// overlay when it sets one.
func Merge(base, overlay Catalog) Catalog {
	out := clone(base)

	varPos := make(map[string]int, len(out.Variables))
	for i, v := range out.Variables {
		varPos[v.Name] = i
	}
	for _, v := range overlay.Variables {
		if i, ok := varPos[v.Name]; ok {
			out.Variables[i] = v
			continue
		}
		varPos[v.Name] = len(out.Variables)
		out.Variables = append(out.Variables, v)
	}

	methodPos := make(map[string]int, len(out.Methods))
	for i, m := range out.Methods {
		methodPos[m.Name] = i
	}
	for _, m := range overlay.Methods {
		if i, ok := methodPos[m.Name]; ok {
			out.Methods[i] = m
			continue
		}
		methodPos[m.Name] = len(out.Methods)
		out.Methods = append(out.Methods, m)
	}

	if overlay.Reserved != nil {
		out.Reserved = append([]string{}, overlay.Reserved...)
	}
	return out
}

// Validate reports every structural problem in the catalog at once.
func Validate(c Catalog) error {
	var errs []error
	for i, v := range c.Variables {
		if strings.TrimSpace(v.Name) == "" {
			errs = append(errs, fmt.Errorf("variables[%d]: name is required", i))
			continue
		}
		if strings.ContainsAny(v.Name, "{}:.") {
			errs = append(errs, fmt.Errorf("variable %q: name must not contain braces, ':' or '.'", v.Name))
		}
		for j, f := range v.Formats {
			if f.Text == "" {
				errs = append(errs, fmt.Errorf("variable %q: formats[%d]: text is required", v.Name, j))
			}
		}
	}
	owner := make(map[string]string)
	for i, m := range c.Methods {
		if strings.TrimSpace(m.Name) == "" {
			errs = append(errs, fmt.Errorf("methods[%d]: name is required", i))
			continue
		}
		for _, n := range m.Names() {
			if prev, ok := owner[n]; ok && prev != m.Name {
				errs = append(errs, fmt.Errorf("method %q: alias %q already belongs to %q", m.Name, n, prev))
				continue
			}
			owner[n] = m.Name
		}
	}
	return errors.Join(errs...)
}

func clone(c Catalog) Catalog {
	out := Catalog{
		Variables: make([]Variable, len(c.Variables)),
		Methods:   make([]Method, len(c.Methods)),
	}
	for i, v := range c.Variables {
		v.Formats = append([]FormatOption(nil), v.Formats...)
		out.Variables[i] = v
	}
	for i, m := range c.Methods {
		m.Aliases = append([]string(nil), m.Aliases...)
		out.Methods[i] = m
	}
	if c.Reserved != nil {
		out.Reserved = append([]string{}, c.Reserved...)
	}
	return out
}
