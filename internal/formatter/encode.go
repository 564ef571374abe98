package formatter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by Encode.
const (
	OutputTable = "table"
	OutputYAML  = "yaml"
	OutputJSON  = "json"
	OutputTOML  = "toml"
)

// ValidateOutput rejects unknown -o values.
func ValidateOutput(output string) error {
	switch output {
	case OutputTable, OutputYAML, OutputJSON, OutputTOML:
		return nil
	default:
		return fmt.Errorf("invalid output %q (expected table, yaml, json or toml)", output)
	}
}

// Encode renders v as a YAML, JSON or TOML document.
func Encode(v any, output string) (string, error) {
	switch output {
	case OutputYAML:
		return FormatYAML(v, 2)
	case OutputJSON:
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal json: %w", err)
		}
		return string(b) + "\n", nil
	case OutputTOML:
		b, err := toml.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("failed to marshal toml: %w", err)
		}
		return string(b), nil
	default:
		return "", fmt.Errorf("cannot encode as %q", output)
	}
}

// FormatYAML renders v to YAML with the given indent. Multi-line strings
// are emitted as literal blocks ("|") to keep them readable.
func FormatYAML(v any, indent int) (string, error) {
	var node yaml.Node
	if err := node.Encode(v); err != nil {
		return "", fmt.Errorf("failed to marshal yaml: %w", err)
	}
	applyLiteralStyle(&node)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	if indent <= 0 {
		indent = 2
	}
	enc.SetIndent(indent)
	if err := enc.Encode(&node); err != nil {
		return "", fmt.Errorf("failed to marshal yaml: %w", err)
	}
	return buf.String(), nil
}

func applyLiteralStyle(n *yaml.Node) {
	if n == nil {
		return
	}
	if n.Kind == yaml.ScalarNode && n.Tag == "!!str" && strings.Contains(n.Value, "\n") {
		n.Style = yaml.LiteralStyle
	}
	for _, c := range n.Content {
		applyLiteralStyle(c)
	}
}
