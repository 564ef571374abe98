package render

import (
	"fmt"
	"strings"
)

// Interpolation is the parsed body of one {…} expression.
type Interpolation struct {
	Name   string
	Format string // text after the first ':' outside method arguments
	Calls  []Call
}

// Call is one .method(args) link of a chain.
type Call struct {
	Name string
	Args []string
}

// parseInterpolation parses `name(.method(args))*(:format)?`. Arguments are
// separated by commas and may be quoted with ' or "; unquoted arguments are
// trimmed.
func parseInterpolation(body string) (Interpolation, error) {
	var in Interpolation
	runes := []rune(body)
	i := 0
	name, i := readIdent(runes, i)
	in.Name = strings.TrimSpace(name)
	if in.Name == "" {
		return in, fmt.Errorf("%w: {%s}: missing variable name", ErrSyntax, body)
	}
	for i < len(runes) {
		switch runes[i] {
		case ':':
			in.Format = string(runes[i+1:])
			return in, nil
		case '.':
			var call Call
			call.Name, i = readIdent(runes, i+1)
			call.Name = strings.TrimSpace(call.Name)
			if call.Name == "" {
				return in, fmt.Errorf("%w: {%s}: missing method name", ErrSyntax, body)
			}
			if i < len(runes) && runes[i] == '(' {
				args, next, err := readArgs(runes, i+1)
				if err != nil {
					return in, fmt.Errorf("%w: {%s}: %v", ErrSyntax, body, err)
				}
				call.Args = args
				i = next
			}
			in.Calls = append(in.Calls, call)
		case ' ', '\t':
			i++
		default:
			return in, fmt.Errorf("%w: {%s}: unexpected %q", ErrSyntax, body, runes[i])
		}
	}
	return in, nil
}

func readIdent(runes []rune, i int) (string, int) {
	start := i
	for i < len(runes) && !strings.ContainsRune(".:(", runes[i]) {
		i++
	}
	return string(runes[start:i]), i
}

// readArgs reads a comma-separated argument list up to the matching ')'
// and returns the offset after it.
func readArgs(runes []rune, i int) ([]string, int, error) {
	args := []string{}
	var cur strings.Builder
	var quote rune
	quoted := false
	flush := func() {
		arg := cur.String()
		if !quoted {
			arg = strings.TrimSpace(arg)
		}
		args = append(args, arg)
		cur.Reset()
		quoted = false
	}
	for ; i < len(runes); i++ {
		c := runes[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			} else {
				cur.WriteRune(c)
			}
		case c == '\'' || c == '"':
			quote = c
			quoted = true
			cur.Reset()
		case c == ',':
			flush()
		case c == ')':
			if strings.TrimSpace(cur.String()) != "" || quoted || len(args) > 0 {
				flush()
			}
			return args, i + 1, nil
		default:
			if !quoted {
				cur.WriteRune(c)
			}
		}
	}
	return nil, i, fmt.Errorf("unterminated argument list")
}
