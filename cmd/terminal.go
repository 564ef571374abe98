package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/oakwood-commons/tplc/internal/formatter"
)

const (
	defaultFallbackTermWidth  = 120
	defaultFallbackTermHeight = 24
)

// detectTerminalSize tries stdout, stderr and stdin before falling back to
// $COLUMNS and then a fixed width. A height of 0 means unknown.
func detectTerminalSize() (int, int) {
	fds := []uintptr{os.Stdout.Fd(), os.Stderr.Fd(), os.Stdin.Fd()}
	for _, fd := range fds {
		if w, h, err := term.GetSize(int(fd)); err == nil && (w > 0 || h > 0) {
			return w, h
		}
	}
	if col := os.Getenv("COLUMNS"); col != "" {
		if w, err := strconv.Atoi(col); err == nil && w > 0 {
			return w, 0
		}
	}
	return defaultFallbackTermWidth, 0
}

// writeOutput prints a table for -o table or encodes doc otherwise.
func writeOutput(doc any, header []string, rows [][]string) error {
	if output != formatter.OutputTable {
		s, err := formatter.Encode(doc, output)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(os.Stdout, s)
		return err
	}
	width, _ := detectTerminalSize()
	_, err := fmt.Fprint(os.Stdout, formatter.RenderTable(header, rows, runSettings().NoColor, width))
	return err
}

// withCaret marks the caret position in text with '|'.
func withCaret(text string, caret int) string {
	runes := []rune(text)
	caret = max(0, min(caret, len(runes)))
	return string(runes[:caret]) + "|" + string(runes[caret:])
}

// parseValues turns repeated --set name=value flags into a value map.
func parseValues(pairs []string) (map[string]string, error) {
	values := make(map[string]string, len(pairs))
	for _, p := range pairs {
		name, value, ok := strings.Cut(p, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("invalid --set %q (expected name=value)", p)
		}
		values[strings.TrimSpace(name)] = value
	}
	return values, nil
}
