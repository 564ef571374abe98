package cmd

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/tplc/internal/completion"
)

var scanCaret int

var scanCmd = &cobra.Command{
	Use:   "scan TEXT",
	Short: "Report the '{' enclosing the caret",
	Long: `Scan backwards from the caret for an unmatched '{'. Prints its rune offset,
or "outside braces" when the caret is not inside an interpolation. With
--quiet only the offset is printed, -1 when outside.`,
	Example: `  tplc scan 'Hello {na'
  tplc scan 'a {b} c' --caret 6`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		text := args[0]
		caret, err := resolveCaret(text, scanCaret)
		if err != nil {
			return err
		}
		open := completion.ScanOpenBrace(text, caret)
		if runSettings().IsQuiet {
			_, err = fmt.Fprintln(os.Stdout, open)
			return err
		}
		if open < 0 {
			_, err = fmt.Fprintln(os.Stdout, "outside braces")
			return err
		}
		_, err = fmt.Fprintf(os.Stdout, "inside braces: '{' at %d\n", open)
		return err
	},
}

// resolveCaret maps the --caret flag to a rune offset; -1 means the end of
// text.
func resolveCaret(text string, caret int) (int, error) {
	n := utf8.RuneCountInString(text)
	if caret == -1 {
		return n, nil
	}
	if caret < 0 || caret > n {
		return 0, fmt.Errorf("--caret %d out of range [0, %d]", caret, n)
	}
	return caret, nil
}

func init() {
	scanCmd.Flags().IntVar(&scanCaret, "caret", -1, "caret as a rune offset (-1 = end of text)")
}
