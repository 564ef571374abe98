package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var renderValues []string

// now is replaced in tests.
var now = time.Now

var renderCmd = &cobra.Command{
	Use:   "render TEMPLATE",
	Short: "Expand a template with concrete values",
	Long: `Expand every {variable}, {variable:format} and {variable.method(args)} in
TEMPLATE. Values come from repeated --set name=value flags; date, time and
now default to the current time. Methods run the CEL expression of the
catalog entry; formats apply to timestamp values.

Interpolations that cannot be expanded are kept verbatim and reported on
stderr with a non-zero exit status. "{{" and "}}" produce literal braces.`,
	Example: `  tplc render 'Hello {name.upper}' --set name=world
  tplc render 'backup-{date:yyyyMMdd}.tar'
  tplc render '{file.replace(".txt", ".md")}' --set file=notes.txt`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		values, err := parseValues(renderValues)
		if err != nil {
			return err
		}
		addClockValues(values, now())
		ws, err := loadWorkspace()
		if err != nil {
			return err
		}
		r, err := ws.renderer()
		if err != nil {
			return err
		}
		out, renderErr := r.Render(args[0], values)
		if _, err := fmt.Fprintln(os.Stdout, out); err != nil {
			return err
		}
		return renderErr
	},
}

// addClockValues fills date, time and now with t unless they are set.
func addClockValues(values map[string]string, t time.Time) {
	stamp := t.Format(time.RFC3339)
	for _, name := range []string{"date", "time", "now"} {
		if _, ok := values[name]; !ok {
			values[name] = stamp
		}
	}
}

func init() {
	renderCmd.Flags().StringArrayVar(&renderValues, "set", nil, "variable value as name=value (repeatable)")
}
