package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/tplc/internal/completion"
	"github.com/oakwood-commons/tplc/internal/formatter"
	"github.com/oakwood-commons/tplc/internal/ui"
)

var (
	replayAutoPair bool
	replayInitial  string
)

var replayCmd = &cobra.Command{
	Use:   "replay KEYS",
	Short: "Drive a completion session with scripted keys",
	Long: `Feed a key script to the playground editor without a terminal and print
one row per key: the buffer with the caret marked as '|', the effect the
session reported and the open context, if any.

Plain characters are typed. Special keys use angle brackets: <Tab>, <CR>,
<Esc>, <BS>, <Del>, <Left>, <Right>, <Up>, <Down>, <Home>, <End>, <Space>
and <lt> for a literal '<'.`,
	Example: `  tplc replay 'Hi {na<Tab>'
  tplc replay '{date:<Down><CR>' --auto-pair
  tplc replay '.up<Tab>' --initial '{name'`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		if err := formatter.ValidateOutput(output); err != nil {
			return err
		}
		ws, err := loadWorkspace()
		if err != nil {
			return err
		}
		steps := replay(ws.engine, replayInitial, args[0], replayAutoPair)
		rows := make([][]string, 0, len(steps))
		for _, s := range steps {
			rows = append(rows, []string{s.Key, s.Text, s.Effect, s.Context})
		}
		return writeOutput(steps, []string{"KEY", "TEXT", "EFFECT", "CONTEXT"}, rows)
	},
}

type replayStep struct {
	Key     string `yaml:"key" json:"key" toml:"key"`
	Text    string `yaml:"text" json:"text" toml:"text"`
	Effect  string `yaml:"effect" json:"effect" toml:"effect"`
	Context string `yaml:"context,omitempty" json:"context,omitempty" toml:"context,omitempty"`
}

func replay(engine *completion.Engine, initial, script string, autoPair bool) []replayStep {
	m := ui.NewModel(engine, ui.Options{Initial: initial, AutoPair: autoPair, NoColor: true})
	keys := ui.ParseKeys(script)
	steps := make([]replayStep, 0, len(keys))
	for _, k := range keys {
		effect := m.Press(k)
		step := replayStep{
			Key:    k.String(),
			Text:   withCaret(m.Text(), m.Caret()),
			Effect: effect.String(),
		}
		if ctx := m.State().Context; ctx != nil {
			step.Context = fmt.Sprintf("%s [%d,%d,%d) %q %d/%d",
				ctx.Mode, ctx.ReplaceStart, ctx.FilterStart, ctx.ReplaceEnd,
				ctx.FilterText(m.Text()), len(ctx.Items), len(ctx.OriginalItems))
		}
		steps = append(steps, step)
		if m.Quitting() {
			break
		}
	}
	return steps
}

func init() {
	replayCmd.Flags().BoolVar(&replayAutoPair, "auto-pair", false, "insert '}' after a typed '{' like most editors")
	replayCmd.Flags().StringVar(&replayInitial, "initial", "", "buffer content before the first key (caret at its end)")
	replayCmd.Flags().StringVarP(&output, "output", "o", formatter.OutputTable, "output format: table|yaml|json|toml")
}
