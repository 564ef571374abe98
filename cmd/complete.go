package cmd

import (
	"fmt"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/tplc/internal/completion"
	"github.com/oakwood-commons/tplc/internal/formatter"
	"github.com/oakwood-commons/tplc/internal/limiter"
)

var (
	completeCaret   int
	completeTrigger string
	completeAccept  int
	completeLimits  limiter.Config
)

var completeCmd = &cobra.Command{
	Use:   "complete TEXT",
	Short: "Open a completion context at the caret",
	Long: `Compute the completion context a host editor would open after the trigger
character was typed just before the caret, and list its filtered items.

The trigger defaults to the rune before the caret: '{' offers variables,
'.' methods and ':' format options; any other rune inside an open
interpolation continues variable completion. --accept applies one item and
prints the resulting text with the caret marked as '|'.`,
	Example: `  tplc complete 'Hello {'
  tplc complete 'Hello {name.'
  tplc complete 'Hello {name.up}' --caret 12 --trigger .
  tplc complete 'Hello {da' --accept 0
  tplc complete '{' -o json --limit 3`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		if err := formatter.ValidateOutput(output); err != nil {
			return err
		}
		if err := completeLimits.Validate(); err != nil {
			return err
		}
		text := args[0]
		caret, err := resolveCaret(text, completeCaret)
		if err != nil {
			return err
		}
		trigger, err := resolveTrigger(text, caret, completeTrigger)
		if err != nil {
			return err
		}
		ws, err := loadWorkspace()
		if err != nil {
			return err
		}

		ctx := ws.engine.GetCompletionContext(text, caret, trigger)
		if ctx == nil {
			_, err = fmt.Fprintln(os.Stdout, "no completion")
			return err
		}
		if completeAccept >= 0 {
			return acceptItem(text, ctx, completeAccept)
		}
		view := newContextView(text, ctx, completeLimits)
		if output != formatter.OutputTable {
			return writeOutput(view, nil, nil)
		}
		if !runSettings().IsQuiet {
			if _, err := fmt.Fprintln(os.Stdout, view.summary()); err != nil {
				return err
			}
		}
		rows := make([][]string, 0, len(view.Items))
		for _, item := range view.Items {
			rows = append(rows, []string{strconv.Itoa(item.Index), item.Display, item.Replacement, item.Description})
		}
		return writeOutput(view, []string{"#", "ITEM", "REPLACEMENT", "DESCRIPTION"}, rows)
	},
}

// contextView is the printable form of a completion context.
type contextView struct {
	Mode         string     `yaml:"mode" json:"mode" toml:"mode"`
	ReplaceStart int        `yaml:"replace_start" json:"replace_start" toml:"replace_start"`
	FilterStart  int        `yaml:"filter_start" json:"filter_start" toml:"filter_start"`
	ReplaceEnd   int        `yaml:"replace_end" json:"replace_end" toml:"replace_end"`
	Filter       string     `yaml:"filter" json:"filter" toml:"filter"`
	Matches      int        `yaml:"matches" json:"matches" toml:"matches"`
	Total        int        `yaml:"total" json:"total" toml:"total"`
	Items        []itemView `yaml:"items" json:"items" toml:"items"`
}

type itemView struct {
	Index        int    `yaml:"index" json:"index" toml:"index"`
	Text         string `yaml:"text" json:"text" toml:"text"`
	Display      string `yaml:"display" json:"display" toml:"display"`
	Replacement  string `yaml:"replacement" json:"replacement" toml:"replacement"`
	CursorOffset int    `yaml:"cursor_offset" json:"cursor_offset" toml:"cursor_offset"`
	Description  string `yaml:"description,omitempty" json:"description,omitempty" toml:"description,omitempty"`
}

func newContextView(text string, ctx *completion.Context, limits limiter.Config) contextView {
	view := contextView{
		Mode:         ctx.Mode.String(),
		ReplaceStart: ctx.ReplaceStart,
		FilterStart:  ctx.FilterStart,
		ReplaceEnd:   ctx.ReplaceEnd,
		Filter:       ctx.FilterText(text),
		Matches:      len(ctx.Items),
		Total:        len(ctx.OriginalItems),
		Items:        []itemView{},
	}
	start, _ := limits.Bounds(len(ctx.Items))
	for i, item := range limiter.Apply(limits, ctx.Items) {
		view.Items = append(view.Items, itemView{
			Index:        start + i,
			Text:         item.Text,
			Display:      item.DisplayText,
			Replacement:  item.Replacement,
			CursorOffset: item.CursorOffset,
			Description:  item.Description,
		})
	}
	return view
}

func (v contextView) summary() string {
	return fmt.Sprintf("%s · replace [%d,%d) · filter %q · %d/%d items",
		v.Mode, v.ReplaceStart, v.ReplaceEnd, v.Filter, v.Matches, v.Total)
}

func acceptItem(text string, ctx *completion.Context, index int) error {
	if index >= len(ctx.Items) {
		return fmt.Errorf("--accept %d out of range: %d items match", index, len(ctx.Items))
	}
	edit, ok := completion.Apply(text, ctx, ctx.Items[index])
	if !ok {
		return fmt.Errorf("completion context does not fit the text")
	}
	_, err := fmt.Fprintln(os.Stdout, withCaret(edit.Text, edit.Caret))
	return err
}

// resolveTrigger returns the --trigger rune, or the rune before caret.
func resolveTrigger(text string, caret int, flag string) (rune, error) {
	if flag != "" {
		if utf8.RuneCountInString(flag) != 1 {
			return 0, fmt.Errorf("--trigger must be a single character, got %q", flag)
		}
		r, _ := utf8.DecodeRuneInString(flag)
		return r, nil
	}
	if caret == 0 {
		return 0, fmt.Errorf("no character before the caret; pass --trigger")
	}
	return []rune(text)[caret-1], nil
}

func init() {
	completeCmd.Flags().IntVar(&completeCaret, "caret", -1, "caret as a rune offset (-1 = end of text)")
	completeCmd.Flags().StringVar(&completeTrigger, "trigger", "", "trigger character (default: the character before the caret)")
	completeCmd.Flags().IntVar(&completeAccept, "accept", -1, "apply the item at this index and print the result")
	completeCmd.Flags().StringVarP(&output, "output", "o", formatter.OutputTable, "output format: table|yaml|json|toml")
	completeCmd.Flags().IntVar(&completeLimits.Limit, "limit", 0, "show only the first N items")
	completeCmd.Flags().IntVar(&completeLimits.Offset, "offset", 0, "skip the first N items")
	completeCmd.Flags().IntVar(&completeLimits.Tail, "tail", 0, "show only the last N items")
}
