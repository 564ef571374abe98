package cmd

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/oakwood-commons/tplc/internal/ui"
)

var (
	playAutoPair  bool
	playValues    []string
	playPress     string
	playMaxRows   int
	playWidth     int
	playNoAltScrn bool
)

var playCmd = &cobra.Command{
	Use:   "play [INITIAL]",
	Short: "Try completion in an interactive single-line editor",
	Long: `Open a single-line editor that behaves like a host application: typing '{',
'.' or ':' opens the completion popup, Up/Down select, Tab or Enter accept
and Esc dismisses the popup (or quits when none is open). A preview line
shows the template expanded with --set values.

--press types a key script (same syntax as "replay") and prints the final
screen instead of starting the terminal UI.`,
	Example: `  tplc play
  tplc play 'Hello ' --set name=world
  tplc play --press 'Hi {na<Tab>.up<Tab>' --no-color`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		values, err := parseValues(playValues)
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
		initial := ""
		if len(args) == 1 {
			initial = args[0]
		}
		m := ui.NewModel(ws.engine, ui.Options{
			Initial:   initial,
			AutoPair:  playAutoPair,
			MaxRows:   playMaxRows,
			NoColor:   runSettings().NoColor,
			AltScreen: !playNoAltScrn,
			Renderer:  r,
			Values:    values,
			Catalog:   ws.registry,
		})

		w, h := detectTerminalSize()
		if playWidth > 0 {
			w = playWidth
		}
		if h == 0 {
			h = defaultFallbackTermHeight
		}
		if playPress != "" {
			m.Update(tea.WindowSizeMsg{Width: w, Height: h})
			ui.ApplyKeys(m, ui.ParseKeys(playPress))
			_, err := fmt.Fprintln(os.Stdout, m.Render())
			return err
		}
		cmdLogger().V(1).Info("starting playground", "width", w, "height", h, "autoPair", playAutoPair)
		_, err = ui.Run(m, tea.WithWindowSize(w, h))
		return err
	},
}

func init() {
	playCmd.Flags().BoolVar(&playAutoPair, "auto-pair", true, "insert '}' after a typed '{' like most editors")
	playCmd.Flags().StringArrayVar(&playValues, "set", nil, "preview value as name=value (repeatable)")
	playCmd.Flags().StringVar(&playPress, "press", "", "type this key script and print the final screen")
	playCmd.Flags().IntVar(&playMaxRows, "max-rows", 0, "popup rows to show (0 = default)")
	playCmd.Flags().IntVar(&playWidth, "width", 0, "screen width for --press (0 = terminal width)")
	playCmd.Flags().BoolVar(&playNoAltScrn, "no-alt-screen", false, "render inline instead of in the alternate screen")
}
