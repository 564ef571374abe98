package cmd

import (
	"context"
	"fmt"
	"runtime"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/oakwood-commons/tplc/pkg/logger"
	"github.com/oakwood-commons/tplc/pkg/settings"
)

var (
	catalogFile string
	debug       bool
	noColor     bool
	quiet       bool
	output      string

	rootCtx = context.Background()
)

var rootCmd = &cobra.Command{
	Use:   settings.CliBinaryName,
	Short: "Incremental completion for {variable} templates",
	Long: `tplc computes completion popups for text templates that interpolate
{variable}, {variable:format} and {variable.method(args)}.

It scans a buffer for the enclosing brace, opens variable, method or format
completion at a trigger character, filters candidates as you type and
applies the chosen item. Use "play" for an interactive editor, "replay" to
script one, and "render" to preview what a template expands to.`,
	Version:       cliVersionString(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		lgr := logger.Get(settings.LogLevel(debug))
		lgr = logger.WithValues(lgr, logger.RootCommandKey, settings.CliBinaryName, logger.SubCommandKey, cmd.Name())

		run := settings.NewCliParams()
		run.MinLogLevel = settings.LogLevel(debug)
		run.CatalogPath = catalogFile
		run.NoColor = noColor
		run.IsQuiet = quiet

		ctx := logger.WithLogger(context.Background(), lgr)
		rootCtx = settings.IntoContext(ctx, run)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print tplc version",
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), cliVersionString())
		return err
	},
}

// cliVersionString builds a human-readable version string for CLI output and Cobra's --version flag.
func cliVersionString() string {
	v := settings.VersionInformation
	return fmt.Sprintf("%s %s (commit %s, built %s, go %s)",
		settings.CliBinaryName, v.BuildVersion, v.Commit, v.BuildTime, runtime.Version())
}

// runSettings returns the settings stored by PersistentPreRun.
func runSettings() *settings.Run {
	if run, ok := settings.FromContext(rootCtx); ok {
		return run
	}
	return settings.NewCliParams()
}

func cmdLogger() logr.Logger {
	return *logger.FromContext(rootCtx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&catalogFile, "catalog-file", "", "catalog (yaml, json or toml) merged over the built-in one")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging on stderr")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "print only results: no summary lines")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(playCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
