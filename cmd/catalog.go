package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/tplc/internal/catalog"
	"github.com/oakwood-commons/tplc/internal/cel"
	"github.com/oakwood-commons/tplc/internal/formatter"
)

var (
	catalogSearch    string
	catalogFunctions bool
	catalogCheck     bool
	catalogDefault   bool
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the variables and methods offered for completion",
	Long: `Print the effective catalog: the built-in variables and methods merged with
--catalog-file or $XDG_CONFIG_HOME/tplc/catalog.yaml.

--check compiles every method expression, --functions lists the CEL string
functions method expressions can call and --default prints the built-in
catalog as YAML, ready to copy into a catalog file.`,
	Example: `  tplc catalog
  tplc catalog --search date
  tplc catalog -o yaml
  tplc catalog --check --catalog-file ./catalog.toml`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		if catalogDefault {
			_, err := os.Stdout.Write(catalog.DefaultYAML())
			return err
		}
		if err := formatter.ValidateOutput(output); err != nil {
			return err
		}
		if catalogFunctions {
			return printFunctions()
		}
		ws, err := loadWorkspace()
		if err != nil {
			return err
		}
		if catalogCheck {
			return checkCatalog(ws)
		}
		vars, methods := ws.registry.Search(catalogSearch)
		if output != formatter.OutputTable {
			return writeOutput(catalog.Catalog{Variables: vars, Methods: methods, Reserved: ws.registry.Reserved()}, nil, nil)
		}
		return printCatalogTables(vars, methods)
	},
}

func printCatalogTables(vars []catalog.Variable, methods []catalog.Method) error {
	varRows := make([][]string, 0, len(vars))
	for _, v := range vars {
		formats := make([]string, 0, len(v.Formats))
		for _, f := range v.Formats {
			formats = append(formats, f.Text)
		}
		varRows = append(varRows, []string{"{" + v.Name + "}", strings.Join(formats, ", "), v.Description})
	}
	methodRows := make([][]string, 0, len(methods))
	for _, m := range methods {
		methodRows = append(methodRows, []string{catalog.FormatMethodSignature(m), strings.Join(m.Aliases, ", "), m.Description})
	}
	if len(varRows) == 0 && len(methodRows) == 0 {
		_, err := fmt.Fprintf(os.Stdout, "no catalog entries match %q\n", catalogSearch)
		return err
	}
	if len(varRows) > 0 {
		if err := writeOutput(nil, []string{"VARIABLE", "FORMATS", "DESCRIPTION"}, varRows); err != nil {
			return err
		}
	}
	if len(varRows) > 0 && len(methodRows) > 0 {
		if _, err := fmt.Fprintln(os.Stdout); err != nil {
			return err
		}
	}
	if len(methodRows) > 0 {
		return writeOutput(nil, []string{"METHOD", "ALIASES", "DESCRIPTION"}, methodRows)
	}
	return nil
}

func printFunctions() error {
	eval, err := cel.NewEvaluator()
	if err != nil {
		return err
	}
	for _, fn := range eval.StringFunctions() {
		if _, err := fmt.Fprintln(os.Stdout, fn); err != nil {
			return err
		}
	}
	return nil
}

// checkCatalog compiles every method expression and reports all failures.
func checkCatalog(ws *workspace) error {
	eval, err := cel.NewEvaluator()
	if err != nil {
		return err
	}
	var errs []error
	methods := ws.registry.Methods()
	for _, m := range methods {
		if m.Expr == "" {
			continue
		}
		if err := eval.Check(m.Expr); err != nil {
			errs = append(errs, fmt.Errorf("method %q: %w", m.Name, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}
	vars, _ := ws.registry.Size()
	source := "built-in"
	if ws.path != "" {
		source = ws.path
	}
	_, err = fmt.Fprintf(os.Stdout, "catalog ok (%s): %d variables, %d methods\n", source, vars, len(methods))
	return err
}

func init() {
	catalogCmd.Flags().StringVarP(&catalogSearch, "search", "s", "", "show only entries whose name, alias or description contains this text")
	catalogCmd.Flags().BoolVar(&catalogFunctions, "functions", false, "list the CEL string functions available to method expressions")
	catalogCmd.Flags().BoolVar(&catalogCheck, "check", false, "compile every method expression and report errors")
	catalogCmd.Flags().BoolVar(&catalogDefault, "default", false, "print the built-in catalog as YAML")
	catalogCmd.Flags().StringVarP(&output, "output", "o", formatter.OutputTable, "output format: table|yaml|json|toml")
}
