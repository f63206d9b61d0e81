package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/markkurossi/tabulate"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/you-not-fish/qasm/internal/driver"
	"github.com/you-not-fish/qasm/internal/symbols"
	"github.com/you-not-fish/qasm/internal/syntax"
)

func newCheckCmd(a *app) *cobra.Command {
	var showSymbols bool
	cmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "Parse and analyze files",
		Long: `Parse and analyze files concurrently.

Each file's syntax error or diagnostics are printed to standard error in
argument order. The run fails if any file has a syntax error, or any
diagnostic when diagnostics.fatal is set.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheck(cmd, args, showSymbols)
		},
	}
	cmd.Flags().BoolVarP(&showSymbols, "symbols", "s", false, "print the global symbol table of each file")
	return cmd
}

func (a *app) runCheck(cmd *cobra.Command, paths []string, showSymbols bool) error {
	results, err := a.driver().CompileFiles(cmd.Context(), paths)
	if err != nil {
		return err
	}

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
		report(cmd.ErrOrStderr(), res)
		if showSymbols && res.Info != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "%s:\n", res.Filename)
			printSymbols(cmd.OutOrStdout(), res.Info.Symbols)
		}
	}

	if failed > 0 {
		return errors.Errorf("%d of %d files failed", failed, len(results))
	}
	return nil
}

// report prints the problems found in one file.
func report(w io.Writer, res *driver.Result) {
	if res.Program == nil {
		// Syntax and read errors carry their own position.
		cause := errors.Cause(res.Err)
		if _, ok := cause.(*syntax.SyntaxError); ok {
			fmt.Fprintln(w, cause)
		} else {
			fmt.Fprintf(w, "%s: %v\n", res.Filename, res.Err)
		}
		return
	}

	for _, d := range res.Diagnostics {
		fmt.Fprintln(w, d)
	}
	if res.Omitted > 0 {
		fmt.Fprintf(w, "%s: %d more diagnostics omitted\n", res.Filename, res.Omitted)
	}
}

// printSymbols prints every symbol of scope, built-ins first, as a table.
func printSymbols(w io.Writer, scope *symbols.Scope) {
	tab := tabulate.New(tabulate.Plain)
	tab.Header("NAME")
	tab.Header("KIND")
	tab.Header("SIZE")
	tab.Header("PARAMS")
	tab.Header("QUBITS")
	tab.Header("DECLARED")

	for _, sym := range scope.Symbols() {
		row := tab.Row()
		row.Column(sym.Name())
		row.Column(sym.Kind().String())
		switch sym := sym.(type) {
		case symbols.Register:
			row.Column(strconv.Itoa(sym.Size()))
			row.Column("-")
			row.Column("-")
		case *symbols.Gate:
			row.Column("-")
			row.Column(strconv.Itoa(sym.Params()))
			row.Column(strconv.Itoa(sym.Qubits()))
		}
		row.Column(sym.Pos().String())
	}
	tab.Print(w)
}
