package main

import (
	"bytes"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/you-not-fish/qasm/internal/config"
	"github.com/you-not-fish/qasm/internal/syntax"
)

func newASTCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "ast FILE",
		Short: "Parse a file and print its syntax tree",
		Long: `Parse a file and print its syntax tree.

Formats: text (indented dump with positions), json, and qasm (the program
re-serialized as source). The default comes from output.astFormat.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				format = a.conf.Output.ASTFormat
			}
			return a.runAST(cmd, args[0], format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", config.FormatText, "output format: text, json or qasm")
	return cmd
}

// runAST parses the input file and outputs the tree.
func (a *app) runAST(cmd *cobra.Command, filename, format string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrap(err, "read")
	}

	prog, err := syntax.NewParser(filename, bytes.NewReader(data), nil).Parse()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	switch format {
	case config.FormatText:
		syntax.Fprint(w, prog)
	case config.FormatJSON:
		return errors.Wrap(syntax.FprintJSON(w, prog), "write json")
	case config.FormatQASM:
		return errors.Wrap(syntax.Format(w, prog), "write qasm")
	default:
		return errors.Errorf("unknown format %q", format)
	}
	return nil
}
