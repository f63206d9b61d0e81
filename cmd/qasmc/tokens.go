package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/markkurossi/tabulate"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/you-not-fish/qasm/internal/syntax"
)

func newTokensCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens FILE",
		Short: "Print the token stream of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTokens(cmd, args[0])
		},
	}
}

// runTokens scans the input file and prints all tokens with positions.
// Scanning continues past lexical errors, which are listed at the end.
func (a *app) runTokens(cmd *cobra.Command, filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrap(err, "read")
	}

	var errs []string
	errh := func(line, col uint32, msg string) {
		errs = append(errs, fmt.Sprintf("%s:%d:%d: %s", filename, line, col, msg))
	}

	s := syntax.NewScanner(filename, bytes.NewReader(data), errh)

	tab := tabulate.New(tabulate.Plain)
	tab.Header("POSITION")
	tab.Header("TOKEN")
	tab.Header("LITERAL")

	for {
		s.Next()
		tok := s.Token()

		row := tab.Row()
		row.Column(s.Pos().String())
		row.Column(tok.String())
		row.Column(formatLiteral(s.Literal()))

		if tok.IsEOF() {
			break
		}
	}
	tab.Print(cmd.OutOrStdout())

	if len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintln(cmd.ErrOrStderr(), e)
		}
		return errors.Errorf("%d lexical errors", len(errs))
	}
	return nil
}

// formatLiteral quotes lit with control characters made visible.
func formatLiteral(lit string) string {
	if lit == "" {
		return "\"\""
	}

	var b strings.Builder
	b.WriteRune('"')
	for _, r := range lit {
		switch r {
		case '\n':
			b.WriteString("\\n")
		case '\t':
			b.WriteString("\\t")
		case '\r':
			b.WriteString("\\r")
		case '\\':
			b.WriteString("\\\\")
		case '"':
			b.WriteString("\\\"")
		default:
			b.WriteRune(r)
		}
	}
	b.WriteRune('"')
	return b.String()
}
