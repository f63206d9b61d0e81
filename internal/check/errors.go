// Package check implements semantic analysis of OpenQASM programs.
package check

import (
	"fmt"

	"github.com/you-not-fish/qasm/internal/syntax"
)

// Diagnostic is a semantic problem found during analysis. Diagnostics are
// accumulated; none of them stops the analysis.
type Diagnostic struct {
	Pos syntax.Pos
	Msg string
}

// Error implements the error interface.
func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s", d.Pos, d.Msg)
}

// Line returns the source line the diagnostic refers to.
func (d Diagnostic) Line() uint32 {
	return d.Pos.Line()
}

// ErrorHandler is a function called for each diagnostic.
type ErrorHandler func(pos syntax.Pos, msg string)

// errorf records a diagnostic at the given position.
func (c *Checker) errorf(pos syntax.Pos, format string, args ...interface{}) {
	d := Diagnostic{Pos: pos, Msg: fmt.Sprintf(format, args...)}
	c.diags = append(c.diags, d)

	if c.conf.Error != nil {
		c.conf.Error(d.Pos, d.Msg)
	}
}

// plural formats n with noun, adding an s unless n is 1.
func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
