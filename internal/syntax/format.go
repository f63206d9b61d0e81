package syntax

import (
	"io"
	"strconv"
	"strings"
)

// Format writes prog back out as OpenQASM source text. Parsing the output
// yields a tree equal to prog apart from positions.
func Format(w io.Writer, prog *Program) error {
	var f formatter
	f.program(prog)
	_, err := io.WriteString(w, f.buf.String())
	return err
}

// ExprString returns the source form of a parameter expression.
func ExprString(x Expr) string {
	var f formatter
	f.expr(x)
	return f.buf.String()
}

type formatter struct {
	buf    strings.Builder
	indent int
}

func (f *formatter) line(parts ...string) {
	f.buf.WriteString(strings.Repeat("  ", f.indent))
	for _, s := range parts {
		f.buf.WriteString(s)
	}
	f.buf.WriteByte('\n')
}

func (f *formatter) program(prog *Program) {
	f.line("OPENQASM ", formatNumber(prog.Version), ";")
	for _, s := range prog.Stmts {
		f.stmt(s)
	}
}

func (f *formatter) stmt(s Stmt) {
	switch s := s.(type) {
	case *Include:
		f.line("include \"", s.Path, "\";")

	case *RegDecl:
		f.line(s.Kind.String(), " ", s.Name, "[", strconv.Itoa(s.Size), "];")

	case *GateCall:
		f.line(s.Name, f.params(s.Params), " ", refsSource(s.Qubits), ";")

	case *GateDecl:
		sig := s.Name
		if len(s.Params) > 0 {
			sig += "(" + strings.Join(s.Params, ", ") + ")"
		}
		sig += " " + strings.Join(s.Qubits, ", ")
		if s.Opaque {
			f.line("opaque ", sig, ";")
			return
		}
		f.line("gate ", sig, " {")
		f.indent++
		for _, b := range s.Body {
			f.stmt(b)
		}
		f.indent--
		f.line("}")

	case *Measure:
		f.line("measure ", refsSource(s.Qubits), " -> ", refsSource(s.Clbits), ";")

	case *Barrier:
		f.line("barrier ", refsSource(s.Qubits), ";")

	case *Reset:
		f.line("reset ", refsSource(s.Qubits), ";")
	}
}

func (f *formatter) params(list []Expr) string {
	if len(list) == 0 {
		return ""
	}
	parts := make([]string, len(list))
	for i, x := range list {
		parts[i] = ExprString(x)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (f *formatter) expr(x Expr) {
	switch x := x.(type) {
	case *NumberLit:
		f.buf.WriteString(formatNumber(x.Value))

	case *Name:
		f.buf.WriteString(x.Value)

	case *Operation:
		if x.IsUnary() {
			f.unary(x)
			return
		}
		prec := x.Op.Precedence()
		f.operand(x.X, isBinary(x.X) && x.X.(*Operation).Op.Precedence() < prec)
		f.buf.WriteString(" " + x.Op.String() + " ")
		// Operators associate to the left, so an equal-precedence right
		// operand needs parentheses.
		f.operand(x.Y, isBinary(x.Y) && x.Y.(*Operation).Op.Precedence() <= prec)
	}
}

func (f *formatter) unary(x *Operation) {
	if x.Op.IsFunc() {
		f.buf.WriteString(x.Op.String() + "(")
		f.expr(x.X)
		f.buf.WriteByte(')')
		return
	}
	// Signs do not repeat, so a signed operand keeps its parentheses.
	f.buf.WriteString(x.Op.String())
	f.operand(x.X, isBinary(x.X) || isSign(x.X))
}

func (f *formatter) operand(x Expr, paren bool) {
	if paren {
		f.buf.WriteByte('(')
	}
	f.expr(x)
	if paren {
		f.buf.WriteByte(')')
	}
}

func isBinary(x Expr) bool {
	op, ok := x.(*Operation)
	return ok && !op.IsUnary()
}

func isSign(x Expr) bool {
	op, ok := x.(*Operation)
	return ok && op.IsUnary() && !op.Op.IsFunc()
}

func refsSource(refs []*RegisterRef) string {
	parts := make([]string, len(refs))
	for i, r := range refs {
		parts[i] = refString(r)
	}
	return strings.Join(parts, ", ")
}
