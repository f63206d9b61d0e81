package syntax

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Fprint writes an indented debug dump of the tree to w.
func Fprint(w io.Writer, node Node) {
	p := &printer{w: w}
	p.print(node)
}

type printer struct {
	w      io.Writer
	indent int
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

func (p *printer) print(node Node) {
	if node == nil {
		return
	}

	switch n := node.(type) {
	case *Program:
		p.printf("Program %s version=%s\n", n.pos, formatNumber(n.Version))
		p.indent++
		for _, s := range n.Stmts {
			p.print(s)
		}
		p.indent--

	case *Include:
		p.printf("Include %s %q\n", n.pos, n.Path)

	case *RegDecl:
		p.printf("RegDecl %s %s %s[%d]\n", n.pos, n.Kind, n.Name, n.Size)

	case *GateCall:
		p.printf("GateCall %s %s qubits=%s\n", n.pos, n.Name, refsString(n.Qubits))
		if len(n.Params) > 0 {
			p.indent++
			p.printf("Params:\n")
			p.indent++
			for _, e := range n.Params {
				p.print(e)
			}
			p.indent -= 2
		}

	case *GateDecl:
		kind := "GateDecl"
		if n.Opaque {
			kind = "OpaqueDecl"
		}
		p.printf("%s %s %s params=[%s] qubits=[%s]\n", kind, n.pos, n.Name,
			strings.Join(n.Params, ", "), strings.Join(n.Qubits, ", "))
		if len(n.Body) > 0 {
			p.indent++
			p.printf("Body:\n")
			p.indent++
			for _, s := range n.Body {
				p.print(s)
			}
			p.indent -= 2
		}

	case *Measure:
		p.printf("Measure %s qubits=%s bits=%s\n", n.pos, refsString(n.Qubits), refsString(n.Clbits))

	case *Barrier:
		p.printf("Barrier %s qubits=%s\n", n.pos, refsString(n.Qubits))

	case *Reset:
		p.printf("Reset %s qubits=%s\n", n.pos, refsString(n.Qubits))

	case *RegisterRef:
		p.printf("RegisterRef %s %s\n", n.pos, refString(n))

	case *NumberLit:
		p.printf("NumberLit %s %s\n", n.pos, formatNumber(n.Value))

	case *Name:
		p.printf("Name %s %q\n", n.pos, n.Value)

	case *Operation:
		if n.IsUnary() {
			p.printf("UnaryOp %s %s\n", n.pos, n.Op)
			p.indent++
			p.print(n.X)
			p.indent--
		} else {
			p.printf("BinaryOp %s %s\n", n.pos, n.Op)
			p.indent++
			p.print(n.X)
			p.print(n.Y)
			p.indent--
		}

	default:
		p.printf("<%T>\n", node)
	}
}

// refString returns the source form of a register reference.
func refString(r *RegisterRef) string {
	if r.IsWhole() {
		return r.Name
	}
	return r.Name + "[" + strconv.Itoa(r.Index) + "]"
}

func refsString(refs []*RegisterRef) string {
	parts := make([]string, len(refs))
	for i, r := range refs {
		parts[i] = refString(r)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// formatNumber renders v in the scanner's number syntax: digits with an
// optional fraction and never an exponent.
func formatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
