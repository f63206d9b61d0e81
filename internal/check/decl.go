package check

import (
	"go.uber.org/zap"

	"github.com/you-not-fish/qasm/internal/symbols"
	"github.com/you-not-fish/qasm/internal/syntax"
)

// regDecl checks a register declaration and adds the register to the
// global table. A rejected declaration leaves the table unchanged.
func (c *Checker) regDecl(d *syntax.RegDecl) {
	if d.Size < 1 {
		c.errorf(d.Pos(), "invalid %s register size", d.Kind.Noun())
		return
	}

	reg := symbols.NewRegister(d.Pos(), d.Kind, d.Name, d.Size)
	if existing := c.scope.Insert(reg); existing != nil {
		c.errorf(d.Pos(), "redefinition of %s register '%s'", d.Kind.Noun(), d.Name)
		return
	}

	c.log.Debug("register declared",
		zap.Stringer("kind", d.Kind),
		zap.String("name", d.Name),
		zap.Int("size", d.Size),
	)
}

// gateDecl checks a gate definition or opaque declaration. The gate is
// registered before its body is checked, so the body may name it.
func (c *Checker) gateDecl(d *syntax.GateDecl) {
	var g *symbols.Gate
	if d.Opaque {
		g = symbols.NewOpaqueGate(d.Pos(), d.Name, len(d.Params), len(d.Qubits))
	} else {
		g = symbols.NewGate(d.Pos(), d.Name, len(d.Params), len(d.Qubits))
	}
	if existing := c.scope.Insert(g); existing != nil {
		c.errorf(d.Pos(), "redefinition of gate '%s'", d.Name)
		return
	}

	c.log.Debug("gate declared",
		zap.String("name", d.Name),
		zap.Int("params", g.Params()),
		zap.Int("qubits", g.Qubits()),
		zap.Bool("opaque", d.Opaque),
	)

	formals := symbols.NewGateScope(d.Name)
	for _, q := range d.Qubits {
		if !formals.Declare(q, symbols.Qubit) {
			c.errorf(d.Pos(), "name '%s' already used in gate definition", q)
		}
	}
	for _, p := range d.Params {
		if !formals.Declare(p, symbols.Param) {
			c.errorf(d.Pos(), "name '%s' already used in gate definition", p)
		}
	}

	for _, s := range d.Body {
		c.bodyStmt(s, formals)
	}
}

// bodyStmt checks a statement inside a gate body against the formals of
// the enclosing definition.
func (c *Checker) bodyStmt(s syntax.Stmt, formals *symbols.GateScope) {
	switch s := s.(type) {
	case *syntax.GateCall:
		c.bodyGateCall(s, formals)
	case *syntax.Barrier:
		c.bodyQubits(s.Qubits, formals)
	default:
		c.errorf(s.Pos(), "invalid AST: unexpected %T in gate body", s)
	}
}

// bodyQubits checks that every operand names a formal qubit of the
// enclosing definition. Each bad operand is reported.
func (c *Checker) bodyQubits(refs []*syntax.RegisterRef, formals *symbols.GateScope) {
	for _, r := range refs {
		if !formals.IsQubit(r.Name) {
			c.errorf(r.Pos(), "undefined qubit '%s' in gate body", r.Name)
			continue
		}
		if !r.IsWhole() {
			c.errorf(r.Pos(), "qubit '%s' in gate body cannot be indexed", r.Name)
		}
	}
}
