package check

import (
	"go.uber.org/zap"

	"github.com/you-not-fish/qasm/internal/symbols"
	"github.com/you-not-fish/qasm/internal/syntax"
)

// Checker is the semantic analyzer. A Checker is used for one Check call
// and owns its symbol table for that call.
type Checker struct {
	conf *Config
	info *Info
	log  *zap.Logger

	scope *symbols.Scope // global table, mutated in source order

	diags []Diagnostic
}

// checkProgram checks the top-level statements in one pass.
func (c *Checker) checkProgram(prog *syntax.Program) {
	if prog == nil {
		return
	}

	for _, s := range prog.Stmts {
		c.stmt(s)
	}

	c.log.Info("analysis complete",
		zap.String("file", prog.Pos().Filename()),
		zap.Int("statements", len(prog.Stmts)),
		zap.Int("symbols", c.scope.Len()),
		zap.Int("diagnostics", len(c.diags)),
	)
}

// stmt checks a top-level statement.
func (c *Checker) stmt(s syntax.Stmt) {
	switch s := s.(type) {
	case *syntax.Include:
		c.include(s)
	case *syntax.RegDecl:
		c.regDecl(s)
	case *syntax.GateDecl:
		c.gateDecl(s)
	case *syntax.GateCall:
		c.gateCall(s)
	case *syntax.Measure:
		c.measure(s)
	case *syntax.Barrier:
		c.barrier(s)
	case *syntax.Reset:
		c.reset(s)
	default:
		c.errorf(s.Pos(), "invalid AST: unexpected statement %T", s)
	}
}

func (c *Checker) include(s *syntax.Include) {
	c.log.Debug("include recorded", zap.String("path", s.Path), zap.Stringer("pos", s.Pos()))
	if c.info != nil {
		c.info.Includes = append(c.info.Includes, s.Path)
	}
}

// recordGate records the gate a call resolved to.
func (c *Checker) recordGate(call *syntax.GateCall, g *symbols.Gate) {
	if c.info != nil {
		c.info.Gates[call] = g
	}
}

// recordOperands records the expanded operands of a statement.
func (c *Checker) recordOperands(s syntax.Stmt, qubits, clbits []Bit) {
	if c.info != nil {
		c.info.Operands[s] = &Operands{Qubits: qubits, Clbits: clbits}
	}
}
