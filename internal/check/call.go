package check

import (
	"github.com/you-not-fish/qasm/internal/symbols"
	"github.com/you-not-fish/qasm/internal/syntax"
)

// resolveGate looks up the gate applied by call and checks its parameter
// count. It returns nil after reporting a diagnostic.
func (c *Checker) resolveGate(call *syntax.GateCall) *symbols.Gate {
	g := c.scope.LookupGate(call.Name)
	if g == nil {
		c.errorf(call.Pos(), "gate '%s' not declared", call.Name)
		return nil
	}
	c.recordGate(call, g)

	if len(call.Params) != g.Params() {
		c.errorf(call.Pos(), "gate '%s' expects %s, got %d",
			call.Name, plural(g.Params(), "parameter"), len(call.Params))
		return nil
	}
	return g
}

// checkQubitCount reports a diagnostic if n differs from the arity of g.
func (c *Checker) checkQubitCount(call *syntax.GateCall, g *symbols.Gate, n int) bool {
	if n != g.Qubits() {
		c.errorf(call.Pos(), "gate '%s' expects %s, got %d",
			call.Name, plural(g.Qubits(), "qubit"), n)
		return false
	}
	return true
}

// gateCall checks a top-level gate application: the gate must be
// declared, its parameters must be closed expressions, and the expanded
// operands must match its arity and lie inside their registers.
func (c *Checker) gateCall(call *syntax.GateCall) {
	g := c.resolveGate(call)
	if g == nil {
		return
	}

	for _, x := range call.Params {
		c.expr(x, nil)
	}

	qubits, ok := c.expand(call.Qubits, syntax.Quantum)
	if !ok {
		return
	}
	if !c.checkQubitCount(call, g, len(qubits)) {
		return
	}
	if !c.inRange(call.Qubits) {
		return
	}

	c.recordOperands(call, qubits, nil)
}

// bodyGateCall checks a gate application inside a gate body. Operands
// name formal qubits and are never expanded.
func (c *Checker) bodyGateCall(call *syntax.GateCall, formals *symbols.GateScope) {
	g := c.resolveGate(call)
	if g == nil {
		return
	}

	for _, x := range call.Params {
		c.expr(x, formals)
	}

	if !c.checkQubitCount(call, g, len(call.Qubits)) {
		return
	}
	c.bodyQubits(call.Qubits, formals)
}
