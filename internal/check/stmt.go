package check

import (
	"github.com/you-not-fish/qasm/internal/syntax"
)

// measure checks a measurement. Sources must be qubits, targets classical
// bits, and both lists must expand to the same length.
func (c *Checker) measure(s *syntax.Measure) {
	qubits, ok := c.expand(s.Qubits, syntax.Quantum)
	if !ok {
		return
	}
	clbits, ok := c.expand(s.Clbits, syntax.Classical)
	if !ok {
		return
	}

	if len(qubits) != len(clbits) {
		c.errorf(s.Pos(), "measure expects as many bits as qubits, got %s and %s",
			plural(len(qubits), "qubit"), plural(len(clbits), "bit"))
		return
	}
	if !c.inRange(s.Qubits) || !c.inRange(s.Clbits) {
		return
	}

	c.recordOperands(s, qubits, clbits)
}

// barrier checks a top-level barrier.
func (c *Checker) barrier(s *syntax.Barrier) {
	if qubits, ok := c.qubitList(s.Qubits); ok {
		c.recordOperands(s, qubits, nil)
	}
}

// reset checks a reset.
func (c *Checker) reset(s *syntax.Reset) {
	if qubits, ok := c.qubitList(s.Qubits); ok {
		c.recordOperands(s, qubits, nil)
	}
}

// qubitList expands and bounds-checks a list of quantum operands.
func (c *Checker) qubitList(refs []*syntax.RegisterRef) ([]Bit, bool) {
	qubits, ok := c.expand(refs, syntax.Quantum)
	if !ok || !c.inRange(refs) {
		return nil, false
	}
	return qubits, true
}
