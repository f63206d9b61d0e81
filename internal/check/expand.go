package check

import (
	"github.com/you-not-fish/qasm/internal/syntax"
)

// expand resolves register references to individual slots, in operand
// order. A whole-register reference becomes one slot per declared index,
// ascending. Every reference must name a declared register of the wanted
// kind; otherwise a diagnostic is reported and expand returns false.
func (c *Checker) expand(refs []*syntax.RegisterRef, kind syntax.RegKind) ([]Bit, bool) {
	var bits []Bit
	for _, r := range refs {
		reg := c.scope.LookupRegister(r.Name)
		if reg == nil {
			c.errorf(r.Pos(), "undefined register '%s'", r.Name)
			return nil, false
		}
		if reg.RegKind() != kind {
			c.errorf(r.Pos(), "'%s' is not a %s register", r.Name, kind.Noun())
			return nil, false
		}

		if !r.IsWhole() {
			bits = append(bits, Bit{Reg: r.Name, Index: r.Index})
			continue
		}
		for i := 0; i < reg.Size(); i++ {
			bits = append(bits, Bit{Reg: r.Name, Index: i})
		}
	}
	return bits, true
}

// inRange reports whether every indexed reference lies inside its
// register. Only the first violation is reported. The references must
// have been expanded successfully.
func (c *Checker) inRange(refs []*syntax.RegisterRef) bool {
	for _, r := range refs {
		if r.IsWhole() {
			continue
		}
		if r.Index >= c.scope.LookupRegister(r.Name).Size() {
			c.errorf(r.Pos(), "register '%s' index out of range", r.Name)
			return false
		}
	}
	return true
}
