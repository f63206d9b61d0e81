package check

import (
	"github.com/you-not-fish/qasm/internal/symbols"
	"github.com/you-not-fish/qasm/internal/syntax"
)

// expr checks that every name in a parameter expression is a formal
// parameter of the enclosing gate definition. Outside a definition
// formals is nil and no name can resolve. Expressions are never evaluated.
func (c *Checker) expr(x syntax.Expr, formals *symbols.GateScope) {
	switch x := x.(type) {
	case *syntax.NumberLit:
		// ok

	case *syntax.Name:
		if formals == nil {
			c.errorf(x.Pos(), "undefined parameter '%s'", x.Value)
			return
		}
		if !formals.IsParam(x.Value) {
			c.errorf(x.Pos(), "parameter '%s' not declared in gate definition", x.Value)
		}

	case *syntax.Operation:
		c.expr(x.X, formals)
		if x.Y != nil {
			c.expr(x.Y, formals)
		}

	default:
		c.errorf(x.Pos(), "invalid AST: unexpected expression %T", x)
	}
}
