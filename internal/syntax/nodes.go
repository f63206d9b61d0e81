package syntax

// ----------------------------------------------------------------------------
// Interfaces
//
// The tree is a closed sum type: every variant is declared in this file and
// the marker methods keep other packages from adding more. Consumers switch
// on the concrete type.

// Node is the interface implemented by all tree nodes.
type Node interface {
	Pos() Pos // position of the first character belonging to the node
	aNode()
}

// Stmt is the interface for statement nodes.
type Stmt interface {
	Node
	aStmt()
}

// Expr is the interface for parameter expression nodes.
type Expr interface {
	Node
	aExpr()
}

// ----------------------------------------------------------------------------
// Base node types

type node struct {
	pos Pos
}

func (n *node) Pos() Pos { return n.pos }
func (n *node) aNode()   {}

type stmt struct{ node }

func (*stmt) aStmt() {}

type expr struct{ node }

func (*expr) aExpr() {}

// ----------------------------------------------------------------------------
// Program and statements

// Program is the root of a parsed source text.
type Program struct {
	node
	Version float64 // always 2.0 after a successful parse
	Stmts   []Stmt  // top-level statements in source order
}

// Include is an include directive. The file is recorded, never read.
type Include struct {
	stmt
	Path string
}

// RegKind distinguishes the two register namespaces.
type RegKind uint8

const (
	Quantum   RegKind = iota // qreg
	Classical                // creg
)

// String returns the declaring keyword.
func (k RegKind) String() string {
	if k == Classical {
		return "creg"
	}
	return "qreg"
}

// Noun returns the adjective used in diagnostics ("quantum", "classical").
func (k RegKind) Noun() string {
	if k == Classical {
		return "classical"
	}
	return "quantum"
}

// RegDecl is a register declaration: qreg Name[Size]; or creg Name[Size];
type RegDecl struct {
	stmt
	Kind RegKind
	Name string
	Size int // not yet validated; the checker requires Size >= 1
}

// NoIndex marks a RegisterRef that denotes a whole register.
const NoIndex = -1

// RegisterRef names a register, optionally with an index: q or q[3].
type RegisterRef struct {
	node
	Name  string
	Index int // NoIndex for a whole-register reference
}

// IsWhole reports whether r refers to every slot of its register.
func (r *RegisterRef) IsWhole() bool {
	return r.Index == NoIndex
}

// GateCall applies a gate: Name(Params...) Qubits...;
type GateCall struct {
	stmt
	Name   string
	Params []Expr         // possibly empty
	Qubits []*RegisterRef // operands in source order
}

// GateDecl is a gate definition, or an opaque gate declaration when Opaque
// is set (Body is then nil).
//
//	gate Name(Params...) Qubits... { Body }
//	opaque Name(Params...) Qubits...;
type GateDecl struct {
	stmt
	Name   string
	Params []string // formal parameter names
	Qubits []string // formal qubit names
	Body   []Stmt   // *GateCall and *Barrier only
	Opaque bool
}

// Measure is a measurement: measure Qubits -> Clbits;
type Measure struct {
	stmt
	Qubits []*RegisterRef
	Clbits []*RegisterRef
}

// Barrier is a barrier over the given qubits.
type Barrier struct {
	stmt
	Qubits []*RegisterRef
}

// Reset returns the given qubits to |0>.
type Reset struct {
	stmt
	Qubits []*RegisterRef
}

// ----------------------------------------------------------------------------
// Expressions

// NumberLit is a numeric literal, including the folded named constants.
type NumberLit struct {
	expr
	Value float64
}

// Name is a reference to a gate parameter.
type Name struct {
	expr
	Value string
}

// Operation is a unary or binary arithmetic operation.
// For unary operations Y is nil and Op is one of Add (identity), Sub
// (negation), Sin, Cos, Tan, Exp or Ln. Binary operations use Add, Sub,
// Mul or Div.
type Operation struct {
	expr
	Op Token
	X  Expr
	Y  Expr
}

// IsUnary reports whether o has a single operand.
func (o *Operation) IsUnary() bool {
	return o.Y == nil
}
