// Package symbols declares the symbol tables used by semantic analysis:
// the global table of registers and gates, and the transient scope of
// formals inside a gate definition.
package symbols

import (
	"fmt"

	"github.com/you-not-fish/qasm/internal/syntax"
)

// Kind identifies a symbol variant.
type Kind uint8

const (
	KindQReg Kind = iota
	KindCReg
	KindGate
)

var kindNames = [...]string{
	KindQReg: "qreg",
	KindCReg: "creg",
	KindGate: "gate",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// Symbol is an entry of the global table. Registers and gates share one
// namespace.
type Symbol interface {
	Name() string    // declared name
	Kind() Kind      // symbol variant
	Pos() syntax.Pos // declaration position, NoPos for built-ins
	String() string  // short description for listings

	aSymbol() // marker method to restrict implementations
}

// symbol is the base struct for all symbols.
type symbol struct {
	name string
	pos  syntax.Pos
}

func (s *symbol) Name() string    { return s.name }
func (s *symbol) Pos() syntax.Pos { return s.pos }
func (*symbol) aSymbol()          {}

// Register is implemented by QReg and CReg.
type Register interface {
	Symbol
	Size() int
	RegKind() syntax.RegKind
}

// QReg is a quantum register.
type QReg struct {
	symbol
	size int
}

// NewQReg creates a quantum register symbol.
func NewQReg(pos syntax.Pos, name string, size int) *QReg {
	return &QReg{symbol: symbol{name: name, pos: pos}, size: size}
}

func (r *QReg) Kind() Kind              { return KindQReg }
func (r *QReg) Size() int               { return r.size }
func (r *QReg) RegKind() syntax.RegKind { return syntax.Quantum }
func (r *QReg) String() string          { return fmt.Sprintf("qreg %s[%d]", r.name, r.size) }

// CReg is a classical register.
type CReg struct {
	symbol
	size int
}

// NewCReg creates a classical register symbol.
func NewCReg(pos syntax.Pos, name string, size int) *CReg {
	return &CReg{symbol: symbol{name: name, pos: pos}, size: size}
}

func (r *CReg) Kind() Kind              { return KindCReg }
func (r *CReg) Size() int               { return r.size }
func (r *CReg) RegKind() syntax.RegKind { return syntax.Classical }
func (r *CReg) String() string          { return fmt.Sprintf("creg %s[%d]", r.name, r.size) }

// NewRegister creates the register symbol matching kind.
func NewRegister(pos syntax.Pos, kind syntax.RegKind, name string, size int) Register {
	if kind == syntax.Classical {
		return NewCReg(pos, name, size)
	}
	return NewQReg(pos, name, size)
}

// Gate is a built-in or user-declared gate. Only its arity is recorded;
// bodies are not kept.
type Gate struct {
	symbol
	params  int
	qubits  int
	builtin bool
	opaque  bool
}

// NewGate creates a gate symbol with the given arity.
func NewGate(pos syntax.Pos, name string, params, qubits int) *Gate {
	return &Gate{symbol: symbol{name: name, pos: pos}, params: params, qubits: qubits}
}

// NewOpaqueGate creates a gate symbol for an opaque declaration.
func NewOpaqueGate(pos syntax.Pos, name string, params, qubits int) *Gate {
	g := NewGate(pos, name, params, qubits)
	g.opaque = true
	return g
}

func newBuiltin(name string, params, qubits int) *Gate {
	g := NewGate(syntax.NoPos, name, params, qubits)
	g.builtin = true
	return g
}

func (g *Gate) Kind() Kind { return KindGate }

// Params returns the declared parameter count.
func (g *Gate) Params() int { return g.params }

// Qubits returns the declared qubit count.
func (g *Gate) Qubits() int { return g.qubits }

// Builtin reports whether g is predeclared.
func (g *Gate) Builtin() bool { return g.builtin }

// Opaque reports whether g was declared without a body.
func (g *Gate) Opaque() bool { return g.opaque }

func (g *Gate) String() string {
	return fmt.Sprintf("gate %s(%d) %d", g.name, g.params, g.qubits)
}
