package symbols

import (
	"fmt"
	"strings"
)

// Scope is the global symbol table of one analysis run. Names are unique
// across all symbol kinds and the insertion order is kept for listings.
type Scope struct {
	elems   map[string]Symbol
	order   []string
	comment string // debugging comment (e.g., "universe", "test.qasm")
}

// NewScope creates an empty scope.
func NewScope(comment string) *Scope {
	return &Scope{
		elems:   make(map[string]Symbol),
		comment: comment,
	}
}

// Comment returns the scope's comment (for debugging).
func (s *Scope) Comment() string {
	return s.comment
}

// Lookup returns the symbol with the given name, or nil.
func (s *Scope) Lookup(name string) Symbol {
	return s.elems[name]
}

// LookupGate returns the gate with the given name, or nil if name is
// undeclared or not a gate.
func (s *Scope) LookupGate(name string) *Gate {
	g, _ := s.elems[name].(*Gate)
	return g
}

// LookupRegister returns the register with the given name, or nil if name
// is undeclared or not a register.
func (s *Scope) LookupRegister(name string) Register {
	r, _ := s.elems[name].(Register)
	return r
}

// Insert inserts a symbol into the scope.
// If a symbol with the same name already exists, returns the existing
// symbol and leaves the scope unchanged. Otherwise, returns nil.
func (s *Scope) Insert(sym Symbol) Symbol {
	name := sym.Name()
	if existing := s.elems[name]; existing != nil {
		return existing
	}
	s.elems[name] = sym
	s.order = append(s.order, name)
	return nil
}

// Names returns the names of all symbols in insertion order.
func (s *Scope) Names() []string {
	names := make([]string, len(s.order))
	copy(names, s.order)
	return names
}

// Symbols returns all symbols in insertion order.
func (s *Scope) Symbols() []Symbol {
	syms := make([]Symbol, len(s.order))
	for i, name := range s.order {
		syms[i] = s.elems[name]
	}
	return syms
}

// Len returns the number of symbols in the scope.
func (s *Scope) Len() int {
	return len(s.order)
}

// String returns a string representation of the scope for debugging.
func (s *Scope) String() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "scope %s {\n", s.comment)
	for _, name := range s.order {
		fmt.Fprintf(&buf, "  %s\n", s.elems[name])
	}
	buf.WriteString("}\n")
	return buf.String()
}
