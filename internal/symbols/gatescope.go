package symbols

// FormalKind distinguishes the two sets of names local to a gate
// definition.
type FormalKind uint8

const (
	Param FormalKind = iota // formal parameter, usable in expressions
	Qubit                   // formal qubit, usable as an operand
)

func (k FormalKind) String() string {
	if k == Qubit {
		return "qubit"
	}
	return "parameter"
}

// GateScope holds the formals of one gate definition. Parameter and
// qubit names are disjoint; a name may be declared once.
type GateScope struct {
	gate    string
	formals map[string]FormalKind
	params  []string
	qubits  []string
}

// NewGateScope creates an empty scope for the definition of gate.
func NewGateScope(gate string) *GateScope {
	return &GateScope{
		gate:    gate,
		formals: make(map[string]FormalKind),
	}
}

// Gate returns the name of the gate being defined.
func (s *GateScope) Gate() string {
	return s.gate
}

// Declare adds name as a formal of the given kind. It reports false and
// leaves the scope unchanged if name is already declared in either set.
func (s *GateScope) Declare(name string, kind FormalKind) bool {
	if _, dup := s.formals[name]; dup {
		return false
	}
	s.formals[name] = kind
	if kind == Qubit {
		s.qubits = append(s.qubits, name)
	} else {
		s.params = append(s.params, name)
	}
	return true
}

// Lookup returns the kind of the formal called name.
func (s *GateScope) Lookup(name string) (FormalKind, bool) {
	k, ok := s.formals[name]
	return k, ok
}

// IsParam reports whether name is a declared formal parameter.
func (s *GateScope) IsParam(name string) bool {
	k, ok := s.formals[name]
	return ok && k == Param
}

// IsQubit reports whether name is a declared formal qubit.
func (s *GateScope) IsQubit(name string) bool {
	k, ok := s.formals[name]
	return ok && k == Qubit
}

// Params returns the accepted parameter names in declaration order.
func (s *GateScope) Params() []string { return s.params }

// Qubits returns the accepted qubit names in declaration order.
func (s *GateScope) Qubits() []string { return s.qubits }
