package symbols

// Names of the predeclared gates.
const (
	UniverseU  = "U"  // U(theta, phi, lambda) q
	UniverseCX = "CX" // CX control, target
)

// NewUniverse returns a fresh global table holding the built-in gates.
// Every analysis run owns its own table.
func NewUniverse() *Scope {
	s := NewScope("universe")
	defPredeclaredGates(s)
	return s
}

// defPredeclaredGates defines U and CX in s.
func defPredeclaredGates(s *Scope) {
	s.Insert(newBuiltin(UniverseU, 3, 1))
	s.Insert(newBuiltin(UniverseCX, 0, 2))
}
