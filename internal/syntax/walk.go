package syntax

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(node Node) bool

// Walk traverses a tree in depth-first order, children in source order.
func Walk(node Node, v Visitor) {
	if node == nil || !v(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, s := range n.Stmts {
			Walk(s, v)
		}

	case *GateCall:
		for _, e := range n.Params {
			Walk(e, v)
		}
		walkRefs(n.Qubits, v)

	case *GateDecl:
		for _, s := range n.Body {
			Walk(s, v)
		}

	case *Measure:
		walkRefs(n.Qubits, v)
		walkRefs(n.Clbits, v)

	case *Barrier:
		walkRefs(n.Qubits, v)

	case *Reset:
		walkRefs(n.Qubits, v)

	case *Operation:
		Walk(n.X, v)
		if n.Y != nil {
			Walk(n.Y, v)
		}

	// Leaf nodes: Include, RegDecl, RegisterRef, NumberLit, Name
	}
}

func walkRefs(refs []*RegisterRef, v Visitor) {
	for _, r := range refs {
		Walk(r, v)
	}
}

// Inspect traverses a tree and calls f for each node.
// Convenience wrapper around Walk.
func Inspect(node Node, f func(Node) bool) {
	Walk(node, Visitor(f))
}
