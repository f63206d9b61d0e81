package syntax

import (
	"encoding/json"
	"io"
)

// FprintJSON writes a JSON representation of the tree to w.
func FprintJSON(w io.Writer, node Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toJSON(node))
}

func toJSON(node Node) interface{} {
	if node == nil {
		return nil
	}

	switch n := node.(type) {
	case *Program:
		return map[string]interface{}{
			"type":    "Program",
			"pos":     n.pos.String(),
			"version": n.Version,
			"stmts":   mapSlice(n.Stmts, func(s Stmt) interface{} { return toJSON(s) }),
		}

	case *Include:
		return map[string]interface{}{
			"type": "Include",
			"pos":  n.pos.String(),
			"path": n.Path,
		}

	case *RegDecl:
		return map[string]interface{}{
			"type": "RegDecl",
			"pos":  n.pos.String(),
			"kind": n.Kind.String(),
			"name": n.Name,
			"size": n.Size,
		}

	case *GateCall:
		return map[string]interface{}{
			"type":   "GateCall",
			"pos":    n.pos.String(),
			"name":   n.Name,
			"params": mapSlice(n.Params, func(e Expr) interface{} { return toJSON(e) }),
			"qubits": refsJSON(n.Qubits),
		}

	case *GateDecl:
		m := map[string]interface{}{
			"type":   "GateDecl",
			"pos":    n.pos.String(),
			"name":   n.Name,
			"params": nonNil(n.Params),
			"qubits": nonNil(n.Qubits),
			"opaque": n.Opaque,
		}
		if !n.Opaque {
			m["body"] = mapSlice(n.Body, func(s Stmt) interface{} { return toJSON(s) })
		}
		return m

	case *Measure:
		return map[string]interface{}{
			"type":   "Measure",
			"pos":    n.pos.String(),
			"qubits": refsJSON(n.Qubits),
			"bits":   refsJSON(n.Clbits),
		}

	case *Barrier:
		return map[string]interface{}{
			"type":   "Barrier",
			"pos":    n.pos.String(),
			"qubits": refsJSON(n.Qubits),
		}

	case *Reset:
		return map[string]interface{}{
			"type":   "Reset",
			"pos":    n.pos.String(),
			"qubits": refsJSON(n.Qubits),
		}

	case *RegisterRef:
		m := map[string]interface{}{
			"type": "RegisterRef",
			"pos":  n.pos.String(),
			"name": n.Name,
		}
		if !n.IsWhole() {
			m["index"] = n.Index
		}
		return m

	case *NumberLit:
		return map[string]interface{}{
			"type":  "NumberLit",
			"pos":   n.pos.String(),
			"value": n.Value,
		}

	case *Name:
		return map[string]interface{}{
			"type":  "Name",
			"pos":   n.pos.String(),
			"value": n.Value,
		}

	case *Operation:
		m := map[string]interface{}{
			"type": "Operation",
			"pos":  n.pos.String(),
			"op":   n.Op.String(),
			"x":    toJSON(n.X),
		}
		if !n.IsUnary() {
			m["y"] = toJSON(n.Y)
		}
		return m

	default:
		return map[string]interface{}{
			"type": "Unknown",
		}
	}
}

func refsJSON(refs []*RegisterRef) []interface{} {
	return mapSlice(refs, func(r *RegisterRef) interface{} { return toJSON(r) })
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func mapSlice[T any](s []T, f func(T) interface{}) []interface{} {
	result := make([]interface{}, len(s))
	for i, v := range s {
		result[i] = f(v)
	}
	return result
}
