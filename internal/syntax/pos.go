package syntax

import "fmt"

// Pos locates a token or node in a QASM source: the file it came from and
// the 1-based line and byte column where it starts. Diagnostics report
// the line; syntax errors report both.
type Pos struct {
	file string
	line uint32
	col  uint32
}

// NoPos marks entities that have no source text, such as the built-in
// gates U and CX. It is the zero Pos and prints as "builtin".
var NoPos Pos

// NewPos returns the position at line:col of file.
func NewPos(file string, line, col uint32) Pos {
	return Pos{file: file, line: line, col: col}
}

// IsValid reports whether p points into a source, i.e. p is not NoPos.
func (p Pos) IsValid() bool { return p.line > 0 }

func (p Pos) Filename() string { return p.file }
func (p Pos) Line() uint32     { return p.line }
func (p Pos) Col() uint32      { return p.col }

// String formats p as file:line:col, dropping the file when it is unnamed
// (sources read from a string or stdin).
func (p Pos) String() string {
	switch {
	case !p.IsValid():
		return "builtin"
	case p.file == "":
		return fmt.Sprintf("%d:%d", p.line, p.col)
	}
	return fmt.Sprintf("%s:%d:%d", p.file, p.line, p.col)
}
