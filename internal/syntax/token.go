// Package syntax implements lexical and syntactic analysis for OpenQASM 2.0
// circuit descriptions.
package syntax

import "fmt"

// Token represents the type of a lexical token.
type Token uint

const (
	// Special tokens
	_EOF   Token = iota // end of input
	_Error              // lexical error

	// Literals
	_Name   // identifier: q, theta, cx
	_Number // 2, 3.14
	_String // "qelib1.inc"

	// Operators (ordered by precedence, low to high)
	_Add // +
	_Sub // -
	_Mul // *
	_Div // /

	// Delimiters
	_Lparen // (
	_Rparen // )
	_Lbrack // [
	_Rbrack // ]
	_Lbrace // {
	_Rbrace // }
	_Comma  // ,
	_Semi   // ;
	_Arrow  // ->

	// Keywords
	_OpenQASM
	_Include
	_Qreg
	_Creg
	_Measure
	_Barrier
	_Reset
	_Gate
	_Opaque
	_If

	// Function keywords
	_Sin
	_Cos
	_Tan
	_Exp
	_Ln

	tokenCount
)

var tokenNames = [...]string{
	_EOF:   "EOF",
	_Error: "ERROR",

	_Name:   "NAME",
	_Number: "NUMBER",
	_String: "STRING",

	_Add: "+",
	_Sub: "-",
	_Mul: "*",
	_Div: "/",

	_Lparen: "(",
	_Rparen: ")",
	_Lbrack: "[",
	_Rbrack: "]",
	_Lbrace: "{",
	_Rbrace: "}",
	_Comma:  ",",
	_Semi:   ";",
	_Arrow:  "->",

	_OpenQASM: "OPENQASM",
	_Include:  "include",
	_Qreg:     "qreg",
	_Creg:     "creg",
	_Measure:  "measure",
	_Barrier:  "barrier",
	_Reset:    "reset",
	_Gate:     "gate",
	_Opaque:   "opaque",
	_If:       "if",

	_Sin: "sin",
	_Cos: "cos",
	_Tan: "tan",
	_Exp: "exp",
	_Ln:  "ln",
}

// String returns the string representation of the token.
func (t Token) String() string {
	if t < tokenCount {
		return tokenNames[t]
	}
	return fmt.Sprintf("token(%d)", t)
}

// Precedence returns the binding power of t as a binary operator,
// or 0 if t is not a binary operator.
//
//	1: + -
//	2: * /
func (t Token) Precedence() int {
	switch t {
	case _Add, _Sub:
		return 1
	case _Mul, _Div:
		return 2
	}
	return 0
}

// IsKeyword reports whether t is a reserved word.
func (t Token) IsKeyword() bool {
	return t >= _OpenQASM && t <= _Ln
}

// IsFunc reports whether t names a unary transcendental function.
func (t Token) IsFunc() bool {
	return t >= _Sin && t <= _Ln
}

// IsOperator reports whether t is an arithmetic operator.
func (t Token) IsOperator() bool {
	return t >= _Add && t <= _Div
}

// IsEOF reports whether t is the EOF token.
func (t Token) IsEOF() bool {
	return t == _EOF
}

// IsError reports whether t is the lexical error token.
func (t Token) IsError() bool {
	return t == _Error
}

// Operator tokens stored in Operation nodes.
const (
	Add Token = _Add // + (binary) or identity (unary)
	Sub Token = _Sub // - (binary) or negation (unary)
	Mul Token = _Mul // *
	Div Token = _Div // /
	Sin Token = _Sin
	Cos Token = _Cos
	Tan Token = _Tan
	Exp Token = _Exp
	Ln  Token = _Ln
)

// keywords maps reserved words to their token type.
// The built-in gate names U and CX are not reserved; they are ordinary names
// bound in the symbol universe.
var keywords = map[string]Token{
	"OPENQASM": _OpenQASM,
	"include":  _Include,
	"qreg":     _Qreg,
	"creg":     _Creg,
	"measure":  _Measure,
	"barrier":  _Barrier,
	"reset":    _Reset,
	"gate":     _Gate,
	"opaque":   _Opaque,
	"if":       _If,
	"sin":      _Sin,
	"cos":      _Cos,
	"tan":      _Tan,
	"exp":      _Exp,
	"ln":       _Ln,
}

// LookupKeyword returns the keyword token for ident, or _Name if ident is
// not reserved.
func LookupKeyword(ident string) Token {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return _Name
}

// constants maps the named constants folded to number literals by the parser.
var constants = map[string]float64{
	"pi":    3.141592653589793,
	"euler": 2.718281828459045,
}
