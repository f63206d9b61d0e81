package syntax

import (
	"fmt"
	"io"
	"strconv"
)

// SupportedVersion is the only OPENQASM header version accepted.
const SupportedVersion = 2.0

// SyntaxError is the fatal error that ends a parse.
type SyntaxError struct {
	Pos   Pos
	Msg   string // what the parser expected, or the lexical problem
	Found string // text of the offending token
}

func (e *SyntaxError) Error() string {
	if e.Found == "" {
		return e.Pos.String() + ": " + e.Msg
	}
	return fmt.Sprintf("%s: %s, found %q", e.Pos, e.Msg, e.Found)
}

// bailout unwinds the parser after the first syntax error.
type bailout struct{}

// Parser performs syntax analysis on OpenQASM source text.
// A Parser is good for a single Parse call.
type Parser struct {
	scanner *Scanner

	// Current token info (cached from scanner)
	tok Token
	lit string
	pos Pos

	errh func(pos Pos, msg string)
	err  *SyntaxError

	// First lexical error reported by the scanner, if any.
	scanErrPos Pos
	scanErrMsg string
}

// NewParser creates a new Parser for the given source and primes one token
// of lookahead. The errh function, if not nil, is called once with the
// fatal syntax error.
func NewParser(filename string, src io.Reader, errh func(pos Pos, msg string)) *Parser {
	p := &Parser{errh: errh}
	scanErrh := func(line, col uint32, msg string) {
		if p.scanErrMsg == "" {
			p.scanErrPos = NewPos(filename, line, col)
			p.scanErrMsg = msg
		}
	}
	p.scanner = NewScanner(filename, src, scanErrh)
	p.advance()
	return p
}

// Parse parses a complete program. On the first syntax error it stops and
// returns a nil Program together with a *SyntaxError.
func (p *Parser) Parse() (prog *Program, err error) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}
			prog, err = nil, p.err
		}
	}()

	p.checkScanError()

	prog = &Program{}
	prog.pos = p.pos
	prog.Version = p.version()

	for p.tok != _EOF {
		prog.Stmts = append(prog.Stmts, p.stmt())
	}

	return prog, nil
}

// ----------------------------------------------------------------------------
// Token navigation

// next advances to the next token and fails on a lexical error reported
// while scanning it.
func (p *Parser) next() {
	p.advance()
	p.checkScanError()
}

// advance reads the next token from the scanner.
func (p *Parser) advance() {
	p.scanner.Next()
	p.tok = p.scanner.Token()
	p.lit = p.scanner.Literal()
	p.pos = p.scanner.Pos()
}

// got reports whether the current token is tok.
// If so, it consumes the token.
func (p *Parser) got(tok Token) bool {
	if p.tok == tok {
		p.next()
		return true
	}
	return false
}

// want consumes the current token if it matches tok and fails otherwise.
func (p *Parser) want(tok Token) {
	if !p.got(tok) {
		p.syntaxError("expected " + tok.String())
	}
}

// ----------------------------------------------------------------------------
// Error handling

// syntaxError aborts the parse with msg at the current token.
func (p *Parser) syntaxError(msg string) {
	p.syntaxErrorAt(p.pos, msg)
}

// checkScanError aborts the parse if the scanner has reported an error.
// Errors inside a token, such as invalid UTF-8 in a string, leave no
// _Error token behind and are only seen here.
func (p *Parser) checkScanError() {
	if p.scanErrMsg == "" {
		return
	}
	found := ""
	if p.tok == _Error {
		found = p.lit
	}
	p.fail(&SyntaxError{Pos: p.scanErrPos, Msg: p.scanErrMsg, Found: found})
}

// syntaxErrorAt aborts the parse with msg at pos.
func (p *Parser) syntaxErrorAt(pos Pos, msg string) {
	found := p.lit
	if p.tok == _EOF {
		found = "EOF"
	}

	p.fail(&SyntaxError{Pos: pos, Msg: msg, Found: found})
}

// fail records err, reports it to errh and unwinds to Parse.
func (p *Parser) fail(err *SyntaxError) {
	p.err = err
	if p.errh != nil {
		p.errh(err.Pos, err.Msg)
	}
	panic(bailout{})
}

// ----------------------------------------------------------------------------
// Header

// version parses: OPENQASM NUMBER ;
func (p *Parser) version() float64 {
	p.want(_OpenQASM)

	if p.tok != _Number {
		p.syntaxError("expected version number")
	}
	v, err := strconv.ParseFloat(p.lit, 64)
	if err != nil || v != SupportedVersion {
		p.syntaxError(fmt.Sprintf("unsupported OPENQASM version, want %.1f", SupportedVersion))
	}
	p.next()

	p.want(_Semi)
	return v
}

// ----------------------------------------------------------------------------
// Helper methods

// name parses an identifier; msg describes what was expected.
func (p *Parser) name(msg string) string {
	if p.tok != _Name {
		p.syntaxError(msg)
	}
	s := p.lit
	p.next()
	return s
}

// intLit parses a non-negative integer literal.
func (p *Parser) intLit(msg string) int {
	if p.tok != _Number {
		p.syntaxError(msg)
	}
	n, err := strconv.Atoi(p.lit)
	if err != nil {
		p.syntaxError(msg)
	}
	p.next()
	return n
}

// ----------------------------------------------------------------------------
// Statements

// stmt parses a top-level statement. Anything that does not start with a
// statement keyword is parsed as a gate call.
func (p *Parser) stmt() Stmt {
	switch p.tok {
	case _Include:
		return p.include()
	case _Qreg, _Creg:
		return p.regDecl()
	case _Measure:
		return p.measure()
	case _Barrier:
		return p.barrier()
	case _Reset:
		return p.reset()
	case _Gate:
		return p.gateDecl()
	case _Opaque:
		return p.opaqueDecl()
	default:
		return p.gateCall()
	}
}

// include parses: include "file";
func (p *Parser) include() *Include {
	s := &Include{}
	s.pos = p.pos

	p.want(_Include)
	if p.tok != _String {
		p.syntaxError("expected file name")
	}
	s.Path = p.lit
	p.next()
	p.want(_Semi)

	return s
}

// regDecl parses: qreg name[size]; or creg name[size];
func (p *Parser) regDecl() *RegDecl {
	d := &RegDecl{Kind: Quantum}
	d.pos = p.pos

	if p.tok == _Creg {
		d.Kind = Classical
	}
	p.next()

	d.Name = p.name("expected register name")
	p.want(_Lbrack)
	d.Size = p.intLit("expected register size")
	p.want(_Rbrack)
	p.want(_Semi)

	return d
}

// registerRef parses: name or name[index]
func (p *Parser) registerRef() *RegisterRef {
	r := &RegisterRef{Index: NoIndex}
	r.pos = p.pos

	r.Name = p.name("expected register name")
	if p.got(_Lbrack) {
		r.Index = p.intLit("expected register index")
		p.want(_Rbrack)
	}

	return r
}

// registerRefList parses a comma-separated, non-empty list of register
// references.
func (p *Parser) registerRefList() []*RegisterRef {
	list := []*RegisterRef{p.registerRef()}
	for p.got(_Comma) {
		list = append(list, p.registerRef())
	}
	return list
}

// gateCall parses: name(params...)? qubits... ;
func (p *Parser) gateCall() *GateCall {
	s := &GateCall{}
	s.pos = p.pos

	s.Name = p.name("expected gate name")
	if p.got(_Lparen) {
		s.Params = p.exprList()
		p.want(_Rparen)
	}
	s.Qubits = p.registerRefList()
	p.want(_Semi)

	return s
}

// measure parses: measure qubits -> bits;
func (p *Parser) measure() *Measure {
	s := &Measure{}
	s.pos = p.pos

	p.want(_Measure)
	s.Qubits = p.registerRefList()
	p.want(_Arrow)
	s.Clbits = p.registerRefList()
	p.want(_Semi)

	return s
}

// barrier parses: barrier qubits;
func (p *Parser) barrier() *Barrier {
	s := &Barrier{}
	s.pos = p.pos

	p.want(_Barrier)
	s.Qubits = p.registerRefList()
	p.want(_Semi)

	return s
}

// reset parses: reset qubits;
func (p *Parser) reset() *Reset {
	s := &Reset{}
	s.pos = p.pos

	p.want(_Reset)
	s.Qubits = p.registerRefList()
	p.want(_Semi)

	return s
}

// ----------------------------------------------------------------------------
// Gate declarations

// gateDecl parses: gate name(params...)? formals { body }
func (p *Parser) gateDecl() *GateDecl {
	d := &GateDecl{}
	d.pos = p.pos

	p.want(_Gate)
	p.gateSignature(d)

	p.want(_Lbrace)
	for p.tok != _Rbrace {
		d.Body = append(d.Body, p.gateBodyStmt())
	}
	p.want(_Rbrace)

	return d
}

// opaqueDecl parses: opaque name(params...)? formals ;
func (p *Parser) opaqueDecl() *GateDecl {
	d := &GateDecl{Opaque: true}
	d.pos = p.pos

	p.want(_Opaque)
	p.gateSignature(d)
	p.want(_Semi)

	return d
}

// gateSignature parses the name, formal parameters and formal qubits of a
// gate declaration into d.
func (p *Parser) gateSignature(d *GateDecl) {
	d.Name = p.name("expected gate name")

	if p.got(_Lparen) {
		d.Params = p.nameList("expected parameter name")
		p.want(_Rparen)
	}

	d.Qubits = p.nameList("expected qubit name")
	if p.tok == _Lbrack {
		p.syntaxError("formal qubit cannot be indexed")
	}
}

// nameList parses a comma-separated, non-empty list of identifiers.
func (p *Parser) nameList(msg string) []string {
	list := []string{p.name(msg)}
	for p.got(_Comma) {
		list = append(list, p.name(msg))
	}
	return list
}

// gateBodyStmt parses a statement inside a gate body; only gate calls and
// barriers are allowed there.
func (p *Parser) gateBodyStmt() Stmt {
	switch p.tok {
	case _Name:
		return p.gateCall()
	case _Barrier:
		return p.barrier()
	default:
		p.syntaxError("expected gate call or barrier in gate body")
		return nil
	}
}

// ----------------------------------------------------------------------------
// Expressions

// expr parses a parameter expression.
func (p *Parser) expr() Expr {
	return p.binaryExpr(0)
}

// binaryExpr parses a binary expression whose operators bind tighter than
// prec, by precedence climbing. Operators are left associative.
func (p *Parser) binaryExpr(prec int) Expr {
	x := p.unaryExpr()

	for {
		oprec := p.tok.Precedence()
		if oprec <= prec {
			return x
		}

		op := &Operation{Op: p.tok, X: x}
		op.pos = x.Pos()
		p.next()

		op.Y = p.binaryExpr(oprec)
		x = op
	}
}

// unaryExpr parses a signed operand or a function application. A sign
// applies to one operand or function application; signs do not repeat.
func (p *Parser) unaryExpr() Expr {
	if p.tok == _Add || p.tok == _Sub {
		op := &Operation{Op: p.tok}
		op.pos = p.pos
		p.next()
		if p.tok == _Add || p.tok == _Sub {
			p.syntaxError("expected operand after sign")
		}
		op.X = p.primaryExpr()
		return op
	}
	return p.primaryExpr()
}

// primaryExpr parses a function application or an operand.
func (p *Parser) primaryExpr() Expr {
	if !p.tok.IsFunc() {
		return p.operand()
	}
	op := &Operation{Op: p.tok}
	op.pos = p.pos
	p.next()
	p.want(_Lparen)
	op.X = p.expr()
	p.want(_Rparen)
	return op
}

// operand parses a number, a parameter name, a named constant or a
// parenthesized expression.
func (p *Parser) operand() Expr {
	switch p.tok {
	case _Number:
		v, err := strconv.ParseFloat(p.lit, 64)
		if err != nil {
			p.syntaxError("malformed number")
		}
		lit := &NumberLit{Value: v}
		lit.pos = p.pos
		p.next()
		return lit

	case _Name:
		pos := p.pos
		if v, ok := constants[p.lit]; ok {
			lit := &NumberLit{Value: v}
			lit.pos = pos
			p.next()
			return lit
		}
		n := &Name{Value: p.lit}
		n.pos = pos
		p.next()
		return n

	case _Lparen:
		p.next()
		x := p.expr()
		p.want(_Rparen)
		return x

	default:
		p.syntaxError("expected expression")
		return nil
	}
}

// exprList parses a comma-separated list of expressions.
func (p *Parser) exprList() []Expr {
	list := []Expr{p.expr()}
	for p.got(_Comma) {
		list = append(list, p.expr())
	}
	return list
}
