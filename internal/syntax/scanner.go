package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Scanner performs lexical analysis on OpenQASM source text.
// Tokens are produced on demand, one per call to Next.
type Scanner struct {
	source // embedded character reader

	// Current token info
	tok    Token  // token type
	lit    string // token text (string literals without quotes)
	msg    string // error message when tok == _Error
	tokPos Pos    // token start position

	litBuf strings.Builder
}

// NewScanner creates a new Scanner for the given source.
// The errh function is called for each lexical error; if nil, errors are
// only visible as _Error tokens.
func NewScanner(filename string, src io.Reader, errh func(line, col uint32, msg string)) *Scanner {
	return &Scanner{source: *newSource(filename, src, errh)}
}

// Next advances to the next token. At the end of input the token is EOF,
// and every further call yields EOF again.
func (s *Scanner) Next() {
	s.msg = ""

redo:
	for isWhitespace(s.ch) || s.ch == '\n' {
		s.nextch()
	}

	s.tokPos = s.pos()

	switch {
	case s.ch < 0:
		s.tok = _EOF
		s.lit = ""

	case isLetter(s.ch):
		s.scanIdent()

	case isDigit(s.ch):
		s.scanNumber()

	case s.ch == '"':
		s.scanString()

	case s.ch == '/':
		s.nextch()
		switch s.ch {
		case '/':
			s.skipLineComment()
			goto redo
		case '*':
			if s.skipBlockComment() {
				goto redo
			}
		default:
			s.tok, s.lit = _Div, "/"
		}

	default:
		s.scanOperator()
	}
}

// Token returns the current token type.
func (s *Scanner) Token() Token {
	return s.tok
}

// Literal returns the current token's text.
// For _Error tokens it is the offending text.
func (s *Scanner) Literal() string {
	return s.lit
}

// ErrorMsg returns the message describing the current _Error token.
func (s *Scanner) ErrorMsg() string {
	return s.msg
}

// Pos returns the current token's start position.
func (s *Scanner) Pos() Pos {
	return s.tokPos
}

// errorf turns the current token into an _Error token with text lit.
func (s *Scanner) errorf(lit, format string, args ...interface{}) {
	s.tok = _Error
	s.lit = lit
	s.msg = fmt.Sprintf(format, args...)
	if s.errh != nil {
		s.errh(s.tokPos.line, s.tokPos.col, s.msg)
	}
}

// scanIdent scans an identifier or keyword.
func (s *Scanner) scanIdent() {
	s.litBuf.Reset()
	for isLetter(s.ch) || isDigit(s.ch) {
		s.litBuf.WriteRune(s.ch)
		s.nextch()
	}

	s.lit = s.litBuf.String()
	s.tok = LookupKeyword(s.lit)
}

// scanNumber scans digits with an optional fraction. There is no exponent
// form and no sign; a leading '-' is a unary operator.
func (s *Scanner) scanNumber() {
	s.litBuf.Reset()
	s.scanDigits()

	if s.ch == '.' {
		s.litBuf.WriteRune(s.ch)
		s.nextch()
		s.scanDigits()
	}

	s.lit = s.litBuf.String()
	s.tok = _Number
}

func (s *Scanner) scanDigits() {
	for isDigit(s.ch) {
		s.litBuf.WriteRune(s.ch)
		s.nextch()
	}
}

// scanString scans a quoted string. The content is taken literally;
// there are no escape sequences.
func (s *Scanner) scanString() {
	s.nextch() // skip opening "
	s.litBuf.Reset()

	for s.ch != '"' {
		if s.ch < 0 {
			s.errorf(`"`+s.litBuf.String(), "string not terminated")
			return
		}
		s.litBuf.WriteRune(s.ch)
		s.nextch()
	}
	s.nextch() // skip closing "

	s.lit = s.litBuf.String()
	s.tok = _String
}

// scanOperator scans a punctuation or operator token.
func (s *Scanner) scanOperator() {
	ch := s.ch
	s.nextch()

	switch ch {
	case '+':
		s.tok = _Add
	case '-':
		if s.ch == '>' {
			s.nextch()
			s.tok, s.lit = _Arrow, "->"
			return
		}
		s.tok = _Sub
	case '*':
		s.tok = _Mul
	case '(':
		s.tok = _Lparen
	case ')':
		s.tok = _Rparen
	case '[':
		s.tok = _Lbrack
	case ']':
		s.tok = _Rbrack
	case '{':
		s.tok = _Lbrace
	case '}':
		s.tok = _Rbrace
	case ',':
		s.tok = _Comma
	case ';':
		s.tok = _Semi
	default:
		s.errorf(string(ch), "unexpected character %q", ch)
		return
	}
	s.lit = string(ch)
}

// skipLineComment skips a // comment up to, not including, the newline.
func (s *Scanner) skipLineComment() {
	// first / consumed, s.ch is the second one
	for s.ch != '\n' && s.ch >= 0 {
		s.nextch()
	}
}

// skipBlockComment skips a /* */ comment, which may span lines.
// It reports false and sets an _Error token if the comment is not closed.
func (s *Scanner) skipBlockComment() bool {
	s.nextch() // skip *
	for s.ch >= 0 {
		ch := s.ch
		s.nextch()
		if ch == '*' && s.ch == '/' {
			s.nextch()
			return true
		}
	}
	s.errorf("/*", "comment not terminated")
	return false
}
