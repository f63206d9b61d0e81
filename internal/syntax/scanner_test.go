package syntax

import (
	"strings"
	"testing"
)

func TestScanTokens(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		tokens []Token
		lits   []string
	}{
		// Identifiers
		{"ident", "q", []Token{_Name}, []string{"q"}},
		{"ident_underscore", "_anc", []Token{_Name}, []string{"_anc"}},
		{"ident_mixed", "q12_b", []Token{_Name}, []string{"q12_b"}},
		{"ident_builtin_U", "U", []Token{_Name}, []string{"U"}},
		{"ident_builtin_CX", "CX", []Token{_Name}, []string{"CX"}},
		{"ident_const", "pi", []Token{_Name}, []string{"pi"}},

		// Numbers
		{"int", "123", []Token{_Number}, []string{"123"}},
		{"zero", "0", []Token{_Number}, []string{"0"}},
		{"float", "3.14", []Token{_Number}, []string{"3.14"}},
		{"float_no_frac", "3.", []Token{_Number}, []string{"3."}},
		{"version", "2.0", []Token{_Number}, []string{"2.0"}},
		{"no_exponent", "1e5", []Token{_Number, _Name}, []string{"1", "e5"}},
		{"no_sign", "-1", []Token{_Sub, _Number}, []string{"-", "1"}},

		// Strings
		{"string", `"qelib1.inc"`, []Token{_String}, []string{"qelib1.inc"}},
		{"string_empty", `""`, []Token{_String}, []string{""}},
		{"string_literal_backslash", `"a\nb"`, []Token{_String}, []string{`a\nb`}},

		// Operators and delimiters
		{"add", "+", []Token{_Add}, []string{"+"}},
		{"sub", "-", []Token{_Sub}, []string{"-"}},
		{"mul", "*", []Token{_Mul}, []string{"*"}},
		{"div", "/", []Token{_Div}, []string{"/"}},
		{"arrow", "->", []Token{_Arrow}, []string{"->"}},
		{"minus_gt_spaced", "- >", []Token{_Sub, _Error}, []string{"-", ">"}},
		{"delims", "[](){};,",
			[]Token{_Lbrack, _Rbrack, _Lparen, _Rparen, _Lbrace, _Rbrace, _Semi, _Comma},
			[]string{"[", "]", "(", ")", "{", "}", ";", ","}},

		// Keywords
		{"kw_header", "OPENQASM", []Token{_OpenQASM}, []string{"OPENQASM"}},
		{"kw_include", "include", []Token{_Include}, nil},
		{"kw_qreg", "qreg", []Token{_Qreg}, nil},
		{"kw_creg", "creg", []Token{_Creg}, nil},
		{"kw_measure", "measure", []Token{_Measure}, nil},
		{"kw_barrier", "barrier", []Token{_Barrier}, nil},
		{"kw_reset", "reset", []Token{_Reset}, nil},
		{"kw_gate", "gate", []Token{_Gate}, nil},
		{"kw_opaque", "opaque", []Token{_Opaque}, nil},
		{"kw_if", "if", []Token{_If}, nil},
		{"kw_funcs", "sin cos tan exp ln", []Token{_Sin, _Cos, _Tan, _Exp, _Ln}, nil},
		{"kw_case_sensitive", "QREG Gate", []Token{_Name, _Name}, nil},

		// Compound
		{"register_ref", "q[0]", []Token{_Name, _Lbrack, _Number, _Rbrack}, []string{"q", "[", "0", "]"}},
		{"measure", "measure q -> c;",
			[]Token{_Measure, _Name, _Arrow, _Name, _Semi},
			[]string{"measure", "q", "->", "c", ";"}},
		{"params", "U(pi/2,0,-theta)",
			[]Token{_Name, _Lparen, _Name, _Div, _Number, _Comma, _Number, _Comma, _Sub, _Name, _Rparen},
			nil},

		// Comments and whitespace
		{"line_comment", "a // comment\nb", []Token{_Name, _Name}, []string{"a", "b"}},
		{"line_comment_eof", "a // comment", []Token{_Name}, []string{"a"}},
		{"block_comment", "a /* x\ny */ b", []Token{_Name, _Name}, []string{"a", "b"}},
		{"block_comment_stars", "a /** x **/ b", []Token{_Name, _Name}, []string{"a", "b"}},
		{"div_not_comment", "a / b", []Token{_Name, _Div, _Name}, nil},
		{"whitespace", " \t\r\n a \t\r\n ", []Token{_Name}, []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScanner("test", strings.NewReader(tt.src), nil)
			for i, wantTok := range tt.tokens {
				s.Next()
				if s.Token() != wantTok {
					t.Errorf("token %d: got %v, want %v", i, s.Token(), wantTok)
				}
				if tt.lits != nil && s.Literal() != tt.lits[i] {
					t.Errorf("literal %d: got %q, want %q", i, s.Literal(), tt.lits[i])
				}
			}
			s.Next()
			if !s.Token().IsEOF() {
				t.Errorf("expected EOF, got %v %q", s.Token(), s.Literal())
			}
		})
	}
}

func TestScanEOFIsSticky(t *testing.T) {
	s := NewScanner("test", strings.NewReader("q"), nil)
	s.Next()
	for i := 0; i < 3; i++ {
		s.Next()
		if !s.Token().IsEOF() {
			t.Fatalf("call %d after end: got %v, want EOF", i, s.Token())
		}
	}
}

func TestPosition(t *testing.T) {
	src := `OPENQASM 2.0;
/* two
   lines */
qreg q[2];
  CX q[0],q[1]; // trailing
measure q -> c;`

	expected := []struct {
		tok  Token
		line uint32
		col  uint32
	}{
		{_OpenQASM, 1, 1},
		{_Number, 1, 10},
		{_Semi, 1, 13},
		{_Qreg, 4, 1},
		{_Name, 4, 6},
		{_Lbrack, 4, 7},
		{_Number, 4, 8},
		{_Rbrack, 4, 9},
		{_Semi, 4, 10},
		{_Name, 5, 3},   // CX
		{_Name, 5, 6},   // q
		{_Lbrack, 5, 7}, // [
		{_Number, 5, 8},
		{_Rbrack, 5, 9},
		{_Comma, 5, 10},
		{_Name, 5, 11},
		{_Lbrack, 5, 12},
		{_Number, 5, 13},
		{_Rbrack, 5, 14},
		{_Semi, 5, 15},
		{_Measure, 6, 1},
		{_Name, 6, 9},
		{_Arrow, 6, 11},
		{_Name, 6, 14},
		{_Semi, 6, 15},
		{_EOF, 6, 16},
	}

	s := NewScanner("test.qasm", strings.NewReader(src), nil)
	for i, exp := range expected {
		s.Next()
		pos := s.Pos()
		if s.Token() != exp.tok {
			t.Errorf("token %d: got %v, want %v", i, s.Token(), exp.tok)
		}
		if pos.Line() != exp.line || pos.Col() != exp.col {
			t.Errorf("token %d (%v): pos = %d:%d, want %d:%d",
				i, s.Token(), pos.Line(), pos.Col(), exp.line, exp.col)
		}
	}
}

func TestScanErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr string
		wantLit string
	}{
		{"unterminated_string", `"qelib1.inc`, "string not terminated", `"qelib1.inc`},
		{"unterminated_comment", "/* open", "comment not terminated", "/*"},
		{"bad_char_at", "@", "unexpected character", "@"},
		{"bad_char_hash", "#", "unexpected character", "#"},
		{"bad_char_eq", "=", "unexpected character", "="},
		{"bad_char_gt", ">", "unexpected character", ">"},
		{"bad_char_dot", ".5", "unexpected character", "."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var errMsg string
			errh := func(line, col uint32, msg string) {
				if errMsg == "" {
					errMsg = msg
				}
			}
			s := NewScanner("test", strings.NewReader(tt.src), errh)
			var sawError bool
			for {
				s.Next()
				if s.Token().IsError() && !sawError {
					sawError = true
					if s.Literal() != tt.wantLit {
						t.Errorf("error literal = %q, want %q", s.Literal(), tt.wantLit)
					}
					if !strings.Contains(s.ErrorMsg(), tt.wantErr) {
						t.Errorf("ErrorMsg() = %q, want it to contain %q", s.ErrorMsg(), tt.wantErr)
					}
				}
				if s.Token().IsEOF() {
					break
				}
			}
			if !sawError {
				t.Errorf("no ERROR token for %q", tt.src)
			}
			if !strings.Contains(errMsg, tt.wantErr) {
				t.Errorf("handler got %q, want it to contain %q", errMsg, tt.wantErr)
			}
		})
	}
}

func TestCompleteProgram(t *testing.T) {
	src := `OPENQASM 2.0;
include "qelib1.inc";
qreg q[3];
creg c[3];
gate majority(theta) a, b, c {
  CX c, b;
  U(theta, 0, pi/2) a;
}
majority(0.5) q[0], q[1], q[2];
barrier q;
measure q -> c;
`

	s := NewScanner("test.qasm", strings.NewReader(src), nil)
	count := 0
	for {
		s.Next()
		count++
		if s.Token().IsError() {
			t.Fatalf("unexpected error token %q at %s: %s", s.Literal(), s.Pos(), s.ErrorMsg())
		}
		if s.Token().IsEOF() {
			break
		}
		if count > 1000 {
			t.Fatal("too many tokens, possible infinite loop")
		}
	}
	if count < 60 {
		t.Errorf("expected at least 60 tokens, got %d", count)
	}
}

func FuzzScanner(f *testing.F) {
	seeds := []string{
		"OPENQASM 2.0;",
		`include "qelib1.inc";`,
		"qreg q[5]; creg c[5];",
		"U(pi/2, -0.5*theta, ln(2)) q[0];",
		"gate g(a) x { U(a,0,0) x; }",
		"measure q -> c;",
		"/* unterminated",
		"// comment\nCX a,b;",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, src string) {
		s := NewScanner("fuzz", strings.NewReader(src), nil)
		for i := 0; i < 100000; i++ {
			s.Next()
			if s.Token().IsEOF() {
				return
			}
		}
		t.Fatalf("scanner did not reach EOF for %q", src)
	})
}
