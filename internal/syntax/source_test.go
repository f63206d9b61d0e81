package syntax

import (
	"strings"
	"testing"
)

func TestSourceBasic(t *testing.T) {
	src := newSource("test", strings.NewReader("qre"), nil)

	want := []struct {
		ch  rune
		col uint32
	}{{'q', 1}, {'r', 2}, {'e', 3}}

	for i, w := range want {
		if i > 0 {
			src.nextch()
		}
		if src.ch != w.ch || src.line != 1 || src.col != w.col {
			t.Errorf("step %d: got ch=%q pos=%d:%d, want ch=%q pos=1:%d",
				i, src.ch, src.line, src.col, w.ch, w.col)
		}
	}

	src.nextch()
	if src.ch != -1 {
		t.Errorf("ch = %d, want -1 (EOF)", src.ch)
	}
}

func TestSourceNewline(t *testing.T) {
	src := newSource("test", strings.NewReader("a\nb\nc"), nil)

	steps := []struct {
		ch        rune
		line, col uint32
	}{
		{'a', 1, 1},
		{'\n', 1, 2},
		{'b', 2, 1},
		{'\n', 2, 2},
		{'c', 3, 1},
	}
	for i, s := range steps {
		if i > 0 {
			src.nextch()
		}
		if src.ch != s.ch || src.line != s.line || src.col != s.col {
			t.Errorf("step %d: got ch=%q pos=%d:%d, want ch=%q pos=%d:%d",
				i, src.ch, src.line, src.col, s.ch, s.line, s.col)
		}
	}
}

func TestSourceUTF8(t *testing.T) {
	src := newSource("test", strings.NewReader("a中b"), nil)

	src.nextch()
	if src.ch != '中' || src.col != 2 {
		t.Errorf("got ch=%q col=%d, want '中' col=2", src.ch, src.col)
	}

	src.nextch()
	if src.ch != 'b' || src.col != 3 {
		t.Errorf("got ch=%q col=%d, want 'b' col=3", src.ch, src.col)
	}
}

func TestSourceEmpty(t *testing.T) {
	src := newSource("test", strings.NewReader(""), nil)
	if src.ch != -1 {
		t.Errorf("ch = %d, want -1 (EOF)", src.ch)
	}
}

func TestSourcePos(t *testing.T) {
	src := newSource("bell.qasm", strings.NewReader("ab"), nil)

	pos := src.pos()
	if pos.Line() != 1 || pos.Col() != 1 || pos.Filename() != "bell.qasm" {
		t.Errorf("pos = %v, want bell.qasm:1:1", pos)
	}

	src.nextch()
	if pos = src.pos(); pos.Line() != 1 || pos.Col() != 2 {
		t.Errorf("pos = %v, want 1:2", pos)
	}
}

func TestSourceError(t *testing.T) {
	var errMsg string
	var errLine, errCol uint32
	errh := func(line, col uint32, msg string) {
		errLine, errCol, errMsg = line, col, msg
	}

	src := newSource("test", strings.NewReader("a"), errh)
	src.error("boom")

	if errMsg != "boom" {
		t.Errorf("error message = %q, want %q", errMsg, "boom")
	}
	if errLine != 1 || errCol != 1 {
		t.Errorf("error pos = %d:%d, want 1:1", errLine, errCol)
	}

	// nil handler must not panic
	newSource("test", strings.NewReader("a"), nil).error("ignored")
}

func TestCharClasses(t *testing.T) {
	for _, r := range []rune{'a', 'z', 'A', 'Z', '_'} {
		if !isLetter(r) {
			t.Errorf("isLetter(%q) = false, want true", r)
		}
	}
	for _, r := range []rune{'0', '9', ' ', '\n', '+', '中'} {
		if isLetter(r) {
			t.Errorf("isLetter(%q) = true, want false", r)
		}
	}
	for _, r := range []rune{'0', '5', '9'} {
		if !isDigit(r) {
			t.Errorf("isDigit(%q) = false, want true", r)
		}
	}
	for _, r := range []rune{'a', '.', '-'} {
		if isDigit(r) {
			t.Errorf("isDigit(%q) = true, want false", r)
		}
	}
	for _, r := range []rune{' ', '\t', '\r'} {
		if !isWhitespace(r) {
			t.Errorf("isWhitespace(%q) = false, want true", r)
		}
	}
	if isWhitespace('\n') {
		t.Error("isWhitespace('\\n') = true, want false")
	}
}
