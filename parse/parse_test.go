// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package parse

import (
	"strings"
	"testing"

	"github.com/wdamron/rook/lexer"
)

var (
	kindA     = lexer.NewOperator("a")
	kindB     = lexer.NewOperator("b")
	kindC     = lexer.NewOperator("c")
	comma     = lexer.NewOperator(",")
	lparen    = lexer.NewOperator("(")
	rparen    = lexer.NewOperator(")")
	letter    = lexer.NewPattern("letter", `[d-z]`, false)
	spaceKind = lexer.NewPattern("space", `\s+`, true)
)

func stream(input string) lexer.TokenStream {
	return lexer.New(input, kindA, kindB, kindC, comma, lparen, rparen, letter, spaceKind).Stream()
}

func literalOf(tok lexer.Token) string { return tok.Literal }

func expectFailure[T any](t *testing.T, r Reply[T], expected string) {
	t.Helper()
	if r.Success() {
		t.Fatalf("expected failure %q, parsed %v", expected, r.Value())
	}
	if s := r.String(); s != expected {
		t.Fatalf("reply: %s, expected %s", s, expected)
	}
}

func TestErrorListString(t *testing.T) {
	cases := []struct {
		errors ErrorList
		want   string
	}{
		{nil, "Parse error."},
		{ErrorList{Unknown()}, "Parse error."},
		{ErrorList{Expected("statement")}, "statement expected"},
		{ErrorList{Expected("A")}.Merge(ErrorList{Expected("B"), Expected("A")}), "A or B expected"},
		{ErrorList{Unknown(), Expected("A")}, "A expected"},
		{ErrorList{Backtrack(lexer.Position{Line: 1, Column: 3}, ErrorList{Expected("x")})}, "[(1, 3): x expected]"},
		{ErrorList{Expected("y"), Backtrack(lexer.Position{Line: 2, Column: 1}, nil)}, "y expected [(2, 1): Parse error.]"},
	}
	for _, c := range cases {
		if s := c.errors.String(); s != c.want {
			t.Fatalf("errors: %s, expected %s", s, c.want)
		}
	}
}

func TestUnitConsumesNothing(t *testing.T) {
	r := Unit(7)(stream("a"))
	if !r.Success() || r.Value() != 7 || r.Rest().Offset() != 0 {
		t.Fatalf("reply: %s", r)
	}
}

func TestValuePanicsOnFailure(t *testing.T) {
	r := Token(kindA)(stream("!"))
	defer func() {
		msg, _ := recover().(string)
		if msg != "(1, 1): Parse error." {
			t.Fatalf("panic: %q", msg)
		}
	}()
	r.Value()
}

func TestTokenOnUnrecognizedInput(t *testing.T) {
	expectFailure(t, Token(kindA)(stream("!a")), "(1, 1): Parse error.")
	expectFailure(t, Token(kindA)(stream("b")), "(1, 1): a expected")
	expectFailure(t, EndOfInput()(stream("a")), "(1, 1): end of input expected")
}

func TestBindDoesNotContinueAfterFailure(t *testing.T) {
	called := false
	p := Bind(Token(kindA), func(lexer.Token) Parser[string] {
		called = true
		return Unit("x")
	})
	expectFailure(t, p(stream("b")), "(1, 1): a expected")
	if called {
		t.Fatalf("expected continuation not to be called")
	}
	r := p(stream("a"))
	if !called || r.Value() != "x" || !r.Rest().AtEnd() {
		t.Fatalf("reply: %s", r)
	}
}

func TestChoiceMergesErrorsWithoutConsumption(t *testing.T) {
	p := Choice(Token(kindA), Token(kindB))
	expectFailure(t, p(stream("c")), "(1, 1): a or b expected")
	if r := p(stream("b")); !r.Success() || r.Value().Literal != "b" {
		t.Fatalf("reply: %s", r)
	}
}

func TestChoiceCommitsAfterConsumption(t *testing.T) {
	attempted := false
	p := Choice(
		Then(Token(kindA), Token(kindB)),
		func(tokens lexer.TokenStream) Reply[lexer.Token] {
			attempted = true
			return Then(Token(kindA), Token(kindC))(tokens)
		},
	)
	expectFailure(t, p(stream("ac")), "(1, 2): b expected")
	if attempted {
		t.Fatalf("expected later alternatives not to be attempted after consumption")
	}
}

func TestAttemptBacktracks(t *testing.T) {
	ab := Then(Token(kindA), Token(kindB))
	r := Attempt(ab)(stream("ac"))
	if r.Success() || r.Rest().Offset() != 0 {
		t.Fatalf("reply: %s", r)
	}
	expectFailure(t, r, "(1, 1): [(1, 2): b expected]")

	p := Choice(Attempt(ab), Then(Token(kindA), Token(kindC)))
	if r := p(stream("ac")); !r.Success() || r.Value().Literal != "c" {
		t.Fatalf("reply: %s", r)
	}
}

func TestExpect(t *testing.T) {
	x := Expect(Token(letter), func(tok lexer.Token) bool { return tok.Literal == "x" }, "x")
	r := x(stream("y"))
	expectFailure(t, r, "(1, 1): x expected")
	if r.Rest().Offset() != 0 {
		t.Fatalf("expected rejection without consuming input")
	}
	if r := Choice(x, Literal(letter, "y"))(stream("y")); !r.Success() {
		t.Fatalf("reply: %s", r)
	}
}

func TestOnError(t *testing.T) {
	p := OnError(Then(Token(kindA), Token(kindB)), "a then b")
	expectFailure(t, p(stream("ac")), "(1, 2): a then b expected")
	expectFailure(t, p(stream("c")), "(1, 1): a then b expected")
}

func TestOptional(t *testing.T) {
	p := Optional(Map(Token(kindA), literalOf), "none")
	if r := p(stream("b")); r.Value() != "none" || r.Rest().Offset() != 0 {
		t.Fatalf("reply: %s", r)
	}
	if r := p(stream("a")); r.Value() != "a" || r.Rest().Offset() != 1 {
		t.Fatalf("reply: %s", r)
	}
	q := Optional(Then(Token(kindA), Map(Token(kindB), literalOf)), "none")
	expectFailure(t, q(stream("ac")), "(1, 2): b expected")
}

func TestZeroOrMore(t *testing.T) {
	p := ZeroOrMore(Map(Token(kindA), literalOf))
	r := p(stream("aaab"))
	if got := strings.Join(r.Value(), ""); got != "aaa" || r.Rest().Current().Literal != "b" {
		t.Fatalf("reply: %s, items: %q", r, got)
	}
	if r := p(stream("b")); len(r.Value()) != 0 || r.Rest().Offset() != 0 {
		t.Fatalf("reply: %s", r)
	}

	pairs := ZeroOrMore(Then(Token(kindA), Token(kindB)))
	expectFailure(t, pairs(stream("abac")), "(1, 4): b expected")
}

func TestRepetitionStopsWithoutConsumption(t *testing.T) {
	r := ZeroOrMore(Unit(1))(stream("a"))
	if len(r.Value()) != 1 {
		t.Fatalf("expected a single match, found %d", len(r.Value()))
	}
	r = OneOrMore(Unit(1))(stream("a"))
	if len(r.Value()) != 1 {
		t.Fatalf("expected a single match, found %d", len(r.Value()))
	}
}

func TestOneOrMore(t *testing.T) {
	p := OneOrMore(Map(Token(kindA), literalOf))
	expectFailure(t, p(stream("b")), "(1, 1): a expected")
	if r := p(stream("aa")); len(r.Value()) != 2 || !r.Rest().AtEnd() {
		t.Fatalf("reply: %s", r)
	}
}

func TestSeparated(t *testing.T) {
	p := ZeroOrMoreSeparated(Map(Token(letter), literalOf), Token(comma))
	r := p(stream("x, y ,z"))
	if got := strings.Join(r.Value(), ""); got != "xyz" || !r.Rest().AtEnd() {
		t.Fatalf("reply: %s, items: %q", r, got)
	}
	if r := p(stream(")")); !r.Success() || len(r.Value()) != 0 {
		t.Fatalf("reply: %s", r)
	}
	expectFailure(t, p(stream("x,")), "(1, 3): letter expected")

	q := OneOrMoreSeparated(Map(Token(letter), literalOf), Token(comma))
	expectFailure(t, q(stream(")")), "(1, 1): letter expected")
}

func TestBetweenAndLazy(t *testing.T) {
	var nested Parser[int]
	nested = Choice(
		Map(Between(Token(lparen), Lazy(func() Parser[int] { return nested }), Token(rparen)), func(depth int) int { return depth + 1 }),
		Map(Token(kindA), func(lexer.Token) int { return 0 }),
	)
	r := nested(stream("((((a))))"))
	if r.Value() != 4 || !r.Rest().AtEnd() {
		t.Fatalf("reply: %s", r)
	}
	expectFailure(t, nested(stream("((a)")), "(1, 5): ) expected")
}

func TestPosition(t *testing.T) {
	r := Then(Token(kindA), Position())(stream("a  b"))
	if r.Value().String() != "(1, 4)" || r.Rest().Offset() != 1 {
		t.Fatalf("reply: %s", r)
	}
}
