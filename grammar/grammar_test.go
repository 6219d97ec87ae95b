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

package grammar

import (
	"testing"

	"github.com/wdamron/rook/ast"
	"github.com/wdamron/rook/lexer"
	"github.com/wdamron/rook/parse"
)

func kindNames(tokens []lexer.Token) []string {
	names := make([]string, len(tokens))
	for i, tok := range tokens {
		names[i] = tok.Kind.Name()
	}
	return names
}

func literals(tokens []lexer.Token) []string {
	lits := make([]string, len(tokens))
	for i, tok := range tokens {
		lits[i] = tok.Literal
	}
	return lits
}

func sameStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestLexKinds(t *testing.T) {
	tokens := Lex("int foo() 1").Tokens()
	want := []string{"int", "identifier", "(", ")", "integer", "end of input"}
	if names := kindNames(tokens); !sameStrings(names, want) {
		t.Fatalf("kinds: %v", names)
	}

	tokens = Lex("newer new // comment\n\"a\\\"b\" 0 12").Tokens()
	want = []string{"identifier", "new", "string literal", "integer", "integer", "end of input"}
	if names := kindNames(tokens); !sameStrings(names, want) {
		t.Fatalf("kinds: %v", names)
	}
	if tokens[2].Literal != `"a\"b"` {
		t.Fatalf("string literal: %s", tokens[2].Literal)
	}
}

func TestLexOperators(t *testing.T) {
	tokens := Lex("<=>=<>!====*/+-&&||!{}[][,]()???:").Tokens()
	want := []string{
		"<=", ">=", "<", ">", "!=", "==", "=", "*", "/", "+", "-", "&&", "||", "!",
		"{", "}", "[]", "[", ",", "]", "(", ")", "??", "?", ":", "",
	}
	if lits := literals(tokens); !sameStrings(lits, want) {
		t.Fatalf("operators: %v", lits)
	}
	for _, tok := range tokens[:len(tokens)-1] {
		if tok.Kind.Name() != tok.Literal {
			t.Fatalf("operator kind: %s", tok)
		}
	}
}

func TestLexStatements(t *testing.T) {
	tokens := LexStatements("x = 1\ny = 2; z").Tokens()
	want := []string{
		"identifier", "=", "integer", "end of line",
		"identifier", "=", "integer", "end of line",
		"identifier", "end of input",
	}
	if names := kindNames(tokens); !sameStrings(names, want) {
		t.Fatalf("kinds: %v", names)
	}

	tokens = LexStatements("; \r\n \t ").Tokens()
	if len(tokens) != 2 || tokens[0].Kind != EndOfLine || tokens[0].Literal != "; \r\n \t " {
		t.Fatalf("end of line: %v", tokens)
	}
}

func TestParseExpressions(t *testing.T) {
	g := NewGrammar()
	cases := []struct {
		source string
		want   string
	}{
		{"1 + 2 * 3", "(1 + (2 * 3))"},
		{"1 - 2 - 3", "((1 - 2) - 3)"},
		{"a || b && c", "(a || (b && c))"},
		{"x ?? y == z", "(x ?? (y == z))"},
		{"a < b == c >= d", "((a < b) == (c >= d))"},
		{"!a && b", "((!a) && b)"},
		{"!!a", "(!(!a))"},
		{"(1)", "1"},
		{"f()", "f()"},
		{"f(1, g(x))", "f(1, g(x))"},
		{"m.Max(a, b).Min(c)", "m.Max(a, b).Min(c)"},
		{"v[0]", "Index(v, 0)"},
		{"v[1:2]", "Slice(v, 1, 2)"},
		{"if (a) 1 else 2", "(if (a) 1 else 2)"},
		{"fn (x, int y) x + y", "fn (x, int y) (x + y)"},
		{"fn () 0", "fn () 0"},
		{"{int x = 0; y = x; x; y}", "{int x = 0; y = x; x; y}"},
		{"{ x }", "{x}"},
		{"{ x == 1; }", "{(x == 1)}"},
		{"[1, 2]", "[1, 2]"},
		{"new Math()", "new Math()"},
		{"null ?? true", "(null ?? true)"},
		{"false", "false"},
	}
	for _, c := range cases {
		e, err := g.ParseExpression(c.source)
		if err != nil {
			t.Fatalf("%s: %v", c.source, err)
		}
		if s := ast.ExprString(e); s != c.want {
			t.Fatalf("expr: %s, expected %s", s, c.want)
		}
	}
}

func TestParseStringLiteral(t *testing.T) {
	e, err := NewGrammar().ParseExpression(`"a\tbA"`)
	if err != nil {
		t.Fatal(err)
	}
	lit, ok := e.(*ast.StringLiteral)
	if !ok || lit.Value != "a\tbA" || lit.Quoted != `"a\tbA"` {
		t.Fatalf("string literal: %#v", e)
	}
}

func TestParsePositions(t *testing.T) {
	e, err := NewGrammar().ParseExpression("m.Max(1 + 2)")
	if err != nil {
		t.Fatal(err)
	}
	m := e.(*ast.MethodInvocation)
	if m.Position.String() != "(1, 2)" || m.Instance.Pos().String() != "(1, 1)" || m.Method.Position.String() != "(1, 3)" {
		t.Fatalf("method positions: %s %s %s", m.Position, m.Instance.Pos(), m.Method.Position)
	}
	sum := m.Args[0].(*ast.Call)
	if !sum.IsOperator || sum.Position.String() != "(1, 9)" {
		t.Fatalf("operator position: %s", sum.Position)
	}
}

func TestParseTypeNames(t *testing.T) {
	g := NewGrammar()
	cases := []struct {
		source string
		str    string
		want   string
	}{
		{"int", "int", "int"},
		{"Math", "Math", "Math"},
		{"int*", "int*", "Enumerable<int>"},
		{"bool[]", "bool[]", "Vector<bool>"},
		{"string?", "string?", "Nullable<string>"},
		{"int*[]?", "int*[]?", "Nullable<Vector<Enumerable<int>>>"},
	}
	for _, c := range cases {
		tn, err := ParseAll(g.TypeName(), c.source)
		if err != nil {
			t.Fatalf("%s: %v", c.source, err)
		}
		if s := tn.String(); s != c.str {
			t.Fatalf("type name: %s, expected %s", s, c.str)
		}
		if s := tn.DataType().String(); s != c.want {
			t.Fatalf("type: %s, expected %s", s, c.want)
		}
	}
}

func TestParseProgram(t *testing.T) {
	source := `
class Math {
	int Square(int x) x * x;
	int Zero() 0
}
int Main() { Math m = new Math(); m.Square(3) }
bool Even(int n) if (n == 0) true else !Even(n - 1)
`
	p, err := NewGrammar().ParseProgram(source)
	if err != nil {
		t.Fatal(err)
	}
	want := "class Math {int Square(int x) (x * x); int Zero() 0}" +
		" int Main() {Math m = new Math(); m.Square(3)}" +
		" bool Even(int n) (if ((n == 0)) true else (!Even((n - 1))))"
	if s := ast.String(p); s != want {
		t.Fatalf("program: %s", s)
	}
	if p.Classes[0].Position.String() != "(2, 1)" || p.Functions[0].Position.String() != "(6, 1)" {
		t.Fatalf("positions: %s %s", p.Classes[0].Position, p.Functions[0].Position)
	}

	empty, err := NewGrammar().ParseProgram("  ")
	if err != nil || len(empty.Classes) != 0 || len(empty.Functions) != 0 {
		t.Fatalf("empty program: %v", err)
	}
}

func expectFailure[T any](t *testing.T, p parse.Parser[T], source, want string) {
	t.Helper()
	r := Run(p, source)
	if r.Success() {
		t.Fatalf("%s: expected failure", source)
	}
	if s := r.String(); s != want {
		t.Fatalf("%s: %s, expected %s", source, s, want)
	}
}

func TestParseErrors(t *testing.T) {
	g := NewGrammar()
	expectFailure(t, g.Function(), "", "(1, 1): type name expected")
	expectFailure(t, g.Function(), "int foo", "(1, 8): ( expected")
	expectFailure(t, g.Function(), "int foo(", "(1, 9): ) expected")
	expectFailure(t, g.Function(), "int foo(x)", "(1, 10): identifier expected")
	expectFailure(t, g.Function(), "int foo(int x, )", "(1, 16): type name expected")

	expectFailure(t, g.Expression(), "instance.", "(1, 10): identifier expected")
	expectFailure(t, g.Expression(), "instance.Method", "(1, 16): ( expected")
	expectFailure(t, g.Expression(), "instance.Method(", "(1, 17): ) expected")
	expectFailure(t, g.Expression(), "(instance.Method)()", "(1, 17): ( expected")
	expectFailure(t, g.Expression(), "(1(", "(1, 3): ) expected")
	expectFailure(t, g.Expression(), "if (a) 1", "(1, 9): else expected")

	expectFailure(t, g.Class(), "class Math { int }", "(1, 18): identifier expected")

	_, err := g.ParseProgram("int Main() $1;")
	if err == nil || err.Error() != "(1, 12): Parse error." {
		t.Fatalf("error: %v", err)
	}
}

func TestParseAllRequiresEndOfInput(t *testing.T) {
	_, err := NewGrammar().ParseExpression("1 2")
	if err == nil || err.Error() != "(1, 3): end of input expected" {
		t.Fatalf("error: %v", err)
	}
	if err.(*Error).AtEndOfInput {
		t.Fatalf("unexpected end of input")
	}

	_, err = NewGrammar().ParseExpression("f(1,")
	if err == nil || !err.(*Error).AtEndOfInput {
		t.Fatalf("expected failure at end of input: %v", err)
	}
}

func TestMaxNesting(t *testing.T) {
	g := NewGrammar(MaxNesting(3))
	if _, err := g.ParseExpression("((1))"); err != nil {
		t.Fatal(err)
	}
	_, err := g.ParseExpression("(((1)))")
	if err == nil || err.Error() != "(1, 4): expression within nesting limit expected" {
		t.Fatalf("error: %v", err)
	}
	if _, err := g.ParseExpression("f(g(1))"); err != nil {
		t.Fatal(err)
	}
}
