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

package ast

import (
	"testing"

	"github.com/wdamron/rook/types"
)

func name(id string) *Name { return &Name{Identifier: id} }

func op(symbol string, args ...Expr) *Call {
	return &Call{Callable: name(symbol), Args: args, IsOperator: true}
}

func TestExprString(t *testing.T) {
	intName := NewTypeName("int")
	cases := []struct {
		e    Expr
		want string
	}{
		{op("+", name("x"), op("*", &IntegerLiteral{Digits: "2"}, name("y"))), "(x + (2 * y))"},
		{op("!", &BooleanLiteral{Value: true}), "(!true)"},
		{&Call{Callable: name("f"), Args: []Expr{name("a"), &Null{}}}, "f(a, null)"},
		{&MethodInvocation{Instance: name("m"), Method: name("Max"), Args: []Expr{name("a"), name("b")}}, "m.Max(a, b)"},
		{&New{TypeName: name("Math")}, "new Math()"},
		{&If{Condition: name("c"), WhenTrue: name("a"), WhenFalse: name("b")}, "(if (c) a else b)"},
		{&Lambda{Params: []*Parameter{{Identifier: "x"}, {TypeName: intName, Identifier: "y"}}, Body: name("x")}, "fn (x, int y) x"},
		{&VectorLiteral{Items: []Expr{&IntegerLiteral{Digits: "1"}, &StringLiteral{Quoted: `"a"`, Value: "a"}}}, `[1, "a"]`},
		{&Block{
			Variables: []*VariableDeclaration{
				{TypeName: intName, Identifier: "x", Value: &IntegerLiteral{Digits: "0"}},
				{Identifier: "y", Value: name("x")},
			},
			Body: []Expr{name("x"), name("y")},
		}, "{int x = 0; y = x; x; y}"},
		{&Block{Body: []Expr{name("x")}}, "{x}"},
	}
	for _, c := range cases {
		if s := ExprString(c.e); s != c.want {
			t.Fatalf("expr: %s, expected %s", s, c.want)
		}
	}
}

func TestProgramString(t *testing.T) {
	intName := NewTypeName("int")
	square := &Function{
		ReturnType: intName,
		Name:       "Square",
		Params:     []*Parameter{{TypeName: intName, Identifier: "x"}},
		Body:       op("*", name("x"), name("x")),
	}
	zero := &Function{ReturnType: intName, Name: "Zero", Body: &IntegerLiteral{Digits: "0"}}
	p := &Program{
		Classes:   []*Class{{Name: "Math", Methods: []*Function{zero, square}}},
		Functions: []*Function{{ReturnType: NewTypeName("Vector", intName), Name: "Main", Body: &VectorLiteral{Items: []Expr{name("x")}}}},
	}
	if s := String(p); s != "class Math {int Zero() 0; int Square(int x) (x * x)} int[] Main() [x]" {
		t.Fatalf("program: %s", s)
	}
	if s := square.DeclaredType().String(); s != "Func<int, int>" {
		t.Fatalf("type: %s", s)
	}
}

func TestTypeNameDataType(t *testing.T) {
	cases := []struct {
		n    *TypeName
		str  string
		want string
	}{
		{NewTypeName("int"), "int", "int"},
		{NewTypeName("bool"), "bool", "bool"},
		{NewTypeName("Enumerable", NewTypeName("string")), "string*", "Enumerable<string>"},
		{NewTypeName("Nullable", NewTypeName("Vector", NewTypeName("int"))), "int[]?", "Nullable<Vector<int>>"},
		{NewTypeName("Math"), "Math", "Math"},
		{NewTypeName("Pair", NewTypeName("int"), NewTypeName("bool")), "Pair<int, bool>", "Pair<int, bool>"},
	}
	for _, c := range cases {
		if s := c.n.String(); s != c.str {
			t.Fatalf("type name: %s, expected %s", s, c.str)
		}
		if s := c.n.DataType().String(); s != c.want {
			t.Fatalf("type: %s, expected %s", s, c.want)
		}
	}
	if (*TypeName)(nil).DataType() != types.DataType(types.Unknown) {
		t.Fatalf("expected missing type name to denote the unknown type")
	}
}

func TestWithTypeCopies(t *testing.T) {
	n := name("x")
	typed := n.WithType(types.Integer)
	if !types.IsUnknown(n.Type()) {
		t.Fatalf("expected original node to remain untyped")
	}
	if typed.Type() != types.DataType(types.Integer) || typed.Identifier != "x" {
		t.Fatalf("unexpected typed node: %s : %s", ExprString(typed), typed.Type())
	}
}

func TestWalkExpr(t *testing.T) {
	e := &If{
		Condition: op("<", name("a"), &IntegerLiteral{Digits: "1"}),
		WhenTrue:  &Lambda{Body: name("b")},
		WhenFalse: &MethodInvocation{Instance: name("c"), Method: name("M"), Args: []Expr{name("d")}},
	}
	var names []string
	WalkExpr(e, func(e Expr) {
		if n, ok := e.(*Name); ok {
			names = append(names, n.Identifier)
		}
	})
	want := []string{"<", "a", "b", "c", "d"}
	if len(names) != len(want) {
		t.Fatalf("names: %q", names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("names: %q", names)
		}
	}
}
