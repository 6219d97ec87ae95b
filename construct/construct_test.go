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

package construct_test

import (
	"testing"

	"github.com/wdamron/rook"
	"github.com/wdamron/rook/ast"
	. "github.com/wdamron/rook/construct"
	"github.com/wdamron/rook/types"
)

func TestConstructTypes(t *testing.T) {
	cases := []struct {
		t    types.DataType
		want string
	}{
		{TVar(3), "3"},
		{TFunc0(types.Integer), "Func<int>"},
		{TFunc2(types.Integer, TVar(0), types.Boolean), "Func<int, 0, bool>"},
		{TNamed("Pair", TEnumerable(types.Integer), TNullable(TVector(types.String))), "Pair<Enumerable<int>, Nullable<Vector<string>>>"},
	}
	for _, c := range cases {
		if s := types.TypeString(c.t); s != c.want {
			t.Fatalf("type: %s, expected %s", s, c.want)
		}
	}
	if TNonGenericVar(1).IsGeneric() || !TVar(1).IsGeneric() {
		t.Fatalf("unexpected genericity")
	}
}

func TestConstructProgram(t *testing.T) {
	intName := TypeName("int")
	square := Function(intName, "Square", []*ast.Parameter{Param(intName, "x")}, Binary("*", Name("x"), Name("x")))
	main := Function(intName, "Main", nil, Block(
		[]*ast.VariableDeclaration{
			ImplicitVar("m", New("Math")),
			Var(intName, "n", Int("2")),
		},
		Method(Name("m"), "Square", Call(Lambda([]*ast.Parameter{ImplicitParam("y")}, Name("y")), Name("n"))),
	))
	p := Program([]*ast.Class{Class("Math", square)}, main)

	want := "class Math {int Square(int x) (x * x)} int Main() {m = new Math(); int n = 2; m.Square(fn (y) y(n))}"
	if s := ast.String(p); s != want {
		t.Fatalf("program: %s", s)
	}

	tc := rook.NewTypeChecker()
	typed := tc.TypeCheck(p)
	if tc.HasErrors() {
		t.Fatalf("errors: %v", tc.Errors())
	}
	if s := types.TypeString(typed.Functions[0].Body.Type()); s != "int" {
		t.Fatalf("type: %s", s)
	}
}

func TestConstructLiterals(t *testing.T) {
	e := If(Unary("!", Bool(false)), Vector(Str("a")), Vector(Null()))
	if s := ast.ExprString(e); s != `(if ((!false)) ["a"] else [null])` {
		t.Fatalf("expr: %s", s)
	}
	ty, err := rook.TypeOf(`if (!false) ["a"] else [null ?? "b"]`)
	if err != nil || types.TypeString(ty) != "Vector<string>" {
		t.Fatalf("type: %v %v", ty, err)
	}
}
