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

// WalkExpr calls f for e and each of its sub-expressions, parents before children.
func WalkExpr(e Expr, f func(Expr)) {
	switch e := e.(type) {
	case *Name, *BooleanLiteral, *IntegerLiteral, *StringLiteral, *Null:
		f(e)

	case *Block:
		f(e)
		for _, v := range e.Variables {
			WalkExpr(v.Value, f)
		}
		for _, inner := range e.Body {
			WalkExpr(inner, f)
		}

	case *Lambda:
		f(e)
		WalkExpr(e.Body, f)

	case *If:
		f(e)
		WalkExpr(e.Condition, f)
		WalkExpr(e.WhenTrue, f)
		WalkExpr(e.WhenFalse, f)

	case *Call:
		f(e)
		WalkExpr(e.Callable, f)
		for _, arg := range e.Args {
			WalkExpr(arg, f)
		}

	case *MethodInvocation:
		f(e)
		WalkExpr(e.Instance, f)
		for _, arg := range e.Args {
			WalkExpr(arg, f)
		}

	case *New:
		f(e)
		WalkExpr(e.TypeName, f)

	case *VectorLiteral:
		f(e)
		for _, item := range e.Items {
			WalkExpr(item, f)
		}

	case nil:

	default:
		panic("unknown expression type: " + e.ExprName())
	}
}

// WalkProgram calls WalkExpr for the body of every function and method in p.
func WalkProgram(p *Program, f func(Expr)) {
	for _, c := range p.Classes {
		for _, m := range c.Methods {
			WalkExpr(m.Body, f)
		}
	}
	for _, fn := range p.Functions {
		WalkExpr(fn.Body, f)
	}
}
