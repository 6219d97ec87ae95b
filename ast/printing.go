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
	"strings"
)

// ExprString returns a string representation of an expression.
//
// Operator calls are fully parenthesized: `((1 + 2) * x)`.
func ExprString(e Expr) string {
	var sb strings.Builder
	exprString(&sb, e)
	return sb.String()
}

// String returns a string representation of any syntax tree node.
func String(n Node) string {
	var sb strings.Builder
	nodeString(&sb, n)
	return sb.String()
}

func nodeString(sb *strings.Builder, n Node) {
	switch n := n.(type) {
	case *Program:
		for i, c := range n.Classes {
			if i > 0 {
				sb.WriteByte(' ')
			}
			nodeString(sb, c)
		}
		for i, f := range n.Functions {
			if i > 0 || len(n.Classes) > 0 {
				sb.WriteByte(' ')
			}
			nodeString(sb, f)
		}

	case *Class:
		sb.WriteString("class ")
		sb.WriteString(n.Name)
		sb.WriteString(" {")
		for i, m := range n.Methods {
			if i > 0 {
				sb.WriteString("; ")
			}
			nodeString(sb, m)
		}
		sb.WriteByte('}')

	case *Function:
		sb.WriteString(n.ReturnType.String())
		sb.WriteByte(' ')
		sb.WriteString(n.Name)
		paramsString(sb, n.Params)
		sb.WriteByte(' ')
		exprString(sb, n.Body)

	case *Parameter:
		if n.TypeName != nil {
			sb.WriteString(n.TypeName.String())
			sb.WriteByte(' ')
		}
		sb.WriteString(n.Identifier)

	case *VariableDeclaration:
		if n.TypeName != nil {
			sb.WriteString(n.TypeName.String())
			sb.WriteByte(' ')
		}
		sb.WriteString(n.Identifier)
		sb.WriteString(" = ")
		exprString(sb, n.Value)
		sb.WriteByte(';')

	case Expr:
		exprString(sb, n)

	default:
		panic("unknown syntax tree node")
	}
}

func paramsString(sb *strings.Builder, params []*Parameter) {
	sb.WriteByte('(')
	for i, p := range params {
		if i > 0 {
			sb.WriteString(", ")
		}
		nodeString(sb, p)
	}
	sb.WriteByte(')')
}

func argsString(sb *strings.Builder, args []Expr) {
	sb.WriteByte('(')
	for i, arg := range args {
		if i > 0 {
			sb.WriteString(", ")
		}
		exprString(sb, arg)
	}
	sb.WriteByte(')')
}

func exprString(sb *strings.Builder, e Expr) {
	switch e := e.(type) {
	case *Name:
		sb.WriteString(e.Identifier)

	case *Block:
		sb.WriteByte('{')
		for i, v := range e.Variables {
			if i > 0 {
				sb.WriteByte(' ')
			}
			nodeString(sb, v)
		}
		for i, inner := range e.Body {
			if i > 0 {
				sb.WriteString("; ")
			} else if len(e.Variables) > 0 {
				sb.WriteByte(' ')
			}
			exprString(sb, inner)
		}
		sb.WriteByte('}')

	case *Lambda:
		sb.WriteString("fn ")
		paramsString(sb, e.Params)
		sb.WriteByte(' ')
		exprString(sb, e.Body)

	case *If:
		sb.WriteString("(if (")
		exprString(sb, e.Condition)
		sb.WriteString(") ")
		exprString(sb, e.WhenTrue)
		sb.WriteString(" else ")
		exprString(sb, e.WhenFalse)
		sb.WriteByte(')')

	case *Call:
		if e.IsOperator && len(e.Args) == 1 {
			sb.WriteByte('(')
			exprString(sb, e.Callable)
			exprString(sb, e.Args[0])
			sb.WriteByte(')')
			return
		}
		if e.IsOperator && len(e.Args) == 2 {
			sb.WriteByte('(')
			exprString(sb, e.Args[0])
			sb.WriteByte(' ')
			exprString(sb, e.Callable)
			sb.WriteByte(' ')
			exprString(sb, e.Args[1])
			sb.WriteByte(')')
			return
		}
		exprString(sb, e.Callable)
		argsString(sb, e.Args)

	case *MethodInvocation:
		exprString(sb, e.Instance)
		sb.WriteByte('.')
		sb.WriteString(e.Method.Identifier)
		argsString(sb, e.Args)

	case *New:
		sb.WriteString("new ")
		sb.WriteString(e.TypeName.Identifier)
		sb.WriteString("()")

	case *BooleanLiteral:
		if e.Value {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}

	case *IntegerLiteral:
		sb.WriteString(e.Digits)

	case *StringLiteral:
		sb.WriteString(e.Quoted)

	case *Null:
		sb.WriteString("null")

	case *VectorLiteral:
		sb.WriteByte('[')
		for i, item := range e.Items {
			if i > 0 {
				sb.WriteString(", ")
			}
			exprString(sb, item)
		}
		sb.WriteByte(']')

	case nil:

	default:
		panic("unknown expression type: " + e.ExprName())
	}
}
